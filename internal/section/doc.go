// Package section updates generator-owned regions of destination files.
//
// A section is a named block bounded by sentinel comment lines derived
// from the section name. Rewriting a section replaces only the lines
// strictly between its markers, so generated text can coexist with
// hand-written content and repeated regeneration is idempotent.
package section
