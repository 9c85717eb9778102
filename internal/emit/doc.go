// Package emit renders an extraction tree into declaration-only stub
// text and writes it into destination files through marker-bounded
// sections.
//
// The walker dispatches over the closed node-kind set of package model
// with an exhaustive type switch; a kind without an emission strategy is
// a programmer error and panics. Ignored nodes and their descendants are
// skipped silently, and missing optional metadata degrades to an empty
// docstring or the any-type sentinel rather than failing.
//
// Emission state (enclosing class, indentation, docstring fallback) is
// threaded through recursive calls as an explicit Context value and is
// never stored on the nodes themselves.
package emit
