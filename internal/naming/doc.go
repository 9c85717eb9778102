// Package naming provides pure identifier normalization used by the stub
// emitter: native-prefix stripping, declared-type cleaning, and the
// operator to magic-method rename table.
//
// All functions are side-effect free so they can be tested in isolation
// from the tree walker.
package naming
