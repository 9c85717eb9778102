// Package guess provides heuristic scalar-kind classification for
// literals that reach the stub generator without type metadata: global
// variables and preprocessor-style defines.
//
// Classifiers are pure functions over literal text, independent of the
// tree walker.
package guess
