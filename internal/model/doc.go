// Package model defines the extraction-tree node types consumed by the
// stub emitter.
//
// The tree is produced by an upstream extraction stage and is read-only
// from this module's point of view. Node kinds form a closed set: every
// kind implements the sealed Item interface, and the emitter dispatches
// over the concrete types exhaustively.
//
// Every node carries an ignore flag. An ignored node produces no output,
// and neither do any of its descendants.
package model
