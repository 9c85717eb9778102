// Package diagnostic provides structured warnings and errors for
// manifest validation.
//
// Key capabilities:
//   - Unknown node-kind errors with the offending item path
//   - Accessor-less property errors
//   - Empty-enum warnings
//   - Aggregation of all findings into a single error value
package diagnostic
