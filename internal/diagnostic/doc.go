// Package diagnostic provides structured warnings and errors reported while
// generating Parcelable code.
//
// Generation is best effort: diagnostics never stop it. Callers decide how
// to surface them and whether any of them should fail the run.
//
// Key capabilities:
//   - Unresolved field warnings with suggested type names
//   - Missing class name warnings
//   - Severity filtering and combined error values
package diagnostic
