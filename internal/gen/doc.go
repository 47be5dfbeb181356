// Package gen provides deterministic Java code generation that makes a
// class Parcelable.
//
// Generation runs in three steps:
//   - Dispatch: every field is offered to each registered adapter in
//     order; all matching adapters contribute, and the default adapter is
//     used only when none matched.
//   - Normalization: the flat snippet lines are re-indented from their
//     brace depth.
//   - Assembly: the read and write blocks and the class name are placed
//     into a fixed Java skeleton with text/template.
//
// Fields nothing can handle are reported as diagnostics and left out; they
// never fail generation.
package gen
