// Package decl extracts the class name and field declarations from the
// text of a Java class body.
//
// Matching is line oriented and heuristic: a class line looks like
// "public [static] [abstract] class Name ..." and a field line looks like
// "public|private Type name;". Anything else is ignored.
package decl
