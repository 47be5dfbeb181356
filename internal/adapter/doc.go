// Package adapter provides the per-type code generation strategies used to
// make a Java class Parcelable.
//
// An Adapter decides whether it can handle a declared type name and, if so,
// produces the Parcel read and write statements for one field. Snippets are
// emitted flat, without indentation; the generator re-indents them later
// from brace depth.
//
// Available adapters:
//   - Native: one per type natively supported by Parcel (int, String, byte[], ...)
//   - PrimitiveBoolean: boolean, through a one element boolean array
//   - Parcelable: nested Parcelable objects, normally the default adapter
//   - List: List types with optional generic element type
//   - Enum: enums detected by a naming convention
//   - Calendar, GregorianCalendar, XMLGregorianCalendar: date types
package adapter
