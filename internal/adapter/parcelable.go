package adapter

import "strings"

// ParcelableSuffix marks a type name as a Parcelable composite.
const ParcelableSuffix = "Parcelable"

var (
	parcelableRead = newSnippet("parcelable.read",
		"{{.name}} = in.readParcelable({{.dataType}}.class.getClassLoader());",
	)
	parcelableWrite = newSnippet("parcelable.write",
		"out.writeParcelable({{.name}}, 0);",
	)
)

// Parcelable handles nested objects that are Parcelable themselves. It is
// meant to be the default adapter for every type nothing else recognizes.
type Parcelable struct{}

func (Parcelable) Kind() Kind { return KindParcelable }

func (Parcelable) Matches(typeName string) bool {
	return strings.HasSuffix(typeName, ParcelableSuffix)
}

func (Parcelable) GenerateRead(typeName, fieldName string) string {
	return parcelableRead.render(typeName, fieldName)
}

func (Parcelable) GenerateWrite(typeName, fieldName string) string {
	return parcelableWrite.render(typeName, fieldName)
}
