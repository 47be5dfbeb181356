package adapter

var (
	booleanRead = newSnippet("boolean.read",
		"boolean[] {{.name}}Array = new boolean[1];",
		"in.readBooleanArray({{.name}}Array);",
		"{{.name}} = {{.name}}Array[0];",
	)
	booleanWrite = newSnippet("boolean.write",
		"out.writeBooleanArray(new boolean[] { {{.name}} });",
	)
)

// PrimitiveBoolean handles the primitive boolean type. Parcel has no
// single boolean accessor, so the value travels as a one element array.
type PrimitiveBoolean struct{}

func (PrimitiveBoolean) Kind() Kind { return KindPrimitiveBoolean }

func (PrimitiveBoolean) Matches(typeName string) bool {
	return typeName == "boolean"
}

func (PrimitiveBoolean) GenerateRead(typeName, fieldName string) string {
	return booleanRead.render(typeName, fieldName)
}

func (PrimitiveBoolean) GenerateWrite(typeName, fieldName string) string {
	return booleanWrite.render(typeName, fieldName)
}
