package adapter

// Native handles a type Parcel reads and writes directly, such as int or
// String[]. The suffix completes the Parcel method names: suffix "Int"
// yields in.readInt() and out.writeInt(x).
type Native struct {
	typeName string
	suffix   string
}

// NewNative creates an adapter bound to one exact type name.
func NewNative(typeName, suffix string) *Native {
	return &Native{typeName: typeName, suffix: suffix}
}

func (a *Native) Kind() Kind { return KindNative }

// TypeName returns the bound type name.
func (a *Native) TypeName() string { return a.typeName }

// Suffix returns the Parcel accessor suffix.
func (a *Native) Suffix() string { return a.suffix }

func (a *Native) Matches(typeName string) bool {
	return typeName == a.typeName
}

func (a *Native) GenerateRead(_, fieldName string) string {
	return fieldName + " = in.read" + a.suffix + "();"
}

func (a *Native) GenerateWrite(_, fieldName string) string {
	return "out.write" + a.suffix + "(" + fieldName + ");"
}
