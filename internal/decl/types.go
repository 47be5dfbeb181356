package decl

// Field is a single (type name, field name) pair taken from a field line.
type Field struct {
	// Type is the declared type exactly as written, e.g. "List<Foo>".
	Type string
	// Name is the field identifier.
	Name string
}

// String returns the field as it was declared, without visibility.
func (f Field) String() string {
	return f.Type + " " + f.Name
}

// Declaration is the result of scanning one class body.
type Declaration struct {
	// ClassName is empty when no class line was found.
	ClassName string
	// Fields are kept in declaration order.
	Fields []Field
}

// HasClass reports whether a class line was seen.
func (d *Declaration) HasClass() bool {
	return d.ClassName != ""
}
