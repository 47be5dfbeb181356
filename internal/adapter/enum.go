package adapter

import "regexp"

// DefaultEnumPattern detects enums by a trailing "Type" in the type name.
const DefaultEnumPattern = `^.+Type$`

var (
	enumRead = newSnippet("enum.read",
		"String {{.name}}Str = in.readString();",
		"if ({{.name}}Str != null) {",
		"{{.name}} = {{.dataType}}.valueOf({{.name}}Str);",
		"} else {",
		"{{.name}} = null;",
		"}",
	)
	enumWrite = newSnippet("enum.write",
		"if ({{.name}} != null) {",
		"out.writeString({{.name}}.name());",
		"} else {",
		"out.writeString(null);",
		"}",
	)
)

// Enum handles enum types, recognized by naming convention only. Values
// travel by name so a null field survives the round trip.
type Enum struct {
	pattern *regexp.Regexp
}

// NewEnum creates an Enum adapter for type names matching pattern.
func NewEnum(pattern *regexp.Regexp) *Enum {
	if pattern == nil {
		pattern = regexp.MustCompile(DefaultEnumPattern)
	}

	return &Enum{pattern: pattern}
}

func (a *Enum) Kind() Kind { return KindEnum }

// Pattern returns the naming convention as a regular expression.
func (a *Enum) Pattern() string { return a.pattern.String() }

func (a *Enum) Matches(typeName string) bool {
	return a.pattern.MatchString(typeName)
}

func (a *Enum) GenerateRead(typeName, fieldName string) string {
	return enumRead.render(typeName, fieldName)
}

func (a *Enum) GenerateWrite(typeName, fieldName string) string {
	return enumWrite.render(typeName, fieldName)
}
