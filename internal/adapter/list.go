package adapter

import (
	"regexp"
	"strings"
)

// DefaultListType is the concrete list class used for List interfaces.
const DefaultListType = "ArrayList"

var genericPattern = regexp.MustCompile(`^\s*([^<\s]*)<(.+)>`)

var (
	listReadGeneric = newSnippet("list.read",
		"{{.name}} = new {{.listType}}<{{.elementType}}>();",
		"in.readList({{.name}}, {{.elementType}}.class.getClassLoader());",
	)
	listReadRaw = newSnippet("list.read.raw",
		"{{.name}} = new {{.listType}}();",
		"in.readList({{.name}}, getClass().getClassLoader());",
	)
	listWrite = newSnippet("list.write",
		"out.writeList({{.name}});",
	)
)

// List handles java.util.List and its implementations, optionally
// parameterized as Outer<Inner>.
type List struct {
	preferred string
}

// NewList creates a List adapter that instantiates preferred whenever the
// declared type is the List interface itself.
func NewList(preferred string) *List {
	if preferred == "" {
		preferred = DefaultListType
	}

	return &List{preferred: preferred}
}

func (a *List) Kind() Kind { return KindList }

// PreferredType returns the concrete class used for List interfaces.
func (a *List) PreferredType() string { return a.preferred }

func (a *List) Matches(typeName string) bool {
	outer := typeName
	if i := strings.IndexByte(typeName, '<'); i >= 0 {
		outer = typeName[:i]
	}

	return strings.HasSuffix(strings.TrimSpace(outer), "List")
}

// Resolve returns the class to instantiate and the element type for a
// declared list type. The element type is empty for raw lists.
func (a *List) Resolve(typeName string) (listType, elementType string) {
	listType = typeName
	if m := genericPattern.FindStringSubmatch(typeName); m != nil {
		listType, elementType = m[1], m[2]
	}

	switch listType {
	case "", "List", "java.util.List":
		listType = a.preferred
	}

	return listType, elementType
}

func (a *List) GenerateRead(typeName, fieldName string) string {
	listType, elementType := a.Resolve(typeName)
	if elementType == "" {
		return listReadRaw.render(typeName, fieldName, "listType", listType)
	}

	return listReadGeneric.render(typeName, fieldName,
		"listType", listType,
		"elementType", elementType,
	)
}

func (a *List) GenerateWrite(typeName, fieldName string) string {
	return listWrite.render(typeName, fieldName)
}
