package adapter

import (
	"strings"
	"text/template"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind identifies an adapter variant.
type Kind int

const (
	_ Kind = iota // zero value is an invalid kind

	KindNative
	KindPrimitiveBoolean
	KindParcelable
	KindList
	KindEnum
	KindCalendar
	KindGregorianCalendar
	KindXMLGregorianCalendar
)

// Adapter generates Parcel read/write code for one family of types.
//
// Implementations hold configuration only and are safe to share between
// fields, runs and goroutines.
type Adapter interface {
	// Kind returns the adapter variant.
	Kind() Kind
	// Matches reports whether the adapter handles the declared type name.
	Matches(typeName string) bool
	// GenerateRead returns the statements restoring the field from "in".
	GenerateRead(typeName, fieldName string) string
	// GenerateWrite returns the statements writing the field to "out".
	GenerateWrite(typeName, fieldName string) string
}

// snippet is a line template rendered with the "name" and "dataType" keys
// plus any adapter specific values.
type snippet struct {
	tmpl *template.Template
}

func newSnippet(name string, lines ...string) snippet {
	tmpl := template.Must(template.New(name).
		Option("missingkey=error").
		Parse(strings.Join(lines, "\n")))

	return snippet{tmpl: tmpl}
}

func (s snippet) render(dataType, fieldName string, extra ...string) string {
	data := map[string]string{
		"dataType": dataType,
		"name":     fieldName,
	}

	for i := 0; i+1 < len(extra); i += 2 {
		data[extra[i]] = extra[i+1]
	}

	var sb strings.Builder
	if err := s.tmpl.Execute(&sb, data); err != nil {
		panic(err)
	}

	return sb.String()
}

// Describe returns a short human readable description of a.
func Describe(a Adapter) string {
	switch v := a.(type) {
	case *Native:
		return v.Kind().String() + " " + v.TypeName() + " -> read" + v.Suffix() + "/write" + v.Suffix()
	case *List:
		return v.Kind().String() + " (preferred " + v.PreferredType() + ")"
	case *Enum:
		return v.Kind().String() + " " + v.Pattern()
	default:
		return a.Kind().String()
	}
}
