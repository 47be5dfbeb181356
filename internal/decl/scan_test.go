package decl

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleClass = `package com.example;

import java.util.List;

public class Order implements Parcelable {
    public int id;
    private String name;
    private List<LineItem> items;
    private static int counter = 0;
    private StatusType status;

    public int getId() {
        return id;
    }
}
`

func TestScan(t *testing.T) {
	d, err := Scan(strings.NewReader(sampleClass))
	require.NoError(t, err)

	assert.Equal(t, "Order", d.ClassName)
	assert.True(t, d.HasClass())
	assert.Equal(t, []Field{
		{Type: "int", Name: "id"},
		{Type: "String", Name: "name"},
		{Type: "List<LineItem>", Name: "items"},
		{Type: "StatusType", Name: "status"},
	}, d.Fields)
}

func TestScan_NoClass(t *testing.T) {
	d, err := Scan(strings.NewReader("private int x;"))
	require.NoError(t, err)

	assert.False(t, d.HasClass())
	assert.Equal(t, []Field{{Type: "int", Name: "x"}}, d.Fields)
}

func TestScan_CRLF(t *testing.T) {
	d, err := Scan(strings.NewReader("public class Foo {\r\n    private int x;\r\n}\r\n"))
	require.NoError(t, err)

	assert.Equal(t, "Foo", d.ClassName)
	assert.Equal(t, []Field{{Type: "int", Name: "x"}}, d.Fields)
}

func TestScan_LongLine(t *testing.T) {
	input := "public class Big {\n" +
		"    // " + strings.Repeat("x", 2<<20) + "\n" +
		"    private int after;\n}\n"

	d, err := Scan(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "Big", d.ClassName)
	assert.Equal(t, []Field{{Type: "int", Name: "after"}}, d.Fields)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestScan_ReadError(t *testing.T) {
	_, err := Scan(failingReader{})
	assert.ErrorContains(t, err, "reading declaration: disk on fire")
}

func TestParseClassName(t *testing.T) {
	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{"public class Foo {", "Foo", true},
		{"  public static class Inner extends Base {", "Inner", true},
		{"public abstract class Shape implements Parcelable {", "Shape", true},
		{"public static abstract class Both {", "Both", true},
		{"class PackagePrivate {", "", false},
		{"public class NoTrailer", "", false},
		{"public interface Foo {", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := ParseClassName(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseField(t *testing.T) {
	tests := []struct {
		line string
		want Field
		ok   bool
	}{
		{"private int bar;", Field{Type: "int", Name: "bar"}, true},
		{"\tpublic byte[] data; // payload", Field{Type: "byte[]", Name: "data"}, true},
		{"private java.util.List<Foo> foos;", Field{Type: "java.util.List<Foo>", Name: "foos"}, true},
		{"protected int hidden;", Field{}, false},
		{"private int initialized = 3;", Field{}, false},
		{"private Map<String, Foo> byName;", Field{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := ParseField(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestField_String(t *testing.T) {
	assert.Equal(t, "List<Foo> foos", Field{Type: "List<Foo>", Name: "foos"}.String())
}
