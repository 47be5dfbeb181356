package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	text, err := Assemble("Foo", []string{"        r1;", "        r2;"}, []string{"        w1;"})
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(text, "r1;"))
	assert.Equal(t, 1, strings.Count(text, "w1;"))
	assert.Contains(t, text, "    public Foo(Parcel in) {\n        r1;\n        r2;\n    }")
	assert.Contains(t, text, "    public void writeToParcel(Parcel out, int flags) {\n        w1;\n    }")
	assert.True(t, strings.HasPrefix(text, "\n    /****"))
	assert.True(t, strings.HasSuffix(text, "     * Parcelable codes end\n     */\n"))
}

func TestAssemble_ClassNameIsLiteral(t *testing.T) {
	text, err := Assemble("{{.Read}}", nil, nil)
	require.NoError(t, err)

	assert.Contains(t, text, "public {{.Read}}(Parcel in) {")
}
