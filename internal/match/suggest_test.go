package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var nativeNames = []string{
	"byte", "double", "float", "int", "long", "String", "java.lang.String",
	"boolean[]", "byte[]", "char[]", "double[]", "float[]", "int[]", "long[]", "String[]",
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		typeName string
		limit    int
		want     []string
	}{
		{"Strin", 1, []string{"String"}},
		{"string", 2, []string{"String", "java.lang.String"}},
		{"doubel", 1, []string{"double"}},
		{"lnog[]", 3, []string{"long[]"}},
		{"Widget", 3, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.typeName, nativeNames, tt.limit))
		})
	}
}

func TestRank_SkipsExactAndDuplicates(t *testing.T) {
	ranked := Rank("int", []string{"int", "int[]", "int[]"}, 0.5)

	if assert.Len(t, ranked, 1) {
		assert.Equal(t, "int[]", ranked[0].Name)
		assert.InDelta(t, 0.6, ranked[0].Score, 0.001)
	}
}
