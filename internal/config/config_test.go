package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "        ", cfg.Indent)
	assert.Equal(t, "    ", cfg.Tab)
	assert.True(t, cfg.UseDefaultAdapter)
	assert.Equal(t, "ArrayList", cfg.PreferredListType)
	assert.Equal(t, `^.+Type$`, cfg.EnumPattern)
	assert.Len(t, cfg.NativeTypes, 15)
	assert.Equal(t, NativeType{Type: "int", Suffix: "Int"}, cfg.NativeTypes[3])
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"empty list type", func(c *Config) { c.PreferredListType = " " }, "preferred_list_type must not be empty"},
		{"empty enum pattern", func(c *Config) { c.EnumPattern = "" }, "enum_pattern must not be empty"},
		{"bad enum pattern", func(c *Config) { c.EnumPattern = "(" }, `invalid enum pattern "("`},
		{
			"missing suffix",
			func(c *Config) { c.NativeTypes = append(c.NativeTypes, NativeType{Type: "short"}) },
			"native_types[15]: type and suffix are required",
		},
		{
			"duplicate type",
			func(c *Config) { c.NativeTypes = append(c.NativeTypes, NativeType{Type: "int", Suffix: "Int"}) },
			`native_types[15]: duplicate type "int"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseAndMarshal(t *testing.T) {
	cfg, err := Parse([]byte(`
preferred_list_type: LinkedList
enum_pattern: "^E[A-Z].*$"
use_default_adapter: false
`))
	require.NoError(t, err)

	assert.Equal(t, "LinkedList", cfg.PreferredListType)
	assert.Equal(t, "^E[A-Z].*$", cfg.EnumPattern)
	assert.False(t, cfg.UseDefaultAdapter)
	assert.Equal(t, Default().Indent, cfg.Indent)
	assert.Equal(t, DefaultNativeTypes(), cfg.NativeTypes)

	data, err := Marshal(cfg)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("indent: [unterminated"))
	assert.ErrorContains(t, err, "failed to parse config YAML")

	_, err = Parse([]byte("enum_pattern: \"(\"\n"))
	assert.ErrorContains(t, err, "invalid config: invalid enum pattern")

	_, err = Parse([]byte("native_types:\n  - type: int\n    suffix: Int\n  - type: int\n    suffix: Long\n"))
	assert.ErrorContains(t, err, `duplicate type "int"`)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parcelgen.yaml")
	require.NoError(t, WriteFile(Default(), path))

	cfg, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
indent: "\t\t"
tab: "\t"
native_types:
  - type: short
    suffix: Int
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "\t\t", cfg.Indent)
	assert.Equal(t, "\t", cfg.Tab)
	assert.Equal(t, []NativeType{{Type: "short", Suffix: "Int"}}, cfg.NativeTypes)
	assert.Equal(t, "ArrayList", cfg.PreferredListType)
	assert.True(t, cfg.UseDefaultAdapter)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PARCELGEN_PREFERRED_LIST_TYPE", "Vector")
	t.Setenv("PARCELGEN_USE_DEFAULT_ADAPTER", "false")
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Vector", cfg.PreferredListType)
	assert.False(t, cfg.UseDefaultAdapter)
	assert.Equal(t, DefaultNativeTypes(), cfg.NativeTypes)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enum_pattern: \"(\"\n"), 0o644))

	_, err = Load(path)
	assert.ErrorContains(t, err, "invalid config")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parcelgen.yaml")
	require.NoError(t, WriteFile(Default(), path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
