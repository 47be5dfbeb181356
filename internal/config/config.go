// Package config holds the generator configuration: output indentation,
// the native type table and the knobs of the List and Enum adapters.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"parcelable-generator/internal/adapter"
)

// NativeType binds a declared type name to the Parcel accessor suffix.
type NativeType struct {
	Type   string `mapstructure:"type" yaml:"type"`
	Suffix string `mapstructure:"suffix" yaml:"suffix"`
}

// Config represents the generator configuration.
type Config struct {
	// Indent prefixes every generated statement inside a method body.
	Indent string `mapstructure:"indent" yaml:"indent"`
	// Tab is added once per nesting level.
	Tab string `mapstructure:"tab" yaml:"tab"`
	// NativeTypes is checked first, in order.
	NativeTypes []NativeType `mapstructure:"native_types" yaml:"native_types"`
	// UseDefaultAdapter treats every unrecognized type as Parcelable.
	UseDefaultAdapter bool `mapstructure:"use_default_adapter" yaml:"use_default_adapter"`
	// PreferredListType is instantiated for fields declared as List.
	PreferredListType string `mapstructure:"preferred_list_type" yaml:"preferred_list_type"`
	// EnumPattern is the regular expression detecting enum type names.
	EnumPattern string `mapstructure:"enum_pattern" yaml:"enum_pattern"`
}

// DefaultNativeTypes is the table of types Parcel handles directly.
func DefaultNativeTypes() []NativeType {
	return []NativeType{
		{Type: "byte", Suffix: "Byte"},
		{Type: "double", Suffix: "Double"},
		{Type: "float", Suffix: "Float"},
		{Type: "int", Suffix: "Int"},
		{Type: "long", Suffix: "Long"},
		{Type: "String", Suffix: "String"},
		{Type: "java.lang.String", Suffix: "String"},
		{Type: "boolean[]", Suffix: "BooleanArray"},
		{Type: "byte[]", Suffix: "ByteArray"},
		{Type: "char[]", Suffix: "CharArray"},
		{Type: "double[]", Suffix: "DoubleArray"},
		{Type: "float[]", Suffix: "FloatArray"},
		{Type: "int[]", Suffix: "IntArray"},
		{Type: "long[]", Suffix: "LongArray"},
		{Type: "String[]", Suffix: "StringArray"},
	}
}

// Default returns the reference configuration.
func Default() *Config {
	return &Config{
		Indent:            strings.Repeat(" ", 8),
		Tab:               strings.Repeat(" ", 4),
		NativeTypes:       DefaultNativeTypes(),
		UseDefaultAdapter: true,
		PreferredListType: adapter.DefaultListType,
		EnumPattern:       adapter.DefaultEnumPattern,
	}
}

// EnumRegexp compiles EnumPattern.
func (c *Config) EnumRegexp() (*regexp.Regexp, error) {
	re, err := regexp.Compile(c.EnumPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid enum pattern %q: %w", c.EnumPattern, err)
	}

	return re, nil
}

// Validate checks the configuration for values the generator cannot use.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.PreferredListType) == "" {
		errs = append(errs, errors.New("preferred_list_type must not be empty"))
	}

	if c.EnumPattern == "" {
		errs = append(errs, errors.New("enum_pattern must not be empty"))
	} else if _, err := c.EnumRegexp(); err != nil {
		errs = append(errs, err)
	}

	seen := make(map[string]struct{}, len(c.NativeTypes))

	for i, nt := range c.NativeTypes {
		if nt.Type == "" || nt.Suffix == "" {
			errs = append(errs, fmt.Errorf("native_types[%d]: type and suffix are required", i))
			continue
		}

		if _, ok := seen[nt.Type]; ok {
			errs = append(errs, fmt.Errorf("native_types[%d]: duplicate type %q", i, nt.Type))
			continue
		}

		seen[nt.Type] = struct{}{}
	}

	return errors.Join(errs...)
}
