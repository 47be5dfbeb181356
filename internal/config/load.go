package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. PARCELGEN_PREFERRED_LIST_TYPE.
const EnvPrefix = "PARCELGEN"

// FileName is the config file looked up in the working directory when no
// explicit path is given (parcelgen.yaml or parcelgen.yml).
const FileName = "parcelgen"

// Load reads the configuration from path, or from ./parcelgen.yaml when
// path is empty, on top of Default. Environment variables take precedence
// over the file. A missing implicit file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("indent", def.Indent)
	v.SetDefault("tab", def.Tab)
	v.SetDefault("native_types", nativeTypesAsMaps(def.NativeTypes))
	v.SetDefault("use_default_adapter", def.UseDefaultAdapter)
	v.SetDefault("preferred_list_type", def.PreferredListType)
	v.SetDefault("enum_pattern", def.EnumPattern)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func nativeTypesAsMaps(types []NativeType) []map[string]any {
	res := make([]map[string]any, 0, len(types))
	for _, nt := range types {
		res = append(res, map[string]any{"type": nt.Type, "suffix": nt.Suffix})
	}

	return res
}

// Parse parses YAML data on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ReadFile reads and parses the YAML config file at path.
func ReadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes cfg to path as YAML.
func WriteFile(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
