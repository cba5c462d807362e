// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// loadOptions collects the optional sources of Load.
type loadOptions struct {
	file    string
	flags   map[string]any
	environ func() []string
}

// LoadOption adds a source to Load.
type LoadOption func(*loadOptions)

// WithFile reads a YAML file. A missing file is not an error.
func WithFile(path string) LoadOption {
	return func(o *loadOptions) { o.file = path }
}

// WithFlags applies dotted keys (e.g. "server.addr") with the highest precedence.
func WithFlags(flags map[string]any) LoadOption {
	return func(o *loadOptions) { o.flags = flags }
}

// WithEnviron replaces os.Environ, mainly for tests.
func WithEnviron(environ func() []string) LoadOption {
	return func(o *loadOptions) { o.environ = environ }
}

// Load merges defaults, file, environment and flags, then validates.
func Load(opts ...LoadOption) (*Config, error) {
	o := loadOptions{environ: os.Environ}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if o.file != "" {
		data, err := readYAML(o.file)
		if err != nil {
			return nil, err
		}
		for key, value := range flattenMap("", data) {
			if err := k.Set(key, value); err != nil {
				return nil, fmt.Errorf("failed to set key %s from %s: %w", key, o.file, err)
			}
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnvKey,
		EnvironFunc:   o.environ,
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if len(o.flags) > 0 {
		nested := make(map[string]any)
		for key, value := range o.flags {
			if err := setNested(nested, key, value); err != nil {
				return nil, fmt.Errorf("failed to set flag %s: %w", key, err)
			}
		}
		if err := k.Load(rawMap(nested), nil); err != nil {
			return nil, fmt.Errorf("failed to apply flags: %w", err)
		}
	}

	return unmarshalAndValidate(k)
}

// unmarshalAndValidate decodes k into a Config and checks the struct tags.
func unmarshalAndValidate(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// readYAML reads a YAML document into a map, dropping null values.
func readYAML(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return filterNilValues(m), nil
}

// transformEnvKey maps DECENTTREE_SERVER_MAX_TAXA to server.max_taxa.
func transformEnvKey(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	parts := strings.FieldsFunc(key, func(r rune) bool { return r == '_' })
	switch len(parts) {
	case 0:
		return "", nil
	case 1:
		return parts[0], value
	}

	return parts[0] + "." + strings.Join(parts[1:], "_"), value
}

// flattenMap flattens nested maps into dot-notation keys.
func flattenMap(prefix string, m map[string]any) map[string]any {
	result := make(map[string]any)
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			for fk, fv := range flattenMap(key, nested) {
				result[fk] = fv
			}
		} else {
			result[key] = v
		}
	}

	return result
}

// filterNilValues recursively removes nil values so they do not mask defaults.
func filterNilValues(m map[string]any) map[string]any {
	result := make(map[string]any)
	for k, v := range m {
		if v == nil {
			continue
		}
		if nested, ok := v.(map[string]any); ok {
			if filtered := filterNilValues(nested); len(filtered) > 0 {
				result[k] = filtered
			}
		} else {
			result[k] = v
		}
	}

	return result
}

// setNested sets a dotted path in a nested map.
func setNested(m map[string]any, path string, value any) error {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, ".")
	current := m
	for i := 0; i < len(parts)-1; i++ {
		if _, exists := current[parts[i]]; !exists {
			current[parts[i]] = make(map[string]any)
		}
		next, ok := current[parts[i]].(map[string]any)
		if !ok {
			return fmt.Errorf("configuration conflict: key %q is not a map", strings.Join(parts[:i+1], "."))
		}
		current = next
	}
	current[parts[len(parts)-1]] = value

	return nil
}

// rawMap adapts a map to koanf.Provider.
type rawMap map[string]any

func (r rawMap) Read() (map[string]any, error) { return r, nil }

func (r rawMap) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("ReadBytes not implemented")
}
