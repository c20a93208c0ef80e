package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/env/v2"
	"gopkg.in/yaml.v3"
)

// SourceType identifies where a configuration value came from.
type SourceType string

const (
	SourceDefault SourceType = "default"
	SourceYAML    SourceType = "yaml"
	SourceEnv     SourceType = "env"
	SourceCLI     SourceType = "cli"
)

// Source provides a nested configuration map.
type Source interface {
	Load() (map[string]any, error)
	Type() SourceType
}

// yamlProvider implements Source interface for YAML files.
type yamlProvider struct {
	path     string
	required bool
}

// NewYAMLProvider creates a YAML file source. A missing file yields an empty
// map unless required is set.
func NewYAMLProvider(path string, required bool) Source {
	return &yamlProvider{path: path, required: required}
}

func (y *yamlProvider) Load() (map[string]any, error) {
	if y.path == "" {
		return make(map[string]any), nil
	}
	data, err := os.ReadFile(y.path)
	if err != nil {
		if os.IsNotExist(err) && !y.required {
			return make(map[string]any), nil
		}
		return nil, fmt.Errorf("failed to read YAML file: %w", err)
	}
	config := make(map[string]any)
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", y.path, err)
	}
	return config, nil
}

func (y *yamlProvider) Type() SourceType {
	return SourceYAML
}

// envProvider loads the keys listed by GenerateEnvMappings through koanf's
// env provider. Unmapped CAPNAMES_ variables are ignored.
type envProvider struct {
	environ func() []string
}

// NewEnvProvider creates an environment source. A nil environ reads the
// process environment.
func NewEnvProvider(environ func() []string) Source {
	return &envProvider{environ: environ}
}

func (e *envProvider) Load() (map[string]any, error) {
	envToPath := GenerateEnvToConfigMap()
	provider := env.Provider(".", env.Opt{
		Prefix:      EnvPrefix,
		EnvironFunc: e.environ,
		TransformFunc: func(key, value string) (string, any) {
			path, ok := envToPath[key]
			if !ok {
				return "", nil
			}
			return path, strings.TrimSpace(value)
		},
	})
	data, err := provider.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	return data, nil
}

func (e *envProvider) Type() SourceType {
	return SourceEnv
}

// flagToPath maps CLI flag names to configuration paths.
var flagToPath = map[string]string{
	"input":      "input",
	"output":     "output",
	"log-level":  "log.level",
	"log-json":   "log.json",
	"log-source": "log.source",
}

// cliProvider implements Source interface for CLI flags.
type cliProvider struct {
	flags map[string]any
}

// NewCLIProvider creates a source from explicitly set CLI flags, keyed by
// flag name.
func NewCLIProvider(flags map[string]any) Source {
	return &cliProvider{flags: flags}
}

func (c *cliProvider) Load() (map[string]any, error) {
	config := make(map[string]any)
	for key, value := range c.flags {
		path, ok := flagToPath[key]
		if !ok {
			continue
		}
		if err := setNested(config, path, value); err != nil {
			return nil, fmt.Errorf("failed to set CLI flag %s: %w", key, err)
		}
	}
	return config, nil
}

func (c *cliProvider) Type() SourceType {
	return SourceCLI
}

// setNested sets a value in a nested map structure using dot notation.
func setNested(m map[string]any, path string, value any) error {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, ".")
	current := m
	for i := 0; i < len(parts)-1; i++ {
		part := parts[i]
		if _, exists := current[part]; !exists {
			current[part] = make(map[string]any)
		}
		next, ok := current[part].(map[string]any)
		if !ok {
			return fmt.Errorf("configuration conflict: key %q is not a map", strings.Join(parts[:i+1], "."))
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
	return nil
}
