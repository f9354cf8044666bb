package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir points Load at dir instead of ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.configDir = dir }
}

// layer is one configuration source, named for error messages.
type layer struct {
	name     string
	provider koanf.Provider
	parser   koanf.Parser
}

// Load resolves the configuration for profile. Each layer overrides the ones
// before it: built-in defaults, base.yaml, <profile>.yaml, then APP_*
// environment variables.
//
// Env var names are matched against keys the earlier layers defined, which
// keeps underscores inside a key: APP_STUB_BASE_URL sets stub.base_url and
// APP_SERVER_READ_TIMEOUT sets server.read_timeout.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := checkProfile(profile); err != nil {
		return nil, err
	}

	o := loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	for _, l := range fileLayers(o.configDir, profile) {
		if err := k.Load(l.provider, l.parser); err != nil {
			return nil, fmt.Errorf("config layer %s: %w", l.name, err)
		}
	}

	envKeys := newEnvKeyIndex(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			return envKeys.resolve(name), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("config layer %s* environment: %w", envPrefix, err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config for profile %q: %w", profile, err)
	}
	return cfg, nil
}

func fileLayers(dir, profile string) []layer {
	base := filepath.Join(dir, "base.yaml")
	overlay := filepath.Join(dir, profile+".yaml")
	return []layer{
		{name: "defaults", provider: confmap.Provider(defaults(), ".")},
		{name: base, provider: file.Provider(base), parser: yaml.Parser()},
		{name: overlay, provider: file.Provider(overlay), parser: yaml.Parser()},
	}
}

// checkProfile keeps the profile name inside the config directory.
func checkProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("config profile is empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("config profile %q must be a bare name", profile)
	}
	return nil
}

// envKeyIndex maps the env spelling of a key ("stub_base_url") to the key
// itself ("stub.base_url").
type envKeyIndex map[string]string

func newEnvKeyIndex(keys []string) envKeyIndex {
	idx := make(envKeyIndex, len(keys))
	for _, key := range keys {
		idx[strings.ReplaceAll(key, ".", "_")] = key
	}
	return idx
}

// resolve turns APP_STUB_DELAY into stub.delay. Names no layer defined fall
// back to treating every underscore as a separator.
func (idx envKeyIndex) resolve(name string) string {
	name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
	if key, ok := idx[name]; ok {
		return key
	}
	return strings.ReplaceAll(name, "_", ".")
}
