package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	adrerrors "github.com/bitlake/adr/internal/errors"
)

const (
	// Exit codes
	ExitSuccess = iota
	ExitGeneralError
	ExitInvalidArguments
	ExitMarkerMissing
	ExitAlreadyInitialized
	ExitDirectoryListFailed
	ExitConfigurationError
)

const (
	DefaultMarker    = ".adr_file"
	DefaultResources = "resources"

	FormatText = "text"
	FormatYAML = "yaml"

	envPrefix  = "ADR"
	configName = ".adr"
)

// Config represents the settings for a single adr invocation.
type Config struct {
	Marker            string   `mapstructure:"marker"`
	Resources         string   `mapstructure:"resources"`
	Format            string   `mapstructure:"format"`
	Verbose           bool     `mapstructure:"verbose"`
	DryRun            bool     `mapstructure:"dry_run"`
	Interactive       bool     `mapstructure:"interactive"`
	EmbeddedTemplates bool     `mapstructure:"embedded_templates"`
	Ignore            []string `mapstructure:"ignore"`
}

// flagKeys maps command-line flag names to their config keys.
var flagKeys = map[string]string{
	"marker":             "marker",
	"resources":          "resources",
	"format":             "format",
	"verbose":            "verbose",
	"dry-run":            "dry_run",
	"interactive":        "interactive",
	"embedded-templates": "embedded_templates",
	"ignore":             "ignore",
}

// Load reads configuration for the working directory dir. Flags take
// precedence over ADR_* environment variables, which take precedence over an
// optional .adr.yaml in dir. flags may be nil.
func Load(fs afero.Fs, dir string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("marker", DefaultMarker)
	v.SetDefault("resources", DefaultResources)
	v.SetDefault("format", FormatText)
	v.SetDefault("verbose", false)
	v.SetDefault("dry_run", false)
	v.SetDefault("interactive", false)
	v.SetDefault("embedded_templates", false)
	v.SetDefault("ignore", []string{})

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w: %w", adrerrors.ErrConfig, err)
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
		trimStringSliceHook,
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("parsing config: %w: %w", adrerrors.ErrConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that cannot be enforced by the decoder.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Marker) == "" {
		return fmt.Errorf("marker file name is empty: %w", adrerrors.ErrConfig)
	}
	if filepath.Base(c.Marker) != c.Marker {
		return fmt.Errorf("marker %q must be a plain file name: %w", c.Marker, adrerrors.ErrConfig)
	}
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("unknown format %q (want %s or %s): %w", c.Format, FormatText, FormatYAML, adrerrors.ErrConfig)
	}
	return nil
}

// IsIgnored reports whether name is listed in Ignore.
func (c *Config) IsIgnored(name string) bool {
	for _, ignored := range c.Ignore {
		if ignored == name {
			return true
		}
	}
	return false
}

// trimStringSliceHook drops surrounding whitespace and empty entries, so
// ADR_IGNORE="README.md, notes.md" decodes cleanly.
func trimStringSliceHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to.Kind() != reflect.Slice || to.Elem().Kind() != reflect.String {
		return data, nil
	}
	values, ok := data.([]string)
	if !ok {
		return data, nil
	}

	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			trimmed = append(trimmed, value)
		}
	}
	return trimmed, nil
}
