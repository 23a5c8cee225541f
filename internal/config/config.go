// Package config loads the either-gen configuration from defaults, an
// optional .either-gen.yaml file, EITHERGEN_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the project configuration file.
const FileName = ".either-gen.yaml"

// EnvPrefix prefixes the environment variables overriding the configuration,
// with "." replaced by "_": EITHERGEN_BUILD_TAG, EITHERGEN_LOG_JSON, ...
const EnvPrefix = "EITHERGEN"

// Config is the either-gen configuration.
type Config struct {
	// BuildTag marks template files, which the compiler skips.
	BuildTag string `mapstructure:"build_tag" yaml:"build_tag"`
	// OutputSuffix replaces ".go" in the name of a template file to name its
	// generated file.
	OutputSuffix string `mapstructure:"output_suffix" yaml:"output_suffix"`
	// PositionalPrefix prefixes the names of positional fields.
	PositionalPrefix string `mapstructure:"positional_prefix" yaml:"positional_prefix"`

	Watch WatchConfig `mapstructure:"watch" yaml:"watch"`
	Log   LogConfig   `mapstructure:"log" yaml:"log"`
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// LogConfig configures logging.
type LogConfig struct {
	JSON    bool `mapstructure:"json" yaml:"json"`
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
}

// Configuration keys.
const (
	KeyBuildTag         = "build_tag"
	KeyOutputSuffix     = "output_suffix"
	KeyPositionalPrefix = "positional_prefix"
	KeyWatchDebounce    = "watch.debounce"
	KeyLogJSON          = "log.json"
	KeyLogVerbose       = "log.verbose"
)

// Defaults.
const (
	DefaultBuildTag         = "eithertemplate"
	DefaultOutputSuffix     = "_either.go"
	DefaultPositionalPrefix = "F"
	DefaultDebounce         = 300 * time.Millisecond
)

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBuildTag, DefaultBuildTag)
	v.SetDefault(KeyOutputSuffix, DefaultOutputSuffix)
	v.SetDefault(KeyPositionalPrefix, DefaultPositionalPrefix)
	v.SetDefault(KeyWatchDebounce, DefaultDebounce)
	v.SetDefault(KeyLogJSON, false)
	v.SetDefault(KeyLogVerbose, false)
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		BuildTag:         DefaultBuildTag,
		OutputSuffix:     DefaultOutputSuffix,
		PositionalPrefix: DefaultPositionalPrefix,
		Watch:            WatchConfig{Debounce: DefaultDebounce},
	}
}

// FlagKeys maps command-line flag names to the configuration keys they
// override.
var FlagKeys = map[string]string{
	"tag":      KeyBuildTag,
	"suffix":   KeyOutputSuffix,
	"prefix":   KeyPositionalPrefix,
	"debounce": KeyWatchDebounce,
	"log-json": KeyLogJSON,
	"verbose":  KeyLogVerbose,
}

// Load builds the configuration. The file at path is read when path is not
// empty; otherwise FileName is searched for from the working directory
// upwards. Flags present in flags and listed in FlagKeys take precedence
// over every other source.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if path == "" {
		path = findProjectConfig()
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}

			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, "failed to bind flag --%s", name)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BuildTag) == "" {
		return errors.WithHint(errors.New("build_tag must not be empty"),
			"template files need a build tag that keeps them out of normal builds")
	}

	if !strings.HasSuffix(c.OutputSuffix, ".go") {
		return errors.WithHintf(errors.Newf("output_suffix %q must end in .go", c.OutputSuffix),
			"the default is %q", DefaultOutputSuffix)
	}

	if c.OutputSuffix == ".go" {
		return errors.Newf("output_suffix %q would overwrite the template files", c.OutputSuffix)
	}

	if !token.IsIdentifier(c.PositionalPrefix) || c.PositionalPrefix == "_" {
		return errors.Newf("positional_prefix %q is not a Go identifier", c.PositionalPrefix)
	}

	if c.Watch.Debounce < 0 {
		return errors.Newf("watch.debounce %s must not be negative", c.Watch.Debounce)
	}

	return nil
}

// Write stores cfg as YAML at path. An existing file is never overwritten.
func Write(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return errors.WithHint(errors.Newf("%s already exists", path), "remove it first to write the defaults again")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to encode config")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	return nil
}

// findProjectConfig searches for FileName by walking up the directory tree.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		p := filepath.Join(dir, FileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}

		dir = parent
	}
}
