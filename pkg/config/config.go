package config

import (
	"os"
	"strings"

	"github.com/civixgo/civix/pkg/errors"
	"github.com/civixgo/civix/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read into the config
const EnvPrefix = "CIVIX_"

// Config is the effective civix configuration
type Config struct {
	Generate GenerateConfig `koanf:"generate" toml:"generate"`
	Logging  LoggingConfig  `koanf:"logging" toml:"logging"`
	Output   OutputConfig   `koanf:"output" toml:"output"`
}

// GenerateConfig holds settings for the generate:* commands
type GenerateConfig struct {
	Test TestConfig `koanf:"test" toml:"test"`
}

// TestConfig holds settings for generate:test
type TestConfig struct {
	Template string `koanf:"template" toml:"template"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	File bool `koanf:"file" toml:"file"`
}

// OutputConfig holds report output settings
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
}

// Options lists the optional sources layered over the defaults
type Options struct {
	// UserConfigPath is the per-user config file, skipped if missing
	UserConfigPath string
	// ExtConfigPath is the per-extension config file, skipped if missing
	ExtConfigPath string
	// Overrides are dotted keys set from command-line flags
	Overrides map[string]interface{}
}

// Load builds the configuration from defaults and the sources in opts
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User and extension files, when present
	for _, path := range []string{opts.UserConfigPath, opts.ExtConfigPath} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			if errors.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat %s", path)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	logger.Debug().
		Str("template", cfg.Generate.Test.Template).
		Str("format", cfg.Output.Format).
		Bool("logFile", cfg.Logging.File).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Default returns the configuration built from the built-in defaults only
func Default() (*Config, error) {
	return Load(Options{})
}
