package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every configuration environment variable
	EnvPrefix = "DOTFILES_"

	// EnvDataHome is the base-directory setting data_root falls back to
	EnvDataHome = "XDG_DATA_HOME"

	appDirName     = "dotfiles"
	configFileName = "config.toml"
)

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFile is an explicit config file; it must exist when set
	ConfigFile string

	// Overrides are applied last, keyed by koanf path (e.g. "git.remote")
	Overrides map[string]interface{}
}

// DefaultConfigFile returns $XDG_CONFIG_HOME/dotfiles/config.toml
func DefaultConfigFile() string {
	return filepath.Join(xdg.ConfigHome, appDirName, configFileName)
}

// Load builds the configuration from all layers
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file
	configFile := opts.ConfigFile
	if configFile == "" {
		if _, err := os.Stat(DefaultConfigFile()); err == nil {
			configFile = DefaultConfigFile()
		}
	} else if _, err := os.Stat(configFile); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", configFile)
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", configFile)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := resolveDirs(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps DOTFILES_GIT_COMMIT_MESSAGE to git.commit_message and
// DOTFILES_DATA_ROOT to data_root.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "git_"); ok {
		return "git." + rest
	}
	return key
}

// resolveDirs fills home_dir and data_root from the environment when the
// layers left them empty, and expands a leading ~.
func resolveDirs(cfg *Config) error {
	if cfg.HomeDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, errors.ErrConfigLoad, "unable to determine home directory")
		}
		cfg.HomeDir = home
	}
	cfg.HomeDir = filepath.Clean(cfg.HomeDir)

	if cfg.DataRoot == "" {
		cfg.DataRoot = os.Getenv(EnvDataHome)
	}
	if cfg.DataRoot == "" {
		return errors.Newf(errors.ErrConfigLoad,
			"%s is not set and no data_root is configured", EnvDataHome)
	}

	if cfg.DataRoot == "~" {
		cfg.DataRoot = cfg.HomeDir
	} else if rest, ok := strings.CutPrefix(cfg.DataRoot, "~/"); ok {
		cfg.DataRoot = filepath.Join(cfg.HomeDir, rest)
	}
	cfg.DataRoot = filepath.Clean(cfg.DataRoot)

	return nil
}
