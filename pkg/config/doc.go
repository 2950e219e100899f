// Package config handles configuration management for dotfiles.
//
// Configuration is layered with koanf, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/dotfiles/config.toml or --config
//  3. DOTFILES_* environment variables (DOTFILES_GIT_REMOTE -> git.remote)
//  4. explicit overrides from command-line flags
//
// The result is a Config value built once at startup and passed to every
// component. data_root falls back to XDG_DATA_HOME; if neither is set
// loading fails with a CONFIG_LOAD error.
package config
