// Package config handles configuration management for dotboot.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. embedded/defaults.toml, compiled into the binary
//  2. the user config file ($XDG_CONFIG_HOME/dotboot/config.toml, or the
//     file given with --config; TOML or YAML by extension)
//  3. DOTBOOT_* environment variables (DOTBOOT_REPOSITORY_URL -> repository.url)
//  4. explicit overrides, usually command-line flags
//
// The result is a Config value handed to the bootstrap components. Nothing
// in dotboot reads configuration from global state.
package config
