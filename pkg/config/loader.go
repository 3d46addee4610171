package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotboot/pkg/errors"
	"github.com/arthur-debert/dotboot/pkg/logging"
	"github.com/arthur-debert/dotboot/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable dotboot reads
const EnvPrefix = "DOTBOOT_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// Home is the home directory used to expand ~ in repository.dir
	Home string
	// ConfigFile is an explicit config file; it must exist when set. When
	// empty the default user config file is read if present.
	ConfigFile string
	// Overrides are applied last, keyed by dotted path ("repository.url")
	Overrides map[string]interface{}
}

// DefaultContent returns the embedded default configuration
func DefaultContent() string {
	return string(defaultConfig)
}

// Load builds the effective configuration
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	configFile, required := opts.ConfigFile, true
	if configFile == "" {
		configFile, required = paths.DefaultConfigFile(), false
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), parserFor(configFile)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configFile)
		}
		logger.Debug().Str("path", configFile).Msg("Loaded config file")
	} else if required {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", configFile)
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 4. Explicit overrides
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
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if opts.Home != "" {
		cfg.Repository.Dir = paths.ExpandHome(cfg.Repository.Dir, opts.Home)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
