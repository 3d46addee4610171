package config

import (
	"bytes"

	"github.com/arthur-debert/dotboot/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Supported Render formats
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Render serialises the configuration in the given format
func (c *Config) Render(format string) ([]byte, error) {
	switch format {
	case FormatTOML, "":
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(c); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode config as TOML")
		}
		return buf.Bytes(), nil
	case FormatYAML:
		out, err := yaml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode config as YAML")
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q (want toml or yaml)", format)
	}
}
