package config

// Config is the effective dotboot configuration
type Config struct {
	Repository Repository `koanf:"repository" toml:"repository" yaml:"repository"`
	Git        Git        `koanf:"git" toml:"git" yaml:"git"`
	Links      []Link     `koanf:"links" toml:"links" yaml:"links"`
}

// Repository describes the dotfiles repository and its local working copy
type Repository struct {
	// URL may contain the {user} placeholder
	URL string `koanf:"url" toml:"url" yaml:"url"`
	// Dir is the working copy location; ~ is expanded against the home directory
	Dir string `koanf:"dir" toml:"dir" yaml:"dir"`
	// User skips username resolution when set
	User string `koanf:"user" toml:"user" yaml:"user"`
}

// Git configures the git executable
type Git struct {
	Binary string `koanf:"binary" toml:"binary" yaml:"binary"`
}

// Link maps a path inside the working copy to a path under the home directory
type Link struct {
	Source      string `koanf:"source" toml:"source" yaml:"source"`
	Destination string `koanf:"destination" toml:"destination" yaml:"destination"`
}

// Clone returns a deep copy so callers can't mutate a shared link table
func (c *Config) Clone() *Config {
	out := *c
	out.Links = append([]Link(nil), c.Links...)
	return &out
}
