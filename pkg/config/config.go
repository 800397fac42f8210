// pkg/config/config.go
package config

import (
	"fmt"
	"net"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the top-level ServerConfig.toml shape.
type Config struct {
	HTTP HTTP `toml:"http"`
}

// HTTP configures the embedded diagnostics listener.
type HTTP struct {
	Enabled bool   `toml:"enabled"`
	Listen  string `toml:"listen"`
	// AdminSecret gates the /status route. Empty leaves the route
	// unregistered.
	AdminSecret string `toml:"admin_secret"`
}

func Default() Config {
	return Config{
		HTTP: HTTP{
			Enabled: true,
			Listen:  ":8600",
		},
	}
}

func (c *Config) Validate() error {
	if c.HTTP.Listen == "" {
		return fmt.Errorf("http.listen must not be empty")
	}
	if _, _, err := net.SplitHostPort(c.HTTP.Listen); err != nil {
		return fmt.Errorf("http.listen %q: %w", c.HTTP.Listen, err)
	}
	return nil
}

// Load reads a TOML config, layering defaults under the file and the
// SLIPSTREAM_HTTP_LISTEN environment override on top. A missing file is not
// an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, err
		}
	} else if err := toml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if v := os.Getenv("SLIPSTREAM_HTTP_LISTEN"); v != "" {
		cfg.HTTP.Listen = v
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
