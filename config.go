package trackline

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config carries the externally supplied client settings. The base domain
// is the only required value; it is read once at construction time.
type Config struct {
	// Domain is the base URL of the record API, e.g.
	// "https://api.trackline.example".
	Domain string `envconfig:"DOMAIN" required:"true"`

	// HTTPTimeout bounds each request end to end.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
}

// LoadConfig reads Config from TRACKLINE_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("trackline", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
