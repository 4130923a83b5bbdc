package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// InputFile is the line-oriented list of store product URLs.
	InputFile string `envconfig:"INPUT_FILE" default:"steam_links.txt"`

	// OutputDir receives one app_<id>.json per processed app.
	OutputDir string `envconfig:"OUTPUT_DIR" default:"output"`

	// APIURL is the appdetails endpoint template with one %s
	// placeholder for the app id.
	APIURL string `envconfig:"API_URL" default:"https://store.steampowered.com/api/appdetails?appids=%s"`

	// Mode selects the fetcher implementation: 'steam' or 'mock'.
	Mode string `envconfig:"EXTRACTOR_MODE" default:"steam"`

	// HTTPTimeout bounds each API call; there is no retry.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`

	// Report toggles the post-batch HTML report.
	Report bool `envconfig:"REPORT" default:"true"`
}

// Load processes environment variables and populates the Config struct.
func Load() (*Config, error) {
	// A missing .env is fine; vars may be injected directly.
	if err := godotenv.Load(); err != nil {
		if _, statErr := os.Stat(".env"); statErr == nil {
			log.Printf("Warning: .env file found but could not be loaded: %v", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
