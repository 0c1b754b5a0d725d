package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/danielhkuo/evening-out/reveal"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	BaseURL      string
	RevealMode   string
	RevealHours  int
}

// RevealWindow is the timed-mode window as a duration.
func (c Config) RevealWindow() time.Duration {
	return time.Duration(c.RevealHours) * time.Hour
}

// DriverName maps the configured database type to its database/sql
// driver name.
func (c Config) DriverName() string {
	if c.DatabaseType == "postgres" {
		return "postgres"
	}
	return "sqlite"
}

// ParseFlags validates flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("evening-out", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.BaseURL, "base-url", "", "Public origin used in share links")
	fs.StringVar(&cfg.RevealMode, "reveal", "", "Reveal policy (timed or manual)")
	fs.IntVar(&cfg.RevealHours, "reveal-hours", 0, "Timed reveal window in hours")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("BASE_URL")
		if cfg.BaseURL == "" {
			cfg.BaseURL = "http://localhost:" + strconv.Itoa(cfg.Port)
		}
	}

	if cfg.RevealMode == "" {
		cfg.RevealMode = os.Getenv("REVEAL_MODE")
		if cfg.RevealMode == "" {
			cfg.RevealMode = reveal.ModeTimed
		}
	}
	if cfg.RevealMode != reveal.ModeTimed && cfg.RevealMode != reveal.ModeManual {
		return Config{}, errors.New("reveal mode must be timed or manual")
	}

	if cfg.RevealHours == 0 {
		if hoursStr := os.Getenv("REVEAL_HOURS"); hoursStr != "" {
			hours, err := strconv.Atoi(hoursStr)
			if err != nil {
				return Config{}, errors.New("invalid REVEAL_HOURS env variable")
			}
			cfg.RevealHours = hours
		} else {
			cfg.RevealHours = 48 // two days
		}
	}
	if cfg.RevealHours < 0 {
		return Config{}, errors.New("reveal window must not be negative")
	}

	return cfg, nil
}
