// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
	"time"

	"github.com/danielhkuo/evening-out/reveal"
)

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "file:test.db")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default type sqlite, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8081", "-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8081 {
		t.Errorf("CLI should override env: expected 8081, got %d", cfg.Port)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.RevealMode != reveal.ModeTimed {
		t.Errorf("expected default reveal mode timed, got %s", cfg.RevealMode)
	}
	if cfg.RevealHours != 48 {
		t.Errorf("expected default reveal window 48h, got %d", cfg.RevealHours)
	}
	if cfg.RevealWindow() != 48*time.Hour {
		t.Errorf("expected 48h duration, got %s", cfg.RevealWindow())
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("expected default base URL from port, got %s", cfg.BaseURL)
	}
}

func TestParseFlags_MissingDatabaseURL(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error when database URL is missing")
	}
}

func TestParseFlags_InvalidRevealMode(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	if _, err := ParseFlags([]string{"-d", "file:test.db", "-reveal", "sometimes"}); err == nil {
		t.Error("expected error for unknown reveal mode")
	}
}

func TestParseFlags_InvalidDatabaseType(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	if _, err := ParseFlags([]string{"-d", "x", "-t", "mongodb"}); err == nil {
		t.Error("expected error for unknown database type")
	}
}

func TestDriverName(t *testing.T) {
	if (Config{DatabaseType: "postgres"}).DriverName() != "postgres" {
		t.Error("expected postgres driver")
	}
	if (Config{DatabaseType: "sqlite"}).DriverName() != "sqlite" {
		t.Error("expected sqlite driver")
	}
}
