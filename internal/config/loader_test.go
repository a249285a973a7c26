package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOOKING_HTTP_PORT", "")
	t.Setenv("BOOKING_SQLITE_DSN", "")
	t.Setenv("BOOKING_DEMO_DATA", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HTTPPort != 8000 {
		t.Errorf("HTTPPort = %d, want 8000", cfg.HTTPPort)
	}
	if !strings.Contains(cfg.SQLiteDSN, "bookings.db") {
		t.Errorf("SQLiteDSN = %q", cfg.SQLiteDSN)
	}
	if cfg.DemoData {
		t.Error("DemoData should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BOOKING_HTTP_PORT", "9001")
	t.Setenv("BOOKING_SQLITE_DSN", "file:other.db")
	t.Setenv("BOOKING_DEMO_DATA", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HTTPPort != 9001 {
		t.Errorf("HTTPPort = %d, want 9001", cfg.HTTPPort)
	}
	if cfg.SQLiteDSN != "file:other.db" {
		t.Errorf("SQLiteDSN = %q", cfg.SQLiteDSN)
	}
	if !cfg.DemoData {
		t.Error("DemoData should be true")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric port", key: "BOOKING_HTTP_PORT", value: "not-a-port"},
		{name: "negative port", key: "BOOKING_HTTP_PORT", value: "-1"},
		{name: "non-boolean demo flag", key: "BOOKING_DEMO_DATA", value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error %q does not name %s", err, tt.key)
			}
		})
	}
}
