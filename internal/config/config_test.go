package config

import "testing"

const defaultMaxFileSize int64 = 50 * 1024 * 1024

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("MAX_FILE_SIZE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GHOSTSCRIPT_BIN", "")
	t.Setenv("SOFFICE_BIN", "")

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetGhostscriptBin() != "gs" {
		t.Fatalf("expected default ghostscript binary gs, got %s", cfg.GetGhostscriptBin())
	}
	if cfg.GetSofficeBin() != "soffice" {
		t.Fatalf("expected default soffice binary soffice, got %s", cfg.GetSofficeBin())
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("MAX_FILE_SIZE", "12345")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GHOSTSCRIPT_BIN", "/opt/gs/bin/gs")
	t.Setenv("SOFFICE_BIN", "/usr/bin/libreoffice")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != 12345 {
		t.Fatalf("expected max file size 12345, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.GetLogLevel())
	}
	if cfg.GetGhostscriptBin() != "/opt/gs/bin/gs" {
		t.Fatalf("expected overridden ghostscript binary, got %s", cfg.GetGhostscriptBin())
	}
	if cfg.GetSofficeBin() != "/usr/bin/libreoffice" {
		t.Fatalf("expected overridden soffice binary, got %s", cfg.GetSofficeBin())
	}
}

func TestNewConfig_InvalidMaxFileSizeFallsBack(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "not-a-number")

	cfg := NewConfig()

	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected fallback to default max file size, got %d", cfg.GetMaxFileSize())
	}
}
