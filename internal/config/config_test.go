package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig with missing file: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("default server port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.DBName != "gestao_cursos" {
		t.Errorf("default dbname = %q, want gestao_cursos", cfg.Database.DBName)
	}
	if cfg.Seed.Enabled {
		t.Error("seed should be disabled by default")
	}
}

func TestLoadConfigFileAndEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := []byte("server:\n  port: \"9000\"\ndatabase:\n  dbname: filedb\n")
	if err := os.WriteFile(path, yaml, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DB_NAME", "envdb")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "9000" {
		t.Errorf("file should override default port, got %q", cfg.Server.Port)
	}
	if cfg.Database.DBName != "envdb" {
		t.Errorf("env should override file dbname, got %q", cfg.Database.DBName)
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "u"
	cfg.Database.Password = "p"
	cfg.Database.Host = "h"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "d"
	cfg.Database.SSLMode = ""

	got := cfg.GetPostgresConnectionString()
	want := "postgres://u:p@h:5433/d?sslmode=disable"
	if got != want {
		t.Errorf("connection string = %q, want %q", got, want)
	}
}
