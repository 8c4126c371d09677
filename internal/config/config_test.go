package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  address: "127.0.0.1"
  port: 9090
  mode: "debug"
database:
  path: "tmp/test.db"
  log_mode: true
jwt:
  secret: "s3cret"
  issuer: "test"
  expire_hours: 12
security:
  bcrypt_cost: 10
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Read(path)
	if err != nil {
		t.Fatalf("Read error = %v", err)
	}

	if cfg.Server.Address != "127.0.0.1" || cfg.Server.Port != 9090 || cfg.Server.Mode != "debug" {
		t.Errorf("server config = %+v", cfg.Server)
	}
	if cfg.Database.Path != "tmp/test.db" || !cfg.Database.LogMode {
		t.Errorf("database config = %+v", cfg.Database)
	}
	if cfg.JWT.Secret != "s3cret" || cfg.JWT.ExpireHours != 12 {
		t.Errorf("jwt config = %+v", cfg.JWT)
	}
	if cfg.Security.BcryptCost != 10 {
		t.Errorf("security config = %+v", cfg.Security)
	}
}

func TestRead_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  address: "127.0.0.1"
  port: 8080
jwt:
  secret: "s3cret"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("DLV_SERVER_PORT", "9000")
	t.Setenv("DLV_JWT_SECRET", "from-env")

	cfg, err := Read(path)
	if err != nil {
		t.Fatalf("Read error = %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("server.port = %d, want env override 9000", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "from-env" {
		t.Errorf("jwt.secret = %q, want env override", cfg.JWT.Secret)
	}
	// file values without an override stay intact
	if cfg.Server.Address != "127.0.0.1" {
		t.Errorf("server.address = %q, want 127.0.0.1", cfg.Server.Address)
	}
}

func TestRead_MissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Read of a missing file succeeded")
	}
}
