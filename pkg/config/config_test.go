package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"mycnftune/pkg/config"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.cnf"))
	if err != nil {
		t.Fatalf("load missing config file: want no error, got: %v", err)
	}

	if cfg.TargetPath != config.DefaultTargetPath {
		t.Errorf("target path: want: %s, got: %s", config.DefaultTargetPath, cfg.TargetPath)
	}
	if cfg.Section != config.DefaultSection {
		t.Errorf("section: want: %s, got: %s", config.DefaultSection, cfg.Section)
	}
	if cfg.MemoryPercentForDB != 75 {
		t.Errorf("memory percent for db: want: 75, got: %d", cfg.MemoryPercentForDB)
	}
	if cfg.MaxConnections != 100 {
		t.Errorf("max connections: want: 100, got: %d", cfg.MaxConnections)
	}
	if cfg.InnodbBufPoolPercent != 75 {
		t.Errorf("innodb buffer pool percent: want: 75, got: %d", cfg.InnodbBufPoolPercent)
	}
	if cfg.HasDBCredentials() {
		t.Error("db credentials on default config: want: false, got: true")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mycnftune.cnf")
	content := `target_path = /tmp/my.cnf
username = tuner
socket = /run/mysqld/mysqld.sock
apply_runtime = true

[ratios]
max_connections = 500
mem_per_connection_mb = 4
wait_timeout = 300
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load config file: want no error, got: %v", err)
	}

	if cfg.TargetPath != "/tmp/my.cnf" {
		t.Errorf("target path: want: /tmp/my.cnf, got: %s", cfg.TargetPath)
	}
	if cfg.MaxConnections != 500 {
		t.Errorf("max connections: want: 500, got: %d", cfg.MaxConnections)
	}
	if cfg.MemPerConnectionMB != 4 {
		t.Errorf("mem per connection: want: 4, got: %d", cfg.MemPerConnectionMB)
	}
	if cfg.WaitTimeout != 300 {
		t.Errorf("wait timeout: want: 300, got: %d", cfg.WaitTimeout)
	}

	// untouched keys keep their defaults
	if cfg.MemoryPercentForDB != 75 {
		t.Errorf("memory percent for db: want: 75, got: %d", cfg.MemoryPercentForDB)
	}
	if cfg.ConnectTimeout != 10 {
		t.Errorf("connect timeout: want: 10, got: %d", cfg.ConnectTimeout)
	}

	if !cfg.HasDBCredentials() {
		t.Error("db credentials: want: true, got: false")
	}
	if !cfg.ApplyRuntime {
		t.Error("apply runtime: want: true, got: false")
	}

	dbCfg := cfg.ToDBConfig()
	if dbCfg.Net != config.DBNetSocket {
		t.Errorf("db net: want: %s, got: %s", config.DBNetSocket, dbCfg.Net)
	}
	if dbCfg.Addr != "/run/mysqld/mysqld.sock" {
		t.Errorf("db addr: want: /run/mysqld/mysqld.sock, got: %s", dbCfg.Addr)
	}
}
