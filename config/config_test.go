package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/drummonds/goOrders/router"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "serverConfig.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestSetupServerFromFile(t *testing.T) {
	path := writeConfig(t, `
[serverConfig]
ServerAddr = "127.0.0.1"
ServerPort = "9100"

[webapp]
Name = "orders-test"
Title = "Orders Test"
MountTarget = "root"
HistoryMode = "memory"

[logging]
Level = "debug"
`)

	cfg, logger, err := SetupServer(NewViper(path))
	if err != nil {
		t.Fatalf("SetupServer() error: %v", err)
	}
	if logger == nil {
		t.Fatal("expected a logger")
	}
	if cfg.Addr() != "127.0.0.1:9100" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.Name != "orders-test" || cfg.Title != "Orders Test" || cfg.MountTarget != "root" {
		t.Errorf("front end config = %+v", cfg.FrontEndConfig)
	}
	if cfg.HistoryMode != router.MemoryHistory {
		t.Errorf("HistoryMode = %v, want memory", cfg.HistoryMode)
	}
	if !filepath.IsAbs(cfg.WebDir) {
		t.Errorf("WebDir %q should be absolute", cfg.WebDir)
	}
}

func TestSetupServerDefaults(t *testing.T) {
	cfg, _, err := SetupServer(NewViper(""))
	if err != nil {
		t.Fatalf("SetupServer() without a file error: %v", err)
	}
	if cfg.ListenAddrPort != "8000" {
		t.Errorf("default port = %q, want 8000", cfg.ListenAddrPort)
	}
	if cfg.MountTarget != "app" {
		t.Errorf("default mount target = %q, want app", cfg.MountTarget)
	}
	if cfg.HistoryMode != router.WebHistory {
		t.Errorf("default history mode = %v, want web", cfg.HistoryMode)
	}
}

func TestSetupServerEnvOverride(t *testing.T) {
	t.Setenv("GOORDERS_SERVERCONFIG_SERVERPORT", "9200")
	path := writeConfig(t, "[serverConfig]\nServerPort = \"9100\"\n")

	cfg, _, err := SetupServer(NewViper(path))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ListenAddrPort != "9200" {
		t.Errorf("port = %q, want env override 9200", cfg.ListenAddrPort)
	}
}

func TestSetupServerMissingExplicitFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	if _, _, err := SetupServer(NewViper(missing)); err == nil {
		t.Error("expected an error for a missing explicit config file")
	}
}

func TestSetupServerLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "out.log")
	path := writeConfig(t, "[logging]\nOutputPath = \"file\"\nLevel = \"info\"\nLogFileLocation = \""+filepath.ToSlash(logPath)+"\"\n")

	if _, _, err := SetupServer(NewViper(path)); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected startup lines in the log file")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"Debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelWarn,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
