package logger

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"landlisting/config"
)

func TestNilSafetyBeforeInit(t *testing.T) {
	saved := log
	log = nil
	defer func() { log = saved }()

	// None of these may panic before Init.
	Debug("debug before init")
	Info("info before init")
	Warn("warn before init")
	Error("error before init")
	if err := Sync(); err != nil {
		t.Errorf("Sync before init should be a no-op: %v", err)
	}
	if With(zap.String("k", "v")) == nil {
		t.Error("With before init should return a nop logger")
	}
	if WithRequestID("req-1") == nil {
		t.Error("WithRequestID before init should return a nop logger")
	}
	t.Log("✓ all helpers are safe before Init")
}

func TestInitConsole(t *testing.T) {
	cfg := &config.LogConfig{Level: "debug", Format: "console", Output: "stdout"}
	if err := Init(cfg, "development"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if Get() == nil {
		t.Fatal("Get must return the logger after Init")
	}

	Debug("debug message", zap.String("key", "value"))
	Info("info message", zap.Int("count", 3))
	t.Log("✓ console logger initialized")
}

func TestInitFileOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.LogConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: filepath.Join(dir, "nested", "app.log"),
	}
	if err := Init(cfg, "production"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Info("written to file")
	if err := Sync(); err != nil {
		t.Errorf("Sync failed: %v", err)
	}
	t.Log("✓ file logger creates the log directory")
}

func TestUpdateLevel(t *testing.T) {
	cfg := &config.LogConfig{Level: "info", Format: "json", Output: "stdout"}
	if err := Init(cfg, "production"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if log.Core().Enabled(zap.DebugLevel) {
		t.Error("debug should be disabled at info level")
	}
	UpdateLevel("debug")
	if !log.Core().Enabled(zap.DebugLevel) {
		t.Error("debug should be enabled after UpdateLevel")
	}
	UpdateLevel("warn")
	if log.Core().Enabled(zap.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	t.Log("✓ runtime level changes apply")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "debug",
		"info":    "info",
		"warn":    "warn",
		"error":   "error",
		"unknown": "info", // fallback
	}
	for input, want := range cases {
		if got := parseLevel(input).String(); got != want {
			t.Errorf("parseLevel(%q) = %q, want %q", input, got, want)
		}
	}
}
