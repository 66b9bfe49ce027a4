package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()

	if err := Init(Config{Debug: false, Dir: dir}); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "logs")); os.IsNotExist(err) {
		t.Error("log directory was not created")
	}
	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	// Logging through the package helpers must not panic.
	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message", "key", "value")
}

func TestHelpersBeforeInit(t *testing.T) {
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	// Helpers are no-ops until Init runs.
	Debug("ignored")
	Info("ignored")
	Warn("ignored")
	Error("ignored")
}
