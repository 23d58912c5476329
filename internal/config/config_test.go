package config

import (
	"apple-chase/pkg/logger"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	logger.Configure(logger.Options{Level: "error", Output: io.Discard})
	os.Exit(m.Run())
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("missing file must not fail, got %v", err)
	}
}

func TestLoad_DoesNotOverrideEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	data := "APPLE_TEST_FROM_FILE=file\nAPPLE_TEST_PRESET=file\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("APPLE_TEST_PRESET", "env")
	t.Setenv("APPLE_TEST_FROM_FILE", "")
	os.Unsetenv("APPLE_TEST_FROM_FILE")

	if err := Load(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("APPLE_TEST_FROM_FILE"); got != "file" {
		t.Errorf("Expected value from file, got %q", got)
	}
	if got := os.Getenv("APPLE_TEST_PRESET"); got != "env" {
		t.Errorf("Env must win over file, got %q", got)
	}
}

func TestServerFromEnv(t *testing.T) {
	t.Setenv("APPLE_PORT", "")
	t.Setenv("PORT", "8081")
	t.Setenv("APPLE_JOURNAL_DIR", "/tmp/j")
	t.Setenv("APPLE_INBOX_SIZE", "oops")

	cfg := ServerFromEnv()
	if cfg.Port != "8081" {
		t.Errorf("Expected PORT fallback 8081, got %s", cfg.Port)
	}
	if cfg.JournalDir != "/tmp/j" {
		t.Errorf("Expected journal dir, got %q", cfg.JournalDir)
	}
	if cfg.InboxSize != 256 {
		t.Errorf("Invalid int must fall back to default, got %d", cfg.InboxSize)
	}

	t.Setenv("APPLE_PORT", "9000")
	if got := ServerFromEnv().Port; got != "9000" {
		t.Errorf("APPLE_PORT must take priority, got %s", got)
	}
}

func TestBotFromEnv(t *testing.T) {
	t.Setenv("APPLE_BOTS", "10")
	t.Setenv("APPLE_BOT_RATE", "200ms")
	t.Setenv("APPLE_BOT_DURATION", "bad")
	t.Setenv("APPLE_MOVE_SET", "4")

	cfg := BotFromEnv()
	if cfg.Bots != 10 || cfg.Rate != 200*time.Millisecond || cfg.Duration != 0 || cfg.MoveSet != "4" {
		t.Errorf("unexpected bot config %+v", cfg)
	}
}
