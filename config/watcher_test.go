package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}

func TestConfigWatcher_ReloadsWatchedFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "clausal.toml")
	writeConfigFile(t, configPath, "[forest]\nseed = 7\n")

	watcher, err := NewConfigWatcher(configPath)
	if err != nil {
		t.Fatalf("NewConfigWatcher() failed: %v", err)
	}
	defer watcher.Close()
	watcher.debouncePeriod = 20 * time.Millisecond

	reloaded := make(chan *Config, 1)
	watcher.OnReload(func(cfg *Config) error {
		select {
		case reloaded <- cfg:
		default:
		}
		return nil
	})
	watcher.Start()

	writeConfigFile(t, configPath, "[forest]\nseed = 99\n")

	select {
	case cfg := <-reloaded:
		// The watcher must reload the file it watches, not whatever
		// clausal.toml directory discovery would find from the cwd
		if cfg.Forest.Seed != 99 {
			t.Errorf("expected reloaded seed 99, got %d", cfg.Forest.Seed)
		}
		if cfg.Forest.Trees != 100 {
			t.Errorf("expected default trees 100 after reload, got %d", cfg.Forest.Trees)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}

func TestConfigWatcher_DebouncesRapidWrites(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "clausal.toml")
	writeConfigFile(t, configPath, "[forest]\nseed = 1\n")

	watcher, err := NewConfigWatcher(configPath)
	if err != nil {
		t.Fatalf("NewConfigWatcher() failed: %v", err)
	}
	defer watcher.Close()
	watcher.debouncePeriod = 100 * time.Millisecond

	reloads := make(chan *Config, 16)
	watcher.OnReload(func(cfg *Config) error {
		reloads <- cfg
		return nil
	})
	watcher.Start()

	// A burst of writes inside the debounce window collapses to one reload
	for seed := 2; seed <= 5; seed++ {
		writeConfigFile(t, configPath, fmt.Sprintf("[forest]\nseed = %d\n", seed))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case cfg := <-reloads:
		if cfg.Forest.Seed != 5 {
			t.Errorf("expected final seed 5 after debounce, got %d", cfg.Forest.Seed)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for debounced reload")
	}

	select {
	case <-reloads:
		t.Error("expected a single debounced reload for the write burst")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestConfigWatcher_MissingFile(t *testing.T) {
	_, err := NewConfigWatcher(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error watching a nonexistent file")
	}
}

func TestIsBackupFile(t *testing.T) {
	cases := []struct {
		name   string
		backup bool
	}{
		{"clausal.toml", false},
		{"clausal.toml~", true},
		{".clausal.toml.swp", true},
		{"clausal.toml.tmp", true},
		{"clausal.toml.bak", true},
	}
	for _, tc := range cases {
		if got := isBackupFile(tc.name); got != tc.backup {
			t.Errorf("isBackupFile(%q) = %v, want %v", tc.name, got, tc.backup)
		}
	}
}
