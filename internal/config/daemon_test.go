package config

import (
	"os"
	"testing"

	"github.com/samueldoiron-bot/sitelog/internal/models"
)

func TestDaemonInfoRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// No file yet
	info, err := LoadDaemonInfo()
	if err != nil {
		t.Fatalf("LoadDaemonInfo failed: %v", err)
	}
	if info != nil {
		t.Fatal("expected nil info before any save")
	}

	saved := models.NewDaemonInfo("localhost", 4242, os.Getpid())
	if err := SaveDaemonInfo(saved); err != nil {
		t.Fatalf("SaveDaemonInfo failed: %v", err)
	}

	loaded, err := LoadDaemonInfo()
	if err != nil {
		t.Fatalf("LoadDaemonInfo failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected daemon info after save")
	}
	if loaded.Port != 4242 || loaded.Host != "localhost" || loaded.PID != os.Getpid() {
		t.Errorf("round trip mismatch: %+v", loaded)
	}

	if err := RemoveDaemonInfo(); err != nil {
		t.Fatalf("RemoveDaemonInfo failed: %v", err)
	}
	info, err = LoadDaemonInfo()
	if err != nil {
		t.Fatalf("LoadDaemonInfo failed: %v", err)
	}
	if info != nil {
		t.Fatal("expected nil info after remove")
	}
}

func TestIsDaemonRunning(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// No daemon.yaml at all
	running, _, err := IsDaemonRunning()
	if err != nil {
		t.Fatalf("IsDaemonRunning failed: %v", err)
	}
	if running {
		t.Fatal("no daemon.yaml should mean not running")
	}

	// Live PID: our own process
	if err := SaveDaemonInfo(models.NewDaemonInfo("localhost", 4242, os.Getpid())); err != nil {
		t.Fatalf("SaveDaemonInfo failed: %v", err)
	}
	running, info, err := IsDaemonRunning()
	if err != nil {
		t.Fatalf("IsDaemonRunning failed: %v", err)
	}
	if !running || info == nil {
		t.Fatal("expected our own PID to count as running")
	}
}

func TestIsDaemonRunningCleansStaleFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// A PID far above the default pid_max is never alive
	if err := SaveDaemonInfo(models.NewDaemonInfo("localhost", 4242, 1<<30)); err != nil {
		t.Fatalf("SaveDaemonInfo failed: %v", err)
	}

	running, _, err := IsDaemonRunning()
	if err != nil {
		t.Fatalf("IsDaemonRunning failed: %v", err)
	}
	if running {
		t.Fatal("a dead PID should not count as running")
	}

	// Stale file should have been removed
	info, err := LoadDaemonInfo()
	if err != nil {
		t.Fatalf("LoadDaemonInfo failed: %v", err)
	}
	if info != nil {
		t.Error("expected the stale daemon.yaml to be cleaned up")
	}
}

func TestSettingsDefaultsAndRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// Missing file yields defaults
	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if settings.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %q", settings.Logging.Level)
	}
	if settings.AI.Provider != "pattern" {
		t.Errorf("expected default provider pattern, got %q", settings.AI.Provider)
	}

	settings.Defaults.SiteName = "NB Refinery"
	settings.Logging.Level = "debug"
	if err := EnsureGlobalDir(); err != nil {
		t.Fatalf("EnsureGlobalDir failed: %v", err)
	}
	if err := SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	loaded, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if loaded.Defaults.SiteName != "NB Refinery" {
		t.Errorf("expected saved site name, got %q", loaded.Defaults.SiteName)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("expected saved log level, got %q", loaded.Logging.Level)
	}
}
