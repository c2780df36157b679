package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// The default logger is process-wide state and Init is one-shot, so
// the whole lifecycle runs in a single test.
func TestDefaultLifecycle(t *testing.T) {
	// Everything is a no-op before Init.
	Infof("dropped %d", 1)
	if Default() != nil {
		t.Fatal("Default is non-nil before Init")
	}
	if GetLevel() != InfoLevel {
		t.Errorf("GetLevel before Init = %v, want %v", GetLevel(), InfoLevel)
	}
	if err := Sync(); err != nil {
		t.Errorf("Sync before Init: %v", err)
	}

	dir := t.TempDir()
	prefix := filepath.Join(dir, "app_log")
	performed, err := Init(Config{Prefix: prefix})
	if !performed || err != nil {
		t.Fatalf("Init = (%v, %v), want (true, nil)", performed, err)
	}
	if performed, err := Init(Config{Prefix: prefix}); performed || err != nil {
		t.Fatalf("second Init = (%v, %v), want (false, nil)", performed, err)
	}
	if Default() == nil {
		t.Fatal("Default is nil after Init")
	}

	Debugf("gated %d", 2)
	Infof("armed %d", 3)
	SetLevel(DebugLevel)
	if GetLevel() != DebugLevel {
		t.Errorf("GetLevel = %v, want %v", GetLevel(), DebugLevel)
	}
	Debugf("open %d", 4)
	if err := Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	data, err := os.ReadFile(prefix + ".INFO")
	if err != nil {
		t.Fatalf("read INFO stream: %v", err)
	}
	info := string(data)
	for _, want := range []string{"armed 3", "open 4"} {
		if !strings.Contains(info, want) {
			t.Errorf("INFO stream missing %q:\n%s", want, info)
		}
	}
	if strings.Contains(info, "gated 2") {
		t.Errorf("debug record written below the level:\n%s", info)
	}
	// Caller annotations must point at this file, not the wrappers.
	if !strings.Contains(info, "default_test::") {
		t.Errorf("caller annotation does not reach user code:\n%s", info)
	}

	if err := Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if Default() != nil {
		t.Fatal("Default is non-nil after Shutdown")
	}
	Infof("after shutdown")
	if err := Shutdown(); err != nil {
		t.Errorf("second Shutdown: %v", err)
	}
	if performed, _ := Init(Config{Prefix: prefix}); performed {
		t.Fatal("Init re-armed after Shutdown")
	}
}
