package perf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Engine != EngineRotolog {
		t.Errorf("default engine = %q, want %q", cfg.Engine, EngineRotolog)
	}
	if cfg.Threads != 8 || cfg.Iterations != 100000 || cfg.Warmup != 10000 {
		t.Errorf("default load = %d/%d/%d, want 8/100000/10000",
			cfg.Threads, cfg.Iterations, cfg.Warmup)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := `name: nightly
engine: zap
threads: 4
iterations: 2000
message_size: small
csv_file: out.csv
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "nightly" || cfg.Engine != EngineZap || cfg.Threads != 4 {
		t.Errorf("overridden fields = %q/%q/%d", cfg.Name, cfg.Engine, cfg.Threads)
	}
	if cfg.MessageSize != SizeSmall || cfg.CSVFile != "out.csv" {
		t.Errorf("overridden fields = %q/%q", cfg.MessageSize, cfg.CSVFile)
	}
	// Untouched fields keep their defaults.
	if cfg.Warmup != 10000 || cfg.Dir != "./perf_logs" {
		t.Errorf("defaults lost: warmup=%d dir=%q", cfg.Warmup, cfg.Dir)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for a missing config file")
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("engine: carrier-pigeon\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for an unknown engine")
	}
}

func TestValidate(t *testing.T) {
	mutate := []struct {
		name string
		f    func(*Config)
	}{
		{"empty name", func(c *Config) { c.Name = "" }},
		{"zero threads", func(c *Config) { c.Threads = 0 }},
		{"zero iterations", func(c *Config) { c.Iterations = 0 }},
		{"negative warmup", func(c *Config) { c.Warmup = -1 }},
		{"bad message size", func(c *Config) { c.MessageSize = "huge" }},
		{"bad engine", func(c *Config) { c.Engine = "spdlog" }},
	}
	for _, tc := range mutate {
		cfg := DefaultConfig()
		tc.f(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestBuildTemplate(t *testing.T) {
	for _, size := range []string{SizeSmall, SizeMedium, SizeLarge} {
		tmpl, err := buildTemplate(size)
		if err != nil {
			t.Fatalf("buildTemplate(%s): %v", size, err)
		}
		target, _ := targetBytes(size)
		// Padding leaves room for the two rendered numbers; a class
		// smaller than the base text keeps just the base.
		want := target - 20
		if want < len(messageBase) {
			want = len(messageBase)
		}
		if len(tmpl) != want {
			t.Errorf("template for %s is %d bytes, want %d", size, len(tmpl), want)
		}
	}
	if _, err := buildTemplate("huge"); err == nil {
		t.Error("expected error for an unknown size")
	}
}
