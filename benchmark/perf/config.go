package perf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Engine names accepted by Config.Engine.
const (
	EngineRotolog = "rotolog"
	EngineZap     = "zap"
)

// Config describes one load run. Zero values fall back to the
// DefaultConfig entries.
type Config struct {
	// Name labels the run and prefixes the log files it produces.
	Name string `yaml:"name"`

	// Dir is where the run writes its log files.
	Dir string `yaml:"dir"`

	// Engine selects the backend under load.
	Engine string `yaml:"engine"`

	// Threads is the number of concurrent workers.
	Threads int `yaml:"threads"`

	// Iterations is the measured record count per worker.
	Iterations int `yaml:"iterations"`

	// Warmup is the unmeasured record count per worker before the
	// clock starts.
	Warmup int `yaml:"warmup"`

	// MessageSize picks the record payload class: small, medium, large.
	MessageSize string `yaml:"message_size"`

	// MaxFileSize and MaxTotalSize configure rotation, in bytes.
	MaxFileSize  int64 `yaml:"max_file_size"`
	MaxTotalSize int64 `yaml:"max_total_size"`

	// BufferSize batches writes when positive, in bytes.
	BufferSize int `yaml:"buffer_size"`

	// Debug emits debug records too; a quarter of the load is debug
	// either way, Debug decides whether it reaches the files.
	Debug bool `yaml:"debug"`

	// Console duplicates records to stderr.
	Console bool `yaml:"console"`

	// CSVFile appends results to this path when set.
	CSVFile string `yaml:"csv_file"`

	// Verbose prints run configuration before the results.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the baseline run configuration.
func DefaultConfig() Config {
	return Config{
		Name:         "perf",
		Dir:          "./perf_logs",
		Engine:       EngineRotolog,
		Threads:      8,
		Iterations:   100000,
		Warmup:       10000,
		MessageSize:  SizeMedium,
		MaxFileSize:  10 << 20,
		MaxTotalSize: 100 << 20,
		Debug:        true,
	}
}

// Load reads a YAML run configuration layered over DefaultConfig.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("perf: parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first configuration problem.
func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("perf: empty run name")
	}
	if c.Threads < 1 {
		return fmt.Errorf("perf: threads = %d, need at least 1", c.Threads)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("perf: iterations = %d, need at least 1", c.Iterations)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("perf: warmup = %d, must not be negative", c.Warmup)
	}
	if _, err := targetBytes(c.MessageSize); err != nil {
		return err
	}
	switch c.Engine {
	case EngineRotolog, EngineZap:
	default:
		return fmt.Errorf("perf: unknown engine %q", c.Engine)
	}
	return nil
}
