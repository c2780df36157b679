package logger

import "time"

// Output format names accepted by Config.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Default limits applied by New when the corresponding Config field is zero.
const (
	DefaultMaxFileSize   = 10 << 20 // 10 MiB per stream file
	DefaultMaxTotalSize  = 50 << 20 // 50 MiB history per stream
	DefaultFlushInterval = time.Second
)

// Config describes a Logger. The zero value is not usable on its own:
// at least one of Prefix and Console must be set.
type Config struct {
	// Prefix is the path prefix shared by all file streams, e.g.
	// "logs/app_log". Empty disables file output entirely.
	Prefix string `yaml:"prefix" json:"prefix" toml:"prefix"`

	// Level is the minimum level the logger emits. Records below it are
	// dropped before formatting. Defaults to InfoLevel.
	Level Level `yaml:"level" json:"level" toml:"level"`

	// Format selects the record encoding, FormatConsole or FormatJSON.
	// Defaults to FormatConsole.
	Format string `yaml:"format" json:"format" toml:"format"`

	// Console duplicates every record to stderr in console encoding.
	Console bool `yaml:"console" json:"console" toml:"console"`

	// DisableCaller drops the file::func() line annotation from records.
	DisableCaller bool `yaml:"disable_caller" json:"disable_caller" toml:"disable_caller"`

	// MaxFileSize is the per-file rotation threshold in bytes.
	MaxFileSize int64 `yaml:"max_file_size" json:"max_file_size" toml:"max_file_size"`

	// MaxTotalSize is the per-stream retention budget in bytes. Once the
	// stream's rotated files exceed it, the oldest are deleted.
	MaxTotalSize int64 `yaml:"max_total_size" json:"max_total_size" toml:"max_total_size"`

	// CheckInterval bounds how often a stream re-reads its file size
	// from disk to correct drift. Zero means the sink default.
	CheckInterval time.Duration `yaml:"check_interval" json:"check_interval" toml:"check_interval"`

	// BufferSize enables buffered writes when positive: records are
	// batched per stream and flushed every FlushInterval or when the
	// buffer fills. Zero writes through synchronously.
	BufferSize int `yaml:"buffer_size" json:"buffer_size" toml:"buffer_size"`

	// FlushInterval is the buffered-mode flush period. Ignored when
	// BufferSize is zero.
	FlushInterval time.Duration `yaml:"flush_interval" json:"flush_interval" toml:"flush_interval"`
}

// applyDefaults fills zero-valued limits in place.
func applyDefaults(cfg *Config) {
	if cfg.Format == "" {
		cfg.Format = FormatConsole
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = DefaultMaxFileSize
	}
	if cfg.MaxTotalSize <= 0 {
		cfg.MaxTotalSize = DefaultMaxTotalSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = DefaultFlushInterval
	}
}
