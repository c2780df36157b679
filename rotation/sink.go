package rotation

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// ErrClosed is returned by Write and Sync after the sink has been closed.
var ErrClosed = errors.New("rotation: sink is closed")

// Config holds configuration for a rotating sink
type Config struct {
	// Prefix is the base path of the stream's files: directory plus base
	// filename, e.g. "logs/app_log". Required.
	Prefix string
	// Tag labels the stream and prefixes every file it creates,
	// e.g. "INFO". Required.
	Tag string
	// MaxFileSize is the rotation threshold for a single file in bytes
	// (default: 10 MiB)
	MaxFileSize int64
	// MaxTotalSize is the retention budget across all of the stream's
	// files in bytes (default: 50 MiB)
	MaxTotalSize int64
	// CheckInterval is how often the approximate size counter is
	// corrected against the on-disk size (default: 1s)
	CheckInterval time.Duration
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = 10 << 20
	}
	if cfg.MaxTotalSize <= 0 {
		cfg.MaxTotalSize = 50 << 20
	}
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = time.Second
	}
}

// Sink appends formatted log records to exactly one open file of a
// stream, rolling over to a fresh timestamped file once the current one
// would exceed MaxFileSize. Safe for concurrent use by any number of
// writers.
type Sink struct {
	policy Policy

	dir          string
	base         string
	tag          string
	maxTotalSize int64

	// approxSize tracks the open file's size without a stat per write.
	// It may drift from the on-disk truth (external appends, short
	// writes); the throttled recheck repairs it.
	approxSize atomic.Int64
	lastCheck  atomic.Int64 // unix nanos of the last on-disk recheck

	// rotateMu gates rotation decisions, writeMu the appends and the
	// handle swap. Lock order: rotateMu before writeMu.
	rotateMu sync.Mutex
	writeMu  sync.Mutex
	file     *os.File
	path     string
	failure  error // sticky: a rotation that could not open its new file

	closed atomic.Bool
	stats  *Stats
}

var _ io.WriteCloser = (*Sink)(nil)

// NewSink opens the stream's first timestamped file, points the alias
// at it, and prunes files left behind by earlier runs.
func NewSink(cfg Config) (*Sink, error) {
	if cfg.Prefix == "" {
		return nil, fmt.Errorf("rotation: prefix is required")
	}
	if cfg.Tag == "" {
		return nil, fmt.Errorf("rotation: tag is required")
	}
	applyDefaults(&cfg)

	dir, base := splitPrefix(cfg.Prefix)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("rotation: create directory %s: %w", dir, err)
	}

	s := &Sink{
		policy:       Policy{MaxFileSize: cfg.MaxFileSize, CheckInterval: cfg.CheckInterval},
		dir:          dir,
		base:         base,
		tag:          cfg.Tag,
		maxTotalSize: cfg.MaxTotalSize,
		stats:        NewStats(),
	}

	path := fileName(dir, s.tag, s.base, timeNow())
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("rotation: open %s: %w", path, err)
	}

	// A reopen within the same second resumes the existing file, so the
	// counter starts from its real size.
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("rotation: stat %s: %w", path, err)
	}

	s.file = file
	s.path = path
	s.approxSize.Store(info.Size())
	s.lastCheck.Store(timeNow().UnixNano())

	s.refreshAlias(path)
	s.cleanup(path)
	return s, nil
}

// Write appends p to the current file, rotating first when the policy
// calls for it. The buffer arrives fully formatted and is never split
// across two files.
func (s *Sink) Write(p []byte) (int, error) {
	if s.closed.Load() {
		return 0, ErrClosed
	}

	incoming := int64(len(p))
	if s.policy.NeedsRotation(s.approxSize.Load(), incoming) || s.recheckDue() {
		if err := s.confirmRotation(incoming); err != nil {
			return 0, err
		}
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.file == nil {
		if s.failure != nil {
			return 0, s.failure
		}
		return 0, ErrClosed
	}
	n, err := s.file.Write(p)
	s.approxSize.Add(int64(n))
	s.stats.AddBytesWritten(uint64(n))
	return n, err
}

// recheckDue reports whether the throttled on-disk size check is due.
func (s *Sink) recheckDue() bool {
	since := time.Duration(timeNow().UnixNano() - s.lastCheck.Load())
	return s.policy.Due(since)
}

// confirmRotation re-tests the rotation condition against the on-disk
// size and rotates only when it still holds. Losers of a rotation race
// observe the fresh file here and return without rotating again. Both
// outcomes refresh the recheck stamp.
func (s *Sink) confirmRotation(incoming int64) error {
	s.rotateMu.Lock()
	defer s.rotateMu.Unlock()
	defer func() { s.lastCheck.Store(timeNow().UnixNano()) }()

	size, err := s.onDiskSize()
	if err != nil {
		return err
	}
	if !s.policy.NeedsRotation(size, incoming) {
		// Correct counter drift and keep the current file.
		s.approxSize.Store(size)
		return nil
	}
	return s.rotate()
}

// onDiskSize reads the open file's true size. A failed stat falls back
// to the approximate counter rather than blocking the write path.
func (s *Sink) onDiskSize() (int64, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.file == nil {
		if s.failure != nil {
			return 0, s.failure
		}
		return 0, ErrClosed
	}
	info, err := s.file.Stat()
	if err != nil {
		return s.approxSize.Load(), nil
	}
	return info.Size(), nil
}

// rotate closes the current file and opens a fresh timestamped one,
// then repoints the alias and enforces retention. Called with rotateMu
// held.
func (s *Sink) rotate() error {
	path := fileName(s.dir, s.tag, s.base, timeNow())

	s.writeMu.Lock()
	if s.file != nil {
		s.file.Close()
		s.file = nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		// Fatal to the sink: there is no open file left to write to.
		s.failure = fmt.Errorf("rotation: open %s: %w", path, err)
		s.writeMu.Unlock()
		return s.failure
	}
	s.file = file
	s.path = path
	s.approxSize.Store(0)
	s.writeMu.Unlock()

	s.stats.IncrementRotations()
	s.refreshAlias(path)
	s.cleanup(path)
	return nil
}

// Sync flushes the current file to storage. No rotation side effects.
func (s *Sink) Sync() error {
	if s.closed.Load() {
		return ErrClosed
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.file == nil {
		if s.failure != nil {
			return s.failure
		}
		return ErrClosed
	}
	return s.file.Sync()
}

// Close syncs and closes the open file. Later writes fail with
// ErrClosed. Closing an already-closed sink is a no-op.
func (s *Sink) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	s.rotateMu.Lock()
	defer s.rotateMu.Unlock()
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Sync()
	if closeErr := s.file.Close(); err == nil {
		err = closeErr
	}
	s.file = nil
	return err
}

// Filename returns the path of the currently-open file.
func (s *Sink) Filename() string {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.path
}

// Tag returns the stream tag the sink was configured with.
func (s *Sink) Tag() string {
	return s.tag
}

// AliasPath returns the stream's stable alias path.
func (s *Sink) AliasPath() string {
	return aliasName(s.dir, s.base, s.tag)
}

// Stats returns a snapshot of the sink's counters.
func (s *Sink) Stats() Snapshot {
	return s.stats.GetSnapshot()
}
