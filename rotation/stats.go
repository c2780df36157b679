package rotation

import "sync/atomic"

// Stats tracks sink activity counters
type Stats struct {
	// Rotations counts completed rollovers to a new file
	Rotations uint64
	// BytesWritten counts bytes appended across all of the stream's files
	BytesWritten uint64
	// FilesRemoved counts files deleted by retention cleanup
	FilesRemoved uint64
	// AliasFailures counts alias updates that could not be applied
	AliasFailures uint64
	// CleanupFailures counts retention sweeps stopped by an error
	CleanupFailures uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementRotations atomically increments the rotation counter
func (s *Stats) IncrementRotations() {
	atomic.AddUint64(&s.Rotations, 1)
}

// AddBytesWritten atomically adds to the written-bytes counter
func (s *Stats) AddBytesWritten(n uint64) {
	atomic.AddUint64(&s.BytesWritten, n)
}

// IncrementFilesRemoved atomically increments the removed-files counter
func (s *Stats) IncrementFilesRemoved() {
	atomic.AddUint64(&s.FilesRemoved, 1)
}

// IncrementAliasFailures atomically increments the alias-failure counter
func (s *Stats) IncrementAliasFailures() {
	atomic.AddUint64(&s.AliasFailures, 1)
}

// IncrementCleanupFailures atomically increments the cleanup-failure counter
func (s *Stats) IncrementCleanupFailures() {
	atomic.AddUint64(&s.CleanupFailures, 1)
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	Rotations       uint64
	BytesWritten    uint64
	FilesRemoved    uint64
	AliasFailures   uint64
	CleanupFailures uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Rotations:       atomic.LoadUint64(&s.Rotations),
		BytesWritten:    atomic.LoadUint64(&s.BytesWritten),
		FilesRemoved:    atomic.LoadUint64(&s.FilesRemoved),
		AliasFailures:   atomic.LoadUint64(&s.AliasFailures),
		CleanupFailures: atomic.LoadUint64(&s.CleanupFailures),
	}
}
