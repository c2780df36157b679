package rotation

import "time"

// Policy decides when a sink rolls over to a new file.
type Policy struct {
	// MaxFileSize is the size threshold in bytes for a single file
	MaxFileSize int64
	// CheckInterval is how often the approximate size counter is
	// corrected against the on-disk size
	CheckInterval time.Duration
}

// NeedsRotation reports whether appending incoming bytes to a file of
// the given size would push it past MaxFileSize. Landing exactly on the
// threshold does not rotate.
func (p Policy) NeedsRotation(current, incoming int64) bool {
	return current+incoming > p.MaxFileSize
}

// Due reports whether enough time has passed since the last on-disk
// size check that the counter should be corrected against a fresh stat.
func (p Policy) Due(since time.Duration) bool {
	return since >= p.CheckInterval
}
