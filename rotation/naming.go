package rotation

import (
	"path/filepath"
	"time"
)

// timestampLayout is embedded in every rotated filename. Second
// resolution: two rotations within the same second reuse the same path.
const timestampLayout = "20060102_150405"

// timeNow is a variable to allow overriding time.Now in tests
var timeNow = time.Now

// splitPrefix splits a configured path prefix into its directory and
// base filename components. A prefix without a directory part maps to
// the current directory.
func splitPrefix(prefix string) (dir, base string) {
	return filepath.Dir(prefix), filepath.Base(prefix)
}

// fileName builds the timestamped path for a stream's log file:
// {dir}/{TAG}.{timestamp}.{base}.
func fileName(dir, tag, base string, t time.Time) string {
	return filepath.Join(dir, tag+"."+t.Format(timestampLayout)+"."+base)
}

// aliasName builds the stream's stable alias path: {dir}/{base}.{TAG}.
func aliasName(dir, base, tag string) string {
	return filepath.Join(dir, base+"."+tag)
}
