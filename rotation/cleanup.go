package rotation

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// cleanupMu serializes retention sweeps process-wide. Streams may share
// a directory and overlapping filename prefixes; concurrent scans must
// not interleave their deletes.
var cleanupMu sync.Mutex

// candidate is one rotated file considered for deletion.
type candidate struct {
	path    string
	size    int64
	modTime time.Time
}

// cleanup enforces the stream's retention budget by deleting the oldest
// rotated files until the combined size fits. The newest file and the
// file open for writing are never deleted. Best-effort: the first
// listing or deletion error stops the sweep.
func (s *Sink) cleanup(open string) {
	cleanupMu.Lock()
	defer cleanupMu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.stats.IncrementCleanupFailures()
		return
	}

	var files []candidate
	var total int64
	prefix := s.tag + "."
	for _, entry := range entries {
		// Aliases are symlinks and fall out here.
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !strings.Contains(name, s.base) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Vanished between list and stat; skip it.
			continue
		}
		files = append(files, candidate{
			path:    filepath.Join(s.dir, name),
			size:    info.Size(),
			modTime: info.ModTime(),
		})
		total += info.Size()
	}

	// Never prune the sole file.
	if len(files) <= 1 {
		return
	}

	// Sort by modification time (oldest first)
	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.Before(files[j].modTime)
	})

	// Delete oldest first until the budget holds, always keeping the
	// newest file.
	for i := 0; i < len(files)-1 && total > s.maxTotalSize; i++ {
		if files[i].path == open {
			continue
		}
		if err := os.Remove(files[i].path); err != nil {
			s.stats.IncrementCleanupFailures()
			return
		}
		total -= files[i].size
		s.stats.IncrementFilesRemoved()
	}
}
