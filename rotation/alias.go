package rotation

import (
	"os"
	"path/filepath"
)

// updateAlias repoints an alias path at the given log file. The link
// target is the bare filename, not an absolute path, so the alias stays
// valid when the directory is moved. Any pre-existing alias is removed
// first.
func updateAlias(alias, target string) error {
	if err := os.Remove(alias); err != nil && !os.IsNotExist(err) {
		return err
	}
	return os.Symlink(filepath.Base(target), alias)
}

// refreshAlias updates the stream's alias after a successful open. The
// alias is a convenience pointer only, so failures are counted and
// otherwise ignored.
func (s *Sink) refreshAlias(path string) {
	if err := updateAlias(aliasName(s.dir, s.base, s.tag), path); err != nil {
		s.stats.IncrementAliasFailures()
	}
}
