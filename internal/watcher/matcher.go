package watcher

import (
	"fmt"
	"path/filepath"
)

// SQLite companion files that change when the ledger is written.
var companionSuffixes = []string{"", "-wal", "-journal"}

// matcher decides whether a filesystem event concerns the watched database.
type matcher struct {
	dir   string
	db    string
	names map[string]bool
}

func newMatcher(dbPath string) (*matcher, error) {
	abs, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dbPath, err)
	}

	// Follow a symlinked data directory so event paths line up.
	dir := filepath.Dir(abs)
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}

	m := &matcher{
		dir:   dir,
		db:    filepath.Join(dir, filepath.Base(abs)),
		names: make(map[string]bool, len(companionSuffixes)),
	}
	for _, suffix := range companionSuffixes {
		m.names[m.db+suffix] = true
	}
	return m, nil
}

// matches reports whether path is the database or one of its companions.
func (m *matcher) matches(path string) bool {
	if m.names[path] {
		return true
	}
	if resolved, err := filepath.EvalSymlinks(filepath.Dir(path)); err == nil {
		return m.names[filepath.Join(resolved, filepath.Base(path))]
	}
	return false
}
