package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Backup snapshots the three documents into backup/backup_<timestamp>/ under
// the data directory and returns the snapshot path. Documents that do not
// exist yet are skipped.
func (s *Store) Backup() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stamp := time.Now().Format("20060102_150405")
	dir := filepath.Join(s.dir, "backup", "backup_"+stamp)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	for _, name := range []string{coursesFile, statusFile, semesterFile} {
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to read %s for backup: %w", name, err)
		}

		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return "", fmt.Errorf("failed to write backup of %s: %w", name, err)
		}
	}

	return dir, nil
}
