// Package storage persists the full system state as one JSON file.
package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// FileStore loads and saves snapshots against a single file on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a store bound to the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the snapshot from disk. A missing file is not an error: the
// store returns an empty snapshot so the system starts from a clean state.
func (s *FileStore) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.WithField("path", s.path).Info("No persisted state found, starting empty")
			return NewSnapshot(), nil
		}
		return nil, fmt.Errorf("failed to read state file: %v", err)
	}

	snap := NewSnapshot()
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("failed to decode state file: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"path":  s.path,
		"users": len(snap.Users),
	}).Info("Persisted state loaded")
	return snap, nil
}

// Save writes the whole snapshot to disk in one shot.
func (s *FileStore) Save(snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %v", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"path":  s.path,
		"users": len(snap.Users),
	}).Info("System state persisted")
	return nil
}
