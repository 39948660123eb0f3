package storage

import "jackut/internal/models"

// Snapshot is the plain-data transfer form of the whole system state.
// Sessions are flattened to id→login pairs so the on-disk representation
// carries no object graph; the system re-links them against the user
// registry when restoring.
type Snapshot struct {
	Users       map[string]*models.User      `json:"users"`
	Sessions    map[string]string            `json:"sessions"`
	Communities map[string]*models.Community `json:"communities"`
}

// NewSnapshot returns an empty, valid snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Users:       make(map[string]*models.User),
		Sessions:    make(map[string]string),
		Communities: make(map[string]*models.Community),
	}
}
