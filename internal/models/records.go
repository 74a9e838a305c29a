package models

import (
	"encoding/json"
	"fmt"
)

// Signal represents one signal record as served by the backend.
// LockVersion is the optimistic-concurrency token: the backend increments it
// on every successful mutation, and a mutation is only accepted when the
// submitted token matches the stored one.
type Signal struct {
	ID            int64   `json:"id"`
	FrequencyFrom float64 `json:"frequency_from"`
	FrequencyTo   float64 `json:"frequency_to"`
	Modulation    string  `json:"modulation"`
	Power         float64 `json:"power"`
	CreatedBy     string  `json:"created_by"`
	UpdatedBy     string  `json:"updated_by"`
	LockVersion   int64   `json:"lock_version"`
}

// Label renders the one-line form used in lists and the signal picker.
func (s *Signal) Label() string {
	return fmt.Sprintf("#%d | f=%g-%g | %s | p=%g", s.ID, s.FrequencyFrom, s.FrequencyTo, s.Modulation, s.Power)
}

// Asset represents one asset record. SignalIDs is the server-owned ordered
// reference set; the picker widget's checked state is derived from it and
// never the other way around.
type Asset struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	SignalIDs   []int64 `json:"signal_ids"`
	CreatedBy   string  `json:"created_by"`
	UpdatedBy   string  `json:"updated_by"`
	LockVersion int64   `json:"lock_version"`
}

// VersionEntry is one immutable audit entry of a record's history.
// The client only reads these; Hash is displayed verbatim and validated by
// the backend, not here.
type VersionEntry struct {
	Version   int64           `json:"version"`
	Operation string          `json:"operation"` // create, update or delete
	Snapshot  json.RawMessage `json:"snapshot"`
	ChangedBy string          `json:"changed_by"`
	ChangedAt string          `json:"changed_at"`
	Hash      string          `json:"hash"`
}

// TrashEntry is the epitaph of a soft-deleted record.
type TrashEntry struct {
	EntityType string `json:"entity_type"`
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	DeletedBy  string `json:"deleted_by"`
	DeletedAt  string `json:"deleted_at"`
}

// ChangeLogRow is a denormalized, human-oriented projection of a version
// entry, served by the backend change feed in display order.
type ChangeLogRow struct {
	ChangedAt  string   `json:"changed_at"`
	ChangedBy  string   `json:"changed_by"`
	Operation  string   `json:"operation"`
	EntityType string   `json:"entity_type"`
	EntityID   int64    `json:"entity_id"`
	Changes    []string `json:"changes"`
}
