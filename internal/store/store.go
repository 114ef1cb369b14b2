package store

import (
	"encoding/json"
	"fmt"
	"time"
)

// Snapshot slot names. Each slot holds one whole serialized structure and is
// overwritten wholesale after every mutation.
const (
	SlotCustomers = "customers"
	SlotTickets   = "tickets"
	SlotDashboard = "dashboard"
	SlotCounters  = "counters"
)

// SnapshotVersion is the current envelope schema version. Bump it when the
// payload layout of any slot changes incompatibly.
const SnapshotVersion = 1

// Store is the snapshot persistence contract. Load returns (nil, nil) for a
// slot that has never been written; callers fall back to their default value.
// SaveAll writes several slots in one call so backends that can commit them
// atomically (sqlite) do.
type Store interface {
	Load(slot string) ([]byte, error)
	Save(slot string, data []byte) error
	SaveAll(snapshots map[string][]byte) error
	Close() error
}

type envelope struct {
	Version int             `json:"version"`
	SavedAt time.Time       `json:"saved_at"`
	Data    json.RawMessage `json:"data"`
}

// Encode wraps a structure in the versioned snapshot envelope.
func Encode(v any) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot payload: %w", err)
	}
	return json.Marshal(envelope{
		Version: SnapshotVersion,
		SavedAt: time.Now().UTC(),
		Data:    payload,
	})
}

// Decode unwraps an envelope produced by Encode into v. Snapshots written by
// a newer schema version are rejected rather than half-read.
func Decode(data []byte, v any) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decode snapshot envelope: %w", err)
	}
	if env.Version > SnapshotVersion {
		return fmt.Errorf("snapshot version %d is newer than supported version %d", env.Version, SnapshotVersion)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("decode snapshot payload: %w", err)
	}
	return nil
}
