package domain

import (
	"time"

	"github.com/google/uuid"
)

// Changes is a structured diff: field name -> old/new value (or a flat
// value for additive entries). Serialized as JSONB at the storage boundary.
type Changes map[string]any

// HistoryEntry is an immutable audit record of one state change affecting
// a unit or its residents. Entries are append-only and must outlive the
// entities they describe: ResidentID and ChangedByUserID are weak
// references that null out when their targets are deleted.
type HistoryEntry struct {
	ID              uuid.UUID
	UnitID          uuid.UUID
	ResidentID      *uuid.UUID
	ActionType      ActionType
	Description     string
	OldValues       Changes
	NewValues       Changes
	ChangedByUserID *uuid.UUID
	Metadata        Changes
	CreatedAt       time.Time
}
