package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry is an immutable record of one mutation.
// Entities are referenced by type and identifier only, so entries outlive what they describe.
type AuditEntry struct {
	ID            int64          `json:"id"`
	EventAt       time.Time      `json:"event_at"`
	ActorUserID   *int64         `json:"actor_user_id,omitempty"`
	EntityType    EntityType     `json:"entity_type"`
	EntityID      string         `json:"entity_id"`
	Action        AuditAction    `json:"action"`
	OldData       map[string]any `json:"old_data,omitempty"`
	NewData       map[string]any `json:"new_data,omitempty"`
	IPAddress     *string        `json:"ip_address,omitempty"`
	CorrelationID *uuid.UUID     `json:"correlation_id,omitempty"`
}
