package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents the kind of change an event describes
type EventType string

const (
	EventTypeRenamed EventType = "renamed"
	EventTypeDeleted EventType = "deleted"
	EventTypeJoined  EventType = "joined"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeWorkspace EntityType = "workspace"
	EntityTypeMember    EntityType = "member"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "workspace.renamed"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "workspace"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// WorkspaceRenamed creates a workspace.renamed event
func WorkspaceRenamed(payload interface{}) Event {
	return NewEvent(EventTypeRenamed, EntityTypeWorkspace, payload)
}

// WorkspaceDeleted creates a workspace.deleted event
func WorkspaceDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeWorkspace, payload)
}

// MemberJoined creates a member.joined event
func MemberJoined(payload interface{}) Event {
	return NewEvent(EventTypeJoined, EntityTypeMember, payload)
}
