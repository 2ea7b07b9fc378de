package websocket

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHub_Implements_EventPublisher(t *testing.T) {
	var _ EventPublisher = (*Hub)(nil)
}

func TestHub_Publish(t *testing.T) {
	hub := NewHub()

	workspaceID := uuid.New()
	client := newMockClient("client-1", workspaceID)
	hub.Register(client)

	var publisher EventPublisher = hub
	event := WorkspaceRenamed(map[string]interface{}{"id": workspaceID.String()})
	publisher.Publish(workspaceID, event)

	// Allow async broadcast to complete
	time.Sleep(10 * time.Millisecond)

	assert.Len(t, client.GetMessages(), 1)
}

func TestNoOpPublisher_Publish(t *testing.T) {
	publisher := &NoOpPublisher{}

	assert.NotPanics(t, func() {
		event := MemberJoined(map[string]interface{}{"userId": uuid.New().String()})
		publisher.Publish(uuid.New(), event)
	})
}

func TestNoOpPublisher_Implements_EventPublisher(t *testing.T) {
	var _ EventPublisher = (*NoOpPublisher)(nil)
}
