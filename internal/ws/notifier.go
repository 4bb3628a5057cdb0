package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const eventContentUpdated = "content_updated"

type ContentUpdatedEvent struct {
	Type      string    `json:"type"`
	Entity    string    `json:"entity"`
	Action    string    `json:"action"`
	ID        uuid.UUID `json:"id"`
	Timestamp string    `json:"timestamp"`
}

// Notifier tells connected clients that content changed. It carries no
// content; clients refetch if they care.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) ContentUpdated(entity, action string, id uuid.UUID) {
	if n == nil || n.hub == nil {
		return
	}

	b, err := json.Marshal(ContentUpdatedEvent{
		Type:      eventContentUpdated,
		Entity:    entity,
		Action:    action,
		ID:        id,
		Timestamp: n.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
