package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestHub_BroadcastReachesRegisteredClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(nil)
	go h.Run(ctx)

	a := NewClient(h, nil)
	b := NewClient(h, nil)
	h.Register(a)
	h.Register(b)
	waitFor(t, func() bool { return h.ClientCount() == 2 })

	h.Broadcast([]byte("hello"))

	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.send:
			if string(msg) != "hello" {
				t.Fatalf("expected hello, got %q", msg)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("client did not receive broadcast")
		}
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(nil)
	go h.Run(ctx)

	c := NewClient(h, nil)
	h.Register(c)
	waitFor(t, func() bool { return h.ClientCount() == 1 })

	h.Unregister(c)
	waitFor(t, func() bool { return h.ClientCount() == 0 })

	if _, ok := <-c.send; ok {
		t.Fatalf("expected send channel to be closed")
	}
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(nil)
	go h.Run(ctx)

	c := NewClient(h, nil)
	h.Register(c)
	waitFor(t, func() bool { return h.ClientCount() == 1 })

	for i := 0; i < clientBuffer+1; i++ {
		h.Broadcast([]byte("x"))
	}
	waitFor(t, func() bool { return h.ClientCount() == 0 })
}

func TestHub_StopClosesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	h := NewHub(nil)
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	c := NewClient(h, nil)
	h.Register(c)
	waitFor(t, func() bool { return h.ClientCount() == 1 })

	cancel()
	<-done

	if h.ClientCount() != 0 {
		t.Fatalf("expected no clients after stop")
	}
}

func TestNilHub_IsSafe(t *testing.T) {
	var h *Hub
	h.Broadcast([]byte("x"))
	h.Register(nil)
	if h.ClientCount() != 0 {
		t.Fatalf("expected 0")
	}
}

func TestNotifier_BroadcastsContentUpdatedEvent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(nil)
	go h.Run(ctx)

	c := NewClient(h, nil)
	h.Register(c)
	waitFor(t, func() bool { return h.ClientCount() == 1 })

	n := NewNotifier(h)
	n.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	id := uuid.New()
	n.ContentUpdated("project", "created", id)

	var msg []byte
	select {
	case msg = <-c.send:
	case <-time.After(2 * time.Second):
		t.Fatalf("no event received")
	}

	var evt ContentUpdatedEvent
	if err := json.Unmarshal(msg, &evt); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if evt.Type != "content_updated" || evt.Entity != "project" || evt.Action != "created" || evt.ID != id {
		t.Fatalf("unexpected event: %+v", evt)
	}
	if evt.Timestamp != "2024-05-01T12:00:00Z" {
		t.Fatalf("unexpected timestamp %q", evt.Timestamp)
	}
}

func TestNotifier_NilHubIsNoop(t *testing.T) {
	NewNotifier(nil).ContentUpdated("skill", "deleted", uuid.New())
}
