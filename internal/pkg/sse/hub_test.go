package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_SubscriberCounts(t *testing.T) {
	hub := NewHub()

	_, cleanupA1 := hub.Subscribe("co-a")
	_, cleanupA2 := hub.Subscribe("co-a")
	_, cleanupB := hub.Subscribe("co-b")

	assert.Equal(t, 2, hub.SubscriberCount("co-a"))
	assert.Equal(t, 1, hub.SubscriberCount("co-b"))
	assert.Equal(t, 0, hub.SubscriberCount("co-c"))
	assert.Equal(t, 3, hub.TotalSubscribers())

	cleanupA1()
	cleanupA2()
	assert.Equal(t, 0, hub.SubscriberCount("co-a"))
	assert.Equal(t, 1, hub.TotalSubscribers())

	cleanupB()
	assert.Equal(t, 0, hub.TotalSubscribers())
}

func TestHub_PublishIsScopedToCompany(t *testing.T) {
	hub := NewHub()

	chA, cleanupA := hub.Subscribe("co-a")
	defer cleanupA()
	chB, cleanupB := hub.Subscribe("co-b")
	defer cleanupB()

	hub.Publish("co-a", Event{CompanyID: "co-a", Event: "punch.registered"})

	select {
	case event := <-chA:
		assert.Equal(t, "punch.registered", event.Event)
	default:
		t.Fatal("expected subscriber of co-a to receive the event")
	}

	select {
	case <-chB:
		t.Fatal("subscriber of co-b must not receive co-a events")
	default:
	}
}
