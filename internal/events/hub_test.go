package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubFanOut(t *testing.T) {
	h := NewHub()
	a := h.Subscribe()
	b := h.Subscribe()
	defer h.Unsubscribe(a)
	defer h.Unsubscribe(b)

	h.Publish("hello")

	assert.Equal(t, "hello", <-a)
	assert.Equal(t, "hello", <-b)
}

func TestHubDropsWhenSubscriberIsFull(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	for i := 0; i < 20; i++ {
		h.Publish("x")
	}
	// the rest were dropped, publish never blocked
	assert.Len(t, ch, subscriberBuffer)
}

func TestHubUnsubscribeStopsDelivery(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	h.Unsubscribe(ch)

	// closed channel reads are immediate zero values
	_, ok := <-ch
	assert.False(t, ok)

	// publishing after unsubscribe must not panic
	h.Publish("late")
}

func TestMakeEvent(t *testing.T) {
	raw := MakeEvent("req-1", "jobs_imported", 1, map[string]any{"count": 3})

	var e Event
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	assert.Equal(t, "jobs_imported", e.Type)
	assert.Equal(t, 1, e.Version)
	assert.Equal(t, "req-1", e.RequestID)
	assert.JSONEq(t, `{"count":3}`, string(e.Data))
	assert.False(t, e.At.IsZero())
}
