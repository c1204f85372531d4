package realtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventName(t *testing.T) {
	assert.Equal(t, "productUpdate", Event{Entity: EntityProduct}.Name())
	assert.Equal(t, "orderUpdate", Event{Entity: EntityOrder}.Name())
	assert.Equal(t, "reviewUpdate", Event{Entity: EntityReview}.Name())
}

func TestEventWireFormat(t *testing.T) {
	payload, err := json.Marshal(Event{
		Entity: EntityProduct,
		Action: ActionCreated,
		ID:     "p1",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"entity":"product","action":"created","id":"p1"}`, string(payload))

	var ev Event
	require.NoError(t, json.Unmarshal(payload, &ev))
	assert.Equal(t, EntityProduct, ev.Entity)
	assert.Equal(t, ActionCreated, ev.Action)
	assert.Equal(t, "p1", ev.ID)
}
