package feed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forestwatch.app/sos-dashboard-service/pkg/models"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	closedAt := "2024-06-01T10:00:00Z"
	ev := Event{
		Type: EventUpdate,
		Old:  &models.SOSAlert{ID: "a1", Status: models.AlertStatusOpen},
		New:  &models.SOSAlert{ID: "a1", Status: models.AlertStatusClosed, ClosedAt: &closedAt},
	}

	data, err := Encode(ev)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, EventUpdate, decoded.Type)
	require.NotNil(t, decoded.Old)
	require.NotNil(t, decoded.New)
	assert.Equal(t, models.AlertStatusOpen, decoded.Old.Status)
	assert.Equal(t, &closedAt, decoded.New.ClosedAt)
}

func TestDecode_RejectsMalformedEvents(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"not json", `{{`},
		{"unknown type", `{"type":"TRUNCATE","new":{"id":"a1"}}`},
		{"insert without new", `{"type":"INSERT"}`},
		{"update without new", `{"type":"UPDATE","old":{"id":"a1"}}`},
		{"delete without old", `{"type":"DELETE","new":{"id":"a1"}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.payload))
			assert.Error(t, err)
		})
	}
}

func TestEvent_AlertID(t *testing.T) {
	assert.Equal(t, "a1", Event{Type: EventInsert, New: &models.SOSAlert{ID: "a1"}}.AlertID())
	assert.Equal(t, "a2", Event{Type: EventDelete, Old: &models.SOSAlert{ID: "a2"}}.AlertID())
	assert.Equal(t, "", Event{Type: EventInsert}.AlertID())
}

func TestLocalBus_LoopsBack(t *testing.T) {
	bus := NewLocalBus()

	ev := Event{Type: EventInsert, New: &models.SOSAlert{ID: "a1"}}
	require.NoError(t, bus.Publish(context.Background(), ev))

	got := <-bus.Events()
	assert.Equal(t, "a1", got.New.ID)
}

func TestLocalBus_PublishHonorsContext(t *testing.T) {
	bus := &LocalBus{events: make(chan Event)} // unbuffered, nobody reading

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := bus.Publish(ctx, Event{Type: EventInsert, New: &models.SOSAlert{ID: "a1"}})
	assert.ErrorIs(t, err, context.Canceled)
}
