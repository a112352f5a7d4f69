package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forestwatch.app/sos-dashboard-service/pkg/common"
	"forestwatch.app/sos-dashboard-service/pkg/models"
	_ "forestwatch.app/sos-dashboard-service/pkg/testing"
)

func TestStore_InsertFrontPrepends(t *testing.T) {
	common.SetTestLoggerNop()

	store := NewStore(NewBroadcaster())

	store.InsertFront(openAlert("a1", "Ana Lopez"))
	snapshot, inserted := store.InsertFront(openAlert("a2", "Ben Diaz"))

	assert.True(t, inserted)
	require.Len(t, snapshot, 2)
	assert.Equal(t, "a2", snapshot[0].ID)
	assert.Equal(t, "a1", snapshot[1].ID)
}

func TestStore_InsertFrontDuplicateIgnored(t *testing.T) {
	common.SetTestLoggerNop()

	store := NewStore(NewBroadcaster())

	store.InsertFront(openAlert("a1", "Ana Lopez"))
	snapshot, inserted := store.InsertFront(openAlert("a1", "Ana Lopez"))

	assert.False(t, inserted)
	assert.Len(t, snapshot, 1)
}

func TestStore_PatchKeepsPosition(t *testing.T) {
	common.SetTestLoggerNop()

	store := NewStore(NewBroadcaster())
	store.InsertFront(openAlert("a1", "Ana Lopez"))
	store.InsertFront(openAlert("a2", "Ben Diaz"))

	closedAt := "2024-06-01T10:00:00Z"
	snapshot, patched := store.Patch("a1", AlertPatch{Status: models.AlertStatusClosed, ClosedAt: &closedAt})

	assert.True(t, patched)
	require.Len(t, snapshot, 2)
	// patched entry stays where it was
	assert.Equal(t, "a1", snapshot[1].ID)
	assert.Equal(t, models.AlertStatusClosed, snapshot[1].Status)
	assert.Equal(t, &closedAt, snapshot[1].ClosedAt)
	// the other entry is untouched
	assert.Equal(t, models.AlertStatusOpen, snapshot[0].Status)
}

func TestStore_PatchUnknownIDIsNoop(t *testing.T) {
	common.SetTestLoggerNop()

	store := NewStore(NewBroadcaster())
	store.InsertFront(openAlert("a1", "Ana Lopez"))

	before := store.Snapshot()
	snapshot, patched := store.Patch("missing", AlertPatch{Status: models.AlertStatusClosed})

	assert.False(t, patched)
	assert.Equal(t, before, snapshot)
}

func TestStore_PatchIdempotent(t *testing.T) {
	common.SetTestLoggerNop()

	store := NewStore(NewBroadcaster())
	store.InsertFront(openAlert("a1", "Ana Lopez"))

	closedAt := "2024-06-01T10:00:00Z"
	patch := AlertPatch{Status: models.AlertStatusClosed, ClosedAt: &closedAt}

	first, _ := store.Patch("a1", patch)
	second, _ := store.Patch("a1", patch)

	assert.Equal(t, first, second)
}

func TestStore_RemoveUnknownIDIsNoop(t *testing.T) {
	common.SetTestLoggerNop()

	store := NewStore(NewBroadcaster())
	store.InsertFront(openAlert("a1", "Ana Lopez"))

	snapshot, removed := store.Remove("missing")

	assert.False(t, removed)
	assert.Len(t, snapshot, 1)
}

func TestStore_Remove(t *testing.T) {
	common.SetTestLoggerNop()

	store := NewStore(NewBroadcaster())
	store.InsertFront(openAlert("a1", "Ana Lopez"))
	store.InsertFront(openAlert("a2", "Ben Diaz"))

	snapshot, removed := store.Remove("a2")

	assert.True(t, removed)
	require.Len(t, snapshot, 1)
	assert.Equal(t, "a1", snapshot[0].ID)
}

func TestStore_MutationsBroadcast(t *testing.T) {
	common.SetTestLoggerNop()

	events := NewBroadcaster()
	store := NewStore(events)

	ch, cancel := events.Subscribe()
	defer cancel()

	store.InsertFront(openAlert("a1", "Ana Lopez"))
	closedAt := "2024-06-01T10:00:00Z"
	store.Patch("a1", AlertPatch{Status: models.AlertStatusClosed, ClosedAt: &closedAt})
	store.Remove("a1")
	// no-ops stay silent
	store.Patch("missing", AlertPatch{Status: models.AlertStatusClosed})
	store.Remove("missing")

	got := drain(ch)
	require.Len(t, got, 3)
	assert.Equal(t, EventAlertNew, got[0].Kind)
	assert.Equal(t, EventAlertUpdated, got[1].Kind)
	assert.Equal(t, EventAlertRemoved, got[2].Kind)
}

func TestStore_LoadReplacesContents(t *testing.T) {
	common.SetTestLoggerNop()

	store := NewStore(NewBroadcaster())
	store.InsertFront(openAlert("stale", "Old"))

	store.Load([]models.FormattedAlert{openAlert("a1", "Ana Lopez"), openAlert("a2", "Ben Diaz")})

	snapshot := store.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "a1", snapshot[0].ID)

	_, found := store.Get("stale")
	assert.False(t, found)
}
