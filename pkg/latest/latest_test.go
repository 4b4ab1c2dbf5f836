package latest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_NewerRequestSupersedesOlder(t *testing.T) {
	tracker := New(context.Background())

	firstCtx, first := tracker.Begin(context.Background(), "catalog")
	secondCtx, second := tracker.Begin(context.Background(), "catalog")

	require.ErrorIs(t, firstCtx.Err(), context.Canceled)
	require.NoError(t, secondCtx.Err())

	assert.False(t, tracker.IsLatest(first))
	assert.True(t, tracker.IsLatest(second))

	var applied []string
	assert.True(t, tracker.Commit(second, func() { applied = append(applied, "second") }))
	assert.False(t, tracker.Commit(first, func() { applied = append(applied, "first") }))

	assert.Equal(t, []string{"second"}, applied)
	assert.Equal(t, 0, tracker.Pending())
}

func TestTracker_KeysAreIndependent(t *testing.T) {
	tracker := New(context.Background())

	catalogCtx, catalogTicket := tracker.Begin(context.Background(), "catalog")
	_, customersTicket := tracker.Begin(context.Background(), "customers")

	assert.NoError(t, catalogCtx.Err())
	assert.Equal(t, 2, tracker.Pending())
	assert.True(t, tracker.Commit(catalogTicket, nil))
	assert.True(t, tracker.IsLatest(customersTicket))
}

func TestTracker_ParentCancellationAbandonsRequests(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	tracker := New(parent)

	reqCtx, _ := tracker.Begin(context.Background(), "catalog")
	cancel()

	select {
	case <-reqCtx.Done():
	case <-time.After(time.Second):
		t.Fatal("request context was not cancelled with its parent")
	}
}

func TestTracker_Release(t *testing.T) {
	tracker := New(context.Background())

	reqCtx, tk := tracker.Begin(context.Background(), "details")
	tracker.Release(tk)

	assert.ErrorIs(t, reqCtx.Err(), context.Canceled)
	assert.False(t, tracker.IsLatest(tk))
	assert.False(t, tracker.Commit(tk, func() { t.Fatal("released ticket must not apply") }))
}
