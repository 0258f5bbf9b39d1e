package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferedDelta(nonce int64) *RawDelta {
	return &RawDelta{Nonce: nonce}
}

func TestGapBuffer_ReconcileSplicesInArrivalOrder(t *testing.T) {
	buffer := NewGapBuffer(0)
	for _, nonce := range []int64{5, 6, 7} {
		_, err := buffer.Push(bufferedDelta(nonce))
		require.NoError(t, err)
	}

	// Snapshot at nonce 6 already covers deltas 5 and 6.
	replay, err := buffer.Reconcile(6)
	require.NoError(t, err)
	require.Len(t, replay, 1)
	assert.Equal(t, int64(7), replay[0].Nonce)
}

func TestGapBuffer_ReconcileSnapshotCoversWholeBuffer(t *testing.T) {
	buffer := NewGapBuffer(0)
	for _, nonce := range []int64{5, 6, 7} {
		_, err := buffer.Push(bufferedDelta(nonce))
		require.NoError(t, err)
	}

	replay, err := buffer.Reconcile(9)
	require.NoError(t, err)
	assert.Empty(t, replay)
}

func TestGapBuffer_ReconcileUnrecoverableGap(t *testing.T) {
	buffer := NewGapBuffer(0)
	for _, nonce := range []int64{50, 51} {
		_, err := buffer.Push(bufferedDelta(nonce))
		require.NoError(t, err)
	}

	// The snapshot predates even the oldest buffered delta: the deltas
	// between nonce 10 and 50 are lost for good.
	replay, err := buffer.Reconcile(10)
	assert.ErrorIs(t, err, ErrUnrecoverableGap)
	assert.Nil(t, replay)
}

func TestGapBuffer_ReconcileRangeSequenced(t *testing.T) {
	buffer := NewGapBuffer(0)

	// Events cover id ranges: recoverability is judged on where the
	// oldest one starts, not where it ends.
	_, err := buffer.Push(&RawDelta{FirstNonce: 8, Nonce: 12})
	require.NoError(t, err)
	_, err = buffer.Push(&RawDelta{FirstNonce: 13, Nonce: 20})
	require.NoError(t, err)

	replay, err := buffer.Reconcile(9)
	require.NoError(t, err)
	require.Len(t, replay, 2)
	assert.Equal(t, int64(12), replay[0].Nonce)
}

func TestGapBuffer_ReconcileRangeStartsPastSnapshot(t *testing.T) {
	buffer := NewGapBuffer(0)

	_, err := buffer.Push(&RawDelta{FirstNonce: 11, Nonce: 12})
	require.NoError(t, err)

	_, err = buffer.Reconcile(9)
	assert.ErrorIs(t, err, ErrUnrecoverableGap)
}

func TestGapBuffer_ReconcileEmpty(t *testing.T) {
	buffer := NewGapBuffer(0)

	replay, err := buffer.Reconcile(10)
	require.NoError(t, err)
	assert.Nil(t, replay)
}

func TestGapBuffer_Overflow(t *testing.T) {
	buffer := NewGapBuffer(2)

	_, err := buffer.Push(bufferedDelta(1))
	require.NoError(t, err)
	_, err = buffer.Push(bufferedDelta(2))
	require.NoError(t, err)

	n, err := buffer.Push(bufferedDelta(3))
	assert.ErrorIs(t, err, ErrBufferOverflow)
	assert.Equal(t, 2, n, "the overflowing delta must not be retained")
}

func TestGapBuffer_SnapshotRequestGate(t *testing.T) {
	buffer := NewGapBuffer(0)

	_, err := buffer.Push(bufferedDelta(1))
	require.NoError(t, err)
	assert.False(t, buffer.ShouldRequestSnapshot(2))

	_, err = buffer.Push(bufferedDelta(2))
	require.NoError(t, err)
	assert.True(t, buffer.ShouldRequestSnapshot(2))

	buffer.MarkSnapshotRequested()
	assert.False(t, buffer.ShouldRequestSnapshot(2), "an in-flight fetch suppresses further requests")

	// Clear keeps the in-flight marker, Reset drops it.
	buffer.Clear()
	assert.Equal(t, 0, buffer.Len())
	_, err = buffer.Push(bufferedDelta(3))
	require.NoError(t, err)
	_, err = buffer.Push(bufferedDelta(4))
	require.NoError(t, err)
	assert.False(t, buffer.ShouldRequestSnapshot(2))

	buffer.Reset()
	_, err = buffer.Push(bufferedDelta(5))
	require.NoError(t, err)
	_, err = buffer.Push(bufferedDelta(6))
	require.NoError(t, err)
	assert.True(t, buffer.ShouldRequestSnapshot(2))
}
