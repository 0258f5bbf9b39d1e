package domain

import "github.com/gammazero/deque"

// GapBuffer absorbs deltas that arrive before a usable snapshot exists:
// the feed is live from the first message, the snapshot comes later and is
// usually behind it. Deltas are kept in arrival order and spliced onto the
// snapshot once its nonce is known.
type GapBuffer struct {
	deltas  deque.Deque[*RawDelta]
	hardCap int

	snapshotRequested bool
}

func NewGapBuffer(hardCap int) *GapBuffer {
	return &GapBuffer{hardCap: hardCap}
}

// Push appends a delta and returns the buffer length. Exceeding the hard
// cap before a snapshot became usable is ErrBufferOverflow; the delta is
// not retained.
func (b *GapBuffer) Push(delta *RawDelta) (int, error) {
	if b.hardCap > 0 && b.deltas.Len() >= b.hardCap {
		return b.deltas.Len(), ErrBufferOverflow
	}

	b.deltas.PushBack(delta)
	return b.deltas.Len(), nil
}

func (b *GapBuffer) Len() int {
	return b.deltas.Len()
}

// ShouldRequestSnapshot reports whether enough deltas have accumulated to
// make a snapshot fetch worthwhile. Waiting for a few deltas first makes
// the eventual snapshot very likely to be behind the buffer, which is the
// only case Reconcile can splice.
func (b *GapBuffer) ShouldRequestSnapshot(delayThreshold int) bool {
	return !b.snapshotRequested && b.deltas.Len() >= delayThreshold
}

// MarkSnapshotRequested records that a fetch is in flight so further
// pushes do not trigger another one.
func (b *GapBuffer) MarkSnapshotRequested() {
	b.snapshotRequested = true
}

// Clear drops the buffered deltas, keeping the in-flight marker. Used when
// a failed snapshot attempt is retried.
func (b *GapBuffer) Clear() {
	b.deltas.Clear()
}

// Reset returns the buffer to its initial state.
func (b *GapBuffer) Reset() {
	b.deltas.Clear()
	b.snapshotRequested = false
}

// Reconcile returns, in arrival order, the buffered deltas to replay on
// top of a snapshot with the given nonce. If even the oldest buffered
// delta starts ahead of snapshotNonce+1 the snapshot is hopelessly stale
// and the gap cannot be closed: ErrUnrecoverableGap.
func (b *GapBuffer) Reconcile(snapshotNonce int64) ([]*RawDelta, error) {
	n := b.deltas.Len()
	if n == 0 {
		return nil, nil
	}

	if b.deltas.Front().seqStart() > snapshotNonce+1 {
		return nil, ErrUnrecoverableGap
	}

	replay := make([]*RawDelta, 0, n)
	for i := 0; i < n; i++ {
		delta := b.deltas.At(i)
		if delta.Nonce > snapshotNonce {
			replay = append(replay, delta)
		}
	}

	return replay, nil
}
