package selection

type op struct {
	id   ID
	mark bool
}

// Buffer defers marking: Mark and Unmark are recorded and only reach the
// underlying Tracker on Commit, while IsMarked keeps answering from the
// committed state. A scan that marks vertices as it goes therefore cannot
// change the outcome for vertices later in the same scan.
type Buffer struct {
	Tracker Tracker
	ops     []op
}

var _ Tracker = (*Buffer)(nil)

// NewBuffer wraps a tracker.
func NewBuffer(t Tracker) *Buffer {
	return &Buffer{Tracker: t}
}

// IsMarked reports the committed state.
func (b *Buffer) IsMarked(id ID) bool {
	return b.Tracker.IsMarked(id)
}

// Mark records a mark for the next Commit.
func (b *Buffer) Mark(id ID) {
	b.ops = append(b.ops, op{id, true})
}

// Unmark records an unmark for the next Commit.
func (b *Buffer) Unmark(id ID) {
	b.ops = append(b.ops, op{id, false})
}

// ClearAll drops anything pending and clears the underlying tracker
// immediately.
func (b *Buffer) ClearAll() {
	b.ops = b.ops[:0]
	b.Tracker.ClearAll()
}

// Pending returns the number of recorded, uncommitted operations.
func (b *Buffer) Pending() int {
	return len(b.ops)
}

// Commit replays recorded operations onto the tracker, in order.
func (b *Buffer) Commit() {
	for _, o := range b.ops {
		if o.mark {
			b.Tracker.Mark(o.id)
		} else {
			b.Tracker.Unmark(o.id)
		}
	}
	b.ops = b.ops[:0]
}
