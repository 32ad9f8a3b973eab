package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/borkshop/terrabrush/selection"
)

func TestSet(t *testing.T) {
	var s selection.Set
	assert.False(t, s.IsMarked(1))
	s.Unmark(1)
	s.ClearAll()
	assert.Equal(t, 0, s.Len())

	s.Mark(1)
	s.Mark(2)
	s.Mark(2)
	assert.True(t, s.IsMarked(1))
	assert.True(t, s.IsMarked(2))
	assert.Equal(t, 2, s.Len())

	s.Unmark(1)
	assert.False(t, s.IsMarked(1))
	assert.Equal(t, 1, s.Len())

	s.ClearAll()
	assert.False(t, s.IsMarked(2))
	assert.Equal(t, 0, s.Len())
}

func TestBufferDefersUntilCommit(t *testing.T) {
	var s selection.Set
	s.Mark(3)
	b := selection.NewBuffer(&s)

	b.Mark(1)
	b.Unmark(3)
	assert.False(t, b.IsMarked(1), "mark not visible before commit")
	assert.True(t, b.IsMarked(3), "unmark not visible before commit")
	assert.Equal(t, 2, b.Pending())

	b.Commit()
	assert.True(t, b.IsMarked(1))
	assert.False(t, b.IsMarked(3))
	assert.Equal(t, 0, b.Pending())
}

func TestBufferCommitOrder(t *testing.T) {
	var s selection.Set
	b := selection.NewBuffer(&s)
	b.Mark(1)
	b.Unmark(1)
	b.Unmark(2)
	b.Mark(2)
	b.Commit()
	assert.False(t, s.IsMarked(1))
	assert.True(t, s.IsMarked(2))
}

func TestBufferClearAll(t *testing.T) {
	var s selection.Set
	s.Mark(5)
	b := selection.NewBuffer(&s)
	b.Mark(6)
	b.ClearAll()
	assert.Equal(t, 0, b.Pending())
	b.Commit()
	assert.Equal(t, 0, s.Len())
}
