package relieff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeighborTableFillsUnderCapacity(t *testing.T) {
	tbl := newNeighborTable(1, 3)
	tbl.offer(0, 5.0, 10)
	tbl.offer(0, 2.0, 11)

	assert.Equal(t, 2, tbl.size(0), "table should hold every offer while under capacity")
	assert.Equal(t, 0, tbl.worstIdx[0], "worst slot should track the largest distance seen")
}

func TestNeighborTableReplacesWorstWhenFull(t *testing.T) {
	tbl := newNeighborTable(1, 2)
	tbl.offer(0, 5.0, 1)
	tbl.offer(0, 3.0, 2)
	assert.Equal(t, 2, tbl.size(0))

	// 5.0 is currently the worst; a closer candidate should replace it.
	tbl.offer(0, 1.0, 3)
	assert.Equal(t, 2, tbl.size(0), "size should stay at capacity")

	found := false
	for j := 0; j < tbl.size(0); j++ {
		if tbl.entry(0, j).idx == 3 {
			found = true
		}
		assert.NotEqual(t, 5.0, tbl.entry(0, j).dist, "the worst entry should have been evicted")
	}
	assert.True(t, found, "the new closer candidate should be present")
}

func TestNeighborTableRejectsWorseThanWorst(t *testing.T) {
	tbl := newNeighborTable(1, 2)
	tbl.offer(0, 1.0, 1)
	tbl.offer(0, 2.0, 2)

	tbl.offer(0, 10.0, 3)
	assert.Equal(t, 2, tbl.size(0), "a farther candidate than every stored entry must be rejected")
	for j := 0; j < tbl.size(0); j++ {
		assert.NotEqual(t, 3, tbl.entry(0, j).idx, "the rejected candidate must not appear in the table")
	}
}

func TestNeighborTableReset(t *testing.T) {
	tbl := newNeighborTable(2, 2)
	tbl.offer(0, 1.0, 1)
	tbl.offer(1, 2.0, 2)
	tbl.reset()

	assert.Equal(t, 0, tbl.size(0), "reset must clear class 0's population")
	assert.Equal(t, 0, tbl.size(1), "reset must clear class 1's population")
}

func TestNeighborTableTiesKeepFirstMax(t *testing.T) {
	tbl := newNeighborTable(1, 2)
	tbl.offer(0, 3.0, 1)
	tbl.offer(0, 3.0, 2)
	assert.Equal(t, 0, tbl.worstIdx[0], "on a tie, the first-seen maximum should remain the worst slot")
}
