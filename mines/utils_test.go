package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsDiff(t *testing.T) {
	assert.Equal(t, 0, absDiff(3, 3))
	assert.Equal(t, 2, absDiff(1, 3))
	assert.Equal(t, 2, absDiff(3, 1))
	assert.Equal(t, 5, absDiff(-2, 3))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, clamp(1, 5, 50))
	assert.Equal(t, 50, clamp(80, 5, 50))
	assert.Equal(t, 9, clamp(9, 5, 50))
}

func TestNextCellState(t *testing.T) {
	assert.Equal(t, Flagged, Hidden.next())
	assert.Equal(t, Questioned, Flagged.next())
	assert.Equal(t, Hidden, Questioned.next())
	assert.Equal(t, Revealed, Revealed.next())
}
