package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestAddAndCovered(t *testing.T) {
	tr := NewTracker()
	tr.Add("patch-1", r3.Vec{X: 0, Y: 0, Z: 0}, 10)

	assert.True(t, tr.Covered(r3.Vec{X: 5}))
	assert.False(t, tr.Covered(r3.Vec{X: 100}))
}

func TestRemove(t *testing.T) {
	tr := NewTracker()
	tr.Add("patch-1", r3.Vec{}, 10)
	require.Equal(t, 1, tr.Len())

	tr.Remove("patch-1")
	assert.Equal(t, 0, tr.Len())
	assert.False(t, tr.Covered(r3.Vec{}))
}

func TestReAddReplaces(t *testing.T) {
	tr := NewTracker()
	tr.Add("patch-1", r3.Vec{}, 1)
	tr.Add("patch-1", r3.Vec{X: 1000}, 1)

	assert.Equal(t, 1, tr.Len())
	assert.False(t, tr.Covered(r3.Vec{}))
	assert.True(t, tr.Covered(r3.Vec{X: 1000}))
}

func TestOverlapping(t *testing.T) {
	tr := NewTracker()
	tr.Add("a", r3.Vec{X: 0}, 5)
	tr.Add("b", r3.Vec{X: 100}, 5)

	found := tr.Overlapping(r3.Vec{X: 1}, 1)
	require.Len(t, found, 1)
	assert.Equal(t, "a", found[0].ID)
}
