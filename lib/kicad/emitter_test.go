package kicad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialIDs(t *testing.T) {
	ids := SequentialIDs()
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", ids())
	assert.Equal(t, "00000000-0000-0000-0000-000000000002", ids())
}

func TestUUIDsAreUnique(t *testing.T) {
	ids := UUIDs()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := ids()
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestFtoaShortestForm(t *testing.T) {
	assert.Equal(t, "0", Ftoa(0))
	assert.Equal(t, "2.54", Ftoa(2.54))
	assert.Equal(t, "-0.4775", Ftoa(-0.4775))
	assert.Equal(t, "0.51", Ftoa(0.51))
	assert.Equal(t, "10", Ftoa(10))
}

func TestFtoaNegatedZero(t *testing.T) {
	assert.Equal(t, "0", Ftoa(-0.0))
}
