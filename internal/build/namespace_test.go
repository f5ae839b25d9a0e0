package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreshIsUniquePerBase(t *testing.T) {
	ns := NewNamespace()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := ns.Fresh("t", 0)
		assert.False(t, seen[id], "duplicate identifier %s", id)
		seen[id] = true
	}
}

func TestFreshAcrossBases(t *testing.T) {
	ns := NewNamespace()
	a := ns.Fresh("t", 0)
	b := ns.Fresh("l", 0)
	c := ns.Fresh("t", 0)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, b, c)
}

func TestFreshHonorsHint(t *testing.T) {
	ns := NewNamespace()
	assert.Equal(t, "l_5", ns.Fresh("l", 5))
	// counter moved past the hint; a lower hint must not reuse names
	assert.Equal(t, "l_6", ns.Fresh("l", 0))
	assert.Equal(t, "l_10", ns.Fresh("l", 10))
}

func TestFreshIsDeterministic(t *testing.T) {
	a := NewNamespace()
	b := NewNamespace()
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Fresh("check", 0), b.Fresh("check", 0))
	}
}
