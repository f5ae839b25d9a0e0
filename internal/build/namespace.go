package build

import "fmt"

// Base names for the identifier families one build session allocates.
// Keeping them distinct guarantees temporaries, labels, and method names
// never collide with each other.
const (
	tmpBase    = "t"
	labelBase  = "l"
	methodBase = "check"
)

// Namespace allocates identifiers that are unique within one build
// session. Each base name carries its own monotonically increasing
// counter.
type Namespace struct {
	counters map[string]int
}

// NewNamespace returns an empty allocator.
func NewNamespace() *Namespace {
	return &Namespace{counters: make(map[string]int)}
}

// Fresh returns an identifier distinct from every identifier previously
// issued by this Namespace. The per-base counter starts at hint if no
// larger value has been reached.
func (n *Namespace) Fresh(base string, hint int) string {
	next := n.counters[base]
	if next < hint {
		next = hint
	}
	n.counters[base] = next + 1
	return fmt.Sprintf("%s_%d", base, next)
}
