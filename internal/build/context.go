package build

import "github.com/dinanoe/silicon/infer"

// Role says whether a specification instance was granted or discharged at
// a snapshot point.
type Role int

const (
	Inhaled Role = iota
	Exhaled
)

func (r Role) String() string {
	switch r {
	case Inhaled:
		return "inhaled"
	case Exhaled:
		return "exhaled"
	default:
		return "?"
	}
}

// Record pairs a specification instance with the role it played at a
// snapshot point.
type Record struct {
	Instance *infer.Instance
	Role     Role
}

// Context indexes snapshot labels to the specification instances active
// there. It is append-only within one build and consumed afterwards by
// the example-extraction stage.
type Context struct {
	records map[string][]Record
	labels  []string
}

// NewContext returns an empty index.
func NewContext() *Context {
	return &Context{records: make(map[string][]Record)}
}

// Add registers an instance under a label.
func (c *Context) Add(label string, inst *infer.Instance, role Role) {
	if _, ok := c.records[label]; !ok {
		c.labels = append(c.labels, label)
	}
	c.records[label] = append(c.records[label], Record{Instance: inst, Role: role})
}

// At returns the records registered under a label, in registration order.
func (c *Context) At(label string) []Record {
	return c.records[label]
}

// Labels returns every label with at least one record, in first-seen
// order.
func (c *Context) Labels() []string {
	return c.labels
}

// Len returns the number of distinct labels.
func (c *Context) Len() int {
	return len(c.labels)
}
