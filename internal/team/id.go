package team

// IDGenerator issues team identifiers: 0, 1, 2, ... in order, never reusing
// a value. It is meant to be owned by a single Registry and is not safe for
// concurrent use.
type IDGenerator struct {
	next int
}

// NewIDGenerator returns a generator whose first ID is 0.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the current counter value, then increments it.
func (g *IDGenerator) Next() int {
	id := g.next
	g.next++
	return id
}
