package scene

// Scene is the host-provided graph primitives are registered into.
// Add acquires whatever backing buffer the implementation needs for the
// primitive's geometry; Remove releases it. Remove on a primitive that is
// not attached is a no-op.
type Scene interface {
	Add(p *Primitive) error
	Remove(p *Primitive)
}

// Graph is an in-memory Scene. It keeps primitives in insertion order and
// tracks how many vertex buffers are currently held.
type Graph struct {
	primitives []*Primitive
	index      map[*Primitive]int

	liveBuffers int
	acquired    int
	released    int
}

// NewGraph creates an empty in-memory scene graph.
func NewGraph() *Graph {
	return &Graph{index: make(map[*Primitive]int)}
}

// Add registers p and acquires its vertex buffer.
func (g *Graph) Add(p *Primitive) error {
	if p.geometry == nil {
		return ErrNilGeometry
	}
	if _, ok := g.index[p]; ok {
		return ErrAttached
	}
	g.index[p] = len(g.primitives)
	g.primitives = append(g.primitives, p)
	g.liveBuffers++
	g.acquired++
	return nil
}

// Remove detaches p and releases its vertex buffer.
func (g *Graph) Remove(p *Primitive) {
	i, ok := g.index[p]
	if !ok {
		return
	}
	last := len(g.primitives) - 1
	moved := g.primitives[last]
	g.primitives[i] = moved
	g.index[moved] = i
	g.primitives[last] = nil
	g.primitives = g.primitives[:last]
	delete(g.index, p)

	g.liveBuffers--
	g.released++
}

// Contains reports whether p is attached.
func (g *Graph) Contains(p *Primitive) bool {
	_, ok := g.index[p]
	return ok
}

// Each calls fn for every attached primitive. fn must not add or remove.
func (g *Graph) Each(fn func(p *Primitive)) {
	for _, p := range g.primitives {
		fn(p)
	}
}

// Len returns the number of attached primitives.
func (g *Graph) Len() int {
	return len(g.primitives)
}

// Primitives returns a copy of the attached primitives.
func (g *Graph) Primitives() []*Primitive {
	out := make([]*Primitive, len(g.primitives))
	copy(out, g.primitives)
	return out
}

// LiveBuffers returns the number of acquired-but-not-released buffers.
func (g *Graph) LiveBuffers() int {
	return g.liveBuffers
}

// BufferStats returns lifetime acquire and release counts.
func (g *Graph) BufferStats() (acquired, released int) {
	return g.acquired, g.released
}
