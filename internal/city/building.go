package city

import "github.com/math-eaton/website/internal/scene"

// Building is one box of the skyline and the primitives drawn for it.
// X and Z are the anchor the primitives were created at; each primitive
// then moves on its own as the skyline pans.
type Building struct {
	X, Z                 float32
	Width, Height, Depth float32
	Row                  int

	primitives []*scene.Primitive
}

// Primitives returns the primitives still owned by the building.
// The slice is shared; callers must not modify it.
func (b *Building) Primitives() []*scene.Primitive {
	return b.primitives
}

// Len returns the number of primitives still owned.
func (b *Building) Len() int {
	return len(b.primitives)
}

// Drained reports whether every primitive has been evicted.
func (b *Building) Drained() bool {
	return len(b.primitives) == 0
}

// release removes every remaining primitive from s.
func (b *Building) release(s scene.Scene) {
	for i, p := range b.primitives {
		s.Remove(p)
		b.primitives[i] = nil
	}
	b.primitives = b.primitives[:0]
}

// PositionX returns where the building currently is. Its primitives share
// one anchor and move in lockstep, so the first one stands for all of them.
func (b *Building) PositionX() float32 {
	if len(b.primitives) == 0 {
		return b.X
	}
	return b.primitives[0].Position.X()
}
