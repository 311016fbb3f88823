package city

import (
	"math"

	"github.com/math-eaton/website/internal/profiling"
	"github.com/math-eaton/website/internal/scene"
)

// StepStats summarises one animation step.
type StepStats struct {
	Moved   int // primitives still attached after the step
	Wrapped int
	Evicted int
	Drained int // buildings that lost their last primitive this step
}

// Animator pans primitives left and recycles them at the band edges.
type Animator struct {
	scene scene.Scene
	bound float32
}

// NewAnimator returns an animator keeping primitives inside [-bound, bound].
func NewAnimator(s scene.Scene, bound float32) *Animator {
	return &Animator{scene: s, bound: bound}
}

// Step moves every primitive of every building delta units to the left.
// A primitive that ends up left of -bound is shifted right by 2·bound until
// it is back in the band. A primitive right of +bound, before or after the
// move, is removed from the scene and dropped from its building for good.
func (a *Animator) Step(buildings []*Building, delta float32) StepStats {
	defer profiling.Track("city.Animator.Step")()

	var stats StepStats
	span := 2 * a.bound
	for _, b := range buildings {
		if b.Drained() {
			continue
		}
		kept := 0
		for _, p := range b.primitives {
			before := p.Position[0]
			x := before - delta
			if before > a.bound || x > a.bound {
				a.scene.Remove(p)
				stats.Evicted++
				continue
			}
			if x < -a.bound {
				x = wrap(x, a.bound, span)
				stats.Wrapped++
			}
			p.Position[0] = x
			b.primitives[kept] = p
			kept++
		}
		clear(b.primitives[kept:])
		b.primitives = b.primitives[:kept]
		stats.Moved += kept
		if kept == 0 {
			stats.Drained++
		}
	}
	return stats
}

// wrap adds span to x as many times as it takes to reach [-bound, bound).
// Done with a modulo so far-left positions do not loop.
func wrap(x, bound, span float32) float32 {
	off := math.Mod(float64(x+bound), float64(span))
	if off < 0 {
		off += float64(span)
	}
	return float32(off) - bound
}
