package city

import (
	"fmt"
	"math"

	"github.com/math-eaton/website/internal/config"
	"github.com/math-eaton/website/internal/profiling"
)

// Rand is the random source used for building sizes and gaps.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Layout is the placement grid derived from a viewport.
type Layout struct {
	XStart, XEnd   float32
	GapMin, GapMax float32
	// Rows holds the z position of each row, front to back.
	Rows []float32
}

// ComputeLayout derives the layout for a width×height pixel viewport.
// Rows are spaced cfg.RowDepth apart starting at -height/ZStartDivisor; the
// horizontal span is ±width/XExtentDivisor. Gaps range from the widest
// building to the right bound.
func ComputeLayout(width, height int, cfg config.Skyline) Layout {
	w, h := float64(width), float64(height)
	l := Layout{
		XStart: float32(-w / cfg.XExtentDivisor),
		XEnd:   float32(w / cfg.XExtentDivisor),
		GapMin: float32(cfg.Width.Max),
		GapMax: float32(w / cfg.XExtentDivisor),
	}
	if width <= 0 || height <= 0 {
		return l
	}
	rows := int(math.Ceil(h / cfg.RowSpacingPx))
	zStart := -h / cfg.ZStartDivisor
	l.Rows = make([]float32, rows)
	for r := range l.Rows {
		l.Rows[r] = float32(zStart + float64(r)*cfg.RowDepth)
	}
	return l
}

// Generator fills a layout with randomly sized buildings.
type Generator struct {
	factory *Factory
	cfg     config.Skyline
	rng     Rand
}

// NewGenerator returns a generator placing buildings through f.
func NewGenerator(f *Factory, cfg config.Skyline, rng Rand) *Generator {
	return &Generator{factory: f, cfg: cfg, rng: rng}
}

// Generate walks every row of the viewport's layout left to right, placing a
// building at x and then advancing x by its width plus a random gap until x
// reaches the right bound. On error every building placed so far is removed
// from the scene.
func (g *Generator) Generate(width, height int) ([]*Building, error) {
	defer profiling.Track("city.Generate")()

	l := ComputeLayout(width, height, g.cfg)
	var buildings []*Building
	for row, z := range l.Rows {
		for x := l.XStart; x < l.XEnd; {
			b, err := g.Spawn(x, z, row)
			if err != nil {
				for _, placed := range buildings {
					placed.release(g.factory.scene)
				}
				return nil, fmt.Errorf("row %d at x=%.2f: %w", row, x, err)
			}
			buildings = append(buildings, b)
			x += b.Width + uniform(g.rng, l.GapMin, l.GapMax)
		}
	}
	return buildings, nil
}

// Spawn creates one randomly sized building at (x, z) in the given row.
func (g *Generator) Spawn(x, z float32, row int) (*Building, error) {
	width := uniform(g.rng, float32(g.cfg.Width.Min), float32(g.cfg.Width.Max))
	height := uniform(g.rng, float32(g.cfg.Height.Min), float32(g.cfg.Height.Max))
	depth := uniform(g.rng, float32(g.cfg.Depth.Min), float32(g.cfg.Depth.Max))
	b, err := g.factory.Create(x, width, height, depth, z)
	if err != nil {
		return nil, err
	}
	b.Row = row
	return b, nil
}

func uniform(r Rand, lo, hi float32) float32 {
	return lo + float32(r.Float64())*(hi-lo)
}
