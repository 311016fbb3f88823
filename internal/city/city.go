package city

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/math-eaton/website/internal/config"
	"github.com/math-eaton/website/internal/logging"
	"github.com/math-eaton/website/internal/meshing"
	"github.com/math-eaton/website/internal/profiling"
	"github.com/math-eaton/website/internal/scene"
)

// City owns the skyline: the scene it draws into, the current buildings and
// the viewport they were laid out for. It is driven from a single goroutine.
type City struct {
	scene     scene.Scene
	cfg       config.Skyline
	rng       Rand
	pool      *meshing.WorkerPool
	generator *Generator
	animator  *Animator

	buildings     []*Building
	width, height int

	// respawn holds, per row, the drained buildings still waiting for room
	// at the right edge of the band.
	respawn []respawnQueue
}

type respawnQueue struct {
	z       float32
	pending int
}

// Option configures a City.
type Option func(*City)

// WithRand replaces the time-seeded random source.
func WithRand(r Rand) Option {
	return func(c *City) { c.rng = r }
}

// WithMeshPool triangulates building faces on p. The caller owns p.
func WithMeshPool(p *meshing.WorkerPool) Option {
	return func(c *City) { c.pool = p }
}

// New returns an empty city drawing into s.
func New(s scene.Scene, cfg config.Skyline, opts ...Option) *City {
	now := uint64(time.Now().UnixNano())
	c := &City{
		scene: s,
		cfg:   cfg,
		rng:   rand.New(rand.NewPCG(now, now>>17|1)),
	}
	for _, opt := range opts {
		opt(c)
	}
	factory := NewFactory(s, cfg.PointsPerUnit)
	factory.UsePool(c.pool)
	c.generator = NewGenerator(factory, cfg, c.rng)
	c.animator = NewAnimator(s, float32(cfg.RecycleBound))
	return c
}

// InitLayout discards the current buildings and lays out a fresh skyline
// for a width×height pixel viewport.
func (c *City) InitLayout(width, height int) ([]*Building, error) {
	defer profiling.Track("city.InitLayout")()

	c.TeardownLayout()
	buildings, err := c.generator.Generate(width, height)
	if err != nil {
		return nil, fmt.Errorf("generate %dx%d layout: %w", width, height, err)
	}
	c.buildings = buildings
	c.width, c.height = width, height

	logging.Logger().Info("skyline laid out",
		"viewport", fmt.Sprintf("%dx%d", width, height),
		"buildings", len(buildings),
		"primitives", c.PrimitiveCount())
	return buildings, nil
}

// AdvanceFrame pans the skyline by delta. Buildings whose primitives have
// all been evicted are dropped. With RespawnDrained set they are queued per
// row instead and come back one at a time at the right edge of the band,
// each once the row has room for it.
func (c *City) AdvanceFrame(delta float32) StepStats {
	defer profiling.Track("city.AdvanceFrame")()

	stats := c.animator.Step(c.buildings, delta)
	if stats.Drained > 0 {
		kept := 0
		for _, b := range c.buildings {
			if !b.Drained() {
				c.buildings[kept] = b
				kept++
				continue
			}
			logging.Logger().Debug("building drained", "row", b.Row, "x", b.X)
			if c.cfg.RespawnDrained {
				c.queueRespawn(b)
			}
		}
		clear(c.buildings[kept:])
		c.buildings = c.buildings[:kept]
	}
	if c.cfg.RespawnDrained {
		c.respawnDue()
	}
	return stats
}

func (c *City) queueRespawn(b *Building) {
	for len(c.respawn) <= b.Row {
		c.respawn = append(c.respawn, respawnQueue{})
	}
	q := &c.respawn[b.Row]
	q.z = b.Z
	q.pending++
}

// respawnDue places at most one queued building per row at x = +bound.
func (c *City) respawnDue() {
	bound := float32(c.cfg.RecycleBound)
	for row := range c.respawn {
		q := &c.respawn[row]
		if q.pending == 0 || !c.roomAtEdge(row, bound) {
			continue
		}
		b, err := c.generator.Spawn(bound, q.z, row)
		if err != nil {
			logging.Logger().Warn("respawn building", "row", row, "err", err)
			continue
		}
		q.pending--
		c.buildings = append(c.buildings, b)
		logging.Logger().Debug("building respawned", "row", row, "pending", q.pending)
	}
}

// roomAtEdge reports whether a building placed at x = bound keeps the
// layout gap to every building of the row. Distances are measured around
// the band, since anything about to wrap reappears at the right edge.
func (c *City) roomAtEdge(row int, bound float32) bool {
	span := 2 * bound
	gap := float32(c.cfg.Width.Max)
	widest := float32(c.cfg.Width.Max)
	for _, b := range c.buildings {
		if b.Row != row {
			continue
		}
		d := float32(math.Mod(float64(bound-b.PositionX()), float64(span)))
		if d < 0 {
			d += span
		}
		if d < b.Width+gap || span-d < widest+gap {
			return false
		}
	}
	return true
}

// Pending returns how many drained buildings are waiting to respawn.
func (c *City) Pending() int {
	n := 0
	for _, q := range c.respawn {
		n += q.pending
	}
	return n
}

// TeardownLayout removes every building's primitives from the scene.
func (c *City) TeardownLayout() {
	for _, b := range c.buildings {
		b.release(c.scene)
	}
	c.buildings = nil
	c.respawn = nil
}

// Buildings returns the current buildings. The slice is shared.
func (c *City) Buildings() []*Building {
	return c.buildings
}

// PrimitiveCount returns the number of primitives owned by all buildings.
func (c *City) PrimitiveCount() int {
	n := 0
	for _, b := range c.buildings {
		n += b.Len()
	}
	return n
}

// Viewport returns the size the current layout was generated for.
func (c *City) Viewport() (width, height int) {
	return c.width, c.height
}
