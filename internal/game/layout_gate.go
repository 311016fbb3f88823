package game

// layoutGate decides when the skyline has to be laid out again. Nothing is
// laid out before the font arrives, and a zero-sized (minimised) window
// postpones the regeneration until it has a size again.
type layoutGate struct {
	fontReady     bool
	dirty         bool
	width, height int
}

func (g *layoutGate) fontLoaded() {
	g.fontReady = true
}

func (g *layoutGate) resize(width, height int) {
	if width == g.width && height == g.height && !g.dirty {
		return
	}
	g.width, g.height = width, height
	g.dirty = true
}

// invalidate forces a new layout at the current size.
func (g *layoutGate) invalidate() {
	g.dirty = true
}

// due returns the size to lay out for, at most once per change.
func (g *layoutGate) due() (width, height int, ok bool) {
	if !g.fontReady || !g.dirty || g.width <= 0 || g.height <= 0 {
		return 0, 0, false
	}
	g.dirty = false
	return g.width, g.height, true
}
