package assets

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Font is a parsed face with advances measured for the printable ASCII set.
type Font struct {
	Name     string
	Size     float64
	Ascent   float64
	Descent  float64
	Advances map[rune]float64
}

// LoadFont parses the TrueType/OpenType file at path and measures it at
// size pixels. An empty path loads the embedded Go Regular face.
func LoadFont(path string, size float64) (*Font, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	ppem := fixed.Int26_6(size * 64)
	var buf sfnt.Buffer
	m, err := f.Metrics(&buf, ppem, font.HintingFull)
	if err != nil {
		return nil, fmt.Errorf("font metrics: %w", err)
	}

	out := &Font{
		Size:     size,
		Ascent:   toFloat(m.Ascent),
		Descent:  toFloat(m.Descent),
		Advances: make(map[rune]float64, 95),
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil {
		out.Name = name
	}
	for r := rune(32); r <= 126; r++ {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil || idx == 0 {
			continue
		}
		adv, err := f.GlyphAdvance(&buf, idx, ppem, font.HintingFull)
		if err != nil {
			continue
		}
		out.Advances[r] = toFloat(adv)
	}
	return out, nil
}

// FontResult is delivered once by LoadFontAsync. Err records a failed load
// of the requested file, in which case Font is the embedded fallback.
type FontResult struct {
	Font     *Font
	Err      error
	Fallback bool
}

// LoadFontAsync loads the font on its own goroutine. The returned channel
// receives exactly one result and is then closed.
func LoadFontAsync(path string, size float64) <-chan FontResult {
	ch := make(chan FontResult, 1)
	go func() {
		defer close(ch)
		f, err := LoadFont(path, size)
		if err == nil {
			ch <- FontResult{Font: f}
			return
		}
		fallback, ferr := LoadFont("", size)
		if ferr != nil {
			ch <- FontResult{Err: fmt.Errorf("%w; fallback: %v", err, ferr)}
			return
		}
		ch <- FontResult{Font: fallback, Err: err, Fallback: true}
	}()
	return ch
}

func toFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
