package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DefaultPath is where the shell looks for overrides, relative to the working directory.
const DefaultPath = "config/skyline.json"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid skyline config")

// Range is a closed interval [Min, Max] sampled uniformly.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Skyline holds the tunables of the skyline and its window.
type Skyline struct {
	// Animation
	PanSpeed       float64 `json:"pan_speed"`
	RecycleBound   float64 `json:"recycle_bound"`
	RespawnDrained bool    `json:"respawn_drained"`

	// Sampling density in points per unit along each face axis.
	PointsPerUnit float64 `json:"points_per_unit"`

	// Layout
	RowSpacingPx   float64 `json:"row_spacing_px"`
	RowDepth       float64 `json:"row_depth"`
	ZStartDivisor  float64 `json:"z_start_divisor"`
	XExtentDivisor float64 `json:"x_extent_divisor"`
	Width          Range   `json:"width"`
	Height         Range   `json:"height"`
	Depth          Range   `json:"depth"`

	// Window and camera
	WindowWidth  int     `json:"window_width"`
	WindowHeight int     `json:"window_height"`
	WindowTitle  string  `json:"window_title"`
	FPSLimit     int     `json:"fps_limit"` // 0 = vsync only
	CameraZoom   float64 `json:"camera_zoom"`
	CameraHeight float64 `json:"camera_height"` // the camera is kept within y [10, 100]
	CameraJitter float64 `json:"camera_jitter"`

	FontPath string `json:"font_path,omitempty"` // empty = embedded Go Regular
	LogLevel string `json:"log_level,omitempty"`
}

// Default returns the stock skyline.
func Default() Skyline {
	return Skyline{
		PanSpeed:       0.03,
		RecycleBound:   100,
		RespawnDrained: false,
		PointsPerUnit:  1.2,
		RowSpacingPx:   200,
		RowDepth:       10,
		ZStartDivisor:  30,
		XExtentDivisor: 4,
		Width:          Range{Min: 5, Max: 25},
		Height:         Range{Min: 20, Max: 70},
		Depth:          Range{Min: 5, Max: 20},
		WindowWidth:    1280,
		WindowHeight:   720,
		WindowTitle:    "perpetual",
		FPSLimit:       60,
		CameraZoom:     10,
		CameraHeight:   100,
		CameraJitter:   1.1,
		LogLevel:       "info",
	}
}

// Load reads path on top of Default. A missing file yields the defaults;
// unreadable or malformed files and invalid values are errors.
func Load(path string) (Skyline, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first out-of-range field.
func (c Skyline) Validate() error {
	switch {
	case c.PanSpeed < 0:
		return fmt.Errorf("%w: pan_speed %g is negative", ErrInvalid, c.PanSpeed)
	case c.RecycleBound <= 0:
		return fmt.Errorf("%w: recycle_bound must be positive", ErrInvalid)
	case c.PanSpeed >= c.RecycleBound:
		return fmt.Errorf("%w: pan_speed %g must be below recycle_bound %g", ErrInvalid, c.PanSpeed, c.RecycleBound)
	case c.PointsPerUnit <= 0:
		return fmt.Errorf("%w: points_per_unit must be positive", ErrInvalid)
	case c.RowSpacingPx <= 0 || c.RowDepth <= 0:
		return fmt.Errorf("%w: row spacing and depth must be positive", ErrInvalid)
	case c.ZStartDivisor <= 0 || c.XExtentDivisor <= 0:
		return fmt.Errorf("%w: layout divisors must be positive", ErrInvalid)
	case c.FPSLimit < 0:
		return fmt.Errorf("%w: fps_limit %d is negative", ErrInvalid, c.FPSLimit)
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.WindowWidth, c.WindowHeight)
	case c.CameraZoom <= 0:
		return fmt.Errorf("%w: camera_zoom must be positive", ErrInvalid)
	case c.CameraHeight < 10 || c.CameraHeight > 100:
		return fmt.Errorf("%w: camera_height %g outside [10, 100]", ErrInvalid, c.CameraHeight)
	}
	for name, r := range map[string]Range{"width": c.Width, "height": c.Height, "depth": c.Depth} {
		if r.Min <= 0 || r.Max < r.Min {
			return fmt.Errorf("%w: %s range [%g, %g]", ErrInvalid, name, r.Min, r.Max)
		}
	}
	return nil
}
