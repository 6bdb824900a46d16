package app

import (
	"log"
	"time"

	"squarevolution/internal/core"
	"squarevolution/internal/patterns"
	"squarevolution/pkg/camera"
	"squarevolution/pkg/life"
)

// Sandbox owns the grid and the camera and turns pointer, wheel and key
// events into edits, pans, zooms and generations. It has no dependency on a
// windowing toolkit so the interaction rules can be exercised headless.
type Sandbox struct {
	cfg   *Config
	grid  *life.Grid
	cam   *camera.Camera
	clock *core.FixedStep
	stats *core.Stats

	cursor  camera.Vec2
	running bool

	showHUD     bool
	showOverlay bool
}

// NewSandbox builds a sandbox from cfg and seeds its starting pattern.
func NewSandbox(cfg *Config) *Sandbox {
	if cfg == nil {
		cfg = NewConfig()
	}
	cam := camera.New(cfg.Width, cfg.Height)
	cam.SetCellSize(cfg.CellSize)
	s := &Sandbox{
		cfg:         cfg,
		grid:        life.New(),
		cam:         cam,
		clock:       core.NewFixedStep(cfg.StepsPerSecond),
		stats:       core.NewStats(),
		showHUD:     cfg.HUD,
		showOverlay: cfg.Overlay,
	}
	s.Reseed()
	return s
}

func (s *Sandbox) Grid() *life.Grid       { return s.grid }
func (s *Sandbox) Camera() *camera.Camera { return s.cam }
func (s *Sandbox) Stats() *core.Stats     { return s.stats }
func (s *Sandbox) Running() bool          { return s.running }
func (s *Sandbox) ShowHUD() bool          { return s.showHUD }
func (s *Sandbox) ShowOverlay() bool      { return s.showOverlay }

// Cursor returns the cell under the last known pointer position.
func (s *Sandbox) Cursor() life.Coord { return s.cam.CoordAt(s.cursor) }

// Resize follows the window size.
func (s *Sandbox) Resize(w, h int) {
	win := s.cam.Window()
	if int(win.X) == w && int(win.Y) == h {
		return
	}
	s.cam.Resize(w, h)
}

// MoveCursor records the pointer position and drags the view while panning.
func (s *Sandbox) MoveCursor(x, y int) {
	s.cursor = camera.V(float64(x), float64(y))
	s.cam.UpdatePan(x, y)
}

// PressPrimary toggles the cell under (x, y).
func (s *Sandbox) PressPrimary(x, y int) {
	s.grid.Cycle(s.cam.Coord(x, y))
	s.record(0, 0)
}

// PressSecondary starts a pan anchored at (x, y).
func (s *Sandbox) PressSecondary(x, y int) {
	s.cursor = camera.V(float64(x), float64(y))
	s.cam.BeginPan(x, y)
}

// ReleaseSecondary ends the pan.
func (s *Sandbox) ReleaseSecondary() {
	s.cam.EndPan()
}

// Wheel zooms by the sign of dy. Uniform zoom keeps the window centre fixed,
// otherwise the point under the cursor stays put.
func (s *Sandbox) Wheel(dy float64, uniform bool) {
	if dy == 0 {
		return
	}
	if uniform {
		s.cam.UpdateZoom(dy)
		return
	}
	s.cam.UpdateZoomPoint(dy, s.cursor)
}

// StepOnce advances exactly one generation.
func (s *Sandbox) StepOnce() {
	s.Advance(1)
}

// Advance runs n generations immediately, timing the work for the stats.
func (s *Sandbox) Advance(n uint64) {
	if n == 0 {
		return
	}
	start := time.Now()
	s.grid.Multistep(n)
	s.record(n, time.Since(start))
}

// Run advances the grid while the run key is held. The first frame of a
// press always runs one generation; afterwards generations follow the
// configured rate, carrying fractional time between frames.
func (s *Sandbox) Run(held, pressed bool, dt time.Duration) uint64 {
	s.running = held
	if !held {
		return 0
	}
	var n uint64
	if pressed {
		s.clock.Prime()
		n = s.clock.Drain()
	} else {
		n = s.clock.Advance(dt)
	}
	if n == 0 {
		return 0
	}
	s.grid.Multistep(n)
	s.record(n, dt)
	return n
}

// Frame is Run with the wall time measured since the previous frame.
func (s *Sandbox) Frame(held, pressed bool) uint64 {
	return s.Run(held, pressed, s.clock.Elapsed())
}

// Clear removes every live cell.
func (s *Sandbox) Clear() {
	s.grid.Clear()
	s.record(0, 0)
}

// Reseed clears the grid and places the configured pattern at the origin.
func (s *Sandbox) Reseed() {
	s.grid.Clear()
	if !patterns.Place(s.grid, s.cfg.Pattern, s.cfg.PatternConfig(), life.C(0, 0), s.cfg.Seed) {
		log.Printf("pattern %q is not registered; starting empty", s.cfg.Pattern)
	}
	s.record(0, 0)
}

func (s *Sandbox) ToggleHUD()     { s.showHUD = !s.showHUD }
func (s *Sandbox) ToggleOverlay() { s.showOverlay = !s.showOverlay }

func (s *Sandbox) record(steps uint64, elapsed time.Duration) {
	s.stats.Update(s.grid.Generation(), steps, elapsed, s.grid.Len(), s.grid.ChunkCount())
}

// Parameters reports the sandbox state for the HUD.
func (s *Sandbox) Parameters() core.ParameterSnapshot {
	cursor := s.Cursor()
	pos := s.cam.Position()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", int64(s.grid.Generation())),
				core.IntParam("population", "Population", int64(s.grid.Len())),
				core.IntParam("chunks", "Active chunks", int64(s.grid.ChunkCount())),
				core.FloatParam("gps", "Gen/s", s.stats.GenerationsPerSecond, 1),
				core.BoolParam("running", "Running", s.running),
			},
		},
		{
			Name: "View",
			Params: []core.Parameter{
				core.FloatParam("zoom", "Zoom", s.cam.Zoom(), 2),
				core.FloatParam("x", "X", pos.X, 1),
				core.FloatParam("y", "Y", pos.Y, 1),
				core.IntParam("cursor_x", "Cursor X", int64(cursor.X)),
				core.IntParam("cursor_y", "Cursor Y", int64(cursor.Y)),
			},
		},
		{
			Name: "Settings",
			Params: []core.Parameter{
				core.FloatParam("steps_per_second", "Steps/s", s.clock.Rate(), 1),
				core.IntParam("soup_size", "Soup size", int64(s.cfg.SoupSize)),
				core.FloatParam("soup_density", "Soup density", s.cfg.SoupDensity, 2),
			},
		},
	}}
}

// ParameterControls lists the settings adjustable from the HUD.
func (s *Sandbox) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "steps_per_second", Label: "Steps/s", Type: core.ParamTypeFloat, Step: 5, Min: 1, Max: 1000, HasMin: true, HasMax: true},
		{Key: "soup_size", Label: "Soup size", Type: core.ParamTypeInt, Step: 8, Min: 8, Max: 1024, HasMin: true, HasMax: true},
		{Key: "soup_density", Label: "Soup density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, Max: 0.95, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a floating point setting.
func (s *Sandbox) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "steps_per_second":
		if value <= 0 {
			return false
		}
		s.cfg.StepsPerSecond = value
		s.clock.SetRate(value)
	case "soup_density":
		if value < 0 || value > 1 {
			return false
		}
		s.cfg.SoupDensity = value
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer setting.
func (s *Sandbox) SetIntParameter(key string, value int) bool {
	switch key {
	case "soup_size":
		if value <= 0 {
			return false
		}
		s.cfg.SoupSize = value
	default:
		return false
	}
	return true
}
