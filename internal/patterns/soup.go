package patterns

import (
	"strconv"

	"squarevolution/internal/core"
	"squarevolution/pkg/life"
)

// SoupConfig controls the random soup pattern.
type SoupConfig struct {
	Size    int
	Density float64
}

// DefaultSoupConfig returns the default configuration.
func DefaultSoupConfig() SoupConfig {
	return SoupConfig{Size: 64, Density: 0.35}
}

// SoupFromMap populates a SoupConfig from a string map.
func SoupFromMap(cfg map[string]string) SoupConfig {
	c := DefaultSoupConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}

// Soup fills a square centred on the origin with random live cells.
type Soup struct {
	cfg SoupConfig
}

// NewSoup returns a soup pattern with the given configuration.
func NewSoup(cfg SoupConfig) *Soup {
	return &Soup{cfg: cfg}
}

// Name returns the pattern identifier.
func (s *Soup) Name() string { return "soup" }

// Description returns a one-line summary.
func (s *Soup) Description() string {
	return "random square of " + strconv.Itoa(s.cfg.Size) + " cells at density " + strconv.FormatFloat(s.cfg.Density, 'f', 2, 64)
}

// Seed draws every cell of the square from rng, row by row.
func (s *Soup) Seed(g *life.Grid, origin life.Coord, rng *core.RNG) {
	if rng == nil {
		rng = core.NewRNG(0)
	}
	half := int32(s.cfg.Size / 2)
	for dy := int32(0); dy < int32(s.cfg.Size); dy++ {
		for dx := int32(0); dx < int32(s.cfg.Size); dx++ {
			if rng.Chance(s.cfg.Density) {
				g.Set(life.Coord{X: origin.X + dx - half, Y: origin.Y + dy - half}, true)
			}
		}
	}
}

func init() {
	core.Register("soup", func(cfg map[string]string) core.Pattern {
		return NewSoup(SoupFromMap(cfg))
	})
}
