package rabduction

import (
	"time"

	"github.com/vovakirdan/rabduction/internal/config"
	"github.com/vovakirdan/rabduction/internal/core"
)

// Archetype is a platform variant: a fixed size plus how it is drawn.
type Archetype struct {
	Name  string
	Size  core.Vec2
	Glyph rune
	Color core.Color
}

// Catalog is the immutable set of archetypes for a run.
type Catalog struct {
	archetypes []Archetype
	byName     map[string]Archetype
}

// NewCatalog builds a catalog from config entries.
func NewCatalog(entries []config.ArchetypeConfig) Catalog {
	c := Catalog{
		archetypes: make([]Archetype, 0, len(entries)),
		byName:     make(map[string]Archetype, len(entries)),
	}
	for _, e := range entries {
		a := Archetype{
			Name:  e.Name,
			Size:  core.V(e.Width, e.Height),
			Glyph: firstRune(e.Glyph, '▀'),
			Color: core.ParseColor(e.Color),
		}
		c.archetypes = append(c.archetypes, a)
		c.byName[a.Name] = a
	}
	return c
}

// Len returns the number of archetypes.
func (c Catalog) Len() int {
	return len(c.archetypes)
}

// At returns the i-th archetype.
func (c Catalog) At(i int) Archetype {
	return c.archetypes[i]
}

// Lookup finds an archetype by name.
func (c Catalog) Lookup(name string) (Archetype, bool) {
	a, ok := c.byName[name]
	return a, ok
}

// Platform is a live platform. Only Scroll changes it after spawning.
type Platform struct {
	Pos       core.Vec2
	Size      core.Vec2
	Archetype string
}

// Box returns the platform's hitbox.
func (p Platform) Box() core.Box {
	return core.Box{Center: p.Pos, Size: p.Size}
}

// Spawner creates one platform per elapsed spawn interval.
type Spawner struct {
	catalog  Catalog
	line     float64 // Spawn Y
	spread   float64 // Spawn X is drawn from [-spread, spread]
	interval Interval
}

// NewSpawner creates a spawner from the platforms config.
func NewSpawner(catalog Catalog, cfg config.PlatformsConfig) Spawner {
	return Spawner{
		catalog:  catalog,
		line:     cfg.SpawnLine,
		spread:   cfg.SpawnRange,
		interval: NewInterval(cfg.SpawnInterval),
	}
}

// Spawn draws a single platform from r.
func (s Spawner) Spawn(r Random) Platform {
	x := -s.spread + r.Float64()*2*s.spread
	a := s.catalog.At(r.Intn(s.catalog.Len()))
	return Platform{
		Pos:       core.V(x, s.line),
		Size:      a.Size,
		Archetype: a.Name,
	}
}

// Advance moves the spawn schedule forward by dt and appends one platform
// for each completed interval.
func (s *Spawner) Advance(dt time.Duration, r Random, platforms []Platform) []Platform {
	if s.catalog.Len() == 0 {
		return platforms
	}
	for n := s.interval.Advance(dt); n > 0; n-- {
		platforms = append(platforms, s.Spawn(r))
	}
	return platforms
}

// Reset restarts the spawn schedule.
func (s *Spawner) Reset() {
	s.interval.Reset()
}

// Scroll moves every platform down by step.
func Scroll(platforms []Platform, step float64) {
	for i := range platforms {
		platforms[i].Pos.Y -= step
	}
}

// Cleanup removes platforms whose centre is below line, reusing the backing
// array.
func Cleanup(platforms []Platform, line float64) []Platform {
	kept := platforms[:0]
	for _, p := range platforms {
		if p.Pos.Y >= line {
			kept = append(kept, p)
		}
	}
	return kept
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
