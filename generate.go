package asciicubes

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

const placementAttempts = 100

// ErrNoRoom is returned when a random cube cannot be placed clear of the
// others while collisions are enabled.
var ErrNoRoom = errors.New("no room for cube")

// GenerateCubes builds the explicit cubes from cfg and then random ones until
// cfg.CubeCount cubes exist. With collisions enabled, random cubes are placed
// so their bounding spheres do not start out overlapping; if that fails the
// error wraps ErrNoRoom.
func GenerateCubes(cfg *Config, rng *rand.Rand) ([]*Cube, error) {
	palette := cfg.Palette
	if len(palette) == 0 {
		palette = DefaultPalette()
	}

	cubes := make([]*Cube, 0, max(cfg.CubeCount, len(cfg.Cubes)))
	for _, s := range cfg.Cubes {
		c := NewCube(s.Side, palette)
		c.Position = s.position()
		c.Velocity = NewVector3(s.Velocity[0], s.Velocity[1], s.Velocity[2])
		c.Angle = NewVector3(s.Angle[0], s.Angle[1], s.Angle[2])
		c.AngularVelocity = NewVector3(s.AngularVelocity[0], s.AngularVelocity[1], s.AngularVelocity[2])
		cubes = append(cubes, c)
	}

	bounds := cfg.Bounds()
	for len(cubes) < cfg.CubeCount {
		side := cfg.MinSide + rng.Intn(cfg.MaxSide-cfg.MinSide+1)
		c := NewCube(side, rotatePalette(palette, len(cubes)))

		placed := false
		for attempt := 0; attempt < placementAttempts && !placed; attempt++ {
			c.Position = randomPosition(rng, bounds, c.HalfDiagonal())
			placed = !cfg.Collisions || !overlapsAny(c, cubes)
		}
		if !placed {
			return nil, fmt.Errorf("cube %d of side %d after %d attempts: %w", len(cubes), side, placementAttempts, ErrNoRoom)
		}
		c.Velocity = randomVector(rng, cfg.MaxLinearSpeed)
		c.AngularVelocity = randomVector(rng, cfg.MaxAngularSpeed)
		c.Angle = randomVector(rng, math.Pi)
		cubes = append(cubes, c)
	}
	return cubes, nil
}

// rotatePalette shifts the palette so neighbouring cubes get different face
// colors.
func rotatePalette(palette []Color, by int) []Color {
	out := make([]Color, len(palette))
	for i := range palette {
		out[i] = palette[(i+by)%len(palette)]
	}
	return out
}

func randomVector(rng *rand.Rand, limit float64) Vector3 {
	return NewVector3(
		(rng.Float64()*2-1)*limit,
		(rng.Float64()*2-1)*limit,
		(rng.Float64()*2-1)*limit,
	)
}

// randomPosition keeps the center margin away from every bound when the
// bounds allow it.
func randomPosition(rng *rand.Rand, bounds Vector3, margin float64) Vector3 {
	var p Vector3
	for axis := 0; axis < 3; axis++ {
		limit := math.Max(bounds.Axis(axis)-margin, 0)
		p.SetAxis(axis, (rng.Float64()*2-1)*limit)
	}
	return p
}

func overlapsAny(c *Cube, others []*Cube) bool {
	for _, o := range others {
		if c.Position.DistanceTo(o.Position) < c.HalfDiagonal()+o.HalfDiagonal() {
			return true
		}
	}
	return false
}
