package asciicubes

import (
	"fmt"
	"log"
	"math/rand"
	"time"
)

// World owns the cubes, the camera and the rasterizer. All methods run on the
// animation loop's goroutine.
type World struct {
	cfg        *Config
	cubes      []*Cube
	camera     *Camera
	rasterizer *Rasterizer
	bounds     Vector3
	lastTick   time.Time
}

// NewWorld validates cfg and builds an empty world with the camera on +z at
// cfg.CameraDistance looking back at the origin.
func NewWorld(cfg *Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		cfg:        cfg,
		rasterizer: NewRasterizerFromConfig(cfg),
		bounds:     cfg.Bounds(),
	}
	w.AddCamera(NewCamera(0, 0, cfg.CameraDistance, 0, 0, 0))
	return w, nil
}

// NewWorldFromConfig builds a world populated by GenerateCubes. A zero
// cfg.Seed seeds from the clock.
func NewWorldFromConfig(cfg *Config) (*World, error) {
	w, err := NewWorld(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create world: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cubes, err := GenerateCubes(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("could not populate world (seed %d): %w", seed, err)
	}
	for _, c := range cubes {
		w.AddObject(c)
	}
	log.Printf("World created: %d cubes, %s projection, camera at %v, seed %d",
		len(w.cubes), cfg.Projection, w.camera.GetPosition(), seed)
	return w, nil
}

func (w *World) AddObject(c *Cube) {
	w.cubes = append(w.cubes, c)
}

func (w *World) AddCamera(c *Camera) {
	w.camera = c
}

func (w *World) Camera() *Camera {
	return w.camera
}

func (w *World) Cubes() []*Cube {
	return w.cubes
}

// ViewPoints returns every cube's points in camera space.
func (w *World) ViewPoints() []Point {
	view := w.camera.GetMatrix()
	var points []Point
	for _, c := range w.cubes {
		points = append(points, c.Transform(view)...)
	}
	return points
}

// Frame renders the current poses into a new frame buffer.
func (w *World) Frame() *FrameBuffer {
	return w.rasterizer.Render(w.ViewPoints())
}

// Step advances every cube by the same elapsed time. Collisions are predicted
// for all cubes before any of them moves.
func (w *World) Step(elapsed float64) {
	var pending []bool
	if w.cfg.Collisions {
		pending = PendingCollisions(w.cubes, elapsed)
	}
	for i, c := range w.cubes {
		Tick(c, w.bounds, elapsed, pending != nil && pending[i])
	}
}

// Advance steps by the milliseconds since the previous call. The first call
// only starts the clock.
func (w *World) Advance(now time.Time) {
	if w.lastTick.IsZero() {
		w.lastTick = now
		return
	}
	elapsed := float64(now.Sub(w.lastTick)) / float64(time.Millisecond)
	w.lastTick = now
	w.Step(elapsed)
}
