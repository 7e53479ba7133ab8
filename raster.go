package asciicubes

import (
	"math"
	"sort"
)

// minW is the smallest homogeneous w accepted by the perspective divide.
// Anything at or below it is behind (or on) the eye plane.
const minW = 1e-9

// Fragment is a point that survived projection and clipping, bucketed into a
// grid cell. Depth is the view-space z; greater is nearer.
type Fragment struct {
	Row   int
	Col   int
	X     float64
	Y     float64
	Depth float64
	Glyph rune
	Color Color
}

type Rasterizer struct {
	width        int
	height       int
	projection   Matrix4
	colorEnabled bool
}

func NewRasterizer(width, height int, projection Matrix4, colorEnabled bool) *Rasterizer {
	return &Rasterizer{
		width:        width,
		height:       height,
		projection:   projection,
		colorEnabled: colorEnabled,
	}
}

// NewRasterizerFromConfig expects a validated config.
func NewRasterizerFromConfig(cfg *Config) *Rasterizer {
	return NewRasterizer(cfg.ScreenWidth, cfg.ScreenHeight, ProjectionFor(cfg), cfg.ColorEnabled)
}

type dropReason int

const (
	keep dropReason = iota
	dropBehind
	dropClipped
)

// project takes a view-space point to a grid fragment.
func (r *Rasterizer) project(p Point) (Fragment, dropReason) {
	if !p.Position.finite() {
		return Fragment{}, dropBehind
	}
	clip := r.projection.Transform(p.Position)
	if clip.W <= minW || !clip.finite() {
		return Fragment{}, dropBehind
	}
	x := clip.X / clip.W
	y := clip.Y / clip.W
	if math.Abs(x) > 1 || math.Abs(y) > 1 {
		return Fragment{}, dropClipped
	}

	col := int(math.Floor((x + 1) * float64(r.width) / 2))
	row := int(math.Floor((y + 1) * float64(r.height) / 2))
	if col < 0 || col >= r.width || row < 0 || row >= r.height {
		return Fragment{}, dropClipped
	}

	tag := p.Color
	if !r.colorEnabled {
		tag = ColorNone
	}
	return Fragment{
		Row:   row,
		Col:   col,
		X:     x,
		Y:     y,
		Depth: p.Position.Z,
		Glyph: p.Glyph,
		Color: tag,
	}, keep
}

// Render projects view-space points into a fresh frame buffer.
func (r *Rasterizer) Render(points []Point) *FrameBuffer {
	fb := NewFrameBuffer(r.width, r.height)
	fb.Stats.Points = len(points)

	frags := make([]Fragment, 0, len(points))
	for _, p := range points {
		f, reason := r.project(p)
		switch reason {
		case dropBehind:
			fb.Stats.BehindCamera++
		case dropClipped:
			fb.Stats.Clipped++
		default:
			frags = append(frags, f)
		}
	}

	SortFragments(frags)
	Composite(fb, frags)
	return fb
}

// fragmentLess orders by depth, then x, then y, then glyph and color, so
// every pair of distinct fragments compares one way.
func fragmentLess(a, b Fragment) bool {
	if a.Depth != b.Depth {
		return a.Depth < b.Depth
	}
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	if a.Glyph != b.Glyph {
		return a.Glyph < b.Glyph
	}
	return a.Color < b.Color
}

// SortFragments sorts far to near. Fragments must be NaN free.
func SortFragments(frags []Fragment) {
	sort.Slice(frags, func(i, j int) bool {
		return fragmentLess(frags[i], frags[j])
	})
}

// Composite writes fragments into fb. A fragment replaces a cell only when the
// cell is empty or the fragment is strictly nearer.
func Composite(fb *FrameBuffer, frags []Fragment) {
	for _, f := range frags {
		if !fb.InBounds(f.Row, f.Col) {
			fb.Stats.Clipped++
			continue
		}
		c := fb.cell(f.Row, f.Col)
		if c.Filled && f.Depth <= c.Depth {
			fb.Stats.Occluded++
			continue
		}
		if c.Filled {
			fb.Stats.Occluded++
		} else {
			fb.Stats.Drawn++
		}
		*c = Cell{Glyph: f.Glyph, Color: f.Color, Depth: f.Depth, Filled: true}
	}
}
