package asciicubes

import (
	"math"
	"testing"
)

// With an identity projection, view-space x and y are already normalized.
func identityRasterizer(colorEnabled bool) *Rasterizer {
	return NewRasterizer(10, 10, IdentMatrix(), colorEnabled)
}

func TestCompositeNearestWins(t *testing.T) {
	a := Fragment{Row: 5, Col: 5, Depth: 1.0, Glyph: 'A', Color: ColorRed}
	b := Fragment{Row: 5, Col: 5, Depth: 2.0, Glyph: 'B', Color: ColorBlue}

	for _, order := range [][]Fragment{{a, b}, {b, a}} {
		fb := NewFrameBuffer(10, 10)
		Composite(fb, order)
		got := fb.At(5, 5)
		if got.Glyph != 'B' || got.Color != ColorBlue || got.Depth != 2.0 {
			t.Errorf("composite %c then %c: cell = %+v, want B", order[0].Glyph, order[1].Glyph, got)
		}
	}
}

func TestCompositeEqualDepthKeepsFirst(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	Composite(fb, []Fragment{
		{Row: 1, Col: 1, Depth: 3, Glyph: 'x'},
		{Row: 1, Col: 1, Depth: 3, Glyph: 'y'},
	})
	if got := fb.At(1, 1).Glyph; got != 'x' {
		t.Errorf("equal depth overwrote the cell: %q", got)
	}
	if fb.Stats.Drawn != 1 || fb.Stats.Occluded != 1 {
		t.Errorf("stats = %+v", fb.Stats)
	}
}

func TestCompositeNegativeDepthOnEmptyCell(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	Composite(fb, []Fragment{{Row: 0, Col: 0, Depth: -120, Glyph: '#'}})
	if got := fb.At(0, 0); !got.Filled || got.Glyph != '#' {
		t.Errorf("empty cell must accept any depth, got %+v", got)
	}
}

func TestRenderMapsToCells(t *testing.T) {
	r := identityRasterizer(true)
	fb := r.Render([]Point{
		NewPoint(-1, -1, 0, 'a', ColorRed),
		NewPoint(0.99, 0.99, 0, 'b', ColorGreen),
		NewPoint(0.05, -0.35, 0, 'c', ColorBlue),
	})

	testCases := []struct {
		row, col int
		glyph    rune
	}{
		{0, 0, 'a'},
		{9, 9, 'b'},
		{3, 5, 'c'},
	}
	for _, tc := range testCases {
		if got := fb.At(tc.row, tc.col).Glyph; got != tc.glyph {
			t.Errorf("cell (%d,%d) = %q, want %q", tc.row, tc.col, got, tc.glyph)
		}
	}

	lines := fb.Lines()
	if lines[0][9] != 'b' || lines[9][0] != 'a' {
		t.Errorf("Lines should put row 9 on top:\n%q", lines)
	}
}

func TestRenderClipping(t *testing.T) {
	r := identityRasterizer(true)
	testCases := []struct {
		name string
		p    Point
	}{
		{"x beyond right edge", NewPoint(1.5, 0, 1000, '#', ColorRed)},
		{"x beyond left edge", NewPoint(-1.5, 0, 1000, '#', ColorRed)},
		{"y beyond top edge", NewPoint(0, 1.01, 1000, '#', ColorRed)},
		{"x exactly 1 maps past the last column", NewPoint(1, 0, 1000, '#', ColorRed)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fb := r.Render([]Point{tc.p})
			if fb.Stats.Drawn != 0 || fb.Stats.Clipped != 1 {
				t.Errorf("stats = %+v, want one clipped point", fb.Stats)
			}
			for row := 0; row < fb.Height; row++ {
				for col := 0; col < fb.Width; col++ {
					if fb.At(row, col).Filled {
						t.Fatalf("cell (%d,%d) was drawn", row, col)
					}
				}
			}
		})
	}
}

func TestRenderDropsPointsBehindCamera(t *testing.T) {
	r := NewRasterizer(10, 10, Perspective(math.Pi/2, 1, 1, 100), true)
	fb := r.Render([]Point{
		NewPoint(0, 0, 0, 'z', ColorNone),  // w == 0
		NewPoint(0, 0, 5, 'b', ColorNone),  // w < 0
		NewPoint(0, 0, -5, 'f', ColorNone), // in front
	})
	if fb.Stats.BehindCamera != 2 || fb.Stats.Drawn != 1 {
		t.Errorf("stats = %+v, want 2 behind camera and 1 drawn", fb.Stats)
	}
	if got := fb.At(5, 5).Glyph; got != 'f' {
		t.Errorf("center cell = %q, want 'f'", got)
	}
}

func TestRenderDropsNonFinitePoints(t *testing.T) {
	r := identityRasterizer(true)
	fb := r.Render([]Point{
		NewPoint(math.NaN(), 0, 0, 'n', ColorNone),
		NewPoint(0, 0, math.Inf(1), 'i', ColorNone),
		NewPoint(0, 0, 0, 'o', ColorNone),
	})
	if fb.Stats.BehindCamera != 2 || fb.Stats.Drawn != 1 {
		t.Errorf("stats = %+v", fb.Stats)
	}
}

func TestRenderIdempotent(t *testing.T) {
	c := NewCube(6, DefaultPalette())
	c.Angle = NewVector3(0.3, 0.7, 1.1)
	cfg := DefaultConfig()
	view := ViewMatrix(NewVector3(0, 0, cfg.CameraDistance), Vector3{})
	points := c.Transform(view)

	r := NewRasterizerFromConfig(cfg)
	first := r.Render(points)
	second := r.Render(points)
	if !first.Equal(second) {
		t.Error("rendering the same points twice gave different buffers")
	}
	if first.Stats.Drawn == 0 {
		t.Error("expected the cube to be visible")
	}
}

func TestRenderColorDisabled(t *testing.T) {
	fb := identityRasterizer(false).Render([]Point{NewPoint(0, 0, 0, '#', ColorRed)})
	got := fb.At(5, 5)
	if got.Glyph != '#' || got.Color != ColorNone {
		t.Errorf("cell = %+v, want glyph without color", got)
	}
}

func TestRenderStatsAddUp(t *testing.T) {
	c := NewCube(10, DefaultPalette())
	c.Angle = NewVector3(0.5, 0.5, 0)
	cfg := DefaultConfig()
	cfg.Projection = ProjectionPerspective
	points := c.Transform(ViewMatrix(NewVector3(0, 0, 20), Vector3{}))
	fb := NewRasterizerFromConfig(cfg).Render(points)

	s := fb.Stats
	if s.Points != len(points) {
		t.Errorf("Points = %d, want %d", s.Points, len(points))
	}
	if sum := s.BehindCamera + s.Clipped + s.Occluded + s.Drawn; sum != s.Points {
		t.Errorf("stats %+v do not add up to %d", s, s.Points)
	}
}

func TestSortFragmentsDepthFirst(t *testing.T) {
	frags := []Fragment{
		{Depth: 3, X: -1},
		{Depth: 1, X: 5},
		{Depth: 1, X: -5, Y: 2},
		{Depth: 1, X: -5, Y: 1},
		{Depth: 2},
	}
	SortFragments(frags)
	want := []Fragment{
		{Depth: 1, X: -5, Y: 1},
		{Depth: 1, X: -5, Y: 2},
		{Depth: 1, X: 5},
		{Depth: 2},
		{Depth: 3, X: -1},
	}
	for i := range want {
		if frags[i] != want[i] {
			t.Fatalf("sorted = %+v, want %+v", frags, want)
		}
	}
}
