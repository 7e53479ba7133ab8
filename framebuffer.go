package asciicubes

const blankGlyph = ' '

// Cell is one slot of a FrameBuffer. Depth is only meaningful when Filled.
type Cell struct {
	Glyph  rune
	Color  Color
	Depth  float64
	Filled bool
}

// RenderStats counts what happened to the points of one frame.
type RenderStats struct {
	Points       int
	BehindCamera int
	Clipped      int
	Occluded     int
	Drawn        int
}

// FrameBuffer is a height x width grid of cells. Row 0 is the bottom of the
// picture (normalized y = -1); printers emit rows from Height-1 down to 0.
type FrameBuffer struct {
	Width  int
	Height int
	Stats  RenderStats

	cells []Cell
}

func NewFrameBuffer(width, height int) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
	fb.Clear()
	return fb
}

func (fb *FrameBuffer) Clear() {
	for i := range fb.cells {
		fb.cells[i] = Cell{Glyph: blankGlyph, Color: ColorNone}
	}
	fb.Stats = RenderStats{}
}

func (fb *FrameBuffer) InBounds(row, col int) bool {
	return row >= 0 && row < fb.Height && col >= 0 && col < fb.Width
}

// At returns the cell at (row, col). Out of range reads return a blank cell.
func (fb *FrameBuffer) At(row, col int) Cell {
	if !fb.InBounds(row, col) {
		return Cell{Glyph: blankGlyph}
	}
	return fb.cells[row*fb.Width+col]
}

func (fb *FrameBuffer) cell(row, col int) *Cell {
	return &fb.cells[row*fb.Width+col]
}

// Row returns a copy of one row of cells.
func (fb *FrameBuffer) Row(row int) []Cell {
	out := make([]Cell, fb.Width)
	copy(out, fb.cells[row*fb.Width:(row+1)*fb.Width])
	return out
}

// ScreenRow returns the i-th line from the top of the picture.
func (fb *FrameBuffer) ScreenRow(i int) []Cell {
	return fb.Row(fb.Height - 1 - i)
}

// Lines renders the glyphs top line first, without color.
func (fb *FrameBuffer) Lines() []string {
	lines := make([]string, fb.Height)
	for i := range lines {
		runes := make([]rune, fb.Width)
		for j, c := range fb.ScreenRow(i) {
			runes[j] = c.Glyph
		}
		lines[i] = string(runes)
	}
	return lines
}

// Equal reports whether both buffers hold the same cells.
func (fb *FrameBuffer) Equal(other *FrameBuffer) bool {
	if fb.Width != other.Width || fb.Height != other.Height {
		return false
	}
	for i := range fb.cells {
		if fb.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
