package asciicubes

// Point is one sample of a point cloud. Transform stages return new Points.
type Point struct {
	Position Vector4
	Glyph    rune
	Color    Color
}

func NewPoint(x, y, z float64, glyph rune, col Color) Point {
	return Point{
		Position: NewVector3(x, y, z).Homogeneous(),
		Glyph:    glyph,
		Color:    col,
	}
}

func (p Point) WithPosition(v Vector4) Point {
	p.Position = v
	return p
}
