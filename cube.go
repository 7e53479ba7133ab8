package asciicubes

import "math"

// FaceGlyphs are drawn on the front, back, right, left, top and bottom faces.
var FaceGlyphs = [6]rune{'.', '$', '^', '~', '#', '!'}

// Cube is a rigid point cloud with a pose and velocities. Its points are
// generated once around its own center and never change.
type Cube struct {
	Position        Vector3
	Angle           Vector3
	Velocity        Vector3
	AngularVelocity Vector3

	side   int
	points []Point
}

// NewCube samples side*side points on each of the six faces. Face colors cycle
// through palette; an empty palette leaves them uncolored.
func NewCube(side int, palette []Color) *Cube {
	c := &Cube{side: side}
	if side <= 0 {
		return c
	}

	half := float64(side) / 2.0
	offset := float64(side-1) / 2.0
	faceColor := func(face int) Color {
		if len(palette) == 0 {
			return ColorNone
		}
		return palette[face%len(palette)]
	}

	c.points = make([]Point, 0, 6*side*side)
	for face := 0; face < 6; face++ {
		glyph, col := FaceGlyphs[face], faceColor(face)
		for a := 0; a < side; a++ {
			for b := 0; b < side; b++ {
				u := float64(a) - offset
				v := float64(b) - offset
				var x, y, z float64
				switch face {
				case 0: // front
					x, y, z = u, v, half
				case 1: // back
					x, y, z = u, v, -half
				case 2: // right
					x, y, z = half, v, u
				case 3: // left
					x, y, z = -half, v, u
				case 4: // top
					x, y, z = v, half, u
				case 5: // bottom
					x, y, z = v, -half, u
				}
				c.points = append(c.points, NewPoint(x, y, z, glyph, col))
			}
		}
	}
	return c
}

func (c *Cube) Side() int {
	return c.side
}

// Points returns the local-space point cloud. Callers must not modify it.
func (c *Cube) Points() []Point {
	return c.points
}

// HalfDiagonal is the radius of the sphere used for collision prediction: half
// of a face diagonal.
func (c *Cube) HalfDiagonal() float64 {
	return halfDiagonal(c.side)
}

func halfDiagonal(side int) float64 {
	return float64(side) * math.Sqrt2 / 2
}

// PredictedPosition is where the cube would be after elapsed if nothing
// bounced it.
func (c *Cube) PredictedPosition(elapsed float64) Vector3 {
	return c.Position.Add(c.Velocity.Scale(elapsed))
}

// WorldMatrix rotates about the local origin (x, then y, then z) and then
// places the cube at its position.
func (c *Cube) WorldMatrix() Matrix4 {
	return WorldMatrix(c.Position, c.Angle)
}

func WorldMatrix(position, angle Vector3) Matrix4 {
	return TransMatrix(position.X, position.Y, position.Z).
		MultiplyBy(NewRotationMatrix(ROTZ, angle.Z)).
		MultiplyBy(NewRotationMatrix(ROTY, angle.Y)).
		MultiplyBy(NewRotationMatrix(ROTX, angle.X))
}

// Transform returns the point cloud in the space defined by view·world.
func (c *Cube) Transform(view Matrix4) []Point {
	return view.MultiplyBy(c.WorldMatrix()).TransformPoints(c.points)
}
