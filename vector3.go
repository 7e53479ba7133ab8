package asciicubes

import "math"

type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Vector4 is a homogeneous coordinate. W is 1 for positions.
type Vector4 struct {
	X float64
	Y float64
	Z float64
	W float64
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector3) Negate() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// DistanceTo returns the Euclidean distance between v and other.
func (v Vector3) DistanceTo(other Vector3) float64 {
	d := v.Sub(other)
	return math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}

// Axis returns the component for axis 0, 1 or 2.
func (v Vector3) Axis(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func (v *Vector3) SetAxis(i int, val float64) {
	switch i {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		v.Z = val
	}
}

// Homogeneous returns the position form of v (W = 1).
func (v Vector3) Homogeneous() Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: v.Z, W: 1.0}
}

func (v Vector4) XYZ() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vector4) finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0) &&
		!math.IsNaN(v.W) && !math.IsInf(v.W, 0)
}
