package asciicubes

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix4 is indexed [row][column] and applied to column vectors (M·v).
type Matrix4 [4][4]float64

const (
	ROTX = 0
	ROTY = 1
	ROTZ = 2
)

func IdentMatrix() Matrix4 {
	var m Matrix4
	m[0][0], m[1][1], m[2][2], m[3][3] = 1.0, 1.0, 1.0, 1.0
	return m
}

// NewRotationMatrix builds a right-handed rotation of theta radians about
// ROTX, ROTY or ROTZ.
func NewRotationMatrix(aRotation int, theta float64) Matrix4 {
	m := IdentMatrix()
	c, s := math.Cos(theta), math.Sin(theta)
	switch aRotation {
	case ROTX:
		m[1][1] = c
		m[1][2] = -s
		m[2][1] = s
		m[2][2] = c
	case ROTY:
		m[0][0] = c
		m[0][2] = s
		m[2][0] = -s
		m[2][2] = c
	case ROTZ:
		m[0][0] = c
		m[0][1] = -s
		m[1][0] = s
		m[1][1] = c
	}
	return m
}

func TransMatrix(x, y, z float64) Matrix4 {
	m := IdentMatrix()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// MultiplyBy returns m·other, so other is applied first.
func (m Matrix4) MultiplyBy(other Matrix4) Matrix4 {
	var result Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[i][k] * other[k][j]
			}
			result[i][j] = sum
		}
	}
	return result
}

func (m Matrix4) Transform(v Vector4) Vector4 {
	return Vector4{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		W: m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

// TransformPoints applies m to every point and returns new points; src is
// left untouched.
func (m Matrix4) TransformPoints(src []Point) []Point {
	dest := make([]Point, len(src))
	for i, p := range src {
		dest[i] = p.WithPosition(m.Transform(p.Position))
	}
	return dest
}

// FromMgl converts a column-major mathgl matrix.
func FromMgl(m mgl64.Mat4) Matrix4 {
	var r Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[row][col] = m.At(row, col)
		}
	}
	return r
}

func (m Matrix4) String() string {
	var sb strings.Builder
	for i, row := range m {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, val := range row {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%f", val))
		}
	}
	return sb.String()
}
