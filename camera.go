package asciicubes

type Camera struct {
	position  Vector3
	angle     Vector3
	revMatrix Matrix4
}

// NewCamera places a camera at (xp, yp, zp) rotated by (xa, ya, za). The
// camera looks down its local -z axis.
func NewCamera(xp, yp, zp, xa, ya, za float64) *Camera {
	c := &Camera{
		position: NewVector3(xp, yp, zp),
		angle:    NewVector3(xa, ya, za),
	}
	c.update()
	return c
}

// update rebuilds the world-to-camera matrix, the inverse of placing the
// camera with T(pos)·Rz·Ry·Rx.
func (c *Camera) update() {
	x := NewRotationMatrix(ROTX, -c.angle.X)
	y := NewRotationMatrix(ROTY, -c.angle.Y)
	z := NewRotationMatrix(ROTZ, -c.angle.Z)
	back := c.position.Negate()
	sTransWorldToCamera := TransMatrix(back.X, back.Y, back.Z)

	c.revMatrix = x.MultiplyBy(y).MultiplyBy(z).MultiplyBy(sTransWorldToCamera)
}

func ViewMatrix(position, angle Vector3) Matrix4 {
	return NewCamera(position.X, position.Y, position.Z, angle.X, angle.Y, angle.Z).GetMatrix()
}

func (c *Camera) GetMatrix() Matrix4 {
	return c.revMatrix
}

func (c *Camera) GetPosition() Vector3 {
	return c.position
}
