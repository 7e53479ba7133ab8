package asciicubes

import "math"

// Tick advances c by elapsed. Orientation always accumulates. Each position
// axis either advances or, when the move would cross bounds or a collision is
// pending, flips its velocity sign and stays put for this tick.
func Tick(c *Cube, bounds Vector3, elapsed float64, willCollide bool) {
	c.Angle = c.Angle.Add(c.AngularVelocity.Scale(elapsed))

	for axis := 0; axis < 3; axis++ {
		p := c.Position.Axis(axis)
		v := c.Velocity.Axis(axis)
		next := p + v*elapsed
		if math.Abs(next) > bounds.Axis(axis) || willCollide {
			c.Velocity.SetAxis(axis, -v)
			continue
		}
		c.Position.SetAxis(axis, next)
	}
}
