package asciicubes

// WillCollide reports whether c's predicted position after elapsed falls
// within the bounding sphere sum of any other cube's predicted position.
// Others whose predicted position equals c's current position are ignored,
// as is c itself.
func WillCollide(c *Cube, others []*Cube, elapsed float64) bool {
	predicted := c.PredictedPosition(elapsed)
	for _, other := range others {
		if other == c {
			continue
		}
		otherPredicted := other.PredictedPosition(elapsed)
		if otherPredicted == c.Position {
			continue
		}
		if predicted.DistanceTo(otherPredicted) < c.HalfDiagonal()+other.HalfDiagonal() {
			return true
		}
	}
	return false
}

// PendingCollisions evaluates WillCollide for every cube against the same
// snapshot. It must run before any cube is ticked.
func PendingCollisions(cubes []*Cube, elapsed float64) []bool {
	pending := make([]bool, len(cubes))
	for i, c := range cubes {
		pending[i] = WillCollide(c, cubes, elapsed)
	}
	return pending
}
