package orbit

// Body is a point mass with a collision radius. The radius only feeds
// the near-collision guard; it has no physical effect on the force.
type Body struct {
	Mass   float64
	Radius float64
	Pos    Vector2
	Vel    Vector2
}

// Speed returns the magnitude of the body's velocity.
func (b Body) Speed() float64 {
	return b.Vel.Mag()
}
