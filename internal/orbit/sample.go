package orbit

// Sample is a read-only observation of the session at one instant,
// consumed by metrics and the trace recorder.
type Sample struct {
	T               float64
	Position        Vector2
	Velocity        Vector2
	Separation      float64
	Energy          float64
	AngularMomentum float64
}

// Sample captures the current observable state.
func (s *Session) Sample() Sample {
	return Sample{
		T:               s.t,
		Position:        s.secondary.Pos,
		Velocity:        s.secondary.Vel,
		Separation:      s.Separation(),
		Energy:          s.Energy(),
		AngularMomentum: s.AngularMomentum(),
	}
}
