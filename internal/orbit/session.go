package orbit

import (
	"fmt"
	"math"
	"time"
)

// collisionSlack shrinks the contact distance so the halt fires only
// on genuine near-collision, not on a grazing pass of the radii sum.
const collisionSlack = 0.8

// Config holds the session-wide constants. All fields are fixed for
// the lifetime of one session; changing them requires a Reset.
type Config struct {
	G               float64
	PrimaryMass     float64
	SecondaryMass   float64
	PrimaryRadius   float64
	SecondaryRadius float64
	Separation      float64
	Dt              float64
	TrailCapacity   int
}

// Validate checks every field except Separation, which gets the
// degenerate-configuration treatment in NewSession instead.
func (c Config) Validate() error {
	if c.G <= 0 {
		return fmt.Errorf("gravitational constant must be positive, got %f", c.G)
	}
	if c.PrimaryMass <= 0 || c.SecondaryMass <= 0 {
		return fmt.Errorf("masses must be positive, got %f and %f", c.PrimaryMass, c.SecondaryMass)
	}
	if c.PrimaryRadius <= 0 || c.SecondaryRadius <= 0 {
		return fmt.Errorf("radii must be positive, got %f and %f", c.PrimaryRadius, c.SecondaryRadius)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.TrailCapacity < 1 {
		return fmt.Errorf("trail capacity must be at least 1, got %d", c.TrailCapacity)
	}
	return nil
}

// CircularSpeed returns the analytic circular-orbit speed
// sqrt(G*m1/D) for the configured separation.
func (c Config) CircularSpeed() float64 {
	return math.Sqrt(c.G * c.PrimaryMass / c.Separation)
}

// StepOutcome reports the result of one integration step. When Halted
// is false, Position carries the secondary's new position.
type StepOutcome struct {
	Halted   bool
	Position Vector2
}

// Session owns the two bodies, the trail, and the pause/halt state
// machine. Not safe for concurrent use; a single driver must own it.
type Session struct {
	cfg       Config
	primary   Body
	secondary Body
	trail     *TrailBuffer
	t         float64
	paused    bool
	halted    bool
	marker    KickMarker
	hasMarker bool
}

// NewSession builds a session from cfg. The primary sits at the
// origin with zero velocity; the secondary starts at (Separation, 0)
// moving counterclockwise at the circular-orbit speed.
//
// A non-positive Separation returns ErrDegenerateConfig together with
// a session that starts paused with coincident, motionless bodies. No
// separation is invented; only a Reset with a valid config recovers.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:   cfg,
		trail: NewTrailBuffer(cfg.TrailCapacity),
		primary: Body{
			Mass:   cfg.PrimaryMass,
			Radius: cfg.PrimaryRadius,
		},
		secondary: Body{
			Mass:   cfg.SecondaryMass,
			Radius: cfg.SecondaryRadius,
		},
	}

	if cfg.Separation <= 0 {
		s.paused = true
		return s, ErrDegenerateConfig
	}

	s.secondary.Pos = Vector2{X: cfg.Separation}
	s.secondary.Vel = Vector2{Y: cfg.CircularSpeed()}
	return s, nil
}

// Reset re-initializes the session in place from cfg, clearing the
// trail, the kick marker, and any halt latch.
func (s *Session) Reset(cfg Config) error {
	fresh, err := NewSession(cfg)
	if err != nil && fresh == nil {
		return err
	}
	*s = *fresh
	return err
}

// Step advances the secondary by one fixed timestep of semi-implicit
// Euler: velocity from gravity first, then position from the updated
// velocity. The primary never moves; it is a fixed attractor despite
// its finite mass.
//
// When the separation drops below (r1+r2)*0.8, or is exactly zero,
// Step returns a halted outcome without mutating anything and the
// session latches paused until Reset. Stepping a paused session is a
// no-op reporting the current position.
func (s *Session) Step() StepOutcome {
	if s.paused {
		return StepOutcome{Halted: s.halted, Position: s.secondary.Pos}
	}

	r := s.primary.Pos.Sub(s.secondary.Pos)
	d2 := r.MagSq()
	contact := (s.primary.Radius + s.secondary.Radius) * collisionSlack
	if d2 == 0 || d2 < contact*contact {
		s.paused = true
		s.halted = true
		return StepOutcome{Halted: true, Position: s.secondary.Pos}
	}

	// a = F/m2 * rhat = G*m1/|r|^2, toward the primary.
	accel := r.Normalize().Scale(s.cfg.G * s.primary.Mass / d2)
	dt := s.cfg.Dt
	s.secondary.Vel = s.secondary.Vel.Add(accel.Scale(dt))
	s.secondary.Pos = s.secondary.Pos.Add(s.secondary.Vel.Scale(dt))
	s.t += dt

	s.trail.Push(s.secondary.Pos)
	return StepOutcome{Position: s.secondary.Pos}
}

// ApplyKick adds an impulse of the given magnitude along angleDeg to
// the secondary's velocity, unclamped. The trail is discarded since
// the trajectory becomes discontinuous, and the kick marker is armed
// for the fading direction cue.
//
// Returns ErrInvalidState while paused; kicks only mean something
// mid-flight.
func (s *Session) ApplyKick(angleDeg, magnitude float64) error {
	if s.paused {
		return ErrInvalidState
	}
	s.secondary.Vel = s.secondary.Vel.Add(FromPolar(angleDeg, magnitude))
	s.trail.Clear()
	s.marker = KickMarker{
		AngleDeg:  angleDeg,
		Magnitude: magnitude,
		Deadline:  time.Now().Add(KickMarkerTTL),
	}
	s.hasMarker = true
	return nil
}

// TogglePause flips the manual pause flag and returns the new state.
// A halted session stays paused; only Reset recovers it.
func (s *Session) TogglePause() bool {
	if s.halted {
		return true
	}
	s.paused = !s.paused
	return s.paused
}

func (s *Session) Paused() bool { return s.paused }

// Halted reports whether stepping hit the collision guard. Halted
// sessions are terminal until Reset.
func (s *Session) Halted() bool { return s.halted }

// Time returns the elapsed simulation time.
func (s *Session) Time() float64 { return s.t }

func (s *Session) Config() Config { return s.cfg }

// Primary returns a copy of the primary body.
func (s *Session) Primary() Body { return s.primary }

// Secondary returns a copy of the secondary body.
func (s *Session) Secondary() Body { return s.secondary }

// Trail exposes the position history for rendering.
func (s *Session) Trail() *TrailBuffer { return s.trail }

// Marker returns the most recent kick marker and whether one has been
// armed since the last Reset. Activity is a separate, time-based
// question answered by KickMarker.ActiveAt.
func (s *Session) Marker() (KickMarker, bool) {
	return s.marker, s.hasMarker
}

// Separation returns the current distance between the two bodies.
func (s *Session) Separation() float64 {
	return s.primary.Pos.Sub(s.secondary.Pos).Mag()
}

// Energy returns the total mechanical energy of the secondary in the
// primary's fixed field: kinetic plus gravitational potential.
func (s *Session) Energy() float64 {
	ke := 0.5 * s.secondary.Mass * s.secondary.Vel.MagSq()
	d := s.Separation()
	if d == 0 {
		return ke
	}
	return ke - s.cfg.G*s.primary.Mass*s.secondary.Mass/d
}

// AngularMomentum returns the secondary's angular momentum about the
// primary.
func (s *Session) AngularMomentum() float64 {
	rel := s.secondary.Pos.Sub(s.primary.Pos)
	return s.secondary.Mass * (rel.X*s.secondary.Vel.Y - rel.Y*s.secondary.Vel.X)
}
