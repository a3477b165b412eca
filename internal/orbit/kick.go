package orbit

import "time"

// KickMarkerTTL is how long the directional cue stays active after a
// kick. Purely cosmetic; physics never reads the marker.
const KickMarkerTTL = 1500 * time.Millisecond

// KickMarker records the direction of the most recent kick so the
// driver can draw a fading arrow. It is view-state: expiry is
// evaluated against a caller-supplied clock and never feeds back into
// the session.
type KickMarker struct {
	AngleDeg  float64
	Magnitude float64
	Deadline  time.Time
}

// ActiveAt reports whether the marker should still be drawn at now.
func (k KickMarker) ActiveAt(now time.Time) bool {
	return now.Before(k.Deadline)
}
