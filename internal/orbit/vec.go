package orbit

import "math"

// Vector2 is an immutable 2D vector. All operations return new values.
type Vector2 struct {
	X, Y float64
}

func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

func (v Vector2) Scale(factor float64) Vector2 {
	return Vector2{v.X * factor, v.Y * factor}
}

func (v Vector2) Mag() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// MagSq returns the squared magnitude, avoiding the square root when
// only comparisons are needed.
func (v Vector2) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in the direction of v. The zero
// vector normalizes to the zero vector rather than failing.
func (v Vector2) Normalize() Vector2 {
	m := v.Mag()
	if m == 0 {
		return Vector2{}
	}
	return Vector2{v.X / m, v.Y / m}
}

func (v Vector2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// FromPolar builds a vector from an angle in degrees and a magnitude.
func FromPolar(angleDeg, magnitude float64) Vector2 {
	rad := angleDeg * math.Pi / 180
	return Vector2{magnitude * math.Cos(rad), magnitude * math.Sin(rad)}
}
