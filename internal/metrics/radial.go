package metrics

import "github.com/kyeongh0324/two-body-problem/internal/orbit"

// Periapsis tracks the smallest observed separation.
type Periapsis struct {
	min     float64
	samples int
}

func NewPeriapsis() *Periapsis { return &Periapsis{} }

func (p *Periapsis) Name() string { return "periapsis" }

func (p *Periapsis) Observe(s orbit.Sample) {
	if p.samples == 0 || s.Separation < p.min {
		p.min = s.Separation
	}
	p.samples++
}

func (p *Periapsis) Value() float64 { return p.min }

func (p *Periapsis) Reset() {
	p.min = 0
	p.samples = 0
}

// Apoapsis tracks the largest observed separation.
type Apoapsis struct {
	max     float64
	samples int
}

func NewApoapsis() *Apoapsis { return &Apoapsis{} }

func (a *Apoapsis) Name() string { return "apoapsis" }

func (a *Apoapsis) Observe(s orbit.Sample) {
	if a.samples == 0 || s.Separation > a.max {
		a.max = s.Separation
	}
	a.samples++
}

func (a *Apoapsis) Value() float64 { return a.max }

func (a *Apoapsis) Reset() {
	a.max = 0
	a.samples = 0
}
