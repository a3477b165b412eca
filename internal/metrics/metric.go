// Package metrics provides observation metrics computed over a
// stepped orbital session. Metrics are diagnostics only and never
// feed back into the physics.
package metrics

import "github.com/kyeongh0324/two-body-problem/internal/orbit"

type Metric interface {
	Name() string
	Observe(s orbit.Sample)
	Value() float64
	Reset()
}

// Defaults returns the standard metric set for a run.
func Defaults() []Metric {
	return []Metric{
		NewEnergyDrift(),
		NewPeriapsis(),
		NewApoapsis(),
	}
}
