package metrics

import (
	"math"

	"github.com/kyeongh0324/two-body-problem/internal/orbit"
)

// EnergyDrift tracks the maximum relative deviation of the total
// mechanical energy from its value at the first observed sample.
type EnergyDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(s orbit.Sample) {
	if e.samples == 0 {
		e.initial = s.Energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(s.Energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}
