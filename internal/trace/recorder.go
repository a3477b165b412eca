// Package trace records per-step samples of a headless run for
// plotting and export. Everything stays in memory; nothing is
// persisted between sessions.
package trace

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/kyeongh0324/two-body-problem/internal/orbit"
)

// Recorder is a bounded append-only log of samples. When full, the
// oldest samples are evicted so the tail of a long run survives.
type Recorder struct {
	buf  []orbit.Sample
	head int
	size int
}

func NewRecorder(capacity int) *Recorder {
	if capacity < 1 {
		capacity = 1
	}
	return &Recorder{buf: make([]orbit.Sample, capacity)}
}

func (r *Recorder) Len() int { return r.size }

func (r *Recorder) Record(s orbit.Sample) {
	r.buf[r.head] = s
	r.head = (r.head + 1) % len(r.buf)
	if r.size < len(r.buf) {
		r.size++
	}
}

// Samples returns the retained samples in recording order.
func (r *Recorder) Samples() []orbit.Sample {
	out := make([]orbit.Sample, 0, r.size)
	start := (r.head - r.size + len(r.buf)) % len(r.buf)
	for i := 0; i < r.size; i++ {
		out = append(out, r.buf[(start+i)%len(r.buf)])
	}
	return out
}

// Series extracts one scalar per retained sample, for plotting.
func (r *Recorder) Series(pick func(orbit.Sample) float64) []float64 {
	out := make([]float64, 0, r.size)
	for _, s := range r.Samples() {
		out = append(out, pick(s))
	}
	return out
}

// WriteCSV emits the retained samples as CSV rows with a header.
func (r *Recorder) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"time", "x", "y", "vx", "vy", "separation", "energy", "angular_momentum"}
	if err := cw.Write(header); err != nil {
		return err
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	for _, s := range r.Samples() {
		row := []string{
			f(s.T),
			f(s.Position.X), f(s.Position.Y),
			f(s.Velocity.X), f(s.Velocity.Y),
			f(s.Separation), f(s.Energy), f(s.AngularMomentum),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}
