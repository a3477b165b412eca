package trace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kyeongh0324/two-body-problem/internal/orbit"
)

func TestRecorder_Bound(t *testing.T) {
	r := NewRecorder(5)
	for i := 0; i < 12; i++ {
		r.Record(orbit.Sample{T: float64(i)})
	}

	if r.Len() != 5 {
		t.Fatalf("expected 5 samples retained, got %d", r.Len())
	}

	samples := r.Samples()
	for i, s := range samples {
		if want := float64(7 + i); s.T != want {
			t.Errorf("samples[%d].T = %v, want %v", i, s.T, want)
		}
	}
}

func TestRecorder_Series(t *testing.T) {
	r := NewRecorder(10)
	r.Record(orbit.Sample{Separation: 150})
	r.Record(orbit.Sample{Separation: 148})

	got := r.Series(func(s orbit.Sample) float64 { return s.Separation })
	if len(got) != 2 || got[0] != 150 || got[1] != 148 {
		t.Errorf("Series = %v", got)
	}
}

func TestRecorder_WriteCSV(t *testing.T) {
	r := NewRecorder(10)
	r.Record(orbit.Sample{
		T:          0.01,
		Position:   orbit.Vector2{X: 150, Y: 1.57},
		Velocity:   orbit.Vector2{X: -1.64, Y: 157.06},
		Separation: 150.01,
		Energy:     -12333.3,
	})

	var buf bytes.Buffer
	if err := r.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "time,x,y,vx,vy") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0.010000,150.000000,1.570000") {
		t.Errorf("unexpected row: %s", lines[1])
	}
}
