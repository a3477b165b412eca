package orbit

import "testing"

func TestTrailBuffer_Bound(t *testing.T) {
	const capacity = 10
	trail := NewTrailBuffer(capacity)

	// Push capacity+k points; only the last `capacity` survive, in order.
	const total = capacity + 7
	for i := 0; i < total; i++ {
		trail.Push(Vector2{X: float64(i)})
	}

	if trail.Len() != capacity {
		t.Fatalf("expected length %d, got %d", capacity, trail.Len())
	}

	points := trail.Points()
	for i, p := range points {
		want := float64(total - capacity + i)
		if p.X != want {
			t.Errorf("points[%d].X = %v, want %v", i, p.X, want)
		}
	}
}

func TestTrailBuffer_Underfilled(t *testing.T) {
	trail := NewTrailBuffer(100)
	trail.Push(Vector2{1, 1})
	trail.Push(Vector2{2, 2})

	if trail.Len() != 2 {
		t.Fatalf("expected length 2, got %d", trail.Len())
	}
	points := trail.Points()
	if points[0] != (Vector2{1, 1}) || points[1] != (Vector2{2, 2}) {
		t.Errorf("unexpected order: %v", points)
	}
}

func TestTrailBuffer_Clear(t *testing.T) {
	trail := NewTrailBuffer(4)
	for i := 0; i < 9; i++ {
		trail.Push(Vector2{X: float64(i)})
	}
	trail.Clear()

	if trail.Len() != 0 {
		t.Fatalf("expected empty trail after Clear, got %d", trail.Len())
	}

	trail.Push(Vector2{X: 42})
	if points := trail.Points(); len(points) != 1 || points[0].X != 42 {
		t.Errorf("push after clear produced %v", points)
	}
}

func TestTrailBuffer_EachStopsEarly(t *testing.T) {
	trail := NewTrailBuffer(8)
	for i := 0; i < 5; i++ {
		trail.Push(Vector2{X: float64(i)})
	}

	visited := 0
	trail.Each(func(Vector2) bool {
		visited++
		return visited < 3
	})
	if visited != 3 {
		t.Errorf("expected early stop after 3 points, visited %d", visited)
	}
}

func TestNewTrailBuffer_ClampsCapacity(t *testing.T) {
	trail := NewTrailBuffer(0)
	if trail.Cap() != 1 {
		t.Errorf("expected capacity clamped to 1, got %d", trail.Cap())
	}
}
