package orbit

// TrailBuffer is a bounded FIFO of past secondary positions, kept for
// rendering only. When full, pushing evicts the oldest point.
type TrailBuffer struct {
	buf  []Vector2
	head int
	size int
}

// NewTrailBuffer creates an empty trail with the given capacity.
// Capacities below 1 are clamped to 1.
func NewTrailBuffer(capacity int) *TrailBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &TrailBuffer{buf: make([]Vector2, capacity)}
}

func (t *TrailBuffer) Len() int { return t.size }

func (t *TrailBuffer) Cap() int { return len(t.buf) }

// Push appends a point, evicting the oldest when the buffer is full.
func (t *TrailBuffer) Push(p Vector2) {
	t.buf[t.head] = p
	t.head = (t.head + 1) % len(t.buf)
	if t.size < len(t.buf) {
		t.size++
	}
}

// Clear empties the buffer immediately.
func (t *TrailBuffer) Clear() {
	t.head = 0
	t.size = 0
}

// Each calls fn for every retained point in insertion order, oldest
// first, stopping early if fn returns false.
func (t *TrailBuffer) Each(fn func(Vector2) bool) {
	start := (t.head - t.size + len(t.buf)) % len(t.buf)
	for i := 0; i < t.size; i++ {
		if !fn(t.buf[(start+i)%len(t.buf)]) {
			return
		}
	}
}

// Points returns a copy of the retained points in insertion order.
func (t *TrailBuffer) Points() []Vector2 {
	out := make([]Vector2, 0, t.size)
	t.Each(func(p Vector2) bool {
		out = append(out, p)
		return true
	})
	return out
}
