package mousetrap

// Timer counts down one unit per gameplay tick. Cheese adds time back,
// never above the total.
type Timer struct {
	total   int
	warning int
	left    int
}

// NewTimer creates a full timer.
func NewTimer(total, warning int) *Timer {
	return &Timer{total: total, warning: warning, left: total}
}

// Reset refills the timer.
func (t *Timer) Reset() { t.left = t.total }

// Update spends one tick.
func (t *Timer) Update() { t.left-- }

// Add gives time back, capped at the total.
func (t *Timer) Add(n int) {
	t.left = min(t.left+n, t.total)
}

// Left returns the remaining ticks.
func (t *Timer) Left() int { return t.left }

// Total returns the full duration.
func (t *Timer) Total() int { return t.total }

// Fraction returns the remaining share of the total in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.total <= 0 || t.left <= 0 {
		return 0
	}
	return float64(t.left) / float64(t.total)
}

// OutOfTime reports whether the timer has run down.
func (t *Timer) OutOfTime() bool { return t.left <= 0 }

// Warning reports whether the timer is in its last stretch.
func (t *Timer) Warning() bool { return t.left <= t.warning }
