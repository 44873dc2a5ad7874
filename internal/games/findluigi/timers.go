package findluigi

import "time"

// Debounce is a one-shot lockout. While armed, pointer presses are ignored.
// It is advanced by frame time, never by a background timer.
type Debounce struct {
	duration  time.Duration
	remaining time.Duration
}

// NewDebounce creates a disarmed debounce of the given length.
func NewDebounce(d time.Duration) Debounce {
	return Debounce{duration: d}
}

// Arm (re)starts the lockout.
func (d *Debounce) Arm() {
	d.remaining = d.duration
}

// Armed reports whether presses are currently suppressed.
func (d *Debounce) Armed() bool {
	return d.remaining > 0
}

// Advance consumes elapsed time; the lockout disarms once it runs out.
func (d *Debounce) Advance(elapsed time.Duration) {
	if d.remaining <= 0 {
		return
	}
	d.remaining -= elapsed
	if d.remaining < 0 {
		d.remaining = 0
	}
}

// Reset disarms immediately.
func (d *Debounce) Reset() {
	d.remaining = 0
}

// secondClock accumulates frame time and reports whole seconds.
type secondClock struct {
	acc time.Duration
}

// Advance adds elapsed and returns how many full seconds completed.
func (c *secondClock) Advance(elapsed time.Duration) int {
	c.acc += elapsed
	n := int(c.acc / time.Second)
	c.acc -= time.Duration(n) * time.Second
	return n
}

func (c *secondClock) Reset() {
	c.acc = 0
}
