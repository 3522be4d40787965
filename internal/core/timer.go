package core

import "time"

// Pacer paces generation steps independently of the frame rate.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxBurst    int
}

// NewPacer constructs a Pacer targeting gps generations per second. At most
// maxBurst generations are reported per call so a stalled frame does not
// trigger a long catch-up; values <= 0 mean 1.
func NewPacer(gps float64, maxBurst int) *Pacer {
	if maxBurst <= 0 {
		maxBurst = 1
	}
	p := &Pacer{maxBurst: maxBurst}
	p.SetRate(gps)
	return p
}

// SetRate changes the generation rate. Non-positive rates fall back to 60.
func (p *Pacer) SetRate(gps float64) {
	if gps <= 0 {
		gps = 60
	}
	p.step = time.Duration(float64(time.Second) / gps)
	if p.step <= 0 {
		p.step = time.Nanosecond
	}
}

// Step returns the duration of one generation.
func (p *Pacer) Step() time.Duration { return p.step }

// Due reports how many generations should run at now. The first call is
// always due exactly one generation.
func (p *Pacer) Due(now time.Time) int {
	if p.last.IsZero() {
		p.last = now
		return 1
	}
	delta := now.Sub(p.last)
	p.last = now
	if delta < 0 {
		delta = 0
	}
	p.accumulator += delta

	n := int(p.accumulator / p.step)
	p.accumulator -= time.Duration(n) * p.step
	if n > p.maxBurst {
		n = p.maxBurst
		p.accumulator = 0
	}
	return n
}

// Reset forgets elapsed time so the next Due starts fresh.
func (p *Pacer) Reset() {
	p.accumulator = 0
	p.last = time.Time{}
}
