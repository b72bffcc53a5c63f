package fluid

import "sync"

// OperatingPoint is a committed (mass flow, pressure change) pair.
type OperatingPoint struct {
	MassFlow       float64
	PressureChange float64
}

// Tracked decorates a Component with Commit. Queries are forwarded to the
// wrapped component untouched; only the committed point is guarded.
type Tracked struct {
	Component

	mu        sync.RWMutex
	point     OperatingPoint
	committed bool
}

// Track wraps c.
func Track(c Component) *Tracked {
	return &Tracked{Component: c}
}

// Commit records the operating point. It never fails; the error return
// satisfies Committer.
func (t *Tracked) Commit(massFlow, pressureChange float64) error {
	t.mu.Lock()
	t.point = OperatingPoint{MassFlow: massFlow, PressureChange: pressureChange}
	t.committed = true
	t.mu.Unlock()
	return nil
}

// Committed returns the last committed point and whether one exists.
func (t *Tracked) Committed() (OperatingPoint, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.point, t.committed
}

// Reset forgets the committed point.
func (t *Tracked) Reset() {
	t.mu.Lock()
	t.point = OperatingPoint{}
	t.committed = false
	t.mu.Unlock()
}
