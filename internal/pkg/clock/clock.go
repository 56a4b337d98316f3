// Package clock abstracts wall time so markdown tiers, pickup windows and
// offer visibility can be exercised at fixed instants in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// RealClock reports wall time in UTC. Every persisted timestamp is UTC so
// tier boundaries compare the same across storage drivers.
type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock stands still until moved. Tests drive it from a single
// goroutine; it is not safe for concurrent use.
type MockClock struct {
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	return c.now
}

// Set jumps to an absolute instant.
func (c *MockClock) Set(t time.Time) {
	c.now = t
}

// Add advances the clock relative to its current instant.
func (c *MockClock) Add(d time.Duration) {
	c.now = c.now.Add(d)
}
