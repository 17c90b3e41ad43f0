package utils

import "time"

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

// Today returns the civil date of the clock's current time, truncated to
// midnight UTC. Recurring materialization works on civil dates only.
func Today(c Clock) time.Time {
	year, month, day := c.Now().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type MockClock struct {
	FixedNow time.Time
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) SetNow(now time.Time) {
	m.FixedNow = now
}
