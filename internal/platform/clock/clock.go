// Package clock derives calendar days from wall-clock time in a fixed location.
package clock

import (
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen/quote-quiz/internal/domain"
)

// System is a clock backed by time.Now, rendering days in one location.
type System struct {
	loc *time.Location
}

// New returns a system clock for the named IANA location ("UTC", "Asia/Seoul", ...).
func New(location string) (*System, error) {
	loc, err := time.LoadLocation(location)
	if err != nil {
		return nil, fmt.Errorf("loading location %q: %w", location, err)
	}

	return &System{loc: loc}, nil
}

// Now returns the current time in the clock's location.
func (c *System) Now() time.Time {
	return time.Now().In(c.loc)
}

// Day returns the calendar day of t in the clock's location.
func (c *System) Day(t time.Time) string {
	return Day(t, c.loc)
}

// Location returns the clock's location.
func (c *System) Location() *time.Location {
	return c.loc
}

// Day formats the calendar day of t as seen in loc.
func Day(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(domain.DayLayout)
}

// Manual is a settable clock for tests and simulations.
type Manual struct {
	mu  sync.Mutex
	now time.Time
	loc *time.Location
}

// NewManual returns a manual clock frozen at now, rendering days in now's location.
func NewManual(now time.Time) *Manual {
	return &Manual{now: now, loc: now.Location()}
}

// Now returns the frozen time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.now
}

// Day returns the calendar day of t in the clock's location.
func (m *Manual) Day(t time.Time) string {
	return Day(t, m.loc)
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = t
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = m.now.Add(d)
}

// NextDay moves the clock to the same wall time one calendar day later.
func (m *Manual) NextDay() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = m.now.AddDate(0, 0, 1)
}
