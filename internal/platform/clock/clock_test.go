package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLocation(t *testing.T) {
	_, err := New("Not/AZone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not/AZone")
}

func TestSystem_Day(t *testing.T) {
	c, err := New("UTC")
	require.NoError(t, err)

	ts := time.Date(2025, 9, 8, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2025-09-08", c.Day(ts))
	assert.Equal(t, "2025-09-09", c.Day(ts.Add(time.Second)))
	assert.Equal(t, time.UTC, c.Location())
}

func TestDay_UsesLocationConsistently(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)

	// 2025-09-08 16:00 UTC is already 2025-09-09 in Seoul
	ts := time.Date(2025, 9, 8, 16, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-09-08", Day(ts, time.UTC))
	assert.Equal(t, "2025-09-09", Day(ts, seoul))
}

func TestManual(t *testing.T) {
	m := NewManual(time.Date(2025, 9, 8, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-09-08", m.Day(m.Now()))

	m.Advance(11 * time.Hour)
	assert.Equal(t, "2025-09-08", m.Day(m.Now()))

	m.Advance(time.Hour)
	assert.Equal(t, "2025-09-09", m.Day(m.Now()))

	m.NextDay()
	assert.Equal(t, "2025-09-10", m.Day(m.Now()))

	m.Set(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-01-01", m.Day(m.Now()))
}
