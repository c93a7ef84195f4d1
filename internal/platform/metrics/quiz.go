// Package metrics provides Prometheus collectors for quiz activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quiz"

// Like actions reported by RecordLike.
const (
	LikeActionLike   = "like"
	LikeActionUnlike = "unlike"
)

// Quiz holds quiz counters. A nil *Quiz is valid and records nothing.
type Quiz struct {
	submissions  prometheus.Counter
	skips        prometheus.Counter
	conflicts    *prometheus.CounterVec
	likes        *prometheus.CounterVec
	lockEntries  prometheus.Gauge
	locksEvicted prometheus.Counter
}

// NewQuiz registers quiz collectors with reg.
// Pass prometheus.DefaultRegisterer to expose them on /-/metrics.
func NewQuiz(reg prometheus.Registerer) *Quiz {
	f := promauto.With(reg)

	return &Quiz{
		submissions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Accepted fill-in submissions.",
		}),
		skips: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skips_total",
			Help:      "Accepted skips.",
		}),
		conflicts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "daily_conflicts_total",
			Help:      "Submit or skip attempts rejected because the device already acted today.",
		}, []string{"action"}),
		likes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "like_toggles_total",
			Help:      "Like toggles by resulting action.",
		}, []string{"action"}),
		lockEntries: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lock_entries",
			Help:      "Daily lock keys currently held in memory.",
		}),
		locksEvicted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lock_entries_evicted_total",
			Help:      "Lock keys from past days removed by the sweeper.",
		}),
	}
}

// RecordSubmission counts an accepted submission.
func (m *Quiz) RecordSubmission() {
	if m == nil {
		return
	}

	m.submissions.Inc()
}

// RecordSkip counts an accepted skip.
func (m *Quiz) RecordSkip() {
	if m == nil {
		return
	}

	m.skips.Inc()
}

// RecordConflict counts a rejected second action ("submit" or "skip").
func (m *Quiz) RecordConflict(action string) {
	if m == nil {
		return
	}

	m.conflicts.WithLabelValues(action).Inc()
}

// RecordLike counts a like toggle; liked reports the resulting state.
func (m *Quiz) RecordLike(liked bool) {
	if m == nil {
		return
	}

	action := LikeActionUnlike
	if liked {
		action = LikeActionLike
	}

	m.likes.WithLabelValues(action).Inc()
}

// SetLockEntries reports the lock registry size.
func (m *Quiz) SetLockEntries(n int) {
	if m == nil {
		return
	}

	m.lockEntries.Set(float64(n))
}

// RecordEvicted counts lock keys removed by the sweeper.
func (m *Quiz) RecordEvicted(n int) {
	if m == nil {
		return
	}

	m.locksEvicted.Add(float64(n))
}
