package app

import (
	"time"
)

// Metrics counts what one editing session did. It is only touched from the
// event loop.
type Metrics struct {
	frameCount  uint64
	frameTotal  time.Duration
	frameMax    time.Duration
	keyCount    uint64
	idleTicks   uint64
	saveCount   uint64
	diskChanges uint64
	searchCount uint64
	startTime   time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics(start time.Time) *Metrics {
	return &Metrics{startTime: start}
}

// RecordFrame records the time taken to compose and write one frame.
func (m *Metrics) RecordFrame(d time.Duration) {
	m.frameCount++
	m.frameTotal += d
	if d > m.frameMax {
		m.frameMax = d
	}
}

// RecordKey records one handled key event.
func (m *Metrics) RecordKey() { m.keyCount++ }

// RecordIdle records a read that timed out with no key.
func (m *Metrics) RecordIdle() { m.idleTicks++ }

// RecordSave records a successful save.
func (m *Metrics) RecordSave() { m.saveCount++ }

// RecordDiskChange records an external change to the open file.
func (m *Metrics) RecordDiskChange() { m.diskChanges++ }

// RecordSearch records one search prompt.
func (m *Metrics) RecordSearch() { m.searchCount++ }

// MetricsSnapshot is a copy of the counters.
type MetricsSnapshot struct {
	Frames      uint64
	AvgFrame    time.Duration
	MaxFrame    time.Duration
	Keys        uint64
	IdleTicks   uint64
	Saves       uint64
	DiskChanges uint64
	Searches    uint64
	Uptime      time.Duration
}

// Snapshot returns the current counters. now is used for the uptime.
func (m *Metrics) Snapshot(now time.Time) MetricsSnapshot {
	s := MetricsSnapshot{
		Frames:      m.frameCount,
		MaxFrame:    m.frameMax,
		Keys:        m.keyCount,
		IdleTicks:   m.idleTicks,
		Saves:       m.saveCount,
		DiskChanges: m.diskChanges,
		Searches:    m.searchCount,
		Uptime:      now.Sub(m.startTime),
	}
	if m.frameCount > 0 {
		s.AvgFrame = m.frameTotal / time.Duration(m.frameCount)
	}
	return s
}

// Metrics returns the session counters.
func (app *Application) Metrics() MetricsSnapshot {
	return app.metrics.Snapshot(app.now())
}
