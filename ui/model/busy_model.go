package model

import (
	"sync/atomic"
)

// BusyModel counts image service requests in flight. The zero value is idle and usable.
// Concurrency-safe because requests finish on worker goroutines while the UI ticks.
type BusyModel struct{ inflight atomic.Int32 }

// Begin records a started request.
func (m *BusyModel) Begin() {
	if m == nil {
		return
	}
	m.inflight.Add(1)
}

// End records a finished request.
func (m *BusyModel) End() {
	if m == nil {
		return
	}
	if m.inflight.Add(-1) < 0 {
		m.inflight.Store(0)
	}
}

// Busy reports whether any request is in flight.
func (m *BusyModel) Busy() bool {
	if m == nil {
		return false
	}
	return m.inflight.Load() > 0
}
