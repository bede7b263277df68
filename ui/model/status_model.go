package model

import (
	"sync"
	"time"
)

// DefaultStatusTTL is how long a status message stays visible.
const DefaultStatusTTL = 3 * time.Second

// StatusModel holds the ephemeral status message. Messages arrive from
// worker goroutines; presenters poll Text() on tick.
type StatusModel struct {
	mu      sync.Mutex
	ttl     time.Duration
	text    string
	expires time.Time
	pending bool // set but not yet stamped by a tick
}

// NewStatusModel returns a model clearing messages after ttl.
func NewStatusModel(ttl time.Duration) *StatusModel {
	if ttl <= 0 {
		ttl = DefaultStatusTTL
	}
	return &StatusModel{ttl: ttl}
}

// Set replaces the message. The display window starts at the next tick so
// that messages set off the UI thread get their full time on screen.
func (m *StatusModel) Set(text string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.text = text
	m.pending = true
	m.mu.Unlock()
}

// OnTick stamps fresh messages and clears expired ones. It reports whether
// the visible text changed since the previous tick.
func (m *StatusModel) OnTick(now time.Time) bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pending {
		m.pending = false
		m.expires = now.Add(m.ttl)
		return true
	}
	if m.text != "" && !now.Before(m.expires) {
		m.text = ""
		return true
	}
	return false
}

// Text returns the current message, empty when cleared.
func (m *StatusModel) Text() string {
	if m == nil {
		return ""
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
