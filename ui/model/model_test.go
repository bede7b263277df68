package model

import (
	"sync"
	"testing"
	"time"
)

func TestStatusModel_ClearsAfterTTL(t *testing.T) {
	m := NewStatusModel(3 * time.Second)
	base := time.Unix(0, 0)

	m.Set("Photo cropped successfully!")
	if !m.OnTick(base) || m.Text() != "Photo cropped successfully!" {
		t.Fatalf("first tick should publish message, got %q", m.Text())
	}
	// Still visible before expiry.
	if m.OnTick(base.Add(2*time.Second)) || m.Text() == "" {
		t.Fatalf("message cleared too early")
	}
	if !m.OnTick(base.Add(3*time.Second)) || m.Text() != "" {
		t.Fatalf("message should clear at ttl, got %q", m.Text())
	}
	// Idle ticks report no change.
	if m.OnTick(base.Add(10 * time.Second)) {
		t.Fatalf("idle tick reported a change")
	}
}

func TestStatusModel_NewMessageRestartsWindow(t *testing.T) {
	m := NewStatusModel(0)
	base := time.Unix(0, 0)
	m.Set("a")
	m.OnTick(base)
	m.Set("b")
	m.OnTick(base.Add(2 * time.Second))
	m.OnTick(base.Add(4 * time.Second))
	if m.Text() != "b" {
		t.Fatalf("second message expired with the first one")
	}
}

func TestBusyModel_Concurrent(t *testing.T) {
	var m BusyModel
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Begin()
			m.End()
		}()
	}
	wg.Wait()
	if m.Busy() {
		t.Fatalf("expected idle after all requests finished")
	}
	m.End()
	m.Begin()
	if !m.Busy() {
		t.Fatalf("counter must not go negative")
	}
	var nilModel *BusyModel
	nilModel.Begin()
	if nilModel.Busy() {
		t.Fatalf("nil model is never busy")
	}
}

func TestDisplayModel(t *testing.T) {
	m := NewDisplayModel()
	m.SetSize(400, 300)
	if b := m.Box(); b.Dx() != 400 || b.Dy() != 300 || b.Min.X != 0 {
		t.Fatalf("unexpected box %v", b)
	}
	m.SetSize(0, 300)
	if !m.Box().Empty() {
		t.Fatalf("zero width should clear the box")
	}
}
