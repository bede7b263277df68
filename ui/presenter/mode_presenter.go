package presenter

import (
	"sync"
	"time"

	"github.com/soocke/photo-editor-go/domain/editor"
)

// ModeView sets the mode label in the view.
type ModeView interface{ SetModeLabel(string) }

// ModePresenter receives edit mode transitions and updates the view on tick.
type ModePresenter struct {
	view    ModeView
	mu      sync.Mutex
	latest  editor.EditMode // last reflected mode
	shown   bool
	pending []editor.EditMode
}

func NewModePresenter(view ModeView) *ModePresenter {
	return &ModePresenter{view: view}
}

// OnMode queues a transition from the session listener. Listeners may run
// on worker goroutines.
//
// The latest queued mode will be reflected on the next Tick.
func (p *ModePresenter) OnMode(prev, next editor.EditMode) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.pending = append(p.pending, next)
	p.mu.Unlock()
}

// Tick reflects the most recent queued mode and clears the queue.
func (p *ModePresenter) Tick(now time.Time) {
	if p == nil || p.view == nil {
		return
	}
	if !p.shown {
		p.shown = true
		p.view.SetModeLabel("Mode: " + p.latest.String())
	}
	p.mu.Lock()
	if len(p.pending) == 0 {
		p.mu.Unlock()
		return
	}
	last := p.pending[len(p.pending)-1]
	p.pending = p.pending[:0]
	p.mu.Unlock()
	if last != p.latest {
		p.latest = last
		p.view.SetModeLabel("Mode: " + last.String())
	}
}
