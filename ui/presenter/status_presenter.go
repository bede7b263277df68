package presenter

import (
	"time"

	"github.com/soocke/photo-editor-go/ui/model"
)

// StatusView displays the status message.
type StatusView interface {
	SetStatus(text string)
}

// StatusPresenter pushes the ephemeral status message from the model to the view.
type StatusPresenter struct {
	status *model.StatusModel
	view   StatusView
}

// NewStatusPresenter returns a new StatusPresenter.
func NewStatusPresenter(status *model.StatusModel, view StatusView) *StatusPresenter {
	return &StatusPresenter{status: status, view: view}
}

// Post is an editor.StatusSink.
func (p *StatusPresenter) Post(msg string) {
	if p == nil {
		return
	}
	p.status.Set(msg)
}

// Tick advances the model and updates the view when the text changed.
func (p *StatusPresenter) Tick(now time.Time) {
	if p == nil || p.status == nil || p.view == nil {
		return
	}
	if p.status.OnTick(now) {
		p.view.SetStatus(p.status.Text())
	}
}
