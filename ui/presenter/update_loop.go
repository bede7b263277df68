package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Editor   *EditorPresenter
	Mode     *ModePresenter
	Status   *StatusPresenter
	Schedule func()
}

func NewLoop(ed *EditorPresenter, mode *ModePresenter, status *StatusPresenter, schedule func()) *Loop {
	return &Loop{Editor: ed, Mode: mode, Status: status, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Mode != nil {
		l.Mode.Tick(now)
	}
	if l.Editor != nil {
		l.Editor.Tick(now)
	}
	if l.Status != nil {
		l.Status.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
