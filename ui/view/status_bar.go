package view

import (
	"fmt"

	"github.com/soocke/photo-editor-go/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar shows the edit mode, the brightness level and the status message.
type StatusBar interface {
	SetMode(text string)
	SetBrightness(percent int)
	SetStatus(text string)
}

type statusBar struct {
	modeLbl       *TLabelWidget
	brightnessLbl *LabelWidget
	statusLbl     *LabelWidget
}

// NewStatusBar creates the labels in a grid row. If parent is nil, labels
// are positioned relative to the App root.
func NewStatusBar(parent *FrameWidget, row int) StatusBar {
	s := &statusBar{
		modeLbl:       TLabel(Width(18), Anchor("w"), Style(theme.StyleModeLabel)),
		brightnessLbl: Label(Width(16), Anchor("w")),
		statusLbl:     Label(Width(60), Anchor("w")),
	}
	for i, l := range []Widget{s.modeLbl, s.brightnessLbl, s.statusLbl} {
		if parent != nil {
			Grid(l, In(parent), Row(row), Column(i), Sticky("w"), Padx("0.2m"))
		} else {
			Grid(l, Row(row), Column(i), Sticky("w"), Padx("0.2m"))
		}
	}
	s.modeLbl.Configure(Txt("Mode: normal"))
	s.brightnessLbl.Configure(Txt("Brightness: 100%"))
	return s
}

func (s *statusBar) SetMode(text string) {
	if s == nil || s.modeLbl == nil {
		return
	}
	s.modeLbl.Configure(Txt(text))
}

func (s *statusBar) SetBrightness(percent int) {
	if s == nil || s.brightnessLbl == nil {
		return
	}
	s.brightnessLbl.Configure(Txt(fmt.Sprintf("Brightness: %d%%", percent)))
}

func (s *statusBar) SetStatus(text string) {
	if s == nil || s.statusLbl == nil {
		return
	}
	s.statusLbl.Configure(Txt(text))
}
