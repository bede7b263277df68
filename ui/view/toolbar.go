package view

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/photo-editor-go/ui/presenter"
	"github.com/soocke/photo-editor-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers are invoked on user actions.
type Handlers struct {
	Open             func(ref, fileName string)
	Screenshot       func()
	StartCrop        func()
	FinishCrop       func()
	CancelCrop       func()
	Revert           func()
	StartBrightness  func()
	Brighter         func()
	Darker           func()
	ApplyBrightness  func()
	CancelBrightness func()
	StartFilter      func()
	PreviewFilter    func(name string)
	ApplyFilter      func(name string)
	CancelFilter     func()
	Enhance          func()
	Download         func(name string)
	Exit             func()
}

// Toolbar owns the editing buttons, grouped so that whole groups can be
// enabled or disabled as the edit mode changes.
type Toolbar interface {
	Build(parent *FrameWidget, h Handlers) // constructs widgets inside parent
	SetControls(c presenter.Controls)
}

type toolbar struct {
	logger  *slog.Logger
	filters []string

	openPath     *TextWidget
	downloadName *TextWidget
	filterSelect *TComboboxWidget

	open       []configurable
	edit       []configurable
	revert     []configurable
	crop       []configurable
	finishCrop []configurable
	brightness []configurable
	filter     []configurable
}

// NewToolbar creates the toolbar offering filters in its dropdown.
func NewToolbar(filters []string, logger *slog.Logger) Toolbar {
	if len(filters) == 0 {
		filters = []string{"<none>"}
	}
	return &toolbar{logger: logger, filters: filters}
}

// configurable is any widget that accepts Configure.
type configurable interface{ Configure(options ...Opt) *Window }

func (v *toolbar) Build(parent *FrameWidget, h Handlers) {
	row := 0
	styled := func(group *[]configurable, col int, text, style string, fn func()) {
		b := TButton(Txt(text), Style(style), Command(fn))
		Grid(b, In(parent), Row(row), Column(col), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		*group = append(*group, b)
	}
	button := func(group *[]configurable, col int, text string, fn func()) {
		b := Button(Txt(text), Command(fn))
		Grid(b, In(parent), Row(row), Column(col), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		*group = append(*group, b)
	}
	field := func(value string) *TextWidget {
		w := Text(Height(1), Width(24))
		Grid(w, In(parent), Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		return w
	}

	// Open
	v.openPath = field("")
	v.open = append(v.open, v.openPath)
	row++
	button(&v.open, 0, "Open", func() { h.Open(v.text(v.openPath), "") })
	button(&v.open, 1, "Open Screenshot", h.Screenshot)
	row++

	// Normal mode tools
	button(&v.edit, 0, "Crop", h.StartCrop)
	button(&v.edit, 1, "Brightness", h.StartBrightness)
	row++
	button(&v.edit, 0, "Filters", h.StartFilter)
	button(&v.edit, 1, "AI Enhance", h.Enhance)
	row++
	v.downloadName = field("")
	v.edit = append(v.edit, v.downloadName)
	row++
	button(&v.edit, 0, "Download", func() { h.Download(v.text(v.downloadName)) })
	button(&v.revert, 1, "Revert", h.Revert)
	row++

	// Crop
	styled(&v.finishCrop, 0, "Finish Crop", theme.StyleActionButton, h.FinishCrop)
	styled(&v.crop, 1, "Cancel Crop", theme.StyleCancelButton, h.CancelCrop)
	row++

	// Brightness
	button(&v.brightness, 0, "-", h.Darker)
	button(&v.brightness, 1, "+", h.Brighter)
	row++
	styled(&v.brightness, 0, "Apply", theme.StyleActionButton, h.ApplyBrightness)
	styled(&v.brightness, 1, "Cancel", theme.StyleCancelButton, h.CancelBrightness)
	row++

	// Filters
	v.filterSelect = TCombobox(Values(v.filters), Width(22))
	Grid(v.filterSelect, In(parent), Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	v.filterSelect.Current(0)
	v.filter = append(v.filter, v.filterSelect)
	row++
	button(&v.filter, 0, "Preview", func() {
		if name, ok := v.selectedFilter(); ok {
			h.PreviewFilter(name)
		}
	})
	button(&v.filter, 1, "Apply Filter", func() {
		if name, ok := v.selectedFilter(); ok {
			h.ApplyFilter(name)
		}
	})
	row++
	styled(&v.filter, 0, "Cancel Filter", theme.StyleCancelButton, h.CancelFilter)
	row++

	exitBtn := Button(Txt("Exit"), Command(h.Exit))
	Grid(exitBtn, In(parent), Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.2m"), Pady("0.4m"))

	v.SetControls(presenter.Controls{})
}

func (v *toolbar) SetControls(c presenter.Controls) {
	setEnabled(v.open, !c.Busy)
	setEnabled(v.edit, c.Edit)
	setEnabled(v.revert, c.Revert)
	setEnabled(v.crop, c.Crop)
	setEnabled(v.finishCrop, c.FinishCrop)
	setEnabled(v.brightness, c.Brightness)
	setEnabled(v.filter, c.Filter)
}

func setEnabled(group []configurable, enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range group {
		if w != nil {
			w.Configure(State(state))
		}
	}
}

func (v *toolbar) selectedFilter() (string, bool) {
	if v.filterSelect == nil {
		return "", false
	}
	idxStr := v.filterSelect.Current(nil)
	idx, err := strconv.Atoi(idxStr)
	if err != nil || idx < 0 || idx >= len(v.filters) {
		if v.logger != nil {
			v.logger.Error("filter selection parse error", "index", idxStr, "error", err)
		}
		return "", false
	}
	return v.filters[idx], true
}

func (v *toolbar) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.TrimSpace(strings.Join(parts, ""))
}
