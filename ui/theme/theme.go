package theme

// Centralized theming for the photo editor. Provides palette values and
// InitStyles to activate a base theme and configure the toolbar styles.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PaletteSnapshot holds resolved colors for one mode.
type PaletteSnapshot struct {
	AppBg   string
	Surface string
	Primary string
	Danger  string
	Accent  string
	Text    string
}

var (
	light = PaletteSnapshot{AppBg: "#f7f9fb", Surface: "#ffffff", Primary: "#2563eb", Danger: "#dc2626", Accent: "#10b981", Text: "#1e293b"}
	dark  = PaletteSnapshot{AppBg: "#0f172a", Surface: "#1e293b", Primary: "#3b82f6", Danger: "#ef4444", Accent: "#10b981", Text: "#f1f5f9"}
)

// Style names used with Style(...).
const (
	StyleActionButton = "action.TButton" // confirms an edit
	StyleCancelButton = "cancel.TButton" // abandons an edit
	StyleModeLabel    = "mode.TLabel"
)

// PaletteFor returns the colors for the given mode.
func PaletteFor(darkMode bool) PaletteSnapshot {
	if darkMode {
		return dark
	}
	return light
}

// InitStyles applies the base theme and the editor styles.
func InitStyles(darkMode bool) {
	p := PaletteFor(darkMode)
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(p.AppBg))

	StyleConfigure(StyleActionButton,
		Background(p.Primary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleCancelButton,
		Background(p.Danger),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleModeLabel,
		Foreground("white"),
		Background(p.Accent),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
}
