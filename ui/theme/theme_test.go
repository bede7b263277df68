package theme

import "testing"

func TestPaletteFor(t *testing.T) {
	var light, dark PaletteSnapshot = PaletteFor(false), PaletteFor(true)
	if light == dark {
		t.Fatalf("light and dark palettes must differ")
	}
	if dark.AppBg != "#0f172a" || light.AppBg != "#f7f9fb" {
		t.Fatalf("unexpected backgrounds: light=%q dark=%q", light.AppBg, dark.AppBg)
	}
}
