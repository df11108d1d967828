// Package theme holds the single process-wide record of named colors
// every widget reads but never mutates (§3). Swap is atomic because the
// framework is single-threaded (§5): SetTheme simply replaces the value.
package theme

import (
	"math"

	goterm "github.com/ahnafcodes/goterm"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme is a passive record of named colors. A widget that wants to shade
// or tint one of these (hover highlight, disabled state) should derive the
// variant with Blend rather than hand-picking an RGB triple.
type Theme struct {
	Background goterm.Color
	Foreground goterm.Color

	Panel  goterm.Color
	Border goterm.Color

	BorderFocus goterm.Color
	InputBg     goterm.Color
	InputFg     goterm.Color

	Selection goterm.Color
	Hover     goterm.Color

	Primary   goterm.Color
	Secondary goterm.Color
	Success   goterm.Color
	Warning   goterm.Color
	Error     goterm.Color

	ScrollbarTrack goterm.Color
	ScrollbarThumb goterm.Color

	TableHeaderBg goterm.Color
	TableHeaderFg goterm.Color

	MenubarBg goterm.Color
	MenubarFg goterm.Color
}

// current is the active process-wide theme.
var current = Dark()

// Current returns the active theme.
func Current() Theme { return current }

// SetTheme atomically replaces the active theme, confirmed as a runtime
// (not just startup) operation by the reference implementation's
// Theme::set_theme(Theme::Dark()|Theme::Light()) call.
func SetTheme(t Theme) { current = t }

// Dark is the framework's default dark preset.
func Dark() Theme {
	return Theme{
		Background: goterm.RGB(18, 18, 20),
		Foreground: goterm.RGB(220, 220, 220),

		Panel:  goterm.RGB(28, 28, 32),
		Border: goterm.RGB(70, 70, 78),

		BorderFocus: goterm.RGB(90, 140, 230),
		InputBg:     goterm.RGB(32, 32, 36),
		InputFg:     goterm.RGB(230, 230, 230),

		Selection: goterm.RGB(55, 80, 120),
		Hover:     goterm.RGB(45, 45, 52),

		Primary:   goterm.RGB(90, 140, 230),
		Secondary: goterm.RGB(150, 120, 220),
		Success:   goterm.RGB(90, 200, 120),
		Warning:   goterm.RGB(220, 180, 60),
		Error:     goterm.RGB(220, 90, 90),

		ScrollbarTrack: goterm.RGB(35, 35, 40),
		ScrollbarThumb: goterm.RGB(90, 90, 100),

		TableHeaderBg: goterm.RGB(40, 40, 46),
		TableHeaderFg: goterm.RGB(200, 200, 210),

		MenubarBg: goterm.RGB(24, 24, 28),
		MenubarFg: goterm.RGB(210, 210, 210),
	}
}

// Light is the framework's light preset, derived from Dark by inverting
// luminance through go-colorful's Lab space rather than flipping RGB
// bytes, so hue relationships survive the swap.
func Light() Theme {
	d := Dark()
	return Theme{
		Background: invert(d.Background),
		Foreground: invert(d.Foreground),

		Panel:  invert(d.Panel),
		Border: invert(d.Border),

		BorderFocus: d.BorderFocus,
		InputBg:     invert(d.InputBg),
		InputFg:     invert(d.InputFg),

		Selection: goterm.RGB(190, 210, 240),
		Hover:     invert(d.Hover),

		Primary:   d.Primary,
		Secondary: d.Secondary,
		Success:   d.Success,
		Warning:   d.Warning,
		Error:     d.Error,

		ScrollbarTrack: invert(d.ScrollbarTrack),
		ScrollbarThumb: invert(d.ScrollbarThumb),

		TableHeaderBg: invert(d.TableHeaderBg),
		TableHeaderFg: invert(d.TableHeaderFg),

		MenubarBg: invert(d.MenubarBg),
		MenubarFg: invert(d.MenubarFg),
	}
}

// invert flips a color's Lab lightness, keeping its hue/chroma, using
// go-colorful's perceptual Lab conversion rather than a naive 255-x
// RGB inversion (which would shift hue on non-gray colors).
func invert(c goterm.Color) goterm.Color {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	l, a, bb := cf.Lab()
	out := colorful.Lab(1-l, a, bb).Clamped()
	return rgb255(out)
}

// rgb255 converts a colorful.Color (0..1 floats) to a goterm.Color,
// rounding rather than truncating so round-tripping an already-8-bit
// color is lossless.
func rgb255(c colorful.Color) goterm.Color {
	return goterm.RGB(
		uint8(math.Round(c.R*255)),
		uint8(math.Round(c.G*255)),
		uint8(math.Round(c.B*255)),
	)
}

// Blend linearly interpolates between two theme colors in Lab space at
// t in [0,1], grounding hover/selection tints in real colorimetry instead
// of a componentwise RGB lerp (§2 domain stack: go-colorful wiring).
func Blend(a, b goterm.Color, t float64) goterm.Color {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	blended := ca.BlendLab(cb, t).Clamped()
	return rgb255(blended)
}
