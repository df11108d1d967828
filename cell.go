// Package goterm is an immediate-mode-styled, retained-widget terminal UI
// core: input decoding, layout, diff-based rendering, focus management and
// overlay (dialog/tooltip) handling live here. Concrete widgets (buttons,
// tables, charts, ...) are external consumers of the widget contract in
// package widget.
package goterm

import "math"

// Color is an RGB triple with a default flag. When IsDefault is true the
// cell uses the terminal's own default foreground/background (SGR 39/49);
// the RGB triple is then ignored except that two default colors compare
// equal.
type Color struct {
	R, G, B   uint8
	IsDefault bool
}

// DefaultColor is the terminal's ambient foreground/background.
var DefaultColor = Color{IsDefault: true}

// RGB constructs a concrete truecolor value.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Equal reports componentwise equality, treating all default colors as
// equal to each other regardless of their (ignored) RGB payload.
func (c Color) Equal(o Color) bool {
	if c.IsDefault || o.IsDefault {
		return c.IsDefault == o.IsDefault
	}
	return c.R == o.R && c.G == o.G && c.B == o.B
}

// Resolve returns c, or fallback when c is the terminal default.
func (c Color) Resolve(fallback Color) Color {
	if c.IsDefault {
		return fallback
	}
	return c
}

// srgbToLinear applies the sRGB electro-optical transfer function to a
// single normalized channel value.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// relativeLuminance computes the ITU-R BT.709 relative luminance of c.
func relativeLuminance(c Color) float64 {
	r := srgbToLinear(float64(c.R) / 255)
	g := srgbToLinear(float64(c.G) / 255)
	b := srgbToLinear(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastColor picks black or white, whichever reads better against bg.
//
// The 0.4 luminance threshold (not the WCAG 0.179) is deliberate: it is
// carried over from the reference implementation's contrast heuristic and
// favors white text more often than a WCAG-conformant choice would. Callers
// that need WCAG contrast must compute it themselves.
func ContrastColor(bg Color) Color {
	if relativeLuminance(bg) > 0.4 {
		return RGB(0, 0, 0)
	}
	return RGB(255, 255, 255)
}

// Cell is the unit of screen state: one display grapheme plus style.
//
// Content is either a single UTF-8 grapheme of display width 1 or 2, or the
// empty string denoting the continuation half of a preceding width-2 cell.
type Cell struct {
	Content   string
	Fg, Bg    Color
	Bold      bool
	Italic    bool
	Underline bool
}

// blankCell is the cell Get returns out of bounds: a space on default colors.
var blankCell = Cell{Content: " ", Fg: DefaultColor, Bg: DefaultColor}

// Rect is an integer-cell axis-aligned rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (px,py) lies in the half-open interval
// [X,X+W) x [Y,Y+H).
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Intersect returns the overlap of r and o, clamped to a zero-size rect
// (at r's or o's corner, whichever is larger) when they are disjoint.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
