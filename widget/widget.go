// Package widget defines the capability contract every screen element in
// this module implements (§4.5), plus the minimal flex layout primitive
// core focus/hit-testing code depends on (§4.5, §9).
//
// Widgets are values, not a class hierarchy: a container owns its children
// outright, and every cross-reference the framework needs (focus pointer,
// hovered pointer, active tooltip, dialog-stack entries) is a borrowed,
// non-owning handle — never a cyclic owning edge (§9).
package widget

import (
	goterm "github.com/ahnafcodes/goterm"
	"github.com/ahnafcodes/goterm/vtparser"
)

// ScreenSize classifies the terminal's width for responsive visibility.
type ScreenSize int

const (
	Small ScreenSize = iota
	Medium
	Large
)

// ScreenHeight classifies the terminal's height for responsive visibility.
type ScreenHeight int

const (
	ShortHeight ScreenHeight = iota
	MediumHeight
	TallHeight
)

// Widget is the capability set every screen element must implement
// (§4.5). render paints within the buffer's current clip using the
// widget's own geometry; on_event reports whether it consumed the event;
// hit_test is overridable so hit-transparent overlays can decline to claim
// a point inside their bounding box.
type Widget interface {
	Render(b *goterm.Buffer)
	OnEvent(e vtparser.Event) bool
	SetFocus(focused bool)
	HasFocus() bool
	HitTest(x, y int) bool

	Bounds() goterm.Rect
	SetBounds(r goterm.Rect)
	Focusable() bool
	TabStop() bool
	Visible() bool
	UpdateResponsive(w ScreenSize, h ScreenHeight)
	Tooltip() *Tooltip
}

// Container is a Widget that owns and arranges children.
type Container interface {
	Widget
	Children() []Widget
	Layout()
	HasFocusWithin() bool
}

// Base is an embeddable implementation of the non-rendering parts of the
// Widget contract: geometry, sizing request, visibility, and focus/hover
// state. It generalizes the geometry/sizing fields the reference
// implementation's LayoutNode conflated with layout bookkeeping
// (computedX/Y/W/H, Width/Height Size) by splitting the widget-contract
// half out from the layout half (widget.Flex carries the rest).
type Base struct {
	rect    goterm.Rect
	FixedW  int // 0 = flexible
	FixedH  int

	focusableFlag bool
	tabStopFlag   bool

	focused bool
	hovered bool

	hiddenSmall  bool
	hiddenMedium bool
	hiddenLarge  bool

	lastClass responsiveState

	tip *Tooltip
}

// NewBase returns a Base that is visible at every responsive class and not
// focusable by default.
func NewBase() Base {
	return Base{}
}

// Bounds returns the widget's current geometry.
func (b *Base) Bounds() goterm.Rect { return b.rect }

// SetBounds assigns geometry, clamping negative dimensions to zero (§4.5:
// layout must tolerate zero/negative space without panic).
func (b *Base) SetBounds(r goterm.Rect) {
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	b.rect = r
}

// SetFocusable marks whether this widget can ever hold focus.
func (b *Base) SetFocusable(focusable, tabStop bool) {
	b.focusableFlag = focusable
	b.tabStopFlag = tabStop
}

func (b *Base) Focusable() bool { return b.focusableFlag }
func (b *Base) TabStop() bool   { return b.tabStopFlag }

func (b *Base) SetFocus(focused bool) { b.focused = focused }
func (b *Base) HasFocus() bool        { return b.focused }

func (b *Base) SetHovered(hovered bool) { b.hovered = hovered }
func (b *Base) Hovered() bool           { return b.hovered }

// HitTest defaults to the widget's bounding box.
func (b *Base) HitTest(x, y int) bool {
	return b.rect.Contains(x, y)
}

// SetHiddenFor hides the widget when the terminal is classified with the
// given screen-size (width) class; the height class is not considered.
func (b *Base) SetHiddenFor(w ScreenSize, hide bool) {
	switch w {
	case Small:
		b.hiddenSmall = hide
	case Medium:
		b.hiddenMedium = hide
	case Large:
		b.hiddenLarge = hide
	}
}

// responsiveState records the last screen classes passed to
// UpdateResponsive, so Visible() can answer without being re-told.
type responsiveState struct {
	w ScreenSize
	h ScreenHeight
}

// Visible reports whether the widget participates in layout/hit-test/tab
// cycling: it must have positive width and height and not be hidden for
// the last-seen responsive class.
func (b *Base) Visible() bool {
	if b.rect.W <= 0 || b.rect.H <= 0 {
		return false
	}
	switch b.lastClass.w {
	case Small:
		return !b.hiddenSmall
	case Medium:
		return !b.hiddenMedium
	default:
		return !b.hiddenLarge
	}
}

// lastClass remembers the most recent UpdateResponsive call.
func (b *Base) UpdateResponsive(w ScreenSize, h ScreenHeight) {
	b.lastClass = responsiveState{w: w, h: h}
}

func (b *Base) SetTooltip(t *Tooltip) { b.tip = t }
func (b *Base) Tooltip() *Tooltip     { return b.tip }
