package basement

import goterm "github.com/ahnafcodes/goterm"

// ansiColor maps GetColorCode's fixed 16-color escape strings back to
// goterm.Color values, letting a Style's raw ANSI color field resolve to a
// concrete Cell color.
var ansiColor = map[string]goterm.Color{
	"\x1b[30m": goterm.RGB(0, 0, 0),
	"\x1b[31m": goterm.RGB(205, 49, 49),
	"\x1b[32m": goterm.RGB(13, 188, 121),
	"\x1b[33m": goterm.RGB(229, 229, 16),
	"\x1b[34m": goterm.RGB(36, 114, 200),
	"\x1b[35m": goterm.RGB(188, 63, 188),
	"\x1b[36m": goterm.RGB(17, 168, 205),
	"\x1b[37m": goterm.RGB(229, 229, 229),
	"\x1b[90m": goterm.RGB(102, 102, 102),
}

// Cell resolves ch plus this Style into a goterm.Cell: Color/BgColor
// resolve through ansiColor (an unset or unrecognized color falls back to
// goterm.DefaultColor), Reverse swaps fg/bg, and Dim folds onto Bold since
// Cell has no separate dim attribute.
func (s Style) Cell(ch rune) goterm.Cell {
	fg := goterm.DefaultColor
	if c, ok := ansiColor[s.Color]; ok {
		fg = c
	}
	bg := goterm.DefaultColor
	if c, ok := ansiColor[s.BgColor]; ok {
		bg = c
	}
	if s.Reverse {
		fg, bg = bg, fg
	}
	return goterm.Cell{
		Content:   string(ch),
		Fg:        fg,
		Bg:        bg,
		Bold:      s.Bold || s.Dim,
		Italic:    s.Italic,
		Underline: s.Underline,
	}
}
