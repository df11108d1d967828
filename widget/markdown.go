package widget

import (
	"fmt"
	"strings"

	goterm "github.com/ahnafcodes/goterm"
	"github.com/ahnafcodes/goterm/basement"
	"github.com/ahnafcodes/goterm/signals"
	"github.com/ahnafcodes/goterm/width"
)

// MarkdownView renders basement-formatted text (headers, bold/italic/
// underline/strike runs, lists, blockquotes, code blocks, horizontal
// rules, named inline colors) into a Buffer. It walks the AST basement
// .ParseAST produces and resolves each run straight to a goterm.Cell via
// Style.Cell, rather than through an intermediate ANSI-string form.
// MarkdownView's Args fill `%v` holes left in Source, generalizing the
// reference's Template(source, args...) — an arg implementing
// signals.Getter is read through GetValue() at render time rather than
// formatted directly, so a hole can be bound to a live signal.
type MarkdownView struct {
	Base
	Source  string
	ScrollY int
	Args    []interface{}

	effect *signals.Effect
}

// NewMarkdownView wraps source text to be parsed and rendered on demand.
// Any %v placeholders are filled positionally from args.
func NewMarkdownView(source string, args ...interface{}) *MarkdownView {
	return &MarkdownView{Source: source, Args: args}
}

// NewReactiveMarkdownView binds the view to one or more signals.Getter
// args: onDirty fires (on the goroutine that mutated the signal) whenever
// any bound value changes, generalizing the reference's signals
// .CreateEffect-wrapped Render into the poll-driven loop's opt-in reactive
// seam (see widget.Label's NewReactiveLabel for the same pattern).
func NewReactiveMarkdownView(source string, onDirty func(), args ...interface{}) *MarkdownView {
	m := &MarkdownView{Source: source, Args: args}
	first := true
	m.effect = signals.CreateEffect(func() {
		for _, a := range args {
			if g, ok := a.(signals.Getter); ok {
				g.GetValue()
			}
		}
		if !first && onDirty != nil {
			onDirty()
		}
		first = false
	})
	return m
}

// Dispose releases the view's effect subscription. Only meaningful for a
// view built with NewReactiveMarkdownView.
func (m *MarkdownView) Dispose() {
	if m.effect != nil {
		m.effect.Dispose()
	}
}

// styledRun is one contiguous span of text sharing a style, the rendering
// unit this view flattens the AST down to.
type styledRun struct {
	text  string
	style basement.Style
}

func (m *MarkdownView) Render(b *goterm.Buffer) {
	r := m.Bounds()
	if r.W <= 0 || r.H <= 0 {
		return
	}
	root := basement.ParseAST(m.Source)
	root.AssignHoleIDs()
	lines := flattenDocument(root, m.Args)

	row := 0
	for i := m.ScrollY; i < len(lines) && row < r.H; i++ {
		col := 0
		for _, run := range lines[i] {
			for _, ch := range run.text {
				cw := width.RuneWidth(ch)
				if col+cw > r.W {
					break
				}
				b.Set(r.X+col, r.Y+row, run.style.Cell(ch))
				col += cw
			}
		}
		row++
	}
}

// holeText formats args[id] for display, reading a signals.Getter through
// GetValue() rather than formatting the Getter value directly.
func holeText(args []interface{}, id int) string {
	if id < 0 || id >= len(args) {
		return "%v"
	}
	v := args[id]
	if g, ok := v.(signals.Getter); ok {
		v = g.GetValue()
	}
	return fmt.Sprintf("%v", v)
}

// flattenDocument turns a basement AST into one []styledRun per screen
// line: one line per header, paragraph, quote or rule, one line per list
// item, multiple lines for a code fence, and a blank line for each
// blank-line placeholder the parser emits.
func flattenDocument(root *basement.Node, args []interface{}) [][]styledRun {
	var lines [][]styledRun
	for _, block := range root.Children {
		switch block.Type {
		case basement.NodeHeader:
			lines = append(lines, flattenInline(block.Children, block.Style, args))
		case basement.NodeBlock, basement.NodeQuote:
			prefix := ""
			if block.Type == basement.NodeQuote {
				prefix = "│ "
			}
			run := flattenInline(block.Children, basement.Style{}, args)
			if prefix != "" {
				run = append([]styledRun{{text: prefix}}, run...)
			}
			lines = append(lines, run)
		case basement.NodeList:
			for _, item := range block.Children {
				run := append([]styledRun{{text: "• "}}, flattenInline(item.Children, basement.Style{}, args)...)
				lines = append(lines, run)
			}
		case basement.NodeCodeBlock:
			lines = append(lines, highlightedLines(block.Content, block.Lang)...)
		case basement.NodeHR:
			lines = append(lines, []styledRun{{text: strings.Repeat("─", 200)}})
		case basement.NodeText:
			lines = append(lines, nil)
		}
	}
	return lines
}

// highlightedLines runs code through Highlight and regroups its flat token
// stream into one []styledRun per source line, splitting any token that
// itself spans a newline.
func highlightedLines(code, lang string) [][]styledRun {
	var lines [][]styledRun
	var cur []styledRun
	for _, span := range Highlight(code, lang) {
		parts := strings.Split(span.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, cur)
				cur = nil
			}
			if part != "" {
				cur = append(cur, styledRun{text: part, style: span.Style})
			}
		}
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// flattenInline walks inline Style/Text/Hole nodes, composing each
// NodeStyle onto the inherited base via basement.Style.Merge the way
// nested basement style tokens compose down an inline run.
func flattenInline(nodes []*basement.Node, base basement.Style, args []interface{}) []styledRun {
	var runs []styledRun
	for _, n := range nodes {
		switch n.Type {
		case basement.NodeText:
			runs = append(runs, styledRun{text: n.Content, style: base})
		case basement.NodeHole:
			runs = append(runs, styledRun{text: holeText(args, n.HoleID), style: base})
		case basement.NodeStyle:
			runs = append(runs, flattenInline(n.Children, base.Merge(n.Style), args)...)
		}
	}
	return runs
}
