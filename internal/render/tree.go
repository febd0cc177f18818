// Package render turns a resume document and theme into a laid-out visual
// tree. Rendering is a pure function of its inputs: the host calls Render
// again whenever the document, theme, template or available width changes.
// Templates lay out at their natural design width; the engine records a
// uniform top-left-anchored scale factor for the host to apply when a
// preview width is supplied.
package render

import "github.com/jonathan/resume-studio/internal/model"

// Kind discriminates visual tree nodes.
type Kind int

// The node kinds a template may emit.
const (
	// KindColumn stacks children vertically.
	KindColumn Kind = iota
	// KindRow places children side by side.
	KindRow
	// KindText is a wrapped text run.
	KindText
	// KindHeading is a section title. Templates only emit headings for
	// sections that have content.
	KindHeading
	// KindDivider is a horizontal rule that expands to its container.
	KindDivider
	// KindTickBar shows a discrete proficiency level.
	KindTickBar
	// KindLink is a text run carrying a hyperlink.
	KindLink
)

// Style carries the visual attributes of a node. Zero values inherit host
// defaults at realization time.
type Style struct {
	Color      string
	Background string
	FontFamily string
	FontSize   float64
	Bold       bool
	Italic     bool
	Uppercase  bool
	PadX       float64
	PadY       float64
	Gap        float64
}

// Node is one element of the visual tree. Width and Height are the measured
// natural extents in layout units, filled in by the engine's layout pass.
type Node struct {
	Kind     Kind
	Text     string
	Href     string
	Style    Style
	Children []*Node

	// TickBar state: Ticks filled out of MaxTicks.
	Ticks    int
	MaxTicks int

	Width  float64
	Height float64

	// lines holds the wrapped text produced during layout, kept so
	// realizers do not re-wrap.
	lines []string
}

// Lines returns the wrapped text runs computed during layout.
func (n *Node) Lines() []string { return n.lines }

// Tree is the laid-out result of rendering one document.
type Tree struct {
	Root     *Node
	Template model.TemplateID

	// DesignWidth is the natural unscaled width measured from the fully
	// laid-out content. It is re-measured on every render since content
	// changes reflow text.
	DesignWidth float64

	// AvailableWidth echoes the render input; zero means unscaled output
	// (the export path).
	AvailableWidth float64

	// Scale is AvailableWidth/DesignWidth, or exactly 1 when no available
	// width was supplied. Hosts apply it top-left anchored.
	Scale float64
}

// Walk visits every node depth-first. Visiting order is deterministic.
func (t *Tree) Walk(fn func(*Node)) {
	var visit func(n *Node)
	visit = func(n *Node) {
		fn(n)
		for _, c := range n.Children {
			visit(c)
		}
	}
	if t.Root != nil {
		visit(t.Root)
	}
}

// HasHeading reports whether any heading node carries the given text.
func (t *Tree) HasHeading(text string) bool {
	found := false
	t.Walk(func(n *Node) {
		if n.Kind == KindHeading && n.Text == text {
			found = true
		}
	})
	return found
}

func column(style Style, children ...*Node) *Node {
	return &Node{Kind: KindColumn, Style: style, Children: children}
}

func row(style Style, children ...*Node) *Node {
	return &Node{Kind: KindRow, Style: style, Children: children}
}

func text(s string, style Style) *Node {
	return &Node{Kind: KindText, Text: s, Style: style}
}

func heading(s string, style Style) *Node {
	return &Node{Kind: KindHeading, Text: s, Style: style}
}

func link(label, href string, style Style) *Node {
	return &Node{Kind: KindLink, Text: label, Href: href, Style: style}
}

func divider(color string) *Node {
	return &Node{Kind: KindDivider, Style: Style{Color: color}}
}

func tickBar(ticks, maxTicks int, color string) *Node {
	return &Node{Kind: KindTickBar, Ticks: ticks, MaxTicks: maxTicks, Style: Style{Color: color}}
}
