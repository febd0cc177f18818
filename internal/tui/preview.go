package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jonathan/resume-studio/internal/render"
)

// Preview realizes a laid-out tree as styled terminal text. It is a lossy
// projection: the tree's layout units become character columns and row nodes
// are joined horizontally, so proportions are approximate but the reading
// order and theme colors survive.
func Preview(tree *render.Tree, width int) string {
	if tree == nil || tree.Root == nil {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	return realizeNode(tree.Root, width)
}

func realizeNode(n *render.Node, width int) string {
	switch n.Kind {
	case render.KindRow:
		parts := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			parts = append(parts, realizeNode(c, width/max(len(n.Children), 1)))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	case render.KindColumn:
		parts := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			if s := realizeNode(c, width); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n")
	case render.KindHeading:
		st := lipgloss.NewStyle().Bold(true)
		if n.Style.Color != "" {
			st = st.Foreground(lipgloss.Color(n.Style.Color))
		}
		label := n.Text
		if n.Style.Uppercase {
			label = strings.ToUpper(label)
		}
		return st.Render(label)
	case render.KindDivider:
		st := lipgloss.NewStyle()
		if n.Style.Color != "" {
			st = st.Foreground(lipgloss.Color(n.Style.Color))
		}
		return st.Render(strings.Repeat("─", max(width, 1)))
	case render.KindTickBar:
		return realizeTickBar(n)
	case render.KindText, render.KindLink:
		return realizeText(n)
	}
	return ""
}

func realizeText(n *render.Node) string {
	st := lipgloss.NewStyle()
	if n.Style.Color != "" {
		st = st.Foreground(lipgloss.Color(n.Style.Color))
	}
	if n.Style.Bold {
		st = st.Bold(true)
	}
	if n.Style.Italic {
		st = st.Italic(true)
	}
	if n.Kind == render.KindLink {
		st = st.Underline(true)
	}

	lines := n.Lines()
	if len(lines) == 0 && n.Text != "" {
		lines = []string{n.Text}
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if n.Style.Uppercase {
			line = strings.ToUpper(line)
		}
		out = append(out, st.Render(line))
	}
	return strings.Join(out, "\n")
}

func realizeTickBar(n *render.Node) string {
	st := lipgloss.NewStyle()
	if n.Style.Color != "" {
		st = st.Foreground(lipgloss.Color(n.Style.Color))
	}
	filled := strings.Repeat("●", n.Ticks)
	empty := strings.Repeat("○", n.MaxTicks-n.Ticks)
	return st.Render(filled) + styleDim.Render(empty)
}
