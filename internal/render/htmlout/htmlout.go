// Package htmlout realizes a rendered visual tree as a standalone HTML
// document suitable for headless-browser printing. Screen scaling is never
// applied here; the export path always prints at natural size.
package htmlout

import (
	"fmt"
	"html"
	"strings"

	"github.com/jonathan/resume-studio/internal/render"
)

// Document realizes the tree as a complete HTML page.
func Document(tree *render.Tree) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<style>\n")
	b.WriteString("@page { size: A4; margin: 0; }\n")
	b.WriteString("body { margin: 0; -webkit-print-color-adjust: exact; print-color-adjust: exact; }\n")
	b.WriteString(fmt.Sprintf(".resume { width: %.2fpx; }\n", tree.DesignWidth))
	b.WriteString(".tick { display: inline-block; width: 14px; height: 8px; margin-right: 4px; border-radius: 2px; }\n")
	b.WriteString("a { text-decoration: none; }\n")
	b.WriteString("</style>\n</head>\n<body>\n<div class=\"resume\">\n")
	writeNode(&b, tree.Root)
	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}

func writeNode(b *strings.Builder, n *render.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case render.KindColumn:
		fmt.Fprintf(b, "<div style=\"%s\">", styleAttr(n, "display:flex;flex-direction:column;"))
		for _, c := range n.Children {
			writeNode(b, c)
		}
		b.WriteString("</div>\n")

	case render.KindRow:
		fmt.Fprintf(b, "<div style=\"%s\">", styleAttr(n, "display:flex;flex-direction:row;align-items:flex-start;"))
		for _, c := range n.Children {
			writeNode(b, c)
		}
		b.WriteString("</div>\n")

	case render.KindText:
		fmt.Fprintf(b, "<p style=\"margin:0;%s\">%s</p>\n", styleAttr(n, ""), escapedText(n))

	case render.KindHeading:
		fmt.Fprintf(b, "<h2 style=\"margin:0;%s\">%s</h2>\n", styleAttr(n, ""), escapedText(n))

	case render.KindLink:
		fmt.Fprintf(b, "<a href=\"%s\" style=\"%s\">%s</a>\n",
			html.EscapeString(n.Href), styleAttr(n, ""), escapedText(n))

	case render.KindDivider:
		fmt.Fprintf(b, "<div style=\"height:2px;background:%s;\"></div>\n", html.EscapeString(n.Style.Color))

	case render.KindTickBar:
		b.WriteString("<div>")
		for i := 0; i < n.MaxTicks; i++ {
			color := n.Style.Color
			if i >= n.Ticks {
				color = "#e0e0e0"
			}
			fmt.Fprintf(b, "<span class=\"tick\" style=\"background:%s;\"></span>", html.EscapeString(color))
		}
		b.WriteString("</div>\n")
	}
}

func escapedText(n *render.Node) string {
	// Wrapped lines were computed during layout; joining with <br> keeps
	// print output identical to the measured layout.
	lines := n.Lines()
	escaped := make([]string, len(lines))
	for i, line := range lines {
		escaped[i] = html.EscapeString(line)
	}
	return strings.Join(escaped, "<br>")
}

func styleAttr(n *render.Node, extra string) string {
	var parts []string
	if extra != "" {
		parts = append(parts, extra)
	}
	s := n.Style
	if s.Color != "" {
		parts = append(parts, "color:"+html.EscapeString(s.Color)+";")
	}
	if s.Background != "" {
		parts = append(parts, "background:"+html.EscapeString(s.Background)+";")
	}
	if s.FontFamily != "" {
		parts = append(parts, fmt.Sprintf("font-family:'%s',sans-serif;", html.EscapeString(s.FontFamily)))
	}
	if s.FontSize > 0 {
		parts = append(parts, fmt.Sprintf("font-size:%.1fpx;", s.FontSize))
	}
	if s.Bold {
		parts = append(parts, "font-weight:700;")
	}
	if s.Italic {
		parts = append(parts, "font-style:italic;")
	}
	if s.PadX > 0 || s.PadY > 0 {
		parts = append(parts, fmt.Sprintf("padding:%.1fpx %.1fpx;", s.PadY, s.PadX))
	}
	if s.Gap > 0 {
		parts = append(parts, fmt.Sprintf("gap:%.1fpx;", s.Gap))
	}
	return strings.Join(parts, "")
}
