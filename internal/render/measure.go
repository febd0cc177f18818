package render

import "strings"

// Layout units are CSS reference pixels. Text extents use a deterministic
// font-metric approximation: real glyph metrics vary per font file, but the
// approximation is stable across runs, which is what scaling and tests need.
const (
	// avgCharFactor approximates average glyph advance as a fraction of
	// the font size for the latin fonts the themes offer.
	avgCharFactor = 0.55

	// boldFactor widens bold runs slightly.
	boldFactor = 1.06

	// lineHeightFactor converts font size to line height.
	lineHeightFactor = 1.45

	// tickWidth and tickGap size one proficiency tick.
	tickWidth  = 14.0
	tickGap    = 4.0
	tickHeight = 8.0

	dividerHeight = 2.0
)

// textWidth estimates the advance width of a single unwrapped run.
func textWidth(s string, style Style) float64 {
	size := style.FontSize
	if size == 0 {
		size = 13
	}
	w := float64(len([]rune(s))) * size * avgCharFactor
	if style.Bold {
		w *= boldFactor
	}
	return w
}

// wrapText greedily wraps words to maxWidth. A single word wider than
// maxWidth is kept whole on its own line, so the measured width of wrapped
// text can exceed maxWidth; that overflow is what pushes a template's design
// width past its wrap width.
func wrapText(s string, style Style, maxWidth float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if textWidth(candidate, style) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

// layout measures node extents bottom-up. maxWidth is the wrap width handed
// down by the parent; the returned width is the natural content width, which
// may exceed maxWidth when an unbreakable run overflows.
func layout(n *Node, maxWidth float64) {
	inner := maxWidth - 2*n.Style.PadX
	if inner < 0 {
		inner = 0
	}

	switch n.Kind {
	case KindText, KindHeading, KindLink:
		n.lines = wrapText(displayText(n), n.Style, inner)
		var widest float64
		for _, line := range n.lines {
			if w := textWidth(line, n.Style); w > widest {
				widest = w
			}
		}
		size := n.Style.FontSize
		if size == 0 {
			size = 13
		}
		n.Width = widest + 2*n.Style.PadX
		n.Height = float64(len(n.lines))*size*lineHeightFactor + 2*n.Style.PadY

	case KindDivider:
		n.Width = 0 // expands to container
		n.Height = dividerHeight + 2*n.Style.PadY

	case KindTickBar:
		n.Width = float64(n.MaxTicks)*tickWidth + float64(n.MaxTicks-1)*tickGap
		n.Height = tickHeight + 2*n.Style.PadY

	case KindRow:
		var width, tallest float64
		share := inner
		if len(n.Children) > 0 {
			share = (inner - n.Style.Gap*float64(len(n.Children)-1)) / float64(len(n.Children))
		}
		for i, c := range n.Children {
			layout(c, share)
			width += c.Width
			if i > 0 {
				width += n.Style.Gap
			}
			if c.Height > tallest {
				tallest = c.Height
			}
		}
		n.Width = width + 2*n.Style.PadX
		n.Height = tallest + 2*n.Style.PadY

	case KindColumn:
		var widest, height float64
		for i, c := range n.Children {
			layout(c, inner)
			if c.Width > widest {
				widest = c.Width
			}
			height += c.Height
			if i > 0 {
				height += n.Style.Gap
			}
		}
		n.Width = widest + 2*n.Style.PadX
		n.Height = height + 2*n.Style.PadY
	}
}

func displayText(n *Node) string {
	if n.Style.Uppercase {
		return strings.ToUpper(n.Text)
	}
	return n.Text
}
