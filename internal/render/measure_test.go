package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapText_KeepsWordsWhole(t *testing.T) {
	style := Style{FontSize: 13}
	lines := wrapText("alpha beta gamma delta epsilon", style, 80)

	require.NotEmpty(t, lines)
	assert.Greater(t, len(lines), 1, "text wider than the wrap width must wrap")
	joined := ""
	for _, line := range lines {
		assert.LessOrEqual(t, textWidth(line, style), 80.0)
		joined += line + " "
	}
	assert.Equal(t, "alpha beta gamma delta epsilon ", joined)
}

func TestWrapText_SingleOversizedWordOverflows(t *testing.T) {
	style := Style{FontSize: 13}
	lines := wrapText("incomprehensibilities", style, 10)

	require.Len(t, lines, 1)
	assert.Greater(t, textWidth(lines[0], style), 10.0)
}

func TestWrapText_EmptyInput(t *testing.T) {
	assert.Nil(t, wrapText("   ", Style{FontSize: 13}, 100))
}

func TestLayout_ColumnStacksHeights(t *testing.T) {
	col := column(Style{Gap: 10},
		text("one", Style{FontSize: 10}),
		text("two", Style{FontSize: 10}),
	)
	layout(col, 400)

	lineHeight := 10 * lineHeightFactor
	assert.InDelta(t, 2*lineHeight+10, col.Height, 0.001)
}

func TestLayout_RowSumsWidths(t *testing.T) {
	a := text("aa", Style{FontSize: 10})
	b := text("bb", Style{FontSize: 10})
	r := row(Style{Gap: 6}, a, b)
	layout(r, 400)

	assert.InDelta(t, a.Width+b.Width+6, r.Width, 0.001)
}

func TestLayout_BoldTextIsWider(t *testing.T) {
	plain := text("measure", Style{FontSize: 13})
	bold := text("measure", Style{FontSize: 13, Bold: true})
	layout(plain, 400)
	layout(bold, 400)

	assert.Greater(t, bold.Width, plain.Width)
}

func TestLayout_TickBarWidth(t *testing.T) {
	bar := tickBar(3, 5, "#000000")
	layout(bar, 400)

	assert.InDelta(t, 5*tickWidth+4*tickGap, bar.Width, 0.001)
}

func TestLayout_UppercaseMeasuredOnDisplayText(t *testing.T) {
	n := heading("skills", Style{FontSize: 13, Uppercase: true})
	layout(n, 400)

	require.Len(t, n.Lines(), 1)
	assert.Equal(t, "SKILLS", n.Lines()[0])
}
