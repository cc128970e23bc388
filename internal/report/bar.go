package report

import "strings"

// Bar glyphs, the thin marker keeps sections visible whose proportional
// width rounds down to zero cells.
const (
	fullBlock  = "█"
	thinMarker = "▏"
)

// RenderBar draws a fixed width bar depicting the position and extent of a
// section inside its memory region. The returned string is always exactly
// width+2 runes long including the surrounding brackets. Offset and fill are
// scaled with floating point arithmetic and truncated towards zero; a fill
// that truncates to zero is drawn as a single thin marker cell instead.
func RenderBar(regionStart, regionEnd, sectionStart, sectionSize uint64, width int) string {
	if width < 1 {
		width = 1
	}

	var sb strings.Builder
	sb.Grow(width + 2)
	sb.WriteByte('[')

	if regionEnd <= regionStart {
		sb.WriteString(strings.Repeat(" ", width))
		sb.WriteByte(']')
		return sb.String()
	}

	scale := float64(width) / float64(regionEnd-regionStart)
	offset := int(scale * float64(sectionStart-regionStart))
	fill := int(scale * float64(sectionSize))

	glyph := fullBlock
	if fill == 0 {
		fill = 1
		glyph = thinMarker
	}
	if fill > width {
		fill = width
	}
	// rounding at the high end of the region can push the bar past the
	// right edge, pull it back instead of underflowing the padding
	if offset > width-fill {
		offset = width - fill
	}

	sb.WriteString(strings.Repeat(" ", offset))
	sb.WriteString(strings.Repeat(glyph, fill))
	sb.WriteString(strings.Repeat(" ", width-offset-fill))
	sb.WriteByte(']')
	return sb.String()
}
