// Package report formats the section placement report.
package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/retroenv/espsegs/internal/chip"
	"github.com/retroenv/espsegs/internal/object"
)

const (
	addressWidth = 8 // hex digits, no 0x prefix
	sizeWidth    = 7 // decimal bytes

	// column separators and bar brackets surrounding the variable columns
	lineOverhead = 4 + 2

	noRegion = -1
)

// Writer formats the placement report for one chip.
type Writer struct {
	chip      *chip.Chip
	flashSize uint64
	lineWidth int
}

// New creates a new report writer. A flashSize of 0 uses the catalog ROM
// region sizes, lineWidth is the total width of a fully populated line.
func New(c *chip.Chip, flashSize uint64, lineWidth int) *Writer {
	return &Writer{
		chip:      c,
		flashSize: flashSize,
		lineWidth: lineWidth,
	}
}

// Write prints one line per memory resident section, ordered by address and
// grouped by containing region. Sections with address 0 or size 0 are non
// loaded metadata and are dropped.
func (w *Writer) Write(out io.Writer, sections []object.Section) error {
	retained := make([]object.Section, 0, len(sections))
	for _, section := range sections {
		if section.Address == 0 || section.Size == 0 {
			continue
		}
		retained = append(retained, section)
	}
	slices.SortStableFunc(retained, func(a, b object.Section) int {
		return cmp.Compare(a.Address, b.Address)
	})

	nameWidth := 0
	for _, section := range retained {
		nameWidth = max(nameWidth, len(section.Name))
	}
	regionWidth := w.chip.MaxRegionNameLen()
	barWidth := max(1, w.lineWidth-nameWidth-addressWidth-sizeWidth-regionWidth-lineOverhead)

	lastRegion := noRegion
	for _, section := range retained {
		region := w.chip.Resolve(section.Address, section.Size, w.flashSize)

		if region != nil && region.ID != lastRegion {
			if _, err := fmt.Fprintln(out); err != nil {
				return fmt.Errorf("writing region separator: %w", err)
			}
			lastRegion = region.ID
		}

		if region == nil {
			if _, err := fmt.Fprintf(out, "%-*s %*x %*d\n", nameWidth, section.Name,
				addressWidth, section.Address, sizeWidth, section.Size); err != nil {
				return fmt.Errorf("writing section line: %w", err)
			}
			continue
		}

		bar := RenderBar(region.Start, region.End(w.flashSize), section.Address, section.Size, barWidth)
		if _, err := fmt.Fprintf(out, "%-*s %*x %*d %-*s %s\n", nameWidth, section.Name,
			addressWidth, section.Address, sizeWidth, section.Size,
			regionWidth, region.Name, bar); err != nil {
			return fmt.Errorf("writing section line: %w", err)
		}
	}
	return nil
}
