// Package fileprocessor handles firmware loading and report generation
package fileprocessor

import (
	"fmt"
	"io"

	"github.com/retroenv/espsegs/internal/chip"
	"github.com/retroenv/espsegs/internal/object"
	"github.com/retroenv/espsegs/internal/options"
	"github.com/retroenv/espsegs/internal/report"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete processing workflow for one firmware
// file and writes the section placement report to out.
func ProcessFile(logger *log.Logger, opts options.Program, out io.Writer) error {
	// resolve the chip before touching the input file so an unknown chip
	// never produces partial output
	c, err := chip.Lookup(opts.Catalog, opts.Chip)
	if err != nil {
		return fmt.Errorf("looking up chip: %w", err)
	}
	logger.Debug("Resolved chip",
		log.String("chip", c.Name),
		log.String("catalog", opts.Catalog),
		log.Int("regions", len(c.Regions)))

	sections, err := object.LoadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("loading firmware: %w", err)
	}
	logger.Debug("Loaded sections", log.Int("count", len(sections)))

	writer := report.New(c, opts.FlashSize, opts.Width)
	if err := writer.Write(out, sections); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("espsegs", log.String("version", buildinfo.Version(version, commit, date)))
}
