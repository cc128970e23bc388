// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/retroenv/espsegs/internal/chip"
	"github.com/retroenv/espsegs/internal/options"
)

const defaultLineWidth = 120

// flashSizes enumerates the standard flash capacities accepted by the
// -flash flag.
var flashSizes = []struct {
	name  string
	bytes uint64
}{
	{"256KB", 256 * 1024},
	{"512KB", 512 * 1024},
	{"1MB", 1 * 1024 * 1024},
	{"2MB", 2 * 1024 * 1024},
	{"4MB", 4 * 1024 * 1024},
	{"8MB", 8 * 1024 * 1024},
	{"16MB", 16 * 1024 * 1024},
	{"32MB", 32 * 1024 * 1024},
	{"64MB", 64 * 1024 * 1024},
	{"128MB", 128 * 1024 * 1024},
	{"256MB", 256 * 1024 * 1024},
}

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	var flashSize string
	readOptionFlags(flags, &opts, &flashSize)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 || opts.Chip == "" {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	opts.Input = args[0]

	if err := normalizeOptions(&opts, flashSize); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: espsegs [options] -chip <chip> <firmware file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after the firmware file, please pass the firmware file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program, flashSize string) error {
	opts.Catalog = strings.ToLower(opts.Catalog)
	if !slices.Contains(chip.CatalogNames(), opts.Catalog) {
		return fmt.Errorf("unsupported catalog: %s. Valid options: %s",
			opts.Catalog, strings.Join(chip.CatalogNames(), ", "))
	}

	if opts.Width < 1 {
		return fmt.Errorf("invalid width %d, must be a positive column count", opts.Width)
	}

	if flashSize == "" {
		return nil
	}
	normalized := strings.ToUpper(flashSize)
	for _, size := range flashSizes {
		if size.name == normalized {
			opts.FlashSize = size.bytes
			return nil
		}
	}

	names := make([]string, 0, len(flashSizes))
	for _, size := range flashSizes {
		names = append(names, size.name)
	}
	return fmt.Errorf("unsupported flash size: %s. Valid options: %s",
		flashSize, strings.Join(names, ", "))
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program, flashSize *string) {
	flags.StringVar(&opts.Chip, "chip", "", "name of the chip to map sections against, for example ESP32 or esp32-s3")
	flags.StringVar(&opts.Catalog, "catalog", "basic", "memory map dataset to use (basic/expert)")
	flags.StringVar(flashSize, "flash", "", "flash size overriding the ROM region sizes (256KB/512KB/1MB/.../256MB)")
	flags.IntVar(&opts.Width, "width", defaultLineWidth, "total report line width in columns")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
