// Package options contains the program options.
package options

// Parameters contains file path and chip selection options.
type Parameters struct {
	Input   string // firmware file to inspect
	Chip    string // chip name, case and hyphen insensitive
	Catalog string // memory map dataset: basic or expert
}

// Flags contains behavior options.
type Flags struct {
	FlashSize uint64 // flash capacity in bytes, 0 uses the catalog ROM sizes
	Width     int    // total report line width in columns

	Debug bool
	Quiet bool
}

// Program options of the section report tool.
type Program struct {
	Parameters
	Flags
}
