// Package chip provides the memory map catalog of the supported chips.
package chip

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownChip is returned when a chip name does not match any catalog entry.
var ErrUnknownChip = errors.New("unknown chip")

// ErrUnknownCatalog is returned when a dataset name does not exist.
var ErrUnknownCatalog = errors.New("unknown catalog")

// Chip describes a microcontroller variant and its memory regions.
// The catalog data is immutable after loading, chips are never mutated.
type Chip struct {
	Name    string   `yaml:"name"`
	Regions []Region `yaml:"regions"`
}

// Region describes an address range of the chip's memory map. The id is only
// used to detect region group changes when formatting the report.
type Region struct {
	ID     int    `yaml:"id"`
	Name   string `yaml:"name"`
	Start  uint64 `yaml:"start"`
	Length uint64 `yaml:"length"`
}

// Lookup finds a chip by name in the given catalog dataset. The chip name
// match is case insensitive and ignores hyphens, "esp32-s3" and "ESP32S3"
// resolve to the same entry.
func Lookup(catalog, name string) (*Chip, error) {
	chips, err := catalogChips(catalog)
	if err != nil {
		return nil, err
	}

	normalized := normalizeName(name)
	for i := range chips {
		if normalizeName(chips[i].Name) == normalized {
			return &chips[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownChip, name)
}

// Resolve returns the first region in catalog declaration order that fully
// contains the byte range [addr, addr+size], honoring the flash size override
// for ROM class regions. It returns nil if the range is unmapped or spans
// more than one region, which is not an error condition.
func (c *Chip) Resolve(addr, size, flashSize uint64) *Region {
	for i := range c.Regions {
		r := &c.Regions[i]
		if r.Start <= addr && addr+size <= r.End(flashSize) {
			return r
		}
	}
	return nil
}

// MaxRegionNameLen returns the display width of the widest region name.
func (c *Chip) MaxRegionNameLen() int {
	maxLen := 0
	for _, r := range c.Regions {
		maxLen = max(maxLen, len(r.Name))
	}
	return maxLen
}

// End returns the effective end address of the region. A supplied flash
// capacity overrides the catalog length for ROM class regions, recognized by
// the region name ending in "ROM". Non ROM regions ignore the capacity.
func (r *Region) End(flashSize uint64) uint64 {
	if flashSize > 0 && strings.HasSuffix(r.Name, "ROM") {
		return r.Start + flashSize
	}
	return r.Start + r.Length
}

func normalizeName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "-", ""))
}
