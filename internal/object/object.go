// Package object loads the sections of a firmware image file.
package object

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

// Section is a named, addressed, sized contiguous range of the firmware
// image content as reported by the object file format.
type Section struct {
	Name    string
	Address uint64
	Size    uint64
}

var elfMagic = []byte{0x7f, 'E', 'L', 'F'}

// ErrUnsupportedFormat is returned for input files that are neither ELF nor
// Intel HEX.
var ErrUnsupportedFormat = errors.New("unsupported object file format")

// LoadFile reads the whole firmware file into memory and returns its
// sections. The file format is detected from the content, ELF by magic bytes
// and Intel HEX by the record start character. The order of the returned
// sections is unspecified.
func LoadFile(name string) ([]Section, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", name, err)
	}
	return Load(data)
}

// Load returns the sections of an in-memory firmware image.
func Load(data []byte) ([]Section, error) {
	switch {
	case bytes.HasPrefix(data, elfMagic):
		return loadELF(data)

	case len(data) > 0 && data[0] == ':':
		return loadIntelHex(data)

	default:
		return nil, ErrUnsupportedFormat
	}
}
