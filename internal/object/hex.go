package object

import (
	"bytes"
	"fmt"

	"github.com/marcinbor85/gohex"
)

// loadIntelHex synthesizes one section per contiguous data segment of an
// Intel HEX image. The format carries no section names, segments are named
// .seg0, .seg1, ... in ascending address order.
func loadIntelHex(data []byte) ([]Section, error) {
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("parsing Intel HEX file: %w", err)
	}

	segments := mem.GetDataSegments()
	sections := make([]Section, 0, len(segments))
	for i, segment := range segments {
		sections = append(sections, Section{
			Name:    fmt.Sprintf(".seg%d", i),
			Address: uint64(segment.Address),
			Size:    uint64(len(segment.Data)),
		})
	}
	return sections, nil
}
