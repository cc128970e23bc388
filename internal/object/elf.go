package object

import (
	"bytes"
	"debug/elf"
	"fmt"
)

// loadELF lists all named sections of an ELF image. Non loaded metadata
// sections keep their zero address or size and are dropped by the report
// layer.
func loadELF(data []byte) ([]Section, error) {
	file, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing ELF file: %w", err)
	}
	defer func() { _ = file.Close() }()

	sections := make([]Section, 0, len(file.Sections))
	for _, s := range file.Sections {
		if s.Name == "" {
			continue
		}
		sections = append(sections, Section{
			Name:    s.Name,
			Address: s.Addr,
			Size:    s.Size,
		})
	}
	return sections, nil
}
