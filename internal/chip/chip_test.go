package chip

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLookupNameNormalization(t *testing.T) {
	tests := []struct {
		name string
		chip string
		want string
	}{
		{name: "exact name", chip: "ESP32", want: "ESP32"},
		{name: "lower case", chip: "esp32", want: "ESP32"},
		{name: "hyphenated lower case", chip: "esp32-s3", want: "ESP32-S3"},
		{name: "hyphen stripped", chip: "ESP32S3", want: "ESP32-S3"},
		{name: "mixed case", chip: "Esp32-C3", want: "ESP32-C3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Lookup("basic", tt.chip)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, c.Name)
		})
	}
}

func TestLookupUnknownChip(t *testing.T) {
	_, err := Lookup("basic", "ESP99")
	assert.True(t, errors.Is(err, ErrUnknownChip))
}

func TestLookupUnknownCatalog(t *testing.T) {
	_, err := Lookup("deluxe", "ESP32")
	assert.True(t, errors.Is(err, ErrUnknownCatalog))
}

func TestCatalogDatasets(t *testing.T) {
	basic, err := Lookup("basic", "ESP32")
	assert.NoError(t, err)
	assert.Len(t, basic.Regions, 4)

	irom := basic.Regions[3]
	assert.Equal(t, "IROM", irom.Name)
	assert.Equal(t, uint64(0x400D0000), irom.Start)
	assert.Equal(t, uint64(4*1024*1024), irom.Length)

	// the expert dataset splits the same chip into finer sub regions
	expert, err := Lookup("expert", "ESP32")
	assert.NoError(t, err)
	assert.True(t, len(expert.Regions) > len(basic.Regions))
}

func TestResolve(t *testing.T) {
	esp32, err := Lookup("basic", "ESP32")
	assert.NoError(t, err)

	tests := []struct {
		name      string
		addr      uint64
		size      uint64
		flashSize uint64
		want      string
	}{
		{name: "text in irom", addr: 0x400D0010, size: 0x100, want: "IROM"},
		{name: "data in dram", addr: 0x3FFB0000, size: 0x1000, want: "DRAM"},
		{name: "section fills region", addr: 0x40080000, size: 0x20000, want: "IRAM"},
		{name: "unmapped address", addr: 0x60000000, size: 0x10, want: ""},
		{name: "section spans region end", addr: 0x4009FF00, size: 0x200, want: ""},
		{name: "rom shrunk by flash size", addr: 0x400D0000 + 512*1024, size: 0x100, flashSize: 256 * 1024, want: ""},
		{name: "rom grown by flash size", addr: 0x400D0000 + 8*1024*1024, size: 0x100, flashSize: 16 * 1024 * 1024, want: "IROM"},
		{name: "ram ignores flash size", addr: 0x3FFB0000, size: 0x1000, flashSize: 256 * 1024, want: "DRAM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region := esp32.Resolve(tt.addr, tt.size, tt.flashSize)
			if tt.want == "" {
				assert.Nil(t, region)
			} else {
				assert.NotNil(t, region)
				assert.Equal(t, tt.want, region.Name)
			}
		})
	}
}

func TestResolveFirstMatchOnOverlap(t *testing.T) {
	c := &Chip{
		Name: "test",
		Regions: []Region{
			{ID: 0, Name: "FIRST", Start: 0x1000, Length: 0x1000},
			{ID: 1, Name: "SECOND", Start: 0x1000, Length: 0x2000},
		},
	}

	region := c.Resolve(0x1100, 0x100, 0)
	assert.NotNil(t, region)
	assert.Equal(t, "FIRST", region.Name)

	// only the larger overlapping region contains the range
	region = c.Resolve(0x2100, 0x100, 0)
	assert.NotNil(t, region)
	assert.Equal(t, "SECOND", region.Name)
}

func TestRegionEnd(t *testing.T) {
	rom := Region{Name: "IROM", Start: 0x400D0000, Length: 0x400000}
	ram := Region{Name: "IRAM", Start: 0x40080000, Length: 0x20000}

	assert.Equal(t, uint64(0x400D0000+0x400000), rom.End(0))
	assert.Equal(t, uint64(0x400D0000+0x1000000), rom.End(16*1024*1024))
	assert.Equal(t, uint64(0x40080000+0x20000), ram.End(0))
	assert.Equal(t, uint64(0x40080000+0x20000), ram.End(16*1024*1024))
}

func TestMaxRegionNameLen(t *testing.T) {
	c, err := Lookup("expert", "ESP32")
	assert.NoError(t, err)
	assert.Equal(t, len("RTCSLOW"), c.MaxRegionNameLen())
}
