package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWrite(t *testing.T) {
	b := NewFlatBank()
	b.Write(0x10, 0x42)
	assert.Equal(t, uint8(0x42), b.Read(0x10))
	// Every address is valid, including ones never written.
	assert.Equal(t, uint8(0x00), b.Read(0xBEEF))
}

func TestReadWrite16RoundTrip(t *testing.T) {
	b := NewFlatBank()
	Write16(b, 0x10, 0x7654)
	assert.Equal(t, uint16(0x7654), Read16(b, 0x10))
	assert.Equal(t, uint8(0x54), b.Read(0x10))
	assert.Equal(t, uint8(0x76), b.Read(0x11))
}

func TestWrite16PageBoundaryWrap(t *testing.T) {
	b := NewFlatBank()
	Write16(b, 0xFFFF, 0x1234)
	assert.Equal(t, uint8(0x34), b.Read(0xFFFF))
	assert.Equal(t, uint8(0x12), b.Read(0x0000))
}

func TestPowerOnZeroes(t *testing.T) {
	b := NewFlatBank()
	b.Write(0x00, 0xFF)
	b.Write(0xFFFF, 0xFF)
	b.PowerOn()
	assert.Equal(t, uint8(0x00), b.Read(0x00))
	assert.Equal(t, uint8(0x00), b.Read(0xFFFF))
}
