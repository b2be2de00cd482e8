package opcodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableHas151DocumentedOpcodes(t *testing.T) {
	assert.Equal(t, 151, Count())
}

func TestEveryEntryHasAValidLength(t *testing.T) {
	for op, e := range Table {
		if e == nil {
			continue
		}
		if e.Len < 1 || e.Len > 3 {
			t.Errorf("opcode 0x%02X (%s): invalid length %d", op, e.Name, e.Len)
		}
	}
}

func TestKnownEntries(t *testing.T) {
	tests := []struct {
		op   uint8
		name string
		mode AddressingMode
		len  uint8
	}{
		{0xA9, "LDA", Immediate, 2},
		{0xB1, "LDA", IndirectY, 2},
		{0x00, "BRK", Implied, 1},
		{0x4C, "JMP", Absolute, 3},
		{0x6C, "JMP", Indirect, 3},
		{0x0A, "ASL", Accumulator, 1},
		{0x20, "JSR", Absolute, 3},
	}
	for _, tt := range tests {
		e := Table[tt.op]
		if assert.NotNil(t, e, "opcode 0x%02X missing", tt.op) {
			assert.Equal(t, tt.name, e.Name)
			assert.Equal(t, tt.mode, e.Mode)
			assert.Equal(t, tt.len, e.Len)
		}
	}
}

func TestUnknownOpcodeSlotIsNil(t *testing.T) {
	// 0x02 is not a documented opcode.
	assert.Nil(t, Table[0x02])
}
