// Package loader copies a raw program image into a memory.Bank and points
// the reset vector at it. It has no notion of a file format (iNES, PRG
// headers, etc); callers that need one strip the header before calling
// Load.
package loader

import (
	"fmt"

	"github.com/mchacon/go6502core/memory"
)

// OutOfRange is returned when program would not fit in the bank starting
// at base, i.e. base+len(program) overflows the 64KB address space.
type OutOfRange struct {
	Base uint16
	Len  int
}

func (e OutOfRange) Error() string {
	return fmt.Sprintf("program of %d bytes does not fit at base 0x%04X", e.Len, e.Base)
}

// Load writes program into bank starting at base, byte for byte, and then
// sets the reset vector (0xFFFC/0xFFFD) to base so a subsequent Reset lands
// on the first loaded instruction. base is always supplied by the caller:
// this package has no built-in notion of a "default" load address.
func Load(bank memory.Bank, program []byte, base uint16) error {
	if int(base)+len(program) > 0x10000 {
		return OutOfRange{Base: base, Len: len(program)}
	}
	for i, b := range program {
		bank.Write(base+uint16(i), b)
	}
	memory.Write16(bank, 0xFFFC, base)
	return nil
}
