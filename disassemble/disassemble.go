// Package disassemble formats the 151 documented 6502 opcodes as text,
// driven entirely by the opcodes package's decode table. It does not
// interpret control flow: a JMP followed by its target is printed as that
// linear byte sequence, never as the instructions the jump leads to.
package disassemble

import (
	"fmt"

	"github.com/mchacon/go6502core/memory"
	"github.com/mchacon/go6502core/opcodes"
)

// Step disassembles the instruction at pc and returns its text rendering
// along with the number of bytes the caller should advance pc by to reach
// the next instruction. Step always reads the two bytes after pc, whatever
// the instruction's length, so the caller must ensure those addresses are
// valid (they always are on this core's flat 64KB bus).
func Step(pc uint16, bank memory.Bank) (string, int) {
	op := bank.Read(pc)
	b1 := bank.Read(pc + 1)
	b2 := bank.Read(pc + 2)

	entry := opcodes.Table[op]
	if entry == nil {
		return fmt.Sprintf("%04X %02X      .byte $%02X", pc, op, op), 1
	}

	var operand string
	switch entry.Mode {
	case opcodes.Implied, opcodes.Accumulator:
		operand = ""
	case opcodes.Immediate:
		operand = fmt.Sprintf("#$%02X", b1)
	case opcodes.ZeroPage:
		operand = fmt.Sprintf("$%02X", b1)
	case opcodes.ZeroPageX:
		operand = fmt.Sprintf("$%02X,X", b1)
	case opcodes.ZeroPageY:
		operand = fmt.Sprintf("$%02X,Y", b1)
	case opcodes.IndirectX:
		operand = fmt.Sprintf("($%02X,X)", b1)
	case opcodes.IndirectY:
		operand = fmt.Sprintf("($%02X),Y", b1)
	case opcodes.Relative:
		target := pc + 2 + uint16(int16(int8(b1)))
		operand = fmt.Sprintf("$%02X (%04X)", b1, target)
	case opcodes.Absolute:
		operand = fmt.Sprintf("$%02X%02X", b2, b1)
	case opcodes.AbsoluteX:
		operand = fmt.Sprintf("$%02X%02X,X", b2, b1)
	case opcodes.AbsoluteY:
		operand = fmt.Sprintf("$%02X%02X,Y", b2, b1)
	case opcodes.Indirect:
		operand = fmt.Sprintf("($%02X%02X)", b2, b1)
	}

	var rawBytes string
	switch entry.Len {
	case 1:
		rawBytes = fmt.Sprintf("%02X      ", op)
	case 2:
		rawBytes = fmt.Sprintf("%02X %02X   ", op, b1)
	case 3:
		rawBytes = fmt.Sprintf("%02X %02X %02X", op, b1, b2)
	}

	text := fmt.Sprintf("%04X %s %s %s", pc, rawBytes, entry.Name, operand)
	return text, int(entry.Len)
}
