// Package opcodes is the decode ROM for the 6502 core: a static mapping
// from each documented opcode byte to its mnemonic, addressing mode, and
// instruction length. It holds no behavior; the cpu package (execution) and
// the disassemble package (formatting) both consume it.
package opcodes

// AddressingMode is a closed enumeration of the 13 ways a 6502 instruction
// can locate its operand. There are no subtype relationships between modes
// so a tagged sum with a single switch is the natural representation;
// nothing here needs virtual dispatch.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

// String implements fmt.Stringer; cpu.InvalidAddressingMode uses it in its
// error message.
func (a AddressingMode) String() string {
	switch a {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageX:
		return "ZeroPage,X"
	case ZeroPageY:
		return "ZeroPage,Y"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "Absolute,X"
	case AbsoluteY:
		return "Absolute,Y"
	case Indirect:
		return "Indirect"
	case IndirectX:
		return "(Indirect,X)"
	case IndirectY:
		return "(Indirect),Y"
	}
	return "Unknown"
}

// Entry is one row of the opcode table: the decode-ROM record for a single
// opcode byte.
type Entry struct {
	Name string         // Mnemonic, e.g. "LDA".
	Mode AddressingMode // Addressing mode this opcode byte uses.
	Len  uint8          // Total instruction length in bytes (1, 2, or 3).
}

// Table maps every opcode byte to its Entry. Slots for opcodes that are not
// part of the documented instruction set are nil; fetching one of those is
// an UnknownOpcode condition for the interpreter, not a table concern.
var Table = [256]*Entry{}

func reg(op uint8, name string, mode AddressingMode, length uint8) {
	if Table[op] != nil {
		panic("opcode registered twice: " + name)
	}
	Table[op] = &Entry{Name: name, Mode: mode, Len: length}
}

// Count returns the number of documented opcodes populated in Table. Always
// 151 for this core.
func Count() int {
	n := 0
	for _, e := range Table {
		if e != nil {
			n++
		}
	}
	return n
}

func init() {
	reg(0x69, "ADC", Immediate, 2)
	reg(0x65, "ADC", ZeroPage, 2)
	reg(0x75, "ADC", ZeroPageX, 2)
	reg(0x6D, "ADC", Absolute, 3)
	reg(0x7D, "ADC", AbsoluteX, 3)
	reg(0x79, "ADC", AbsoluteY, 3)
	reg(0x61, "ADC", IndirectX, 2)
	reg(0x71, "ADC", IndirectY, 2)

	reg(0x29, "AND", Immediate, 2)
	reg(0x25, "AND", ZeroPage, 2)
	reg(0x35, "AND", ZeroPageX, 2)
	reg(0x2D, "AND", Absolute, 3)
	reg(0x3D, "AND", AbsoluteX, 3)
	reg(0x39, "AND", AbsoluteY, 3)
	reg(0x21, "AND", IndirectX, 2)
	reg(0x31, "AND", IndirectY, 2)

	reg(0x0A, "ASL", Accumulator, 1)
	reg(0x06, "ASL", ZeroPage, 2)
	reg(0x16, "ASL", ZeroPageX, 2)
	reg(0x0E, "ASL", Absolute, 3)
	reg(0x1E, "ASL", AbsoluteX, 3)

	reg(0x90, "BCC", Relative, 2)
	reg(0xB0, "BCS", Relative, 2)
	reg(0xF0, "BEQ", Relative, 2)

	reg(0x24, "BIT", ZeroPage, 2)
	reg(0x2C, "BIT", Absolute, 3)

	reg(0x30, "BMI", Relative, 2)
	reg(0xD0, "BNE", Relative, 2)
	reg(0x10, "BPL", Relative, 2)

	reg(0x00, "BRK", Implied, 1)

	reg(0x50, "BVC", Relative, 2)
	reg(0x70, "BVS", Relative, 2)

	reg(0x18, "CLC", Implied, 1)
	reg(0xD8, "CLD", Implied, 1)
	reg(0x58, "CLI", Implied, 1)
	reg(0xB8, "CLV", Implied, 1)

	reg(0xC9, "CMP", Immediate, 2)
	reg(0xC5, "CMP", ZeroPage, 2)
	reg(0xD5, "CMP", ZeroPageX, 2)
	reg(0xCD, "CMP", Absolute, 3)
	reg(0xDD, "CMP", AbsoluteX, 3)
	reg(0xD9, "CMP", AbsoluteY, 3)
	reg(0xC1, "CMP", IndirectX, 2)
	reg(0xD1, "CMP", IndirectY, 2)

	reg(0xE0, "CPX", Immediate, 2)
	reg(0xE4, "CPX", ZeroPage, 2)
	reg(0xEC, "CPX", Absolute, 3)

	reg(0xC0, "CPY", Immediate, 2)
	reg(0xC4, "CPY", ZeroPage, 2)
	reg(0xCC, "CPY", Absolute, 3)

	reg(0xC6, "DEC", ZeroPage, 2)
	reg(0xD6, "DEC", ZeroPageX, 2)
	reg(0xCE, "DEC", Absolute, 3)
	reg(0xDE, "DEC", AbsoluteX, 3)

	reg(0xCA, "DEX", Implied, 1)
	reg(0x88, "DEY", Implied, 1)

	reg(0x49, "EOR", Immediate, 2)
	reg(0x45, "EOR", ZeroPage, 2)
	reg(0x55, "EOR", ZeroPageX, 2)
	reg(0x4D, "EOR", Absolute, 3)
	reg(0x5D, "EOR", AbsoluteX, 3)
	reg(0x59, "EOR", AbsoluteY, 3)
	reg(0x41, "EOR", IndirectX, 2)
	reg(0x51, "EOR", IndirectY, 2)

	reg(0xE6, "INC", ZeroPage, 2)
	reg(0xF6, "INC", ZeroPageX, 2)
	reg(0xEE, "INC", Absolute, 3)
	reg(0xFE, "INC", AbsoluteX, 3)

	reg(0xE8, "INX", Implied, 1)
	reg(0xC8, "INY", Implied, 1)

	reg(0x4C, "JMP", Absolute, 3)
	reg(0x6C, "JMP", Indirect, 3)

	reg(0x20, "JSR", Absolute, 3)

	reg(0xA9, "LDA", Immediate, 2)
	reg(0xA5, "LDA", ZeroPage, 2)
	reg(0xB5, "LDA", ZeroPageX, 2)
	reg(0xAD, "LDA", Absolute, 3)
	reg(0xBD, "LDA", AbsoluteX, 3)
	reg(0xB9, "LDA", AbsoluteY, 3)
	reg(0xA1, "LDA", IndirectX, 2)
	reg(0xB1, "LDA", IndirectY, 2)

	reg(0xA2, "LDX", Immediate, 2)
	reg(0xA6, "LDX", ZeroPage, 2)
	reg(0xB6, "LDX", ZeroPageY, 2)
	reg(0xAE, "LDX", Absolute, 3)
	reg(0xBE, "LDX", AbsoluteY, 3)

	reg(0xA0, "LDY", Immediate, 2)
	reg(0xA4, "LDY", ZeroPage, 2)
	reg(0xB4, "LDY", ZeroPageX, 2)
	reg(0xAC, "LDY", Absolute, 3)
	reg(0xBC, "LDY", AbsoluteX, 3)

	reg(0x4A, "LSR", Accumulator, 1)
	reg(0x46, "LSR", ZeroPage, 2)
	reg(0x56, "LSR", ZeroPageX, 2)
	reg(0x4E, "LSR", Absolute, 3)
	reg(0x5E, "LSR", AbsoluteX, 3)

	reg(0xEA, "NOP", Implied, 1)

	reg(0x09, "ORA", Immediate, 2)
	reg(0x05, "ORA", ZeroPage, 2)
	reg(0x15, "ORA", ZeroPageX, 2)
	reg(0x0D, "ORA", Absolute, 3)
	reg(0x1D, "ORA", AbsoluteX, 3)
	reg(0x19, "ORA", AbsoluteY, 3)
	reg(0x01, "ORA", IndirectX, 2)
	reg(0x11, "ORA", IndirectY, 2)

	reg(0x48, "PHA", Implied, 1)
	reg(0x08, "PHP", Implied, 1)
	reg(0x68, "PLA", Implied, 1)
	reg(0x28, "PLP", Implied, 1)

	reg(0x2A, "ROL", Accumulator, 1)
	reg(0x26, "ROL", ZeroPage, 2)
	reg(0x36, "ROL", ZeroPageX, 2)
	reg(0x2E, "ROL", Absolute, 3)
	reg(0x3E, "ROL", AbsoluteX, 3)

	reg(0x6A, "ROR", Accumulator, 1)
	reg(0x66, "ROR", ZeroPage, 2)
	reg(0x76, "ROR", ZeroPageX, 2)
	reg(0x6E, "ROR", Absolute, 3)
	reg(0x7E, "ROR", AbsoluteX, 3)

	reg(0x40, "RTI", Implied, 1)
	reg(0x60, "RTS", Implied, 1)

	reg(0xE9, "SBC", Immediate, 2)
	reg(0xE5, "SBC", ZeroPage, 2)
	reg(0xF5, "SBC", ZeroPageX, 2)
	reg(0xED, "SBC", Absolute, 3)
	reg(0xFD, "SBC", AbsoluteX, 3)
	reg(0xF9, "SBC", AbsoluteY, 3)
	reg(0xE1, "SBC", IndirectX, 2)
	reg(0xF1, "SBC", IndirectY, 2)

	reg(0x38, "SEC", Implied, 1)
	reg(0xF8, "SED", Implied, 1)
	reg(0x78, "SEI", Implied, 1)

	reg(0x85, "STA", ZeroPage, 2)
	reg(0x95, "STA", ZeroPageX, 2)
	reg(0x8D, "STA", Absolute, 3)
	reg(0x9D, "STA", AbsoluteX, 3)
	reg(0x99, "STA", AbsoluteY, 3)
	reg(0x81, "STA", IndirectX, 2)
	reg(0x91, "STA", IndirectY, 2)

	reg(0x86, "STX", ZeroPage, 2)
	reg(0x96, "STX", ZeroPageY, 2)
	reg(0x8E, "STX", Absolute, 3)

	reg(0x84, "STY", ZeroPage, 2)
	reg(0x94, "STY", ZeroPageX, 2)
	reg(0x8C, "STY", Absolute, 3)

	reg(0xAA, "TAX", Implied, 1)
	reg(0xA8, "TAY", Implied, 1)
	reg(0xBA, "TSX", Implied, 1)
	reg(0x8A, "TXA", Implied, 1)
	reg(0x9A, "TXS", Implied, 1)
	reg(0x98, "TYA", Implied, 1)
}
