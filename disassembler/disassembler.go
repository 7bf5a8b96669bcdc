// Package disassembler turns a stream of 6502 opcode bytes back into
// readable mnemonics. It mirrors exactly what the cpu package's Step
// would do with the same bytes: the 151 documented opcodes disassemble
// to their mnemonic and addressing mode, 0x02 disassembles as HLT, and
// every other byte disassembles as NOP, since that is how the core
// treats it at runtime.
package disassembler

import (
	"fmt"

	"github.com/go6502/core/memory"
)

const (
	modeImmediate = iota
	modeZP
	modeZPX
	modeZPY
	modeIndirectX
	modeIndirectY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeImplied
	modeRelative
)

type entry struct {
	mnemonic string
	mode     int
}

var table = buildTable()

func buildTable() [256]entry {
	var t [256]entry
	for i := range t {
		t[i] = entry{mnemonic: "NOP", mode: modeImplied}
	}
	t[0x02] = entry{mnemonic: "HLT", mode: modeImplied}

	set := func(op uint8, mnemonic string, mode int) {
		t[op] = entry{mnemonic: mnemonic, mode: mode}
	}

	set(0x69, "ADC", modeImmediate)
	set(0x65, "ADC", modeZP)
	set(0x75, "ADC", modeZPX)
	set(0x6D, "ADC", modeAbsolute)
	set(0x7D, "ADC", modeAbsoluteX)
	set(0x79, "ADC", modeAbsoluteY)
	set(0x61, "ADC", modeIndirectX)
	set(0x71, "ADC", modeIndirectY)

	set(0x29, "AND", modeImmediate)
	set(0x25, "AND", modeZP)
	set(0x35, "AND", modeZPX)
	set(0x2D, "AND", modeAbsolute)
	set(0x3D, "AND", modeAbsoluteX)
	set(0x39, "AND", modeAbsoluteY)
	set(0x21, "AND", modeIndirectX)
	set(0x31, "AND", modeIndirectY)

	set(0x0A, "ASL", modeImplied)
	set(0x06, "ASL", modeZP)
	set(0x16, "ASL", modeZPX)
	set(0x0E, "ASL", modeAbsolute)
	set(0x1E, "ASL", modeAbsoluteX)

	set(0x90, "BCC", modeRelative)
	set(0xB0, "BCS", modeRelative)
	set(0xF0, "BEQ", modeRelative)
	set(0x30, "BMI", modeRelative)
	set(0xD0, "BNE", modeRelative)
	set(0x10, "BPL", modeRelative)
	set(0x50, "BVC", modeRelative)
	set(0x70, "BVS", modeRelative)

	set(0x24, "BIT", modeZP)
	set(0x2C, "BIT", modeAbsolute)

	set(0x00, "BRK", modeImplied)

	set(0x18, "CLC", modeImplied)
	set(0xD8, "CLD", modeImplied)
	set(0x58, "CLI", modeImplied)
	set(0xB8, "CLV", modeImplied)
	set(0x38, "SEC", modeImplied)
	set(0xF8, "SED", modeImplied)
	set(0x78, "SEI", modeImplied)

	set(0xC9, "CMP", modeImmediate)
	set(0xC5, "CMP", modeZP)
	set(0xD5, "CMP", modeZPX)
	set(0xCD, "CMP", modeAbsolute)
	set(0xDD, "CMP", modeAbsoluteX)
	set(0xD9, "CMP", modeAbsoluteY)
	set(0xC1, "CMP", modeIndirectX)
	set(0xD1, "CMP", modeIndirectY)

	set(0xE0, "CPX", modeImmediate)
	set(0xE4, "CPX", modeZP)
	set(0xEC, "CPX", modeAbsolute)
	set(0xC0, "CPY", modeImmediate)
	set(0xC4, "CPY", modeZP)
	set(0xCC, "CPY", modeAbsolute)

	set(0xC6, "DEC", modeZP)
	set(0xD6, "DEC", modeZPX)
	set(0xCE, "DEC", modeAbsolute)
	set(0xDE, "DEC", modeAbsoluteX)

	set(0xCA, "DEX", modeImplied)
	set(0x88, "DEY", modeImplied)

	set(0x49, "EOR", modeImmediate)
	set(0x45, "EOR", modeZP)
	set(0x55, "EOR", modeZPX)
	set(0x4D, "EOR", modeAbsolute)
	set(0x5D, "EOR", modeAbsoluteX)
	set(0x59, "EOR", modeAbsoluteY)
	set(0x41, "EOR", modeIndirectX)
	set(0x51, "EOR", modeIndirectY)

	set(0xE6, "INC", modeZP)
	set(0xF6, "INC", modeZPX)
	set(0xEE, "INC", modeAbsolute)
	set(0xFE, "INC", modeAbsoluteX)

	set(0xE8, "INX", modeImplied)
	set(0xC8, "INY", modeImplied)

	set(0x4C, "JMP", modeAbsolute)
	set(0x6C, "JMP", modeIndirect)
	set(0x20, "JSR", modeAbsolute)

	set(0xA9, "LDA", modeImmediate)
	set(0xA5, "LDA", modeZP)
	set(0xB5, "LDA", modeZPX)
	set(0xAD, "LDA", modeAbsolute)
	set(0xBD, "LDA", modeAbsoluteX)
	set(0xB9, "LDA", modeAbsoluteY)
	set(0xA1, "LDA", modeIndirectX)
	set(0xB1, "LDA", modeIndirectY)

	set(0xA2, "LDX", modeImmediate)
	set(0xA6, "LDX", modeZP)
	set(0xB6, "LDX", modeZPY)
	set(0xAE, "LDX", modeAbsolute)
	set(0xBE, "LDX", modeAbsoluteY)

	set(0xA0, "LDY", modeImmediate)
	set(0xA4, "LDY", modeZP)
	set(0xB4, "LDY", modeZPX)
	set(0xAC, "LDY", modeAbsolute)
	set(0xBC, "LDY", modeAbsoluteX)

	set(0x4A, "LSR", modeImplied)
	set(0x46, "LSR", modeZP)
	set(0x56, "LSR", modeZPX)
	set(0x4E, "LSR", modeAbsolute)
	set(0x5E, "LSR", modeAbsoluteX)

	set(0xEA, "NOP", modeImplied)

	set(0x09, "ORA", modeImmediate)
	set(0x05, "ORA", modeZP)
	set(0x15, "ORA", modeZPX)
	set(0x0D, "ORA", modeAbsolute)
	set(0x1D, "ORA", modeAbsoluteX)
	set(0x19, "ORA", modeAbsoluteY)
	set(0x01, "ORA", modeIndirectX)
	set(0x11, "ORA", modeIndirectY)

	set(0x48, "PHA", modeImplied)
	set(0x08, "PHP", modeImplied)
	set(0x68, "PLA", modeImplied)
	set(0x28, "PLP", modeImplied)

	set(0x2A, "ROL", modeImplied)
	set(0x26, "ROL", modeZP)
	set(0x36, "ROL", modeZPX)
	set(0x2E, "ROL", modeAbsolute)
	set(0x3E, "ROL", modeAbsoluteX)

	set(0x6A, "ROR", modeImplied)
	set(0x66, "ROR", modeZP)
	set(0x76, "ROR", modeZPX)
	set(0x6E, "ROR", modeAbsolute)
	set(0x7E, "ROR", modeAbsoluteX)

	set(0x40, "RTI", modeImplied)
	set(0x60, "RTS", modeImplied)

	set(0xE9, "SBC", modeImmediate)
	set(0xE5, "SBC", modeZP)
	set(0xF5, "SBC", modeZPX)
	set(0xED, "SBC", modeAbsolute)
	set(0xFD, "SBC", modeAbsoluteX)
	set(0xF9, "SBC", modeAbsoluteY)
	set(0xE1, "SBC", modeIndirectX)
	set(0xF1, "SBC", modeIndirectY)

	set(0x85, "STA", modeZP)
	set(0x95, "STA", modeZPX)
	set(0x8D, "STA", modeAbsolute)
	set(0x9D, "STA", modeAbsoluteX)
	set(0x99, "STA", modeAbsoluteY)
	set(0x81, "STA", modeIndirectX)
	set(0x91, "STA", modeIndirectY)

	set(0x86, "STX", modeZP)
	set(0x96, "STX", modeZPY)
	set(0x8E, "STX", modeAbsolute)
	set(0x84, "STY", modeZP)
	set(0x94, "STY", modeZPX)
	set(0x8C, "STY", modeAbsolute)

	set(0xAA, "TAX", modeImplied)
	set(0xA8, "TAY", modeImplied)
	set(0xBA, "TSX", modeImplied)
	set(0x8A, "TXA", modeImplied)
	set(0x9A, "TXS", modeImplied)
	set(0x98, "TYA", modeImplied)

	return t
}

// Step disassembles the instruction at pc and returns its text
// rendering along with the number of bytes it occupies (1, 2, or 3).
// It always reads up to two bytes past pc, so callers must ensure that
// range is valid, or accept that trailing bytes near the end of a
// listing may be read speculatively and discarded.
func Step(pc uint16, mem memory.Bank) (string, int) {
	op := mem.Read(pc)
	b1 := mem.Read(pc + 1)
	b2 := mem.Read(pc + 2)
	e := table[op]

	count := 2
	out := fmt.Sprintf("%04X %02X ", pc, op)
	switch e.mode {
	case modeImmediate:
		out += fmt.Sprintf("%02X      %s #%02X", b1, e.mnemonic, b1)
	case modeZP:
		out += fmt.Sprintf("%02X      %s %02X", b1, e.mnemonic, b1)
	case modeZPX:
		out += fmt.Sprintf("%02X      %s %02X,X", b1, e.mnemonic, b1)
	case modeZPY:
		out += fmt.Sprintf("%02X      %s %02X,Y", b1, e.mnemonic, b1)
	case modeIndirectX:
		out += fmt.Sprintf("%02X      %s (%02X,X)", b1, e.mnemonic, b1)
	case modeIndirectY:
		out += fmt.Sprintf("%02X      %s (%02X),Y", b1, e.mnemonic, b1)
	case modeAbsolute:
		out += fmt.Sprintf("%02X %02X   %s %02X%02X", b1, b2, e.mnemonic, b2, b1)
		count++
	case modeAbsoluteX:
		out += fmt.Sprintf("%02X %02X   %s %02X%02X,X", b1, b2, e.mnemonic, b2, b1)
		count++
	case modeAbsoluteY:
		out += fmt.Sprintf("%02X %02X   %s %02X%02X,Y", b1, b2, e.mnemonic, b2, b1)
		count++
	case modeIndirect:
		out += fmt.Sprintf("%02X %02X   %s (%02X%02X)", b1, b2, e.mnemonic, b2, b1)
		count++
	case modeImplied:
		out += fmt.Sprintf("        %s", e.mnemonic)
		count--
	case modeRelative:
		target := uint16(int32(pc) + 2 + int32(int8(b1)))
		out += fmt.Sprintf("%02X      %s %02X (%04X)", b1, e.mnemonic, b1, target)
	default:
		panic(fmt.Sprintf("invalid addressing mode %d for opcode %02X", e.mode, op))
	}
	return out, count
}
