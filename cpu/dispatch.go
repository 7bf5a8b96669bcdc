package cpu

// opcodeEntry is one slot in the 256 entry dispatch table. A nil exec
// means the opcode is not part of the documented instruction set; Step
// treats 0x02 specially as HLT and every other such slot as a 2 cycle
// NOP, matching the component design's undocumented-opcode policy.
type opcodeEntry struct {
	exec execFunc
}

// opcodeTable maps every opcode byte to its handler. Only the 151
// documented opcodes are populated.
var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]opcodeEntry {
	var t [256]opcodeEntry

	set := func(op uint8, f execFunc) {
		t[op] = opcodeEntry{exec: f}
	}

	// ADC
	set(0x69, aluOp(applyADC, fetchImmediate, 2))
	set(0x65, aluOp(applyADC, fetchZP, 3))
	set(0x75, aluOp(applyADC, fetchZPX, 4))
	set(0x6D, aluOp(applyADC, fetchAbsolute, 4))
	set(0x7D, aluOp(applyADC, fetchAbsoluteX, 4))
	set(0x79, aluOp(applyADC, fetchAbsoluteY, 4))
	set(0x61, aluOp(applyADC, fetchIndirectX, 6))
	set(0x71, aluOp(applyADC, fetchIndirectY, 5))

	// AND
	set(0x29, aluOp(applyAND, fetchImmediate, 2))
	set(0x25, aluOp(applyAND, fetchZP, 3))
	set(0x35, aluOp(applyAND, fetchZPX, 4))
	set(0x2D, aluOp(applyAND, fetchAbsolute, 4))
	set(0x3D, aluOp(applyAND, fetchAbsoluteX, 4))
	set(0x39, aluOp(applyAND, fetchAbsoluteY, 4))
	set(0x21, aluOp(applyAND, fetchIndirectX, 6))
	set(0x31, aluOp(applyAND, fetchIndirectY, 5))

	// ASL
	set(0x0A, accOp((*Processor).asl))
	set(0x06, rmwOp((*Processor).asl, addrOnlyZP, 5))
	set(0x16, rmwOp((*Processor).asl, addrOnlyZPX, 6))
	set(0x0E, rmwOp((*Processor).asl, addrOnlyAbs, 6))
	set(0x1E, rmwOp((*Processor).asl, addrOnlyAbsX, 7))

	// Branches
	set(0x90, branchOp(func(p *Processor) bool { return p.P&P_CARRY == 0 }))    // BCC
	set(0xB0, branchOp(func(p *Processor) bool { return p.P&P_CARRY != 0 }))    // BCS
	set(0xF0, branchOp(func(p *Processor) bool { return p.P&P_ZERO != 0 }))     // BEQ
	set(0x30, branchOp(func(p *Processor) bool { return p.P&P_NEGATIVE != 0 })) // BMI
	set(0xD0, branchOp(func(p *Processor) bool { return p.P&P_ZERO == 0 }))     // BNE
	set(0x10, branchOp(func(p *Processor) bool { return p.P&P_NEGATIVE == 0 })) // BPL
	set(0x50, branchOp(func(p *Processor) bool { return p.P&P_OVERFLOW == 0 })) // BVC
	set(0x70, branchOp(func(p *Processor) bool { return p.P&P_OVERFLOW != 0 })) // BVS

	// BIT
	set(0x24, aluOp(applyBIT, fetchZP, 3))
	set(0x2C, aluOp(applyBIT, fetchAbsolute, 4))

	// BRK
	set(0x00, iBRK)

	// Flag clears/sets
	set(0x18, implied(func(p *Processor) { p.P &^= P_CARRY }))    // CLC
	set(0xD8, implied(func(p *Processor) { p.P &^= P_DECIMAL }))  // CLD
	set(0x58, implied(func(p *Processor) { p.P &^= P_INTERRUPT })) // CLI
	set(0xB8, implied(func(p *Processor) { p.P &^= P_OVERFLOW }))  // CLV
	set(0x38, implied(func(p *Processor) { p.P |= P_CARRY }))     // SEC
	set(0xF8, implied(func(p *Processor) { p.P |= P_DECIMAL }))   // SED
	set(0x78, implied(func(p *Processor) { p.P |= P_INTERRUPT })) // SEI

	// CMP
	set(0xC9, aluOp(applyCMPA, fetchImmediate, 2))
	set(0xC5, aluOp(applyCMPA, fetchZP, 3))
	set(0xD5, aluOp(applyCMPA, fetchZPX, 4))
	set(0xCD, aluOp(applyCMPA, fetchAbsolute, 4))
	set(0xDD, aluOp(applyCMPA, fetchAbsoluteX, 4))
	set(0xD9, aluOp(applyCMPA, fetchAbsoluteY, 4))
	set(0xC1, aluOp(applyCMPA, fetchIndirectX, 6))
	set(0xD1, aluOp(applyCMPA, fetchIndirectY, 5))

	// CPX / CPY
	set(0xE0, aluOp(applyCPX, fetchImmediate, 2))
	set(0xE4, aluOp(applyCPX, fetchZP, 3))
	set(0xEC, aluOp(applyCPX, fetchAbsolute, 4))
	set(0xC0, aluOp(applyCPY, fetchImmediate, 2))
	set(0xC4, aluOp(applyCPY, fetchZP, 3))
	set(0xCC, aluOp(applyCPY, fetchAbsolute, 4))

	// DEC
	set(0xC6, rmwOp((*Processor).decMem, addrOnlyZP, 5))
	set(0xD6, rmwOp((*Processor).decMem, addrOnlyZPX, 6))
	set(0xCE, rmwOp((*Processor).decMem, addrOnlyAbs, 6))
	set(0xDE, rmwOp((*Processor).decMem, addrOnlyAbsX, 7))

	// DEX / DEY
	set(0xCA, implied(func(p *Processor) { p.X--; p.setNZ(p.X) }))
	set(0x88, implied(func(p *Processor) { p.Y--; p.setNZ(p.Y) }))

	// EOR
	set(0x49, aluOp(applyEOR, fetchImmediate, 2))
	set(0x45, aluOp(applyEOR, fetchZP, 3))
	set(0x55, aluOp(applyEOR, fetchZPX, 4))
	set(0x4D, aluOp(applyEOR, fetchAbsolute, 4))
	set(0x5D, aluOp(applyEOR, fetchAbsoluteX, 4))
	set(0x59, aluOp(applyEOR, fetchAbsoluteY, 4))
	set(0x41, aluOp(applyEOR, fetchIndirectX, 6))
	set(0x51, aluOp(applyEOR, fetchIndirectY, 5))

	// INC
	set(0xE6, rmwOp((*Processor).incMem, addrOnlyZP, 5))
	set(0xF6, rmwOp((*Processor).incMem, addrOnlyZPX, 6))
	set(0xEE, rmwOp((*Processor).incMem, addrOnlyAbs, 6))
	set(0xFE, rmwOp((*Processor).incMem, addrOnlyAbsX, 7))

	// INX / INY
	set(0xE8, implied(func(p *Processor) { p.X++; p.setNZ(p.X) }))
	set(0xC8, implied(func(p *Processor) { p.Y++; p.setNZ(p.Y) }))

	// JMP / JSR
	set(0x4C, iJMPAbsolute)
	set(0x6C, iJMPIndirect)
	set(0x20, iJSR)

	// LDA
	set(0xA9, loadOp(storeToA, fetchImmediate, 2))
	set(0xA5, loadOp(storeToA, fetchZP, 3))
	set(0xB5, loadOp(storeToA, fetchZPX, 4))
	set(0xAD, loadOp(storeToA, fetchAbsolute, 4))
	set(0xBD, loadOp(storeToA, fetchAbsoluteX, 4))
	set(0xB9, loadOp(storeToA, fetchAbsoluteY, 4))
	set(0xA1, loadOp(storeToA, fetchIndirectX, 6))
	set(0xB1, loadOp(storeToA, fetchIndirectY, 5))

	// LDX
	set(0xA2, loadOp(storeToX, fetchImmediate, 2))
	set(0xA6, loadOp(storeToX, fetchZP, 3))
	set(0xB6, loadOp(storeToX, fetchZPY, 4))
	set(0xAE, loadOp(storeToX, fetchAbsolute, 4))
	set(0xBE, loadOp(storeToX, fetchAbsoluteY, 4))

	// LDY
	set(0xA0, loadOp(storeToY, fetchImmediate, 2))
	set(0xA4, loadOp(storeToY, fetchZP, 3))
	set(0xB4, loadOp(storeToY, fetchZPX, 4))
	set(0xAC, loadOp(storeToY, fetchAbsolute, 4))
	set(0xBC, loadOp(storeToY, fetchAbsoluteX, 4))

	// LSR
	set(0x4A, accOp((*Processor).lsr))
	set(0x46, rmwOp((*Processor).lsr, addrOnlyZP, 5))
	set(0x56, rmwOp((*Processor).lsr, addrOnlyZPX, 6))
	set(0x4E, rmwOp((*Processor).lsr, addrOnlyAbs, 6))
	set(0x5E, rmwOp((*Processor).lsr, addrOnlyAbsX, 7))

	// NOP
	set(0xEA, iNOP)

	// ORA
	set(0x09, aluOp(applyORA, fetchImmediate, 2))
	set(0x05, aluOp(applyORA, fetchZP, 3))
	set(0x15, aluOp(applyORA, fetchZPX, 4))
	set(0x0D, aluOp(applyORA, fetchAbsolute, 4))
	set(0x1D, aluOp(applyORA, fetchAbsoluteX, 4))
	set(0x19, aluOp(applyORA, fetchAbsoluteY, 4))
	set(0x01, aluOp(applyORA, fetchIndirectX, 6))
	set(0x11, aluOp(applyORA, fetchIndirectY, 5))

	// Stack ops
	set(0x48, iPHA)
	set(0x08, iPHP)
	set(0x68, iPLA)
	set(0x28, iPLP)

	// ROL
	set(0x2A, accOp((*Processor).rol))
	set(0x26, rmwOp((*Processor).rol, addrOnlyZP, 5))
	set(0x36, rmwOp((*Processor).rol, addrOnlyZPX, 6))
	set(0x2E, rmwOp((*Processor).rol, addrOnlyAbs, 6))
	set(0x3E, rmwOp((*Processor).rol, addrOnlyAbsX, 7))

	// ROR
	set(0x6A, accOp((*Processor).ror))
	set(0x66, rmwOp((*Processor).ror, addrOnlyZP, 5))
	set(0x76, rmwOp((*Processor).ror, addrOnlyZPX, 6))
	set(0x6E, rmwOp((*Processor).ror, addrOnlyAbs, 6))
	set(0x7E, rmwOp((*Processor).ror, addrOnlyAbsX, 7))

	// RTI / RTS
	set(0x40, iRTI)
	set(0x60, iRTS)

	// SBC
	set(0xE9, aluOp(applySBC, fetchImmediate, 2))
	set(0xE5, aluOp(applySBC, fetchZP, 3))
	set(0xF5, aluOp(applySBC, fetchZPX, 4))
	set(0xED, aluOp(applySBC, fetchAbsolute, 4))
	set(0xFD, aluOp(applySBC, fetchAbsoluteX, 4))
	set(0xF9, aluOp(applySBC, fetchAbsoluteY, 4))
	set(0xE1, aluOp(applySBC, fetchIndirectX, 6))
	set(0xF1, aluOp(applySBC, fetchIndirectY, 5))

	// STA
	set(0x85, storeOp(regA, addrOnlyZP, 3))
	set(0x95, storeOp(regA, addrOnlyZPX, 4))
	set(0x8D, storeOp(regA, addrOnlyAbs, 4))
	set(0x9D, storeOp(regA, addrOnlyAbsX, 5))
	set(0x99, storeOp(regA, addrOnlyAbsY, 5))
	set(0x81, storeOp(regA, addrOnlyIndX, 6))
	set(0x91, storeOp(regA, addrOnlyIndY, 6))

	// STX / STY
	set(0x86, storeOp(regX, addrOnlyZP, 3))
	set(0x96, storeOp(regX, addrOnlyZPY, 4))
	set(0x8E, storeOp(regX, addrOnlyAbs, 4))
	set(0x84, storeOp(regY, addrOnlyZP, 3))
	set(0x94, storeOp(regY, addrOnlyZPX, 4))
	set(0x8C, storeOp(regY, addrOnlyAbs, 4))

	// Transfers
	set(0xAA, implied(func(p *Processor) { p.X = p.A; p.setNZ(p.X) }))  // TAX
	set(0xA8, implied(func(p *Processor) { p.Y = p.A; p.setNZ(p.Y) }))  // TAY
	set(0xBA, implied(func(p *Processor) { p.X = p.SP; p.setNZ(p.X) })) // TSX
	set(0x8A, implied(func(p *Processor) { p.A = p.X; p.setNZ(p.A) }))  // TXA
	set(0x9A, implied(func(p *Processor) { p.SP = p.X }))               // TXS (no flags)
	set(0x98, implied(func(p *Processor) { p.A = p.Y; p.setNZ(p.A) }))  // TYA

	return t
}

// decMem / incMem adapt INC/DEC's register-free signature to the rmwOp
// shape shared with the shift/rotate family.
func (p *Processor) decMem(v uint8) uint8 {
	res := v - 1
	p.setNZ(res)
	return res
}

func (p *Processor) incMem(v uint8) uint8 {
	res := v + 1
	p.setNZ(res)
	return res
}
