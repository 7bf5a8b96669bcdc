package cpu

// This file implements the 56 instruction mnemonics. Each mnemonic is
// expressed as a small generator that closes over an addressing mode
// and returns an execFunc for the dispatch table - the opcode table in
// dispatch.go is 151 entries, one per legal opcode/mode combination,
// most built by these generators and the rest (BRK, JMP, JSR, RTS, RTI,
// NOP and the stack ops) plain handler functions defined below.

// execFunc is what a dispatch table entry invokes: it performs the
// addressing, side effects, and returns the total cycles consumed
// (base cost plus any page-cross or branch penalty).
type execFunc func(p *Processor) int

// valueFetch resolves an operand's value for the "read" family of
// instructions (loads, compares, ADC/SBC, logical ops) and reports any
// extra cycle a page crossing during address computation costs.
type valueFetch func(p *Processor) (uint8, int)

// addrFetch resolves an effective address for the "write" family
// (stores and read-modify-write instructions), which never pay a
// cross-page penalty - they always take their worst-case cycle count.
type addrFetch func(p *Processor) uint16

func fetchImmediate(p *Processor) (uint8, int) { return p.addrImmediate(), 0 }
func fetchZP(p *Processor) (uint8, int)         { return p.Mem.Read(p.addrZP()), 0 }
func fetchZPX(p *Processor) (uint8, int)        { return p.Mem.Read(p.addrZPX()), 0 }
func fetchZPY(p *Processor) (uint8, int)        { return p.Mem.Read(p.addrZPY()), 0 }
func fetchAbsolute(p *Processor) (uint8, int)   { return p.Mem.Read(p.addrAbsolute()), 0 }

func fetchAbsoluteX(p *Processor) (uint8, int) {
	addr, crossed := p.addrAbsoluteX()
	v := p.Mem.Read(addr)
	if crossed {
		return v, 1
	}
	return v, 0
}

func fetchAbsoluteY(p *Processor) (uint8, int) {
	addr, crossed := p.addrAbsoluteY()
	v := p.Mem.Read(addr)
	if crossed {
		return v, 1
	}
	return v, 0
}

func fetchIndirectX(p *Processor) (uint8, int) { return p.Mem.Read(p.addrIndirectX()), 0 }

func fetchIndirectY(p *Processor) (uint8, int) {
	addr, crossed := p.addrIndirectY()
	v := p.Mem.Read(addr)
	if crossed {
		return v, 1
	}
	return v, 0
}

func addrOnlyZP(p *Processor) uint16  { return p.addrZP() }
func addrOnlyZPX(p *Processor) uint16 { return p.addrZPX() }
func addrOnlyZPY(p *Processor) uint16 { return p.addrZPY() }
func addrOnlyAbs(p *Processor) uint16 { return p.addrAbsolute() }
func addrOnlyAbsX(p *Processor) uint16 {
	addr, _ := p.addrAbsoluteX()
	return addr
}
func addrOnlyAbsY(p *Processor) uint16 {
	addr, _ := p.addrAbsoluteY()
	return addr
}
func addrOnlyIndX(p *Processor) uint16 { return p.addrIndirectX() }
func addrOnlyIndY(p *Processor) uint16 {
	addr, _ := p.addrIndirectY()
	return addr
}

// loadOp builds a handler for LDA/LDX/LDY: read a value, hand it to
// store, and apply N/Z to it.
func loadOp(store func(p *Processor, v uint8), fetch valueFetch, base int) execFunc {
	return func(p *Processor) int {
		v, extra := fetch(p)
		store(p, v)
		p.setNZ(v)
		return base + extra
	}
}

func storeToA(p *Processor, v uint8) { p.A = v }
func storeToX(p *Processor, v uint8) { p.X = v }
func storeToY(p *Processor, v uint8) { p.Y = v }

// aluOp builds a handler for the accumulator-ALU family (ADC, SBC, AND,
// ORA, EOR, CMP, CPX, CPY, BIT): read a value and hand it to apply.
func aluOp(apply func(p *Processor, v uint8), fetch valueFetch, base int) execFunc {
	return func(p *Processor) int {
		v, extra := fetch(p)
		apply(p, v)
		return base + extra
	}
}

// storeOp builds a handler for STA/STX/STY: write reg() to the
// resolved address. Store modes never pay a cross-page penalty.
func storeOp(reg func(p *Processor) uint8, addr addrFetch, base int) execFunc {
	return func(p *Processor) int {
		a := addr(p)
		p.Mem.Write(a, reg(p))
		return base
	}
}

// rmwOp builds a handler for the read-modify-write family (ASL, LSR,
// ROL, ROR, INC, DEC on memory): read, transform, write back. RMW modes
// always take their worst-case cycle count.
func rmwOp(op func(p *Processor, v uint8) uint8, addr addrFetch, base int) execFunc {
	return func(p *Processor) int {
		a := addr(p)
		v := p.Mem.Read(a)
		p.Mem.Write(a, op(p, v))
		return base
	}
}

// accOp builds a handler for the accumulator-mode shift/rotate
// instructions (ASL A, LSR A, ROL A, ROR A).
func accOp(op func(p *Processor, v uint8) uint8) execFunc {
	return func(p *Processor) int {
		p.A = op(p, p.A)
		return 2
	}
}

// implied builds a zero-argument, fixed 2 cycle handler.
func implied(f func(p *Processor)) execFunc {
	return func(p *Processor) int {
		f(p)
		return 2
	}
}

// branchOp builds a handler for the eight conditional branches. Not
// taken costs 2, taken costs 3, taken across a page boundary costs 4.
func branchOp(cond func(p *Processor) bool) execFunc {
	return func(p *Processor) int {
		target, crossed := p.branchTarget()
		if !cond(p) {
			return 2
		}
		p.PC = target
		if crossed {
			return 4
		}
		return 3
	}
}

// ALU apply functions, one per accumulator-ALU mnemonic.
func applyADC(p *Processor, v uint8) { p.adc(v) }
func applySBC(p *Processor, v uint8) { p.sbc(v) }
func applyAND(p *Processor, v uint8) { p.A &= v; p.setNZ(p.A) }
func applyORA(p *Processor, v uint8) { p.A |= v; p.setNZ(p.A) }
func applyEOR(p *Processor, v uint8) { p.A ^= v; p.setNZ(p.A) }
func applyCMPA(p *Processor, v uint8) { p.compare(p.A, v) }
func applyCPX(p *Processor, v uint8)  { p.compare(p.X, v) }
func applyCPY(p *Processor, v uint8)  { p.compare(p.Y, v) }
func applyBIT(p *Processor, v uint8)  { p.bitTest(v) }

// regA, regX, regY let storeOp share one implementation across STA/STX/STY.
func regA(p *Processor) uint8 { return p.A }
func regX(p *Processor) uint8 { return p.X }
func regY(p *Processor) uint8 { return p.Y }

// iBRK implements BRK: push PC+1 (skipping BRK's phantom operand byte),
// push P with B=1, disable further IRQs, and jump through the IRQ
// vector. Costs 7 cycles.
func iBRK(p *Processor) int {
	p.PC++
	p.serviceInterrupt(IRQ_VECTOR, true)
	return 7
}

// iJSR implements JSR: push the address of the last byte of the JSR
// instruction (PC-1, after the two operand bytes have been consumed),
// then jump. Costs 6 cycles.
func iJSR(p *Processor) int {
	target := p.fetchWord()
	p.pushWord(p.PC - 1)
	p.PC = target
	return 6
}

// iRTS implements RTS: pull the pushed address and add one, since JSR
// pushed PC-1. Costs 6 cycles.
func iRTS(p *Processor) int {
	p.PC = p.pullWord() + 1
	return 6
}

// iRTI implements RTI: pull P (discarding B, forcing U), then pull PC
// verbatim (no +1, unlike RTS). Costs 6 cycles.
func iRTI(p *Processor) int {
	p.P = p.pull()
	p.P |= P_S1
	p.P &^= P_B
	p.PC = p.pullWord()
	return 6
}

// iJMPAbsolute implements JMP a. Costs 3 cycles.
func iJMPAbsolute(p *Processor) int {
	p.PC = p.addrAbsolute()
	return 3
}

// iJMPIndirect implements JMP (a), including the page-wrap bug in
// addrIndirect. Costs 5 cycles.
func iJMPIndirect(p *Processor) int {
	p.PC = p.addrIndirect()
	return 5
}

// iPHA implements PHA. Costs 3 cycles.
func iPHA(p *Processor) int {
	p.push(p.A)
	return 3
}

// iPLA implements PLA, applying N/Z to the pulled value. Costs 4 cycles.
func iPLA(p *Processor) int {
	p.A = p.pull()
	p.setNZ(p.A)
	return 4
}

// iPHP implements PHP: the pushed copy always has U=1 and B=1. Costs 3
// cycles.
func iPHP(p *Processor) int {
	p.push(p.P | P_S1 | P_B)
	return 3
}

// iPLP implements PLP: restores all flags except forcing U=1 and
// discarding B, which has no effect on the live register either way.
// Costs 4 cycles.
func iPLP(p *Processor) int {
	p.P = p.pull()
	p.P |= P_S1
	p.P &^= P_B
	return 4
}

func iNOP(p *Processor) int { return 2 }
