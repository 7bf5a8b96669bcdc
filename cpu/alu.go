package cpu

// This file implements the flag and ALU primitives shared by the
// instruction handlers: N/Z setting, ADC/SBC with carry and overflow,
// comparisons, and the shift/rotate family.

// setNZ sets the Z and N flags from v, as every load, transfer, and
// increment/decrement instruction does.
func (p *Processor) setNZ(v uint8) {
	if v == 0 {
		p.P |= P_ZERO
	} else {
		p.P &^= P_ZERO
	}
	if v&P_NEGATIVE != 0 {
		p.P |= P_NEGATIVE
	} else {
		p.P &^= P_NEGATIVE
	}
}

// setCarry sets C if res, accumulated as a 16 bit intermediate, carried
// out of the 8 bit result (i.e. is >= 0x100).
func (p *Processor) setCarry(res uint16) {
	if res >= 0x100 {
		p.P |= P_CARRY
	} else {
		p.P &^= P_CARRY
	}
}

// setOverflow sets V when adding a and b produced a sign change that
// two's complement addition of those operands cannot produce validly -
// i.e. both operands share a sign that differs from the result's sign.
func (p *Processor) setOverflow(a, b, res uint8) {
	if (a^res)&(b^res)&0x80 != 0 {
		p.P |= P_OVERFLOW
	} else {
		p.P &^= P_OVERFLOW
	}
}

// adc adds v and the carry flag into A, setting C, V, N and Z. Decimal
// mode is never consulted: the D flag is a visible bit only, per the
// spec's explicit non-goal of BCD-correct arithmetic.
func (p *Processor) adc(v uint8) {
	carry := p.P & P_CARRY
	sum := p.A + v + carry
	p.setOverflow(p.A, v, sum)
	p.setCarry(uint16(p.A) + uint16(v) + uint16(carry))
	p.A = sum
	p.setNZ(p.A)
}

// sbc subtracts v (with borrow) from A. It is defined as ADC of the
// ones' complement of v, which reproduces the 6502's carry/overflow
// semantics exactly (C=1 means "no borrow").
func (p *Processor) sbc(v uint8) {
	p.adc(^v)
}

// compare implements CMP/CPX/CPY: it computes reg-v in a 9 bit field,
// sets C when reg >= v, and sets N/Z from the low 8 bits of the result.
func (p *Processor) compare(reg, v uint8) {
	res := uint16(reg) + uint16(^v) + 1
	p.setCarry(res)
	p.setNZ(uint8(res))
}

// bitTest implements BIT: Z from A&v, N and V copied directly from v's
// bit 7 and bit 6.
func (p *Processor) bitTest(v uint8) {
	if p.A&v == 0 {
		p.P |= P_ZERO
	} else {
		p.P &^= P_ZERO
	}
	if v&P_NEGATIVE != 0 {
		p.P |= P_NEGATIVE
	} else {
		p.P &^= P_NEGATIVE
	}
	if v&P_OVERFLOW != 0 {
		p.P |= P_OVERFLOW
	} else {
		p.P &^= P_OVERFLOW
	}
}

// asl shifts v left one bit, feeding the vacated bit0 with zero and
// capturing the shifted-out bit7 in C.
func (p *Processor) asl(v uint8) uint8 {
	p.setCarry(uint16(v) << 1)
	res := v << 1
	p.setNZ(res)
	return res
}

// lsr shifts v right one bit, feeding the vacated bit7 with zero and
// capturing the shifted-out bit0 in C.
func (p *Processor) lsr(v uint8) uint8 {
	p.setCarry(uint16(v&0x01) << 8)
	res := v >> 1
	p.setNZ(res)
	return res
}

// rol shifts v left one bit, feeding the vacated bit0 with the current
// C and capturing the shifted-out bit7 in the new C.
func (p *Processor) rol(v uint8) uint8 {
	carry := p.P & P_CARRY
	p.setCarry(uint16(v) << 1)
	res := (v << 1) | carry
	p.setNZ(res)
	return res
}

// ror shifts v right one bit, feeding the vacated bit7 with the current
// C and capturing the shifted-out bit0 in the new C.
func (p *Processor) ror(v uint8) uint8 {
	carry := (p.P & P_CARRY) << 7
	p.setCarry(uint16(v&0x01) << 8)
	res := (v >> 1) | carry
	p.setNZ(res)
	return res
}
