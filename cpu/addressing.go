package cpu

// This file implements the 13 addressing modes described in the
// component design. Each resolver advances PC past its operand bytes
// and returns the effective address; read-type resolvers also report
// whether the computation crossed a page boundary, since several
// instructions add a cycle in that case.

// fetchByte reads the byte at PC and advances PC by one.
func (p *Processor) fetchByte() uint8 {
	v := p.Mem.Read(p.PC)
	p.PC++
	return v
}

// fetchWord reads the little-endian word at PC and advances PC by two.
func (p *Processor) fetchWord() uint16 {
	lo := p.fetchByte()
	hi := p.fetchByte()
	return uint16(hi)<<8 | uint16(lo)
}

// pageCrossed reports whether a and b fall in different 256 byte pages.
func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// addrImmediate returns the operand byte itself; there is no address.
func (p *Processor) addrImmediate() uint8 {
	return p.fetchByte()
}

// addrZP implements zero page mode - d.
func (p *Processor) addrZP() uint16 {
	return uint16(p.fetchByte())
}

// addrZPX implements zero page,X mode - d,x. The addition wraps within
// the zero page.
func (p *Processor) addrZPX() uint16 {
	return uint16(p.fetchByte() + p.X)
}

// addrZPY implements zero page,Y mode - d,y. The addition wraps within
// the zero page.
func (p *Processor) addrZPY() uint16 {
	return uint16(p.fetchByte() + p.Y)
}

// addrAbsolute implements absolute mode - a.
func (p *Processor) addrAbsolute() uint16 {
	return p.fetchWord()
}

// addrAbsoluteX implements absolute,X mode - a,x. Returns the effective
// address and whether adding X crossed a page boundary.
func (p *Processor) addrAbsoluteX() (uint16, bool) {
	base := p.fetchWord()
	eff := base + uint16(p.X)
	return eff, pageCrossed(base, eff)
}

// addrAbsoluteY implements absolute,Y mode - a,y. Returns the effective
// address and whether adding Y crossed a page boundary.
func (p *Processor) addrAbsoluteY() (uint16, bool) {
	base := p.fetchWord()
	eff := base + uint16(p.Y)
	return eff, pageCrossed(base, eff)
}

// addrIndirectX implements (d,x) mode. The pointer lookup wraps within
// the zero page; it never crosses a page for cycle-accounting purposes.
func (p *Processor) addrIndirectX() uint16 {
	ptr := p.fetchByte() + p.X
	lo := p.Mem.Read(uint16(ptr))
	hi := p.Mem.Read(uint16(ptr + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// addrIndirectY implements (d),y mode. Returns the effective address
// and whether adding Y to the zero-page-sourced base crossed a page.
func (p *Processor) addrIndirectY() (uint16, bool) {
	ptr := p.fetchByte()
	lo := p.Mem.Read(uint16(ptr))
	hi := p.Mem.Read(uint16(ptr + 1))
	base := uint16(hi)<<8 | uint16(lo)
	eff := base + uint16(p.Y)
	return eff, pageCrossed(base, eff)
}

// addrIndirect implements indirect mode, used only by JMP. Reproduces
// the classic NMOS bug: when the pointer's low byte is 0xFF, the high
// byte is fetched from the start of the same page rather than crossing
// into the next one.
func (p *Processor) addrIndirect() uint16 {
	ptr := p.fetchWord()
	lo := p.Mem.Read(ptr)
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := p.Mem.Read(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}

// branchTarget computes the target of a relative-mode instruction from
// the operand byte at PC (which is consumed) and reports whether taking
// the branch would cross a page boundary. It does not move PC to the
// target; callers do that only if the branch is actually taken.
func (p *Processor) branchTarget() (uint16, bool) {
	offset := int8(p.fetchByte())
	target := uint16(int32(p.PC) + int32(offset))
	return target, pageCrossed(p.PC, target)
}
