// Package cpu defines the 6502 architecture and provides the methods
// needed to run the CPU and interface with it for emulation.
package cpu

import (
	"github.com/go6502/core/memory"
)

// Status register bit masks (bit 7 -> bit 0: N V U B D I Z C).
const (
	P_NEGATIVE  = uint8(0x80)
	P_OVERFLOW  = uint8(0x40)
	P_S1        = uint8(0x20) // Always 1 in any observed P (the "U" bit).
	P_B         = uint8(0x10) // Only exists in pushed copies of P. Never set in the live register.
	P_DECIMAL   = uint8(0x08)
	P_INTERRUPT = uint8(0x04)
	P_ZERO      = uint8(0x02)
	P_CARRY     = uint8(0x01)
)

// Interrupt vectors, fixed in the top of the address space.
const (
	NMI_VECTOR   = uint16(0xFFFA)
	RESET_VECTOR = uint16(0xFFFC)
	IRQ_VECTOR   = uint16(0xFFFE)
)

// HALT_OPCODE is the unofficial opcode this emulator treats as a halt
// instruction. All other illegal opcodes are treated as a 2 cycle NOP.
const HALT_OPCODE = uint8(0x02)

// DefaultLoadAddress is where LoadProgram places a program when no
// address is given.
const DefaultLoadAddress = uint16(0x0600)

// Processor is a single 6502 CPU instance. It owns a memory Bank and is
// intended for use by one caller at a time; it does no locking of its
// own.
type Processor struct {
	A  uint8  // Accumulator.
	X  uint8  // X index register.
	Y  uint8  // Y index register.
	SP uint8  // Stack pointer; effective address is 0x0100+SP.
	P  uint8  // Status register.
	PC uint16 // Program counter.

	Cycles uint32 // Cycles consumed since construction or hard reset. Wraps modulo 2^32.

	Mem memory.Bank

	irqPending bool
	nmiPending bool
	halted     bool
	haltOpcode uint8
}

// New returns a Processor with zeroed memory and registers in their
// documented power-on state: A=X=Y=0, SP=0xFD, P=U|I, PC=0, Cycles=0,
// no pending interrupts, not halted.
func New(mem memory.Bank) *Processor {
	p := &Processor{Mem: mem}
	mem.PowerOn()
	p.powerOnRegisters()
	return p
}

// powerOnRegisters sets registers to their documented power-on values
// and loads PC from the reset vector (0 if memory was just zeroed).
func (p *Processor) powerOnRegisters() {
	p.A, p.X, p.Y = 0, 0, 0
	p.SP = 0xFD
	p.P = P_S1 | P_INTERRUPT
	p.irqPending = false
	p.nmiPending = false
	p.halted = false
	p.haltOpcode = 0
	p.PC = p.readWord(RESET_VECTOR)
}

// Reset performs a soft reset: A, X, Y are zeroed, SP is set to 0xFD,
// P is set to U|I, pending interrupts and the halted flag are cleared,
// and PC is loaded from the reset vector. Memory (including the
// vectors) is preserved.
func (p *Processor) Reset() {
	p.powerOnRegisters()
}

// HardReset zeroes the entire state, including all of memory and the
// interrupt vectors, and returns the Processor to its construction-time
// state.
func (p *Processor) HardReset() {
	p.Mem.PowerOn()
	p.powerOnRegisters()
	p.Cycles = 0
}

// LoadProgram copies b into memory starting at addr. Addresses wrap
// modulo 65536 if the program would overflow past 0xFFFF.
func (p *Processor) LoadProgram(b []byte, addr uint16) {
	for _, v := range b {
		p.Mem.Write(addr, v)
		addr++
	}
}

// SetResetVector writes a as the little-endian reset vector.
func (p *Processor) SetResetVector(a uint16) {
	p.writeWord(RESET_VECTOR, a)
}

// SetNMIVector writes a as the little-endian NMI vector.
func (p *Processor) SetNMIVector(a uint16) {
	p.writeWord(NMI_VECTOR, a)
}

// SetIRQVector writes a as the little-endian IRQ/BRK vector.
func (p *Processor) SetIRQVector(a uint16) {
	p.writeWord(IRQ_VECTOR, a)
}

// TriggerIRQ raises the maskable interrupt line. It is sampled at the
// top of the next Step.
func (p *Processor) TriggerIRQ() {
	p.irqPending = true
}

// TriggerNMI raises the non-maskable interrupt line. It is sampled at
// the top of the next Step and cannot be masked by the I flag.
func (p *Processor) TriggerNMI() {
	p.nmiPending = true
}

// ReadMemory returns the byte at addr.
func (p *Processor) ReadMemory(addr uint16) uint8 {
	return p.Mem.Read(addr)
}

// WriteMemory stores val at addr.
func (p *Processor) WriteMemory(addr uint16, val uint8) {
	p.Mem.Write(addr, val)
}

// IsHalted reports whether the HLT opcode has stopped the processor.
func (p *Processor) IsHalted() bool {
	return p.halted
}

// HaltOpcode returns the opcode byte that caused the halt. Only
// meaningful once IsHalted is true.
func (p *Processor) HaltOpcode() uint8 {
	return p.haltOpcode
}

// readWord reads a 16 bit little-endian value from addr/addr+1.
func (p *Processor) readWord(addr uint16) uint16 {
	lo := p.Mem.Read(addr)
	hi := p.Mem.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// writeWord stores val as a 16 bit little-endian value at addr/addr+1.
func (p *Processor) writeWord(addr uint16, val uint16) {
	p.Mem.Write(addr, uint8(val&0xFF))
	p.Mem.Write(addr+1, uint8(val>>8))
}

// push stores val at the current stack location and decrements SP,
// wrapping within page 0x01.
func (p *Processor) push(val uint8) {
	p.Mem.Write(0x0100+uint16(p.SP), val)
	p.SP--
}

// pull increments SP, wrapping within page 0x01, and returns the byte
// now at the stack location.
func (p *Processor) pull() uint8 {
	p.SP++
	return p.Mem.Read(0x0100 + uint16(p.SP))
}

// pushWord pushes val high byte first, then low byte, matching the
// order JSR/interrupts push PC in.
func (p *Processor) pushWord(val uint16) {
	p.push(uint8(val >> 8))
	p.push(uint8(val & 0xFF))
}

// pullWord pulls low byte first, then high byte.
func (p *Processor) pullWord() uint16 {
	lo := p.pull()
	hi := p.pull()
	return uint16(hi)<<8 | uint16(lo)
}

// Step executes exactly one instruction and returns the number of
// cycles it consumed. A halted processor returns 0. A pending NMI is
// serviced first (7 cycles, no fetch); otherwise a pending IRQ is
// consumed and serviced (7 cycles) only if I is clear. The HLT opcode
// sets the halted flag and returns 0.
func (p *Processor) Step() int {
	if p.halted {
		return 0
	}

	if p.nmiPending {
		p.nmiPending = false
		p.serviceInterrupt(NMI_VECTOR, false)
		p.Cycles += 7
		return 7
	}

	if p.irqPending {
		p.irqPending = false
		if p.P&P_INTERRUPT == 0 {
			p.serviceInterrupt(IRQ_VECTOR, false)
			p.Cycles += 7
			return 7
		}
		// I was set: the signal is consumed but not serviced. Fall
		// through to execute the next instruction normally.
	}

	op := p.Mem.Read(p.PC)
	p.PC++

	entry := &opcodeTable[op]
	if entry.exec == nil {
		if op == HALT_OPCODE {
			p.halted = true
			p.haltOpcode = op
			return 0
		}
		// Undocumented opcode: treated as a 2 cycle NOP.
		p.Cycles += 2
		return 2
	}

	cycles := entry.exec(p)
	p.Cycles += uint32(cycles)
	return cycles
}

// Run steps the processor until at least target cycles have been
// consumed during this call, or until it halts. It returns the number
// of cycles actually consumed.
func (p *Processor) Run(target int) int {
	consumed := 0
	for consumed < target {
		if p.halted {
			break
		}
		consumed += p.Step()
	}
	return consumed
}

// serviceInterrupt implements the shared IRQ/NMI/BRK push-and-vector
// sequence. The current PC is pushed as PCH/PCL and the new PC is loaded
// from vector; brk distinguishes a BRK (B=1 in the pushed P) from a
// hardware IRQ/NMI (B=0).
func (p *Processor) serviceInterrupt(vector uint16, brk bool) {
	p.pushWord(p.PC)
	push := p.P | P_S1
	if brk {
		push |= P_B
	} else {
		push &^= P_B
	}
	p.push(push)
	p.P |= P_INTERRUPT
	p.PC = p.readWord(vector)
}
