// Package functionality exercises the cpu and memory packages together
// as complete programs rather than isolated opcodes, the way a real
// assembled ROM would be loaded and run.
package functionality

import (
	"testing"

	"github.com/go6502/core/cpu"
	"github.com/go6502/core/memory"
)

func newMachine(resetAddr uint16) *cpu.Processor {
	mem := memory.NewFlat()
	p := cpu.New(mem)
	p.SetResetVector(resetAddr)
	p.Reset()
	return p
}

// TestCounterProgram loads a short counting loop that stores X into A
// on each pass and halts once X reaches 10.
//
// The documented cycle cost of this exact byte sequence, computed
// opcode-by-opcode from the base costs in the component design (LDX#
// 2, TXA 2, STA abs 4, INX 2, CPX# 2, BNE 3 taken / 2 not taken, HLT
// 0) is 131: one LDX (2) plus nine taken passes through the loop body
// (13 each = 117) plus one final not-taken pass (12), for
// 2+117+12=131. The loop runs for 10 passes because BNE keeps branching
// back while X != 10, which first becomes true only after the tenth
// INX.
func TestCounterProgram(t *testing.T) {
	p := newMachine(0x0600)
	prog := []byte{0xA2, 0x00, 0x8A, 0x8D, 0x00, 0x04, 0xE8, 0xE0, 0x0A, 0xD0, 0xF7, 0x02}
	p.LoadProgram(prog, 0x0600)
	cycles := p.Run(1000)

	if !p.IsHalted() {
		t.Fatalf("program did not halt")
	}
	if got, want := p.Mem.Read(0x0400), uint8(9); got != want {
		t.Errorf("mem[0400] = %d, want %d", got, want)
	}
	if p.X != 10 {
		t.Errorf("X = %d, want 10", p.X)
	}
	if cycles != 131 {
		t.Errorf("cycles = %d, want 131", cycles)
	}
}

// TestFibonacciProgram computes the first ten Fibonacci numbers into
// mem[$0200..=$0209] using a,b running sums held in zero page $10/$11.
func TestFibonacciProgram(t *testing.T) {
	p := newMachine(0x0600)
	prog := []byte{
		0xA9, 0x01, // LDA #1
		0x8D, 0x00, 0x02, // STA $0200
		0x85, 0x10, // STA $10 (a)
		0x8D, 0x01, 0x02, // STA $0201
		0x85, 0x11, // STA $11 (b)
		0xA2, 0x02, // LDX #2
		// LOOP ($060E):
		0xE0, 0x0A, // CPX #10
		0xF0, 0x14, // BEQ DONE (+20)
		0xA5, 0x10, // LDA $10
		0x18,       // CLC
		0x65, 0x11, // ADC $11
		0x48,       // PHA
		0xA5, 0x11, // LDA $11
		0x85, 0x10, // STA $10
		0x68,       // PLA
		0x85, 0x11, // STA $11
		0x9D, 0x00, 0x02, // STA $0200,X
		0xE8,             // INX
		0x4C, 0x0E, 0x06, // JMP LOOP
		// DONE ($0626):
		0x02, // HLT
	}
	p.LoadProgram(prog, 0x0600)
	p.Run(10000)

	want := []uint8{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for i, w := range want {
		if got := p.Mem.Read(0x0200 + uint16(i)); got != w {
			t.Errorf("mem[%04X] = %d, want %d", 0x0200+i, got, w)
		}
	}
	if !p.IsHalted() {
		t.Errorf("program did not halt")
	}
}

// TestJMPIndirectBugScenario reproduces the classic NMOS page-wrap bug:
// when the indirect pointer's low byte is $FF, the high byte of the
// target is read from the start of the same page instead of the next
// one.
func TestJMPIndirectBugScenario(t *testing.T) {
	p := newMachine(0x0600)
	p.Mem.Write(0x30FF, 0x34)
	p.Mem.Write(0x3000, 0x12)
	p.Mem.Write(0x0600, 0x6C)
	p.Mem.Write(0x0601, 0xFF)
	p.Mem.Write(0x0602, 0x30)

	cycles := p.Step()
	if p.PC != 0x1234 {
		t.Errorf("PC = %04X, want 1234", p.PC)
	}
	if cycles != 5 {
		t.Errorf("cycles = %d, want 5", cycles)
	}
}

// TestIRQMaskingScenario verifies that an IRQ raised while I is set is
// discarded rather than serviced: the next Step executes the following
// NOP in the main instruction stream instead of jumping to the IRQ
// vector.
func TestIRQMaskingScenario(t *testing.T) {
	p := newMachine(0x0600)
	p.SetIRQVector(0xD000) // arbitrary vector distinct from main flow.
	p.Mem.Write(0x0600, 0x78) // SEI
	for i := uint16(0x0601); i < 0x0700; i++ {
		p.Mem.Write(i, 0xEA) // NOP
	}

	p.Step() // executes SEI
	if p.P&cpu.P_INTERRUPT == 0 {
		t.Fatalf("I flag not set after SEI")
	}

	p.TriggerIRQ()
	pcBefore := p.PC
	p.Step() // executes a NOP; IRQ must be discarded, not serviced
	if p.PC != pcBefore+1 {
		t.Errorf("PC = %04X, want %04X (main flow, not vectored)", p.PC, pcBefore+1)
	}
	if p.PC == 0xD000 {
		t.Fatalf("IRQ was serviced despite I being set")
	}
}

// TestNMIDuringCLIScenario verifies that NMI services unconditionally
// even immediately after a CLI, and that control returns to the
// interrupted main flow with I exactly as CLI left it (clear).
func TestNMIDuringCLIScenario(t *testing.T) {
	p := newMachine(0x0600)
	p.Mem.Write(0x0600, 0x58) // CLI
	for i := uint16(0x0601); i < 0x0700; i++ {
		p.Mem.Write(i, 0xEA) // NOP
	}
	p.SetNMIVector(0x0700)
	p.Mem.Write(0x0700, 0xA9) // LDA #$AA
	p.Mem.Write(0x0701, 0xAA)
	p.Mem.Write(0x0702, 0x8D) // STA $0400
	p.Mem.Write(0x0703, 0x00)
	p.Mem.Write(0x0704, 0x04)
	p.Mem.Write(0x0705, 0x40) // RTI

	p.Step() // CLI; I now clear
	if p.P&cpu.P_INTERRUPT != 0 {
		t.Fatalf("I flag still set after CLI")
	}
	mainFlowPC := p.PC

	p.TriggerNMI()
	p.Step() // service NMI -> PC = 0700
	if p.PC != 0x0700 {
		t.Fatalf("PC = %04X, want 0700 after NMI entry", p.PC)
	}
	p.Step() // LDA #$AA
	p.Step() // STA $0400
	if got := p.Mem.Read(0x0400); got != 0xAA {
		t.Errorf("mem[0400] = %02X, want AA", got)
	}
	p.Step() // RTI

	if p.PC != mainFlowPC {
		t.Errorf("PC after RTI = %04X, want %04X (back in main NOP loop)", p.PC, mainFlowPC)
	}
	if p.P&cpu.P_INTERRUPT != 0 {
		t.Errorf("I flag set after returning from NMI, want clear (as CLI left it)")
	}
}

// TestBRKSkipScenario verifies BRK pushes PC+1 (skipping its phantom
// operand byte), sets B=1 in the pushed copy of P, and that the
// subsequent RTI returns exactly to that pushed address.
func TestBRKSkipScenario(t *testing.T) {
	p := newMachine(0x0600)
	p.Mem.Write(0x0600, 0x00) // BRK
	p.Mem.Write(0x0601, 0xAA) // phantom operand byte, never executed
	p.SetIRQVector(0x0650)
	p.Mem.Write(0x0650, 0x40) // RTI

	p.Step() // BRK
	if p.PC != 0x0650 {
		t.Fatalf("PC = %04X, want 0650", p.PC)
	}
	if pushedP := p.Mem.Read(0x0100 + uint16(p.SP) + 1); pushedP&cpu.P_B == 0 {
		t.Errorf("pushed P = %02X, want B set", pushedP)
	}

	p.Step() // RTI
	if p.PC != 0x0602 {
		t.Errorf("PC after RTI = %04X, want 0602", p.PC)
	}
}
