// runprog loads a raw 6502 binary into a flat 64 KiB address space and
// runs it until it halts or the -max_cycles budget is used up, printing
// the final register state. It exists
// to exercise the core end to end from the command line without any
// host-embedding concerns - there is no I/O mapping, no display, just
// the fetch-decode-execute loop.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go6502/core/cpu"
	"github.com/go6502/core/memory"
)

var (
	loadAddr   = flag.Uint("load", uint(cpu.DefaultLoadAddress), "Address to load the binary at")
	resetAddr  = flag.Uint("reset", uint(cpu.DefaultLoadAddress), "Address to set the reset vector to before running")
	maxCycles  = flag.Int("max_cycles", 1_000_000, "Stop after this many cycles even if the program never halts")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s <binary>", os.Args[0])
	}

	rom, err := os.ReadFile(flag.Args()[0])
	if err != nil {
		log.Fatalf("Can't read %q: %v", flag.Args()[0], err)
	}

	mem := memory.NewFlat()
	p := cpu.New(mem)
	p.LoadProgram(rom, uint16(*loadAddr))
	p.SetResetVector(uint16(*resetAddr))
	p.Reset()

	consumed := p.Run(*maxCycles)

	fmt.Printf("halted=%v cycles=%d PC=%04X A=%02X X=%02X Y=%02X SP=%02X P=%02X\n",
		p.IsHalted(), consumed, p.PC, p.A, p.X, p.Y, p.SP, p.P)
	if p.IsHalted() {
		fmt.Printf("halt opcode=%02X\n", p.HaltOpcode())
	}
}
