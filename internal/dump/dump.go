// Package dump formats a CPU's registers and memory for human inspection:
// the single-step debugger and the TUI dashboard both build their views on
// top of it.
package dump

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/halden/mos6502/cpu"
)

// registerSnapshot is the plain-data view of a CPU's register file. It
// exists so spew.Sdump prints field names and hex-friendly values instead
// of dumping the live *cpu.CPU (which also carries the full 64 KiB memory
// image — not something anyone wants staring back at them in a dump).
type registerSnapshot struct {
	A, X, Y uint8
	S       uint8
	PC      uint16
	P       cpu.Flags
	Carry, Zero, InterruptDisable, Decimal, Overflow, Negative bool
}

// Registers renders c's registers with spew.Sdump, the same tool
// hejops-gone's debugger and jmchacon-6502's tests reach for whenever a
// struct needs a readable dump instead of a %+v one-liner.
func Registers(c *cpu.CPU) string {
	snap := registerSnapshot{
		A: c.A, X: c.X, Y: c.Y, S: c.S, PC: c.PC, P: c.P,
		Carry:            c.IsCarry(),
		Zero:             c.IsZero(),
		InterruptDisable: c.IsInterruptDisable(),
		Decimal:          c.IsDecimal(),
		Overflow:         c.IsOverflow(),
		Negative:         c.IsNegative(),
	}
	return spew.Sdump(snap)
}

// MemoryPage renders the 16 bytes starting at the start of start's page as
// a single hex line, bracketing the byte at cursor if it falls within the
// page. start is rounded down to a multiple of 16.
func MemoryPage(mem *cpu.Memory, start, cursor uint16) string {
	start -= start % 16
	var b strings.Builder
	fmt.Fprintf(&b, "%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		v := mem.Read(addr)
		if addr == cursor {
			fmt.Fprintf(&b, "[%02x]", v)
		} else {
			fmt.Fprintf(&b, " %02x ", v)
		}
	}
	return b.String()
}

// MemoryPages renders count consecutive pages starting at start, one per
// line, with a header row labeling each column.
func MemoryPages(mem *cpu.Memory, start, cursor uint16, count int) string {
	lines := make([]string, 0, count+1)
	header := "page | "
	for col := 0; col < 16; col++ {
		header += fmt.Sprintf(" %01x  ", col)
	}
	lines = append(lines, header)
	for p := 0; p < count; p++ {
		lines = append(lines, MemoryPage(mem, start+uint16(p*16), cursor))
	}
	return strings.Join(lines, "\n")
}
