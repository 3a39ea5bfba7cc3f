// Command mos6502tui is a full-screen dashboard over the interpreter: a
// memory page grid, a register/flag panel, and the disassembly of the next
// instruction, stepped one instruction at a time with the space bar. It is
// the bubbletea/lipgloss counterpart to cmd/mos6502's termbox debugger.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/halden/mos6502/cpu"
	"github.com/halden/mos6502/internal/driver"
	"github.com/halden/mos6502/internal/dump"
	"github.com/halden/mos6502/internal/logger"
)

func main() {
	romPath := flag.String("rom", "", "path to the binary image")
	start := flag.Uint("start", 0, "start address")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "usage: mos6502tui -rom <path> [-start addr]")
		os.Exit(1)
	}

	image, err := os.ReadFile(*romPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(image) > 0x10000 {
		fmt.Fprintln(os.Stderr, "ROM too large")
		os.Exit(1)
	}

	machine := cpu.New()
	cpu.PatchMemory(machine, 0, image)
	cpu.SetPC(machine, uint16(*start))

	d := driver.New(machine, logger.New(logger.LevelOff, nil))

	m := model{driver: d, offset: uint16(*start)}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type model struct {
	driver *driver.Driver
	offset uint16 // first page shown, independent of where PC currently is
	err    error
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			if _, err := m.driver.Step(); err != nil {
				m.err = err
				return m, nil
			}
		}
	}
	return m, nil
}

func (m model) status() string {
	c := m.driver.CPU
	return fmt.Sprintf(
		"pc: %#04x\n a: %#02x\n x: %#02x\n y: %#02x\n s: %#02x\n\nN V _ B D I Z C\n%s\n\nsteps: %d\nhalt: %s",
		c.PC, c.A, c.X, c.Y, c.S,
		flagRow(c),
		m.driver.TotalSteps(),
		m.driver.Halt(),
	)
}

func flagRow(c *cpu.CPU) string {
	bits := []bool{
		c.IsNegative(), c.IsOverflow(), false, c.P&cpu.FlagBreak != 0,
		c.IsDecimal(), c.IsInterruptDisable(), c.IsZero(), c.IsCarry(),
	}
	row := ""
	for _, b := range bits {
		if b {
			row += "1 "
		} else {
			row += "0 "
		}
	}
	return row
}

func (m model) disassembly() string {
	d, ok := cpu.Disassemble(&m.driver.CPU.Memory, m.driver.CPU.PC)
	if !ok {
		return fmt.Sprintf("$%04x: <undecoded opcode %#02x>", m.driver.CPU.PC, m.driver.CPU.Memory.Read(m.driver.CPU.PC))
	}
	return fmt.Sprintf("$%04x: %s", d.Address, d.Text)
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("halted: %s\n\npress q to quit", m.err)
	}
	memory := dump.MemoryPages(&m.driver.CPU.Memory, m.offset, m.driver.CPU.PC, 8)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, memory, "   ", m.status()),
		"",
		m.disassembly(),
		"",
		"space/j: step    q: quit",
	)
}
