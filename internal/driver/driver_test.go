package driver

import (
	"testing"

	"github.com/halden/mos6502/cpu"
	"github.com/halden/mos6502/internal/logger"
)

func newTestDriver(program []byte) *Driver {
	c := cpu.New()
	cpu.PatchMemory(c, 0, program)
	return New(c, logger.New(logger.LevelOff, nil))
}

func TestDriverRunsUntilError(t *testing.T) {
	d := newTestDriver([]byte{0xea, 0xea, 0x02}) // NOP, NOP, undecoded
	halt, err := d.Run()
	if halt != HaltError {
		t.Errorf("halt = %v, want HaltError", halt)
	}
	if err == nil {
		t.Error("expected a non-nil error")
	}
	if d.TotalSteps() != 2 {
		t.Errorf("TotalSteps = %d, want 2", d.TotalSteps())
	}
	if d.Halt() != HaltError {
		t.Errorf("Halt() = %v, want HaltError", d.Halt())
	}
}

func TestDriverStopsAtStopAddress(t *testing.T) {
	d := newTestDriver([]byte{0xea, 0xea, 0xea, 0xea})
	d.StopAt(2)
	halt, err := d.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if halt != HaltSuccess {
		t.Errorf("halt = %v, want HaltSuccess", halt)
	}
	if d.CPU.PC != 2 {
		t.Errorf("PC = %d, want 2 (stopped before executing the instruction there)", d.CPU.PC)
	}
	if d.TotalSteps() != 2 {
		t.Errorf("TotalSteps = %d, want 2", d.TotalSteps())
	}
}

func TestDriverDetectsTraps(t *testing.T) {
	// JMP $0000: an instant, infinite self-loop.
	d := newTestDriver([]byte{0x4c, 0x00, 0x00})
	d.EnableTrapDetection(true)
	halt, err := d.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if halt != HaltTrap {
		t.Errorf("halt = %v, want HaltTrap", halt)
	}
}

func TestDriverWithoutTrapDetectionRunsForeverUnlessStopped(t *testing.T) {
	d := newTestDriver([]byte{0x4c, 0x00, 0x00})
	d.StopAt(0x0500) // never reached, but bounds the test via step count instead
	steps := 0
	for steps < 1000 {
		halt, err := d.Step()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if halt != Continue {
			t.Fatalf("halt = %v after %d steps, want Continue (stop address never reached)", halt, steps)
		}
		steps++
	}
}

func TestHaltStringsAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, h := range []Halt{Continue, HaltSuccess, HaltTrap, HaltError} {
		s := h.String()
		if s == "" {
			t.Errorf("Halt(%d).String() is empty", h)
		}
		if seen[s] {
			t.Errorf("Halt(%d).String() = %q, duplicate of another Halt value", h, s)
		}
		seen[s] = true
	}
}
