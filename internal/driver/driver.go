// Package driver wraps cpu.CPU with the step-loop concerns that sit outside
// the instruction set itself: a configurable stop address, the trap
// detector, and logging. Nothing in here belongs in cpu — it consumes the
// core only through cpu.New/SetPC/PatchMemory/Step, the same surface any
// other collaborator would use.
package driver

import (
	"github.com/halden/mos6502/cpu"
	"github.com/halden/mos6502/internal/logger"
)

// Halt names why a run loop stopped.
type Halt int

const (
	// Continue means the driver hasn't stopped; only Step returns it, and
	// only when it just executed an instruction without tripping any stop
	// condition.
	Continue Halt = iota
	HaltSuccess
	HaltTrap
	HaltError
)

func (h Halt) String() string {
	switch h {
	case Continue:
		return "continue"
	case HaltSuccess:
		return "stop address reached"
	case HaltTrap:
		return "trap detected"
	case HaltError:
		return "execution error"
	default:
		return "unknown halt"
	}
}

// Driver runs a *cpu.CPU one instruction at a time, checking the stop
// address and trap detector before each Step.
type Driver struct {
	CPU *cpu.CPU
	Log *logger.Logger

	stopPC     uint16
	stopPCSet  bool
	trapsOn    bool
	trap       trapDetector
	lastHalt   Halt
	totalSteps uint64
}

// New returns a Driver around c. log may be nil; a nil logger discards.
func New(c *cpu.CPU, log *logger.Logger) *Driver {
	if log == nil {
		log = logger.New(logger.LevelOff, nil)
	}
	return &Driver{CPU: c, Log: log}
}

// StopAt arms a stop address: Run/Step halts with HaltSuccess the moment PC
// equals addr, before the instruction there executes.
func (d *Driver) StopAt(addr uint16) {
	d.stopPC = addr
	d.stopPCSet = true
}

// EnableTrapDetection turns on the ring-buffer trap detector.
func (d *Driver) EnableTrapDetection(enabled bool) {
	d.trapsOn = enabled
}

// TotalSteps reports how many instructions Step has successfully executed.
func (d *Driver) TotalSteps() uint64 {
	return d.totalSteps
}

// Halt reports why the driver last stopped. It is Continue until Step or
// Run returns something other than Continue.
func (d *Driver) Halt() Halt {
	return d.lastHalt
}

// Step checks the stop conditions, then executes exactly one instruction if
// none tripped. A tripped stop condition or a CPU execution error leaves
// d.Halt() reporting why; the CPU itself is left exactly where it stopped.
func (d *Driver) Step() (Halt, error) {
	if d.stopPCSet && d.CPU.PC == d.stopPC {
		d.lastHalt = HaltSuccess
		d.Log.Info("reached stop address %#04x after %d steps", d.stopPC, d.totalSteps)
		return HaltSuccess, nil
	}

	if d.trapsOn {
		d.trap.push(d.CPU.PC)
		if d.trap.hasTrap() {
			d.lastHalt = HaltTrap
			d.Log.Error("trap detected at pc %#04x after %d steps", d.CPU.PC, d.totalSteps)
			return HaltTrap, nil
		}
	}

	pc := d.CPU.PC
	if err := d.CPU.Step(); err != nil {
		d.lastHalt = HaltError
		d.Log.Error("%s", err)
		return HaltError, err
	}
	d.totalSteps++
	d.Log.Step("pc=%#04x a=%#02x x=%#02x y=%#02x s=%#02x p=%08b", pc, d.CPU.A, d.CPU.X, d.CPU.Y, d.CPU.S, d.CPU.P)

	d.lastHalt = Continue
	return Continue, nil
}

// Run calls Step until it returns something other than Continue.
func (d *Driver) Run() (Halt, error) {
	for {
		halt, err := d.Step()
		if halt != Continue || err != nil {
			return halt, err
		}
	}
}
