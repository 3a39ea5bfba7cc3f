// Package cpu implements an instruction-accurate interpreter for the subset
// of the MOS 6502 instruction set described by this repository: the 256-entry
// opcode table, the thirteen addressing modes, and the flag semantics of
// every documented instruction except BRK. It does not model cycle timing,
// interrupt lines, bus signals, decimal-mode arithmetic, or illegal opcodes.
package cpu

// CPU is the full, owned machine state: three 8-bit registers, an 8-bit
// stack pointer, a 16-bit program counter, the status byte, and a 64 KiB
// memory image. There is no aliasing: Memory is a value field, not a
// pointer to something shared elsewhere.
type CPU struct {
	A, X, Y uint8
	S       uint8
	PC      uint16
	P       Flags
	Memory  Memory
}

// New returns a fresh CPU: A = X = Y = 0, S = 0xff, PC = 0, P = 0, and a
// zeroed 64 KiB memory image.
func New() *CPU {
	c := &CPU{}
	Reset(c)
	return c
}

// Reset restores registers to their construction-time values. Memory is left
// untouched — this is a register reset, not a fresh machine.
func Reset(c *CPU) {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.S = 0xff
	c.PC = 0
	c.P = 0
}

// SetPC assigns the program counter directly. Used by loaders to start
// execution somewhere other than address 0.
func SetPC(c *CPU, value uint16) {
	c.PC = value
}

// PatchMemory overwrites len(data) bytes of c's memory starting at offset.
// It exists for loaders and tests; it is never called mid-instruction.
func PatchMemory(c *CPU, offset uint16, data []byte) {
	c.Memory.Patch(offset, data)
}

// Step executes exactly one instruction: fetch the opcode at PC, advance PC
// past it, look up (mnemonic, mode) in the decode table, and invoke the
// handler. The handler resolves its own operand and performs its effect;
// Step then advances PC by the mode's operand-byte count, unless the
// mnemonic is part of the jump/branch/call/return family, which assigns PC
// directly and whose advance Step must not repeat.
//
// Step returns a non-nil *ExecutionError on any fatal condition (§7): an
// opcode with no decode-table entry, BRK, ADC/SBC with the D flag set, or a
// handler's own addressing-mode guard tripping. There is no recovery; the
// caller (Run, or a driver loop) must stop calling Step once it returns an
// error.
func (c *CPU) Step() error {
	pc := c.PC
	opcode := c.Memory.Read(pc)
	c.PC++

	e := decodeTable[opcode]
	if e == nil {
		return &ExecutionError{Kind: UnknownOpcode, PC: pc, Opcode: opcode}
	}

	if err := e.handler(c, e.mode); err != nil {
		if ee, ok := err.(*ExecutionError); ok {
			ee.PC = pc
			ee.Opcode = opcode
			ee.Mnemonic = e.mnemonic
			ee.Mode = e.mode
			return ee
		}
		return err
	}

	if !isControlFlow(e.mnemonic) {
		c.PC += operandBytes[e.mode]
	}

	return nil
}

// Run steps the CPU until Step returns an error, and returns that error.
func Run(c *CPU) error {
	for {
		if err := c.Step(); err != nil {
			return err
		}
	}
}
