package cpu

import "fmt"

// Disassembled is one decoded instruction: the mnemonic, its addressing
// mode, the raw operand bytes (as a 16-bit value, width depending on mode),
// and a human-readable rendering.
type Disassembled struct {
	Address uint16
	Opcode  uint8

	Mnemonic Mnemonic
	Mode     AddressingMode
	Operand  uint16
	Size     uint16 // total instruction length in bytes, including the opcode

	Text string
}

// Disassemble decodes the single instruction at addr without executing it.
// It returns ok == false if addr holds an opcode with no decode-table entry.
func Disassemble(mem *Memory, addr uint16) (d Disassembled, ok bool) {
	opcode := mem.Read(addr)
	e := decodeTable[opcode]
	if e == nil {
		return Disassembled{}, false
	}

	size := operandBytes[e.mode]
	var operand uint16
	switch size {
	case 1:
		operand = uint16(mem.Read(addr + 1))
	case 2:
		operand = mem.ReadWord(addr + 1)
	}

	d = Disassembled{
		Address:  addr,
		Opcode:   opcode,
		Mnemonic: e.mnemonic,
		Mode:     e.mode,
		Operand:  operand,
		Size:     size + 1,
	}
	d.Text = fmt.Sprintf("%s %s", e.mnemonic, operandText(e.mode, operand))
	return d, true
}

func operandText(mode AddressingMode, operand uint16) string {
	switch mode {
	case Implied:
		return ""
	case Accumulator:
		return "A"
	case Immediate:
		return fmt.Sprintf("#$%02X", operand)
	case Absolute:
		return fmt.Sprintf("$%04X", operand)
	case AbsoluteX:
		return fmt.Sprintf("$%04X,X", operand)
	case AbsoluteY:
		return fmt.Sprintf("$%04X,Y", operand)
	case AbsoluteIndirect:
		return fmt.Sprintf("($%04X)", operand)
	case ZeroPage:
		return fmt.Sprintf("$%02X", operand)
	case ZeroPageX:
		return fmt.Sprintf("$%02X,X", operand)
	case ZeroPageY:
		return fmt.Sprintf("$%02X,Y", operand)
	case ZeroPageXIndirect:
		return fmt.Sprintf("($%02X,X)", operand)
	case ZeroPageIndirectY:
		return fmt.Sprintf("($%02X),Y", operand)
	case Relative:
		return fmt.Sprintf("$%04X", operand)
	default:
		return ""
	}
}
