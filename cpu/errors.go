package cpu

import "fmt"

// ErrorKind distinguishes the four fatal conditions the interpreter can hit.
// All of them are terminal: execution does not continue after any of them.
type ErrorKind int

const (
	// UnknownOpcode: the fetched opcode has no decode-table entry.
	UnknownOpcode ErrorKind = iota
	// UnsupportedInstruction: BRK was decoded. It is deliberately out of scope.
	UnsupportedInstruction
	// DecimalModeNotSupported: ADC or SBC executed with the D flag set.
	DecimalModeNotSupported
	// BadAddressingMode: a handler was dispatched with a mode it does not
	// accept. The decode table should make this unreachable; it exists as
	// a guard inside the handler.
	BadAddressingMode
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownOpcode:
		return "unknown opcode"
	case UnsupportedInstruction:
		return "unsupported instruction"
	case DecimalModeNotSupported:
		return "decimal mode not supported"
	case BadAddressingMode:
		return "bad addressing mode"
	default:
		return "unknown error kind"
	}
}

// ExecutionError reports a fatal condition encountered while stepping the
// CPU, along with enough context (PC, the fetched opcode, and the mnemonic/
// mode the decode table resolved, when known) to diagnose it.
type ExecutionError struct {
	Kind     ErrorKind
	PC       uint16
	Opcode   uint8
	Mnemonic Mnemonic
	Mode     AddressingMode
}

func (e *ExecutionError) Error() string {
	if e.Mnemonic == "" {
		return fmt.Sprintf("%s: opcode %#02x at pc %#04x", e.Kind, e.Opcode, e.PC)
	}
	return fmt.Sprintf("%s: %s (%s) opcode %#02x at pc %#04x", e.Kind, e.Mnemonic, e.Mode, e.Opcode, e.PC)
}

// Is allows errors.Is(err, &cpu.ExecutionError{Kind: cpu.UnknownOpcode})
// style checks: two ExecutionErrors match when their kinds are equal.
func (e *ExecutionError) Is(target error) bool {
	other, ok := target.(*ExecutionError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
