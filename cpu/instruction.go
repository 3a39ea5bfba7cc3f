package cpu

// Mnemonic names an instruction handler, independent of addressing mode or
// opcode byte. The decode table maps an opcode to a (Mnemonic, AddressingMode)
// pair plus the handler that implements it.
type Mnemonic string

const (
	ADC Mnemonic = "ADC"
	AND Mnemonic = "AND"
	ASL Mnemonic = "ASL"
	BCC Mnemonic = "BCC"
	BCS Mnemonic = "BCS"
	BEQ Mnemonic = "BEQ"
	BIT Mnemonic = "BIT"
	BMI Mnemonic = "BMI"
	BNE Mnemonic = "BNE"
	BPL Mnemonic = "BPL"
	BRK Mnemonic = "BRK"
	BVC Mnemonic = "BVC"
	BVS Mnemonic = "BVS"
	CLC Mnemonic = "CLC"
	CLD Mnemonic = "CLD"
	CLI Mnemonic = "CLI"
	CLV Mnemonic = "CLV"
	CMP Mnemonic = "CMP"
	CPX Mnemonic = "CPX"
	CPY Mnemonic = "CPY"
	DEC Mnemonic = "DEC"
	DEX Mnemonic = "DEX"
	DEY Mnemonic = "DEY"
	EOR Mnemonic = "EOR"
	INC Mnemonic = "INC"
	INX Mnemonic = "INX"
	INY Mnemonic = "INY"
	JMP Mnemonic = "JMP"
	JSR Mnemonic = "JSR"
	LDA Mnemonic = "LDA"
	LDX Mnemonic = "LDX"
	LDY Mnemonic = "LDY"
	LSR Mnemonic = "LSR"
	NOP Mnemonic = "NOP"
	ORA Mnemonic = "ORA"
	PHA Mnemonic = "PHA"
	PHP Mnemonic = "PHP"
	PLA Mnemonic = "PLA"
	PLP Mnemonic = "PLP"
	ROL Mnemonic = "ROL"
	ROR Mnemonic = "ROR"
	RTI Mnemonic = "RTI"
	RTS Mnemonic = "RTS"
	SBC Mnemonic = "SBC"
	SEC Mnemonic = "SEC"
	SED Mnemonic = "SED"
	SEI Mnemonic = "SEI"
	STA Mnemonic = "STA"
	STX Mnemonic = "STX"
	STY Mnemonic = "STY"
	TAX Mnemonic = "TAX"
	TAY Mnemonic = "TAY"
	TSX Mnemonic = "TSX"
	TXA Mnemonic = "TXA"
	TXS Mnemonic = "TXS"
	TYA Mnemonic = "TYA"
)

// handlerFunc is an instruction handler: it resolves its own operand via
// CPU.resolve, performs its effect, and updates flags. It never advances PC
// itself, except for the jump/branch/call/return family (see isControlFlow),
// which assign PC directly.
type handlerFunc func(c *CPU, mode AddressingMode) error

// decodeEntry is one row of the 256-entry decode table.
type decodeEntry struct {
	mnemonic Mnemonic
	mode     AddressingMode
	handler  handlerFunc
}

// decodeTable is a build-time constant: populated once in init and never
// mutated afterward. A nil entry means the opcode has no instruction in
// scope (UnknownOpcode).
var decodeTable [256]*decodeEntry

func entry(opcode uint8, m Mnemonic, mode AddressingMode, h handlerFunc) {
	decodeTable[opcode] = &decodeEntry{mnemonic: m, mode: mode, handler: h}
}

// controlFlowMnemonics are the instructions that assign PC directly instead
// of letting the dispatcher advance it by the mode's operand-byte count.
var controlFlowMnemonics = map[Mnemonic]bool{
	JMP: true, JSR: true, RTS: true, RTI: true,
	BCC: true, BCS: true, BEQ: true, BNE: true,
	BMI: true, BPL: true, BVC: true, BVS: true,
}

func isControlFlow(m Mnemonic) bool {
	return controlFlowMnemonics[m]
}

func init() {
	// ADC
	entry(0x69, ADC, Immediate, opADC)
	entry(0x65, ADC, ZeroPage, opADC)
	entry(0x75, ADC, ZeroPageX, opADC)
	entry(0x6d, ADC, Absolute, opADC)
	entry(0x7d, ADC, AbsoluteX, opADC)
	entry(0x79, ADC, AbsoluteY, opADC)
	entry(0x61, ADC, ZeroPageXIndirect, opADC)
	entry(0x71, ADC, ZeroPageIndirectY, opADC)

	// AND
	entry(0x29, AND, Immediate, opAND)
	entry(0x25, AND, ZeroPage, opAND)
	entry(0x35, AND, ZeroPageX, opAND)
	entry(0x2d, AND, Absolute, opAND)
	entry(0x3d, AND, AbsoluteX, opAND)
	entry(0x39, AND, AbsoluteY, opAND)
	entry(0x21, AND, ZeroPageXIndirect, opAND)
	entry(0x31, AND, ZeroPageIndirectY, opAND)

	// ASL
	entry(0x0a, ASL, Accumulator, opASL)
	entry(0x06, ASL, ZeroPage, opASL)
	entry(0x16, ASL, ZeroPageX, opASL)
	entry(0x0e, ASL, Absolute, opASL)
	entry(0x1e, ASL, AbsoluteX, opASL)

	// branches
	entry(0x90, BCC, Relative, opBCC)
	entry(0xb0, BCS, Relative, opBCS)
	entry(0xf0, BEQ, Relative, opBEQ)
	entry(0x30, BMI, Relative, opBMI)
	entry(0xd0, BNE, Relative, opBNE)
	entry(0x10, BPL, Relative, opBPL)
	entry(0x50, BVC, Relative, opBVC)
	entry(0x70, BVS, Relative, opBVS)

	// BIT
	entry(0x24, BIT, ZeroPage, opBIT)
	entry(0x2c, BIT, Absolute, opBIT)

	// BRK: decoded, but deliberately out of scope.
	entry(0x00, BRK, Implied, opBRK)

	// flag set/clear
	entry(0x18, CLC, Implied, opCLC)
	entry(0xd8, CLD, Implied, opCLD)
	entry(0x58, CLI, Implied, opCLI)
	entry(0xb8, CLV, Implied, opCLV)
	entry(0x38, SEC, Implied, opSEC)
	entry(0xf8, SED, Implied, opSED)
	entry(0x78, SEI, Implied, opSEI)

	// CMP
	entry(0xc9, CMP, Immediate, opCMP)
	entry(0xc5, CMP, ZeroPage, opCMP)
	entry(0xd5, CMP, ZeroPageX, opCMP)
	entry(0xcd, CMP, Absolute, opCMP)
	entry(0xdd, CMP, AbsoluteX, opCMP)
	entry(0xd9, CMP, AbsoluteY, opCMP)
	entry(0xc1, CMP, ZeroPageXIndirect, opCMP)
	entry(0xd1, CMP, ZeroPageIndirectY, opCMP)

	// CPX / CPY
	entry(0xe0, CPX, Immediate, opCPX)
	entry(0xe4, CPX, ZeroPage, opCPX)
	entry(0xec, CPX, Absolute, opCPX)
	entry(0xc0, CPY, Immediate, opCPY)
	entry(0xc4, CPY, ZeroPage, opCPY)
	entry(0xcc, CPY, Absolute, opCPY)

	// DEC / DEX / DEY
	entry(0xc6, DEC, ZeroPage, opDEC)
	entry(0xd6, DEC, ZeroPageX, opDEC)
	entry(0xce, DEC, Absolute, opDEC)
	entry(0xde, DEC, AbsoluteX, opDEC)
	entry(0xca, DEX, Implied, opDEX)
	entry(0x88, DEY, Implied, opDEY)

	// EOR
	entry(0x49, EOR, Immediate, opEOR)
	entry(0x45, EOR, ZeroPage, opEOR)
	entry(0x55, EOR, ZeroPageX, opEOR)
	entry(0x4d, EOR, Absolute, opEOR)
	entry(0x5d, EOR, AbsoluteX, opEOR)
	entry(0x59, EOR, AbsoluteY, opEOR)
	entry(0x41, EOR, ZeroPageXIndirect, opEOR)
	entry(0x51, EOR, ZeroPageIndirectY, opEOR)

	// INC / INX / INY
	entry(0xe6, INC, ZeroPage, opINC)
	entry(0xf6, INC, ZeroPageX, opINC)
	entry(0xee, INC, Absolute, opINC)
	entry(0xfe, INC, AbsoluteX, opINC)
	entry(0xe8, INX, Implied, opINX)
	entry(0xc8, INY, Implied, opINY)

	// JMP / JSR
	entry(0x4c, JMP, Absolute, opJMP)
	entry(0x6c, JMP, AbsoluteIndirect, opJMP)
	entry(0x20, JSR, Absolute, opJSR)

	// LDA / LDX / LDY
	entry(0xa9, LDA, Immediate, opLDA)
	entry(0xa5, LDA, ZeroPage, opLDA)
	entry(0xb5, LDA, ZeroPageX, opLDA)
	entry(0xad, LDA, Absolute, opLDA)
	entry(0xbd, LDA, AbsoluteX, opLDA)
	entry(0xb9, LDA, AbsoluteY, opLDA)
	entry(0xa1, LDA, ZeroPageXIndirect, opLDA)
	entry(0xb1, LDA, ZeroPageIndirectY, opLDA)

	entry(0xa2, LDX, Immediate, opLDX)
	entry(0xa6, LDX, ZeroPage, opLDX)
	entry(0xb6, LDX, ZeroPageY, opLDX)
	entry(0xae, LDX, Absolute, opLDX)
	entry(0xbe, LDX, AbsoluteY, opLDX)

	entry(0xa0, LDY, Immediate, opLDY)
	entry(0xa4, LDY, ZeroPage, opLDY)
	entry(0xb4, LDY, ZeroPageX, opLDY)
	entry(0xac, LDY, Absolute, opLDY)
	entry(0xbc, LDY, AbsoluteX, opLDY)

	// LSR
	entry(0x4a, LSR, Accumulator, opLSR)
	entry(0x46, LSR, ZeroPage, opLSR)
	entry(0x56, LSR, ZeroPageX, opLSR)
	entry(0x4e, LSR, Absolute, opLSR)
	entry(0x5e, LSR, AbsoluteX, opLSR)

	// NOP
	entry(0xea, NOP, Implied, opNOP)

	// ORA
	entry(0x09, ORA, Immediate, opORA)
	entry(0x05, ORA, ZeroPage, opORA)
	entry(0x15, ORA, ZeroPageX, opORA)
	entry(0x0d, ORA, Absolute, opORA)
	entry(0x1d, ORA, AbsoluteX, opORA)
	entry(0x19, ORA, AbsoluteY, opORA)
	entry(0x01, ORA, ZeroPageXIndirect, opORA)
	entry(0x11, ORA, ZeroPageIndirectY, opORA)

	// stack
	entry(0x48, PHA, Implied, opPHA)
	entry(0x08, PHP, Implied, opPHP)
	entry(0x68, PLA, Implied, opPLA)
	entry(0x28, PLP, Implied, opPLP)

	// ROL / ROR
	entry(0x2a, ROL, Accumulator, opROL)
	entry(0x26, ROL, ZeroPage, opROL)
	entry(0x36, ROL, ZeroPageX, opROL)
	entry(0x2e, ROL, Absolute, opROL)
	entry(0x3e, ROL, AbsoluteX, opROL)

	entry(0x6a, ROR, Accumulator, opROR)
	entry(0x66, ROR, ZeroPage, opROR)
	entry(0x76, ROR, ZeroPageX, opROR)
	entry(0x6e, ROR, Absolute, opROR)
	entry(0x7e, ROR, AbsoluteX, opROR)

	// RTI / RTS
	entry(0x40, RTI, Implied, opRTI)
	entry(0x60, RTS, Implied, opRTS)

	// SBC
	entry(0xe9, SBC, Immediate, opSBC)
	entry(0xe5, SBC, ZeroPage, opSBC)
	entry(0xf5, SBC, ZeroPageX, opSBC)
	entry(0xed, SBC, Absolute, opSBC)
	entry(0xfd, SBC, AbsoluteX, opSBC)
	entry(0xf9, SBC, AbsoluteY, opSBC)
	entry(0xe1, SBC, ZeroPageXIndirect, opSBC)
	entry(0xf1, SBC, ZeroPageIndirectY, opSBC)

	// STA / STX / STY
	entry(0x85, STA, ZeroPage, opSTA)
	entry(0x95, STA, ZeroPageX, opSTA)
	entry(0x8d, STA, Absolute, opSTA)
	entry(0x9d, STA, AbsoluteX, opSTA)
	entry(0x99, STA, AbsoluteY, opSTA)
	entry(0x81, STA, ZeroPageXIndirect, opSTA)
	entry(0x91, STA, ZeroPageIndirectY, opSTA)

	entry(0x86, STX, ZeroPage, opSTX)
	entry(0x96, STX, ZeroPageY, opSTX)
	entry(0x8e, STX, Absolute, opSTX)

	entry(0x84, STY, ZeroPage, opSTY)
	entry(0x94, STY, ZeroPageX, opSTY)
	entry(0x8c, STY, Absolute, opSTY)

	// transfers
	entry(0xaa, TAX, Implied, opTAX)
	entry(0xa8, TAY, Implied, opTAY)
	entry(0xba, TSX, Implied, opTSX)
	entry(0x8a, TXA, Implied, opTXA)
	entry(0x9a, TXS, Implied, opTXS)
	entry(0x98, TYA, Implied, opTYA)
}
