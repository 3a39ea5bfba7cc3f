package cpu

// opADC: A + M + C -> A, C. Binary mode only; decimal mode is out of scope.
func opADC(c *CPU, mode AddressingMode) error {
	if c.IsDecimal() {
		return &ExecutionError{Kind: DecimalModeNotSupported}
	}
	op := c.resolve(mode)
	m := c.value(op)
	return c.adcBinary(m)
}

// adcBinary performs the documented ADC semantics given an already-resolved
// right-hand operand. SBC reuses it with the operand's one's complement,
// per the standard ADC/SBC equivalence.
func (c *CPU) adcBinary(m uint8) error {
	var carryIn uint16
	if c.IsCarry() {
		carryIn = 1
	}
	a := c.A
	sum := uint16(a) + uint16(m) + carryIn
	c.A = uint8(sum)
	c.SetCarry(sum > 0xff)
	c.UpdateNZ(c.A)
	c.SetOverflow((^(a ^ m))&(a^c.A)&0x80 != 0)
	return nil
}

// opSBC: A - M - (1 - C) -> A, C (C means "no borrow" afterward).
// Implemented as ADC(M XOR 0xFF, same carry-in), the standard equivalence.
func opSBC(c *CPU, mode AddressingMode) error {
	if c.IsDecimal() {
		return &ExecutionError{Kind: DecimalModeNotSupported}
	}
	op := c.resolve(mode)
	m := c.value(op)
	return c.adcBinary(m ^ 0xff)
}

func opAND(c *CPU, mode AddressingMode) error {
	op := c.resolve(mode)
	c.A &= c.value(op)
	c.UpdateNZ(c.A)
	return nil
}

func opEOR(c *CPU, mode AddressingMode) error {
	op := c.resolve(mode)
	c.A ^= c.value(op)
	c.UpdateNZ(c.A)
	return nil
}

func opORA(c *CPU, mode AddressingMode) error {
	op := c.resolve(mode)
	c.A |= c.value(op)
	c.UpdateNZ(c.A)
	return nil
}

// isShiftableMode reports whether mode is a valid operand location for the
// shift/rotate/inc/dec family (accumulator or a writable memory location).
func isShiftableMode(mode AddressingMode) bool {
	switch mode {
	case Accumulator, ZeroPage, ZeroPageX, Absolute, AbsoluteX:
		return true
	default:
		return false
	}
}

func opASL(c *CPU, mode AddressingMode) error {
	if !isShiftableMode(mode) {
		return &ExecutionError{Kind: BadAddressingMode}
	}
	op := c.resolve(mode)
	v := c.value(op)
	result := uint16(v) << 1
	c.store(op, uint8(result))
	c.UpdateNZ(uint8(result))
	c.SetCarry(result > 0xff)
	return nil
}

func opLSR(c *CPU, mode AddressingMode) error {
	if !isShiftableMode(mode) {
		return &ExecutionError{Kind: BadAddressingMode}
	}
	op := c.resolve(mode)
	v := c.value(op)
	c.SetCarry(v&0x01 != 0)
	result := v >> 1
	c.store(op, result)
	c.SetNegative(false)
	c.SetZero(result == 0)
	return nil
}

func opROL(c *CPU, mode AddressingMode) error {
	if !isShiftableMode(mode) {
		return &ExecutionError{Kind: BadAddressingMode}
	}
	op := c.resolve(mode)
	v := c.value(op)
	var carryIn uint16
	if c.IsCarry() {
		carryIn = 1
	}
	result := uint16(v)<<1 | carryIn
	c.store(op, uint8(result))
	c.SetCarry(v&0x80 != 0)
	c.UpdateNZ(uint8(result))
	return nil
}

func opROR(c *CPU, mode AddressingMode) error {
	if !isShiftableMode(mode) {
		return &ExecutionError{Kind: BadAddressingMode}
	}
	op := c.resolve(mode)
	v := c.value(op)
	var carryIn uint8
	if c.IsCarry() {
		carryIn = 0x80
	}
	result := (v >> 1) | carryIn
	c.store(op, result)
	c.SetCarry(v&0x01 != 0)
	c.UpdateNZ(result)
	return nil
}

// opBIT: Z from A & M, N and V copied straight from bits 7 and 6 of M. A
// itself is never modified.
func opBIT(c *CPU, mode AddressingMode) error {
	op := c.resolve(mode)
	m := c.value(op)
	c.SetZero(c.A&m == 0)
	c.SetNegative(m&0x80 != 0)
	c.SetOverflow(m&0x40 != 0)
	return nil
}

func compare(c *CPU, reg uint8, mode AddressingMode) error {
	op := c.resolve(mode)
	m := c.value(op)
	result := reg - m
	c.SetCarry(reg >= m)
	c.SetZero(reg == m)
	c.SetNegative(result&0x80 != 0)
	return nil
}

func opCMP(c *CPU, mode AddressingMode) error { return compare(c, c.A, mode) }
func opCPX(c *CPU, mode AddressingMode) error { return compare(c, c.X, mode) }
func opCPY(c *CPU, mode AddressingMode) error { return compare(c, c.Y, mode) }

func opINC(c *CPU, mode AddressingMode) error {
	op := c.resolve(mode)
	result := c.value(op) + 1
	c.store(op, result)
	c.UpdateNZ(result)
	return nil
}

func opDEC(c *CPU, mode AddressingMode) error {
	op := c.resolve(mode)
	result := c.value(op) - 1
	c.store(op, result)
	c.UpdateNZ(result)
	return nil
}

func opINX(c *CPU, _ AddressingMode) error { c.X++; c.UpdateNZ(c.X); return nil }
func opINY(c *CPU, _ AddressingMode) error { c.Y++; c.UpdateNZ(c.Y); return nil }
func opDEX(c *CPU, _ AddressingMode) error { c.X--; c.UpdateNZ(c.X); return nil }
func opDEY(c *CPU, _ AddressingMode) error { c.Y--; c.UpdateNZ(c.Y); return nil }

func opLDA(c *CPU, mode AddressingMode) error {
	op := c.resolve(mode)
	c.A = c.value(op)
	c.UpdateNZ(c.A)
	return nil
}

func opLDX(c *CPU, mode AddressingMode) error {
	op := c.resolve(mode)
	c.X = c.value(op)
	c.UpdateNZ(c.X)
	return nil
}

func opLDY(c *CPU, mode AddressingMode) error {
	op := c.resolve(mode)
	c.Y = c.value(op)
	c.UpdateNZ(c.Y)
	return nil
}

func opSTA(c *CPU, mode AddressingMode) error {
	op := c.resolve(mode)
	c.store(op, c.A)
	return nil
}

func opSTX(c *CPU, mode AddressingMode) error {
	op := c.resolve(mode)
	c.store(op, c.X)
	return nil
}

func opSTY(c *CPU, mode AddressingMode) error {
	op := c.resolve(mode)
	c.store(op, c.Y)
	return nil
}

func opTAX(c *CPU, _ AddressingMode) error { c.X = c.A; c.UpdateNZ(c.X); return nil }
func opTAY(c *CPU, _ AddressingMode) error { c.Y = c.A; c.UpdateNZ(c.Y); return nil }
func opTSX(c *CPU, _ AddressingMode) error { c.X = c.S; c.UpdateNZ(c.X); return nil }
func opTXA(c *CPU, _ AddressingMode) error { c.A = c.X; c.UpdateNZ(c.A); return nil }
func opTYA(c *CPU, _ AddressingMode) error { c.A = c.Y; c.UpdateNZ(c.A); return nil }

// opTXS: S <- X, no flag update.
func opTXS(c *CPU, _ AddressingMode) error {
	c.S = c.X
	return nil
}

func opPHA(c *CPU, _ AddressingMode) error { c.push8(c.A); return nil }
func opPHP(c *CPU, _ AddressingMode) error { c.push8(uint8(c.P)); return nil }

func opPLA(c *CPU, _ AddressingMode) error {
	c.A = c.pop8()
	c.UpdateNZ(c.A)
	return nil
}

func opPLP(c *CPU, _ AddressingMode) error {
	c.P = Flags(c.pop8())
	return nil
}

func opCLC(c *CPU, _ AddressingMode) error { c.SetCarry(false); return nil }
func opCLD(c *CPU, _ AddressingMode) error { c.SetDecimal(false); return nil }
func opCLI(c *CPU, _ AddressingMode) error { c.SetInterruptDisable(false); return nil }
func opCLV(c *CPU, _ AddressingMode) error { c.SetOverflow(false); return nil }
func opSEC(c *CPU, _ AddressingMode) error { c.SetCarry(true); return nil }
func opSED(c *CPU, _ AddressingMode) error { c.SetDecimal(true); return nil }
func opSEI(c *CPU, _ AddressingMode) error { c.SetInterruptDisable(true); return nil }

func opNOP(c *CPU, _ AddressingMode) error { return nil }

// branch evaluates taken against the operand resolved in Relative mode: if
// true, PC becomes the two-byte absolute target this design's Relative mode
// resolves to; otherwise PC skips the two operand bytes. Either way PC is
// assigned directly, which is why every branch mnemonic is in
// controlFlowMnemonics.
func branch(c *CPU, taken bool) error {
	op := c.resolve(Relative)
	if taken {
		c.PC = op.address
	} else {
		c.PC += operandBytes[Relative]
	}
	return nil
}

func opBCC(c *CPU, _ AddressingMode) error { return branch(c, !c.IsCarry()) }
func opBCS(c *CPU, _ AddressingMode) error { return branch(c, c.IsCarry()) }
func opBEQ(c *CPU, _ AddressingMode) error { return branch(c, c.IsZero()) }
func opBNE(c *CPU, _ AddressingMode) error { return branch(c, !c.IsZero()) }
func opBMI(c *CPU, _ AddressingMode) error { return branch(c, c.IsNegative()) }
func opBPL(c *CPU, _ AddressingMode) error { return branch(c, !c.IsNegative()) }
func opBVC(c *CPU, _ AddressingMode) error { return branch(c, !c.IsOverflow()) }
func opBVS(c *CPU, _ AddressingMode) error { return branch(c, c.IsOverflow()) }

func opJMP(c *CPU, mode AddressingMode) error {
	op := c.resolve(mode)
	c.PC = op.address
	return nil
}

// opJSR pushes the address of its own last operand byte (PC currently points
// at the first of its two operand bytes), then jumps.
func opJSR(c *CPU, mode AddressingMode) error {
	op := c.resolve(mode)
	c.push16(c.PC + 1)
	c.PC = op.address
	return nil
}

func opRTS(c *CPU, _ AddressingMode) error {
	c.PC = c.pop16() + 1
	return nil
}

// opRTI pulls P, then PC, then increments PC by one. The real 6502 does not
// add that trailing one; this design does, per spec §4.5/§9.
func opRTI(c *CPU, _ AddressingMode) error {
	c.P = Flags(c.pop8())
	c.PC = c.pop16() + 1
	return nil
}

// opBRK is decoded but out of scope: BRK always fails execution rather than
// pushing PC/P and vectoring through the IRQ vector.
func opBRK(c *CPU, _ AddressingMode) error {
	return &ExecutionError{Kind: UnsupportedInstruction}
}
