package cpu

// Flags is the 8-bit processor status register (P).
//
//	7654 3210
//	NV_B DIZC
//
// Bit 5 is unused and no instruction sets it on its own; no instruction in
// scope sets bit 4 (B) on its own either (BRK, the only instruction that
// sets it on real hardware, is out of scope). PLP copies all eight bits from
// the stack byte, so both bits hold whatever that byte held.
type Flags uint8

const (
	FlagCarry            Flags = 1 << iota // bit 0
	FlagZero                               // bit 1
	FlagInterruptDisable                   // bit 2
	FlagDecimal                            // bit 3
	FlagBreak                              // bit 4
	FlagUnused                             // bit 5
	FlagOverflow                           // bit 6
	FlagNegative                           // bit 7
)

func (p Flags) has(f Flags) bool {
	return p&f != 0
}

func (p *Flags) setBit(f Flags, v bool) {
	if v {
		*p |= f
	} else {
		*p &^= f
	}
}

func (c *CPU) IsCarry() bool            { return c.P.has(FlagCarry) }
func (c *CPU) IsZero() bool             { return c.P.has(FlagZero) }
func (c *CPU) IsInterruptDisable() bool { return c.P.has(FlagInterruptDisable) }
func (c *CPU) IsDecimal() bool          { return c.P.has(FlagDecimal) }
func (c *CPU) IsOverflow() bool         { return c.P.has(FlagOverflow) }
func (c *CPU) IsNegative() bool         { return c.P.has(FlagNegative) }

func (c *CPU) SetCarry(v bool)            { c.P.setBit(FlagCarry, v) }
func (c *CPU) SetZero(v bool)             { c.P.setBit(FlagZero, v) }
func (c *CPU) SetInterruptDisable(v bool) { c.P.setBit(FlagInterruptDisable, v) }
func (c *CPU) SetDecimal(v bool)          { c.P.setBit(FlagDecimal, v) }
func (c *CPU) SetOverflow(v bool)         { c.P.setBit(FlagOverflow, v) }
func (c *CPU) SetNegative(v bool)         { c.P.setBit(FlagNegative, v) }

// UpdateNZ sets N from bit 7 of value and Z from value == 0. It is the
// single helper shared by every instruction that only touches those two
// flags (loads, transfers, logical ops, shifts, increments...).
func (c *CPU) UpdateNZ(value uint8) {
	c.SetNegative(value&0x80 != 0)
	c.SetZero(value == 0)
}
