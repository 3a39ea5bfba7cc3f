package cpu

import "testing"

func TestFlagAccessorsRoundTrip(t *testing.T) {
	c := New()

	setters := []struct {
		name string
		set  func(bool)
		get  func() bool
	}{
		{"carry", c.SetCarry, c.IsCarry},
		{"zero", c.SetZero, c.IsZero},
		{"interrupt disable", c.SetInterruptDisable, c.IsInterruptDisable},
		{"decimal", c.SetDecimal, c.IsDecimal},
		{"overflow", c.SetOverflow, c.IsOverflow},
		{"negative", c.SetNegative, c.IsNegative},
	}

	for _, s := range setters {
		s.set(true)
		if !s.get() {
			t.Errorf("%s: expected true after Set(true)", s.name)
		}
		s.set(false)
		if s.get() {
			t.Errorf("%s: expected false after Set(false)", s.name)
		}
	}
}

func TestFlagsAreIndependent(t *testing.T) {
	c := New()
	c.SetCarry(true)
	c.SetNegative(true)
	if !c.IsCarry() || !c.IsNegative() {
		t.Fatal("both flags should read back true")
	}
	if c.IsZero() || c.IsOverflow() || c.IsDecimal() || c.IsInterruptDisable() {
		t.Fatal("setting carry and negative must not affect other flags")
	}
	c.SetCarry(false)
	if !c.IsNegative() {
		t.Error("clearing carry must not clear negative")
	}
}

func TestUpdateNZ(t *testing.T) {
	cases := []struct {
		value        uint8
		wantZero     bool
		wantNegative bool
	}{
		{0x00, true, false},
		{0x01, false, false},
		{0x7f, false, false},
		{0x80, false, true},
		{0xff, false, true},
	}
	for _, tc := range cases {
		c := New()
		c.UpdateNZ(tc.value)
		if c.IsZero() != tc.wantZero {
			t.Errorf("UpdateNZ(%#02x): Z = %v, want %v", tc.value, c.IsZero(), tc.wantZero)
		}
		if c.IsNegative() != tc.wantNegative {
			t.Errorf("UpdateNZ(%#02x): N = %v, want %v", tc.value, c.IsNegative(), tc.wantNegative)
		}
	}
}

func TestFlagBitPositions(t *testing.T) {
	cases := []struct {
		flag Flags
		bit  uint8
	}{
		{FlagCarry, 0},
		{FlagZero, 1},
		{FlagInterruptDisable, 2},
		{FlagDecimal, 3},
		{FlagBreak, 4},
		{FlagUnused, 5},
		{FlagOverflow, 6},
		{FlagNegative, 7},
	}
	for _, tc := range cases {
		if tc.flag != Flags(1<<tc.bit) {
			t.Errorf("flag %v: want bit %d (%#02x), got %#02x", tc.flag, tc.bit, 1<<tc.bit, tc.flag)
		}
	}
}
