package cpu

import "testing"

func TestDisassembleImmediate(t *testing.T) {
	c := load([]byte{0xa9, 0x7f})
	d, ok := Disassemble(&c.Memory, 0)
	if !ok {
		t.Fatal("expected ok")
	}
	if d.Mnemonic != LDA || d.Mode != Immediate || d.Operand != 0x7f || d.Size != 2 {
		t.Errorf("got %+v", d)
	}
	if want := "LDA #$7F"; d.Text != want {
		t.Errorf("Text = %q, want %q", d.Text, want)
	}
}

func TestDisassembleAbsoluteIndexed(t *testing.T) {
	c := load([]byte{0xbd, 0x34, 0x12}) // LDA $1234,X
	d, ok := Disassemble(&c.Memory, 0)
	if !ok {
		t.Fatal("expected ok")
	}
	if d.Operand != 0x1234 || d.Size != 3 {
		t.Errorf("got %+v", d)
	}
	if want := "LDA $1234,X"; d.Text != want {
		t.Errorf("Text = %q, want %q", d.Text, want)
	}
}

func TestDisassembleImplied(t *testing.T) {
	c := load([]byte{0xea}) // NOP
	d, ok := Disassemble(&c.Memory, 0)
	if !ok {
		t.Fatal("expected ok")
	}
	if d.Size != 1 {
		t.Errorf("Size = %d, want 1", d.Size)
	}
	if want := "NOP "; d.Text != want {
		t.Errorf("Text = %q, want %q", d.Text, want)
	}
}

func TestDisassembleZeroPageIndirect(t *testing.T) {
	c := load([]byte{0xa1, 0x80}) // LDA ($80,X)
	d, ok := Disassemble(&c.Memory, 0)
	if !ok {
		t.Fatal("expected ok")
	}
	if want := "LDA ($80,X)"; d.Text != want {
		t.Errorf("Text = %q, want %q", d.Text, want)
	}
}

func TestDisassembleUnknownOpcode(t *testing.T) {
	c := load([]byte{0x02})
	_, ok := Disassemble(&c.Memory, 0)
	if ok {
		t.Error("expected ok == false for an undecoded opcode")
	}
}

func TestDisassembleRelativeShowsAbsoluteTarget(t *testing.T) {
	c := load([]byte{0xf0, 0x00, 0x80}) // BEQ $8000
	d, ok := Disassemble(&c.Memory, 0)
	if !ok {
		t.Fatal("expected ok")
	}
	if d.Operand != 0x8000 {
		t.Errorf("Operand = %#x, want 0x8000 (absolute target, not a displacement)", d.Operand)
	}
	if want := "BEQ $8000"; d.Text != want {
		t.Errorf("Text = %q, want %q", d.Text, want)
	}
}
