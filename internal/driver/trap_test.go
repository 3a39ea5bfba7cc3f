package driver

import "testing"

func TestTrapDetectorNeedsAFullBuffer(t *testing.T) {
	var d trapDetector
	for i := 0; i < trapBufferSize-1; i++ {
		d.push(uint16(i))
		if d.hasTrap() {
			t.Fatalf("push %d: hasTrap before the buffer is full", i)
		}
	}
}

func TestTrapDetectorFiresOnRepeatingSequence(t *testing.T) {
	var d trapDetector
	seq := []uint16{0x10, 0x12, 0x14, 0x16, 0x18, 0x1a, 0x1c, 0x1e}
	for i := 0; i < trapBufferSize/len(seq)+1; i++ {
		for _, pc := range seq {
			d.push(pc)
		}
	}
	if !d.hasTrap() {
		t.Fatal("expected hasTrap after several repeats of the same sequence")
	}
}

func TestTrapDetectorDoesNotFireOnProgress(t *testing.T) {
	var d trapDetector
	for i := uint16(0); i < trapBufferSize*4; i++ {
		d.push(i)
		if d.hasTrap() {
			t.Fatalf("hasTrap fired on strictly increasing PCs at step %d", i)
		}
	}
}
