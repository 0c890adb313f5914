package profile

import (
	"math/rand"
	"testing"

	"github.com/tamzrod/input-remapper/internal/hw"
)

func randomWords(n int) []uint32 {
	r := rand.New(rand.NewSource(42))
	words := []uint32{0, 0xFFFFFFFF, 0x1, 0x80000000, hw.OutputAllMask}
	for i := 0; i < n; i++ {
		words = append(words, r.Uint32())
	}
	return words
}

func TestPassthrough_Identity(t *testing.T) {
	p := NewPassthrough(0)
	if !p.IsPassthrough() {
		t.Fatalf("empty mapping must be passthrough")
	}
	if p.Name != PassthroughName || p.ID != 1 {
		t.Fatalf("unexpected passthrough profile %+v", p)
	}

	for _, w := range randomWords(500) {
		if got := p.ProcessInputs(w); got != w {
			t.Fatalf("ProcessInputs(0x%08x) = 0x%08x", w, got)
		}
	}
}

func TestEmptyMappingIsPassthrough(t *testing.T) {
	p := NewProfile(2, "", 0, Mapping{})
	if !p.IsPassthrough() {
		t.Fatalf("expected passthrough")
	}
	if p.Name != DefaultName {
		t.Fatalf("expected default name, got %q", p.Name)
	}
}

func TestEndToEnd_Input1ToOutputs2And3(t *testing.T) {
	p := NewProfile(2, "p", 0, Mapping{1: 0b110})

	if got := p.ProcessInputs(0b1); got != 0b110 {
		t.Fatalf("expected 0b110, got 0b%b", got)
	}

	// other in-range bits pass through untouched, bit 1 stays governed by the mapping
	in := uint32(0b1_0000_1001)
	want := uint32(0b1_0000_1110)
	if got := p.ProcessInputs(in); got != want {
		t.Fatalf("expected 0b%b, got 0b%b", want, got)
	}
}

func TestMappedInputInactiveContributesNothing(t *testing.T) {
	p := NewProfile(2, "p", 0, Mapping{1: 0b110})

	if got := p.ProcessInputs(0); got != 0 {
		t.Fatalf("expected 0, got 0b%b", got)
	}
	// bits 2,3 come from the input itself when input 1 is released
	if got := p.ProcessInputs(0b100); got != 0b100 {
		t.Fatalf("expected 0b100, got 0b%b", got)
	}
}

func TestPassThroughInvariant(t *testing.T) {
	mapping := Mapping{1: 0, 4: 0, 9: 0, 17: 0}
	p := NewProfile(2, "p", 0, mapping)

	for _, w := range randomWords(1000) {
		got := p.ProcessInputs(w)
		for pos := 1; pos <= hw.OutputTotal; pos++ {
			if _, mapped := mapping[uint8(pos)]; mapped {
				continue
			}
			if hw.Active(got, pos) != hw.Active(w, pos) {
				t.Fatalf("word 0x%08x: position %d not passed through", w, pos)
			}
		}
	}
}

func TestMappedPositionsClearedWhenValueZero(t *testing.T) {
	p := NewProfile(2, "p", 0, Mapping{3: 0})
	if got := p.ProcessInputs(0b100); got != 0 {
		t.Fatalf("mapped position must not pass through, got 0b%b", got)
	}
}

func TestORCombination(t *testing.T) {
	a := uint32(1 << 9)  // output 10
	b := uint32(1 << 11) // output 12
	p := NewProfile(2, "p", 0, Mapping{1: a, 2: b})

	onlyA := p.ProcessInputs(0b01)
	onlyB := p.ProcessInputs(0b10)
	both := p.ProcessInputs(0b11)

	if both != onlyA|onlyB {
		t.Fatalf("both=0b%b, want 0b%b", both, onlyA|onlyB)
	}
}

func TestOverlappingOutputsCombine(t *testing.T) {
	p := NewProfile(2, "p", 0, Mapping{1: 0b1100, 2: 0b0110})
	if got := p.ProcessInputs(0b11); got != 0b1110 {
		t.Fatalf("expected 0b1110, got 0b%b", got)
	}
	// releasing one input does not clear bits still asserted by the other
	if got := p.ProcessInputs(0b10); got != 0b0110 {
		t.Fatalf("expected 0b0110, got 0b%b", got)
	}
}

func TestOrderIndependence(t *testing.T) {
	mapping := Mapping{1: 0b1000, 2: 0b0110_0000, 5: 0b1_0000_0000, 7: 0b1000}
	p := NewProfile(2, "p", 0, mapping)

	for _, w := range randomWords(500) {
		want := w & p.Mask()
		for k, v := range mapping {
			if w>>(k-1)&1 == 1 {
				want |= v
			}
		}
		if got := p.ProcessInputs(w); got != want {
			t.Fatalf("word 0x%08x: got 0x%08x want 0x%08x", w, got, want)
		}
	}
}

func TestGenerateMask(t *testing.T) {
	p := NewProfile(2, "p", 0, Mapping{1: 0b110, 3: 0})

	want := hw.OutputAllMask &^ 0b101
	if p.Mask() != want {
		t.Fatalf("mask 0b%b, want 0b%b", p.Mask(), want)
	}
	if p.IsPassthrough() {
		t.Fatalf("non-empty mapping must not be passthrough")
	}
}

func TestGenerateMask_Idempotent(t *testing.T) {
	p := NewProfile(2, "p", 0, Mapping{2: 1, 16: 4, 29: 8})
	first := p.Mask()

	p.generateMask()
	p.generateMask()

	if p.Mask() != first {
		t.Fatalf("mask changed on recompute: 0x%x -> 0x%x", first, p.Mask())
	}
	if len(p.Keys()) != 3 {
		t.Fatalf("keys duplicated on recompute: %v", p.Keys())
	}
}

func TestGenerateMask_ToggleAboveOutputRange(t *testing.T) {
	// keys past OUTPUT_TOTAL toggle a bit that was clear in the base mask
	p := NewProfile(2, "p", 0, Mapping{20: 1})
	if p.Mask()&(1<<19) == 0 {
		t.Fatalf("expected bit 19 toggled on, mask 0x%x", p.Mask())
	}
}

func TestNewProfileCopiesMapping(t *testing.T) {
	m := Mapping{1: 2}
	p := NewProfile(2, "p", 0, m)
	m[1] = 4
	m[2] = 8

	if v, _ := p.Output(1); v != 2 {
		t.Fatalf("profile must not alias caller mapping")
	}
	if _, ok := p.Output(2); ok {
		t.Fatalf("profile must not see keys added later")
	}
}

func TestKeysSorted(t *testing.T) {
	p := NewProfile(2, "p", 0, Mapping{9: 0, 1: 0, 5: 0})
	keys := p.Keys()
	if len(keys) != 3 || keys[0] != 1 || keys[1] != 5 || keys[2] != 9 {
		t.Fatalf("unexpected keys %v", keys)
	}
}
