package pstring

import (
	"errors"
	"testing"

	"github.com/skx/mpwfs/memory"
)

func TestEqual(t *testing.T) {

	tests := []struct {
		a, b          string
		caseSensitive bool
		equal         bool
	}{
		{"ABC", "abc", false, true},
		{"ABC", "abc", true, false},
		{"ABC", "ABC", true, true},
		{"AB", "ABC", false, false},
		{"AB", "ABC", true, false},
		{"", "", true, true},
		{"a1_z", "A1_Z", false, true},
		{"[", "{", false, false},
		{"@", "`", false, false},

		// Only ASCII is folded.
		{"\x8a", "\x80", false, false},
		{"caf\x8e", "CAF\x8e", false, true},
	}

	for _, test := range tests {
		got := Equal([]uint8(test.a), []uint8(test.b), test.caseSensitive)
		if got != test.equal {
			t.Fatalf("Equal(%q, %q, %v) = %v", test.a, test.b, test.caseSensitive, got)
		}
	}
}

func TestToUpper(t *testing.T) {
	for c := 0; c < 256; c++ {
		got := ToUpper(uint8(c))

		want := uint8(c)
		if c >= 'a' && c <= 'z' {
			want = uint8(c) - 32
		}
		if got != want {
			t.Fatalf("ToUpper(%02X) = %02X", c, got)
		}
	}
}

func TestCompareNames(t *testing.T) {
	mem := memory.New(0x1000)
	_ = mem.SetRange(0x100, []uint8("ABC")...)
	_ = mem.SetRange(0x200, []uint8("abc")...)

	eq, err := CompareNames(mem, 0x100, 0x200, 3, 3, false, false)
	if err != nil || !eq {
		t.Fatalf("case-insensitive compare failed")
	}

	eq, err = CompareNames(mem, 0x100, 0x200, 3, 3, true, false)
	if err != nil || eq {
		t.Fatalf("case-sensitive compare failed")
	}

	// Length mismatch never touches memory, so even a bogus
	// address is fine.
	eq, err = CompareNames(mem, 0x100, 0xFFFFFF00, 2, 3, false, false)
	if err != nil || eq {
		t.Fatalf("length mismatch should be unequal")
	}

	// Same pointer is always equal, again without reading.
	eq, err = CompareNames(mem, 0xFFFFFF00, 0xFFFFFF00, 3, 3, true, false)
	if err != nil || !eq {
		t.Fatalf("same pointer should be equal")
	}

	// Diacritic sensitivity makes no difference
	eq, err = CompareNames(mem, 0x100, 0x200, 3, 3, false, true)
	if err != nil || !eq {
		t.Fatalf("diacritic flag changed the result")
	}

	// Reading off the end of RAM is a fault
	_, err = CompareNames(mem, 0x100, 0xFFF, 3, 3, false, false)
	if !errors.Is(err, memory.ErrMemoryFault) {
		t.Fatalf("expected fault, got %v", err)
	}
}
