package mactime

import (
	"testing"
	"time"
)

func TestUnixToMac(t *testing.T) {

	tests := []struct {
		name string
		in   time.Time
		out  uint32
	}{
		{"mac epoch", time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{"unix epoch", time.Unix(0, 0).UTC(), 2082844800},
		{"before 1904", time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{"after 2040", time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC), 0xFFFFFFFF},
		{"local zone", time.Date(1970, 1, 1, 1, 0, 0, 0, time.FixedZone("CET", 3600)), 2082844800 + 3600},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := UnixToMac(test.in)
			if got != test.out {
				t.Fatalf("got %d, expected %d", got, test.out)
			}
		})
	}
}

func TestMacToUnix(t *testing.T) {
	when := time.Date(1984, 1, 24, 12, 0, 0, 0, time.UTC)

	got := MacToUnix(UnixToMac(when))
	if !got.Equal(when) {
		t.Fatalf("round-trip failed: %s != %s", got, when)
	}
	if MacToUnix(0).Year() != 1904 {
		t.Fatalf("mac epoch is wrong")
	}
}
