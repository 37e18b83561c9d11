package pstring

// upper is our case-folding table.
//
// Only ASCII letters are folded, whatever the host locale.
var upper [256]uint8

func init() {
	for i := range upper {
		upper[i] = uint8(i)
	}
	for c := 'a'; c <= 'z'; c++ {
		upper[c] = uint8(c - 'a' + 'A')
	}
}

// ToUpper folds a single byte to upper-case.
func ToUpper(c uint8) uint8 {
	return upper[c]
}

// Equal reports whether a and b are the same string.
func Equal(a, b []uint8, caseSensitive bool) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if caseSensitive || upper[a[i]] != upper[b[i]] {
			return false
		}
	}
	return true
}

// CompareNames compares the aLen bytes at aAddr with the bLen bytes
// at bAddr, returning true if they are equal.
//
// Strings of different lengths are never equal, and a string is always
// equal to itself, so neither case touches memory.
//
// diacSensitive is accepted but ignored.
func CompareNames(mem Memory, aAddr, bAddr uint32, aLen, bLen int, caseSensitive, diacSensitive bool) (bool, error) {
	if aLen != bLen {
		return false, nil
	}
	if aAddr == bAddr {
		return true, nil
	}
	if aLen == 0 {
		return true, nil
	}

	a, err := mem.GetRange(aAddr, aLen)
	if err != nil {
		return false, err
	}
	b, err := mem.GetRange(bAddr, bLen)
	if err != nil {
		return false, err
	}
	return Equal(a, b, caseSensitive), nil
}
