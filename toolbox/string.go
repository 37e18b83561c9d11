package toolbox

import (
	"log/slog"

	"github.com/skx/mpwfs/oserr"
	"github.com/skx/mpwfs/pstring"
)

// Flag bits of the CmpString trap word.
const (
	cmpCaseSensitive = 1 << 9
	cmpDiacSensitive = 1 << 10
)

// CmpString compares two strings for equality.
//
// On entry A0 and A1 point to the first character of each string, and
// D0 holds the length of the first string in its high word and the
// length of the second in its low word.  The result is 0 if the strings
// are equal and 1 if they are not; there is no ordering.
func CmpString(tb *Toolbox, trap uint16) (oserr.ResultCode, error) {
	caseSens := trap&cmpCaseSensitive != 0
	diacSens := trap&cmpDiacSensitive != 0

	aStr := tb.CPU.AReg(0)
	bStr := tb.CPU.AReg(1)

	length := tb.CPU.DReg(0)
	aLen := int(length >> 16)
	bLen := int(length & 0xFFFF)

	eq, err := pstring.CompareNames(tb.Memory, aStr, bStr, aLen, bLen, caseSens, diacSens)
	if err != nil {
		return 0, err
	}

	tb.Logger.Debug("CmpString",
		slog.Int("a_len", aLen),
		slog.Int("b_len", bLen),
		slog.Bool("case", caseSens),
		slog.Bool("equal", eq))

	if eq {
		return 0, nil
	}
	return 1, nil
}
