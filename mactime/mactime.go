// Package mactime converts between host times and Mac OS timestamps.
//
// A Mac timestamp is an unsigned count of seconds since midnight,
// January 1st 1904, in the local time of the machine.
package mactime

import (
	"math"
	"time"
)

// epochDelta is the number of seconds between 1904-01-01 and 1970-01-01.
const epochDelta = 2082844800

// UnixToMac converts t to a Mac timestamp, in the zone of t.
//
// Times which cannot be represented are clamped.
func UnixToMac(t time.Time) uint32 {
	_, offset := t.Zone()

	secs := t.Unix() + int64(offset) + epochDelta
	if secs < 0 {
		return 0
	}
	if secs > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(secs)
}

// MacToUnix converts a Mac timestamp into a time.
//
// The result is in UTC, with the wall-clock value the Mac would have shown.
func MacToUnix(secs uint32) time.Time {
	return time.Unix(int64(secs)-epochDelta, 0).UTC()
}
