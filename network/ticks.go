// SPDX-License-Identifier: MIT

package network

import "time"

// Ticks converts t to whole ticks of res since the Unix epoch, rounding
// toward negative infinity. Whole-second resolutions go through Unix
// seconds and cover every representable year; finer ones are limited to the
// UnixNano range (years 1678 to 2262).
func Ticks(t time.Time, res time.Duration) int64 {
	if res%time.Second == 0 {
		return floorDiv(t.Unix(), int64(res/time.Second))
	}

	return floorDiv(t.UnixNano(), int64(res))
}

// Instant is the inverse of Ticks, in UTC.
func Instant(ticks int64, res time.Duration) time.Time {
	if res%time.Second == 0 {
		return time.Unix(ticks*int64(res/time.Second), 0).UTC()
	}

	return time.Unix(0, ticks*int64(res)).UTC()
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
