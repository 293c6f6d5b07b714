// SPDX-License-Identifier: MIT

package results

import (
	"strconv"
	"time"

	"github.com/katalvlaran/hyperreach/distance"
	"github.com/katalvlaran/hyperreach/network"
)

// Formatter renders one distance value as a CSV cell.
type Formatter interface {
	Format(kind distance.Kind, v int64) string
}

// RawFormatter prints every value as a decimal integer.
type RawFormatter struct{}

// Format implements Formatter.
func (RawFormatter) Format(_ distance.Kind, v int64) string {
	return strconv.FormatInt(v, 10)
}

// TimeFormatter prints Fastest as a Go duration and Foremost as an RFC 3339
// UTC instant, reading values as ticks of Resolution. Shortest stays a hop
// count. A zero Resolution means network.DefaultResolution.
type TimeFormatter struct {
	Resolution time.Duration
}

// Format implements Formatter.
func (f TimeFormatter) Format(kind distance.Kind, v int64) string {
	res := f.Resolution
	if res <= 0 {
		res = network.DefaultResolution
	}

	switch kind {
	case distance.Fastest:
		return (time.Duration(v) * res).String()
	case distance.Foremost:
		return network.Instant(v, res).Format(time.RFC3339Nano)
	default:
		return strconv.FormatInt(v, 10)
	}
}

// FormatterFor maps "raw" and "time" to a Formatter for res.
func FormatterFor(name string, res time.Duration) (Formatter, bool) {
	switch name {
	case "", "raw":
		return RawFormatter{}, true
	case "time":
		return TimeFormatter{Resolution: res}, true
	default:
		return nil, false
	}
}
