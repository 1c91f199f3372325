package fibloop

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatValue prints v as plain decimal digits: the shortest digits that
// round-trip, padded with zeros instead of switching to an exponent.
func FormatValue(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatSize Go version of apr_strfsize
func FormatSize(size uint64) string {
	ord := []string{"K", "M", "G", "T", "P", "E"}
	var b strings.Builder

	if size < 973 {
		fmt.Fprintf(&b, "%3d ", size)
		return b.String()
	}

	for o := 0; ; o++ {
		remain := size & 1023
		size >>= 10

		if size >= 973 {
			continue
		}

		if size < 9 || (size == 9 && remain < 973) {
			remain = ((remain * 5) + 256) / 512
			if remain >= 10 {
				size++
				remain = 0
			}
			fmt.Fprintf(&b, "%d.%d%s", size, remain, ord[o])
			return b.String()
		}

		if remain >= 512 {
			size++
		}
		fmt.Fprintf(&b, "%3d%s", size, ord[o])
		return b.String()
	}
}

func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%d ns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.2f us", float64(d)/float64(time.Microsecond))
	case d < time.Second:
		return fmt.Sprintf("%.2f ms", float64(d)/float64(time.Millisecond))
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// FormatRate prints an iterations-per-second figure with an SI suffix.
func FormatRate(perSecond float64) string {
	switch {
	case perSecond >= 1e9:
		return strconv.FormatFloat(perSecond/1e9, 'f', 2, 64) + "G/s"
	case perSecond >= 1e6:
		return strconv.FormatFloat(perSecond/1e6, 'f', 2, 64) + "M/s"
	case perSecond >= 1e3:
		return strconv.FormatFloat(perSecond/1e3, 'f', 2, 64) + "K/s"
	default:
		return strconv.FormatFloat(perSecond, 'f', 2, 64) + "/s"
	}
}

func FormatPercent(percent float64) string {
	return strconv.FormatFloat(percent, 'f', 1, 64) + "%"
}
