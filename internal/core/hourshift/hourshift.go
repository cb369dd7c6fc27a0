// Package hourshift remaps UTC hour-of-day buckets to a caller supplied
// UTC offset for display
//
// The offset is minutes east of UTC which is what tz database utcOffset
// conventions produce, so UTC-5 is -300 and UTC+5:30 is 330
package hourshift

// HoursPerDay is the fixed histogram width
const HoursPerDay = 24

// Histogram is a summed counter per UTC or local hour, index 0..23
type Histogram [HoursPerDay]int64

// Total returns the sum across all hours
func (h Histogram) Total() int64 {
	var n int64
	for _, c := range h {
		n += c
	}
	return n
}

// Shift returns the local hour for a raw UTC hour and an offset in minutes
//
// Division must floor toward negative infinity so that offsets like -90
// land in the previous hour rather than truncating toward zero, and the
// double modulo keeps the result in [0,23] for any sign
func Shift(hour, offsetMinutes int) int {
	return ((floorDiv(hour*60+offsetMinutes, 60) % HoursPerDay) + HoursPerDay) % HoursPerDay
}

// Remap rebuckets a raw UTC histogram into local hours
//
// All 24 raw hours are walked and accumulated into their target local
// hour. Accumulation rather than index assignment means counts merge
// instead of overwriting if two raw hours ever share a target
func Remap(raw Histogram, offsetMinutes int) Histogram {
	var out Histogram
	for hour, count := range raw {
		out[Shift(hour, offsetMinutes)] += count
	}
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
