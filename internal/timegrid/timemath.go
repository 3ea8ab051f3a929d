package timegrid

import "fmt"

// ToMinutes converts a 24-hour "HH:MM" clock string to minutes since
// midnight, in [0, 1439]. Anything that is not exactly two digits, a colon
// and two digits within range fails with ErrInvalidTimeFormat.
func ToMinutes(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	min := int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 || min > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return hour*60 + min, nil
}

// FormatMinutes is the inverse of ToMinutes for values in [0, 1439].
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Overlaps reports whether two half-open minute ranges intersect. End
// values are exclusive, so ranges that merely touch do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
