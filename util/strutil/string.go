package strutil

import (
	"strconv"
	"strings"
)

// Pad n with leading zeros until it has at least digit digits.
//
// Negative numbers keep the sign in front of the padding, e.g., PadNum(-5, 3) is "-005".
func PadNum(n int, digit int) string {
	if n < 0 {
		return "-" + PadNum(-n, digit)
	}
	num := strconv.Itoa(n)
	if pad := digit - len(num); pad > 0 {
		return strings.Repeat("0", pad) + num
	}
	return num
}

// Check if s has the prefix in a case-insensitive way.
func HasPrefixIgnoreCase(s string, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[0:len(prefix)], prefix)
}

// Cut prefix from s in a case-insensitive way.
func CutPrefixIgnoreCase(s string, prefix string) (string, bool) {
	if HasPrefixIgnoreCase(s, prefix) {
		return s[len(prefix):], true
	}
	return s, false
}

// Count leading ASCII digits of s, at most max (max <= 0 means no limit).
func LeadingDigits(s string, max int) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		if max > 0 && n >= max {
			break
		}
		n++
	}
	return n
}
