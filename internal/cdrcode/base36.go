// internal/cdrcode/base36.go
package cdrcode

import (
	"fmt"
	"strings"
)

const digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Base36 renders a non-negative n with upper-case digits, most significant
// first, no padding. Base36(0) == "0". Negative input panics.
func Base36(n int) string {
	if n < 0 {
		panic(fmt.Sprintf("cdrcode: negative base36 input %d", n))
	}
	if n == 0 {
		return "0"
	}
	var buf [16]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = digits[n%36]
		n /= 36
	}
	return string(buf[i:])
}

// ParseBase36 is the inverse of Base36. Lower-case digits are accepted.
func ParseBase36(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty base36 value")
	}
	n := 0
	for i := 0; i < len(s); i++ {
		d := strings.IndexByte(digits, upper(s[i]))
		if d < 0 {
			return 0, fmt.Errorf("invalid base36 digit %q in %q", s[i], s)
		}
		n = n*36 + d
	}
	return n, nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
