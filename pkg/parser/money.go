package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var moneyRegex = regexp.MustCompile(`R\$\s*([\d\.,]+)`)

// ParseMoney converts a locale-formatted currency string ("R$ 1.234,56" or
// "1.234,56") into a float. The thousands separator is "." and the decimal
// separator is ",". Returns nil for empty or unparseable input; it never
// fails the caller.
func ParseMoney(s string) *float64 {
	if s == "" {
		return nil
	}

	digits := s
	if m := moneyRegex.FindStringSubmatch(s); m != nil {
		digits = m[1]
	}

	digits = strings.ReplaceAll(digits, ".", "")  // Remove thousand separators
	digits = strings.ReplaceAll(digits, ",", ".") // Convert decimal separator

	value, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return nil
	}
	return &value
}
