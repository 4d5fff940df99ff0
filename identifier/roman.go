/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package identifier

import (
	"fmt"
	"strings"
)

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// romanToInt parses an upper-case roman numeral. It rejects the empty
// string and anything containing characters outside IVXLCDM.
func romanToInt(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty roman numeral")
	}
	s = strings.ToUpper(s)
	values := map[rune]int{'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000}
	total := 0
	runes := []rune(s)
	for i, r := range runes {
		v, ok := values[r]
		if !ok {
			return 0, fmt.Errorf("%q is not a valid roman numeral", s)
		}
		if i+1 < len(runes) {
			if next, ok := values[runes[i+1]]; ok && next > v {
				total -= v
				continue
			}
		}
		total += v
	}
	if total <= 0 {
		return 0, fmt.Errorf("%q is not a valid roman numeral", s)
	}
	// Round-trip check catches malformed numerals like "IIII" or "VX"
	// that sum correctly by accident.
	if intToRoman(total) != s {
		return 0, fmt.Errorf("%q is not a well-formed roman numeral", s)
	}
	return total, nil
}

// intToRoman renders n (n >= 1) as an upper-case roman numeral.
func intToRoman(n int) string {
	var b strings.Builder
	for _, entry := range romanTable {
		for n >= entry.value {
			b.WriteString(entry.symbol)
			n -= entry.value
		}
	}
	return b.String()
}
