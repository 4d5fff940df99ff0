/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package identifier

import (
	"fmt"
	"strings"
)

// hunOrdinals holds the Hungarian ordinal numeral for 0..100, generated
// once at init time from a tens/ones decomposition plus special-cased
// round values, so rendering never needs a runtime map lookup, just a
// slice index.
var hunOrdinals [101]string
var hunOrdinalToNum map[string]uint16

var hunOnesDigit = [10]string{
	"nulladik", "egyedik", "kettedik", "harmadik", "negyedik",
	"ötödik", "hatodik", "hetedik", "nyolcadik", "kilencedik",
}

var hunTensDigit = [10]string{
	"", "tizen", "huszon", "harminc", "negyven",
	"ötven", "hatvan", "hetven", "nyolcvan", "kilencven",
}

var hunSpecialValues = map[int]string{
	1: "első", 2: "második", 10: "tizedik", 20: "huszadik", 30: "harmincadik",
	40: "negyvenedik", 50: "ötvenedik", 60: "hatvanadik", 70: "hetvenedik",
	80: "nyolcvanadik", 90: "kilencvenedik", 100: "századik",
}

func init() {
	hunOrdinalToNum = make(map[string]uint16, 3*101)
	for tens := 0; tens <= 9; tens++ {
		for ones := 0; ones <= 9; ones++ {
			value := tens*10 + ones
			if value > 100 {
				continue
			}
			var text string
			if special, ok := hunSpecialValues[value]; ok {
				text = special
			} else {
				text = hunTensDigit[tens] + hunOnesDigit[ones]
			}
			hunOrdinals[value] = text
			registerHunOrdinal(text, uint16(value))
		}
	}
	hunOrdinals[100] = "századik"
	registerHunOrdinal("századik", 100)
}

func registerHunOrdinal(text string, value uint16) {
	hunOrdinalToNum[text] = value
	hunOrdinalToNum[strings.ToUpper(text)] = value
	hunOrdinalToNum[capitalizeHun(text)] = value
}

func capitalizeHun(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// hungarianOrdinal renders n (0..100) as a Hungarian ordinal numeral, as
// used by StructuralElement.HeaderString for books ("NYOLCADIK KÖNYV")
// and non-special parts ("MÁSODIK RÉSZ").
func hungarianOrdinal(n uint16) (string, error) {
	if int(n) >= len(hunOrdinals) || hunOrdinals[n] == "" {
		return "", fmt.Errorf("number out of range for int->hungarian conversion: %d", n)
	}
	return hunOrdinals[n], nil
}

// parseHungarianOrdinal parses a Hungarian ordinal numeral in any
// case, used by StructuralElementType.ParseIdentifier for Book/Part
// headers like "NYOLCADIK KÖNYV".
func parseHungarianOrdinal(s string) (uint16, error) {
	if v, ok := hunOrdinalToNum[s]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("invalid hungarian numeral string: %s", s)
}

var hunMonths = map[string]int{
	"január": 1, "február": 2, "március": 3, "április": 4,
	"május": 5, "június": 6, "július": 7, "augusztus": 8,
	"szeptember": 9, "október": 10, "november": 11, "december": 12,
}

// HungarianMonth maps a Hungarian month name to its 1-based number, used
// to parse the gazette's publication-date line ("2011. május 12.").
func HungarianMonth(s string) (int, error) {
	if m, ok := hunMonths[s]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("invalid month name %q", s)
}
