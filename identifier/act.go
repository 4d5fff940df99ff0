/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package identifier

import (
	"fmt"
	"regexp"
	"strconv"
)

// ActIdentifier identifies a Hungarian Act by its year of promulgation
// and its sequence number within that year ("2012. évi CLIV. törvény").
type ActIdentifier struct {
	Year   int
	Number int
}

// actClassicRe matches the canonical printed form, e.g.
// "2012. évi CLIV. törvény".
var actClassicRe = regexp.MustCompile(`^(\d{4})\. évi ([IVXLCDM]+)\. törvény$`)

// actDecimalRe matches the four compact machine-readable separators the
// gazette's cross-reference text and fixup keys use interchangeably.
var actDecimalRe = regexp.MustCompile(`^(\d{4})[/.\-_](\d+)$`)

// ParseActIdentifier parses either the classic printed form or any of
// the four decimal forms ("2012/154", "2012-154", "2012.154", "2012_154").
func ParseActIdentifier(s string) (ActIdentifier, error) {
	if m := actClassicRe.FindStringSubmatch(s); m != nil {
		year, err := strconv.Atoi(m[1])
		if err != nil {
			return ActIdentifier{}, fmt.Errorf("invalid year in act identifier %q: %w", s, err)
		}
		number, err := romanToInt(m[2])
		if err != nil {
			return ActIdentifier{}, fmt.Errorf("invalid roman numeral in act identifier %q: %w", s, err)
		}
		return ActIdentifier{Year: year, Number: number}, nil
	}
	if m := actDecimalRe.FindStringSubmatch(s); m != nil {
		year, err := strconv.Atoi(m[1])
		if err != nil {
			return ActIdentifier{}, fmt.Errorf("invalid year in act identifier %q: %w", s, err)
		}
		number, err := strconv.Atoi(m[2])
		if err != nil {
			return ActIdentifier{}, fmt.Errorf("invalid number in act identifier %q: %w", s, err)
		}
		return ActIdentifier{Year: year, Number: number}, nil
	}
	return ActIdentifier{}, fmt.Errorf("%q is not a recognized act identifier", s)
}

// String renders the canonical printed form ("2012. évi CLIV. törvény").
func (a ActIdentifier) String() string {
	return fmt.Sprintf("%d. évi %s. törvény", a.Year, intToRoman(a.Number))
}

// CompactString renders the slash-separated decimal form ("2012/154"),
// used as the serialized (YAML/JSON) form.
func (a ActIdentifier) CompactString() string {
	return fmt.Sprintf("%d/%d", a.Year, a.Number)
}

// Compare implements a total order: year first, then number.
func (a ActIdentifier) Compare(other ActIdentifier) int {
	if a.Year != other.Year {
		return a.Year - other.Year
	}
	return a.Number - other.Number
}
