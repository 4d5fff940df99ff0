/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package identifier

import "fmt"

// PrefixedAlphabeticIdentifier is a HungarianChar with an optional
// single-letter prefix, used for alphabetic subpoints; under an
// alphabetic point ("b)") they are written "ba)", "bb)", where the
// convention reuses the parent point's letter as a prefix.
type PrefixedAlphabeticIdentifier struct {
	HasPrefix bool
	Prefix    byte
	Inner     HungarianChar
}

// ParsePrefixedAlphabeticIdentifier parses "a" or "ba".
func ParsePrefixedAlphabeticIdentifier(s string) (PrefixedAlphabeticIdentifier, error) {
	switch len(s) {
	case 0:
		return PrefixedAlphabeticIdentifier{}, fmt.Errorf("empty prefixed alphabetic identifier")
	case 1:
		c, err := ParseHungarianChar(s)
		if err != nil {
			return PrefixedAlphabeticIdentifier{}, err
		}
		return PrefixedAlphabeticIdentifier{Inner: c}, nil
	default:
		prefix := s[0]
		if prefix < 'a' || prefix > 'z' {
			return PrefixedAlphabeticIdentifier{}, fmt.Errorf("%q has an invalid prefix letter", s)
		}
		c, err := ParseHungarianChar(s[1:])
		if err != nil {
			return PrefixedAlphabeticIdentifier{}, err
		}
		return PrefixedAlphabeticIdentifier{HasPrefix: true, Prefix: prefix, Inner: c}, nil
	}
}

// String renders the compact form ("ba").
func (p PrefixedAlphabeticIdentifier) String() string {
	if p.HasPrefix {
		return string(p.Prefix) + p.Inner.String()
	}
	return p.Inner.String()
}

// IsFirst reports whether p's inner letter is "a" ("a" or "ba"), since
// the prefix is never itself sequenced; only the inner letter advances
// within a fixed prefix.
func (p PrefixedAlphabeticIdentifier) IsFirst() bool {
	return p.Inner.IsFirst()
}

// Compare implements a total order: prefix first (absent sorts before
// any present prefix), then inner letter.
func (p PrefixedAlphabeticIdentifier) Compare(other PrefixedAlphabeticIdentifier) int {
	if p.HasPrefix != other.HasPrefix {
		if !p.HasPrefix {
			return -1
		}
		return 1
	}
	if p.HasPrefix && p.Prefix != other.Prefix {
		return int(p.Prefix) - int(other.Prefix)
	}
	return p.Inner.Compare(other.Inner)
}

// IsNextFrom reports whether p can immediately follow other: same
// prefix (or both absent) with an inner-letter successor. The prefix
// itself never advances here; a new prefix starts a fresh sequence
// that the caller (the alphabetic subpoint parser) resets
// independently.
func (p PrefixedAlphabeticIdentifier) IsNextFrom(other PrefixedAlphabeticIdentifier) bool {
	if p.HasPrefix != other.HasPrefix {
		return false
	}
	if p.HasPrefix && p.Prefix != other.Prefix {
		return false
	}
	return p.Inner.IsNextFrom(other.Inner)
}
