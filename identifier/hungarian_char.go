/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package identifier implements the typed identifier algebra used
// throughout the Act tree: numeric identifiers with Hungarian-digraph
// suffixes, article identifiers with an optional book prefix, prefixed
// alphabetic subpoint identifiers, and Act identifiers. Every type here
// is totally ordered and implements a successor predicate (IsNextFrom)
// used by the structural parser to decide whether the next candidate
// header really continues the current sequence.
package identifier

import (
	"fmt"
	"strings"
)

// digraph enumerates the eight Hungarian digraphs that are legal inside
// an identifier suffix: cs, dz, gy, ly, ny, sz, ty and zs. The trigraph
// "dzs" is not among them.
type digraph uint8

const (
	noDigraph digraph = iota
	digraphCs
	digraphDz
	digraphGy
	digraphLy
	digraphNy
	digraphSz
	digraphTy
	digraphZs
)

var digraphNames = map[digraph]string{
	digraphCs: "cs", digraphDz: "dz", digraphGy: "gy", digraphLy: "ly",
	digraphNy: "ny", digraphSz: "sz", digraphTy: "ty", digraphZs: "zs",
}

var namesToDigraph = map[string]digraph{
	"cs": digraphCs, "dz": digraphDz, "gy": digraphGy, "ly": digraphLy,
	"ny": digraphNy, "sz": digraphSz, "ty": digraphTy, "zs": digraphZs,
}

// baseLetterOf is the Latin letter a digraph interleaves after in the
// ordering ("n" < "ny" < "o") and that the digraph is considered the
// successor of ("ny" follows "n").
var baseLetterOf = map[digraph]byte{
	digraphCs: 'c', digraphDz: 'd', digraphGy: 'g', digraphLy: 'l',
	digraphNy: 'n', digraphSz: 's', digraphTy: 't', digraphZs: 'z',
}

// nextLetterAfterDigraph is the Latin letter that follows each digraph,
// i.e. the reverse of baseLetterOf: "d" follows "cs", "e" follows "dz",
// "h" follows "gy", "m" follows "ly", "o" follows "ny", "t" follows
// "sz", "u" follows "ty".
var nextLetterAfterDigraph = map[digraph]byte{
	digraphCs: 'd', digraphDz: 'e', digraphGy: 'h', digraphLy: 'm',
	digraphNy: 'o', digraphSz: 't', digraphTy: 'u',
	// Zs has no defined successor letter: 'z' + 1 doesn't exist in the
	// alphabet we track and no Act has ever needed it.
}

// HungarianChar is a single alphabetic identifier character: a Latin
// letter a-z, or one of the eight Hungarian digraphs.
// AlphabeticIdentifier is an alias of this type.
type HungarianChar struct {
	digraph digraph // noDigraph if this is a plain Latin letter
	latin   byte    // meaningful only when digraph == noDigraph; 'a'..'z'
}

// NewLatinChar builds a HungarianChar from a single Latin letter,
// case-folding it to lowercase.
func NewLatinChar(c byte) (HungarianChar, error) {
	c = toLowerASCII(c)
	if c < 'a' || c > 'z' {
		return HungarianChar{}, fmt.Errorf("%q is not a valid latin or hungarian character", c)
	}
	return HungarianChar{latin: c}, nil
}

func toLowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}

// ParseHungarianChar parses a single letter ("b") or a digraph name in
// any case ("Ny", "NY", "ny").
func ParseHungarianChar(s string) (HungarianChar, error) {
	if len(s) == 1 {
		return NewLatinChar(s[0])
	}
	lower := strings.ToLower(s)
	if d, ok := namesToDigraph[lower]; ok {
		return HungarianChar{digraph: d}, nil
	}
	return HungarianChar{}, fmt.Errorf("%q is not a valid latin or hungarian character string", s)
}

// IsDigraph reports whether c is one of the eight Hungarian digraphs
// rather than a plain Latin letter.
func (c HungarianChar) IsDigraph() bool {
	return c.digraph != noDigraph
}

// String renders the lowercase form ("b", "ny").
func (c HungarianChar) String() string {
	if c.digraph != noDigraph {
		return digraphNames[c.digraph]
	}
	return string(rune(c.latin))
}

// Uppercase renders the uppercase form ("B", "NY"), used when printing
// identifiers inside an Act's canonical header text.
func (c HungarianChar) Uppercase() string {
	return strings.ToUpper(c.String())
}

// ordinal produces the total-order key: digraphs interleave right after
// their base letter ("n" < "ny" < "o"), base letters at 2n and their
// digraph at 2n+1.
func (c HungarianChar) ordinal() int {
	if c.digraph == noDigraph {
		return int(c.latin) * 2
	}
	return int(baseLetterOf[c.digraph])*2 + 1
}

// Compare implements a total order consistent with IsNextFrom.
func (c HungarianChar) Compare(other HungarianChar) int {
	return c.ordinal() - other.ordinal()
}

// IsFirst reports whether c is "a", the first alphabetic identifier.
func (c HungarianChar) IsFirst() bool {
	return c.digraph == noDigraph && c.latin == 'a'
}

// IsNextFrom reports whether c can immediately follow other in an
// identifier sequence: the next Latin letter, with the hard-coded
// exception that 'r' follows 'p' (one gazetted Act skips 'q' entirely),
// a digraph following its base letter, or a base letter following the
// digraph that precedes it.
func (c HungarianChar) IsNextFrom(other HungarianChar) bool {
	if c.digraph == noDigraph && other.digraph == noDigraph {
		if c.latin == 'r' && other.latin == 'p' {
			return true
		}
		return c.latin > other.latin && c.latin-other.latin == 1
	}
	if c.digraph != noDigraph && other.digraph == noDigraph {
		return baseLetterOf[c.digraph] == other.latin
	}
	if c.digraph == noDigraph && other.digraph != noDigraph {
		next, ok := nextLetterAfterDigraph[other.digraph]
		return ok && next == c.latin
	}
	return false
}
