/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package line implements IndentedLine, the per-character positioned
// text primitive that pdftext emits and every later stage (segmenter,
// structure, semantics) consumes instead of a plain string.
package line

import (
	"regexp"
	"strings"
)

// indentSimilarityThreshold is the minimum indent delta (in PDF user
// space units) two lines must have to be considered differently
// indented. Tuned empirically against hundreds of gazette documents.
const indentSimilarityThreshold = 1.0

// Part is a single character together with its horizontal advance from
// the previous character (dx) and whether it was rendered in a bold
// font.
type Part struct {
	Dx      float64
	Content rune
	Bold    bool
}

// IndentedLine is an immutable sequence of Parts representing one
// visual line of text extracted from a PDF page, or the concatenation
// of several such lines (see FromMultiple). Equality, content and
// boldness are cached at construction time since they're read far more
// often than lines are built.
type IndentedLine struct {
	parts     []Part
	justified bool
	content   string
	bold      bool
}

// Empty is the canonical zero-length line.
var Empty = IndentedLine{}

// FromParts builds a line from its character parts. justified marks
// whether the line was detected as stretched to fill the page width,
// which matters when deciding whether trailing whitespace was
// deliberate.
func FromParts(parts []Part, justified bool) IndentedLine {
	var b strings.Builder
	boldCount := 0
	for _, p := range parts {
		b.WriteRune(p.Content)
		if p.Bold {
			boldCount++
		}
	}
	return IndentedLine{
		parts:     parts,
		justified: justified,
		content:   b.String(),
		bold:      boldCount*3 > len(parts)*2,
	}
}

// FromMultiple concatenates several lines into one, recomputing dx for
// the first part of each successive line so indentation is preserved
// as an absolute page-space value for the very first part only; every
// other dx remains relative to its immediate predecessor. The
// concatenation's justified flag is taken from the last non-empty
// input line, matching how a logical paragraph line carries over the
// last physical line's justification.
func FromMultiple(others []IndentedLine) IndentedLine {
	var resultParts []Part
	x := 0.0
	for _, other := range others {
		first := true
		for _, part := range other.parts {
			if first {
				resultParts = append(resultParts, Part{Dx: part.Dx - x, Content: part.Content, Bold: part.Bold})
				x = part.Dx
				first = false
			} else {
				resultParts = append(resultParts, part)
				x += part.Dx
			}
		}
	}
	justified := false
	for i := len(others) - 1; i >= 0; i-- {
		if !others[i].IsEmpty() {
			justified = others[i].justified
			break
		}
	}
	return FromParts(resultParts, justified)
}

// Indent returns the absolute horizontal position of the line's first
// character, or 0 for an empty line.
func (l IndentedLine) Indent() float64 {
	if len(l.parts) == 0 {
		return 0
	}
	return l.parts[0].Dx
}

// Content returns the line's text.
func (l IndentedLine) Content() string { return l.content }

// IsBold reports whether a majority (more than two thirds) of the
// line's characters were rendered bold. A strict majority, rather than
// "any bold character", avoids false positives from a single bold
// section-mark glyph preceding normal-weight body text.
func (l IndentedLine) IsBold() bool { return l.bold }

// IsJustified reports whether the line was stretched to the page's
// full text width.
func (l IndentedLine) IsJustified() bool { return l.justified }

// Len returns the number of characters in the line.
func (l IndentedLine) Len() int { return len(l.parts) }

// IsEmpty reports whether the line has no characters.
func (l IndentedLine) IsEmpty() bool { return len(l.parts) == 0 }

func (l IndentedLine) convertIndex(from int) int {
	n := len(l.parts)
	if from < 0 {
		from = n + from
	}
	if from < 0 {
		return 0
	}
	if from > n {
		return n
	}
	return from
}

// Slice returns the sub-line [from, to), supporting Python-style
// negative indices measured from the end. A nil to means "to the end".
func (l IndentedLine) Slice(from int, to *int) IndentedLine {
	fromIdx := l.convertIndex(from)
	toIdx := len(l.parts)
	if to != nil {
		toIdx = l.convertIndex(*to)
	}
	if toIdx <= fromIdx {
		return Empty
	}
	newParts := make([]Part, toIdx-fromIdx)
	copy(newParts, l.parts[fromIdx:toIdx])

	additionalIndent := 0.0
	for _, p := range l.parts[:fromIdx] {
		additionalIndent += p.Dx
	}
	newParts[0].Dx += additionalIndent

	justified := l.justified && toIdx == len(l.parts)
	return FromParts(newParts, justified)
}

// SliceBytes is like Slice, but from/to are byte offsets into Content()
// rather than character indices, matching how Go's regexp package
// reports submatch boundaries.
func (l IndentedLine) SliceBytes(from int, to *int) IndentedLine {
	charFrom := byteOffsetToCharIndex(l.content, from)
	var charTo *int
	if to != nil {
		if *to >= len(l.content) {
			n := len([]rune(l.content))
			charTo = &n
		} else {
			idx := byteOffsetToCharIndex(l.content, *to)
			charTo = &idx
		}
	}
	return l.Slice(charFrom, charTo)
}

func byteOffsetToCharIndex(s string, byteOffset int) int {
	idx := 0
	for bytePos := range s {
		if bytePos == byteOffset {
			return idx
		}
		idx++
	}
	return idx
}

// IndentLessOrEq reports whether this line's indent is no more than
// other plus the similarity threshold, i.e. whether it should be
// treated as starting at the same or a shallower indentation level.
func (l IndentedLine) IndentLessOrEq(other float64) bool {
	return l.Indent() <= other+indentSimilarityThreshold
}

// IndentAt returns the cumulative indentation up to and including
// character index from. Indexes past the line's length return the
// indent of the last character.
func (l IndentedLine) IndentAt(from int) float64 {
	limit := l.convertIndex(from) + 1
	if limit > len(l.parts) {
		limit = len(l.parts)
	}
	sum := 0.0
	for _, p := range l.parts[:limit] {
		sum += p.Dx
	}
	return sum
}

// AppendTo appends l's content to s, inserting a separating space
// unless either side is empty or s already ends in a hyphen (which
// marks a word broken across lines, to be rejoined without a space).
func (l IndentedLine) AppendTo(s *strings.Builder) {
	if !l.IsEmpty() {
		current := s.String()
		if current != "" && !strings.HasSuffix(current, "-") {
			s.WriteByte(' ')
		}
		s.WriteString(l.content)
	}
}

// Equal reports whether l and other have the same indent, content and
// boldness; the part-level dx values of interior characters, and the
// per-character bold flags, are deliberately not compared.
func (l IndentedLine) Equal(other IndentedLine) bool {
	return l.Indent() == other.Indent() && l.content == other.content && l.bold == other.bold
}

// ParseHeader matches re against l's content and, if it matches,
// parses capture group 1 with parse and returns the remainder of the
// line starting at the last capture group as a new IndentedLine. This
// is the standard way a structural/article header line is split into
// "the identifier" and "the rest of the line, to recurse into".
func ParseHeader[T any](l IndentedLine, re *regexp.Regexp, parse func(string) (T, error)) (T, IndentedLine, bool) {
	var zero T
	loc := re.FindStringSubmatchIndex(l.content)
	if loc == nil {
		return zero, Empty, false
	}
	if len(loc) < 4 || loc[2] < 0 {
		return zero, Empty, false
	}
	idStr := l.content[loc[2]:loc[3]]
	id, err := parse(idStr)
	if err != nil {
		return zero, Empty, false
	}
	lastGroup := (len(loc) / 2) - 1
	restFrom := loc[2*lastGroup]
	restTo := loc[2*lastGroup+1]
	if restFrom < 0 {
		return zero, Empty, false
	}
	rest := l.SliceBytes(restFrom, &restTo)
	return id, rest, true
}

// FromTestStr builds a line from a human-writable shorthand used in
// tests: "<BOLD>" switches every following character to bold, "<NJ>"
// marks the line as not justified, and runs of spaces are collapsed
// into a single dx on the following character, the same convention the
// extracted gazette text uses for word spacing.
func FromTestStr(s string) IndentedLine {
	bold := strings.Contains(s, "<BOLD>")
	justified := !strings.Contains(s, "<NJ>")
	s = strings.ReplaceAll(s, "<BOLD>", "      ")
	s = strings.ReplaceAll(s, "<NJ>", "    ")

	var parts []Part
	spacesNum := 1
	for _, c := range s {
		if c == ' ' {
			if spacesNum == 0 {
				parts = append(parts, Part{Dx: 5.0, Content: c, Bold: bold})
			}
			spacesNum++
		} else {
			parts = append(parts, Part{Dx: 5.0 + float64(spacesNum)*5.0, Content: c, Bold: bold})
			spacesNum = 0
		}
	}
	return FromParts(parts, justified)
}
