/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package structure

import (
	"fmt"
	"strings"

	"github.com/badicsalex/hunlaw/line"
)

// quoteCheck tracks the nesting depth of „…” quotes across successive
// lines, so the structural parser can suppress header recognition while
// inside an open quote.
type quoteCheck struct {
	level int
	// beginningIsQuoted reports whether the most recently updated line
	// started inside an already-open quote.
	beginningIsQuoted bool
	// endIsQuoted reports whether the most recently updated line ended
	// inside a still-open quote.
	endIsQuoted bool
}

// update feeds the next line's content, adjusting the quote depth by
// counting opening „/“ and closing ” runes. The depth is not allowed to
// go negative: any line closing more quotes than are open is a parse
// error, since a mismatched quote almost always means OCR or extraction
// corruption rather than legitimate grammar.
func (q *quoteCheck) update(l line.IndentedLine) error {
	q.beginningIsQuoted = q.level > 0
	for _, r := range l.Content() {
		switch r {
		case '„', '“':
			q.level++
		case '”':
			q.level--
			if q.level < 0 {
				return fmt.Errorf("unbalanced quotes in line %q", l.Content())
			}
		}
	}
	q.endIsQuoted = q.level > 0
	return nil
}

// checkEnd reports an error if a quote was left open at the end of the
// line list being parsed.
func (q *quoteCheck) checkEnd() error {
	if q.level != 0 {
		return fmt.Errorf("unbalanced quotes at end of input (depth %d)", q.level)
	}
	return nil
}

// endsWithColon reports whether s, once trimmed of surrounding
// whitespace, ends with ':'. Used to decide whether a paragraph's body
// expects an intro before its first quoted block.
func endsWithColon(s string) bool {
	return strings.HasSuffix(strings.TrimRight(s, " "), ":")
}
