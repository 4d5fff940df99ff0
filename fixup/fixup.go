/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package fixup implements declarative line-edit records applied to a
// gazette's line list before structural parsing, and the yaml-backed
// on-disk store that persists them per Act under
// "data/fixups/<year>/<act-id>.yml".
package fixup

import (
	"fmt"

	"github.com/badicsalex/hunlaw/line"
)

// replacementFakeWidth is the synthetic per-character advance used when
// interpolating dx for purely inserted/appended text, or when the
// original line was empty.
const replacementFakeWidth = 10.0

// Fixup replaces one exact line of text, identified by its content and
// (optionally) the content of the lines immediately preceding it, with
// new text. SetBold forces the replacement's boldness instead of
// copying it from the line being replaced.
type Fixup struct {
	After   []string `yaml:"after,omitempty"`
	Old     string   `yaml:"old"`
	New     string   `yaml:"new"`
	SetBold bool     `yaml:"set_bold,omitempty"`
}

// Apply searches lines for the unique occurrence of f.After followed by
// f.Old and replaces that line in place. It fails if the window is not
// found, or is found more than once.
func (f Fixup) Apply(lines []line.IndentedLine) error {
	needle := make([]string, 0, len(f.After)+1)
	needle = append(needle, f.After...)
	needle = append(needle, f.Old)

	contents := make([]string, len(lines))
	for i, l := range lines {
		contents[i] = l.Content()
	}

	position := -1
	count := 0
	for i := 0; i+len(needle) <= len(contents); i++ {
		if windowEquals(contents[i:i+len(needle)], needle) {
			count++
			if position < 0 {
				position = i + len(f.After)
			}
		}
	}
	if count == 0 {
		return fmt.Errorf("could not find %q in text", f.Old)
	}
	if count > 1 {
		return fmt.Errorf("replacement 'old' text (%q) found too many (%d) times", f.Old, count)
	}

	replaced, err := f.applyToLine(lines[position])
	if err != nil {
		return fmt.Errorf("could not apply fixup %q -> %q: %w", f.Old, f.New, err)
	}
	lines[position] = replaced
	return nil
}

func windowEquals(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// applyToLine builds the replacement line for one matched occurrence of
// f.Old, splicing the longest common prefix and suffix with f.New and
// interpolating dx for the synthetic middle run.
func (f Fixup) applyToLine(l line.IndentedLine) (line.IndentedLine, error) {
	if l.Content() != f.Old {
		return line.Empty, fmt.Errorf("erroneous call to applyToLine")
	}
	if f.Old == f.New {
		return line.Empty, fmt.Errorf("useless fixup (old == new)")
	}
	if f.New == "" {
		return line.Empty, nil
	}

	oldRunes := []rune(f.Old)
	newRunes := []rune(f.New)

	prefixLen := 0
	for prefixLen < len(oldRunes) && prefixLen < len(newRunes) && oldRunes[prefixLen] == newRunes[prefixLen] {
		prefixLen++
	}

	restOfOld := oldRunes[prefixLen:]
	postfixLen := 0
	for postfixLen < len(restOfOld) && postfixLen < len(newRunes)-prefixLen &&
		restOfOld[len(restOfOld)-1-postfixLen] == newRunes[len(newRunes)-1-postfixLen] {
		postfixLen++
	}

	oldLen := len(oldRunes)

	var replacementIndentStart float64
	switch {
	case prefixLen >= oldLen:
		// Pure appending. indentAt gives the indent of the last
		// character, so offset right a bit.
		replacementIndentStart = l.IndentAt(prefixLen) + replacementFakeWidth*0.5
	case prefixLen > 0:
		if postfixLen > 0 && prefixLen+postfixLen >= oldLen {
			// Pure insertion in the middle: squeeze between the two
			// retained characters.
			replacementIndentStart = (l.IndentAt(prefixLen-1) + l.IndentAt(prefixLen)) * 0.5
		} else {
			replacementIndentStart = l.IndentAt(prefixLen)
		}
	case postfixLen > 0:
		replacementIndentStart = l.IndentAt(-postfixLen) - replacementFakeWidth
	default:
		replacementIndentStart = l.Indent()
	}

	var replacementIndentEnd float64
	switch {
	case postfixLen > 0:
		replacementIndentEnd = l.IndentAt(-postfixLen)
	case prefixLen > 0:
		replacementIndentEnd = l.IndentAt(10000) + replacementFakeWidth
	case l.IsEmpty():
		replacementIndentEnd = replacementFakeWidth
	default:
		replacementIndentEnd = l.IndentAt(10000)
	}

	replacementStrLen := len(newRunes) - prefixLen - postfixLen
	replacementRunes := newRunes[prefixLen : prefixLen+replacementStrLen]

	bold := l.IsBold()
	if f.SetBold {
		bold = true
	}

	parts := make([]line.Part, replacementStrLen)
	for i, c := range replacementRunes {
		var dx float64
		if i == 0 {
			dx = replacementIndentStart
		} else {
			// Not a divide-by-zero: replacementStrLen is at least 1 here.
			dx = (replacementIndentEnd - replacementIndentStart) / float64(replacementStrLen)
		}
		parts[i] = line.Part{Dx: dx, Content: c, Bold: bold}
	}
	replacement := line.FromParts(parts, false)

	toPrefix := prefixLen
	prefix := l.Slice(0, &toPrefix)
	var postfix line.IndentedLine
	if postfixLen == 0 {
		postfix = line.Empty
	} else {
		postfix = l.Slice(-postfixLen, nil)
	}

	return line.FromMultiple([]line.IndentedLine{prefix, replacement, postfix}), nil
}

// String renders a human-readable description of f, used in error
// context annotations.
func (f Fixup) String() string {
	return fmt.Sprintf("%q -> %q", f.Old, f.New)
}

// ApplyAll applies every fixup in fixups, in order, to lines.
func ApplyAll(fixups []Fixup, lines []line.IndentedLine) error {
	for _, f := range fixups {
		if err := f.Apply(lines); err != nil {
			return err
		}
	}
	return nil
}
