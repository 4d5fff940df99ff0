/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package structure

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/line"
)

var subtitleTitleRe = regexp.MustCompile(`^([0-9]+(/[A-Z])?)\. (.*)$`)

// tryCreateSubtitleFromHeader recognizes a bold header line as the start of a
// Subtitle, either numbered ("14. A kártérítés szabályai") or, in
// full-Act context only, an id-less all-caps-starting line immediately
// following an empty one (the convention used before 2011).
func tryCreateSubtitleFromHeader(l line.IndentedLine, prevLineIsEmpty bool, context ParsingContext) (*subtitleParser, bool) {
	if !l.IsBold() {
		return nil, false
	}
	if m := subtitleTitleRe.FindStringSubmatch(l.Content()); m != nil {
		id, err := identifier.ParseNumericIdentifier(m[1])
		if err != nil {
			return nil, false
		}
		p := &subtitleParser{identifier: &id}
		p.title.WriteString(m[3])
		return p, true
	}
	if context != ContextFullAct {
		return nil, false
	}
	if !prevLineIsEmpty {
		return nil, false
	}
	content := l.Content()
	first, _ := firstRune(content)
	if first == 0 || !unicode.IsUpper(first) {
		return nil, false
	}
	p := &subtitleParser{}
	p.title.WriteString(content)
	return p, true
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

type subtitleParser struct {
	identifier *identifier.NumericIdentifier
	title      strings.Builder
}

func (p *subtitleParser) feedLine(l line.IndentedLine) {
	if !l.IsEmpty() {
		if p.title.Len() > 0 {
			p.title.WriteByte(' ')
		}
		p.title.WriteString(l.Content())
	}
}

func (p *subtitleParser) finish() *Subtitle {
	return &Subtitle{Identifier: p.identifier, Title: p.title.String()}
}
