/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package structure

import (
	"fmt"
	"strings"
	"time"

	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/line"
)

// ParsingContext distinguishes parsing a full Act (preamble allowed,
// indentation-driven wrap-up split, id-less uppercase subtitles
// allowed) from parsing a block amendment's quoted lines (no preamble,
// justification-driven wrap-up split).
type ParsingContext int

const (
	ContextFullAct ParsingContext = iota
	ContextBlockAmendment
)

var structuralElementFactories = []structuralElementParserFactory{
	{elementType: StructuralElementBook},
	{elementType: StructuralElementPart},
	{elementType: StructuralElementTitle},
	{elementType: StructuralElementChapter},
}

// parseState is the top-level dispatcher's currently-open element. A
// nil value in every field means "still in the preamble".
type parseState struct {
	article  *articleParser
	se       *structuralElementParser
	subtitle *subtitleParser
}

func (s *parseState) isEmpty() bool {
	return s.article == nil && s.se == nil && s.subtitle == nil
}

func (s *parseState) finish() (ActChild, error) {
	switch {
	case s.article != nil:
		return s.article.finish()
	case s.se != nil:
		return s.se.finish(), nil
	case s.subtitle != nil:
		return s.subtitle.finish(), nil
	}
	return nil, fmt.Errorf("parsing ended with preamble state")
}

func (s *parseState) feedLine(l line.IndentedLine, preamble *strings.Builder) {
	switch {
	case s.article != nil:
		s.article.feedLine(l)
	case s.se != nil:
		s.se.feedLine(l)
	case s.subtitle != nil:
		s.subtitle.feedLine(l)
	default:
		l.AppendTo(preamble)
	}
}

// ParseActStructure parses one Act's raw line body, as produced by the
// segmenter, into its preamble and top-level children.
func ParseActStructure(
	id identifier.ActIdentifier,
	subject string,
	publicationDate time.Time,
	body []line.IndentedLine,
) (*Act, error) {
	preamble, children, err := parseComplexBody(body, ContextFullAct)
	if err != nil {
		return nil, err
	}
	return &Act{
		Identifier:             id,
		Subject:                subject,
		Preamble:               preamble,
		PublicationDate:        publicationDate,
		ContainedAbbreviations: map[string]identifier.ActIdentifier{},
		Children:               children,
	}, nil
}

// parseComplexBody is the shared top-level dispatch loop used both for
// a full Act's body and, recursively, for a structural block
// amendment's captured quoted lines.
func parseComplexBody(lines []line.IndentedLine, context ParsingContext) (string, []ActChild, error) {
	var preamble strings.Builder
	var children []ActChild
	state := &parseState{}
	articleFactory := newArticleParserFactory(context)
	var qc quoteCheck
	prevLineIsEmpty := true

	for _, l := range lines {
		if err := qc.update(l); err != nil {
			return "", nil, err
		}
		var newState *parseState
		if !qc.beginningIsQuoted {
			newState = tryStartNewElement(l, prevLineIsEmpty, context, articleFactory)
		}
		if newState != nil {
			if !state.isEmpty() {
				child, err := state.finish()
				if err != nil {
					return "", nil, err
				}
				children = append(children, child)
			}
			state = newState
		} else {
			state.feedLine(l, &preamble)
		}
		prevLineIsEmpty = l.IsEmpty()
	}
	if err := qc.checkEnd(); err != nil {
		return "", nil, err
	}

	if state.isEmpty() {
		return "", nil, fmt.Errorf("parsing ended with preamble state")
	}
	child, err := state.finish()
	if err != nil {
		return "", nil, err
	}
	children = append(children, child)

	if context != ContextFullAct && preamble.Len() > 0 {
		return "", nil, fmt.Errorf("junk detected at the beginning of a complex body")
	}

	for _, child := range children {
		if st, ok := child.(*Subtitle); ok {
			// 2011. évi CCI. törvény has a legit 1135 character subtitle.
			if len(st.Title) > 1500 {
				return "", nil, fmt.Errorf("probable corrupted read: way too long (%d) subtitle title detected: %.100s...", len(st.Title), st.Title)
			}
		}
	}

	return preamble.String(), children, nil
}

func tryStartNewElement(l line.IndentedLine, prevLineIsEmpty bool, context ParsingContext, articleFactory *articleParserFactory) *parseState {
	for _, fac := range structuralElementFactories {
		if p, ok := fac.tryCreateFromHeader(l); ok {
			return &parseState{se: p}
		}
	}
	if p, ok := tryCreateSubtitleFromHeader(l, prevLineIsEmpty, context); ok {
		return &parseState{subtitle: p}
	}
	if p, ok := articleFactory.tryCreateFromHeader(l, nil); ok {
		return &parseState{article: p}
	}
	return nil
}
