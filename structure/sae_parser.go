/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package structure

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/line"
)

// saeParseParams configures one call to extractMultiple/parseOne.
type saeParseParams struct {
	parseWrapUp        bool
	checkChildrenCount bool
	context            ParsingContext
}

func defaultSAEParseParams(context ParsingContext) saeParseParams {
	return saeParseParams{parseWrapUp: true, checkChildrenCount: true, context: context}
}

// saeElem is one parsed child at some SAE level, before it is converted
// into the level's concrete struct (AlphabeticPoint, NumericSubpoint,
// ...).
type saeElem[T identifier.Identifier[T]] struct {
	id   T
	body SAEBody
}

// levelParser bundles the two operations that vary by SAE level
// (header recognition and the attempt to recognize the next child
// level down), mirroring the Rust SAEParser trait's two required
// methods. Collapsed to a plain struct of function fields since Go has
// no trait objects generic over an associated ChildrenType; every
// level's tryExtractChildren closure is responsible for building the
// right concrete SAEChildren variant itself.
type levelParser[T identifier.Identifier[T]] struct {
	label              string
	parseHeader        func(line.IndentedLine) (T, line.IndentedLine, bool)
	tryExtractChildren func(id T, prevNonEmpty *line.IndentedLine, body []line.IndentedLine, params saeParseParams) (SAEChildren, *string, error)
}

// parseOne parses a single instance of this level: walk body, looking
// for a child-level header on every non-quoted line; the first
// successful recognition fixes the children variant for good.
func (lp levelParser[T]) parseOne(id T, body []line.IndentedLine, context ParsingContext) (SAEBody, error) {
	var intro strings.Builder
	var qc quoteCheck
	var prevNonEmpty *line.IndentedLine
	for i := range body {
		if err := qc.update(body[i]); err != nil {
			return nil, err
		}
		if !qc.beginningIsQuoted {
			if children, wrapUp, err := lp.tryExtractChildren(id, prevNonEmpty, body[i:], defaultSAEParseParams(context)); err == nil {
				return ChildrenBody{Intro: intro.String(), Children: children, WrapUp: wrapUp}, nil
			}
		}
		body[i].AppendTo(&intro)
		if !body[i].IsEmpty() {
			l := body[i]
			prevNonEmpty = &l
		}
	}
	if err := qc.checkEnd(); err != nil {
		return nil, err
	}
	return TextBody(intro.String()), nil
}

// extractMultiple extracts a run of same-level siblings from lines,
// which must start with a valid header for this level, then splits off
// the enclosing element's wrap-up (indentation-driven for a full Act,
// justification-driven for a block amendment).
func (lp levelParser[T]) extractMultiple(lines []line.IndentedLine, params saeParseParams, expectedIdentifier *T) ([]saeElem[T], *string, error) {
	if len(lines) == 0 {
		return nil, nil, fmt.Errorf("%s: empty line list", lp.label)
	}
	id, firstLineRest, ok := lp.parseHeader(lines[0])
	if !ok {
		return nil, nil, fmt.Errorf("%s: invalid header: %q", lp.label, lines[0].Content())
	}
	if expectedIdentifier != nil {
		if id != *expectedIdentifier {
			return nil, nil, fmt.Errorf("%s: parsed identifier is different than expected", lp.label)
		}
	} else if !id.IsFirst() {
		return nil, nil, fmt.Errorf("%s: parsed identifier was not first", lp.label)
	}

	var qc quoteCheck
	if err := qc.update(firstLineRest); err != nil {
		return nil, nil, err
	}
	var result []saeElem[T]
	body := []line.IndentedLine{firstLineRest}
	headerIndent := lines[0].Indent()

	for _, l := range lines[1:] {
		if err := qc.update(l); err != nil {
			return nil, nil, err
		}
		var newID T
		var rest line.IndentedLine
		found := false
		if !qc.beginningIsQuoted {
			newID, rest, found = lp.parseAndCheckHeader(id, headerIndent, l)
		}
		if found {
			sb, err := lp.parseOne(id, body, params.context)
			if err != nil {
				return nil, nil, err
			}
			result = append(result, saeElem[T]{id: id, body: sb})
			id = newID
			body = []line.IndentedLine{rest}
		} else if !l.IsEmpty() {
			body = append(body, l)
		}
	}
	if err := qc.checkEnd(); err != nil {
		return nil, nil, err
	}

	var wrapUp *string
	if params.parseWrapUp {
		splitAt := -1
		switch params.context {
		case ContextFullAct:
			for i, l := range body {
				if l.IndentLessOrEq(headerIndent) {
					splitAt = i
					break
				}
			}
		case ContextBlockAmendment:
			// Search from the end for the last non-justified line; the
			// wrap-up starts right after it. The very last line is
			// skipped since it can be justified or not without meaning
			// anything.
			for i := len(body) - 2; i >= 0; i-- {
				if !body[i].IsJustified() {
					splitAt = i + 1
					break
				}
			}
		}
		if splitAt >= 0 {
			wrapUpLines := body[splitAt:]
			body = body[:splitAt]
			var b strings.Builder
			for _, l := range wrapUpLines {
				l.AppendTo(&b)
			}
			if b.Len() > 0 {
				s := b.String()
				wrapUp = &s
			}
		}
	}

	sb, err := lp.parseOne(id, body, params.context)
	if err != nil {
		return nil, nil, err
	}
	result = append(result, saeElem[T]{id: id, body: sb})

	if params.checkChildrenCount && len(result) <= 1 {
		return nil, nil, fmt.Errorf("%s: not enough children could be parsed", lp.label)
	}
	return result, wrapUp, nil
}

// parseAndCheckHeader parses line as a header for this level and
// verifies both its indentation (no deeper than headerIndent plus the
// similarity threshold) and that it is the immediate successor of
// lastIdentifier.
func (lp levelParser[T]) parseAndCheckHeader(lastIdentifier T, headerIndent float64, l line.IndentedLine) (T, line.IndentedLine, bool) {
	var zero T
	if !l.IndentLessOrEq(headerIndent) {
		return zero, line.Empty, false
	}
	id, rest, ok := lp.parseHeader(l)
	if !ok {
		return zero, line.Empty, false
	}
	if !id.IsNextFrom(lastIdentifier) {
		return zero, line.Empty, false
	}
	return id, rest, true
}

var (
	paragraphHeaderRe          = regexp.MustCompile(`^\(([0-9]+[a-z]?)\) +(.*)$`)
	numericPointHeaderRe       = regexp.MustCompile(`^([0-9]+(/?[a-z])?)\. +(.*)$`)
	alphabeticPointHeaderRe    = regexp.MustCompile(`^([a-z]|cs|dz|gy|ly|ny|sz|ty)\) +(.*)$`)
	alphabeticSubpointHeaderRe = regexp.MustCompile(`^([a-z]?[a-z])\) +(.*)$`)
)

func paragraphParser(context ParsingContext) levelParser[identifier.NumericIdentifier] {
	return levelParser[identifier.NumericIdentifier]{
		label: "Paragraph",
		parseHeader: func(l line.IndentedLine) (identifier.NumericIdentifier, line.IndentedLine, bool) {
			return line.ParseHeader(l, paragraphHeaderRe, identifier.ParseNumericIdentifier)
		},
		tryExtractChildren: func(id identifier.NumericIdentifier, prevNonEmpty *line.IndentedLine, body []line.IndentedLine, params saeParseParams) (SAEChildren, *string, error) {
			if qb, wrapUp, err := extractQuotedBlocks(prevNonEmpty, body); err == nil {
				return qb, wrapUp, nil
			}
			np := numericPointParser()
			if elems, wrapUp, err := np.extractMultiple(body, params, nil); err == nil {
				return toNumericPointList(elems), wrapUp, nil
			}
			ap := alphabeticPointParser()
			if elems, wrapUp, err := ap.extractMultiple(body, params, nil); err == nil {
				return toAlphabeticPointList(elems), wrapUp, nil
			}
			return nil, nil, fmt.Errorf("paragraph has no recognizable children")
		},
	}
}

func numericPointParser() levelParser[identifier.NumericIdentifier] {
	return levelParser[identifier.NumericIdentifier]{
		label: "NumericPoint",
		parseHeader: func(l line.IndentedLine) (identifier.NumericIdentifier, line.IndentedLine, bool) {
			return line.ParseHeader(l, numericPointHeaderRe, identifier.ParseNumericIdentifier)
		},
		tryExtractChildren: func(id identifier.NumericIdentifier, prevNonEmpty *line.IndentedLine, body []line.IndentedLine, params saeParseParams) (SAEChildren, *string, error) {
			sp := alphabeticSubpointParser(nil)
			elems, wrapUp, err := sp.extractMultiple(body, params, nil)
			if err != nil {
				return nil, nil, err
			}
			return toAlphabeticSubpointList(elems), wrapUp, nil
		},
	}
}

func alphabeticPointParser() levelParser[identifier.HungarianChar] {
	return levelParser[identifier.HungarianChar]{
		label: "AlphabeticPoint",
		parseHeader: func(l line.IndentedLine) (identifier.HungarianChar, line.IndentedLine, bool) {
			return line.ParseHeader(l, alphabeticPointHeaderRe, identifier.ParseHungarianChar)
		},
		tryExtractChildren: func(id identifier.HungarianChar, prevNonEmpty *line.IndentedLine, body []line.IndentedLine, params saeParseParams) (SAEChildren, *string, error) {
			nsp := numericSubpointParser()
			if elems, wrapUp, err := nsp.extractMultiple(body, params, nil); err == nil {
				return toNumericSubpointList(elems), wrapUp, nil
			}
			idCopy := id
			asp := alphabeticSubpointParser(&idCopy)
			elems, wrapUp, err := asp.extractMultiple(body, params, nil)
			if err != nil {
				return nil, nil, err
			}
			return toAlphabeticSubpointList(elems), wrapUp, nil
		},
	}
}

func numericSubpointParser() levelParser[identifier.NumericIdentifier] {
	return levelParser[identifier.NumericIdentifier]{
		label: "NumericSubpoint",
		parseHeader: func(l line.IndentedLine) (identifier.NumericIdentifier, line.IndentedLine, bool) {
			return line.ParseHeader(l, numericPointHeaderRe, identifier.ParseNumericIdentifier)
		},
		tryExtractChildren: func(identifier.NumericIdentifier, *line.IndentedLine, []line.IndentedLine, saeParseParams) (SAEChildren, *string, error) {
			return nil, nil, fmt.Errorf("subpoints can't have children")
		},
	}
}

// alphabeticSubpointParser builds the parser for "a)", or "ba)" when
// prefix is non-nil (an alphabetic subpoint nested under an alphabetic
// point whose own letter becomes the prefix).
func alphabeticSubpointParser(prefix *identifier.HungarianChar) levelParser[identifier.PrefixedAlphabeticIdentifier] {
	return levelParser[identifier.PrefixedAlphabeticIdentifier]{
		label: "AlphabeticSubpoint",
		parseHeader: func(l line.IndentedLine) (identifier.PrefixedAlphabeticIdentifier, line.IndentedLine, bool) {
			result, rest, ok := line.ParseHeader(l, alphabeticSubpointHeaderRe, identifier.ParsePrefixedAlphabeticIdentifier)
			if !ok {
				return identifier.PrefixedAlphabeticIdentifier{}, line.Empty, false
			}
			if !prefixMatches(result, prefix) {
				return identifier.PrefixedAlphabeticIdentifier{}, line.Empty, false
			}
			return result, rest, true
		},
		tryExtractChildren: func(identifier.PrefixedAlphabeticIdentifier, *line.IndentedLine, []line.IndentedLine, saeParseParams) (SAEChildren, *string, error) {
			return nil, nil, fmt.Errorf("subpoints can't have children")
		},
	}
}

func prefixMatches(id identifier.PrefixedAlphabeticIdentifier, prefix *identifier.HungarianChar) bool {
	if prefix == nil {
		return !id.HasPrefix
	}
	return id.HasPrefix && id.Prefix == prefix.String()[0]
}

func toNumericPointList(elems []saeElem[identifier.NumericIdentifier]) NumericPointList {
	out := make(NumericPointList, len(elems))
	for i, e := range elems {
		out[i] = NumericPoint{Identifier: e.id, Body: e.body}
	}
	return out
}

func toAlphabeticPointList(elems []saeElem[identifier.HungarianChar]) AlphabeticPointList {
	out := make(AlphabeticPointList, len(elems))
	for i, e := range elems {
		out[i] = AlphabeticPoint{Identifier: e.id, Body: e.body}
	}
	return out
}

func toNumericSubpointList(elems []saeElem[identifier.NumericIdentifier]) NumericSubpointList {
	out := make(NumericSubpointList, len(elems))
	for i, e := range elems {
		out[i] = NumericSubpoint{Identifier: e.id, Body: e.body}
	}
	return out
}

func toAlphabeticSubpointList(elems []saeElem[identifier.PrefixedAlphabeticIdentifier]) AlphabeticSubpointList {
	out := make(AlphabeticSubpointList, len(elems))
	for i, e := range elems {
		out[i] = AlphabeticSubpoint{Identifier: e.id, Body: e.body}
	}
	return out
}

func toParagraphList(elems []saeElem[identifier.NumericIdentifier]) ParagraphList {
	out := make(ParagraphList, len(elems))
	for i, e := range elems {
		id := e.id
		out[i] = Paragraph{Identifier: &id, Body: e.body}
	}
	return out
}
