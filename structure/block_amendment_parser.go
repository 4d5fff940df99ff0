/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package structure

import (
	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/line"
)

// blockAmendmentParams is the saeParseParams used for every re-parse of
// a captured quoted block: wrap-up is never split off again (the
// wrap-up, if any, already lives in the enclosing Paragraph the
// QuotedBlock is being replaced inside of) and a single recognized
// child is enough.
var blockAmendmentParams = saeParseParams{parseWrapUp: false, checkChildrenCount: false, context: ContextBlockAmendment}

// ParseBlockAmendmentParagraphs re-parses a captured quoted block whose
// target's deepest part is a Paragraph.
func ParseBlockAmendmentParagraphs(lines []line.IndentedLine, first identifier.NumericIdentifier) (ParagraphList, error) {
	pp := paragraphParser(ContextBlockAmendment)
	elems, _, err := pp.extractMultiple(lines, blockAmendmentParams, &first)
	if err != nil {
		return nil, err
	}
	return toParagraphList(elems), nil
}

// ParseBlockAmendmentNumericPoints re-parses a captured quoted block
// whose target's deepest part is a numeric Point ("1.").
func ParseBlockAmendmentNumericPoints(lines []line.IndentedLine, first identifier.NumericIdentifier) (NumericPointList, error) {
	np := numericPointParser()
	elems, _, err := np.extractMultiple(lines, blockAmendmentParams, &first)
	if err != nil {
		return nil, err
	}
	return toNumericPointList(elems), nil
}

// ParseBlockAmendmentAlphabeticPoints re-parses a captured quoted block
// whose target's deepest part is an alphabetic Point ("a)").
func ParseBlockAmendmentAlphabeticPoints(lines []line.IndentedLine, first identifier.HungarianChar) (AlphabeticPointList, error) {
	ap := alphabeticPointParser()
	elems, _, err := ap.extractMultiple(lines, blockAmendmentParams, &first)
	if err != nil {
		return nil, err
	}
	return toAlphabeticPointList(elems), nil
}

// ParseBlockAmendmentNumericSubpoints re-parses a captured quoted block
// whose target's deepest part is a numeric Subpoint.
func ParseBlockAmendmentNumericSubpoints(lines []line.IndentedLine, first identifier.NumericIdentifier) (NumericSubpointList, error) {
	nsp := numericSubpointParser()
	elems, _, err := nsp.extractMultiple(lines, blockAmendmentParams, &first)
	if err != nil {
		return nil, err
	}
	return toNumericSubpointList(elems), nil
}

// ParseBlockAmendmentAlphabeticSubpoints re-parses a captured quoted
// block whose target's deepest part is a prefixed-alphabetic Subpoint.
func ParseBlockAmendmentAlphabeticSubpoints(lines []line.IndentedLine, first identifier.PrefixedAlphabeticIdentifier) (AlphabeticSubpointList, error) {
	var prefix *identifier.HungarianChar
	if first.HasPrefix {
		p, err := identifier.NewLatinChar(first.Prefix)
		if err != nil {
			return nil, err
		}
		prefix = &p
	}
	asp := alphabeticSubpointParser(prefix)
	elems, _, err := asp.extractMultiple(lines, blockAmendmentParams, &first)
	if err != nil {
		return nil, err
	}
	return toAlphabeticSubpointList(elems), nil
}

// ParseStructuralBlockAmendmentChildren re-parses a captured quoted
// block targeting a structural element (part/title/chapter/subtitle):
// the full top-level dispatch loop, same as a whole Act's body, just
// without a preamble.
func ParseStructuralBlockAmendmentChildren(lines []line.IndentedLine) ([]ActChild, error) {
	_, children, err := parseComplexBody(lines, ContextBlockAmendment)
	if err != nil {
		return nil, err
	}
	return children, nil
}
