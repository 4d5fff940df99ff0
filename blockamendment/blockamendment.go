/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package blockamendment implements the pass that runs after semantic
// extraction and converts a captured QuotedBlock into a fully
// structured BlockAmendment or StructuralBlockAmendment, by recursively
// re-parsing the quoted lines at the target reference's level.
//
// The re-parse entry points live next to the structural parser they
// reuse (structure/block_amendment_parser.go); this package only does
// the walk and the per-level dispatch.
package blockamendment

import (
	"fmt"

	"github.com/badicsalex/hunlaw/internal/errctx"
	"github.com/badicsalex/hunlaw/line"
	"github.com/badicsalex/hunlaw/reference"
	"github.com/badicsalex/hunlaw/structure"
)

// Convert walks every Article's Paragraphs in act and, wherever a
// Paragraph's body is exactly one captured QuotedBlock and its
// SemanticInfo special phrase is a BlockAmendment or
// StructuralBlockAmendment, replaces the QuotedBlock with the
// corresponding re-parsed BlockAmendment/StructuralBlockAmendment.
// Paragraphs whose special phrase is anything else, or whose body isn't
// a lone QuotedBlock, are left untouched: the conversion only fires on
// that exact shape.
func Convert(act *structure.Act) error {
	for _, article := range act.Articles() {
		for i := range article.Children {
			if err := convertParagraph(&article.Children[i]); err != nil {
				return errctx.Wrap(err, "Article", article.Identifier.String())
			}
		}
	}
	return nil
}

func convertParagraph(p *structure.Paragraph) error {
	cb, ok := p.Body.(structure.ChildrenBody)
	if !ok {
		return nil
	}
	qbl, ok := cb.Children.(structure.QuotedBlockList)
	if !ok || len(qbl) != 1 {
		return nil
	}
	qb := qbl[0]

	switch phrase := p.Semantic.SpecialPhrase.(type) {
	case structure.BlockAmendmentPhrase:
		children, err := convertSimple(qb.Lines, phrase.Position)
		if err != nil {
			return err
		}
		cb.Children = structure.BlockAmendment{Intro: qb.Intro, Children: children, WrapUp: qb.WrapUp}
	case structure.StructuralBlockAmendmentPhrase:
		children, err := structure.ParseStructuralBlockAmendmentChildren(qb.Lines)
		if err != nil {
			return err
		}
		cb.Children = structure.StructuralBlockAmendment{Intro: qb.Intro, Children: children, WrapUp: qb.WrapUp}
	default:
		return nil
	}
	p.Body = cb
	return nil
}

// convertSimple dispatches a non-structural BlockAmendment's target
// reference to the matching SAE-level re-parser, seeded with the first
// identifier in the target range.
func convertSimple(lines []line.IndentedLine, position reference.Reference) (structure.BlockAmendmentChildren, error) {
	last := position.GetLastPart()
	switch last.Kind {
	case reference.AnyReferencePartParagraph:
		return structure.ParseBlockAmendmentParagraphs(lines, last.Paragraph.First())
	case reference.AnyReferencePartPoint:
		if last.Point.Kind == reference.PointKindNumeric {
			return structure.ParseBlockAmendmentNumericPoints(lines, last.Point.Numeric.First())
		}
		return structure.ParseBlockAmendmentAlphabeticPoints(lines, last.Point.Alphabetic.First())
	case reference.AnyReferencePartSubpoint:
		if last.Subpoint.Kind == reference.PointKindNumeric {
			return structure.ParseBlockAmendmentNumericSubpoints(lines, last.Subpoint.Numeric.First())
		}
		return structure.ParseBlockAmendmentAlphabeticSubpoints(lines, last.Subpoint.Alphabetic.First())
	default:
		return nil, fmt.Errorf("block amendment target has no paragraph/point/subpoint part (kind %v)", last.Kind)
	}
}
