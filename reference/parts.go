/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package reference implements the 5-slot Act/article/paragraph/point/
// subpoint reference model used to resolve cross-references found in
// an Act's text, and the separate StructuralReference model used for
// references to Books/Parts/Titles/Chapters/Subtitles.
package reference

import "github.com/badicsalex/hunlaw/identifier"

// RefPartArticle is the article-level reference part: a single article
// or a contiguous range of them.
type RefPartArticle = identifier.IdentifierRange[identifier.ArticleIdentifier]

// RefPartParagraph is the paragraph-level reference part.
type RefPartParagraph = identifier.IdentifierRange[identifier.NumericIdentifier]

// PointKind distinguishes numeric ("1.") from alphabetic ("a)") points,
// since an Article's points are always one kind or the other but the
// reference model has to carry either.
type PointKind int

const (
	// PointKindNumeric marks a RefPartPoint/RefPartSubpoint holding
	// NumericIdentifier ranges.
	PointKindNumeric PointKind = iota
	// PointKindAlphabetic marks a RefPartPoint holding AlphabeticIdentifier
	// ranges, or a RefPartSubpoint holding PrefixedAlphabeticIdentifier ranges.
	PointKindAlphabetic
)

// RefPartPoint is the point-level reference part, holding either a
// numeric or an alphabetic identifier range; never both.
type RefPartPoint struct {
	Kind       PointKind
	Numeric    identifier.IdentifierRange[identifier.NumericIdentifier]
	Alphabetic identifier.IdentifierRange[identifier.AlphabeticIdentifier]
}

// NumericRefPartPoint builds a numeric point part.
func NumericRefPartPoint(r identifier.IdentifierRange[identifier.NumericIdentifier]) RefPartPoint {
	return RefPartPoint{Kind: PointKindNumeric, Numeric: r}
}

// AlphabeticRefPartPoint builds an alphabetic point part.
func AlphabeticRefPartPoint(r identifier.IdentifierRange[identifier.AlphabeticIdentifier]) RefPartPoint {
	return RefPartPoint{Kind: PointKindAlphabetic, Alphabetic: r}
}

// IsRange reports whether the underlying identifier range spans more
// than one point.
func (p RefPartPoint) IsRange() bool {
	if p.Kind == PointKindNumeric {
		return p.Numeric.IsRange()
	}
	return p.Alphabetic.IsRange()
}

func (p RefPartPoint) String() string {
	if p.Kind == PointKindNumeric {
		return p.Numeric.String()
	}
	return p.Alphabetic.String()
}

// RefPartSubpoint is the subpoint-level reference part, holding either
// a numeric or a prefixed-alphabetic identifier range.
type RefPartSubpoint struct {
	Kind       PointKind
	Numeric    identifier.IdentifierRange[identifier.NumericIdentifier]
	Alphabetic identifier.IdentifierRange[identifier.PrefixedAlphabeticIdentifier]
}

// NumericRefPartSubpoint builds a numeric subpoint part.
func NumericRefPartSubpoint(r identifier.IdentifierRange[identifier.NumericIdentifier]) RefPartSubpoint {
	return RefPartSubpoint{Kind: PointKindNumeric, Numeric: r}
}

// AlphabeticRefPartSubpoint builds a prefixed-alphabetic subpoint part.
func AlphabeticRefPartSubpoint(r identifier.IdentifierRange[identifier.PrefixedAlphabeticIdentifier]) RefPartSubpoint {
	return RefPartSubpoint{Kind: PointKindAlphabetic, Alphabetic: r}
}

// IsRange reports whether the underlying identifier range spans more
// than one subpoint.
func (p RefPartSubpoint) IsRange() bool {
	if p.Kind == PointKindNumeric {
		return p.Numeric.IsRange()
	}
	return p.Alphabetic.IsRange()
}

func (p RefPartSubpoint) String() string {
	if p.Kind == PointKindNumeric {
		return p.Numeric.String()
	}
	return p.Alphabetic.String()
}

// AnyReferencePartKind enumerates which level AnyReferencePart holds.
type AnyReferencePartKind int

const (
	AnyReferencePartEmpty AnyReferencePartKind = iota
	AnyReferencePartAct
	AnyReferencePartArticle
	AnyReferencePartParagraph
	AnyReferencePartPoint
	AnyReferencePartSubpoint
)

// AnyReferencePart is the result of Reference.GetLastPart: whichever
// level is the most specific one filled in on a Reference.
type AnyReferencePart struct {
	Kind      AnyReferencePartKind
	Act       identifier.ActIdentifier
	Article   RefPartArticle
	Paragraph RefPartParagraph
	Point     RefPartPoint
	Subpoint  RefPartSubpoint
}
