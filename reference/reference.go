/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package reference

import (
	"fmt"

	"github.com/badicsalex/hunlaw/identifier"
)

// Reference identifies an Act, article or SAE, possibly only relative
// to another Reference (e.g. "paragraph (2)" found inside an article,
// with the article and act left unset).
//
// Guarantees upheld by every Reference built through Builder
// or UncheckedReference.Validate:
//   - there are no "gaps" in the parts, except that Paragraph may be
//     missing even when Point/Subpoint are set, meaning the article's
//     sole, un-numbered paragraph
//   - at most one part is a range, and it is always the last set part
type Reference struct {
	act       *identifier.ActIdentifier
	article   *RefPartArticle
	paragraph *RefPartParagraph
	point     *RefPartPoint
	subpoint  *RefPartSubpoint
}

// GetLastPart returns whichever is the most specific part set on r.
func (r Reference) GetLastPart() AnyReferencePart {
	if r.subpoint != nil {
		return AnyReferencePart{Kind: AnyReferencePartSubpoint, Subpoint: *r.subpoint}
	}
	if r.point != nil {
		return AnyReferencePart{Kind: AnyReferencePartPoint, Point: *r.point}
	}
	if r.paragraph != nil {
		return AnyReferencePart{Kind: AnyReferencePartParagraph, Paragraph: *r.paragraph}
	}
	if r.article != nil {
		return AnyReferencePart{Kind: AnyReferencePartArticle, Article: *r.article}
	}
	if r.act != nil {
		return AnyReferencePart{Kind: AnyReferencePartAct, Act: *r.act}
	}
	return AnyReferencePart{Kind: AnyReferencePartEmpty}
}

// IsActOnly reports whether r refers to an entire Act.
func (r Reference) IsActOnly() bool { return r.article == nil }

// Act returns the Act identifier, if set.
func (r Reference) Act() (identifier.ActIdentifier, bool) {
	if r.act == nil {
		return identifier.ActIdentifier{}, false
	}
	return *r.act, true
}

// Article returns the article-level part, if set.
func (r Reference) Article() (RefPartArticle, bool) {
	if r.article == nil {
		return RefPartArticle{}, false
	}
	return *r.article, true
}

// Paragraph returns the paragraph-level part, if set.
func (r Reference) Paragraph() (RefPartParagraph, bool) {
	if r.paragraph == nil {
		return RefPartParagraph{}, false
	}
	return *r.paragraph, true
}

// Point returns the point-level part, if set.
func (r Reference) Point() (RefPartPoint, bool) {
	if r.point == nil {
		return RefPartPoint{}, false
	}
	return *r.point, true
}

// Subpoint returns the subpoint-level part, if set.
func (r Reference) Subpoint() (RefPartSubpoint, bool) {
	if r.subpoint == nil {
		return RefPartSubpoint{}, false
	}
	return *r.subpoint, true
}

// WithoutAct returns a copy of r with the Act part cleared. Unlike
// UncheckedReference.Validate this can never fail: clearing the act
// never introduces a gap.
func (r Reference) WithoutAct() Reference {
	r.act = nil
	return r
}

// FirstInRange collapses every ranged part of r down to its first
// element, e.g. turning "Articles 1-5" into "Article 1".
func (r Reference) FirstInRange() Reference {
	out := r
	if r.article != nil {
		single := identifier.SingleIdentifier[identifier.ArticleIdentifier](r.article.First())
		out.article = &single
	}
	if r.paragraph != nil {
		single := identifier.SingleIdentifier[identifier.NumericIdentifier](r.paragraph.First())
		out.paragraph = &single
	}
	if r.point != nil {
		p := firstOfPoint(*r.point)
		out.point = &p
	}
	if r.subpoint != nil {
		s := firstOfSubpoint(*r.subpoint)
		out.subpoint = &s
	}
	return out
}

// LastInRange collapses every ranged part of r down to its last
// element.
func (r Reference) LastInRange() Reference {
	out := r
	if r.article != nil {
		single := identifier.SingleIdentifier[identifier.ArticleIdentifier](r.article.Last())
		out.article = &single
	}
	if r.paragraph != nil {
		single := identifier.SingleIdentifier[identifier.NumericIdentifier](r.paragraph.Last())
		out.paragraph = &single
	}
	if r.point != nil {
		p := lastOfPoint(*r.point)
		out.point = &p
	}
	if r.subpoint != nil {
		s := lastOfSubpoint(*r.subpoint)
		out.subpoint = &s
	}
	return out
}

func firstOfPoint(p RefPartPoint) RefPartPoint {
	if p.Kind == PointKindNumeric {
		return NumericRefPartPoint(identifier.SingleIdentifier[identifier.NumericIdentifier](p.Numeric.First()))
	}
	return AlphabeticRefPartPoint(identifier.SingleIdentifier[identifier.AlphabeticIdentifier](p.Alphabetic.First()))
}

func lastOfPoint(p RefPartPoint) RefPartPoint {
	if p.Kind == PointKindNumeric {
		return NumericRefPartPoint(identifier.SingleIdentifier[identifier.NumericIdentifier](p.Numeric.Last()))
	}
	return AlphabeticRefPartPoint(identifier.SingleIdentifier[identifier.AlphabeticIdentifier](p.Alphabetic.Last()))
}

func firstOfSubpoint(p RefPartSubpoint) RefPartSubpoint {
	if p.Kind == PointKindNumeric {
		return NumericRefPartSubpoint(identifier.SingleIdentifier[identifier.NumericIdentifier](p.Numeric.First()))
	}
	return AlphabeticRefPartSubpoint(identifier.SingleIdentifier[identifier.PrefixedAlphabeticIdentifier](p.Alphabetic.First()))
}

func lastOfSubpoint(p RefPartSubpoint) RefPartSubpoint {
	if p.Kind == PointKindNumeric {
		return NumericRefPartSubpoint(identifier.SingleIdentifier[identifier.NumericIdentifier](p.Numeric.Last()))
	}
	return AlphabeticRefPartSubpoint(identifier.SingleIdentifier[identifier.PrefixedAlphabeticIdentifier](p.Alphabetic.Last()))
}

// IsParentOf reports whether r is a strict ancestor of other in the
// act/article/paragraph/point/subpoint hierarchy: every part r sets
// must match other's, and r must leave at least one further level
// unset that other does set.
func (r Reference) IsParentOf(other Reference) bool {
	if !actEqual(r.act, other.act) {
		return false
	}
	if !articleEqual(r.article, other.article) {
		return r.article == nil
	}
	if !paragraphEqual(r.paragraph, other.paragraph) {
		return r.paragraph == nil
	}
	if !pointEqual(r.point, other.point) {
		return r.point == nil
	}
	if !subpointEqual(r.subpoint, other.subpoint) {
		return r.subpoint == nil
	}
	return false
}

// Contains reports whether every position named by other lies within
// the range named by r, at whatever level either of them bottoms out.
func (r Reference) Contains(other Reference) bool {
	selfFirst, selfLast := r.FirstInRange(), r.LastInRange()
	otherFirst, otherLast := other.FirstInRange(), other.LastInRange()
	lowOK := compareReferences(selfFirst, otherFirst) <= 0 || selfFirst.IsParentOf(otherFirst)
	highOK := compareReferences(selfLast, otherLast) >= 0 || selfLast.IsParentOf(otherLast)
	return lowOK && highOK
}

// Parent returns r with its most specific part removed.
func (r Reference) Parent() Reference {
	out := r
	switch {
	case r.subpoint != nil:
		out.subpoint = nil
	case r.point != nil:
		out.point = nil
	case r.paragraph != nil:
		out.paragraph = nil
	case r.article != nil:
		out.article = nil
	default:
		return Reference{}
	}
	return out
}

// RelativeTo resolves r, which may only name its most specific parts,
// against a base Reference providing the missing higher-level parts.
// A Reference with only a Paragraph set and no Act/Article, resolved
// against a base naming both, yields a full Reference.
func (r Reference) RelativeTo(base Reference) (Reference, error) {
	u := UncheckedReference{
		act: r.act, article: r.article, paragraph: r.paragraph,
		point: r.point, subpoint: r.subpoint,
	}
	switch {
	case r.act != nil:
		// Already fully specified.
	case r.article != nil:
		u.act = base.act
	case r.paragraph != nil:
		u.act, u.article = base.act, base.article
	case r.point != nil:
		u.act, u.article, u.paragraph = base.act, base.article, base.paragraph
	case r.subpoint != nil:
		u.act, u.article, u.paragraph, u.point = base.act, base.article, base.paragraph, base.point
	default:
		return base, nil
	}
	return u.Validate()
}

// MakeRange builds the smallest Reference spanning [start, end], which
// must be identical except for exactly one trailing part.
func MakeRange(start, end Reference) (Reference, error) {
	b := NewBuilder()
	if !actEqual(start.act, end.act) {
		return Reference{}, fmt.Errorf("reference ranges between acts are not allowed")
	}
	if start.act != nil {
		b.SetAct(*start.act)
	}

	if !articleEqual(start.article, end.article) {
		if start.paragraph != nil || end.paragraph != nil || start.point != nil || end.point != nil ||
			start.subpoint != nil || end.subpoint != nil {
			return Reference{}, fmt.Errorf("reference range differs below the article level")
		}
		if start.article == nil || end.article == nil {
			return Reference{}, fmt.Errorf("reference range between different levels (article)")
		}
		single := identifier.NewIdentifierRange(start.article.First(), end.article.Last())
		b.SetArticle(single)
		return b.Build()
	}
	if start.article != nil {
		b.SetArticle(*start.article)
	}

	if !paragraphEqual(start.paragraph, end.paragraph) {
		if start.point != nil || end.point != nil || start.subpoint != nil || end.subpoint != nil {
			return Reference{}, fmt.Errorf("reference range differs below the paragraph level")
		}
		if start.paragraph == nil || end.paragraph == nil {
			return Reference{}, fmt.Errorf("reference range between different levels (paragraph)")
		}
		b.SetParagraph(identifier.NewIdentifierRange(start.paragraph.First(), end.paragraph.Last()))
		return b.Build()
	}
	if start.paragraph != nil {
		b.SetParagraph(*start.paragraph)
	}

	if !pointEqual(start.point, end.point) {
		if start.subpoint != nil || end.subpoint != nil {
			return Reference{}, fmt.Errorf("reference range differs below the point level")
		}
		if start.point == nil || end.point == nil {
			return Reference{}, fmt.Errorf("reference range between different levels (point)")
		}
		if start.point.Kind != end.point.Kind {
			return Reference{}, fmt.Errorf("point identifier kinds differ when creating a range")
		}
		if start.point.Kind == PointKindNumeric {
			b.SetPoint(NumericRefPartPoint(identifier.NewIdentifierRange(start.point.Numeric.First(), end.point.Numeric.Last())))
		} else {
			b.SetPoint(AlphabeticRefPartPoint(identifier.NewIdentifierRange(start.point.Alphabetic.First(), end.point.Alphabetic.Last())))
		}
		return b.Build()
	}
	if start.point != nil {
		b.SetPoint(*start.point)
	}

	if !subpointEqual(start.subpoint, end.subpoint) {
		if start.subpoint == nil || end.subpoint == nil {
			return Reference{}, fmt.Errorf("reference range between different levels (subpoint)")
		}
		if start.subpoint.Kind != end.subpoint.Kind {
			return Reference{}, fmt.Errorf("subpoint identifier kinds differ when creating a range")
		}
		if start.subpoint.Kind == PointKindNumeric {
			b.SetSubpoint(NumericRefPartSubpoint(identifier.NewIdentifierRange(start.subpoint.Numeric.First(), end.subpoint.Numeric.Last())))
		} else {
			b.SetSubpoint(AlphabeticRefPartSubpoint(identifier.NewIdentifierRange(start.subpoint.Alphabetic.First(), end.subpoint.Alphabetic.Last())))
		}
		return b.Build()
	}
	if start.subpoint != nil {
		b.SetSubpoint(*start.subpoint)
	}
	return b.Build()
}

func actEqual(a, b *identifier.ActIdentifier) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func articleEqual(a, b *RefPartArticle) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func paragraphEqual(a, b *RefPartParagraph) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func pointEqual(a, b *RefPartPoint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == PointKindNumeric {
		return a.Numeric == b.Numeric
	}
	return a.Alphabetic == b.Alphabetic
}

func subpointEqual(a, b *RefPartSubpoint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == PointKindNumeric {
		return a.Numeric == b.Numeric
	}
	return a.Alphabetic == b.Alphabetic
}

// compareReferences provides the total order needed by Contains: it
// compares only the deepest part both references have in common.
func compareReferences(a, b Reference) int {
	if !actEqual(a.act, b.act) {
		if a.act == nil {
			return -1
		}
		if b.act == nil {
			return 1
		}
		return a.act.Compare(*b.act)
	}
	if a.article == nil || b.article == nil {
		return boolCompare(a.article != nil, b.article != nil)
	}
	if c := a.article.First().Compare(b.article.First()); c != 0 {
		return c
	}
	if a.paragraph == nil || b.paragraph == nil {
		return boolCompare(a.paragraph != nil, b.paragraph != nil)
	}
	if c := a.paragraph.First().Compare(b.paragraph.First()); c != 0 {
		return c
	}
	if a.point == nil || b.point == nil {
		return boolCompare(a.point != nil, b.point != nil)
	}
	if c := comparePoint(*a.point, *b.point); c != 0 {
		return c
	}
	if a.subpoint == nil || b.subpoint == nil {
		return boolCompare(a.subpoint != nil, b.subpoint != nil)
	}
	return compareSubpoint(*a.subpoint, *b.subpoint)
}

func boolCompare(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func comparePoint(a, b RefPartPoint) int {
	if a.Kind != b.Kind {
		return int(a.Kind) - int(b.Kind)
	}
	if a.Kind == PointKindNumeric {
		return a.Numeric.First().Compare(b.Numeric.First())
	}
	return a.Alphabetic.First().Compare(b.Alphabetic.First())
}

func compareSubpoint(a, b RefPartSubpoint) int {
	if a.Kind != b.Kind {
		return int(a.Kind) - int(b.Kind)
	}
	if a.Kind == PointKindNumeric {
		return a.Numeric.First().Compare(b.Numeric.First())
	}
	return a.Alphabetic.First().Compare(b.Alphabetic.First())
}

// FromAct builds an Act-only Reference.
func FromAct(act identifier.ActIdentifier) Reference {
	return Reference{act: &act}
}
