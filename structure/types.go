/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package structure implements the Act tree data model and the
// structural parser that builds it out of an ActRawText's
// IndentedLines. The tree's variant-shaped nodes (an Act child is a
// structural element, a subtitle or an article; an SAE body is text or
// children) are modeled as marker interfaces implemented by every
// concrete variant.
package structure

import (
	"errors"
	"strings"
	"time"

	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/line"
)

var errInvalidSpecialPart = errors.New("invalid special part identifier")

// Act is the root of the parsed document tree: one Act from one
// Magyar Közlöny issue.
type Act struct {
	Identifier             identifier.ActIdentifier
	Subject                string
	Preamble               string
	PublicationDate        time.Time
	ContainedAbbreviations map[string]identifier.ActIdentifier
	Children               []ActChild
}

// Articles returns the Act's direct Article children, skipping
// StructuralElement and Subtitle siblings.
func (a *Act) Articles() []*Article {
	var out []*Article
	for _, c := range a.Children {
		if art, ok := c.(*Article); ok {
			out = append(out, art)
		}
	}
	return out
}

// ActChild is implemented by *StructuralElement, *Subtitle and
// *Article: the three kinds of direct child an Act (or a
// StructuralBlockAmendment) can hold.
type ActChild interface {
	isActChild()
}

func (*StructuralElement) isActChild() {}
func (*Subtitle) isActChild()          {}
func (*Article) isActChild()           {}

// StructuralElementType enumerates Book/Part/Title/Chapter, the
// above-article numbered divisions.
type StructuralElementType int

const (
	StructuralElementBook StructuralElementType = iota
	StructuralElementPart
	StructuralElementTitle
	StructuralElementChapter
)

// StructuralElement is one Book/Part/Title/Chapter header and its
// accumulated title text.
type StructuralElement struct {
	Identifier identifier.NumericIdentifier
	Title      string
	Type       StructuralElementType
	// IsSpecialPart marks the three-part "ÁLTALÁNOS RÉSZ" / "KÜLÖNÖS
	// RÉSZ" / "ZÁRÓ RÉSZ" numbering, only meaningful when Type is
	// StructuralElementPart.
	IsSpecialPart bool
}

// HeaderString renders the canonical printed header for e, e.g.
// "NYOLCADIK KÖNYV", "II. FEJEZET".
func (e *StructuralElement) HeaderString() (string, error) {
	switch e.Type {
	case StructuralElementBook:
		h, err := e.Identifier.ToHungarian()
		if err != nil {
			return "", err
		}
		return strings.ToUpper(h) + " KÖNYV", nil
	case StructuralElementPart:
		if e.IsSpecialPart {
			switch e.Identifier.Num {
			case 1:
				return "ÁLTALÁNOS RÉSZ", nil
			case 2:
				return "KÜLÖNÖS RÉSZ", nil
			case 3:
				return "ZÁRÓ RÉSZ", nil
			}
			return "", errInvalidSpecialPart
		}
		h, err := e.Identifier.ToHungarian()
		if err != nil {
			return "", err
		}
		return strings.ToUpper(h) + " RÉSZ", nil
	case StructuralElementTitle:
		r, err := e.Identifier.ToRoman()
		if err != nil {
			return "", err
		}
		return r + ". CÍM", nil
	case StructuralElementChapter:
		r, err := e.Identifier.ToRoman()
		if err != nil {
			return "", err
		}
		return r + ". FEJEZET", nil
	}
	return "", errInvalidSpecialPart
}

// Subtitle is a labeled heading between structural elements and
// articles; it may lack a number entirely (pre-2011 Acts), in which
// case Identifier is nil and the whole line becomes the Title.
type Subtitle struct {
	Identifier *identifier.NumericIdentifier
	Title      string
}

// Article is a single "§" element, the lowest level that ever carries
// its own book-aware identifier.
type Article struct {
	Identifier identifier.ArticleIdentifier
	Title      *string
	Children   []Paragraph
}

// HeaderString renders "{id}. §".
func (a *Article) HeaderString() string {
	return a.Identifier.String() + ". §"
}

// SAEBody is implemented by TextBody and ChildrenBody: the two ways a
// sub-article element's content can be shaped, mirroring Rust's
// untagged SAEBody<ChildrenType> enum.
type SAEBody interface {
	isSAEBody()
}

// TextBody is a leaf SAE body: plain paragraph/point/subpoint text with
// no further structure.
type TextBody string

func (TextBody) isSAEBody() {}

// ChildrenBody is a branching SAE body: introductory text, a
// level-specific list of children, and optional trailing wrap-up text.
type ChildrenBody struct {
	Intro    string
	Children SAEChildren
	WrapUp   *string
}

func (ChildrenBody) isSAEBody() {}

// SAEChildren is implemented by every concrete children-list type legal
// under some SAEBody: ParagraphChildren's variants, AlphabeticPoint's,
// NumericPoint's, and the block-amendment/structural-block-amendment
// children lists. The same Go slice/struct type routinely satisfies
// more than one of the level-specific marker interfaces below, since
// e.g. AlphabeticPoint lists are legal under both a Paragraph and a
// BlockAmendment.
type SAEChildren interface {
	isSAEChildren()
}

// Paragraph is a numbered (or, for an article's sole paragraph,
// unlabelled) subdivision of an Article.
type Paragraph struct {
	Identifier *identifier.NumericIdentifier
	Body       SAEBody
	Semantic   SemanticInfo
}

// AlphabeticPointList, NumericPointList, QuotedBlockList are the
// Vec<T>-shaped ParagraphChildren variants.
type AlphabeticPointList []AlphabeticPoint
type NumericPointList []NumericPoint
type QuotedBlockList []QuotedBlock

func (AlphabeticPointList) isSAEChildren() {}
func (NumericPointList) isSAEChildren()    {}
func (QuotedBlockList) isSAEChildren()     {}

// AlphabeticPoint is a lettered point ("a)") under a Paragraph.
type AlphabeticPoint struct {
	Identifier identifier.AlphabeticIdentifier
	Body       SAEBody
	Semantic   SemanticInfo
}

// NumericPoint is a numbered point ("1.") under a Paragraph.
type NumericPoint struct {
	Identifier identifier.NumericIdentifier
	Body       SAEBody
	Semantic   SemanticInfo
}

// AlphabeticSubpointList, NumericSubpointList are the Vec<T>-shaped
// AlphabeticPointChildren/NumericPointChildren variants.
type AlphabeticSubpointList []AlphabeticSubpoint
type NumericSubpointList []NumericSubpoint

func (AlphabeticSubpointList) isSAEChildren() {}
func (NumericSubpointList) isSAEChildren()    {}

// AlphabeticSubpoint is a leaf: a lettered subpoint under an
// AlphabeticPoint or NumericPoint, optionally prefixed by its parent
// point's letter ("ba)").
type AlphabeticSubpoint struct {
	Identifier identifier.PrefixedAlphabeticIdentifier
	Body       SAEBody
	Semantic   SemanticInfo
}

// NumericSubpoint is a leaf: a numbered subpoint under an
// AlphabeticPoint.
type NumericSubpoint struct {
	Identifier identifier.NumericIdentifier
	Body       SAEBody
	Semantic   SemanticInfo
}

// QuotedBlock carries the raw, not-yet-reparsed lines captured between
// "„" and "”" inside a paragraph destined for amendment conversion.
// Optional intro/wrap-up hold any "(...)" framing text around the
// quotes.
type QuotedBlock struct {
	Intro  *string
	Lines  []line.IndentedLine
	WrapUp *string
}

// BlockAmendment replaces a QuotedBlock once the amendment converter
// has recursively re-parsed its lines at the target reference's level.
type BlockAmendment struct {
	Intro    *string
	Children BlockAmendmentChildren
	WrapUp   *string
}

func (BlockAmendment) isSAEChildren() {}

// BlockAmendmentChildren is implemented by the five Vec<T>-shaped
// variants a BlockAmendment's children can take, one per possible
// target level.
type BlockAmendmentChildren interface {
	isBlockAmendmentChildren()
}

type ParagraphList []Paragraph

func (ParagraphList) isBlockAmendmentChildren()          {}
func (AlphabeticPointList) isBlockAmendmentChildren()    {}
func (NumericPointList) isBlockAmendmentChildren()       {}
func (AlphabeticSubpointList) isBlockAmendmentChildren() {}
func (NumericSubpointList) isBlockAmendmentChildren()    {}

// StructuralBlockAmendment replaces a QuotedBlock when the amendment's
// target is a structural element (Part/Title/Chapter/Subtitle) rather
// than an Article or SAE; its children are full ActChild nodes produced
// by re-running the structural parser.
type StructuralBlockAmendment struct {
	Intro    *string
	Children []ActChild
	WrapUp   *string
}

func (StructuralBlockAmendment) isSAEChildren() {}
