/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package structure

import (
	"time"

	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/reference"
)

// SemanticInfo is the per-SAE annotation the semantic extractor produces: every
// cross-reference found in the element's text, any act abbreviations it
// introduced, and at most one special phrase classification.
type SemanticInfo struct {
	OutgoingReferences []OutgoingReference
	NewAbbreviations   map[string]identifier.ActIdentifier
	SpecialPhrase      SpecialPhrase
}

// IsEmpty reports whether no semantic information was attached at all.
func (s SemanticInfo) IsEmpty() bool {
	return len(s.OutgoingReferences) == 0 && len(s.NewAbbreviations) == 0 && s.SpecialPhrase == nil
}

// OutgoingReference locates one resolved cross-reference inside the
// owning SAE's text by byte offset.
type OutgoingReference struct {
	Start     int
	End       int
	Reference reference.Reference
}

// SpecialPhrase is implemented by every classified special-phrase
// shape: BlockAmendment, StructuralBlockAmendment, EnforcementDate,
// Repeal, StructuralRepeal, ArticleTitleAmendment, and TextAmendmentList (Rust's
// Vec<TextAmendment>, kept as one variant since text amendments from
// the same sentence are never split across SAEs).
type SpecialPhrase interface {
	isSpecialPhrase()
}

// BlockAmendmentPhrase classifies an SAE whose quoted block replaces the
// content at Position. PureInsertion is true when no existing text is
// being replaced (a pure insertion amendment).
type BlockAmendmentPhrase struct {
	Position      reference.Reference
	PureInsertion bool
}

func (BlockAmendmentPhrase) isSpecialPhrase() {}

// StructuralBlockAmendmentPhrase is like BlockAmendmentPhrase, but the
// target is a structural element rather than an article/SAE.
type StructuralBlockAmendmentPhrase struct {
	Position      reference.StructuralReference
	PureInsertion bool
}

func (StructuralBlockAmendmentPhrase) isSpecialPhrase() {}

// EnforcementDatePhrase classifies a sentence naming when a set of
// references (or structural positions) takes effect.
type EnforcementDatePhrase struct {
	Positions           []reference.Reference
	StructuralPositions []reference.StructuralReference
	// IsDefault marks the Act-wide default enforcement date, the one
	// that applies to every reference the Act doesn't otherwise name.
	IsDefault    bool
	Date         EnforcementDateValue
	InlineRepeal *time.Time
}

func (EnforcementDatePhrase) isSpecialPhrase() {}

// EnforcementDateValue is implemented by the three ways an enforcement
// date can be expressed.
type EnforcementDateValue interface {
	isEnforcementDateValue()
}

// AbsoluteDate is a literal calendar date.
type AbsoluteDate time.Time

func (AbsoluteDate) isEnforcementDateValue() {}

// DaysAfterPublication counts days from the Act's publication date.
type DaysAfterPublication uint16

func (DaysAfterPublication) isEnforcementDateValue() {}

// DayInMonthAfterPublication names a day in a month after publication:
// Month nil means the month following publication, a set Month names
// the month ("a kihirdetést követő március hónap 15. napján").
type DayInMonthAfterPublication struct {
	Month *int
	Day   int
}

func (DayInMonthAfterPublication) isEnforcementDateValue() {}

// RepealPhrase classifies a sentence repealing one or more references
// wholesale (as opposed to a TextAmendment repealing specific text).
type RepealPhrase struct {
	Positions []reference.Reference
}

func (RepealPhrase) isSpecialPhrase() {}

// StructuralRepealPhrase repeals a structural element (Part, Title,
// Chapter, Subtitle) wholesale.
type StructuralRepealPhrase struct {
	Position reference.StructuralReference
}

func (StructuralRepealPhrase) isSpecialPhrase() {}

// TextAmendmentSAEPart selects which part of a targeted SAE a
// TextAmendment applies to, used when the amendment names only an
// SAE's intro or wrap-up rather than its whole text.
type TextAmendmentSAEPart int

const (
	TextAmendmentSAEPartAll TextAmendmentSAEPart = iota
	TextAmendmentSAEPartIntroOnly
	TextAmendmentSAEPartWrapUpOnly
)

// TextAmendmentReference is implemented by the three ways a
// TextAmendment can name its target.
type TextAmendmentReference interface {
	isTextAmendmentReference()
}

// SAETextAmendmentReference targets an ordinary SAE's text (or a
// specific part of it, see AmendedPart).
type SAETextAmendmentReference struct {
	Reference   reference.Reference
	AmendedPart TextAmendmentSAEPart
}

func (SAETextAmendmentReference) isTextAmendmentReference() {}

// StructuralTextAmendmentReference targets a structural element's
// title text.
type StructuralTextAmendmentReference struct {
	Reference reference.StructuralReference
}

func (StructuralTextAmendmentReference) isTextAmendmentReference() {}

// ArticleTitleTextAmendmentReference targets only an Article's title.
type ArticleTitleTextAmendmentReference struct {
	Reference reference.Reference
}

func (ArticleTitleTextAmendmentReference) isTextAmendmentReference() {}

// TextAmendment replaces occurrences of From with To in the text named
// by Reference.
type TextAmendment struct {
	Reference TextAmendmentReference
	From      string
	To        string
}

// TextAmendmentListPhrase classifies a sentence naming one or more
// (from -> to) substitutions applied across one or more references.
type TextAmendmentListPhrase []TextAmendment

func (TextAmendmentListPhrase) isSpecialPhrase() {}

// ArticleTitleAmendmentPhrase classifies a sentence replacing exactly
// one article's title text.
type ArticleTitleAmendmentPhrase struct {
	Reference reference.Reference
	From      string
	To        string
}

func (ArticleTitleAmendmentPhrase) isSpecialPhrase() {}
