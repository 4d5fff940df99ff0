/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package semantics

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/reference"
	"github.com/badicsalex/hunlaw/structure"
)

// Special-phrase trigger patterns: the fixed legal formulas amending
// acts use for block amendments, enforcement dates, repeals, text
// amendments and article-title amendments. See the package doc comment
// in abbreviation.go for why these are hand-written regexes rather
// than a grammar.
var (
	blockAmendmentReplaceRe = regexp.MustCompile(`helyébe a következő [^.]*? lép`)
	blockAmendmentInsertRe  = regexp.MustCompile(`a következő [^.]*? egészül ki`)
	enforcementDateMarkerRe = regexp.MustCompile(`lép hatályba`)
	repealMarkerRe          = regexp.MustCompile(`hatály(?:át|ukat) vesz(?:ti|tik)`)
	// One (from -> to) substitution pair. The shared closing "lép" is
	// checked separately since a multi-pair sentence writes it only once,
	// at the very end ("az „X” szövegrész helyébe a „Y” szöveg, valamint
	// az „A” szövegrész helyébe a „B” szöveg lép").
	textAmendmentPairRe    = regexp.MustCompile(`„([^„”]+)”\s*szövegrész(?:ek)? helyébe(?: az?)? „([^„”]+)”\s*szöveg(?:ek)?`)
	textAmendmentClosingRe = regexp.MustCompile(`szöveg(?:ek)? lép`)
	quotedTextPartRe       = regexp.MustCompile(`„([^„”]+)”\s*szövegrész`)
	articleTitleMarkerRe   = regexp.MustCompile(`cím[ée]ben`)
	daysAfterPublicationRe = regexp.MustCompile(`a kihirdetést követő (\d+)\. napon lép hatályba`)
	singleDayAfterPublicRe = regexp.MustCompile(`a kihirdetést követő napon lép hatályba`)
	dayInMonthRe           = regexp.MustCompile(`a kihirdetést követő ([a-záéíóöőúüű]+ )?hónap (\d+)\. napján lép hatályba`)
	absoluteDateRe         = regexp.MustCompile(`(\d{4})\. ([a-záéíóöőúüű]+) (\d{1,2})\. napján lép hatályba`)
	inlineRepealDateRe     = regexp.MustCompile(`(\d{4})\. ([a-záéíóöőúüű]+) (\d{1,2})\. napjával hatályát veszti`)

	// Structural-element mentions, used by structural repeals, by the
	// "at the end of part/title/chapter" subtitle-amendment variant, and
	// by an enforcement date's structural positions. These match the
	// same Hungarian-ordinal (Part), roman-numeral (Title, Chapter) and
	// digit (Subtitle) printed forms HeaderString renders, here found in
	// running prose rather than a capitalized standalone header line.
	partMentionRe     = regexp.MustCompile(`(?i)([a-záéíóöőúüű]+) rész`)
	titleMentionRe    = regexp.MustCompile(`(?i)([ivxlcdm]+)\.\s*cím`)
	chapterMentionRe  = regexp.MustCompile(`(?i)([ivxlcdm]+)\.\s*fejezet`)
	subtitleMentionRe = regexp.MustCompile(`(?i)(\d+(?:/[a-z])?)\.\s*alcím`)

	// SubtitleBlockAmendment: a subtitle inserted or replaced before or
	// after a named article. Case-insensitive like the mention patterns
	// above, since these phrases can open a sentence.
	subtitleMarkerRe        = regexp.MustCompile(`(?i)alcím`)
	subtitleBeforeArticleRe = regexp.MustCompile(`(?i)(\d+(?:/[a-z])?)\.\s*§-?[aá]?t?\s*megelőző alcím`)
	subtitleAfterArticleRe  = regexp.MustCompile(`(?i)(\d+(?:/[a-z])?)\.\s*§-?[aá]?t?\s*követő alcím`)
)

// classifySpecialPhrase inspects the assembled text and the references
// already scanned out of it, and returns at most one special-phrase
// classification per element. The checks run in a fixed priority
// order; the first classifier that fires wins.
func classifySpecialPhrase(text string, refs []ScannedReference) structure.SpecialPhrase {
	nonActOnly := make([]reference.Reference, 0, len(refs))
	for _, r := range refs {
		if !r.Reference.IsActOnly() {
			nonActOnly = append(nonActOnly, r.Reference)
		}
	}

	if phrase := classifyStructuralBlockAmendment(text, refs, nonActOnly); phrase != nil {
		return phrase
	}
	if phrase := classifyBlockAmendment(text, nonActOnly); phrase != nil {
		return phrase
	}
	if phrase := classifyEnforcementDate(text, nonActOnly); phrase != nil {
		return phrase
	}
	if phrase := classifyStructuralRepeal(text, nonActOnly); phrase != nil {
		return phrase
	}
	if phrase := classifyRepeal(text, refs, nonActOnly); phrase != nil {
		return phrase
	}
	if phrase := classifyTextAmendment(text, nonActOnly); phrase != nil {
		return phrase
	}
	return nil
}

// matchStructuralElementMentions scans text for Part/Title/Chapter/
// Subtitle mentions (in that order, at most one result per kind),
// parsing each one's printed numeral form via the same identifier
// parsers structure.StructuralElement.HeaderString renders with.
func matchStructuralElementMentions(text string) []reference.StructuralReferenceElement {
	var result []reference.StructuralReferenceElement
	if m := partMentionRe.FindStringSubmatch(text); m != nil {
		if id, err := identifier.ParseNumericIdentifierFromHungarian(m[1]); err == nil {
			result = append(result, reference.StructuralReferenceElement{Kind: reference.StructuralReferencePart, NumericID: id})
		}
	}
	if m := titleMentionRe.FindStringSubmatch(text); m != nil {
		if id, err := identifier.ParseNumericIdentifierFromRoman(m[1]); err == nil {
			result = append(result, reference.StructuralReferenceElement{Kind: reference.StructuralReferenceTitle, NumericID: id})
		}
	}
	if m := chapterMentionRe.FindStringSubmatch(text); m != nil {
		if id, err := identifier.ParseNumericIdentifierFromRoman(m[1]); err == nil {
			result = append(result, reference.StructuralReferenceElement{Kind: reference.StructuralReferenceChapter, NumericID: id})
		}
	}
	if m := subtitleMentionRe.FindStringSubmatch(text); m != nil {
		if id, err := identifier.ParseNumericIdentifier(m[1]); err == nil {
			result = append(result, reference.StructuralReferenceElement{Kind: reference.StructuralReferenceSubtitleID, NumericID: id})
		}
	}
	return result
}

// classifyStructuralBlockAmendment recognizes block amendments whose
// target is a structural element rather than an article/SAE: a subtitle
// replaced or inserted immediately before/after a named article, a
// Part/Title/Chapter/Subtitle replaced wholesale by its own number, or a
// subtitle inserted "at the end of" a named Part/Title/Chapter.
// The by-number branch only fires
// when no SAE reference was scanned, so an ordinary paragraph amendment
// that happens to mention a chapter in passing stays with
// classifyBlockAmendment.
func classifyStructuralBlockAmendment(text string, refs []ScannedReference, nonActOnly []reference.Reference) structure.SpecialPhrase {
	isReplace := blockAmendmentReplaceRe.MatchString(text)
	isInsert := blockAmendmentInsertRe.MatchString(text)
	if !isReplace && !isInsert {
		return nil
	}
	pureInsertion := isInsert && !isReplace
	hasSubtitleMarker := subtitleMarkerRe.MatchString(text)

	var elem *reference.StructuralReferenceElement
	switch {
	case hasSubtitleMarker && subtitleBeforeArticleRe.MatchString(text):
		m := subtitleBeforeArticleRe.FindStringSubmatch(text)
		if art, err := identifier.ParseArticleIdentifier(m[1]); err == nil {
			elem = &reference.StructuralReferenceElement{Kind: reference.StructuralReferenceSubtitleBeforeArticle, ArticleAnchor: art}
		}
	case hasSubtitleMarker && subtitleAfterArticleRe.MatchString(text):
		m := subtitleAfterArticleRe.FindStringSubmatch(text)
		if art, err := identifier.ParseArticleIdentifier(m[1]); err == nil {
			elem = &reference.StructuralReferenceElement{Kind: reference.StructuralReferenceSubtitleAfterArticle, ArticleAnchor: art}
		}
	case len(nonActOnly) == 0:
		for _, m := range matchStructuralElementMentions(text) {
			mention := m
			if pureInsertion && hasSubtitleMarker {
				// "a II. Fejezet a következő alcímmel egészül ki": the
				// named element is the insertion point, not the target.
				switch m.Kind {
				case reference.StructuralReferencePart:
					mention.Kind = reference.StructuralReferenceAtTheEndOfPart
				case reference.StructuralReferenceTitle:
					mention.Kind = reference.StructuralReferenceAtTheEndOfTitle
				case reference.StructuralReferenceChapter:
					mention.Kind = reference.StructuralReferenceAtTheEndOfChapter
				}
			}
			elem = &mention
			break
		}
	}
	if elem == nil {
		return nil
	}

	position := reference.StructuralReference{StructuralElement: *elem}
	for _, r := range refs {
		if act := actPtr(r.Reference); act != nil {
			position.Act = act
			break
		}
	}
	return structure.StructuralBlockAmendmentPhrase{Position: position, PureInsertion: pureInsertion}
}

// classifyStructuralRepeal recognizes a wholesale Part/Title/Chapter/
// Subtitle repeal: the same "hatályát veszti" marker classifyRepeal
// uses, but naming a structural element instead of an Article/
// Paragraph/Point/Subpoint reference chain. Only fires when no such
// reference chain was found, since a repeal that does name one is
// classifyRepeal's ordinary case.
func classifyStructuralRepeal(text string, nonActOnly []reference.Reference) structure.SpecialPhrase {
	if !repealMarkerRe.MatchString(text) {
		return nil
	}
	if len(nonActOnly) > 0 {
		return nil
	}
	elems := matchStructuralElementMentions(text)
	if len(elems) == 0 {
		return nil
	}
	return structure.StructuralRepealPhrase{Position: reference.StructuralReference{StructuralElement: elems[0]}}
}

func spanOf(refs []reference.Reference) (reference.Reference, bool) {
	if len(refs) == 0 {
		return reference.Reference{}, false
	}
	first := refs[0].FirstInRange()
	last := refs[len(refs)-1].LastInRange()
	if position, err := reference.MakeRange(first, last); err == nil {
		return position, true
	}
	return first, true
}

func classifyBlockAmendment(text string, nonActOnly []reference.Reference) structure.SpecialPhrase {
	isReplace := blockAmendmentReplaceRe.MatchString(text)
	isInsert := blockAmendmentInsertRe.MatchString(text)
	if !isReplace && !isInsert {
		return nil
	}
	position, ok := spanOf(nonActOnly)
	if !ok {
		return nil
	}
	pureInsertion := isInsert && !isReplace

	last := position.GetLastPart()
	if last.Kind == reference.AnyReferencePartArticle {
		return structure.StructuralBlockAmendmentPhrase{
			Position: reference.StructuralReference{
				Act: actPtr(position),
				StructuralElement: reference.StructuralReferenceElement{
					Kind:          reference.StructuralReferenceArticle,
					ArticleAnchor: last.Article.First(),
				},
			},
			PureInsertion: pureInsertion,
		}
	}
	return structure.BlockAmendmentPhrase{Position: position, PureInsertion: pureInsertion}
}

func actPtr(r reference.Reference) *identifier.ActIdentifier {
	if act, ok := r.Act(); ok {
		return &act
	}
	return nil
}

func classifyEnforcementDate(text string, nonActOnly []reference.Reference) structure.SpecialPhrase {
	if !enforcementDateMarkerRe.MatchString(text) {
		return nil
	}
	value := parseEnforcementDateValue(text)
	if value == nil {
		return nil
	}
	structuralPositions := structuralPositionsFor(text)
	return structure.EnforcementDatePhrase{
		Positions:           nonActOnly,
		StructuralPositions: structuralPositions,
		IsDefault:           len(nonActOnly) == 0 && len(structuralPositions) == 0,
		Date:                value,
		InlineRepeal:        parseInlineRepealDate(text),
	}
}

// structuralPositionsFor resolves an enforcement-date sentence's
// structural-element mentions into StructuralReferences, alongside
// whatever ordinary Article/Paragraph/... references classifyEnforcementDate
// already collects into Positions.
func structuralPositionsFor(text string) []reference.StructuralReference {
	var result []reference.StructuralReference
	for _, elem := range matchStructuralElementMentions(text) {
		result = append(result, reference.StructuralReference{StructuralElement: elem})
	}
	return result
}

// parseInlineRepealDate recognizes the "...napjával hatályát veszti"
// clause an enforcement-date sentence may carry alongside its own date,
// naming when the enforcing provision itself self-repeals.
func parseInlineRepealDate(text string) *time.Time {
	m := inlineRepealDateRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	year, yerr := strconv.Atoi(m[1])
	month, merr := identifier.HungarianMonth(m[2])
	day, derr := strconv.Atoi(m[3])
	if yerr != nil || merr != nil || derr != nil {
		return nil
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

func parseEnforcementDateValue(text string) structure.EnforcementDateValue {
	if m := absoluteDateRe.FindStringSubmatch(text); m != nil {
		year, yerr := strconv.Atoi(m[1])
		month, merr := identifier.HungarianMonth(m[2])
		day, derr := strconv.Atoi(m[3])
		if yerr == nil && merr == nil && derr == nil {
			return structure.AbsoluteDate(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
		}
	}
	if m := dayInMonthRe.FindStringSubmatch(text); m != nil {
		day, err := strconv.Atoi(m[2])
		if err == nil {
			var month *int
			if name := strings.TrimSpace(m[1]); name != "" {
				if mo, merr := identifier.HungarianMonth(name); merr == nil {
					month = &mo
				}
			}
			return structure.DayInMonthAfterPublication{Month: month, Day: day}
		}
	}
	if m := daysAfterPublicationRe.FindStringSubmatch(text); m != nil {
		days, err := strconv.Atoi(m[1])
		if err == nil {
			return structure.DaysAfterPublication(days)
		}
	}
	if singleDayAfterPublicRe.MatchString(text) {
		return structure.DaysAfterPublication(1)
	}
	return nil
}

func classifyRepeal(text string, refs []ScannedReference, nonActOnly []reference.Reference) structure.SpecialPhrase {
	if !repealMarkerRe.MatchString(text) {
		return nil
	}
	positions := nonActOnly
	if len(positions) == 0 {
		for _, r := range refs {
			if r.Reference.IsActOnly() {
				positions = append(positions, r.Reference)
				break
			}
		}
	}
	if len(positions) == 0 {
		return nil
	}

	// A repeal that names quoted text parts ("az „X” szövegrész hatályát
	// veszti") only strikes those parts, not the whole reference; it is
	// encoded as one TextAmendment per (reference, text) with an empty
	// replacement.
	if texts := quotedTextPartRe.FindAllStringSubmatch(text, -1); len(texts) > 0 {
		result := make(structure.TextAmendmentListPhrase, 0, len(positions)*len(texts))
		for _, pos := range positions {
			for _, m := range texts {
				result = append(result, structure.TextAmendment{
					Reference: structure.SAETextAmendmentReference{Reference: pos, AmendedPart: structure.TextAmendmentSAEPartAll},
					From:      m[1],
					To:        "",
				})
			}
		}
		return result
	}
	return structure.RepealPhrase{Positions: positions}
}

func classifyTextAmendment(text string, nonActOnly []reference.Reference) structure.SpecialPhrase {
	if !textAmendmentClosingRe.MatchString(text) {
		return nil
	}
	pairs := textAmendmentPairRe.FindAllStringSubmatch(text, -1)
	if len(pairs) == 0 {
		return nil
	}
	if len(nonActOnly) == 0 {
		return nil
	}

	if articleTitleMarkerRe.MatchString(text) {
		return structure.ArticleTitleAmendmentPhrase{
			Reference: nonActOnly[0],
			From:      pairs[0][1],
			To:        pairs[0][2],
		}
	}

	result := make(structure.TextAmendmentListPhrase, 0, len(nonActOnly)*len(pairs))
	for _, ref := range nonActOnly {
		for _, pair := range pairs {
			result = append(result, structure.TextAmendment{
				Reference: structure.SAETextAmendmentReference{Reference: ref, AmendedPart: structure.TextAmendmentSAEPartAll},
				From:      pair[1],
				To:        pair[2],
			})
		}
	}
	return result
}
