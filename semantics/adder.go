/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package semantics

import (
	"fmt"
	"strings"

	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/structure"
	"github.com/badicsalex/hunlaw/walker"
)

// trailingJunk lists the conjunctions assembleToBeParsedText strips off
// a middle segment before it's parsed. The order matters for handling
// ", és" style endings: the comma must be stripped after " és", not
// before.
var trailingJunk = []string{" a", " és", " valamint", " illetve", " vagy", " továbbá", ";", ","}

// semanticInfoAdder implements walker.MutVisitor, attaching a
// structure.SemanticInfo to every SAE leaf and branching-SAE intro.
type semanticInfoAdder struct {
	prefixStack  []string
	postfixStack []string
	cache        *AbbreviationCache
}

func newSemanticInfoAdder(cache *AbbreviationCache) *semanticInfoAdder {
	return &semanticInfoAdder{cache: cache}
}

func (a *semanticInfoAdder) prefix() string {
	if len(a.prefixStack) == 0 {
		return ""
	}
	return a.prefixStack[len(a.prefixStack)-1]
}

func (a *semanticInfoAdder) postfix() string {
	if len(a.postfixStack) == 0 {
		return ""
	}
	return a.postfixStack[len(a.postfixStack)-1]
}

func (a *semanticInfoAdder) OnEnter(intro *string, wrapUp **string, semantic *structure.SemanticInfo) error {
	info, err := a.extractSemanticInfo(*intro)
	if err != nil {
		return err
	}
	switch info.SpecialPhrase.(type) {
	case structure.BlockAmendmentPhrase, structure.StructuralBlockAmendmentPhrase:
		// Only these are allowed to survive as an intro's classification;
		// every other phrase only makes sense read from a leaf's full text.
	default:
		info.SpecialPhrase = nil
	}
	*semantic = info

	a.prefixStack = append(a.prefixStack, a.prefix()+*intro+" ")
	if *wrapUp != nil {
		a.postfixStack = append(a.postfixStack, " "+**wrapUp+a.postfix())
	} else {
		a.postfixStack = append(a.postfixStack, a.postfix())
	}
	return nil
}

func (a *semanticInfoAdder) OnExit(_ *string, _ **string, _ *structure.SemanticInfo) error {
	a.prefixStack = a.prefixStack[:len(a.prefixStack)-1]
	a.postfixStack = a.postfixStack[:len(a.postfixStack)-1]
	return nil
}

func (a *semanticInfoAdder) OnText(text *string, semantic *structure.SemanticInfo) error {
	info, err := a.extractSemanticInfo(*text)
	if err != nil {
		return err
	}
	*semantic = info
	return nil
}

func (a *semanticInfoAdder) extractSemanticInfo(middle string) (structure.SemanticInfo, error) {
	s := assembleToBeParsedText(a.prefix(), middle, a.postfix())

	scanned, newAbbreviations, err := ScanReferences(s, a.cache)
	if err != nil {
		return structure.SemanticInfo{}, fmt.Errorf("could not extract semantic info from %q: %w", s, err)
	}
	a.cache.AddMultiple(newAbbreviations)

	prefixLen := len(a.prefix())
	textLen := len(s) - len(a.postfix())
	var outgoing []structure.OutgoingReference
	for _, oref := range scanned {
		if adjusted, ok := adjustOutgoingReference(prefixLen, textLen, oref); ok {
			outgoing = append(outgoing, adjusted)
		}
	}

	var newAbbrevMap map[string]identifier.ActIdentifier
	if len(newAbbreviations) > 0 {
		newAbbrevMap = make(map[string]identifier.ActIdentifier, len(newAbbreviations))
		for _, ab := range newAbbreviations {
			newAbbrevMap[ab.Abbreviation] = ab.ActID
		}
	}

	return structure.SemanticInfo{
		OutgoingReferences: outgoing,
		NewAbbreviations:   newAbbrevMap,
		SpecialPhrase:      classifySpecialPhrase(s, scanned),
	}, nil
}

// assembleToBeParsedText strips a trailing conjunction off middle (if
// any), then concatenates prefix, middle and postfix, terminating the
// result with a period when there's no postfix to do that job for it.
func assembleToBeParsedText(prefix, middle, postfix string) string {
	for _, junk := range trailingJunk {
		middle = strings.TrimSuffix(middle, junk)
	}
	if postfix == "" {
		if strings.HasSuffix(middle, ".") || strings.HasSuffix(middle, ":") ||
			strings.HasSuffix(middle, "!") || strings.HasSuffix(middle, "?") {
			return prefix + middle
		}
		return prefix + middle + "."
	}
	return prefix + middle + postfix
}

// adjustOutgoingReference keeps only references whose end falls inside
// the (rebased) middle segment, discarding ones that live entirely in
// the prefix/postfix scaffolding, and rebases the surviving ones'
// offsets back to the original (unassembled) middle string.
func adjustOutgoingReference(prefixLen, textLen int, oref ScannedReference) (structure.OutgoingReference, bool) {
	if oref.End > prefixLen && oref.End <= textLen {
		start := oref.Start - prefixLen
		if start < 0 {
			start = 0
		}
		return structure.OutgoingReference{Start: start, End: oref.End - prefixLen, Reference: oref.Reference}, true
	}
	return structure.OutgoingReference{}, false
}

// AddSemanticInfo walks every SAE of act, attaching a SemanticInfo to
// each, seeding the abbreviation cache from act.ContainedAbbreviations
// and writing the (possibly updated) result back. It reports whether
// any abbreviation mapping was added or changed; calling it twice in a
// row on an unmodified Act returns false the second time.
func AddSemanticInfo(act *structure.Act) (bool, error) {
	cache := NewAbbreviationCache(act.ContainedAbbreviations)
	adder := newSemanticInfoAdder(cache)
	if err := walker.WalkMut(act, adder); err != nil {
		return false, err
	}
	act.ContainedAbbreviations = cache.Snapshot()
	return cache.Changed(), nil
}

// AddSemanticInfoToArticle re-runs semantic extraction over a single
// Article, for callers that only changed that Article's text (e.g. the
// block-amendment editor) and don't want to repeat the work for the
// whole Act. The abbreviation cache is still seeded from (and written
// back to) the whole Act, so abbreviations declared elsewhere keep
// resolving correctly.
func AddSemanticInfoToArticle(act *structure.Act, articleID identifier.ArticleIdentifier) (bool, error) {
	var target *structure.Article
	for _, article := range act.Articles() {
		if article.Identifier.Compare(articleID) == 0 {
			target = article
			break
		}
	}
	if target == nil {
		return false, fmt.Errorf("could not find article %s in act %s", articleID, act.Identifier)
	}

	cache := NewAbbreviationCache(act.ContainedAbbreviations)
	adder := newSemanticInfoAdder(cache)
	scratch := &structure.Act{Identifier: act.Identifier, Children: []structure.ActChild{target}}
	if err := walker.WalkMut(scratch, adder); err != nil {
		return false, err
	}
	act.ContainedAbbreviations = cache.Snapshot()
	return cache.Changed(), nil
}
