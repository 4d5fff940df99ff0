/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package semantics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/reference"
)

// ScannedReference is one resolved cross-reference found by
// ScanReferences, byte-offset located inside the scanned text (an
// OutgoingReference before it gets rebased by adjustOutgoingReference
// to its owning SAE's own text).
type ScannedReference struct {
	Start     int
	End       int
	Reference reference.Reference
}

// actMentionRe matches a full printed Act identifier, optionally
// followed by an abbreviation declaration. It repeats the identifier
// package's canonical form because that parser is anchored to a whole
// string and this one must find the mention anywhere inside a
// sentence.
var actMentionRe = regexp.MustCompile(`(\d{4})\. évi ([IVXLCDM]+)\. törvény(?:\s*\(a továbbiakban(?:\s+(?:a\s+)?[^:)]*)?:\s*([^)]+)\))?`)

var (
	reArticle        = regexp.MustCompile(`^\s*(\d+)\.(?:[-–](\d+)\.)?\s*§`)
	reParagraph      = regexp.MustCompile(`^\s*\((\d+)\)(?:[-–]\((\d+)\))?\s*bekezdés`)
	rePointNumeric   = regexp.MustCompile(`^\s*(\d+)\.(?:[-–](\d+)\.)?\s*pont`)
	rePointAlpha     = regexp.MustCompile(`^\s*([a-záéíóöőúüű])\)(?:[-–]([a-záéíóöőúüű])\))?\s*pont`)
	reSubpointNum    = regexp.MustCompile(`^\s*(\d+)\.(?:[-–](\d+)\.)?\s*alpont`)
	reSubpointAlpha  = regexp.MustCompile(`^\s*([a-záéíóöőúüű]{2,3})\)(?:[-–]([a-záéíóöőúüű]{2,3})\))?\s*alpont`)
	reHungarianTrail = regexp.MustCompile(`^-?[a-záéíóöőúüű]*`)
)

// ScanReferences walks text looking for Act mentions, abbreviation
// declarations, known-abbreviation usages and the reference chains
// (article/paragraph/point/subpoint) that can follow either. It is a
// practical stand-in for the PEG grammar's CompoundReference /
// ActReference productions (see package doc comment): it covers single
// identifiers and single dash-joined ranges at each level, chained left
// to right, the forms that cover the overwhelming majority of gazette
// cross-references. It does not attempt full list/conjunction
// combinatorics ("5. és 8. cikk (2) és (4) bekezdése").
func ScanReferences(text string, cache *AbbreviationCache) ([]ScannedReference, []ActIDAbbreviation, error) {
	var results []ScannedReference
	var newAbbreviations []ActIDAbbreviation

	consumed := make([]bool, len(text)+1)

	for _, m := range actMentionRe.FindAllStringSubmatchIndex(text, -1) {
		actStr := fmt.Sprintf("%s. évi %s. törvény", text[m[2]:m[3]], text[m[4]:m[5]])
		actID, err := identifier.ParseActIdentifier(actStr)
		if err != nil {
			continue
		}
		start, end := m[0], m[1]
		if m[6] >= 0 {
			abbrev := strings.TrimSpace(text[m[6]:m[7]])
			newAbbreviations = append(newAbbreviations, ActIDAbbreviation{ActID: actID, Abbreviation: abbrev})
		}
		b := reference.NewBuilder().SetAct(actID)
		chainEnd := parseChain(text, end, b)
		markConsumed(consumed, start, chainEnd)
		ref, err := b.Build()
		if err != nil {
			continue
		}
		results = append(results, ScannedReference{Start: start, End: chainEnd, Reference: ref})
	}

	for _, abbrev := range cache.Known() {
		if abbrev == "" {
			continue
		}
		results = append(results, scanAbbreviationUsages(text, abbrev, cache, consumed)...)
	}

	// Bare chains, not anchored to any act mention: a reference
	// relative to whatever act the reader already has in context
	// (e.g. "a 11. § (2) bekezdése").
	for pos := 0; pos < len(text); {
		if consumed[pos] {
			pos++
			continue
		}
		b := reference.NewBuilder()
		end := parseChain(text, pos, b)
		if end == pos {
			pos++
			continue
		}
		if ref, err := b.Build(); err == nil && !ref.IsActOnly() {
			results = append(results, ScannedReference{Start: pos, End: end, Reference: ref})
		}
		markConsumed(consumed, pos, end)
		pos = end
	}

	return results, newAbbreviations, nil
}

func scanAbbreviationUsages(text, abbrev string, cache *AbbreviationCache, consumed []bool) []ScannedReference {
	var results []ScannedReference
	actID, err := cache.Resolve(abbrev)
	if err != nil {
		return nil
	}
	searchFrom := 0
	for {
		idx := strings.Index(text[searchFrom:], abbrev)
		if idx < 0 {
			break
		}
		start := searchFrom + idx
		end := start + len(abbrev)
		searchFrom = end
		if start > 0 && isWordByte(text[start-1]) {
			continue
		}
		if consumed[start] {
			continue
		}
		b := reference.NewBuilder().SetAct(actID)
		chainEnd := parseChain(text, end, b)
		markConsumed(consumed, start, chainEnd)
		ref, buildErr := b.Build()
		if buildErr != nil {
			continue
		}
		results = append(results, ScannedReference{Start: start, End: chainEnd, Reference: ref})
	}
	return results
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func markConsumed(consumed []bool, start, end int) {
	for i := start; i < end && i < len(consumed); i++ {
		consumed[i] = true
	}
}

// parseChain greedily consumes an article/paragraph/point/subpoint
// chain starting at pos, setting each matched part on b, and returns
// the byte offset just past the last part it matched (== pos if none
// matched).
func parseChain(text string, pos int, b *reference.Builder) int {
	start := pos
	matchedAny := false

	if end, part, ok := matchArticle(text, pos); ok {
		b.SetArticle(part)
		pos = skipHungarianTrail(text, end)
		matchedAny = true
	}

	if end, part, ok := matchParagraph(text, pos); ok {
		b.SetParagraph(part)
		pos = skipHungarianTrail(text, end)
		matchedAny = true
	}

	if end, part, ok := matchPoint(text, pos); ok {
		b.SetPoint(part)
		pos = skipHungarianTrail(text, end)
		matchedAny = true
		if end2, part2, ok2 := matchSubpoint(text, pos); ok2 {
			b.SetSubpoint(part2)
			pos = skipHungarianTrail(text, end2)
		}
	} else if end, part, ok := matchSubpoint(text, pos); ok {
		// A bare subpoint with no enclosing point mention ("ca) alpontja"
		// on its own) is still a valid relative reference.
		b.SetSubpoint(part)
		pos = skipHungarianTrail(text, end)
		matchedAny = true
	}

	if !matchedAny {
		return start
	}
	return pos
}

func skipHungarianTrail(text string, pos int) int {
	if pos > len(text) {
		return pos
	}
	loc := reHungarianTrail.FindStringIndex(text[pos:])
	if loc == nil {
		return pos
	}
	return pos + loc[1]
}

func matchArticle(text string, pos int) (int, reference.RefPartArticle, bool) {
	m := reArticle.FindStringSubmatchIndex(text[pos:])
	if m == nil || m[0] != 0 {
		return pos, reference.RefPartArticle{}, false
	}
	first, err := strconv.Atoi(text[pos+m[2] : pos+m[3]])
	if err != nil {
		return pos, reference.RefPartArticle{}, false
	}
	firstID := identifier.ArticleIdentifierFromInt(uint16(first))
	lastID := firstID
	if m[4] >= 0 {
		last, err := strconv.Atoi(text[pos+m[4] : pos+m[5]])
		if err == nil {
			lastID = identifier.ArticleIdentifierFromInt(uint16(last))
		}
	}
	return pos + m[1], identifier.NewIdentifierRange(firstID, lastID), true
}

func matchParagraph(text string, pos int) (int, reference.RefPartParagraph, bool) {
	m := reParagraph.FindStringSubmatchIndex(text[pos:])
	if m == nil || m[0] != 0 {
		return pos, reference.RefPartParagraph{}, false
	}
	first, err := strconv.Atoi(text[pos+m[2] : pos+m[3]])
	if err != nil {
		return pos, reference.RefPartParagraph{}, false
	}
	firstID := identifier.NumericIdentifierFromInt(uint16(first))
	lastID := firstID
	if m[4] >= 0 {
		last, err := strconv.Atoi(text[pos+m[4] : pos+m[5]])
		if err == nil {
			lastID = identifier.NumericIdentifierFromInt(uint16(last))
		}
	}
	return pos + m[1], identifier.NewIdentifierRange(firstID, lastID), true
}

func matchPoint(text string, pos int) (int, reference.RefPartPoint, bool) {
	if m := rePointNumeric.FindStringSubmatchIndex(text[pos:]); m != nil && m[0] == 0 {
		first, err := strconv.Atoi(text[pos+m[2] : pos+m[3]])
		if err == nil {
			firstID := identifier.NumericIdentifierFromInt(uint16(first))
			lastID := firstID
			if m[4] >= 0 {
				if last, err := strconv.Atoi(text[pos+m[4] : pos+m[5]]); err == nil {
					lastID = identifier.NumericIdentifierFromInt(uint16(last))
				}
			}
			return pos + m[1], reference.NumericRefPartPoint(identifier.NewIdentifierRange(firstID, lastID)), true
		}
	}
	if m := rePointAlpha.FindStringSubmatchIndex(text[pos:]); m != nil && m[0] == 0 {
		firstID, err := identifier.ParseHungarianChar(text[pos+m[2] : pos+m[3]])
		if err == nil {
			lastID := firstID
			if m[4] >= 0 {
				if l, err := identifier.ParseHungarianChar(text[pos+m[4] : pos+m[5]]); err == nil {
					lastID = l
				}
			}
			return pos + m[1], reference.AlphabeticRefPartPoint(identifier.NewIdentifierRange(firstID, lastID)), true
		}
	}
	return pos, reference.RefPartPoint{}, false
}

func matchSubpoint(text string, pos int) (int, reference.RefPartSubpoint, bool) {
	if m := reSubpointNum.FindStringSubmatchIndex(text[pos:]); m != nil && m[0] == 0 {
		first, err := strconv.Atoi(text[pos+m[2] : pos+m[3]])
		if err == nil {
			firstID := identifier.NumericIdentifierFromInt(uint16(first))
			lastID := firstID
			if m[4] >= 0 {
				if last, err := strconv.Atoi(text[pos+m[4] : pos+m[5]]); err == nil {
					lastID = identifier.NumericIdentifierFromInt(uint16(last))
				}
			}
			return pos + m[1], reference.NumericRefPartSubpoint(identifier.NewIdentifierRange(firstID, lastID)), true
		}
	}
	if m := reSubpointAlpha.FindStringSubmatchIndex(text[pos:]); m != nil && m[0] == 0 {
		firstID, err := identifier.ParsePrefixedAlphabeticIdentifier(text[pos+m[2] : pos+m[3]])
		if err == nil {
			lastID := firstID
			if m[4] >= 0 {
				if l, err := identifier.ParsePrefixedAlphabeticIdentifier(text[pos+m[4] : pos+m[5]]); err == nil {
					lastID = l
				}
			}
			return pos + m[1], reference.AlphabeticRefPartSubpoint(identifier.NewIdentifierRange(firstID, lastID)), true
		}
	}
	return pos, reference.RefPartSubpoint{}, false
}
