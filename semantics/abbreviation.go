/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package semantics implements the walk that attaches a
// structure.SemanticInfo to every SAE leaf (and branching-SAE intro) of
// an Act, extracting outgoing cross-references, registering act
// abbreviations, and classifying special phrases (block amendments,
// repeals, enforcement dates, text amendments).
//
// The recognized phrase surface is narrow and formulaic (amending acts
// are drafted from a fixed phrasebook), so it is implemented as a
// hand-written regexp-driven scanner (reference_scanner.go) rather
// than a full grammar; DESIGN.md records that decision.
package semantics

import (
	"fmt"

	"github.com/badicsalex/hunlaw/identifier"
)

// ActIDAbbreviation is one "(a továbbiakban: X)" declaration found
// while scanning an SAE's text.
type ActIDAbbreviation struct {
	ActID        identifier.ActIdentifier
	Abbreviation string
}

// AbbreviationCache resolves an Act's "(a továbbiakban: X)" short forms
// to the full Act identifier they stand for, across the whole
// document, in document order.
type AbbreviationCache struct {
	cache   map[string]identifier.ActIdentifier
	changed bool
}

// NewAbbreviationCache seeds a cache from an Act's previously persisted
// ContainedAbbreviations map, so re-walking the Act is deterministic:
// resolutions already known don't depend on re-discovering their
// declaration first.
func NewAbbreviationCache(seed map[string]identifier.ActIdentifier) *AbbreviationCache {
	cache := make(map[string]identifier.ActIdentifier, len(seed))
	for k, v := range seed {
		cache[k] = v
	}
	return &AbbreviationCache{cache: cache}
}

// Add registers one abbreviation, overwriting any previous resolution.
// Changed() reports true afterwards if this actually altered the cache's content.
func (c *AbbreviationCache) Add(elem ActIDAbbreviation) {
	if existing, ok := c.cache[elem.Abbreviation]; ok && existing == elem.ActID {
		return
	}
	c.cache[elem.Abbreviation] = elem.ActID
	c.changed = true
}

// AddMultiple registers every abbreviation found in elems, in order.
func (c *AbbreviationCache) AddMultiple(elems []ActIDAbbreviation) {
	for _, e := range elems {
		c.Add(e)
	}
}

// Resolve looks up abbreviation, failing if it was never declared.
func (c *AbbreviationCache) Resolve(abbreviation string) (identifier.ActIdentifier, error) {
	id, ok := c.cache[abbreviation]
	if !ok {
		return identifier.ActIdentifier{}, fmt.Errorf("%s not found in the abbreviations cache", abbreviation)
	}
	return id, nil
}

// Known returns every abbreviation currently resolvable, longest first,
// so the reference scanner can try the longest (most specific) match
// before a shorter one that happens to be a prefix of it.
func (c *AbbreviationCache) Known() []string {
	result := make([]string, 0, len(c.cache))
	for k := range c.cache {
		result = append(result, k)
	}
	for i := 1; i < len(result); i++ {
		for j := i; j > 0 && len(result[j]) > len(result[j-1]); j-- {
			result[j], result[j-1] = result[j-1], result[j]
		}
	}
	return result
}

// Changed reports whether Add ever actually altered the cache's
// content since it was created.
func (c *AbbreviationCache) Changed() bool {
	return c.changed
}

// Snapshot returns a copy of the cache's current content, suitable for
// storing back on an Act's ContainedAbbreviations field.
func (c *AbbreviationCache) Snapshot() map[string]identifier.ActIdentifier {
	result := make(map[string]identifier.ActIdentifier, len(c.cache))
	for k, v := range c.cache {
		result[k] = v
	}
	return result
}
