/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package reference

import (
	"fmt"

	"github.com/badicsalex/hunlaw/identifier"
)

// UncheckedReference is a plain struct-of-optionals mirroring Reference,
// used as the intermediate form Builder and the YAML/JSON decoder
// assemble before validating part combinations and range placement.
type UncheckedReference struct {
	act       *identifier.ActIdentifier
	article   *RefPartArticle
	paragraph *RefPartParagraph
	point     *RefPartPoint
	subpoint  *RefPartSubpoint
}

// checkPartCombination rejects any combination with a "gap": a part set
// while a shallower one (other than paragraph) is missing.
func (u UncheckedReference) checkPartCombination() error {
	hasArticle := u.article != nil
	hasParagraph := u.paragraph != nil
	hasPoint := u.point != nil
	hasSubpoint := u.subpoint != nil

	switch {
	// Just an act ref, or completely empty.
	case !hasArticle && !hasParagraph && !hasPoint && !hasSubpoint:
		return nil
	// Article set, subpoint not set (paragraph/point may or may not be).
	case hasArticle && !hasSubpoint:
		return nil
	// Article, subpoint both set (with point set too).
	case hasArticle && hasSubpoint && hasPoint:
		return nil
	// Relative paragraph only.
	case !hasArticle && hasParagraph && !hasPoint && !hasSubpoint:
		return nil
	// Relative point or subpoint (article unset, point set).
	case !hasArticle && hasPoint:
		return nil
	// Just a relative subpoint: paragraph would be a gap here.
	case !hasArticle && !hasParagraph && !hasPoint && hasSubpoint:
		return nil
	default:
		return fmt.Errorf("invalid reference part combination: %+v", u)
	}
}

// checkRanges rejects any part set after a range, since a range can
// only be the final, most specific part of a Reference.
func (u UncheckedReference) checkRanges() error {
	if u.article != nil && u.article.IsRange() {
		if u.paragraph != nil || u.point != nil || u.subpoint != nil {
			return fmt.Errorf("reference parts found after article range")
		}
	}
	if u.paragraph != nil && u.paragraph.IsRange() {
		if u.point != nil || u.subpoint != nil {
			return fmt.Errorf("reference parts found after paragraph range")
		}
	}
	if u.point != nil && u.point.IsRange() {
		if u.subpoint != nil {
			return fmt.Errorf("reference parts found after point range")
		}
	}
	return nil
}

// Validate checks u for gaps and misplaced ranges and converts it to a
// Reference.
func (u UncheckedReference) Validate() (Reference, error) {
	if err := u.checkPartCombination(); err != nil {
		return Reference{}, err
	}
	if err := u.checkRanges(); err != nil {
		return Reference{}, err
	}
	return Reference{
		act: u.act, article: u.article, paragraph: u.paragraph,
		point: u.point, subpoint: u.subpoint,
	}, nil
}
