/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package reference

import "github.com/badicsalex/hunlaw/identifier"

// Builder assembles a Reference one part at a time, the way the
// semantic grammar walks a matched reference phrase from the act down
// to the subpoint. Setting a shallower part resets every deeper one,
// so reusing a Builder across sibling references in the same sentence
// ("articles 5 and 6" followed by "paragraph (2) of both") is safe.
type Builder struct {
	r UncheckedReference
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build validates the accumulated parts and returns the Reference.
func (b *Builder) Build() (Reference, error) {
	return b.r.Validate()
}

// SetAct sets the act part and resets everything deeper.
func (b *Builder) SetAct(act identifier.ActIdentifier) *Builder {
	b.r.act = &act
	return b.resetArticle()
}

// SetArticle sets the article part and resets everything deeper.
func (b *Builder) SetArticle(article RefPartArticle) *Builder {
	b.r.article = &article
	return b.resetParagraph()
}

// SetParagraph sets the paragraph part and resets everything deeper.
func (b *Builder) SetParagraph(paragraph RefPartParagraph) *Builder {
	b.r.paragraph = &paragraph
	return b.resetPoint()
}

// SetPoint sets the point part and resets the subpoint.
func (b *Builder) SetPoint(point RefPartPoint) *Builder {
	b.r.point = &point
	return b.resetSubpoint()
}

// SetSubpoint sets the subpoint part.
func (b *Builder) SetSubpoint(subpoint RefPartSubpoint) *Builder {
	b.r.subpoint = &subpoint
	return b
}

func (b *Builder) resetArticle() *Builder {
	b.r.article = nil
	return b.resetParagraph()
}

func (b *Builder) resetParagraph() *Builder {
	b.r.paragraph = nil
	return b.resetPoint()
}

func (b *Builder) resetPoint() *Builder {
	b.r.point = nil
	return b.resetSubpoint()
}

func (b *Builder) resetSubpoint() *Builder {
	b.r.subpoint = nil
	return b
}
