/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package reference

import "github.com/badicsalex/hunlaw/identifier"

// StructuralReferenceKind enumerates which kind of structural element
// a StructuralReference names.
type StructuralReferenceKind int

const (
	StructuralReferencePart StructuralReferenceKind = iota
	StructuralReferenceTitle
	StructuralReferenceChapter
	StructuralReferenceSubtitleID
	StructuralReferenceSubtitleTitle
	StructuralReferenceSubtitleAfterArticle
	StructuralReferenceSubtitleBeforeArticle
	StructuralReferenceSubtitleBeforeArticleInclusive
	// StructuralReferenceArticle names a whole Article as a structural
	// block-amendment target (ArticleAnchor holds the id), used when an
	// amendment's deepest referenced part is an Article rather than a
	// Paragraph/Point/Subpoint.
	StructuralReferenceArticle
	// StructuralReferenceAtTheEndOfPart/Title/Chapter name the implicit
	// insertion point "at the end of" the Part/Title/Chapter identified
	// by NumericID, used by subtitle-introducing block amendments that
	// don't name an anchor article at all.
	StructuralReferenceAtTheEndOfPart
	StructuralReferenceAtTheEndOfTitle
	StructuralReferenceAtTheEndOfChapter
)

// StructuralReferenceElement names one Book/Part/Title/Chapter/Subtitle,
// either directly by its own identifier, by its title text (for
// unnumbered subtitles), or by the article it precedes, follows, or
// wholly is (for subtitles and whole-article amendments anchored to a
// neighboring or targeted article rather than numbered).
type StructuralReferenceElement struct {
	Kind          StructuralReferenceKind
	NumericID     identifier.NumericIdentifier
	Title         string
	ArticleAnchor identifier.ArticleIdentifier
}

// StructuralReference identifies a Book/Part/Title/Chapter/Subtitle,
// optionally scoped to a specific Act and Book.
type StructuralReference struct {
	Act               *identifier.ActIdentifier
	Book              *identifier.NumericIdentifier
	StructuralElement StructuralReferenceElement
}
