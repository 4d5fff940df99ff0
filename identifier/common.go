/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package identifier

// Identifier is implemented by every identifier type used at some level
// of the Act tree (NumericIdentifier, ArticleIdentifier, HungarianChar,
// PrefixedAlphabeticIdentifier). The self-referential type parameter
// lets IdentifierRange[T] and the reference-builder code stay generic
// over "whatever identifier type this level uses" while still calling
// IsNextFrom/Compare with the concrete sibling type, not an interface.
type Identifier[T any] interface {
	comparable

	// IsFirst reports whether this is the first identifier at its level
	// (e.g. NumericIdentifier{1}, HungarianChar 'a').
	IsFirst() bool

	// IsNextFrom reports whether this identifier can immediately follow
	// other in a sequence at the same level.
	IsNextFrom(other T) bool

	// Compare returns <0, 0, >0 consistently with a total order that
	// agrees with IsNextFrom (if b.IsNextFrom(a) then a.Compare(b) < 0).
	Compare(other T) int
}

// AlphabeticIdentifier is the identifier type used by points like "a)",
// "b)": a single Hungarian character.
type AlphabeticIdentifier = HungarianChar
