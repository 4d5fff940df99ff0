/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package identifier

import (
	"fmt"
	"strconv"
	"strings"
)

// ArticleIdentifier is a NumericIdentifier with an optional book prefix
// ("4:20/B"), used by Acts written under the "book" structuring scheme
// (e.g. the Civil Code).
type ArticleIdentifier struct {
	HasBook bool
	Book    uint8
	Inner   NumericIdentifier
}

// ArticleIdentifierFromInt builds a book-less article identifier.
func ArticleIdentifierFromInt(n uint16) ArticleIdentifier {
	return ArticleIdentifier{Inner: NumericIdentifierFromInt(n)}
}

// ParseArticleIdentifier parses "123" or "88:1/SZ".
func ParseArticleIdentifier(s string) (ArticleIdentifier, error) {
	if bookStr, idStr, ok := strings.Cut(s, ":"); ok {
		book, err := strconv.ParseUint(bookStr, 10, 8)
		if err != nil {
			return ArticleIdentifier{}, fmt.Errorf("%q is not a valid book number: %w", bookStr, err)
		}
		inner, err := ParseNumericIdentifier(idStr)
		if err != nil {
			return ArticleIdentifier{}, err
		}
		return ArticleIdentifier{HasBook: true, Book: uint8(book), Inner: inner}, nil
	}
	inner, err := ParseNumericIdentifier(s)
	if err != nil {
		return ArticleIdentifier{}, err
	}
	return ArticleIdentifier{Inner: inner}, nil
}

// String renders the compact form ("4:20/A").
func (a ArticleIdentifier) String() string {
	if a.HasBook {
		return fmt.Sprintf("%d:%s", a.Book, a.Inner.WithSlash())
	}
	return a.Inner.WithSlash()
}

// IsFirst reports whether a is the first article: book-less and inner
// is first, or book == 1 and inner is first (an Act's very first
// article in its very first book).
func (a ArticleIdentifier) IsFirst() bool {
	if a.HasBook {
		return a.Book == 1 && a.Inner.IsFirst()
	}
	return a.Inner.IsFirst()
}

// Compare implements a total order: book-less sorts before any book.
// Book-less and book-structured Acts are never compared against each
// other in practice, but a deterministic order is still required.
func (a ArticleIdentifier) Compare(other ArticleIdentifier) int {
	if a.HasBook != other.HasBook {
		if !a.HasBook {
			return -1
		}
		return 1
	}
	if a.HasBook && a.Book != other.Book {
		return int(a.Book) - int(other.Book)
	}
	return a.Inner.Compare(other.Inner)
}

// IsNextFrom reports whether a can immediately follow other: same book
// and inner-is-next, or the next book number with inner being the
// first article of that book. No book <-> no-book transition is ever
// "next".
func (a ArticleIdentifier) IsNextFrom(other ArticleIdentifier) bool {
	if !a.HasBook && !other.HasBook {
		return a.Inner.IsNextFrom(other.Inner)
	}
	if a.HasBook && other.HasBook {
		if a.Book == other.Book {
			return a.Inner.IsNextFrom(other.Inner)
		}
		if a.Book-other.Book == 1 {
			return a.Inner.IsFirst()
		}
	}
	return false
}
