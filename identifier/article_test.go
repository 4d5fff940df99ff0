/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArticleIdentifier(t *testing.T) {
	id, err := ParseArticleIdentifier("2:1")
	require.NoError(t, err)
	assert.True(t, id.HasBook)
	assert.EqualValues(t, 2, id.Book)
	assert.Equal(t, "2:1", id.String())

	id, err = ParseArticleIdentifier("123/A")
	require.NoError(t, err)
	assert.False(t, id.HasBook)
}

func TestArticleIdentifierIsNextFrom(t *testing.T) {
	a, err := ParseArticleIdentifier("2:1")
	require.NoError(t, err)
	b, err := ParseArticleIdentifier("1:123")
	require.NoError(t, err)
	assert.True(t, a.IsNextFrom(b), "first article of the next book follows any article of the previous book")

	firstOfBook2, _ := ParseArticleIdentifier("2:1")
	lastOfBook1, _ := ParseArticleIdentifier("1:50")
	assert.True(t, firstOfBook2.IsNextFrom(lastOfBook1))

	noBook1, _ := ParseArticleIdentifier("1")
	noBook2, _ := ParseArticleIdentifier("2")
	assert.True(t, noBook2.IsNextFrom(noBook1))

	withBook, _ := ParseArticleIdentifier("1:1")
	withoutBook, _ := ParseArticleIdentifier("1")
	assert.False(t, withBook.IsNextFrom(withoutBook), "book <-> no book transitions are never allowed")
	assert.False(t, withoutBook.IsNextFrom(withBook))
}

func TestArticleIdentifierIsFirst(t *testing.T) {
	noBookFirst, _ := ParseArticleIdentifier("1")
	assert.True(t, noBookFirst.IsFirst())

	book1First, _ := ParseArticleIdentifier("1:1")
	assert.True(t, book1First.IsFirst())

	book2First, _ := ParseArticleIdentifier("2:1")
	assert.False(t, book2First.IsFirst())
}
