/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badicsalex/hunlaw/identifier"
)

func refWithArticle(t *testing.T, act identifier.ActIdentifier, articleStr string) Reference {
	t.Helper()
	b := NewBuilder()
	b.SetAct(act)
	b.SetArticle(identifier.SingleIdentifier[identifier.ArticleIdentifier](mustArticle(t, articleStr)))
	r, err := b.Build()
	require.NoError(t, err)
	return r
}

func TestReferenceIsParentOf(t *testing.T) {
	act := identifier.ActIdentifier{Year: 2012, Number: 154}
	actOnly := FromAct(act)
	article := refWithArticle(t, act, "5")
	assert.True(t, actOnly.IsParentOf(article))
	assert.False(t, article.IsParentOf(actOnly))
}

func TestReferenceContains(t *testing.T) {
	act := identifier.ActIdentifier{Year: 2012, Number: 154}
	b := NewBuilder()
	b.SetAct(act)
	b.SetArticle(identifier.NewIdentifierRange(mustArticle(t, "1"), mustArticle(t, "5")))
	rng, err := b.Build()
	require.NoError(t, err)

	assert.True(t, rng.Contains(refWithArticle(t, act, "3")))
	assert.False(t, rng.Contains(refWithArticle(t, act, "6")))
}

func TestReferenceParent(t *testing.T) {
	act := identifier.ActIdentifier{Year: 2012, Number: 154}
	article := refWithArticle(t, act, "5")
	parent := article.Parent()
	assert.True(t, parent.IsActOnly())
	a, ok := parent.Act()
	require.True(t, ok)
	assert.Equal(t, act, a)
}

func TestReferenceWithoutAct(t *testing.T) {
	act := identifier.ActIdentifier{Year: 2012, Number: 154}
	article := refWithArticle(t, act, "5")
	stripped := article.WithoutAct()
	_, ok := stripped.Act()
	assert.False(t, ok)
	_, ok = stripped.Article()
	assert.True(t, ok)
}

func TestReferenceRelativeTo(t *testing.T) {
	act := identifier.ActIdentifier{Year: 2012, Number: 154}
	base := refWithArticle(t, act, "5")

	relParagraph := NewBuilder()
	relParagraph.SetParagraph(identifier.SingleIdentifier[identifier.NumericIdentifier](mustNumeric(t, "2")))
	rel, err := relParagraph.Build()
	require.NoError(t, err)

	resolved, err := rel.RelativeTo(base)
	require.NoError(t, err)
	a, ok := resolved.Act()
	require.True(t, ok)
	assert.Equal(t, act, a)
	article, ok := resolved.Article()
	require.True(t, ok)
	assert.Equal(t, mustArticle(t, "5"), article.First())
}

func TestMakeRange(t *testing.T) {
	act := identifier.ActIdentifier{Year: 2012, Number: 154}
	start := refWithArticle(t, act, "1")
	end := refWithArticle(t, act, "5")
	rng, err := MakeRange(start, end)
	require.NoError(t, err)
	article, ok := rng.Article()
	require.True(t, ok)
	assert.True(t, article.IsRange())
	assert.Equal(t, mustArticle(t, "1"), article.First())
	assert.Equal(t, mustArticle(t, "5"), article.Last())
}

func TestMakeRangeDifferentActsRejected(t *testing.T) {
	act1 := identifier.ActIdentifier{Year: 2012, Number: 154}
	act2 := identifier.ActIdentifier{Year: 2013, Number: 1}
	_, err := MakeRange(refWithArticle(t, act1, "1"), refWithArticle(t, act2, "5"))
	assert.Error(t, err)
}
