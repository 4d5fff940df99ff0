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

func mustArticle(t *testing.T, s string) identifier.ArticleIdentifier {
	t.Helper()
	id, err := identifier.ParseArticleIdentifier(s)
	require.NoError(t, err)
	return id
}

func mustNumeric(t *testing.T, s string) identifier.NumericIdentifier {
	t.Helper()
	id, err := identifier.ParseNumericIdentifier(s)
	require.NoError(t, err)
	return id
}

func TestBuilderHappyCases(t *testing.T) {
	b := NewBuilder()
	b.SetAct(identifier.ActIdentifier{Year: 2001, Number: 420})
	b.SetArticle(identifier.SingleIdentifier[identifier.ArticleIdentifier](mustArticle(t, "4:20")))
	b.SetParagraph(identifier.SingleIdentifier[identifier.NumericIdentifier](mustNumeric(t, "20"))).
		SetPoint(NumericRefPartPoint(identifier.SingleIdentifier[identifier.NumericIdentifier](mustNumeric(t, "20")))).
		SetSubpoint(AlphabeticRefPartSubpoint(identifier.SingleIdentifier[identifier.PrefixedAlphabeticIdentifier](
			mustPrefixedAlphabetic(t, "sz"))))

	ref1, err := b.Build()
	require.NoError(t, err)
	act, ok := ref1.Act()
	require.True(t, ok)
	assert.Equal(t, 2001, act.Year)

	b.SetArticle(identifier.NewIdentifierRange(mustArticle(t, "1:10"), mustArticle(t, "1:10/C")))
	ref2, err := b.Build()
	require.NoError(t, err)
	_, hasParagraph := ref2.Paragraph()
	assert.False(t, hasParagraph, "setting article resets deeper parts")

	empty, err := NewBuilder().Build()
	require.NoError(t, err)
	assert.Equal(t, Reference{}, empty)
}

func TestBuilderUnhappyCases(t *testing.T) {
	_, err := NewBuilder().
		SetParagraph(identifier.SingleIdentifier[identifier.NumericIdentifier](mustNumeric(t, "20"))).
		Build()
	require.NoError(t, err, "a relative paragraph reference alone is valid")

	b := NewBuilder()
	b.r.paragraph = ptrParagraph(identifier.SingleIdentifier[identifier.NumericIdentifier](mustNumeric(t, "20")))
	b.r.subpoint = ptrSubpoint(AlphabeticRefPartSubpoint(identifier.SingleIdentifier[identifier.PrefixedAlphabeticIdentifier](mustPrefixedAlphabetic(t, "sz"))))
	_, err = b.Build()
	assert.Error(t, err, "gaps in reference parts are not allowed")

	b2 := NewBuilder()
	b2.r.paragraph = ptrParagraph(identifier.NewIdentifierRange(mustNumeric(t, "20"), mustNumeric(t, "21")))
	b2.r.point = ptrPoint(NumericRefPartPoint(identifier.NewIdentifierRange(mustNumeric(t, "1"), mustNumeric(t, "2"))))
	_, err = b2.Build()
	assert.Error(t, err, "multiple ranges in reference parts are not allowed")
}

func mustPrefixedAlphabetic(t *testing.T, s string) identifier.PrefixedAlphabeticIdentifier {
	t.Helper()
	id, err := identifier.ParsePrefixedAlphabeticIdentifier(s)
	require.NoError(t, err)
	return id
}

func ptrParagraph(p RefPartParagraph) *RefPartParagraph { return &p }
func ptrPoint(p RefPartPoint) *RefPartPoint             { return &p }
func ptrSubpoint(p RefPartSubpoint) *RefPartSubpoint    { return &p }
