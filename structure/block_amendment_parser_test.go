/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package structure_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/line"
	"github.com/badicsalex/hunlaw/structure"
)

func TestParseBlockAmendmentParagraphsSingle(t *testing.T) {
	lines := []line.IndentedLine{line.FromTestStr("(1) Valami.")}
	paragraphs, err := structure.ParseBlockAmendmentParagraphs(lines, identifier.NumericIdentifier{Num: 1})
	require.NoError(t, err)
	require.Len(t, paragraphs, 1)
	require.Equal(t, uint16(1), paragraphs[0].Identifier.Num)
	require.Equal(t, structure.TextBody("Valami."), paragraphs[0].Body)
}

func TestParseBlockAmendmentParagraphsRejectsWrongFirstIdentifier(t *testing.T) {
	lines := []line.IndentedLine{line.FromTestStr("(2) Valami.")}
	_, err := structure.ParseBlockAmendmentParagraphs(lines, identifier.NumericIdentifier{Num: 1})
	require.Error(t, err)
}

func TestParseBlockAmendmentAlphabeticPointsSingle(t *testing.T) {
	first, err := identifier.NewLatinChar('a')
	require.NoError(t, err)
	lines := []line.IndentedLine{line.FromTestStr("a) Valami.")}
	points, err := structure.ParseBlockAmendmentAlphabeticPoints(lines, first)
	require.NoError(t, err)
	require.Len(t, points, 1)
	require.Equal(t, "a", points[0].Identifier.String())
	require.Equal(t, structure.TextBody("Valami."), points[0].Body)
}

func TestParseStructuralBlockAmendmentChildrenArticleOnly(t *testing.T) {
	lines := []line.IndentedLine{line.FromTestStr("1. § Valami egészen új szöveg.")}
	children, err := structure.ParseStructuralBlockAmendmentChildren(lines)
	require.NoError(t, err)
	require.Len(t, children, 1)
	article, ok := children[0].(*structure.Article)
	require.True(t, ok)
	require.Equal(t, uint16(1), article.Identifier.Inner.Num)
}

func TestParseStructuralBlockAmendmentChildrenRejectsPreamble(t *testing.T) {
	lines := []line.IndentedLine{
		line.FromTestStr("Ez egy preambulum, ami BlockAmendment kontextusban tilos."),
		line.FromTestStr("1. § Valami."),
	}
	_, err := structure.ParseStructuralBlockAmendmentChildren(lines)
	require.Error(t, err)
}
