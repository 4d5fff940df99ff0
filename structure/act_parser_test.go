/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package structure_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/line"
	"github.com/badicsalex/hunlaw/structure"
)

func testLines(strs ...string) []line.IndentedLine {
	result := make([]line.IndentedLine, len(strs))
	for i, s := range strs {
		result[i] = line.FromTestStr(s)
	}
	return result
}

func TestParseActStructureSingleParagraphArticle(t *testing.T) {
	body := testLines(
		"Ez egy preambulum szöveg.",
		"<BOLD>I. FEJEZET",
		"Általános rendelkezések",
		"",
		"1. § Valami egyszerű szöveg.",
	)
	act, err := structure.ParseActStructure(
		identifier.ActIdentifier{Year: 2011, Number: 43},
		"A tesztelésről",
		time.Date(2011, time.June, 28, 0, 0, 0, 0, time.UTC),
		body,
	)
	require.NoError(t, err)
	require.Equal(t, "Ez egy preambulum szöveg.", act.Preamble)
	require.Len(t, act.Children, 2)

	chapter, ok := act.Children[0].(*structure.StructuralElement)
	require.True(t, ok)
	require.Equal(t, structure.StructuralElementChapter, chapter.Type)
	require.Equal(t, uint16(1), chapter.Identifier.Num)
	require.Equal(t, "Általános rendelkezések", chapter.Title)

	article, ok := act.Children[1].(*structure.Article)
	require.True(t, ok)
	require.Equal(t, uint16(1), article.Identifier.Inner.Num)
	require.Len(t, article.Children, 1)
	require.Nil(t, article.Children[0].Identifier)
	require.Equal(t, structure.TextBody("Valami egyszerű szöveg."), article.Children[0].Body)

	require.Len(t, act.Articles(), 1)
}

// uniformIndentLine builds a line where the first character sits at
// absolute position startDx and every following character advances by a
// further 10 units, the way a real extracted line's dx values would
// line up a hanging paragraph indent column.
func uniformIndentLine(startDx float64, s string) line.IndentedLine {
	runes := []rune(s)
	parts := make([]line.Part, len(runes))
	for i, r := range runes {
		if i == 0 {
			parts[i] = line.Part{Dx: startDx, Content: r}
		} else {
			parts[i] = line.Part{Dx: 10.0, Content: r}
		}
	}
	return line.FromParts(parts, false)
}

// TestParseActStructureNumberedParagraphs exercises the multi-paragraph
// SAE path: the Article's number and its first paragraph share a
// physical line, and its second paragraph is column-aligned to where
// that first paragraph's own text started, matching the hanging indent
// a real Magyar Közlöny Article uses.
func TestParseActStructureNumberedParagraphs(t *testing.T) {
	headerLine := uniformIndentLine(10.0, "2. § (1) Első bekezdés szövege.")
	secondParagraph := uniformIndentLine(60.0, "(2) Második bekezdés szövege.")

	act, err := structure.ParseActStructure(
		identifier.ActIdentifier{Year: 2011, Number: 43},
		"A tesztelésről",
		time.Date(2011, time.June, 28, 0, 0, 0, 0, time.UTC),
		[]line.IndentedLine{headerLine, secondParagraph},
	)
	require.NoError(t, err)
	require.Len(t, act.Children, 1)

	article, ok := act.Children[0].(*structure.Article)
	require.True(t, ok)
	require.Equal(t, uint16(2), article.Identifier.Inner.Num)
	require.Len(t, article.Children, 2)

	require.Equal(t, uint16(1), article.Children[0].Identifier.Num)
	require.Equal(t, structure.TextBody("Első bekezdés szövege."), article.Children[0].Body)
	require.Equal(t, uint16(2), article.Children[1].Identifier.Num)
	require.Equal(t, structure.TextBody("Második bekezdés szövege."), article.Children[1].Body)
}

func TestParseActStructureStructuralElementHeaderString(t *testing.T) {
	body := testLines(
		"<BOLD>II. FEJEZET",
		"Záró rendelkezések",
		"",
		"3. § Valami más.",
	)
	act, err := structure.ParseActStructure(
		identifier.ActIdentifier{Year: 2011, Number: 43},
		"A tesztelésről",
		time.Date(2011, time.June, 28, 0, 0, 0, 0, time.UTC),
		body,
	)
	require.NoError(t, err)
	chapter, ok := act.Children[0].(*structure.StructuralElement)
	require.True(t, ok)
	header, err := chapter.HeaderString()
	require.NoError(t, err)
	require.Equal(t, "II. FEJEZET", header)
}

func TestParseActStructureRejectsUnbalancedQuotes(t *testing.T) {
	body := testLines(
		"1. § Egy szöveg, ami „nyitva marad.",
	)
	_, err := structure.ParseActStructure(
		identifier.ActIdentifier{Year: 2011, Number: 43},
		"A tesztelésről",
		time.Date(2011, time.June, 28, 0, 0, 0, 0, time.UTC),
		body,
	)
	require.Error(t, err)
}
