/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pdftext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pc(x, y, width float64, content rune) PositionedChar {
	return PositionedChar{X: x, Y: y, Width: width, WidthOfSpace: 0.25, Content: content}
}

func TestConsolidateLineInsertsSpaceOnGap(t *testing.T) {
	chars := []PositionedChar{
		pc(0, 100, 5, 'a'),
		pc(5, 100, 5, 'b'),
		// A wide gap should read as a word boundary.
		pc(20, 100, 5, 'c'),
	}
	result := consolidateLine(chars, 100)
	assert.Equal(t, "ab c", result.Content())
}

func TestConsolidateLineNoSpaceWhenTight(t *testing.T) {
	chars := []PositionedChar{
		pc(0, 100, 5, 'a'),
		pc(5, 100, 5, 'b'),
		pc(10, 100, 5, 'c'),
	}
	result := consolidateLine(chars, 100)
	assert.Equal(t, "abc", result.Content())
}

func TestConsolidateLineAlwaysSpacesBeforeOpeningQuote(t *testing.T) {
	chars := []PositionedChar{
		pc(0, 100, 5, 'a'),
		// No gap at all, but the quote still forces a space ahead of it.
		pc(5, 100, 5, openingHungarianQuote),
	}
	result := consolidateLine(chars, 100)
	assert.Equal(t, "a „", result.Content())
}

func TestConsolidateLineFirstCharIndentIsAbsolute(t *testing.T) {
	chars := []PositionedChar{
		pc(12, 100, 5, 'a'),
		pc(17, 100, 5, 'b'),
	}
	result := consolidateLine(chars, 100)
	assert.Equal(t, "ab", result.Content())
	assert.Equal(t, 12.0, result.Indent())
}

func TestConsolidateLineJustifiedDetection(t *testing.T) {
	chars := []PositionedChar{
		pc(0, 100, 5, 'a'),
		pc(5, 100, 5, 'b'),
	}
	justifiedLine := consolidateLine(chars, 10.1) // last right edge 10 + 0.25*0.8 = 10.2 >= 10.1
	assert.True(t, justifiedLine.IsJustified())

	notJustified := consolidateLine(chars, 50)
	assert.False(t, notJustified.IsJustified())
}

func TestConsolidatePageGroupsByY(t *testing.T) {
	chars := []PositionedChar{
		pc(0, 100, 5, 'a'),
		pc(5, 100.2, 5, 'b'), // within sameLineEpsilon of the first line
		pc(0, 80, 5, 'c'),    // 20pt below: triggers an injected blank line
	}
	page := consolidatePage(chars)
	assert.Len(t, page.Lines, 3)
	assert.Equal(t, "ab", page.Lines[0].Content())
	assert.True(t, page.Lines[1].IsEmpty())
	assert.Equal(t, "c", page.Lines[2].Content())
}

func TestConsolidatePageEmpty(t *testing.T) {
	page := consolidatePage(nil)
	assert.Empty(t, page.Lines)
}
