/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pdftext

import (
	"fmt"
	"unicode"

	"golang.org/x/xerrors"
)

// PositionedChar is one decoded, placed character, ready for line
// consolidation: page-space position, drawn width, the font's space
// width (used by the consolidation gap thresholds) and boldness.
type PositionedChar struct {
	X, Y         float64
	Width        float64
	WidthOfSpace float64
	Bold         bool
	Content      rune
}

// charCollector accumulates PositionedChars for one page, discarding
// whitespace glyphs (line consolidation infers its own spaces from
// gaps) and anything outside the configured crop box.
type charCollector struct {
	chars   []PositionedChar
	cropBox *CropBox
}

func newCharCollector(cropBox *CropBox) *charCollector {
	return &charCollector{cropBox: cropBox}
}

func (c *charCollector) inCropBox(x, y float64) bool {
	if c.cropBox == nil {
		return true
	}
	return x >= c.cropBox.Left && x <= c.cropBox.Right &&
		y >= c.cropBox.Bottom && y <= c.cropBox.Top
}

func (c *charCollector) renderCharacter(x, y, width, widthOfSpace float64, bold bool, content rune) {
	content = fixCharacterCodingQuirks(content)
	if unicode.IsSpace(content) {
		return
	}
	if !c.inCropBox(x, y) {
		return
	}
	c.chars = append(c.chars, PositionedChar{
		X: x, Y: y, Width: width, WidthOfSpace: widthOfSpace, Bold: bold, Content: content,
	})
}

// renderMultipleCharacters splits an ActualText (or other multi-rune
// substitution) string evenly across the group's accumulated x-extent,
// emitting one PositionedChar per rune.
func (c *charCollector) renderMultipleCharacters(x, y, width, widthOfSpace float64, bold bool, content string) {
	runes := []rune(content)
	if len(runes) == 0 {
		return
	}
	step := width / float64(len(runes))
	for i, r := range runes {
		c.renderCharacter(x+step*float64(i), y, step, widthOfSpace, bold, r)
	}
}

// renderCID decodes and positions one character identifier drawn by a
// Tj/TJ/'/" operator, then advances the text matrix past it.
func (c *charCollector) renderCID(state *textState, cid uint32) error {
	if state.font == nil {
		return xerrors.New("pdftext: no font selected for text-showing operator")
	}
	m := state.deviceMatrix()
	x, y := m.Translation()
	w0 := state.font.Width(cid)
	width := w0 * m[0]
	widthOfSpace := state.font.WidthOfSpace()
	bold := state.font.IsBold()

	text, ok := state.font.ToUnicode(cid)
	if !ok {
		return xerrors.Errorf("pdftext: unknown CID %d in font", cid)
	}
	runes := []rune(text)
	switch len(runes) {
	case 0:
		// Fully decodes to nothing (e.g. a CMap maps the code to an
		// empty string for a deliberately invisible glyph); no-op.
	case 1:
		c.renderCharacter(x, y, width, widthOfSpace, bold, runes[0])
	default:
		c.renderMultipleCharacters(x, y, width, widthOfSpace, bold, text)
	}
	state.advanceByChar(cid)
	return nil
}

func (c *charCollector) String() string {
	return fmt.Sprintf("charCollector(%d chars)", len(c.chars))
}
