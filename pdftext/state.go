/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pdftext

import (
	"github.com/badicsalex/hunlaw/internal/transform"
)

// textState is the subset of the PDF graphics state that affects text
// positioning and rendering: the two independent matrices (text matrix
// and text-line matrix), the character/word spacing, horizontal scale,
// leading, font and rise.
type textState struct {
	ctm transform.Matrix

	textMatrix transform.Matrix
	lineMatrix transform.Matrix

	charSpacing     float64
	wordSpacing     float64
	horizontalScale float64 // stored as a 0..1 fraction, not 0..100
	leading         float64
	rise            float64

	font     *Font
	fontSize float64
}

func newTextState() textState {
	return textState{
		ctm:             transform.IdentityMatrix(),
		textMatrix:      transform.IdentityMatrix(),
		lineMatrix:      transform.IdentityMatrix(),
		horizontalScale: 1,
	}
}

// setBothMatrices resets both the text matrix and the text-line matrix
// to m, as BT, Td, TD and Tm all do.
func (s *textState) setBothMatrices(m transform.Matrix) {
	s.textMatrix = m
	s.lineMatrix = m
}

// renderingMatrix composes the glyph-space-to-text-space scale
// (horizontal scale, font size, rise) with the current text matrix:
// scale is applied first, then the text matrix, per the PDF spec's
// Trm = [Tfs*Th,0,0,Tfs,0,Trise] x Tm formula.
func (s *textState) renderingMatrix() transform.Matrix {
	scale := transform.NewMatrix(s.horizontalScale*s.fontSize, 0, 0, s.fontSize, 0, s.rise)
	m := s.textMatrix
	m.Concat(scale)
	return m
}

// deviceMatrix further composes renderingMatrix with the current CTM,
// giving the matrix that maps glyph space directly to page space; this
// is what a `cm` inside a Form XObject (or a rotated/scaled page) needs
// to affect emitted glyph positions.
func (s *textState) deviceMatrix() transform.Matrix {
	m := s.ctm
	m.Concat(s.renderingMatrix())
	return m
}

// advance moves the text matrix along its own x axis by delta (text
// space units), used both for glyph advances and TJ's explicit spacing
// adjustments.
func (s *textState) advance(delta float64) {
	s.textMatrix = s.textMatrix.Translate(delta, 0)
}

// advanceByChar advances the text matrix past one rendered character:
// (w0*fontSize + spacing) * horizontalScale, with word spacing added
// only for the space code.
func (s *textState) advanceByChar(cid uint32) {
	if s.font == nil {
		return
	}
	w0 := s.font.Width(cid)
	spacing := s.charSpacing
	if cid == 32 {
		spacing += s.wordSpacing
	}
	tx := (w0*s.fontSize + spacing) * s.horizontalScale
	s.advance(tx)
}

// The save/restore unit pushed by `q` and popped by `Q` is the whole
// textState: besides the CTM, the font, size, spacing, scale, leading
// and rise all revert on `Q`, so a temporary footnote/superscript font
// switch inside a q...Q pair cannot leak into the surrounding text.
