/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pdftext

import (
	"github.com/badicsalex/hunlaw/internal/pdfobj"
	"github.com/badicsalex/hunlaw/internal/textencoding"
)

// actualTextSpan accumulates the bounding extent and space-width/bold
// hints of every CID drawn inside a marked-content span that carries an
// ActualText property, so that once the span closes its decoded text is
// replaced wholesale by the ActualText string, split evenly across the
// accumulated width.
type actualTextSpan struct {
	text string

	started      bool
	minX, maxX   float64
	y            float64
	widthOfSpace float64
	bold         bool
}

// actualTextFromBMCParams inspects a BDC/BMC operator's tag and
// properties operand, returning a new span when (and only when) this is
// a `/Span` with a `/ActualText` property.
func actualTextFromBMCParams(tag pdfobj.Name, properties pdfobj.Object) *actualTextSpan {
	if tag != "Span" {
		return nil
	}
	dict, ok := pdfobj.AsDict(properties)
	if !ok {
		return nil
	}
	actualTextObj, ok := dict.Get(pdfobj.Name("ActualText"))
	if !ok {
		return nil
	}
	s, ok := pdfobj.AsString(actualTextObj)
	if !ok {
		return nil
	}
	return &actualTextSpan{text: decodeActualTextBytes(s.Bytes)}
}

// decodeActualTextBytes decodes an ActualText string per the PDF text
// string convention: a UTF-16BE BOM prefix (0xFE 0xFF) if present,
// otherwise PDFDocEncoding, which for the ASCII range this pipeline
// ever observes in gazette ActualText entries matches Latin-1.
func decodeActualTextBytes(b []byte) string {
	if len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF {
		return textencoding.DecodeUTF16BE(b[2:])
	}
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}

// renderCID updates the span's bounding extent from one CID's rendering
// position, without emitting a character: the span's own text replaces
// everything inside it once it closes.
func (s *actualTextSpan) renderCID(state *textState, cid uint32) {
	m := state.deviceMatrix()
	x, y := m.Translation()
	w0 := 0.0
	bold := false
	widthOfSpace := defaultWidthOfSpace
	if state.font != nil {
		w0 = state.font.Width(cid)
		bold = state.font.IsBold()
		widthOfSpace = state.font.WidthOfSpace()
	}
	width := w0 * m[0]
	if !s.started {
		s.minX, s.maxX = x, x+width
		s.y = y
		s.bold = bold
		s.widthOfSpace = widthOfSpace
		s.started = true
	} else {
		if x < s.minX {
			s.minX = x
		}
		if x+width > s.maxX {
			s.maxX = x + width
		}
	}
	state.advanceByChar(cid)
}

// finish emits the span's ActualText across its accumulated extent, if
// any CID was drawn inside it at all.
func (s *actualTextSpan) finish(c *charCollector) {
	if !s.started {
		return
	}
	c.renderMultipleCharacters(s.minX, s.y, s.maxX-s.minX, s.widthOfSpace, s.bold, s.text)
}
