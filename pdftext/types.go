/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package pdftext implements a PDF content-stream interpreter that
// turns a gazette issue's raw bytes into, per page, a list of
// IndentedLine, preserving per-character horizontal position, boldness
// and right-justification. The consolidation rules (line grouping,
// space inference, justification detection, character quirk fixups)
// are specific to the Hungarian gazette's typesetting, not a
// general-purpose text extractor.
package pdftext

import "github.com/badicsalex/hunlaw/line"

// CropBox bounds the region of each page, in PDF user-space points
// (origin bottom-left), that glyphs are extracted from. Characters
// drawn outside it are discarded.
type CropBox struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// PageOfLines is one page's worth of consolidated IndentedLines, the
// unit the Act segmenter iterates over.
type PageOfLines struct {
	Lines []line.IndentedLine
}

// ExtractOptions configures one call to ExtractLines.
type ExtractOptions struct {
	// CropBox restricts glyph extraction to this region; the zero value
	// means "no cropping".
	CropBox *CropBox
}
