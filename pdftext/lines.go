/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pdftext

import (
	"sort"

	"github.com/badicsalex/hunlaw/line"
)

// Thresholds for line grouping and space/justification inference,
// tuned against the gazette corpus.
const (
	sameLineEpsilon                  = 0.5
	additionalEmptyLineThreshold     = 16.0
	spaceDetectionThresholdRatio     = 0.5
	justifiedDetectionThresholdRatio = 0.8
)

// openingHungarianQuote is the low-9 quotation mark Hungarian
// typography opens a quoted phrase with; the gazette's typesetter
// never leaves a rendered gap before it, so line consolidation always
// inserts a space ahead of it regardless of the normal threshold.
const openingHungarianQuote = '„'

// consolidatePage groups one page's positioned characters into
// IndentedLines: sort by descending y, group within sameLineEpsilon,
// inject a blank line across any larger gap, then consolidate each
// group left to right.
func consolidatePage(chars []PositionedChar) PageOfLines {
	if len(chars) == 0 {
		return PageOfLines{}
	}

	estimatedRightMargin := 0.0
	for _, c := range chars {
		if right := c.X + c.Width; right > estimatedRightMargin {
			estimatedRightMargin = right
		}
	}

	sorted := append([]PositionedChar(nil), chars...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Y > sorted[j].Y })

	var lines []line.IndentedLine
	var current []PositionedChar
	refY := 0.0
	for _, c := range sorted {
		if len(current) == 0 {
			current = append(current, c)
			refY = c.Y
			continue
		}
		yDiff := refY - c.Y
		if yDiff < sameLineEpsilon {
			current = append(current, c)
			continue
		}
		lines = append(lines, consolidateLine(current, estimatedRightMargin))
		if yDiff > additionalEmptyLineThreshold {
			lines = append(lines, line.Empty)
		}
		current = []PositionedChar{c}
		refY = c.Y
	}
	if len(current) > 0 {
		lines = append(lines, consolidateLine(current, estimatedRightMargin))
	}
	return PageOfLines{Lines: lines}
}

// linePart pairs a built line.Part with its absolute x position, since
// trimming leading synthetic spaces needs to recompute the new first
// part's dx as an absolute offset (line.IndentedLine.Indent reads the
// first part's dx directly, not as a delta from 0).
type linePart struct {
	part line.Part
	absX float64
}

// consolidateLine sorts one line's characters by ascending x, inserts
// synthetic spaces where the horizontal gap (or an upcoming opening
// Hungarian quote) calls for one, and trims leading/trailing spaces.
func consolidateLine(chars []PositionedChar, estimatedRightMargin float64) line.IndentedLine {
	sorted := append([]PositionedChar(nil), chars...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	last := sorted[len(sorted)-1]
	justified := last.X+last.Width+last.WidthOfSpace*justifiedDetectionThresholdRatio >= estimatedRightMargin

	var built []linePart
	prevX := 0.0
	for i, c := range sorted {
		built = append(built, linePart{
			part: line.Part{Dx: c.X - prevX, Content: c.Content, Bold: c.Bold},
			absX: c.X,
		})
		prevX = c.X
		if i+1 < len(sorted) {
			next := sorted[i+1]
			thresholdToSpace := c.X + c.Width + c.WidthOfSpace*spaceDetectionThresholdRatio
			if next.X > thresholdToSpace || next.Content == openingHungarianQuote {
				built = append(built, linePart{
					part: line.Part{Dx: thresholdToSpace - prevX, Content: ' ', Bold: c.Bold},
					absX: thresholdToSpace,
				})
				prevX = thresholdToSpace
			}
		}
	}

	start := 0
	for start < len(built) && built[start].part.Content == ' ' {
		start++
	}
	end := len(built)
	for end > start && built[end-1].part.Content == ' ' {
		end--
	}
	trimmed := built[start:end]

	parts := make([]line.Part, len(trimmed))
	for i, lp := range trimmed {
		if i == 0 {
			parts[i] = line.Part{Dx: lp.absX, Content: lp.part.Content, Bold: lp.part.Bold}
		} else {
			parts[i] = lp.part
		}
	}
	return line.FromParts(parts, justified)
}
