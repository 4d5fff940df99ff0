/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pdftext

import (
	"fmt"

	"github.com/h2non/filetype"

	"github.com/badicsalex/hunlaw/common"
	"github.com/badicsalex/hunlaw/internal/pdfobj"
)

// ExtractLines is the extractor's entry point: it turns a gazette
// issue's raw PDF bytes into one PageOfLines per page, opening the
// document once and then walking its pages. The upfront magic-byte
// sniff rejects non-PDF input before the tokenizer produces a
// confusing parse error three layers down.
func ExtractLines(data []byte, opts ExtractOptions) ([]PageOfLines, error) {
	if kind, err := filetype.Match(data); err != nil || kind.Extension != "pdf" {
		return nil, fmt.Errorf("pdftext: input does not look like a PDF file")
	}

	doc, err := pdfobj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("pdftext: %w", err)
	}
	pages, err := doc.Pages()
	if err != nil {
		return nil, fmt.Errorf("pdftext: %w", err)
	}

	result := make([]PageOfLines, 0, len(pages))
	for i, page := range pages {
		content, err := doc.ContentStream(page)
		if err != nil {
			return nil, fmt.Errorf("pdftext: page %d: %w", i+1, err)
		}
		if len(content) == 0 {
			return nil, fmt.Errorf("pdftext: page %d: empty contents stream", i+1)
		}

		renderer := newPageRenderer(doc, opts.CropBox)
		state := newTextState()
		if err := renderer.run(content, page.Resources, state, nil, 0); err != nil {
			return nil, fmt.Errorf("pdftext: page %d: %w", i+1, err)
		}
		common.Log.Debug("pdftext: page %d: %d positioned characters", i+1, len(renderer.collector.chars))
		result = append(result, consolidatePage(renderer.collector.chars))
	}
	return result, nil
}
