/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package segmenter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/badicsalex/hunlaw/common"
	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/line"
	"github.com/badicsalex/hunlaw/pdftext"
)

// ActRawText is one Act's un-parsed line stream, sliced out of a
// gazette issue by the segmenter, ready for the structural parser.
type ActRawText struct {
	Identifier      identifier.ActIdentifier
	Subject         string
	PublicationDate time.Time
	Body            []line.IndentedLine
}

const actsSectionStart = "II. Törvények"

// actSectionStops are prefixes (not exact matches) because the longer
// ones can be line-broken differently across issues.
var actSectionStops = []string{
	"III. Kormányrendeletek",
	"IV. A Magyar Nemzeti Bank elnökének rendeletei",
	"V. A Kormány tagjainak rendeletei",
	"VI. Az Alkotmánybíróság határozatai",
	"VII. A Kúria határozatai",
	"IX. Határozatok Tára",
}

var actHeaderRe = regexp.MustCompile(`^([12][09][0-9][0-9])\. évi ([IVXLC]+)\. törvény`)

func lineIsActSectionStart(l line.IndentedLine) bool {
	return l.IsBold() && l.Content() == actsSectionStart
}

func lineIsActSectionEnd(l line.IndentedLine) bool {
	if !l.IsBold() {
		return false
	}
	for _, stop := range actSectionStops {
		if strings.HasPrefix(l.Content(), stop) {
			return true
		}
	}
	return false
}

// parseMKCoverPage extracts the publication date from the issue's
// first page, expected to start with the "MAGYAR KÖZLÖNY" masthead and
// carry the Hungarian date line as its fourth line.
func parseMKCoverPage(page pdftext.PageOfLines) (time.Time, error) {
	if len(page.Lines) < 4 {
		return time.Time{}, fmt.Errorf("first page too short")
	}
	if !strings.HasPrefix(page.Lines[0].Content(), "MAGYAR KÖZLÖNY") {
		return time.Time{}, fmt.Errorf("wrong header on PDF: %s", page.Lines[0].Content())
	}
	return ParseHungarianDate(page.Lines[3].Content())
}

// actExtractionState tracks where the extractor is within one Act's
// header/subject/body/footer sequence.
type actExtractionState int

const (
	waitingForHeaderNewline actExtractionState = iota
	waitingForHeader
	parsingActSubject
	bodyBeforeAsteriskFooter
	bodyAfterAsteriskFooter
)

type actExtractor struct {
	publicationDate time.Time
	current         ActRawText
	state           actExtractionState
	result          []ActRawText
}

func newActExtractor(publicationDate time.Time) *actExtractor {
	return &actExtractor{publicationDate: publicationDate, state: waitingForHeaderNewline}
}

func (e *actExtractor) feedLine(l line.IndentedLine) {
	switch e.state {
	case waitingForHeaderNewline:
		e.state = e.waitForHeaderNewline(l)
	case waitingForHeader:
		e.state = e.waitForHeader(l)
	case parsingActSubject:
		e.state = e.parseActSubject(l)
	case bodyBeforeAsteriskFooter:
		e.state = e.parseBodyBeforeFooter(l)
	case bodyAfterAsteriskFooter:
		e.state = e.parseBodyAfterFooter(l)
	}
}

func (e *actExtractor) waitForHeaderNewline(l line.IndentedLine) actExtractionState {
	if l.IsEmpty() {
		return waitingForHeader
	}
	return waitingForHeaderNewline
}

func (e *actExtractor) waitForHeader(l line.IndentedLine) actExtractionState {
	if m := actHeaderRe.FindStringSubmatch(l.Content()); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil {
			if num, err := identifier.ParseNumericIdentifierFromRoman(m[2]); err == nil {
				e.current = ActRawText{Identifier: identifier.ActIdentifier{Year: year, Number: int(num.Num)}}
				return parsingActSubject
			}
		}
	}
	return waitingForHeaderNewline
}

func (e *actExtractor) parseActSubject(l line.IndentedLine) actExtractionState {
	if e.current.Subject != "" {
		e.current.Subject += " "
	}
	e.current.Subject += l.Content()

	// TODO: this is a huge hack, because we depend on there always being
	// a footer about when the law or amendment was enacted and by whom.
	if strings.HasSuffix(e.current.Subject, "*") {
		e.current.Subject = e.current.Subject[:len(e.current.Subject)-1]
		return bodyBeforeAsteriskFooter
	}
	return parsingActSubject
}

func (e *actExtractor) parseBodyBeforeFooter(l line.IndentedLine) actExtractionState {
	body := e.current.Body
	if l.IsEmpty() && len(body) > 2 && body[len(body)-2].IsEmpty() && strings.HasPrefix(body[len(body)-1].Content(), "*") {
		e.current.Body = body[:len(body)-1]
		return bodyAfterAsteriskFooter
	}
	if next := e.parseBodyAfterFooter(l); next != bodyAfterAsteriskFooter {
		return next
	}
	return bodyBeforeAsteriskFooter
}

func (e *actExtractor) parseBodyAfterFooter(l line.IndentedLine) actExtractionState {
	e.current.Body = append(e.current.Body, l)
	body := e.current.Body
	if len(body) > 4 && body[len(body)-3].IsEmpty() {
		last := body[len(body)-1].Content()
		if last == "köztársasági elnök az Országgyűlés elnöke" || last == "köztársasági elnök az Országgyűlés alelnöke" {
			e.current.Body = body[:len(body)-3]
			e.current.PublicationDate = e.publicationDate
			e.result = append(e.result, e.current)
			e.current = ActRawText{}
			return waitingForHeaderNewline
		}
	}
	return bodyAfterAsteriskFooter
}

// ParsePages slices a full gazette issue's consolidated pages into one
// ActRawText per contained Act.
func ParsePages(pages []pdftext.PageOfLines) ([]ActRawText, error) {
	if len(pages) < 2 {
		return nil, fmt.Errorf("magyar közlöny PDFs should have at least 2 pages")
	}
	publicationDate, err := parseMKCoverPage(pages[0])
	if err != nil {
		return nil, err
	}

	extractor := newActExtractor(publicationDate)
	extracting := false
	for _, page := range pages {
		for _, l := range page.Lines {
			switch {
			case lineIsActSectionStart(l):
				extracting = true
			case lineIsActSectionEnd(l):
				extracting = false
			case extracting:
				extractor.feedLine(l)
			}
		}
		// The "page" abstraction ends here; further processing only
		// ever sees the Empty line marking the page boundary.
		if extracting {
			extractor.feedLine(line.Empty)
		}
	}

	if extractor.state != waitingForHeaderNewline && extractor.state != waitingForHeader {
		common.Log.Warning("segmenter: issue ended mid-act (%s), dropping the partial act", extractor.current.Identifier)
	}
	common.Log.Debug("segmenter: extracted %d acts", len(extractor.result))
	return extractor.result, nil
}
