/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package structure

import (
	"fmt"
	"strings"

	"github.com/badicsalex/hunlaw/line"
)

// qbState enumerates the quoted-block extraction state machine's
// states. A plain enum + switch keeps the per-line dispatch free of
// per-transition allocations.
type qbState int

const (
	qbStart qbState = iota
	qbStartExpectIntro
	qbQuotedBlockIntro
	qbQuotedBlockWrapUp
	qbWaitingForQuotedBlock
	qbWaitingForQuotedBlockWrapUp
	qbInsideQuotedBlock
	qbWrapUp
)

type quotedBlockParser struct {
	state             qbState
	blocks            []QuotedBlock
	wrapUp            strings.Builder
	quotedBlockIntro  strings.Builder
	quotedBlockWrapUp strings.Builder
	quotedLines       []line.IndentedLine
	qc                quoteCheck
}

func newQuotedBlockParser(expectIntro bool) *quotedBlockParser {
	p := &quotedBlockParser{}
	if expectIntro {
		p.state = qbStartExpectIntro
	} else {
		p.state = qbStart
	}
	return p
}

func (p *quotedBlockParser) parseLine(l line.IndentedLine) error {
	if err := p.qc.update(l); err != nil {
		return err
	}
	p.dispatch(l)
	return nil
}

func hasPrefixRune(s string, runes ...rune) bool {
	for _, c := range content0(s) {
		for _, r := range runes {
			if c == r {
				return true
			}
		}
		return false
	}
	return false
}

func content0(s string) []rune {
	for _, r := range s {
		return []rune{r}
	}
	return nil
}

func hasSuffixRune(s string, runes ...rune) bool {
	var last rune
	found := false
	for _, r := range s {
		last = r
		found = true
	}
	if !found {
		return false
	}
	for _, r := range runes {
		if last == r {
			return true
		}
	}
	return false
}

func (p *quotedBlockParser) dispatch(l line.IndentedLine) {
	switch p.state {
	case qbStart:
		p.stateStart(l)
	case qbStartExpectIntro:
		p.stateStartExpectIntro(l)
	case qbQuotedBlockIntro:
		p.stateQuotedBlockIntro(l)
	case qbQuotedBlockWrapUp:
		p.stateQuotedBlockWrapUp(l)
	case qbWaitingForQuotedBlock:
		p.stateWaitingForQuotedBlock(l)
	case qbWaitingForQuotedBlockWrapUp:
		p.stateWaitingForQuotedBlockWrapUp(l)
	case qbInsideQuotedBlock:
		p.stateInsideQuotedBlock(l)
	case qbWrapUp:
		p.stateWrapUp(l)
	}
}

func (p *quotedBlockParser) stateStart(l line.IndentedLine) {
	if l.IsEmpty() {
		return
	}
	if hasPrefixRune(l.Content(), '„', '“') {
		p.state = qbInsideQuotedBlock
		p.dispatch(l.Slice(1, nil))
		return
	}
	p.state = qbWrapUp
	p.dispatch(l)
}

func (p *quotedBlockParser) stateStartExpectIntro(l line.IndentedLine) {
	if l.IsEmpty() {
		return
	}
	if hasPrefixRune(l.Content(), '(', '[') {
		p.state = qbQuotedBlockIntro
		p.dispatch(l.Slice(1, nil))
		return
	}
	p.state = qbStart
	p.dispatch(l)
}

func (p *quotedBlockParser) stateQuotedBlockIntro(l line.IndentedLine) {
	if !l.IsEmpty() && !p.qc.endIsQuoted && hasSuffixRune(l.Content(), ')', ']') {
		n := -1
		l.Slice(0, &n).AppendTo(&p.quotedBlockIntro)
		p.state = qbStartExpectIntro
	} else {
		l.AppendTo(&p.quotedBlockIntro)
	}
}

func (p *quotedBlockParser) stateQuotedBlockWrapUp(l line.IndentedLine) {
	if !l.IsEmpty() && !p.qc.endIsQuoted && hasSuffixRune(l.Content(), ')', ']') {
		n := -1
		l.Slice(0, &n).AppendTo(&p.quotedBlockWrapUp)
		p.state = qbWaitingForQuotedBlockWrapUp
	} else {
		l.AppendTo(&p.quotedBlockWrapUp)
	}
}

func (p *quotedBlockParser) stateWaitingForQuotedBlock(l line.IndentedLine) {
	if l.IsEmpty() {
		return
	}
	if hasPrefixRune(l.Content(), '„', '“') {
		p.state = qbInsideQuotedBlock
		p.dispatch(l.Slice(1, nil))
		return
	}
	p.state = qbWaitingForQuotedBlockWrapUp
	p.dispatch(l)
}

func (p *quotedBlockParser) stateWaitingForQuotedBlockWrapUp(l line.IndentedLine) {
	if l.IsEmpty() {
		return
	}
	if hasPrefixRune(l.Content(), '(', '[') {
		p.state = qbQuotedBlockWrapUp
		p.dispatch(l.Slice(1, nil))
		return
	}
	p.state = qbWrapUp
	p.dispatch(l)
}

func (p *quotedBlockParser) stateInsideQuotedBlock(l line.IndentedLine) {
	if !l.IsEmpty() && !p.qc.endIsQuoted && strings.HasSuffix(l.Content(), "”") {
		n := -1
		p.quotedLines = append(p.quotedLines, l.Slice(0, &n))
		p.blocks = append(p.blocks, QuotedBlock{Lines: p.quotedLines})
		p.quotedLines = nil
		p.state = qbWaitingForQuotedBlock
	} else {
		p.quotedLines = append(p.quotedLines, l)
	}
}

func (p *quotedBlockParser) stateWrapUp(l line.IndentedLine) {
	l.AppendTo(&p.wrapUp)
}

// extractQuotedBlocks extracts one or more "„…”" quoted blocks (with
// optional "(...)"/"[...]" framing) from body, starting the
// paragraph's children.
func extractQuotedBlocks(prevNonEmpty *line.IndentedLine, body []line.IndentedLine) (QuotedBlockList, *string, error) {
	expectIntro := prevNonEmpty != nil && endsWithColon(prevNonEmpty.Content())

	if len(body) == 0 {
		return nil, nil, fmt.Errorf("empty line list for quoted block")
	}
	first := body[0].Content()
	if expectIntro {
		if !hasPrefixRune(first, '(', '[', '„', '“') {
			return nil, nil, fmt.Errorf("could not find quoted block starting token")
		}
	} else if !hasPrefixRune(first, '„', '“') {
		return nil, nil, fmt.Errorf("could not find quoted block starting token")
	}

	p := newQuotedBlockParser(expectIntro)
	for _, l := range body {
		if err := p.parseLine(l); err != nil {
			return nil, nil, err
		}
	}

	switch p.state {
	case qbWaitingForQuotedBlock, qbWrapUp, qbWaitingForQuotedBlockWrapUp:
	default:
		return nil, nil, fmt.Errorf("quoted block parser ended in invalid state")
	}

	if len(p.blocks) == 0 {
		return nil, nil, fmt.Errorf("quoted block parser didn't find any blocks")
	}
	if s := p.quotedBlockIntro.String(); s != "" {
		p.blocks[0].Intro = &s
	}
	if s := p.quotedBlockWrapUp.String(); s != "" {
		last := len(p.blocks) - 1
		p.blocks[last].WrapUp = &s
	}

	var wrapUp *string
	if s := p.wrapUp.String(); s != "" {
		wrapUp = &s
	}
	return QuotedBlockList(p.blocks), wrapUp, nil
}
