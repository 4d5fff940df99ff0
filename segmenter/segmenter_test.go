/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package segmenter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/line"
	"github.com/badicsalex/hunlaw/pdftext"
	"github.com/badicsalex/hunlaw/segmenter"
)

func lines(strs ...string) []line.IndentedLine {
	result := make([]line.IndentedLine, len(strs))
	for i, s := range strs {
		result[i] = line.FromTestStr(s)
	}
	return result
}

func TestParseHungarianDate(t *testing.T) {
	got, err := segmenter.ParseHungarianDate("2011. június 28., kedd")
	require.NoError(t, err)
	require.True(t, time.Date(2011, time.June, 28, 0, 0, 0, 0, time.UTC).Equal(got))
}

func TestParseHungarianDateInvalid(t *testing.T) {
	_, err := segmenter.ParseHungarianDate("not a date")
	require.Error(t, err)
}

// TestParsePagesOneAct walks a single Act through the whole extractor
// state machine: the "II. Törvények" bold trigger, an asterisk-footnoted
// subject line, the asterisk footer itself, a body paragraph and the
// signature block that ends the Act.
func TestParsePagesOneAct(t *testing.T) {
	cover := pdftext.PageOfLines{Lines: lines(
		"MAGYAR KÖZLÖNY",
		"Magyarország hivatalos lapja",
		"2011. évi 74. szám",
		"2011. június 28., kedd",
	)}
	body := pdftext.PageOfLines{Lines: lines(
		"<BOLD>II. Törvények",
		"",
		"2011. évi XLIII. törvény",
		"A nemzetközi tesztelésről*",
		"",
		"",
		"*A nemzetközi tesztelésről szóló megállapodás kihirdetéséről.",
		"",
		"1. § Valami.",
		"",
		"Dr. Kovács János s. k.,",
		"köztársasági elnök az Országgyűlés elnöke",
	)}

	acts, err := segmenter.ParsePages([]pdftext.PageOfLines{cover, body})
	require.NoError(t, err)
	require.Len(t, acts, 1)

	act := acts[0]
	require.Equal(t, identifier.ActIdentifier{Year: 2011, Number: 43}, act.Identifier)
	require.Equal(t, "A nemzetközi tesztelésről", act.Subject)
	require.True(t, time.Date(2011, time.June, 28, 0, 0, 0, 0, time.UTC).Equal(act.PublicationDate))

	var sawBody, sawFootnote, sawSignature bool
	for _, l := range act.Body {
		switch l.Content() {
		case "1. § Valami.":
			sawBody = true
		case "*A nemzetközi tesztelésről szóló megállapodás kihirdetéséről.":
			sawFootnote = true
		case "köztársasági elnök az Országgyűlés elnöke", "Dr. Kovács János s. k.,":
			sawSignature = true
		}
	}
	require.True(t, sawBody, "body paragraph should survive into ActRawText.Body")
	require.False(t, sawFootnote, "asterisk footnote should be stripped")
	require.False(t, sawSignature, "signature block should be stripped")
}

// TestParsePagesSectionStop verifies the section-end markers
// (e.g. "III. Kormányrendeletek") stop Act extraction, so nothing past
// them is mistaken for Act body text.
func TestParsePagesSectionStop(t *testing.T) {
	cover := pdftext.PageOfLines{Lines: lines(
		"MAGYAR KÖZLÖNY",
		"Magyarország hivatalos lapja",
		"2011. évi 74. szám",
		"2011. június 28., kedd",
	)}
	body := pdftext.PageOfLines{Lines: lines(
		"<BOLD>II. Törvények",
		"",
		"2011. évi XLIII. törvény",
		"A nemzetközi tesztelésről*",
		"",
		"",
		"*A nemzetközi tesztelésről szóló megállapodás kihirdetéséről.",
		"",
		"1. § Valami.",
		"",
		"Dr. Kovács János s. k.,",
		"köztársasági elnök az Országgyűlés elnöke",
		"<BOLD>III. Kormányrendeletek",
		"A kormány 1/2011. rendelete valamiről",
	)}

	acts, err := segmenter.ParsePages([]pdftext.PageOfLines{cover, body})
	require.NoError(t, err)
	require.Len(t, acts, 1)
	for _, l := range acts[0].Body {
		require.NotContains(t, l.Content(), "kormány")
	}
}

func TestParsePagesRequiresCoverPage(t *testing.T) {
	_, err := segmenter.ParsePages([]pdftext.PageOfLines{{Lines: lines("only one page")}})
	require.Error(t, err)
}
