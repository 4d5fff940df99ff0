/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package semantics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/badicsalex/hunlaw/reference"
	"github.com/badicsalex/hunlaw/structure"
)

func TestClassifySpecialPhraseEnforcementDate(t *testing.T) {
	cache := NewAbbreviationCache(nil)
	scanned, _, err := ScanReferences("Ez a törvény a kihirdetést követő napon lép hatályba.", cache)
	require.NoError(t, err)

	phrase := classifySpecialPhrase("Ez a törvény a kihirdetést követő napon lép hatályba.", scanned)
	enf, ok := phrase.(structure.EnforcementDatePhrase)
	require.True(t, ok)
	daysAfter, ok := enf.Date.(structure.DaysAfterPublication)
	require.True(t, ok)
	require.Equal(t, uint16(1), uint16(daysAfter))
}

func TestClassifySpecialPhraseBlockAmendment(t *testing.T) {
	cache := NewAbbreviationCache(nil)
	text := "A 3. § (2) bekezdése helyébe a következő rendelkezés lép:"
	scanned, _, err := ScanReferences(text, cache)
	require.NoError(t, err)
	require.NotEmpty(t, scanned)

	phrase := classifySpecialPhrase(text, scanned)
	amendment, ok := phrase.(structure.BlockAmendmentPhrase)
	require.True(t, ok)
	require.False(t, amendment.PureInsertion)
}

func TestClassifySpecialPhraseNone(t *testing.T) {
	cache := NewAbbreviationCache(nil)
	text := "Ez egy egyszerű mondat minden különösebb jelentés nélkül."
	scanned, _, err := ScanReferences(text, cache)
	require.NoError(t, err)
	require.Nil(t, classifySpecialPhrase(text, scanned))
}

func TestClassifySpecialPhraseStructuralRepeal(t *testing.T) {
	cache := NewAbbreviationCache(nil)
	text := "A II. Fejezet hatályát veszti."
	scanned, _, err := ScanReferences(text, cache)
	require.NoError(t, err)

	phrase := classifySpecialPhrase(text, scanned)
	repeal, ok := phrase.(structure.StructuralRepealPhrase)
	require.True(t, ok)
	require.Equal(t, reference.StructuralReferenceChapter, repeal.Position.StructuralElement.Kind)
	require.Equal(t, uint16(2), repeal.Position.StructuralElement.NumericID.Num)
}

func TestClassifySpecialPhraseSubtitleBlockAmendmentAtEndOfChapter(t *testing.T) {
	cache := NewAbbreviationCache(nil)
	text := "A II. Fejezet a következő alcímmel egészül ki:"
	scanned, _, err := ScanReferences(text, cache)
	require.NoError(t, err)

	phrase := classifySpecialPhrase(text, scanned)
	amendment, ok := phrase.(structure.StructuralBlockAmendmentPhrase)
	require.True(t, ok)
	require.True(t, amendment.PureInsertion)
	require.Equal(t, reference.StructuralReferenceAtTheEndOfChapter, amendment.Position.StructuralElement.Kind)
	require.Equal(t, uint16(2), amendment.Position.StructuralElement.NumericID.Num)
}

func TestClassifySpecialPhraseSubtitleBlockAmendmentBeforeArticle(t *testing.T) {
	cache := NewAbbreviationCache(nil)
	text := "A 13. §-t megelőző alcím helyébe a következő alcím lép:"
	scanned, _, err := ScanReferences(text, cache)
	require.NoError(t, err)

	phrase := classifySpecialPhrase(text, scanned)
	amendment, ok := phrase.(structure.StructuralBlockAmendmentPhrase)
	require.True(t, ok)
	require.False(t, amendment.PureInsertion)
	require.Equal(t, reference.StructuralReferenceSubtitleBeforeArticle, amendment.Position.StructuralElement.Kind)
	require.Equal(t, uint16(13), amendment.Position.StructuralElement.ArticleAnchor.Inner.Num)
}

func TestClassifySpecialPhraseStructuralBlockAmendmentByNumber(t *testing.T) {
	cache := NewAbbreviationCache(nil)
	text := "A III. Fejezet helyébe a következő fejezet lép:"
	scanned, _, err := ScanReferences(text, cache)
	require.NoError(t, err)

	phrase := classifySpecialPhrase(text, scanned)
	amendment, ok := phrase.(structure.StructuralBlockAmendmentPhrase)
	require.True(t, ok)
	require.False(t, amendment.PureInsertion)
	require.Equal(t, reference.StructuralReferenceChapter, amendment.Position.StructuralElement.Kind)
	require.Equal(t, uint16(3), amendment.Position.StructuralElement.NumericID.Num)
}

func TestClassifySpecialPhraseRepealWithTexts(t *testing.T) {
	cache := NewAbbreviationCache(nil)
	text := "A 12. § (1) bekezdésében az „és gyermeke” szövegrész hatályát veszti."
	scanned, _, err := ScanReferences(text, cache)
	require.NoError(t, err)
	require.NotEmpty(t, scanned)

	phrase := classifySpecialPhrase(text, scanned)
	amendments, ok := phrase.(structure.TextAmendmentListPhrase)
	require.True(t, ok)
	require.Len(t, amendments, 1)
	require.Equal(t, "és gyermeke", amendments[0].From)
	require.Equal(t, "", amendments[0].To)
	saeRef, ok := amendments[0].Reference.(structure.SAETextAmendmentReference)
	require.True(t, ok)
	require.False(t, saeRef.Reference.IsActOnly())
}

func TestClassifySpecialPhraseTextAmendmentMultiplePairs(t *testing.T) {
	cache := NewAbbreviationCache(nil)
	text := "A 4. § (2) bekezdésében az „öt nap” szövegrész helyébe a „tíz nap” szöveg, " +
		"valamint az „igazgató” szövegrész helyébe az „elnök” szöveg lép."
	scanned, _, err := ScanReferences(text, cache)
	require.NoError(t, err)
	require.NotEmpty(t, scanned)

	phrase := classifySpecialPhrase(text, scanned)
	amendments, ok := phrase.(structure.TextAmendmentListPhrase)
	require.True(t, ok)
	require.Len(t, amendments, 2)
	require.Equal(t, "öt nap", amendments[0].From)
	require.Equal(t, "tíz nap", amendments[0].To)
	require.Equal(t, "igazgató", amendments[1].From)
	require.Equal(t, "elnök", amendments[1].To)
}

func TestClassifySpecialPhraseEnforcementDateMonthInDay(t *testing.T) {
	cache := NewAbbreviationCache(nil)
	text := "Ez a törvény a kihirdetést követő március hónap 15. napján lép hatályba."
	scanned, _, err := ScanReferences(text, cache)
	require.NoError(t, err)

	phrase := classifySpecialPhrase(text, scanned)
	enf, ok := phrase.(structure.EnforcementDatePhrase)
	require.True(t, ok)
	dayInMonth, ok := enf.Date.(structure.DayInMonthAfterPublication)
	require.True(t, ok)
	require.NotNil(t, dayInMonth.Month)
	require.Equal(t, 3, *dayInMonth.Month)
	require.Equal(t, 15, dayInMonth.Day)
}

func TestClassifySpecialPhraseEnforcementDateInlineRepeal(t *testing.T) {
	cache := NewAbbreviationCache(nil)
	text := "Ez a törvény a kihirdetést követő napon lép hatályba, és 2020. június 30. napjával hatályát veszti."
	scanned, _, err := ScanReferences(text, cache)
	require.NoError(t, err)

	phrase := classifySpecialPhrase(text, scanned)
	enf, ok := phrase.(structure.EnforcementDatePhrase)
	require.True(t, ok)
	require.NotNil(t, enf.InlineRepeal)
	require.True(t, time.Date(2020, time.June, 30, 0, 0, 0, 0, time.UTC).Equal(*enf.InlineRepeal))
}

func TestClassifySpecialPhraseEnforcementDateStructuralPosition(t *testing.T) {
	cache := NewAbbreviationCache(nil)
	text := "A III. Fejezet a kihirdetést követő napon lép hatályba."
	scanned, _, err := ScanReferences(text, cache)
	require.NoError(t, err)

	phrase := classifySpecialPhrase(text, scanned)
	enf, ok := phrase.(structure.EnforcementDatePhrase)
	require.True(t, ok)
	require.Len(t, enf.StructuralPositions, 1)
	require.Equal(t, reference.StructuralReferenceChapter, enf.StructuralPositions[0].StructuralElement.Kind)
	require.Equal(t, uint16(3), enf.StructuralPositions[0].StructuralElement.NumericID.Num)
	require.False(t, enf.IsDefault)
}
