/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package structure

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/badicsalex/hunlaw/line"
)

func TestExtractQuotedBlocksSingle(t *testing.T) {
	prev := line.FromTestStr("Az 1. § helyébe a következő rendelkezés lép:")
	body := []line.IndentedLine{
		line.FromTestStr("„1. § Ez az új szöveg.”"),
	}
	blocks, wrapUp, err := extractQuotedBlocks(&prev, body)
	require.NoError(t, err)
	require.Nil(t, wrapUp)
	require.Len(t, blocks, 1)
	require.Nil(t, blocks[0].Intro)
	require.Nil(t, blocks[0].WrapUp)
	require.Len(t, blocks[0].Lines, 1)
	require.Equal(t, "1. § Ez az új szöveg.", blocks[0].Lines[0].Content())
}

func TestExtractQuotedBlocksWithWrapUp(t *testing.T) {
	prev := line.FromTestStr("Az 1. § helyébe a következő rendelkezés lép:")
	body := []line.IndentedLine{
		line.FromTestStr("„1. § Ez az új szöveg.”"),
		line.FromTestStr("Ez már nem a kihirdetett szöveg része."),
	}
	blocks, wrapUp, err := extractQuotedBlocks(&prev, body)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	require.NotNil(t, wrapUp)
	require.Equal(t, "Ez már nem a kihirdetett szöveg része.", *wrapUp)
}

func TestExtractQuotedBlocksRequiresOpeningQuote(t *testing.T) {
	prev := line.FromTestStr("Az 1. § helyébe a következő rendelkezés lép:")
	body := []line.IndentedLine{
		line.FromTestStr("Ez nem egy idézett blokk."),
	}
	_, _, err := extractQuotedBlocks(&prev, body)
	require.Error(t, err)
}

func TestQuoteCheckRejectsUnbalancedClose(t *testing.T) {
	var qc quoteCheck
	err := qc.update(line.FromTestStr("Egy szöveg, ami lezár egy nem nyitott” idézetet."))
	require.Error(t, err)
}

func TestQuoteCheckTracksOpenDepthAcrossLines(t *testing.T) {
	var qc quoteCheck
	require.NoError(t, qc.update(line.FromTestStr("Egy „nyitott idézet")))
	require.True(t, qc.endIsQuoted)
	require.NoError(t, qc.update(line.FromTestStr("ami itt zárul.”")))
	require.False(t, qc.endIsQuoted)
	require.NoError(t, qc.checkEnd())
}

func TestEndsWithColon(t *testing.T) {
	require.True(t, endsWithColon("A következő szöveggel egészül ki:"))
	require.False(t, endsWithColon("Ez egy egyszerű mondat."))
}
