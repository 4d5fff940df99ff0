/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package blockamendment_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/badicsalex/hunlaw/blockamendment"
	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/line"
	"github.com/badicsalex/hunlaw/reference"
	"github.com/badicsalex/hunlaw/structure"
)

func TestConvertParagraphBlockAmendment(t *testing.T) {
	target := reference.NewBuilder()
	target.SetParagraph(identifier.NewIdentifierRange(
		identifier.NumericIdentifierFromInt(2), identifier.NumericIdentifierFromInt(2),
	))
	position, err := target.Build()
	require.NoError(t, err)

	qb := structure.QuotedBlock{
		Lines: []line.IndentedLine{
			line.FromTestStr("(2) Az alpontban foglaltak szerint kell eljárni."),
		},
	}
	article := &structure.Article{
		Identifier: identifier.ArticleIdentifierFromInt(3),
		Children: []structure.Paragraph{
			{
				Identifier: nil,
				Body: structure.ChildrenBody{
					Intro:    "Valami ",
					Children: structure.QuotedBlockList{qb},
				},
				Semantic: structure.SemanticInfo{
					SpecialPhrase: structure.BlockAmendmentPhrase{Position: position},
				},
			},
		},
	}
	act := &structure.Act{Children: []structure.ActChild{article}}

	require.NoError(t, blockamendment.Convert(act))

	cb, ok := article.Children[0].Body.(structure.ChildrenBody)
	require.True(t, ok)
	amendment, ok := cb.Children.(structure.BlockAmendment)
	require.True(t, ok)
	paragraphs, ok := amendment.Children.(structure.ParagraphList)
	require.True(t, ok)
	require.Len(t, paragraphs, 1)
	require.Equal(t, identifier.NumericIdentifierFromInt(2), *paragraphs[0].Identifier)
}

func TestConvertParagraphLeavesOtherPhrasesAlone(t *testing.T) {
	qb := structure.QuotedBlock{
		Lines: []line.IndentedLine{line.FromTestStr("valami szöveg")},
	}
	article := &structure.Article{
		Identifier: identifier.ArticleIdentifierFromInt(1),
		Children: []structure.Paragraph{
			{
				Body: structure.ChildrenBody{
					Children: structure.QuotedBlockList{qb},
				},
			},
		},
	}
	act := &structure.Act{Children: []structure.ActChild{article}}

	require.NoError(t, blockamendment.Convert(act))

	cb, ok := article.Children[0].Body.(structure.ChildrenBody)
	require.True(t, ok)
	_, stillQuoted := cb.Children.(structure.QuotedBlockList)
	require.True(t, stillQuoted)
}
