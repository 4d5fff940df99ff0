/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package semantics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/structure"
)

func TestAssembleToBeParsedText(t *testing.T) {
	cases := []struct {
		name    string
		prefix  string
		middle  string
		postfix string
		want    string
	}{
		{
			name:    "cascading trailing junk",
			prefix:  "A ",
			middle:  "b, és",
			postfix: " kell.",
			want:    "A b kell.",
		},
		{
			name:   "no postfix, no terminator, gets a period",
			prefix: "",
			middle: "ez egy mondat",
			want:   "ez egy mondat.",
		},
		{
			name:   "no postfix, already terminated",
			prefix: "",
			middle: "ez egy mondat?",
			want:   "ez egy mondat?",
		},
		{
			name:    "postfix present, middle untouched otherwise",
			prefix:  "",
			middle:  "belső rész",
			postfix: " vége.",
			want:    "belső rész vége.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, assembleToBeParsedText(tc.prefix, tc.middle, tc.postfix))
		})
	}
}

func TestAddSemanticInfoAbbreviationAndReference(t *testing.T) {
	actID, err := identifier.ParseActIdentifier("2022. évi XXII. törvény")
	require.NoError(t, err)

	article1 := &structure.Article{
		Identifier: identifier.ArticleIdentifierFromInt(1),
		Children: []structure.Paragraph{
			{Body: structure.TextBody(
				"Létezik a csodákról szóló 2022. évi XXII. törvény (a továbbiakban: Cstv.).",
			)},
		},
	}
	article5 := &structure.Article{
		Identifier: identifier.ArticleIdentifierFromInt(5),
		Children: []structure.Paragraph{
			{Body: structure.TextBody("A Cstv. 5. §-a fontos.")},
		},
	}
	act := &structure.Act{
		Identifier: actID,
		Children:   []structure.ActChild{article1, article5},
	}

	changed, err := AddSemanticInfo(act)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, actID, act.ContainedAbbreviations["Cstv."])

	require.NotEmpty(t, article5.Children[0].Semantic.OutgoingReferences)
	oref := article5.Children[0].Semantic.OutgoingReferences[0]
	refAct, ok := oref.Reference.Act()
	require.True(t, ok)
	require.Equal(t, actID, refAct)
	refArticle, ok := oref.Reference.Article()
	require.True(t, ok)
	require.Equal(t, identifier.ArticleIdentifierFromInt(5), refArticle.First())

	// Re-running must be idempotent: no new abbreviation mapping appears.
	changedAgain, err := AddSemanticInfo(act)
	require.NoError(t, err)
	require.False(t, changedAgain)
}

func TestAddSemanticInfoToArticle(t *testing.T) {
	actID, err := identifier.ParseActIdentifier("2022. évi XXII. törvény")
	require.NoError(t, err)

	article5 := &structure.Article{
		Identifier: identifier.ArticleIdentifierFromInt(5),
		Children: []structure.Paragraph{
			{Body: structure.TextBody("A 3. § (2) bekezdése fontos.")},
		},
	}
	act := &structure.Act{
		Identifier:             actID,
		Children:               []structure.ActChild{article5},
		ContainedAbbreviations: map[string]identifier.ActIdentifier{},
	}

	changed, err := AddSemanticInfoToArticle(act, identifier.ArticleIdentifierFromInt(5))
	require.NoError(t, err)
	require.False(t, changed)
	require.NotEmpty(t, article5.Children[0].Semantic.OutgoingReferences)

	_, err = AddSemanticInfoToArticle(act, identifier.ArticleIdentifierFromInt(99))
	require.Error(t, err)
}
