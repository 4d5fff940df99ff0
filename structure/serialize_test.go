/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package structure_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/line"
	"github.com/badicsalex/hunlaw/reference"
	"github.com/badicsalex/hunlaw/structure"
)

func strPtr(s string) *string { return &s }

func numPtr(n uint16) *identifier.NumericIdentifier {
	id := identifier.NumericIdentifierFromInt(n)
	return &id
}

func char(t *testing.T, s string) identifier.HungarianChar {
	t.Helper()
	c, err := identifier.ParseHungarianChar(s)
	require.NoError(t, err)
	return c
}

func subpointID(t *testing.T, s string) identifier.PrefixedAlphabeticIdentifier {
	t.Helper()
	id, err := identifier.ParsePrefixedAlphabeticIdentifier(s)
	require.NoError(t, err)
	return id
}

func sampleAct(t *testing.T) *structure.Act {
	t.Helper()
	ref, err := reference.NewBuilder().
		SetAct(identifier.ActIdentifier{Year: 2022, Number: 22}).
		SetArticle(identifier.SingleIdentifier(identifier.ArticleIdentifierFromInt(5))).
		Build()
	require.NoError(t, err)

	return &structure.Act{
		Identifier:      identifier.ActIdentifier{Year: 2011, Number: 43},
		Subject:         "A nemzetközi tesztelésről",
		Preamble:        "Az Országgyűlés a tesztelés fontosságát felismerve a következő törvényt alkotja:",
		PublicationDate: time.Date(2011, time.May, 2, 0, 0, 0, 0, time.UTC),
		ContainedAbbreviations: map[string]identifier.ActIdentifier{
			"Cstv.": {Year: 2022, Number: 22},
		},
		Children: []structure.ActChild{
			&structure.StructuralElement{
				Identifier: identifier.NumericIdentifierFromInt(1),
				Type:       structure.StructuralElementChapter,
				Title:      "Általános rendelkezések",
			},
			&structure.Subtitle{
				Identifier: numPtr(1),
				Title:      "A törvény hatálya",
			},
			&structure.Article{
				Identifier: identifier.ArticleIdentifierFromInt(1),
				Title:      strPtr("A hatály"),
				Children: []structure.Paragraph{
					{
						Identifier: numPtr(1),
						Body: structure.ChildrenBody{
							Intro: "E törvény hatálya kiterjed",
							Children: structure.AlphabeticPointList{
								{
									Identifier: char(t, "a"),
									Body:       structure.TextBody("a természetes személyekre"),
								},
								{
									Identifier: char(t, "b"),
									Body: structure.ChildrenBody{
										Intro: "a jogi személyekre, ha",
										Children: structure.AlphabeticSubpointList{
											{
												Identifier: subpointID(t, "ba"),
												Body:       structure.TextBody("belföldön működnek"),
											},
											{
												Identifier: subpointID(t, "bb"),
												Body:       structure.TextBody("külföldön működnek"),
											},
										},
									},
								},
							},
							WrapUp: strPtr("feltéve, hogy a törvény másként nem rendelkezik."),
						},
					},
					{
						Identifier: numPtr(2),
						Body:       structure.TextBody("A Cstv. 5. §-a fontos."),
						Semantic: structure.SemanticInfo{
							OutgoingReferences: []structure.OutgoingReference{
								{Start: 2, End: 13, Reference: ref},
							},
						},
					},
				},
			},
			&structure.Article{
				Identifier: identifier.ArticleIdentifierFromInt(2),
				Children: []structure.Paragraph{
					{
						Body: structure.ChildrenBody{
							Intro: "A Cstv. 5. §-a helyébe a következő rendelkezés lép:",
							Children: structure.QuotedBlockList{
								{
									Lines: []line.IndentedLine{
										line.FromParts([]line.Part{
											{Dx: 70, Content: '5'},
											{Dx: 5, Content: '.'},
										}, false),
									},
								},
							},
						},
						Semantic: structure.SemanticInfo{
							SpecialPhrase: structure.BlockAmendmentPhrase{Position: ref},
						},
					},
				},
			},
		},
	}
}

func TestActSerializationRoundTrip(t *testing.T) {
	act := sampleAct(t)

	y, err := yaml.Marshal(act)
	require.NoError(t, err)
	var back structure.Act
	require.NoError(t, yaml.Unmarshal(y, &back))
	assert.Equal(t, *act, back)
}

func TestActCompactFlavorDecodesLikeTheReadableOne(t *testing.T) {
	act := sampleAct(t)

	j, err := json.Marshal(act)
	require.NoError(t, err)
	var back structure.Act
	require.NoError(t, yaml.Unmarshal(j, &back))
	assert.Equal(t, *act, back)
}

func TestSemanticInfoSerializationVariants(t *testing.T) {
	ref, err := reference.NewBuilder().
		SetArticle(identifier.SingleIdentifier(identifier.ArticleIdentifierFromInt(12))).
		Build()
	require.NoError(t, err)
	month := 3
	inlineRepeal := time.Date(2013, time.January, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		phrase structure.SpecialPhrase
	}{
		{
			name:   "repeal",
			phrase: structure.RepealPhrase{Positions: []reference.Reference{ref}},
		},
		{
			name: "structural repeal",
			phrase: structure.StructuralRepealPhrase{
				Position: reference.StructuralReference{
					StructuralElement: reference.StructuralReferenceElement{
						Kind:      reference.StructuralReferencePart,
						NumericID: identifier.NumericIdentifierFromInt(2),
					},
				},
			},
		},
		{
			name: "enforcement date absolute with inline repeal",
			phrase: structure.EnforcementDatePhrase{
				Positions:    []reference.Reference{ref},
				Date:         structure.AbsoluteDate(time.Date(2012, time.March, 15, 0, 0, 0, 0, time.UTC)),
				InlineRepeal: &inlineRepeal,
			},
		},
		{
			name: "enforcement date days after publication",
			phrase: structure.EnforcementDatePhrase{
				IsDefault: true,
				Date:      structure.DaysAfterPublication(30),
			},
		},
		{
			name: "enforcement date day in month",
			phrase: structure.EnforcementDatePhrase{
				Positions: []reference.Reference{ref},
				Date:      structure.DayInMonthAfterPublication{Month: &month, Day: 15},
			},
		},
		{
			name: "text amendments",
			phrase: structure.TextAmendmentListPhrase{
				{
					Reference: structure.SAETextAmendmentReference{Reference: ref},
					From:      "régi szöveg",
					To:        "új szöveg",
				},
				{
					Reference: structure.SAETextAmendmentReference{
						Reference:   ref,
						AmendedPart: structure.TextAmendmentSAEPartIntroOnly,
					},
					From: "törlendő szövegrész",
				},
			},
		},
		{
			name: "article title amendment",
			phrase: structure.ArticleTitleAmendmentPhrase{
				Reference: ref,
				From:      "régi cím",
				To:        "új cím",
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			info := structure.SemanticInfo{SpecialPhrase: c.phrase}

			y, err := yaml.Marshal(info)
			require.NoError(t, err)
			var back structure.SemanticInfo
			require.NoError(t, yaml.Unmarshal(y, &back))
			assert.Equal(t, info, back)

			j, err := json.Marshal(info)
			require.NoError(t, err)
			var back2 structure.SemanticInfo
			require.NoError(t, yaml.Unmarshal(j, &back2))
			assert.Equal(t, info, back2)
		})
	}
}

func TestBlockAmendmentSerialization(t *testing.T) {
	p := structure.Paragraph{
		Identifier: numPtr(2),
		Body: structure.ChildrenBody{
			Intro: "A Cstv. 5. § (2) bekezdése helyébe a következő rendelkezés lép:",
			Children: structure.BlockAmendment{
				Children: structure.ParagraphList{
					{
						Identifier: numPtr(2),
						Body:       structure.TextBody("Az új szabály."),
					},
				},
			},
		},
	}

	y, err := yaml.Marshal(p)
	require.NoError(t, err)
	var back structure.Paragraph
	require.NoError(t, yaml.Unmarshal(y, &back))
	assert.Equal(t, p, back)
}

func TestStructuralBlockAmendmentSerialization(t *testing.T) {
	p := structure.Paragraph{
		Identifier: numPtr(1),
		Body: structure.ChildrenBody{
			Intro: "A Cstv. 8. alcíme helyébe a következő rendelkezés lép:",
			Children: structure.StructuralBlockAmendment{
				Children: []structure.ActChild{
					&structure.Subtitle{Identifier: numPtr(8), Title: "Új alcím"},
					&structure.Article{
						Identifier: identifier.ArticleIdentifierFromInt(15),
						Children: []structure.Paragraph{
							{Body: structure.TextBody("Az új alcím tartalma.")},
						},
					},
				},
			},
		},
	}

	y, err := yaml.Marshal(p)
	require.NoError(t, err)
	var back structure.Paragraph
	require.NoError(t, yaml.Unmarshal(y, &back))
	assert.Equal(t, p, back)
}

func TestSAEDecodeRejectsUnknownChildrenVariant(t *testing.T) {
	var p structure.Paragraph
	err := yaml.Unmarshal([]byte(`
identifier: "1"
body:
  intro: x
  children:
    bogus_variant: []
`), &p)
	assert.Error(t, err)
}
