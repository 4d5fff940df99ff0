/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package walker_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/structure"
	"github.com/badicsalex/hunlaw/walker"
)

// testAct builds a small two-article Act: Article 1 is a single text
// paragraph, Article 2 has an intro, two alphabetic points (the second
// with numeric subpoints) and a wrap-up.
func testAct() *structure.Act {
	p1 := identifier.NumericIdentifierFromInt(1)
	return &structure.Act{
		Identifier: identifier.ActIdentifier{Year: 2012, Number: 1},
		Children: []structure.ActChild{
			&structure.Article{
				Identifier: identifier.ArticleIdentifierFromInt(1),
				Children: []structure.Paragraph{
					{Body: structure.TextBody("This is article 1.")},
				},
			},
			&structure.Article{
				Identifier: identifier.ArticleIdentifierFromInt(2),
				Children: []structure.Paragraph{
					{
						Identifier: &p1,
						Body: structure.ChildrenBody{
							Intro: "The following rules apply:",
							Children: structure.AlphabeticPointList{
								{
									Identifier: mustLatin('a'),
									Body:       structure.TextBody("point a text"),
								},
								{
									Identifier: mustLatin('b'),
									Body: structure.ChildrenBody{
										Intro: "point b intro",
										Children: structure.NumericSubpointList{
											{Identifier: identifier.NumericIdentifierFromInt(1), Body: structure.TextBody("subpoint 1")},
											{Identifier: identifier.NumericIdentifierFromInt(2), Body: structure.TextBody("subpoint 2")},
										},
									},
								},
							},
							WrapUp: strPtr("wrap up text"),
						},
					},
				},
			},
		},
	}
}

func strPtr(s string) *string { return &s }

func mustLatin(c byte) identifier.HungarianChar {
	h, err := identifier.NewLatinChar(c)
	if err != nil {
		panic(err)
	}
	return h
}

type recordingVisitor struct {
	entered []string
	exited  []string
	texts   []string
}

func (v *recordingVisitor) OnEnter(intro string, wrapUp *string, semantic *structure.SemanticInfo) error {
	v.entered = append(v.entered, intro)
	return nil
}

func (v *recordingVisitor) OnExit(intro string, wrapUp *string, semantic *structure.SemanticInfo) error {
	v.exited = append(v.exited, intro)
	return nil
}

func (v *recordingVisitor) OnText(text string, semantic *structure.SemanticInfo) error {
	v.texts = append(v.texts, text)
	return nil
}

func TestWalkVisitsEveryLeafInOrder(t *testing.T) {
	act := testAct()
	v := &recordingVisitor{}
	require.NoError(t, walker.Walk(act, v))

	require.Equal(t, []string{
		"This is article 1.",
		"point a text",
		"subpoint 1",
		"subpoint 2",
	}, v.texts)
	require.Equal(t, []string{"The following rules apply:", "point b intro"}, v.entered)
	require.Equal(t, []string{"point b intro", "The following rules apply:"}, v.exited)
}

type upperingMutVisitor struct{}

func (upperingMutVisitor) OnEnter(intro *string, wrapUp **string, semantic *structure.SemanticInfo) error {
	return nil
}

func (upperingMutVisitor) OnExit(intro *string, wrapUp **string, semantic *structure.SemanticInfo) error {
	return nil
}

func (upperingMutVisitor) OnText(text *string, semantic *structure.SemanticInfo) error {
	*text = *text + "!"
	return nil
}

func TestWalkMutModifiesLeavesInPlace(t *testing.T) {
	act := testAct()
	require.NoError(t, walker.WalkMut(act, upperingMutVisitor{}))

	v := &recordingVisitor{}
	require.NoError(t, walker.Walk(act, v))
	require.Equal(t, []string{
		"This is article 1.!",
		"point a text!",
		"subpoint 1!",
		"subpoint 2!",
	}, v.texts)
}
