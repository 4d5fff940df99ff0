/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package structure_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/structure"
)

func TestStructuralElementHeaderString(t *testing.T) {
	cases := []struct {
		name string
		elem structure.StructuralElement
		want string
	}{
		{
			name: "book",
			elem: structure.StructuralElement{
				Identifier: identifier.NumericIdentifierFromInt(8),
				Type:       structure.StructuralElementBook,
			},
			want: "NYOLCADIK KÖNYV",
		},
		{
			name: "special part",
			elem: structure.StructuralElement{
				Identifier:    identifier.NumericIdentifierFromInt(2),
				Type:          structure.StructuralElementPart,
				IsSpecialPart: true,
			},
			want: "KÜLÖNÖS RÉSZ",
		},
		{
			name: "nonspecial part",
			elem: structure.StructuralElement{
				Identifier: identifier.NumericIdentifierFromInt(1),
				Type:       structure.StructuralElementPart,
			},
			want: "ELSŐ RÉSZ",
		},
		{
			name: "title",
			elem: structure.StructuralElement{
				Identifier: identifier.NumericIdentifierFromInt(2),
				Type:       structure.StructuralElementTitle,
			},
			want: "II. CÍM",
		},
		{
			name: "chapter",
			elem: structure.StructuralElement{
				Identifier: identifier.NumericIdentifierFromInt(14),
				Type:       structure.StructuralElementChapter,
			},
			want: "XIV. FEJEZET",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.elem.HeaderString()
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestArticleHeaderString(t *testing.T) {
	a := structure.Article{Identifier: identifier.ArticleIdentifierFromInt(12)}
	require.Equal(t, "12. §", a.HeaderString())
}

func TestActArticlesSkipsOtherChildren(t *testing.T) {
	art1 := &structure.Article{Identifier: identifier.ArticleIdentifierFromInt(1)}
	art2 := &structure.Article{Identifier: identifier.ArticleIdentifierFromInt(2)}
	act := structure.Act{
		Children: []structure.ActChild{
			&structure.StructuralElement{Type: structure.StructuralElementChapter},
			art1,
			&structure.Subtitle{Title: "A subtitle"},
			art2,
		},
	}
	require.Equal(t, []*structure.Article{art1, art2}, act.Articles())
}

func TestSemanticInfoIsEmpty(t *testing.T) {
	var s structure.SemanticInfo
	require.True(t, s.IsEmpty())

	s.SpecialPhrase = structure.RepealPhrase{}
	require.False(t, s.IsEmpty())
}
