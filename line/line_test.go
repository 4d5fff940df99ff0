/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package line

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ilp(dx float64, content rune) Part  { return Part{Dx: dx, Content: content} }
func ilpb(dx float64, content rune) Part { return Part{Dx: dx, Content: content, Bold: true} }

func intPtr(i int) *int { return &i }

func TestEmpty(t *testing.T) {
	assert.True(t, Empty.Equal(FromParts(nil, false)))
	assert.True(t, Empty.Equal(FromParts(nil, true)))
	assert.True(t, FromParts(nil, false).IsEmpty())
	assert.True(t, FromMultiple(nil).IsEmpty())
	assert.True(t, FromMultiple([]IndentedLine{Empty, Empty}).IsEmpty())
}

func TestIndentedLineSlice(t *testing.T) {
	l := FromParts([]Part{
		ilp(5.4, 'a'), ilp(5.6, 'b'), ilp(5.7, 'c'), ilp(1.8, 'd'),
		ilp(2.0, 'e'), ilp(2.0, ' '), ilp(5.0, 'f'),
	}, true)
	assert.Equal(t, "abcde f", l.Content())
	assert.Equal(t, 5.4, l.Indent())
	assert.True(t, l.IsJustified())

	assert.True(t, l.Slice(0, nil).Equal(l))
	assert.True(t, l.Slice(0, nil).IsJustified())

	assert.Equal(t, "bcde f", l.Slice(1, nil).Content())
	assert.Equal(t, 11.0, l.Slice(1, nil).Indent())

	assert.Equal(t, "cde f", l.Slice(2, nil).Content())
	assert.InDelta(t, 16.7, l.Slice(2, nil).Indent(), 1e-9)
	assert.Equal(t, " f", l.Slice(5, nil).Content())
	assert.InDelta(t, 22.5, l.Slice(5, nil).Indent(), 1e-9)

	assert.True(t, l.Slice(7, nil).Equal(Empty))
	assert.True(t, l.Slice(100, nil).Equal(Empty))

	assert.Equal(t, " f", l.Slice(-2, nil).Content())

	assert.Equal(t, "abcde ", l.Slice(0, intPtr(-1)).Content())
	assert.False(t, l.Slice(0, intPtr(-1)).IsJustified())
	assert.Equal(t, "abcde", l.Slice(0, intPtr(-2)).Content())
	assert.Equal(t, "abcde", l.Slice(0, intPtr(5)).Content())

	assert.Equal(t, "bcde ", l.Slice(1, intPtr(-1)).Content())
	assert.Equal(t, "cde", l.Slice(2, intPtr(-2)).Content())
	assert.Equal(t, "cde", l.Slice(2, intPtr(5)).Content())

	assert.True(t, l.Slice(1, intPtr(1)).Equal(Empty))
	assert.True(t, l.Slice(5, intPtr(3)).Equal(Empty))
}

func TestIndentedLineFromMultiple(t *testing.T) {
	line1 := FromParts([]Part{ilp(5.0, 'a'), ilp(5.0, 'b'), ilp(5.0, 'c')}, false)
	line2 := FromParts([]Part{ilp(25.0, 'a'), ilp(5.0, 'b'), ilp(5.0, 'c')}, true)
	concat := FromMultiple([]IndentedLine{line1, line2})
	assert.Equal(t, "abcabc", concat.Content())
	assert.True(t, concat.IsJustified())
	assert.Equal(t, 5.0, concat.Indent())
	assert.Equal(t, "abc", concat.Slice(3, nil).Content())

	assert.Equal(t, 15.0, concat.Slice(2, nil).Indent())
	assert.Equal(t, 25.0, concat.Slice(3, nil).Indent())
	assert.Equal(t, 30.0, concat.Slice(4, nil).Indent())

	bigConc := FromMultiple([]IndentedLine{
		FromParts([]Part{ilp(5.0, 'a'), ilp(5.0, 'b'), ilp(5.0, 'c')}, false),
		FromParts([]Part{ilp(25.0, 'a'), ilp(5.0, 'b'), ilp(5.0, 'c')}, false),
		FromParts([]Part{ilp(45.0, 'a'), ilp(5.0, 'b'), ilp(5.0, 'c')}, false),
		FromParts([]Part{ilp(65.0, 'a'), ilp(5.0, 'b'), ilp(5.0, 'c')}, false),
	})
	assert.Equal(t, 55.0, bigConc.Slice(8, nil).Indent())
	assert.Equal(t, 65.0, bigConc.Slice(9, nil).Indent())
	assert.Equal(t, 70.0, bigConc.Slice(10, nil).Indent())
	assert.Equal(t, 12, bigConc.Len())
	assert.False(t, bigConc.IsJustified())

	for i := 0; i < 11; i++ {
		slice1 := bigConc.Slice(0, intPtr(i))
		slice2 := bigConc.Slice(i, nil)
		concatenated2 := FromMultiple([]IndentedLine{slice1, slice2})
		reslice2 := concatenated2.Slice(i, nil)
		assert.True(t, concatenated2.Equal(bigConc))
		assert.True(t, slice2.Equal(reslice2))
	}

	surrounded := FromMultiple([]IndentedLine{Empty, line2, Empty})
	assert.True(t, surrounded.Equal(line2))
	assert.True(t, surrounded.IsJustified())
}

func TestBoldness(t *testing.T) {
	assert.False(t, FromParts([]Part{ilp(25.0, 'a')}, false).IsBold())
	assert.True(t, FromParts([]Part{ilpb(25.0, 'a')}, false).IsBold())

	twoThirdsBold := FromParts([]Part{
		ilp(5.0, 'a'), ilp(5.0, 'b'), ilpb(5.0, 'c'), ilpb(1.0, 'd'), ilpb(5.0, 'e'), ilpb(1.0, 'f'),
	}, false)
	assert.False(t, twoThirdsBold.IsBold())

	moreThanTwoThirdsBold := FromParts([]Part{
		ilp(25.0, 'a'), ilp(5.0, 'b'), ilpb(5.0, 'c'), ilpb(1.0, 'd'), ilpb(5.0, 'e'), ilpb(1.0, 'f'), ilpb(1.0, '2'),
	}, false)
	assert.True(t, moreThanTwoThirdsBold.IsBold())

	spliced := FromMultiple([]IndentedLine{twoThirdsBold, moreThanTwoThirdsBold})
	assert.True(t, spliced.IsBold())
	assert.False(t, spliced.Slice(0, intPtr(-1)).IsBold())
	assert.True(t, spliced.Slice(1, intPtr(-1)).IsBold())
	assert.True(t, spliced.Slice(2, intPtr(5)).IsBold())
}

func TestBoldnessSensitivity(t *testing.T) {
	parts := []Part{
		ilpb(56.6, '2'), ilpb(4.82, '0'), ilpb(4.82, '9'), ilpb(4.82, '.'), ilpb(3.05, ' '),
		ilpb(0.93, '§'), ilp(5.809, ' '), ilp(23.92, 'A'), ilp(5.507, 'k'), ilp(4.220, 'i'),
	}
	assert.False(t, FromParts(parts, false).IsBold())
}

func TestFromTestStr(t *testing.T) {
	assert.True(t, FromTestStr("    Lol ez   mi?").Equal(FromParts([]Part{
		ilp(30.0, 'L'), ilp(5.0, 'o'), ilp(5.0, 'l'), ilp(5.0, ' '),
		ilp(10.0, 'e'), ilp(5.0, 'z'), ilp(5.0, ' '),
		ilp(20.0, 'm'), ilp(5.0, 'i'), ilp(5.0, '?'),
	}, true)))

	assert.True(t, FromTestStr(" <BOLD> bld").Equal(FromParts([]Part{
		ilpb(50.0, 'b'), ilpb(5.0, 'l'), ilpb(5.0, 'd'),
	}, true)))

	assert.True(t, FromTestStr(" <NJ>   nj").Equal(FromParts([]Part{
		ilp(50.0, 'n'), ilp(5.0, 'j'),
	}, false)))
}

func TestSliceBytes(t *testing.T) {
	content := "2:2. § [Dummy title]"
	var parts []Part
	dxs := []float64{75.0, 5.0, 5.0, 5.0, 5.0, 10.0, 5.0, 10.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 10.0, 5.0, 5.0, 5.0, 5.0, 5.0}
	for i, c := range []rune(content) {
		parts = append(parts, Part{Dx: dxs[i], Content: c})
	}
	l := FromParts(parts, false)
	assert.Equal(t, content[8:21], "[Dummy title]")
	assert.Equal(t, content, l.Content())
	assert.Equal(t, "[Dummy title]", l.SliceBytes(8, intPtr(21)).Content())
	assert.Equal(t, "[Dummy title]", l.SliceBytes(8, nil).Content())
	assert.Equal(t, "[Dummy ", l.SliceBytes(8, intPtr(15)).Content())
	assert.Equal(t, "2. § [Dummy ", l.SliceBytes(2, intPtr(15)).Content())
}

func TestIndentAt(t *testing.T) {
	l := FromParts([]Part{
		ilp(5.4, 'a'), ilp(5.6, 'b'), ilp(5.7, 'c'), ilp(1.8, 'd'),
		ilp(2.0, 'e'), ilp(2.0, ' '), ilp(5.0, 'f'),
	}, true)

	n := l.Len()
	for i := -n; i < n; i++ {
		assert.Equal(t, l.Slice(i, nil).Indent(), l.IndentAt(i), "indent mismatch at %d", i)
	}
	assert.Equal(t, 27.5, l.IndentAt(n))
	assert.Equal(t, 27.5, l.IndentAt(n+100))
	assert.Equal(t, 5.4, l.IndentAt(-n))
	assert.Equal(t, 5.4, l.IndentAt(-n-100))
}
