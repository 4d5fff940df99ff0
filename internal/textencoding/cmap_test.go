/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleCMap = `
/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
1 begincodespacerange
<0000> <FFFF>
endcodespacerange
2 beginbfchar
<0003> <0041>
<0004> <00660069>
endbfchar
1 beginbfrange
<0005> <0007> <0061>
endbfrange
endbfchar
endcmap
end
end
`

func TestParseToUnicodeCMapBfChar(t *testing.T) {
	cm := ParseToUnicodeCMap([]byte(sampleCMap))
	s, ok := cm.Lookup(3)
	assert.True(t, ok)
	assert.Equal(t, "A", s)
}

func TestParseToUnicodeCMapBfCharMultiRune(t *testing.T) {
	cm := ParseToUnicodeCMap([]byte(sampleCMap))
	s, ok := cm.Lookup(4)
	assert.True(t, ok)
	assert.Equal(t, "fi", s)
}

func TestParseToUnicodeCMapBfRange(t *testing.T) {
	cm := ParseToUnicodeCMap([]byte(sampleCMap))
	s5, ok := cm.Lookup(5)
	assert.True(t, ok)
	assert.Equal(t, "a", s5)
	s7, ok := cm.Lookup(7)
	assert.True(t, ok)
	assert.Equal(t, "c", s7)
}

func TestParseToUnicodeCMapMissingCode(t *testing.T) {
	cm := ParseToUnicodeCMap([]byte(sampleCMap))
	_, ok := cm.Lookup(999)
	assert.False(t, ok)
}

func TestBaseEncodingTableWinAnsiBulletFallback(t *testing.T) {
	table, ok := BaseEncodingTable(WinAnsiEncoding)
	assert.True(t, ok)
	assert.Equal(t, 'A', table[0x41])
	assert.Equal(t, '•', table[0x81])
}

func TestBaseEncodingTableUnsupported(t *testing.T) {
	_, ok := BaseEncodingTable("BogusEncoding")
	assert.False(t, ok)
}

func TestGlyphNameToRune(t *testing.T) {
	r, ok := GlyphNameToRune("ohungarumlaut")
	assert.True(t, ok)
	assert.Equal(t, 'ő', r)

	r, ok = GlyphNameToRune("a")
	assert.True(t, ok)
	assert.Equal(t, 'a', r)

	r, ok = GlyphNameToRune("uni0151")
	assert.True(t, ok)
	assert.Equal(t, 'ő', r)

	r, ok = GlyphNameToRune("f_i")
	assert.True(t, ok)
	assert.Equal(t, 'ﬁ', r)

	r, ok = GlyphNameToRune("C211")
	assert.True(t, ok)
	assert.Equal(t, rune(211), r)

	_, ok = GlyphNameToRune("notaglyphname")
	assert.False(t, ok)
}
