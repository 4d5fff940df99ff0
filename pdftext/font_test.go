/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pdftext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFontToUnicodeDensePriority(t *testing.T) {
	f := &Font{}
	f.addMapping(65, "A")
	s, ok := f.ToUnicode(65)
	assert.True(t, ok)
	assert.Equal(t, "A", s)
}

func TestFontToUnicodeSparseOverridesDense(t *testing.T) {
	f := &Font{}
	f.addMapping(65, "A")
	f.smap = map[uint32]string{65: "ffi"}
	s, ok := f.ToUnicode(65)
	assert.True(t, ok)
	assert.Equal(t, "ffi", s)
}

func TestFontToUnicodeIdentityFallback(t *testing.T) {
	f := &Font{isIdentity: true}
	s, ok := f.ToUnicode(0x41)
	assert.True(t, ok)
	assert.Equal(t, "A", s)
}

func TestFontToUnicodeUnknownCID(t *testing.T) {
	f := &Font{}
	_, ok := f.ToUnicode(999)
	assert.False(t, ok)
}

func TestFontAddMappingRoutesHighCIDToSparse(t *testing.T) {
	f := &Font{}
	f.addMapping(5000, "x")
	assert.Empty(t, f.cmap)
	s, ok := f.smap[5000]
	assert.True(t, ok)
	assert.Equal(t, "x", s)
}

func TestFontWidthOfSpaceFallback(t *testing.T) {
	f := &Font{defaultWidth: 0, widths: map[uint32]float64{}}
	f.widths[32] = 0
	f.widthOfSpace = f.Width(32)
	if f.widthOfSpace == 0 || f.widthOfSpace == 1 {
		f.widthOfSpace = defaultWidthOfSpace
	}
	assert.Equal(t, defaultWidthOfSpace, f.widthOfSpace)
}
