/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHungarianChar(t *testing.T) {
	c, err := ParseHungarianChar("zs")
	require.NoError(t, err)
	assert.True(t, c.IsDigraph())
	assert.Equal(t, "zs", c.String())

	c, err = ParseHungarianChar("a")
	require.NoError(t, err)
	assert.False(t, c.IsDigraph())
	assert.True(t, c.IsFirst())

	_, err = ParseHungarianChar("qq")
	assert.Error(t, err)
}

func TestHungarianCharIsNextFrom(t *testing.T) {
	a, _ := ParseHungarianChar("a")
	b, _ := ParseHungarianChar("b")
	assert.True(t, b.IsNextFrom(a))
	assert.False(t, a.IsNextFrom(b))

	p, _ := ParseHungarianChar("p")
	r, _ := ParseHungarianChar("r")
	assert.True(t, r.IsNextFrom(p), "r follows p directly, q is skipped")

	zs, _ := ParseHungarianChar("zs")
	z, _ := ParseHungarianChar("z")
	assert.True(t, zs.IsNextFrom(z))
}

func TestHungarianCharCompare(t *testing.T) {
	a, _ := ParseHungarianChar("a")
	zs, _ := ParseHungarianChar("zs")
	assert.Less(t, a.Compare(zs), 0)
	assert.Greater(t, zs.Compare(a), 0)
}
