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

func TestParseNumericIdentifier(t *testing.T) {
	id, err := ParseNumericIdentifier("5zs")
	require.NoError(t, err)
	assert.EqualValues(t, 5, id.Num)
	assert.True(t, id.HasSuffix)
	assert.Equal(t, "5zs", id.String())

	id, err = ParseNumericIdentifier("123/A")
	require.NoError(t, err)
	assert.EqualValues(t, 123, id.Num)
	assert.Equal(t, "123a", id.String())
	assert.Equal(t, "123/A", id.WithSlash())

	_, err = ParseNumericIdentifier("123//a")
	assert.Error(t, err)

	_, err = ParseNumericIdentifier("")
	assert.Error(t, err)
}

func TestNumericIdentifierIsNextFrom(t *testing.T) {
	five, _ := ParseNumericIdentifier("5")
	fiveZs, _ := ParseNumericIdentifier("5zs")
	fiveZ, _ := ParseNumericIdentifier("5z")
	assert.True(t, fiveZs.IsNextFrom(fiveZ), `"5zs".is_next_from("5z")`)
	assert.False(t, fiveZs.IsNextFrom(five))

	six, _ := ParseNumericIdentifier("6")
	assert.True(t, six.IsNextFrom(five))
	assert.False(t, five.IsNextFrom(six))
}

func TestParseNumericIdentifierFromRoman(t *testing.T) {
	id, err := ParseNumericIdentifierFromRoman("XIV")
	require.NoError(t, err)
	assert.EqualValues(t, 14, id.Num)
	roman, err := id.ToRoman()
	require.NoError(t, err)
	assert.Equal(t, "XIV", roman)
}

func TestNumericIdentifierToHungarian(t *testing.T) {
	id := NumericIdentifierFromInt(8)
	hun, err := id.ToHungarian()
	require.NoError(t, err)
	assert.Equal(t, "nyolcadik", hun)
}
