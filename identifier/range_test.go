/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifierRangeSingle(t *testing.T) {
	id := NumericIdentifierFromInt(5)
	r := SingleIdentifier[NumericIdentifier](id)
	assert.False(t, r.IsRange())
	assert.Equal(t, "5", r.String())
	assert.True(t, r.Contains(id))
	assert.True(t, r.FirstInRange(id))
	assert.True(t, r.LastInRange(id))
}

func TestIdentifierRangeMulti(t *testing.T) {
	first := NumericIdentifierFromInt(1)
	last := NumericIdentifierFromInt(3)
	r := NewIdentifierRange(first, last)
	assert.True(t, r.IsRange())
	assert.Equal(t, "1-3", r.String())

	assert.True(t, r.Contains(NumericIdentifierFromInt(2)))
	assert.False(t, r.Contains(NumericIdentifierFromInt(4)))
}

func TestIdentifierRangeMarshalText(t *testing.T) {
	r := SingleIdentifier[NumericIdentifier](NumericIdentifierFromInt(7))
	b, err := r.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "7", string(b))
}
