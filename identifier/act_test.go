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

func TestParseActIdentifierClassic(t *testing.T) {
	id, err := ParseActIdentifier("2012. évi CLIV. törvény")
	require.NoError(t, err)
	assert.Equal(t, 2012, id.Year)
	assert.Equal(t, 154, id.Number)
	assert.Equal(t, "2012. évi CLIV. törvény", id.String())
}

func TestParseActIdentifierDecimalForms(t *testing.T) {
	for _, s := range []string{"2012/154", "2012-154", "2012.154", "2012_154"} {
		id, err := ParseActIdentifier(s)
		require.NoError(t, err, s)
		assert.Equal(t, 2012, id.Year, s)
		assert.Equal(t, 154, id.Number, s)
	}
}

func TestActIdentifierCompactString(t *testing.T) {
	id := ActIdentifier{Year: 2012, Number: 154}
	assert.Equal(t, "2012/154", id.CompactString())
}

func TestParseActIdentifierInvalid(t *testing.T) {
	_, err := ParseActIdentifier("not an act")
	assert.Error(t, err)
}
