/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package identifier

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDegenerateRangeSerializesAsScalar(t *testing.T) {
	suffix, err := ParseHungarianChar("a")
	require.NoError(t, err)
	r := SingleIdentifier(NumericIdentifier{Num: 12, HasSuffix: true, Suffix: suffix})

	y, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, "12a\n", string(y))

	var back IdentifierRange[NumericIdentifier]
	require.NoError(t, yaml.Unmarshal(y, &back))
	assert.Equal(t, r, back)
	assert.False(t, back.IsRange())

	j, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `"12a"`, string(j))

	var back2 IdentifierRange[NumericIdentifier]
	require.NoError(t, yaml.Unmarshal(j, &back2))
	assert.Equal(t, r, back2)
}

func TestGenuineRangeSerializesAsStartEnd(t *testing.T) {
	r := NewIdentifierRange(NumericIdentifierFromInt(1), NumericIdentifierFromInt(3))

	j, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start": "1", "end": "3"}`, string(j))

	var back IdentifierRange[NumericIdentifier]
	require.NoError(t, yaml.Unmarshal(j, &back))
	assert.Equal(t, r, back)
	assert.True(t, back.IsRange())

	y, err := yaml.Marshal(r)
	require.NoError(t, err)
	var back2 IdentifierRange[NumericIdentifier]
	require.NoError(t, yaml.Unmarshal(y, &back2))
	assert.Equal(t, r, back2)
}

func TestDigraphRangeSerialization(t *testing.T) {
	n, err := ParseHungarianChar("n")
	require.NoError(t, err)
	ny, err := ParseHungarianChar("ny")
	require.NoError(t, err)
	r := NewIdentifierRange(n, ny)

	y, err := yaml.Marshal(r)
	require.NoError(t, err)
	var back IdentifierRange[HungarianChar]
	require.NoError(t, yaml.Unmarshal(y, &back))
	assert.Equal(t, r, back)
}

func TestArticleRangeSerialization(t *testing.T) {
	first, err := ParseArticleIdentifier("1:123")
	require.NoError(t, err)
	last, err := ParseArticleIdentifier("2:1")
	require.NoError(t, err)
	r := NewIdentifierRange(first, last)

	y, err := yaml.Marshal(r)
	require.NoError(t, err)
	var back IdentifierRange[ArticleIdentifier]
	require.NoError(t, yaml.Unmarshal(y, &back))
	assert.Equal(t, r, back)
}

func TestActIdentifierSerialization(t *testing.T) {
	id := ActIdentifier{Year: 2012, Number: 154}

	y, err := yaml.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, "2012/154\n", string(y))

	var back ActIdentifier
	require.NoError(t, yaml.Unmarshal(y, &back))
	assert.Equal(t, id, back)

	// The classic printed form is accepted on decode too.
	require.NoError(t, yaml.Unmarshal([]byte(`"2012. évi CLIV. törvény"`), &back))
	assert.Equal(t, id, back)
}

func TestPrefixedAlphabeticSerialization(t *testing.T) {
	id, err := ParsePrefixedAlphabeticIdentifier("ba")
	require.NoError(t, err)

	j, err := json.Marshal(SingleIdentifier(id))
	require.NoError(t, err)
	assert.Equal(t, `"ba"`, string(j))

	var back IdentifierRange[PrefixedAlphabeticIdentifier]
	require.NoError(t, yaml.Unmarshal(j, &back))
	assert.Equal(t, SingleIdentifier(id), back)
}
