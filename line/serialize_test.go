/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package line

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestIndentedLineSerialization(t *testing.T) {
	l := FromParts([]Part{
		{Dx: 70.5, Content: '„', Bold: true},
		{Dx: 5.25, Content: 'a', Bold: true},
		{Dx: 5, Content: 'é'},
	}, true)

	y, err := yaml.Marshal(l)
	require.NoError(t, err)
	var back IndentedLine
	require.NoError(t, yaml.Unmarshal(y, &back))
	assert.Equal(t, l, back, "cached content/bold fields are rebuilt on decode")
	assert.True(t, back.IsJustified())
	assert.Equal(t, "„aé", back.Content())

	j, err := json.Marshal(l)
	require.NoError(t, err)
	var back2 IndentedLine
	require.NoError(t, yaml.Unmarshal(j, &back2))
	assert.Equal(t, l, back2)
}

func TestEmptyLineSerialization(t *testing.T) {
	y, err := yaml.Marshal(Empty)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(y))

	var back IndentedLine
	require.NoError(t, yaml.Unmarshal(y, &back))
	assert.Equal(t, Empty, back)
	assert.True(t, back.IsEmpty())
}

func TestLineSerializationRejectsMultiCharParts(t *testing.T) {
	var l IndentedLine
	err := yaml.Unmarshal([]byte(`{parts: [{dx: 1, content: "ab"}]}`), &l)
	assert.Error(t, err)
}
