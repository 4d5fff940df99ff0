/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package reference

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/badicsalex/hunlaw/identifier"
)

func mustHungarianChar(t *testing.T, s string) identifier.HungarianChar {
	t.Helper()
	c, err := identifier.ParseHungarianChar(s)
	require.NoError(t, err)
	return c
}

func TestReferenceSerialization(t *testing.T) {
	ref, err := NewBuilder().
		SetAct(identifier.ActIdentifier{Year: 2012, Number: 154}).
		SetArticle(identifier.SingleIdentifier(mustArticle(t, "5"))).
		SetParagraph(identifier.SingleIdentifier(mustNumeric(t, "2"))).
		SetPoint(AlphabeticRefPartPoint(identifier.NewIdentifierRange(
			mustHungarianChar(t, "a"), mustHungarianChar(t, "c")))).
		Build()
	require.NoError(t, err)

	j, err := json.Marshal(ref)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"act": "2012/154", "article": "5", "paragraph": "2", "point": {"start": "a", "end": "c"}}`,
		string(j))

	var back Reference
	require.NoError(t, yaml.Unmarshal(j, &back))
	assert.Equal(t, ref, back)

	y, err := yaml.Marshal(ref)
	require.NoError(t, err)
	var back2 Reference
	require.NoError(t, yaml.Unmarshal(y, &back2))
	assert.Equal(t, ref, back2)
}

func TestReferenceSerializationNumericPoint(t *testing.T) {
	ref, err := NewBuilder().
		SetArticle(identifier.SingleIdentifier(mustArticle(t, "12/A"))).
		SetPoint(NumericRefPartPoint(identifier.SingleIdentifier(mustNumeric(t, "3")))).
		SetSubpoint(AlphabeticRefPartSubpoint(identifier.SingleIdentifier(
			mustPrefixedAlphabetic(t, "ba")))).
		Build()
	require.NoError(t, err)

	y, err := yaml.Marshal(ref)
	require.NoError(t, err)
	var back Reference
	require.NoError(t, yaml.Unmarshal(y, &back))
	assert.Equal(t, ref, back)

	point, ok := back.Point()
	require.True(t, ok)
	assert.Equal(t, PointKindNumeric, point.Kind)
	subpoint, ok := back.Subpoint()
	require.True(t, ok)
	assert.Equal(t, PointKindAlphabetic, subpoint.Kind)
}

func TestReferenceDecodeRejectsGaps(t *testing.T) {
	var ref Reference
	err := yaml.Unmarshal([]byte(`{paragraph: "2", subpoint: "a"}`), &ref)
	assert.Error(t, err, "paragraph+subpoint without point is a gap")

	err = yaml.Unmarshal([]byte(`{article: {start: "1", end: "3"}, paragraph: "2"}`), &ref)
	assert.Error(t, err, "parts after a ranged article are invalid")
}

func TestEmptyReferenceSerialization(t *testing.T) {
	y, err := yaml.Marshal(Reference{})
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(y))

	var back Reference
	require.NoError(t, yaml.Unmarshal(y, &back))
	assert.Equal(t, Reference{}, back)
}

func TestStructuralReferenceSerialization(t *testing.T) {
	act := identifier.ActIdentifier{Year: 2011, Number: 43}
	book := identifier.NumericIdentifierFromInt(3)
	ref := StructuralReference{
		Act:  &act,
		Book: &book,
		StructuralElement: StructuralReferenceElement{
			Kind:          StructuralReferenceSubtitleBeforeArticle,
			ArticleAnchor: mustArticle(t, "3:15"),
		},
	}

	y, err := yaml.Marshal(ref)
	require.NoError(t, err)
	var back StructuralReference
	require.NoError(t, yaml.Unmarshal(y, &back))
	assert.Equal(t, ref, back)

	j, err := json.Marshal(ref)
	require.NoError(t, err)
	var back2 StructuralReference
	require.NoError(t, yaml.Unmarshal(j, &back2))
	assert.Equal(t, ref, back2)
}

func TestStructuralReferenceKindNamesRoundTrip(t *testing.T) {
	for kind := range structuralReferenceKindNames {
		y, err := yaml.Marshal(kind)
		require.NoError(t, err)
		var back StructuralReferenceKind
		require.NoError(t, yaml.Unmarshal(y, &back))
		assert.Equal(t, kind, back)
	}
}
