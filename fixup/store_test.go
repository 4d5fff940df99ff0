/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fixup_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/badicsalex/hunlaw/fixup"
	"github.com/badicsalex/hunlaw/identifier"
)

func TestStoreLoadMissingFileIsEmpty(t *testing.T) {
	store, err := fixup.Load(identifier.ActIdentifier{Year: 2011, Number: 43}, t.TempDir())
	require.NoError(t, err)
	require.Empty(t, store.Fixups())
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	baseDir := t.TempDir()
	actID := identifier.ActIdentifier{Year: 2011, Number: 43}

	store, err := fixup.Load(actID, baseDir)
	require.NoError(t, err)
	store.Add(fixup.Fixup{Old: "régi", New: "új"})
	store.Add(fixup.Fixup{After: []string{"előzmény"}, Old: "még egy", New: "csere", SetBold: true})
	require.NoError(t, store.Save())

	reloaded, err := fixup.Load(actID, baseDir)
	require.NoError(t, err)
	require.Equal(t, store.Fixups(), reloaded.Fixups())
}
