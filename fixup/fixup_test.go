/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fixup_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/badicsalex/hunlaw/fixup"
	"github.com/badicsalex/hunlaw/line"
)

// uniformLine builds a line where every character advances by the same
// positive dx, isolating fixup's own dx arithmetic from whatever
// spacing quirks a real extracted line might carry.
func uniformLine(s string) line.IndentedLine {
	runes := []rune(s)
	parts := make([]line.Part, len(runes))
	for i, r := range runes {
		parts[i] = line.Part{Dx: 10.0, Content: r}
	}
	return line.FromParts(parts, false)
}

func TestFixupApplyMiddleReplace(t *testing.T) {
	lines := []line.IndentedLine{uniformLine("Ez egy teszt mondat.")}
	f := fixup.Fixup{Old: "Ez egy teszt mondat.", New: "Ez egy próba mondat."}
	require.NoError(t, f.Apply(lines))
	require.Equal(t, "Ez egy próba mondat.", lines[0].Content())
}

func TestFixupApplyWithAfterContext(t *testing.T) {
	lines := []line.IndentedLine{
		uniformLine("Előzmény sor."),
		uniformLine("A módosítandó sor."),
	}
	f := fixup.Fixup{After: []string{"Előzmény sor."}, Old: "A módosítandó sor.", New: "A javított sor."}
	require.NoError(t, f.Apply(lines))
	require.Equal(t, "Előzmény sor.", lines[0].Content())
	require.Equal(t, "A javított sor.", lines[1].Content())
}

func TestFixupApplyNotFound(t *testing.T) {
	lines := []line.IndentedLine{uniformLine("Valami egészen más.")}
	f := fixup.Fixup{Old: "nincs ilyen", New: "csere"}
	require.Error(t, f.Apply(lines))
}

func TestFixupApplyAmbiguous(t *testing.T) {
	lines := []line.IndentedLine{uniformLine("ismétlés"), uniformLine("ismétlés")}
	f := fixup.Fixup{Old: "ismétlés", New: "más"}
	require.Error(t, f.Apply(lines))
}

func TestFixupApplyDeletion(t *testing.T) {
	lines := []line.IndentedLine{uniformLine("törlendő sor")}
	f := fixup.Fixup{Old: "törlendő sor", New: ""}
	require.NoError(t, f.Apply(lines))
	require.True(t, lines[0].IsEmpty())
}

func TestFixupApplySetBold(t *testing.T) {
	lines := []line.IndentedLine{uniformLine("sima szöveg")}
	f := fixup.Fixup{Old: "sima szöveg", New: "kövér szöveg", SetBold: true}
	require.NoError(t, f.Apply(lines))
	require.True(t, lines[0].IsBold())
}

func TestFixupApplyUselessNoop(t *testing.T) {
	lines := []line.IndentedLine{uniformLine("változatlan")}
	f := fixup.Fixup{Old: "változatlan", New: "változatlan"}
	require.Error(t, f.Apply(lines))
}

// assertIndentMonotonic checks that once a fixup has been applied to a
// non-empty line, IndentAt strictly increases from one character to the
// next, so downstream column-based heuristics never see a line go backwards.
func assertIndentMonotonic(t *testing.T, l line.IndentedLine) {
	t.Helper()
	if l.IsEmpty() {
		return
	}
	prev := l.IndentAt(0)
	for i := 1; i < l.Len(); i++ {
		cur := l.IndentAt(i)
		require.Greater(t, cur, prev, "indent_at must strictly increase at character %d", i)
		prev = cur
	}
}

func TestFixupMonotonicity(t *testing.T) {
	cases := []fixup.Fixup{
		{Old: "ab", New: "aXb"},                      // pure insertion between two retained characters
		{Old: "kezdő szöveg", New: "kezdő valami"},   // shared prefix, differing suffix
		{Old: "másik szöveg", New: "csere szöveg"},   // shared suffix, differing prefix
		{Old: "rövid", New: "jóval hosszabb csere"},  // replacement longer than original
		{Old: "hosszú eredeti szöveg", New: "rövid"}, // replacement shorter than original
		{Old: "vég", New: "vég és toldás"},           // pure append after a shared prefix
		{Old: "elő és köztes", New: "előtag és köztes"},
	}
	for _, f := range cases {
		t.Run(f.Old+"->"+f.New, func(t *testing.T) {
			lines := []line.IndentedLine{uniformLine(f.Old)}
			require.NoError(t, f.Apply(lines))
			assertIndentMonotonic(t, lines[0])
		})
	}
}

func TestApplyAllRunsInOrder(t *testing.T) {
	lines := []line.IndentedLine{uniformLine("első mondat"), uniformLine("második mondat")}
	fixups := []fixup.Fixup{
		{Old: "első mondat", New: "ELSO mondat"},
		{Old: "második mondat", New: "MASODIK mondat"},
	}
	require.NoError(t, fixup.ApplyAll(fixups, lines))
	require.Equal(t, "ELSO mondat", lines[0].Content())
	require.Equal(t, "MASODIK mondat", lines[1].Content())
}
