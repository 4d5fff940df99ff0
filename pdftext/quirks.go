/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pdftext

// fixCharacterCodingQuirks normalizes the handful of mis-encoded
// characters this pipeline has observed in gazette PDFs: a font's
// Hungarian double-acute letters (o-double-acute, u-double-acute and
// their capitals) sometimes decode through a WinAnsi-ish path to the
// visually closest Latin-1 letter with a tilde/circumflex instead, and
// non-breaking spaces occasionally leak through where a typesetter
// meant an ordinary word space.
func fixCharacterCodingQuirks(r rune) rune {
	switch r {
	case 'Õ':
		return 'Ő'
	case 'õ':
		return 'ő'
	case 'Û':
		return 'Ű'
	case 'û':
		return 'ű'
	case ' ':
		return ' '
	default:
		return r
	}
}
