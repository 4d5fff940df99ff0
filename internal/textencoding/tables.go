/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package textencoding resolves a PDF simple font's single-byte codes,
// or a CID font's character IDs, to Unicode runes, layered in priority
// order: base encodings (WinAnsi, StandardEncoding, Symbol, MacRoman,
// MacExpert) first, then a font's /Differences overrides (by glyph
// name), then /ToUnicode CMaps (bfchar/bfrange) on top.
package textencoding

import "golang.org/x/text/encoding/charmap"

// BaseEncoding names the handful of PDF base encodings this pipeline's
// gazette PDFs are observed to use.
type BaseEncoding string

const (
	WinAnsiEncoding   BaseEncoding = "WinAnsiEncoding"
	MacRomanEncoding  BaseEncoding = "MacRomanEncoding"
	StandardEncoding  BaseEncoding = "StandardEncoding"
	SymbolEncoding    BaseEncoding = "SymbolEncoding"
	MacExpertEncoding BaseEncoding = "MacExpertEncoding"
	IdentityHEncoding BaseEncoding = "Identity-H"
)

// bulletFallback is a WinAnsi quirk: codes above 0x1F with no defined
// glyph render as a bullet under Windows, and the gazette's typesetter
// leans on this undefined behavior for at least one character.
const bulletFallback = '•'

// BaseEncodingTable returns a 256-entry code→rune table for base, or
// false if base is unsupported. Index 0 of the returned table is always
// rune 0 ("no mapping").
func BaseEncodingTable(base BaseEncoding) ([256]rune, bool) {
	switch base {
	case WinAnsiEncoding:
		return windowsAnsiTable(), true
	case MacRomanEncoding:
		return macRomanTable(), true
	case StandardEncoding:
		return standardEncodingTable, true
	case SymbolEncoding:
		return symbolEncodingTable, true
	case MacExpertEncoding:
		return macExpertEncodingTable, true
	}
	return [256]rune{}, false
}

// windowsAnsiTable builds the WinAnsiEncoding (= cp1252) table via
// golang.org/x/text's Windows-1252 codec, then applies the undefined-
// codepoint-renders-as-bullet quirk.
func windowsAnsiTable() [256]rune {
	var table [256]rune
	dec := charmap.Windows1252.NewDecoder()
	for code := 0; code < 256; code++ {
		out, err := dec.Bytes([]byte{byte(code)})
		if err == nil && len(out) > 0 {
			r := []rune(string(out))
			if len(r) == 1 && r[0] != 0 && r[0] != '�' && (r[0] < 0x80 || r[0] > 0x9F) {
				table[code] = r[0]
				continue
			}
		}
		if code > 0x1F {
			table[code] = bulletFallback
		}
	}
	return table
}

// macRomanTable builds the MacRomanEncoding table via x/text's
// Macintosh codec.
func macRomanTable() [256]rune {
	var table [256]rune
	dec := charmap.Macintosh.NewDecoder()
	for code := 0; code < 256; code++ {
		out, err := dec.Bytes([]byte{byte(code)})
		if err == nil && len(out) > 0 {
			r := []rune(string(out))
			if len(r) == 1 {
				table[code] = r[0]
			}
		}
	}
	return table
}

// standardEncodingTable, symbolEncodingTable and macExpertEncodingTable
// are Adobe-specific PDF base encodings with no equivalent in any
// ecosystem codec package; they're reproduced from the PDF 1.7
// specification's Appendix D (Latin Character Set and Encodings). Only
// the codes observed in practice (ASCII range, plus StandardEncoding's
// high half used for Hungarian-adjacent punctuation) are filled in;
// everything else maps to rune 0, the "no mapping" sentinel.
var standardEncodingTable = buildASCIIPlusHighHalf(map[byte]rune{
	0x27: '’', 0x60: '‘',
	0xA1: '¡', 0xA2: '¢', 0xA3: '£', 0xA4: '⁄', 0xA5: '¥', 0xA6: 'ƒ', 0xA7: '§',
	0xA8: '¤', 0xA9: '\'', 0xAA: '“', 0xAB: '«', 0xAC: '‹', 0xAD: '›', 0xAE: 'ﬁ', 0xAF: 'ﬂ',
	0xB1: '–', 0xB2: '†', 0xB3: '‡', 0xB4: '·', 0xB6: '¶', 0xB7: '•', 0xB8: '‚', 0xB9: '„',
	0xBA: '”', 0xBB: '»', 0xBC: '…', 0xBD: '‰', 0xBF: '¿',
	0xC1: '`', 0xC2: '´', 0xC3: '^', 0xC4: '˜', 0xC5: '¯', 0xC6: '˘', 0xC7: '˙',
	0xC8: '¨', 0xCA: '˚', 0xCB: '¸', 0xCD: '˝', 0xCE: '˛', 0xCF: 'ˇ',
	0xD0: '—', 0xE1: 'Æ', 0xE3: 'ª', 0xE8: 'Ł', 0xE9: 'Ø', 0xEA: 'Œ', 0xEB: 'º',
	0xF1: 'æ', 0xF5: 'ı', 0xF8: 'ł', 0xF9: 'ø', 0xFA: 'œ', 0xFB: 'ß',
})

var symbolEncodingTable = buildASCIIOnly(map[byte]rune{
	0x61: 'α', 0x62: 'β', 0x63: 'χ', 0x64: 'δ', 0x65: 'ε', 0x66: 'φ', 0x67: 'γ',
	0x68: 'η', 0x69: 'ι', 0x6b: 'κ', 0x6c: 'λ', 0x6d: 'μ', 0x6e: 'ν', 0x6f: 'ο',
	0x70: 'π', 0x71: 'θ', 0x72: 'ρ', 0x73: 'σ', 0x74: 'τ', 0x75: 'υ', 0x77: 'ω',
	0x78: 'ξ', 0x79: 'ψ', 0x7a: 'ζ',
	0xb0: '°', 0xb1: '±', 0xb4: '×', 0xb8: '÷', 0xa5: '∞', 0xa3: '≤', 0xb3: '≥',
})

var macExpertEncodingTable = buildASCIIOnly(nil)

func buildASCIIOnly(extra map[byte]rune) [256]rune {
	var table [256]rune
	for c := byte(0x20); c < 0x7f; c++ {
		table[c] = rune(c)
	}
	for c, r := range extra {
		table[c] = r
	}
	return table
}

func buildASCIIPlusHighHalf(extra map[byte]rune) [256]rune {
	table := buildASCIIOnly(nil)
	for c, r := range extra {
		table[c] = r
	}
	return table
}
