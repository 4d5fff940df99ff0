/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import (
	"golang.org/x/text/encoding/unicode"

	"github.com/badicsalex/hunlaw/internal/pdfobj"
)

// CMap is a parsed /ToUnicode CMap: a CID (or single-byte code) to
// Unicode-string mapping built from a stream of bfchar/bfrange
// operators.
type CMap struct {
	single map[uint32]string
}

// Lookup returns the Unicode string mapped to code, if any.
func (c *CMap) Lookup(code uint32) (string, bool) {
	if c == nil {
		return "", false
	}
	s, ok := c.single[code]
	return s, ok
}

// ParseToUnicodeCMap parses a /ToUnicode CMap stream's decoded bytes.
// It reuses pdfobj's object tokenizer: bfchar/bfrange operands are
// plain PDF hex strings and arrays, so the general object grammar reads
// them without a dedicated lexer.
func ParseToUnicodeCMap(data []byte) *CMap {
	cm := &CMap{single: map[uint32]string{}}
	tok := pdfobj.NewTokenizer(data, nil)

	var pending []pdfobj.Object
	inBfChar := false
	inBfRange := false

	flushBfChar := func(operands []pdfobj.Object) {
		for i := 0; i+1 < len(operands); i += 2 {
			src, ok1 := pdfobj.AsString(operands[i])
			dst, ok2 := pdfobj.AsString(operands[i+1])
			if !ok1 || !ok2 {
				continue
			}
			cm.single[codeFromBytes(src.Bytes)] = utf16BEToString(dst.Bytes)
		}
	}
	flushBfRange := func(operands []pdfobj.Object) {
		for i := 0; i+2 < len(operands); i += 3 {
			loObj, ok1 := pdfobj.AsString(operands[i])
			hiObj, ok2 := pdfobj.AsString(operands[i+1])
			if !ok1 || !ok2 {
				continue
			}
			lo := codeFromBytes(loObj.Bytes)
			hi := codeFromBytes(hiObj.Bytes)
			switch dst := operands[i+2].(type) {
			case pdfobj.String:
				base := utf16BEToString(dst.Bytes)
				baseRunes := []rune(base)
				for code := lo; code <= hi && code-lo < 65536; code++ {
					runes := append([]rune(nil), baseRunes...)
					if len(runes) > 0 {
						runes[len(runes)-1] += rune(code - lo)
					}
					cm.single[code] = string(runes)
				}
			case pdfobj.Array:
				for j, elem := range dst {
					code := lo + uint32(j)
					if code > hi {
						break
					}
					if s, ok := pdfobj.AsString(elem); ok {
						cm.single[code] = utf16BEToString(s.Bytes)
					}
				}
			}
		}
	}

	for {
		obj, kw, err := tok.ParseObject()
		if err != nil {
			break
		}
		if kw == "" {
			pending = append(pending, obj)
			continue
		}
		switch kw {
		case "beginbfchar":
			inBfChar, inBfRange = true, false
			pending = nil
		case "endbfchar":
			if inBfChar {
				flushBfChar(pending)
			}
			inBfChar = false
			pending = nil
		case "beginbfrange":
			inBfRange, inBfChar = true, false
			pending = nil
		case "endbfrange":
			if inBfRange {
				flushBfRange(pending)
			}
			inBfRange = false
			pending = nil
		default:
			// begincmap/endcmap/usecmap/def and the like: not needed to
			// resolve bfchar/bfrange, so just reset accumulated operands
			// to avoid leaking unrelated operators into the next block.
			if !inBfChar && !inBfRange {
				pending = nil
			}
		}
	}
	return cm
}

func codeFromBytes(b []byte) uint32 {
	var v uint32
	for _, c := range b {
		v = v<<8 | uint32(c)
	}
	return v
}

// utf16BEDecoder decodes the big-endian UTF-16 hex strings a ToUnicode
// CMap's bfchar/bfrange operands use, via x/text's unicode package
// rather than a hand-rolled surrogate-pair scanner.
var utf16BEDecoder = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()

func utf16BEToString(b []byte) string {
	if len(b) == 1 {
		return string(rune(b[0]))
	}
	out, err := utf16BEDecoder.Bytes(b)
	if err != nil {
		return ""
	}
	return string(out)
}

// DecodeUTF16BE is the exported form of utf16BEToString, used by
// callers outside this package (pdftext's ActualText handling) that
// need the same big-endian UTF-16 decoding this CMap reader uses.
func DecodeUTF16BE(b []byte) string { return utf16BEToString(b) }
