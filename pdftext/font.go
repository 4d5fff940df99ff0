/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pdftext

import (
	"bytes"
	"strings"

	ximgfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/xerrors"

	"github.com/badicsalex/hunlaw/common"
	"github.com/badicsalex/hunlaw/internal/pdfobj"
	"github.com/badicsalex/hunlaw/internal/textencoding"
	"github.com/unidoc/unitype"
)

// defaultWidthOfSpace is substituted whenever a font's own space-glyph
// width is missing or looks corrupt (0, or exactly the unit value a
// handful of subset fonts in the wild emit by mistake).
const defaultWidthOfSpace = 0.25

// Font is a converted, self-contained lookup table for one PDF font
// resource: per-CID advance width and decoded Unicode text, built once
// and cached by object identity. A dense array handles the common case
// (low CID, one rune) and a sparse map absorbs everything else (high
// CIDs, ligatures expanded from ActualText or Differences to more than
// one rune).
type Font struct {
	isIdentity bool
	isCID      bool
	isBold     bool
	name       string

	cmap []rune            // dense: index is CID, 0 means "unset"
	smap map[uint32]string // sparse: CID -> possibly multi-rune string

	widths       map[uint32]float64 // CID -> width/1000
	defaultWidth float64

	widthOfSpace float64
}

// ToUnicode resolves cid to decoded text: a sparse-map entry always
// wins if present, otherwise a non-zero dense-map entry, otherwise (for
// Identity-H fonts only) the CID reinterpreted directly as a code
// point.
func (f *Font) ToUnicode(cid uint32) (string, bool) {
	result := ""
	found := false
	if f.isIdentity {
		result = string(rune(cid))
		found = true
	}
	if int(cid) < len(f.cmap) && f.cmap[cid] != 0 {
		result = string(f.cmap[cid])
		found = true
	}
	if s, ok := f.smap[cid]; ok {
		result = s
		found = true
	}
	return result, found
}

// Width returns cid's advance width as a fraction of the text space
// unit (i.e. already divided by 1000).
func (f *Font) Width(cid uint32) float64 {
	if w, ok := f.widths[cid]; ok {
		return w
	}
	return f.defaultWidth
}

// WidthOfSpace is the width used for word-spacing purposes and for the
// line-consolidation gap thresholds.
func (f *Font) WidthOfSpace() float64 { return f.widthOfSpace }

// IsBold reports whether this font's PostScript name marks it bold
// (contains "Bold" or "bold") or its descriptor sets the ForceBold flag.
func (f *Font) IsBold() bool { return f.isBold }

func (f *Font) addMapping(cid uint32, s string) {
	runes := []rune(s)
	if cid > 1000 || len(runes) != 1 {
		if f.smap == nil {
			f.smap = map[uint32]string{}
		}
		f.smap[cid] = s
		return
	}
	for uint32(len(f.cmap)) <= cid {
		f.cmap = append(f.cmap, 0)
	}
	f.cmap[cid] = runes[0]
}

// LoadFont converts a /Font resource dictionary into a Font, resolving
// its encoding (simple base encoding + Differences, or a CID font's
// Identity-H), its /ToUnicode CMap if present, and its widths.
func LoadFont(doc *pdfobj.Document, fontDict pdfobj.Dictionary) (*Font, error) {
	f := &Font{defaultWidth: 0, widths: map[uint32]float64{}}

	subtypeObj, _ := doc.DictGet(fontDict, pdfobj.Name("Subtype"))
	subtype, _ := pdfobj.AsName(subtypeObj)

	baseFontObj, _ := doc.DictGet(fontDict, pdfobj.Name("BaseFont"))
	if bf, ok := pdfobj.AsName(baseFontObj); ok {
		f.name = string(bf)
		f.isBold = strings.Contains(string(bf), "Bold") || strings.Contains(string(bf), "bold")
	}

	var descriptor pdfobj.Dictionary
	if subtype == "Type0" {
		f.isCID = true
		f.isIdentity = true // only Identity-H/Identity-V are observed in the gazette
		descFontObj, ok := doc.DictGet(fontDict, pdfobj.Name("DescendantFonts"))
		if ok {
			if arr, ok := pdfobj.AsArray(descFontObj); ok && len(arr) > 0 {
				if d, ok := pdfobj.AsDict(doc.Deref(arr[0])); ok {
					loadCIDWidths(doc, d, f)
					if descObj, ok := doc.DictGet(d, pdfobj.Name("FontDescriptor")); ok {
						descriptor, _ = pdfobj.AsDict(descObj)
					}
				}
			}
		}
	} else {
		if err := loadSimpleEncoding(doc, fontDict, f); err != nil {
			return nil, err
		}
		loadSimpleWidths(doc, fontDict, f)
		if descObj, ok := doc.DictGet(fontDict, pdfobj.Name("FontDescriptor")); ok {
			descriptor, _ = pdfobj.AsDict(descObj)
		}
	}

	if descriptor != nil {
		if flagsObj, ok := doc.DictGet(descriptor, pdfobj.Name("Flags")); ok {
			if flags, ok := pdfobj.AsInt(flagsObj); ok && flags&(1<<18) != 0 {
				f.isBold = true
			}
		}
		if mw, ok := doc.DictGet(descriptor, pdfobj.Name("MissingWidth")); ok {
			if n, ok := pdfobj.AsFloat(mw); ok {
				f.defaultWidth = n / 1000
			}
		}
		if len(f.widths) == 0 {
			loadWidthFromEmbeddedProgram(doc, descriptor, f)
		}
	}

	if tuObj, ok := doc.DictGet(fontDict, pdfobj.Name("ToUnicode")); ok {
		if stream, ok := pdfobj.AsStream(tuObj); ok {
			decoded, err := doc.DecodeStream(stream)
			if err == nil {
				applyToUnicodeCMap(decoded, f)
			}
		}
	}

	f.widthOfSpace = f.Width(32)
	if f.widthOfSpace == 0 || f.widthOfSpace == 1 {
		f.widthOfSpace = defaultWidthOfSpace
	}
	return f, nil
}

func applyToUnicodeCMap(decoded []byte, f *Font) {
	cm := textencoding.ParseToUnicodeCMap(decoded)
	for cid := uint32(0); cid < uint32(len(f.cmap)); cid++ {
		if s, ok := cm.Lookup(cid); ok {
			f.addMapping(cid, s)
		}
	}
	for cid := range f.smap {
		if s, ok := cm.Lookup(cid); ok {
			f.smap[cid] = s
		}
	}
	// A ToUnicode CMap can also introduce brand new CIDs the base
	// encoding never mapped (common for CID fonts, which have no base
	// encoding layer at all); a bounded scan over plausible CIDs covers
	// this without needing the CMap's own key set exposed.
	if f.isCID {
		for cid := uint32(0); cid < 65536; cid++ {
			if int(cid) < len(f.cmap) {
				continue
			}
			if _, already := f.smap[cid]; already {
				continue
			}
			if s, ok := cm.Lookup(cid); ok {
				f.addMapping(cid, s)
			}
		}
	}
}

func loadSimpleEncoding(doc *pdfobj.Document, fontDict pdfobj.Dictionary, f *Font) error {
	base := textencoding.WinAnsiEncoding
	var differences pdfobj.Array

	encObj, hasEnc := doc.DictGet(fontDict, pdfobj.Name("Encoding"))
	if hasEnc {
		switch enc := encObj.(type) {
		case pdfobj.Name:
			base = textencoding.BaseEncoding(enc)
		case pdfobj.Dictionary:
			if beObj, ok := enc.Get(pdfobj.Name("BaseEncoding")); ok {
				if n, ok := pdfobj.AsName(doc.Deref(beObj)); ok {
					base = textencoding.BaseEncoding(n)
				}
			}
			if diffObj, ok := enc.Get(pdfobj.Name("Differences")); ok {
				differences, _ = pdfobj.AsArray(doc.Deref(diffObj))
			}
		}
	}

	table, ok := textencoding.BaseEncodingTable(base)
	if !ok {
		return xerrors.Errorf("pdftext: unsupported base encoding %q", base)
	}
	for code, r := range table {
		if r != 0 {
			f.addMapping(uint32(code), string(r))
		}
	}

	// Differences: a run of "code name name name ..." entries, where a
	// bare integer resets the running code and each following name
	// overrides the next code in sequence.
	code := uint32(0)
	for _, elem := range differences {
		switch v := elem.(type) {
		case pdfobj.Integer:
			code = uint32(v)
		case pdfobj.Real:
			code = uint32(v)
		case pdfobj.Name:
			if r, ok := textencoding.GlyphNameToRune(string(v)); ok {
				f.addMapping(code, string(r))
			}
			code++
		}
	}
	return nil
}

func loadSimpleWidths(doc *pdfobj.Document, fontDict pdfobj.Dictionary, f *Font) {
	firstCharObj, ok := doc.DictGet(fontDict, pdfobj.Name("FirstChar"))
	if !ok {
		return
	}
	firstChar, _ := pdfobj.AsInt(firstCharObj)
	widthsObj, ok := doc.DictGet(fontDict, pdfobj.Name("Widths"))
	if !ok {
		return
	}
	widths, ok := pdfobj.AsArray(widthsObj)
	if !ok {
		return
	}
	for i, w := range widths {
		if n, ok := pdfobj.AsFloat(doc.Deref(w)); ok {
			f.widths[uint32(firstChar)+uint32(i)] = n / 1000
		}
	}
}

// loadCIDWidths parses a CIDFont's /W array: entries are either
// "cFirst [w1 w2 ... wn]" (consecutive CIDs starting at cFirst) or
// "cFirst cLast w" (one width for the whole range).
func loadCIDWidths(doc *pdfobj.Document, cidFontDict pdfobj.Dictionary, f *Font) {
	f.defaultWidth = 1.0 // /DW default per the PDF spec
	if dwObj, ok := doc.DictGet(cidFontDict, pdfobj.Name("DW")); ok {
		if n, ok := pdfobj.AsFloat(dwObj); ok {
			f.defaultWidth = n / 1000
		}
	}
	wObj, ok := doc.DictGet(cidFontDict, pdfobj.Name("W"))
	if !ok {
		return
	}
	arr, ok := pdfobj.AsArray(wObj)
	if !ok {
		return
	}
	i := 0
	for i < len(arr) {
		first, ok := pdfobj.AsInt(doc.Deref(arr[i]))
		if !ok {
			break
		}
		i++
		if i >= len(arr) {
			break
		}
		if sub, ok := pdfobj.AsArray(doc.Deref(arr[i])); ok {
			for j, w := range sub {
				if n, ok := pdfobj.AsFloat(doc.Deref(w)); ok {
					f.widths[uint32(first)+uint32(j)] = n / 1000
				}
			}
			i++
			continue
		}
		last, ok := pdfobj.AsInt(doc.Deref(arr[i]))
		if !ok {
			break
		}
		i++
		if i >= len(arr) {
			break
		}
		w, _ := pdfobj.AsFloat(doc.Deref(arr[i]))
		i++
		for cid := first; cid <= last; cid++ {
			f.widths[uint32(cid)] = w / 1000
		}
	}
}

// loadWidthFromEmbeddedProgram fills in missing widths from an embedded
// font program when the font dictionary itself carries no /Widths (a
// handful of the gazette's TrueType and OpenType subset fonts do this).
// Both /FontFile2 (TrueType) and /FontFile3 (OpenType wrapper) programs
// are sfnt-framed, so the metrics come from x/image's sfnt reader, with
// unitype supplying the rune-to-glyph lookup for the subset fonts whose
// symbol-flavored cmap tables sfnt's GlyphIndex refuses to resolve.
func loadWidthFromEmbeddedProgram(doc *pdfobj.Document, descriptor pdfobj.Dictionary, f *Font) {
	for _, key := range []pdfobj.Name{"FontFile2", "FontFile3"} {
		ffObj, ok := doc.DictGet(descriptor, key)
		if !ok {
			continue
		}
		stream, ok := pdfobj.AsStream(ffObj)
		if !ok {
			continue
		}
		decoded, err := doc.DecodeStream(stream)
		if err != nil {
			common.Log.Debug("pdftext: could not decode %s stream of font %q: %v", key, f.name, err)
			continue
		}
		if loadWidthsFromFontProgram(decoded, f) {
			return
		}
		common.Log.Debug("pdftext: embedded %s of font %q yielded no widths", key, f.name)
	}
}

// glyphAdvancePPEM is the pixels-per-em GlyphAdvance is queried at;
// dividing the 26.6 fixed-point result by 64*ppem yields the advance as
// a fraction of the em regardless of the font's own unitsPerEm.
const glyphAdvancePPEM = 1000

func loadWidthsFromFontProgram(data []byte, f *Font) bool {
	parsed, err := sfnt.Parse(data)
	if err != nil {
		return false
	}
	ut, utErr := unitype.Parse(bytes.NewReader(data))

	var buf sfnt.Buffer
	loadedAny := false
	for cid := uint32(1); cid < 256; cid++ {
		s, ok := f.ToUnicode(cid)
		if !ok {
			continue
		}
		runes := []rune(s)
		if len(runes) != 1 {
			continue
		}
		gi, err := parsed.GlyphIndex(&buf, runes[0])
		if (err != nil || gi == 0) && utErr == nil {
			if indices := ut.LookupRunes(runes); len(indices) == 1 && indices[0] != 0 {
				gi = sfnt.GlyphIndex(indices[0])
			}
		}
		if gi == 0 {
			continue
		}
		adv, err := parsed.GlyphAdvance(&buf, gi, fixed.I(glyphAdvancePPEM), ximgfont.HintingNone)
		if err != nil {
			continue
		}
		f.widths[cid] = float64(adv) / 64.0 / glyphAdvancePPEM
		loadedAny = true
	}
	return loadedAny
}
