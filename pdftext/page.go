/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pdftext

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/xerrors"

	"github.com/badicsalex/hunlaw/internal/pdfobj"
	"github.com/badicsalex/hunlaw/internal/transform"
)

// maxFormDepth bounds Form XObject recursion (a `Do` invoking a form
// whose own content stream invokes itself, directly or through a
// cycle).
const maxFormDepth = 20

// pageRenderer interprets one page's (or one Form XObject's) content
// stream, routing Tj/TJ/'/"-drawn glyphs into a shared charCollector:
// a switch over operator names, an explicit state save/restore stack,
// and recursive handling of Form XObjects.
type pageRenderer struct {
	doc       *pdfobj.Document
	collector *charCollector
	fontCache map[int64]*Font
}

func newPageRenderer(doc *pdfobj.Document, cropBox *CropBox) *pageRenderer {
	return &pageRenderer{
		doc:       doc,
		collector: newCharCollector(cropBox),
		fontCache: map[int64]*Font{},
	}
}

// run interprets content against resources, starting from the given
// text state and marked-content stack (both passed by value/slice so a
// Form XObject recursion can share and restore them correctly).
func (p *pageRenderer) run(content []byte, resources pdfobj.Dictionary, state textState, mcStack []*actualTextSpan, depth int) error {
	tok := pdfobj.NewTokenizer(content, p.doc)
	var operands []pdfobj.Object
	var gsStack []textState

	topSpan := func() *actualTextSpan {
		for i := len(mcStack) - 1; i >= 0; i-- {
			if mcStack[i] != nil {
				return mcStack[i]
			}
		}
		return nil
	}

	showCID := func(cid uint32) error {
		if span := topSpan(); span != nil {
			span.renderCID(&state, cid)
			return nil
		}
		return p.collector.renderCID(&state, cid)
	}

	showBytes := func(b []byte) error {
		if state.font == nil {
			return xerrors.New("pdftext: text-showing operator with no font selected")
		}
		if state.font.isCID {
			for i := 0; i+1 < len(b); i += 2 {
				cid := uint32(b[i])<<8 | uint32(b[i+1])
				if err := showCID(cid); err != nil {
					return err
				}
			}
			return nil
		}
		for _, c := range b {
			if err := showCID(uint32(c)); err != nil {
				return err
			}
		}
		return nil
	}

	for {
		obj, kw, err := tok.ParseObject()
		if err != nil {
			if errors.Is(err, pdfobj.ErrEOF) || errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if kw == "" {
			operands = append(operands, obj)
			continue
		}

		switch kw {
		case "q":
			gsStack = append(gsStack, state)
		case "Q":
			n := len(gsStack)
			if n == 0 {
				return xerrors.New("pdftext: state restore with empty state stack")
			}
			state = gsStack[n-1]
			gsStack = gsStack[:n-1]
		case "cm":
			if m, ok := matrixFromOperands(operands); ok {
				state.ctm.Concat(m)
			}
		case "BT":
			state.setBothMatrices(transform.IdentityMatrix())
		case "ET":
			// No state to restore: the text matrix is always reset by
			// the next BT, and Tf/Tc/Tw/etc. persist across ET per spec.
		case "Tc":
			state.charSpacing = floatOperand(operands, 0)
		case "Tw":
			state.wordSpacing = floatOperand(operands, 0)
		case "Tz":
			state.horizontalScale = floatOperand(operands, 0) * 0.01
		case "TL":
			state.leading = floatOperand(operands, 0)
		case "Ts":
			state.rise = floatOperand(operands, 0)
		case "Tr":
			// Text rendering mode (fill/stroke/clip/invisible) never
			// changes which characters are extracted.
		case "Tf":
			if len(operands) >= 2 {
				if name, ok := pdfobj.AsName(operands[0]); ok {
					font, err := p.resolveFont(resources, name)
					if err != nil {
						return err
					}
					state.font = font
				}
				state.fontSize = floatOperand(operands, 1)
			}
		case "Td":
			tx, ty := floatOperand(operands, 0), floatOperand(operands, 1)
			state.lineMatrix = state.lineMatrix.Translate(tx, ty)
			state.textMatrix = state.lineMatrix
		case "TD":
			tx, ty := floatOperand(operands, 0), floatOperand(operands, 1)
			state.leading = -ty
			state.lineMatrix = state.lineMatrix.Translate(tx, ty)
			state.textMatrix = state.lineMatrix
		case "Tm":
			if m, ok := matrixFromOperands(operands); ok {
				state.setBothMatrices(m)
			}
		case "T*":
			state.lineMatrix = state.lineMatrix.Translate(0, -state.leading)
			state.textMatrix = state.lineMatrix
		case "Tj":
			if len(operands) >= 1 {
				if s, ok := pdfobj.AsString(operands[0]); ok {
					if err := showBytes(s.Bytes); err != nil {
						return err
					}
				}
			}
		case "'":
			state.lineMatrix = state.lineMatrix.Translate(0, -state.leading)
			state.textMatrix = state.lineMatrix
			if len(operands) >= 1 {
				if s, ok := pdfobj.AsString(operands[0]); ok {
					if err := showBytes(s.Bytes); err != nil {
						return err
					}
				}
			}
		case `"`:
			if len(operands) >= 3 {
				state.wordSpacing = floatOperand(operands, 0)
				state.charSpacing = floatOperand(operands, 1)
				state.lineMatrix = state.lineMatrix.Translate(0, -state.leading)
				state.textMatrix = state.lineMatrix
				if s, ok := pdfobj.AsString(operands[2]); ok {
					if err := showBytes(s.Bytes); err != nil {
						return err
					}
				}
			}
		case "TJ":
			if len(operands) >= 1 {
				if arr, ok := pdfobj.AsArray(operands[0]); ok {
					for _, elem := range arr {
						switch v := elem.(type) {
						case pdfobj.String:
							if err := showBytes(v.Bytes); err != nil {
								return err
							}
						case pdfobj.Integer, pdfobj.Real:
							delta, _ := pdfobj.AsFloat(v)
							state.advance(-delta / 1000 * state.fontSize * state.horizontalScale)
						}
					}
				}
			}
		case "gs":
			if len(operands) >= 1 {
				if name, ok := pdfobj.AsName(operands[0]); ok {
					if err := p.applyExtGState(resources, name, &state); err != nil {
						return err
					}
				}
			}
		case "Do":
			if len(operands) >= 1 {
				if name, ok := pdfobj.AsName(operands[0]); ok {
					if err := p.doXObject(resources, name, state, mcStack, depth); err != nil {
						return err
					}
				}
			}
		case "BDC", "BMC":
			var tag pdfobj.Name
			if len(operands) >= 1 {
				tag, _ = pdfobj.AsName(operands[0])
			}
			var properties pdfobj.Object
			if len(operands) >= 2 {
				switch v := operands[1].(type) {
				case pdfobj.Dictionary:
					properties = v
				case pdfobj.Name:
					if propsDict, ok := p.doc.DictGet(resources, pdfobj.Name("Properties")); ok {
						if d, ok := pdfobj.AsDict(propsDict); ok {
							if prop, ok := p.doc.DictGet(d, v); ok {
								properties = prop
							}
						}
					}
				}
			}
			mcStack = append(mcStack, actualTextFromBMCParams(tag, properties))
		case "EMC":
			if n := len(mcStack); n > 0 {
				span := mcStack[n-1]
				mcStack = mcStack[:n-1]
				if span != nil {
					span.finish(p.collector)
				}
			}
		}
		operands = nil
	}
	return nil
}

func (p *pageRenderer) resolveFont(resources pdfobj.Dictionary, name pdfobj.Name) (*Font, error) {
	fontsObj, ok := p.doc.DictGet(resources, pdfobj.Name("Font"))
	if !ok {
		return nil, xerrors.Errorf("pdftext: resources have no /Font dictionary for %q", name)
	}
	fonts, ok := pdfobj.AsDict(fontsObj)
	if !ok {
		return nil, xerrors.Errorf("pdftext: /Font resource is not a dictionary")
	}
	raw, ok := fonts.Get(name)
	if !ok {
		return nil, xerrors.Errorf("pdftext: font %q not found in resources", name)
	}
	return p.fontFromObject(raw, name)
}

// fontFromObject converts a (possibly indirect) font dictionary into a
// Font, caching converted fonts by their indirect object number so each
// font resource is converted at most once per page run.
func (p *pageRenderer) fontFromObject(raw pdfobj.Object, name pdfobj.Name) (*Font, error) {
	if ref, ok := raw.(pdfobj.Reference); ok {
		if cached, ok := p.fontCache[ref.Number]; ok {
			return cached, nil
		}
		dict, ok := pdfobj.AsDict(p.doc.Deref(ref))
		if !ok {
			return nil, xerrors.Errorf("pdftext: font %q is not a dictionary", name)
		}
		font, err := LoadFont(p.doc, dict)
		if err != nil {
			return nil, err
		}
		p.fontCache[ref.Number] = font
		return font, nil
	}
	dict, ok := pdfobj.AsDict(p.doc.Deref(raw))
	if !ok {
		return nil, xerrors.Errorf("pdftext: font %q is not a dictionary", name)
	}
	return LoadFont(p.doc, dict)
}

// applyExtGState handles the `gs` operator's text-relevant subset: an
// /ExtGState dictionary may carry a /Font entry of the form
// [fontRef size], an alternate way of selecting the current font that
// the gazette's typesetter uses alongside Tf. Every other ExtGState
// parameter (blend modes, alpha, line styles) is ignored since it
// cannot affect which characters are extracted.
func (p *pageRenderer) applyExtGState(resources pdfobj.Dictionary, name pdfobj.Name, state *textState) error {
	egsObj, ok := p.doc.DictGet(resources, pdfobj.Name("ExtGState"))
	if !ok {
		return xerrors.Errorf("pdftext: resources have no /ExtGState dictionary for %q", name)
	}
	egs, ok := pdfobj.AsDict(egsObj)
	if !ok {
		return xerrors.Errorf("pdftext: /ExtGState resource is not a dictionary")
	}
	raw, ok := egs.Get(name)
	if !ok {
		return xerrors.Errorf("pdftext: graphics state %q not found in resources", name)
	}
	gsDict, ok := pdfobj.AsDict(p.doc.Deref(raw))
	if !ok {
		return xerrors.Errorf("pdftext: graphics state %q is not a dictionary", name)
	}
	fontObj, ok := p.doc.DictGet(gsDict, pdfobj.Name("Font"))
	if !ok {
		return nil
	}
	arr, ok := pdfobj.AsArray(fontObj)
	if !ok || len(arr) < 2 {
		return xerrors.Errorf("pdftext: malformed /Font entry in graphics state %q", name)
	}
	font, err := p.fontFromObject(arr[0], name)
	if err != nil {
		return err
	}
	state.font = font
	if size, ok := pdfobj.AsFloat(p.doc.Deref(arr[1])); ok {
		state.fontSize = size
	}
	return nil
}

func (p *pageRenderer) doXObject(resources pdfobj.Dictionary, name pdfobj.Name, state textState, mcStack []*actualTextSpan, depth int) error {
	if depth >= maxFormDepth {
		return fmt.Errorf("pdftext: Form XObject recursion exceeds depth %d", maxFormDepth)
	}
	xobjectsObj, ok := p.doc.DictGet(resources, pdfobj.Name("XObject"))
	if !ok {
		return nil
	}
	xobjects, ok := pdfobj.AsDict(xobjectsObj)
	if !ok {
		return nil
	}
	raw, ok := xobjects.Get(name)
	if !ok {
		return nil
	}
	stream, ok := pdfobj.AsStream(p.doc.Deref(raw))
	if !ok {
		return nil
	}
	subtypeObj, _ := p.doc.DictGet(stream.Dictionary, pdfobj.Name("Subtype"))
	if subtype, ok := pdfobj.AsName(subtypeObj); !ok || subtype != "Form" {
		return nil // Image XObjects carry no extractable text
	}
	content, formResources, err := p.doc.FormXObjectContent(stream, resources)
	if err != nil {
		return err
	}
	if mObj, ok := p.doc.DictGet(stream.Dictionary, pdfobj.Name("Matrix")); ok {
		if arr, ok := pdfobj.AsArray(mObj); ok {
			if m, ok := matrixFromOperands(arr); ok {
				state.ctm.Concat(m)
			}
		}
	}
	return p.run(content, formResources, state, mcStack, depth+1)
}

func floatOperand(operands []pdfobj.Object, index int) float64 {
	if index >= len(operands) {
		return 0
	}
	f, _ := pdfobj.AsFloat(operands[index])
	return f
}

func matrixFromOperands(operands []pdfobj.Object) (transform.Matrix, bool) {
	if len(operands) < 6 {
		return transform.Matrix{}, false
	}
	vals := make([]float64, 6)
	for i := 0; i < 6; i++ {
		f, ok := pdfobj.AsFloat(operands[i])
		if !ok {
			return transform.Matrix{}, false
		}
		vals[i] = f
	}
	return transform.NewMatrix(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]), true
}
