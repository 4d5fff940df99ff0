/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pdfobj

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
)

// xrefEntry is one classic cross-reference table row: the byte offset
// of an indirect object's "N G obj" header within the file.
type xrefEntry struct {
	offset int64
	inUse  bool
}

// Document is a parsed PDF file: its classic cross-reference table plus
// lazy, cached object resolution. Object streams, cross-reference
// streams and encryption are not supported, matching this pipeline's
// "specific Hungarian gazette typesetting only" scope.
type Document struct {
	data    []byte
	xref    map[int64]xrefEntry
	trailer Dictionary
	cache   map[int64]Object
}

var startxrefRe = regexp.MustCompile(`startxref\s+(\d+)\s+%%EOF`)

// Parse reads a PDF file's object table and trailer.
func Parse(data []byte) (*Document, error) {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, fmt.Errorf("pdfobj: missing %%PDF- header")
	}
	doc := &Document{data: data, xref: map[int64]xrefEntry{}, cache: map[int64]Object{}}

	m := startxrefRe.FindSubmatch(data)
	if m == nil {
		return nil, fmt.Errorf("pdfobj: no startxref/%%%%EOF trailer found")
	}
	offset, err := strconv.ParseInt(string(m[1]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("pdfobj: malformed startxref offset: %w", err)
	}

	seen := map[int64]bool{}
	for offset != 0 {
		if seen[offset] {
			break // cyclical /Prev chain; stop rather than loop forever
		}
		seen[offset] = true
		trailer, prev, err := doc.parseXrefSectionAt(offset)
		if err != nil {
			return nil, err
		}
		if doc.trailer == nil {
			doc.trailer = trailer
		} else {
			for k, v := range trailer {
				if _, exists := doc.trailer[k]; !exists {
					doc.trailer[k] = v
				}
			}
		}
		offset = prev
	}
	if doc.trailer == nil {
		return nil, fmt.Errorf("pdfobj: no trailer found")
	}
	return doc, nil
}

// parseXrefSectionAt parses one "xref ... trailer <<...>>" section and
// returns its trailer dictionary and /Prev offset (0 if absent).
func (doc *Document) parseXrefSectionAt(offset int64) (Dictionary, int64, error) {
	if offset < 0 || offset >= int64(len(doc.data)) {
		return nil, 0, fmt.Errorf("pdfobj: xref offset %d out of range", offset)
	}
	tok := NewTokenizer(doc.data[offset:], doc)
	_, kw, err := tok.ParseObject()
	if err != nil || kw != "xref" {
		return nil, 0, fmt.Errorf("pdfobj: expected 'xref' keyword at offset %d", offset)
	}
	for {
		startObj, kw1, err := tok.ParseObject()
		if err != nil {
			return nil, 0, err
		}
		if kw1 == "trailer" {
			break
		}
		start, ok := AsInt(startObj)
		if !ok {
			return nil, 0, fmt.Errorf("pdfobj: malformed xref subsection header")
		}
		countObj, _, err := tok.ParseObject()
		if err != nil {
			return nil, 0, err
		}
		count, _ := AsInt(countObj)
		for i := int64(0); i < count; i++ {
			offObj, _, err := tok.ParseObject()
			if err != nil {
				return nil, 0, err
			}
			_, _, err = tok.ParseObject() // generation, ignored
			if err != nil {
				return nil, 0, err
			}
			_, flag, err := tok.ParseObject()
			if err != nil {
				return nil, 0, err
			}
			objNum := start + i
			if _, exists := doc.xref[objNum]; !exists {
				off, _ := AsInt(offObj)
				doc.xref[objNum] = xrefEntry{offset: off, inUse: flag == "n"}
			}
		}
	}
	trailerObj, _, err := tok.ParseObject()
	if err != nil {
		return nil, 0, err
	}
	trailer, ok := AsDict(trailerObj)
	if !ok {
		return nil, 0, fmt.Errorf("pdfobj: trailer is not a dictionary")
	}
	prev := int64(0)
	if prevObj, ok := trailer[Name("Prev")]; ok {
		prev, _ = AsInt(prevObj)
	}
	return trailer, prev, nil
}

// Resolve dereferences ref, following and caching the indirect object.
func (doc *Document) Resolve(ref Reference) (Object, error) {
	if cached, ok := doc.cache[ref.Number]; ok {
		return cached, nil
	}
	entry, ok := doc.xref[ref.Number]
	if !ok || !entry.inUse {
		return Null{}, nil
	}
	if entry.offset < 0 || entry.offset >= int64(len(doc.data)) {
		return nil, fmt.Errorf("pdfobj: object %d offset out of range", ref.Number)
	}
	tok := NewTokenizer(doc.data[entry.offset:], doc)
	if _, _, err := tok.ParseObject(); err != nil { // object number
		return nil, err
	}
	if _, _, err := tok.ParseObject(); err != nil { // generation number
		return nil, err
	}
	if _, kw, err := tok.ParseObject(); err != nil || kw != "obj" {
		return nil, fmt.Errorf("pdfobj: expected 'obj' keyword for object %d", ref.Number)
	}
	obj, _, err := tok.ParseObject()
	if err != nil {
		return nil, err
	}
	doc.cache[ref.Number] = obj
	return obj, nil
}

// Deref resolves obj if it is a Reference, otherwise returns it
// unchanged. Every dictionary accessor in this package routes through
// Deref so callers never have to think about indirection.
func (doc *Document) Deref(obj Object) Object {
	ref, ok := obj.(Reference)
	if !ok {
		return obj
	}
	resolved, err := doc.Resolve(ref)
	if err != nil {
		return Null{}
	}
	return resolved
}

// DictGet looks up key in d, resolving an indirect value.
func (doc *Document) DictGet(d Dictionary, key Name) (Object, bool) {
	v, ok := d[key]
	if !ok {
		return nil, false
	}
	return doc.Deref(v), true
}

// Trailer returns the file trailer dictionary.
func (doc *Document) Trailer() Dictionary { return doc.trailer }

// Root returns the document catalog.
func (doc *Document) Root() (Dictionary, error) {
	rootObj, ok := doc.DictGet(doc.trailer, Name("Root"))
	if !ok {
		return nil, fmt.Errorf("pdfobj: trailer has no /Root")
	}
	root, ok := AsDict(rootObj)
	if !ok {
		return nil, fmt.Errorf("pdfobj: /Root is not a dictionary")
	}
	return root, nil
}

// Page is one leaf of the page tree with its inheritable Resources
// already resolved.
type Page struct {
	Dict      Dictionary
	Resources Dictionary
}

// Pages walks the document's page tree and returns its leaves in
// document order.
func (doc *Document) Pages() ([]Page, error) {
	root, err := doc.Root()
	if err != nil {
		return nil, err
	}
	pagesObj, ok := doc.DictGet(root, Name("Pages"))
	if !ok {
		return nil, fmt.Errorf("pdfobj: catalog has no /Pages")
	}
	pagesRoot, ok := AsDict(pagesObj)
	if !ok {
		return nil, fmt.Errorf("pdfobj: /Pages is not a dictionary")
	}
	var pages []Page
	visited := map[*Dictionary]bool{}
	if err := doc.collectPages(pagesRoot, Dictionary{}, &pages, visited, 0); err != nil {
		return nil, err
	}
	return pages, nil
}

func (doc *Document) collectPages(node Dictionary, inheritedResources Dictionary, out *[]Page, visited map[*Dictionary]bool, depth int) error {
	if depth > 50 {
		return fmt.Errorf("pdfobj: page tree too deep (possible cycle)")
	}
	resources := inheritedResources
	if resObj, ok := doc.DictGet(node, Name("Resources")); ok {
		if d, ok := AsDict(resObj); ok {
			resources = d
		}
	}
	typeObj, _ := doc.DictGet(node, Name("Type"))
	typeName, _ := AsName(typeObj)
	if typeName == "Page" {
		*out = append(*out, Page{Dict: node, Resources: resources})
		return nil
	}
	kidsObj, ok := doc.DictGet(node, Name("Kids"))
	if !ok {
		// No /Type and no /Kids: treat as a leaf page anyway, several
		// gazette PDFs omit the /Type entry on page dictionaries.
		*out = append(*out, Page{Dict: node, Resources: resources})
		return nil
	}
	kids, ok := AsArray(kidsObj)
	if !ok {
		return fmt.Errorf("pdfobj: /Kids is not an array")
	}
	for _, kidObj := range kids {
		kid := doc.Deref(kidObj)
		kidDict, ok := AsDict(kid)
		if !ok {
			continue
		}
		if err := doc.collectPages(kidDict, resources, out, visited, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// ContentStream concatenates a page's (possibly array-valued, possibly
// filter-encoded) /Contents into one decoded byte slice.
func (doc *Document) ContentStream(page Page) ([]byte, error) {
	contentsObj, ok := doc.DictGet(page.Dict, Name("Contents"))
	if !ok {
		return nil, fmt.Errorf("pdfobj: page has no /Contents")
	}
	var streams []Stream
	switch v := contentsObj.(type) {
	case Stream:
		streams = []Stream{v}
	case Array:
		for _, elem := range v {
			if s, ok := AsStream(doc.Deref(elem)); ok {
				streams = append(streams, s)
			}
		}
	default:
		return nil, fmt.Errorf("pdfobj: /Contents is neither a stream nor an array")
	}
	var buf bytes.Buffer
	for i, s := range streams {
		decoded, err := doc.DecodeStream(s)
		if err != nil {
			return nil, err
		}
		buf.Write(decoded)
		if i < len(streams)-1 {
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes(), nil
}

// FormXObjectContent returns a Form XObject's decoded content stream
// plus its own /Resources dictionary (falling back to the caller's if
// absent), for the "Do" operator's recursion.
func (doc *Document) FormXObjectContent(xobj Stream, fallbackResources Dictionary) ([]byte, Dictionary, error) {
	content, err := doc.DecodeStream(xobj)
	if err != nil {
		return nil, nil, err
	}
	resources := fallbackResources
	if resObj, ok := doc.DictGet(xobj.Dictionary, Name("Resources")); ok {
		if d, ok := AsDict(resObj); ok {
			resources = d
		}
	}
	return content, resources, nil
}
