/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package pdfobj implements just enough of the PDF 1.x object model and
// file structure (objects, the classic cross-reference table, streams,
// the page tree, and resource dictionaries) for pdftext to walk a
// gazette issue's pages and content streams. It is not a general-purpose
// PDF library: encryption, object streams, linearization and incremental
// updates are all out of scope.
package pdfobj

import (
	"fmt"
	"strconv"
	"strings"
)

// Object is the interface every primitive PDF object implements.
type Object interface {
	// String returns a debug representation of the object.
	String() string
}

// Integer is a PDF integer numeric object.
type Integer int64

func (o Integer) String() string { return strconv.FormatInt(int64(o), 10) }

// Real is a PDF real (floating point) numeric object.
type Real float64

func (o Real) String() string { return strconv.FormatFloat(float64(o), 'f', -1, 64) }

// Bool is a PDF boolean object.
type Bool bool

func (o Bool) String() string { return strconv.FormatBool(bool(o)) }

// Null is the PDF null object.
type Null struct{}

func (o Null) String() string { return "null" }

// String is a PDF string object (literal "(...)" or hex "<...>"),
// already unescaped to raw bytes.
type String struct {
	Bytes []byte
}

func (o String) String() string { return fmt.Sprintf("(%s)", string(o.Bytes)) }

// Name is a PDF name object, without its leading slash.
type Name string

func (o Name) String() string { return "/" + string(o) }

// Array is a PDF array object.
type Array []Object

func (o Array) String() string {
	parts := make([]string, len(o))
	for i, e := range o {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Dictionary is a PDF dictionary object. Key order is not preserved;
// nothing in this pipeline depends on it.
type Dictionary map[Name]Object

func (o Dictionary) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, k.String()+" "+v.String())
	}
	return "<<" + strings.Join(parts, " ") + ">>"
}

// Get returns d[key] and whether it was present.
func (d Dictionary) Get(key Name) (Object, bool) {
	v, ok := d[key]
	return v, ok
}

// Reference is an indirect reference "N G R".
type Reference struct {
	Number     int64
	Generation int64
}

func (o Reference) String() string { return fmt.Sprintf("%d %d R", o.Number, o.Generation) }

// Stream is a dictionary plus its (still filter-encoded) raw byte
// payload.
type Stream struct {
	Dictionary
	Raw []byte
}

func (o Stream) String() string { return fmt.Sprintf("%s stream(%d bytes)", o.Dictionary, len(o.Raw)) }

// AsInt coerces obj (an Integer or Real) to an int64.
func AsInt(obj Object) (int64, bool) {
	switch v := obj.(type) {
	case Integer:
		return int64(v), true
	case Real:
		return int64(v), true
	}
	return 0, false
}

// AsFloat coerces obj (an Integer or Real) to a float64.
func AsFloat(obj Object) (float64, bool) {
	switch v := obj.(type) {
	case Integer:
		return float64(v), true
	case Real:
		return float64(v), true
	}
	return 0, false
}

// AsName coerces obj to a Name.
func AsName(obj Object) (Name, bool) {
	n, ok := obj.(Name)
	return n, ok
}

// AsArray coerces obj to an Array.
func AsArray(obj Object) (Array, bool) {
	a, ok := obj.(Array)
	return a, ok
}

// AsDict coerces obj to a Dictionary, unwrapping a Stream if needed.
func AsDict(obj Object) (Dictionary, bool) {
	switch v := obj.(type) {
	case Dictionary:
		return v, true
	case Stream:
		return v.Dictionary, true
	}
	return nil, false
}

// AsStream coerces obj to a Stream.
func AsStream(obj Object) (Stream, bool) {
	s, ok := obj.(Stream)
	return s, ok
}

// AsString coerces obj to a String.
func AsString(obj Object) (String, bool) {
	s, ok := obj.(String)
	return s, ok
}
