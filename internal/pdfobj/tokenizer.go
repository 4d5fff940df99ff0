/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pdfobj

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrEOF is returned by ParseObject when the underlying reader is
// exhausted between objects (as opposed to mid-object, which is a
// genuine parse error).
var ErrEOF = errors.New("pdfobj: end of input")

// Tokenizer parses the PDF object grammar (numbers, strings, names,
// arrays, dictionaries, references, streams and bare keywords) from a
// byte stream. It backs both whole-file object parsing (Document) and
// content-stream operand parsing (pdftext), which share the same
// operand grammar.
type Tokenizer struct {
	r   *bufio.Reader
	doc *Document // optional; used to resolve /Length indirect refs
}

// NewTokenizer wraps data for parsing.
func NewTokenizer(data []byte, doc *Document) *Tokenizer {
	return &Tokenizer{r: bufio.NewReader(bytes.NewReader(data)), doc: doc}
}

func isWhitespace(b byte) bool {
	switch b {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

func isDelimiter(b byte) bool {
	switch b {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

func (t *Tokenizer) skipWhitespaceAndComments() error {
	for {
		b, err := t.r.Peek(1)
		if err != nil {
			return err
		}
		if isWhitespace(b[0]) {
			t.r.ReadByte()
			continue
		}
		if b[0] == '%' {
			for {
				c, err := t.r.ReadByte()
				if err != nil {
					return err
				}
				if c == '\r' || c == '\n' {
					break
				}
			}
			continue
		}
		return nil
	}
}

// ParseObject parses one object (or, for a content stream, one operand
// or bare-keyword operator token). true, false and null come back as
// objects; any other bare keyword (an operator, or obj/endobj/stream
// met on its own) comes back in keyword with a nil obj.
func (t *Tokenizer) ParseObject() (obj Object, keyword string, err error) {
	if err := t.skipWhitespaceAndComments(); err != nil {
		if err == io.EOF {
			return nil, "", ErrEOF
		}
		return nil, "", err
	}
	b, err := t.r.Peek(1)
	if err != nil {
		return nil, "", err
	}
	switch {
	case b[0] == '/':
		n, err := t.parseName()
		return n, "", err
	case b[0] == '(':
		s, err := t.parseLiteralString()
		return s, "", err
	case b[0] == '<':
		peek, _ := t.r.Peek(2)
		if len(peek) == 2 && peek[1] == '<' {
			d, err := t.parseDictOrStream()
			return d, "", err
		}
		s, err := t.parseHexString()
		return s, "", err
	case b[0] == '[':
		a, err := t.parseArray()
		return a, "", err
	case b[0] == '+' || b[0] == '-' || b[0] == '.' || (b[0] >= '0' && b[0] <= '9'):
		return t.parseNumberOrReference()
	default:
		word, err := t.parseKeyword()
		if err != nil {
			return nil, "", err
		}
		switch word {
		case "true":
			return Bool(true), "", nil
		case "false":
			return Bool(false), "", nil
		case "null":
			return Null{}, "", nil
		default:
			return nil, word, nil
		}
	}
}

func (t *Tokenizer) parseKeyword() (string, error) {
	var buf bytes.Buffer
	for {
		b, err := t.r.Peek(1)
		if err != nil {
			break
		}
		if isWhitespace(b[0]) || isDelimiter(b[0]) {
			break
		}
		c, _ := t.r.ReadByte()
		buf.WriteByte(c)
	}
	if buf.Len() == 0 {
		return "", fmt.Errorf("pdfobj: empty keyword")
	}
	return buf.String(), nil
}

func (t *Tokenizer) parseName() (Name, error) {
	t.r.ReadByte() // '/'
	var buf bytes.Buffer
	for {
		b, err := t.r.Peek(1)
		if err != nil || isWhitespace(b[0]) || isDelimiter(b[0]) {
			break
		}
		c, _ := t.r.ReadByte()
		if c == '#' {
			hx, err := t.r.Peek(2)
			if err == nil && len(hx) == 2 {
				if v, err := strconv.ParseUint(string(hx), 16, 8); err == nil {
					t.r.Discard(2)
					buf.WriteByte(byte(v))
					continue
				}
			}
		}
		buf.WriteByte(c)
	}
	return Name(buf.String()), nil
}

func (t *Tokenizer) parseLiteralString() (String, error) {
	t.r.ReadByte() // '('
	var buf bytes.Buffer
	depth := 1
	for depth > 0 {
		c, err := t.r.ReadByte()
		if err != nil {
			return String{}, io.ErrUnexpectedEOF
		}
		switch c {
		case '(':
			depth++
			buf.WriteByte(c)
		case ')':
			depth--
			if depth > 0 {
				buf.WriteByte(c)
			}
		case '\\':
			esc, err := t.r.ReadByte()
			if err != nil {
				return String{}, io.ErrUnexpectedEOF
			}
			switch esc {
			case 'n':
				buf.WriteByte('\n')
			case 'r':
				buf.WriteByte('\r')
			case 't':
				buf.WriteByte('\t')
			case 'b':
				buf.WriteByte('\b')
			case 'f':
				buf.WriteByte('\f')
			case '(', ')', '\\':
				buf.WriteByte(esc)
			case '\r', '\n':
				// Line continuation; consume a following \n after \r.
				if esc == '\r' {
					if nx, err := t.r.Peek(1); err == nil && nx[0] == '\n' {
						t.r.ReadByte()
					}
				}
			default:
				if esc >= '0' && esc <= '7' {
					digits := []byte{esc}
					for i := 0; i < 2; i++ {
						nx, err := t.r.Peek(1)
						if err != nil || nx[0] < '0' || nx[0] > '7' {
							break
						}
						b, _ := t.r.ReadByte()
						digits = append(digits, b)
					}
					v, _ := strconv.ParseUint(string(digits), 8, 16)
					buf.WriteByte(byte(v))
				} else {
					buf.WriteByte(esc)
				}
			}
		default:
			buf.WriteByte(c)
		}
	}
	return String{Bytes: buf.Bytes()}, nil
}

func (t *Tokenizer) parseHexString() (String, error) {
	t.r.ReadByte() // '<'
	var hexDigits bytes.Buffer
	for {
		c, err := t.r.ReadByte()
		if err != nil {
			return String{}, io.ErrUnexpectedEOF
		}
		if c == '>' {
			break
		}
		if !isWhitespace(c) {
			hexDigits.WriteByte(c)
		}
	}
	s := hexDigits.String()
	if len(s)%2 == 1 {
		s += "0"
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return String{}, fmt.Errorf("pdfobj: bad hex string: %w", err)
	}
	return String{Bytes: decoded}, nil
}

func (t *Tokenizer) parseArray() (Array, error) {
	t.r.ReadByte() // '['
	var arr Array
	for {
		if err := t.skipWhitespaceAndComments(); err != nil {
			return nil, io.ErrUnexpectedEOF
		}
		b, _ := t.r.Peek(1)
		if b[0] == ']' {
			t.r.ReadByte()
			return arr, nil
		}
		obj, kw, err := t.ParseObject()
		if err != nil {
			return nil, err
		}
		if kw != "" {
			return nil, fmt.Errorf("pdfobj: unexpected keyword %q in array", kw)
		}
		arr = append(arr, obj)
	}
}

func (t *Tokenizer) parseDictOrStream() (Object, error) {
	t.r.Discard(2) // '<<'
	dict := Dictionary{}
	for {
		if err := t.skipWhitespaceAndComments(); err != nil {
			return nil, io.ErrUnexpectedEOF
		}
		peek, _ := t.r.Peek(2)
		if len(peek) == 2 && peek[0] == '>' && peek[1] == '>' {
			t.r.Discard(2)
			break
		}
		keyObj, _, err := t.ParseObject()
		if err != nil {
			return nil, err
		}
		key, ok := keyObj.(Name)
		if !ok {
			return nil, fmt.Errorf("pdfobj: dictionary key is not a name: %v", keyObj)
		}
		val, kw, err := t.ParseObject()
		if err != nil {
			return nil, err
		}
		if kw == "R" {
			return nil, fmt.Errorf("pdfobj: malformed reference for key %q", key)
		}
		dict[key] = val
	}
	// Look ahead for "stream".
	save, _ := t.skipWhitespaceAndComments(), true
	_ = save
	peek, _ := t.r.Peek(6)
	if len(peek) >= 6 && string(peek[:6]) == "stream" {
		t.r.Discard(6)
		// Per spec, CRLF or LF (not bare CR) follows the keyword.
		c, _ := t.r.ReadByte()
		if c == '\r' {
			if nx, err := t.r.Peek(1); err == nil && nx[0] == '\n' {
				t.r.ReadByte()
			}
		}
		length := t.streamLength(dict)
		raw := make([]byte, length)
		if _, err := io.ReadFull(t.r, raw); err != nil {
			return nil, fmt.Errorf("pdfobj: short stream: %w", err)
		}
		t.skipWhitespaceAndComments()
		peek, _ = t.r.Peek(9)
		if len(peek) >= 9 && string(peek[:9]) == "endstream" {
			t.r.Discard(9)
		}
		return Stream{Dictionary: dict, Raw: raw}, nil
	}
	return dict, nil
}

func (t *Tokenizer) streamLength(dict Dictionary) int64 {
	lenObj, ok := dict[Name("Length")]
	if !ok {
		return 0
	}
	if n, ok := AsInt(lenObj); ok {
		return n
	}
	if ref, ok := lenObj.(Reference); ok && t.doc != nil {
		resolved, err := t.doc.Resolve(ref)
		if err == nil {
			if n, ok := AsInt(resolved); ok {
				return n
			}
		}
	}
	return 0
}

func (t *Tokenizer) parseNumberOrReference() (Object, string, error) {
	numStr, isInt, err := t.parseNumberLiteral()
	if err != nil {
		return nil, "", err
	}
	if isInt {
		intVal, _ := strconv.ParseInt(numStr, 10, 64)
		if gen, consumed, ok := t.peekReferenceTail(); ok {
			t.r.Discard(consumed)
			return Reference{Number: intVal, Generation: gen}, "", nil
		}
		return Integer(intVal), "", nil
	}
	f, _ := strconv.ParseFloat(numStr, 64)
	return Real(f), "", nil
}

// peekReferenceTail looks ahead, without consuming unless the whole
// pattern matches, for "<ws>+ <digits> <ws>+ R" following an integer
// already read, the tail of an indirect reference "N G R". Returns the
// generation number and how many bytes to discard on a match.
func (t *Tokenizer) peekReferenceTail() (gen int64, consumed int, ok bool) {
	const maxLookahead = 32
	buf, _ := t.r.Peek(maxLookahead)
	i := 0
	for i < len(buf) && isWhitespace(buf[i]) {
		i++
	}
	if i == 0 || i >= len(buf) {
		return 0, 0, false
	}
	genStart := i
	for i < len(buf) && buf[i] >= '0' && buf[i] <= '9' {
		i++
	}
	if i == genStart || i >= len(buf) {
		return 0, 0, false
	}
	genEnd := i
	for i < len(buf) && isWhitespace(buf[i]) {
		i++
	}
	if i == genEnd || i >= len(buf) {
		return 0, 0, false
	}
	if buf[i] != 'R' {
		return 0, 0, false
	}
	i++
	if i < len(buf) && !isWhitespace(buf[i]) && !isDelimiter(buf[i]) {
		return 0, 0, false
	}
	g, err := strconv.ParseInt(string(buf[genStart:genEnd]), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return g, i, true
}

// parseNumberLiteral reads a PDF number token and reports whether it has
// no fractional part (a candidate object/generation number).
func (t *Tokenizer) parseNumberLiteral() (string, bool, error) {
	var buf bytes.Buffer
	isInt := true
	for {
		b, err := t.r.Peek(1)
		if err != nil {
			break
		}
		c := b[0]
		if c >= '0' && c <= '9' {
			t.r.ReadByte()
			buf.WriteByte(c)
		} else if c == '+' || c == '-' {
			t.r.ReadByte()
			buf.WriteByte(c)
		} else if c == '.' {
			isInt = false
			t.r.ReadByte()
			buf.WriteByte(c)
		} else {
			break
		}
	}
	if buf.Len() == 0 {
		return "", false, fmt.Errorf("pdfobj: empty number")
	}
	return buf.String(), isInt, nil
}
