/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package structure

import (
	"regexp"
	"strings"

	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/line"
)

var structuralElementTitleRe = map[StructuralElementType]*regexp.Regexp{
	StructuralElementBook:    regexp.MustCompile(`^(.*) KÖNYV$`),
	StructuralElementPart:    regexp.MustCompile(`^(.*) RÉSZ$`),
	StructuralElementTitle:   regexp.MustCompile(`^(.*)\. CÍM$`),
	StructuralElementChapter: regexp.MustCompile(`(?i)^(.*)\. fejezet$`),
}

var specialPartNames = map[string]uint16{
	"ÁLTALÁNOS": 1,
	"KÜLÖNÖS":   2,
	"ZÁRÓ":      3,
}

// structuralElementParserFactory recognizes header lines for one
// StructuralElementType (Book, Part, Title or Chapter) and spawns a
// parser for it.
type structuralElementParserFactory struct {
	elementType StructuralElementType
}

func (f structuralElementParserFactory) tryCreateFromHeader(l line.IndentedLine) (*structuralElementParser, bool) {
	re := structuralElementTitleRe[f.elementType]
	m := re.FindStringSubmatch(l.Content())
	if m == nil {
		return nil, false
	}
	idStr := m[1]
	id, isSpecial, ok := f.parseIdentifier(idStr)
	if !ok {
		return nil, false
	}
	return &structuralElementParser{
		identifier:    id,
		elementType:   f.elementType,
		isSpecialPart: isSpecial,
	}, true
}

// parseIdentifier parses the captured identifier text for this element
// type: Hungarian ordinals for Book/Part (with the three hard-coded
// special Part names), roman numerals for Title/Chapter.
func (f structuralElementParserFactory) parseIdentifier(s string) (identifier.NumericIdentifier, bool, bool) {
	switch f.elementType {
	case StructuralElementBook:
		id, err := identifier.ParseNumericIdentifierFromHungarian(s)
		if err != nil {
			return identifier.NumericIdentifier{}, false, false
		}
		return id, false, true
	case StructuralElementPart:
		if num, ok := specialPartNames[strings.ToUpper(s)]; ok {
			return identifier.NumericIdentifierFromInt(num), true, true
		}
		id, err := identifier.ParseNumericIdentifierFromHungarian(s)
		if err != nil {
			return identifier.NumericIdentifier{}, false, false
		}
		return id, false, true
	case StructuralElementTitle, StructuralElementChapter:
		id, err := identifier.ParseNumericIdentifierFromRoman(s)
		if err != nil {
			return identifier.NumericIdentifier{}, false, false
		}
		return id, false, true
	}
	return identifier.NumericIdentifier{}, false, false
}

// structuralElementParser accumulates a structural element's title text
// across its header line's continuation lines.
type structuralElementParser struct {
	identifier    identifier.NumericIdentifier
	title         strings.Builder
	elementType   StructuralElementType
	isSpecialPart bool
}

func (p *structuralElementParser) feedLine(l line.IndentedLine) {
	l.AppendTo(&p.title)
}

func (p *structuralElementParser) finish() *StructuralElement {
	return &StructuralElement{
		Identifier:    p.identifier,
		Title:         p.title.String(),
		Type:          p.elementType,
		IsSpecialPart: p.isSpecialPart,
	}
}
