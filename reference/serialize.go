/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package reference

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/badicsalex/hunlaw/identifier"
)

func jsonViaYAML(m yaml.Marshaler) ([]byte, error) {
	v, err := m.MarshalYAML()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// leadingScalar extracts the scalar an identifier-range node starts
// with: the node's own value for a bare scalar, or the "start" entry of
// a {start, end} mapping. Used to sniff numeric vs. alphabetic before
// committing to a concrete range type.
func leadingScalar(value *yaml.Node) (string, error) {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Value, nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(value.Content); i += 2 {
			if value.Content[i].Value == "start" {
				return value.Content[i+1].Value, nil
			}
		}
		return "", fmt.Errorf("identifier range mapping has no start entry")
	}
	return "", fmt.Errorf("unexpected node kind %v for an identifier range", value.Kind)
}

func startsWithDigit(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

// RefPartPoint serializes as its underlying identifier range alone; the
// numeric/alphabetic kind is recovered on decode from the first
// character, since numeric point identifiers always start with a digit
// and alphabetic ones never do.
func (p RefPartPoint) MarshalYAML() (any, error) {
	if p.Kind == PointKindNumeric {
		return p.Numeric.MarshalYAML()
	}
	return p.Alphabetic.MarshalYAML()
}

func (p RefPartPoint) MarshalJSON() ([]byte, error) { return jsonViaYAML(p) }

func (p *RefPartPoint) UnmarshalYAML(value *yaml.Node) error {
	s, err := leadingScalar(value)
	if err != nil {
		return err
	}
	if startsWithDigit(s) {
		var r identifier.IdentifierRange[identifier.NumericIdentifier]
		if err := value.Decode(&r); err != nil {
			return err
		}
		*p = NumericRefPartPoint(r)
		return nil
	}
	var r identifier.IdentifierRange[identifier.AlphabeticIdentifier]
	if err := value.Decode(&r); err != nil {
		return err
	}
	*p = AlphabeticRefPartPoint(r)
	return nil
}

func (p RefPartSubpoint) MarshalYAML() (any, error) {
	if p.Kind == PointKindNumeric {
		return p.Numeric.MarshalYAML()
	}
	return p.Alphabetic.MarshalYAML()
}

func (p RefPartSubpoint) MarshalJSON() ([]byte, error) { return jsonViaYAML(p) }

func (p *RefPartSubpoint) UnmarshalYAML(value *yaml.Node) error {
	s, err := leadingScalar(value)
	if err != nil {
		return err
	}
	if startsWithDigit(s) {
		var r identifier.IdentifierRange[identifier.NumericIdentifier]
		if err := value.Decode(&r); err != nil {
			return err
		}
		*p = NumericRefPartSubpoint(r)
		return nil
	}
	var r identifier.IdentifierRange[identifier.PrefixedAlphabeticIdentifier]
	if err := value.Decode(&r); err != nil {
		return err
	}
	*p = AlphabeticRefPartSubpoint(r)
	return nil
}

// referenceWire is the struct-of-optionals wire form of Reference;
// decoding funnels through UncheckedReference.Validate so a hand-edited
// file can't smuggle in a gap or a misplaced range.
type referenceWire struct {
	Act       *identifier.ActIdentifier `yaml:"act,omitempty" json:"act,omitempty"`
	Article   *RefPartArticle           `yaml:"article,omitempty" json:"article,omitempty"`
	Paragraph *RefPartParagraph         `yaml:"paragraph,omitempty" json:"paragraph,omitempty"`
	Point     *RefPartPoint             `yaml:"point,omitempty" json:"point,omitempty"`
	Subpoint  *RefPartSubpoint          `yaml:"subpoint,omitempty" json:"subpoint,omitempty"`
}

func (r Reference) MarshalYAML() (any, error) {
	return referenceWire{
		Act:       r.act,
		Article:   r.article,
		Paragraph: r.paragraph,
		Point:     r.point,
		Subpoint:  r.subpoint,
	}, nil
}

func (r Reference) MarshalJSON() ([]byte, error) { return jsonViaYAML(r) }

func (r *Reference) UnmarshalYAML(value *yaml.Node) error {
	var w referenceWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	u := UncheckedReference{
		act:       w.Act,
		article:   w.Article,
		paragraph: w.Paragraph,
		point:     w.Point,
		subpoint:  w.Subpoint,
	}
	validated, err := u.Validate()
	if err != nil {
		return err
	}
	*r = validated
	return nil
}

var structuralReferenceKindNames = map[StructuralReferenceKind]string{
	StructuralReferencePart:                           "part",
	StructuralReferenceTitle:                          "title",
	StructuralReferenceChapter:                        "chapter",
	StructuralReferenceSubtitleID:                     "subtitle_id",
	StructuralReferenceSubtitleTitle:                  "subtitle_title",
	StructuralReferenceSubtitleAfterArticle:           "subtitle_after_article",
	StructuralReferenceSubtitleBeforeArticle:          "subtitle_before_article",
	StructuralReferenceSubtitleBeforeArticleInclusive: "subtitle_before_article_inclusive",
	StructuralReferenceArticle:                        "article",
	StructuralReferenceAtTheEndOfPart:                 "at_the_end_of_part",
	StructuralReferenceAtTheEndOfTitle:                "at_the_end_of_title",
	StructuralReferenceAtTheEndOfChapter:              "at_the_end_of_chapter",
}

var structuralReferenceKindValues = func() map[string]StructuralReferenceKind {
	m := make(map[string]StructuralReferenceKind, len(structuralReferenceKindNames))
	for k, v := range structuralReferenceKindNames {
		m[v] = k
	}
	return m
}()

func (k StructuralReferenceKind) String() string {
	if s, ok := structuralReferenceKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("StructuralReferenceKind(%d)", int(k))
}

func (k StructuralReferenceKind) MarshalYAML() (any, error) {
	s, ok := structuralReferenceKindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown structural reference kind %d", int(k))
	}
	return s, nil
}

func (k StructuralReferenceKind) MarshalJSON() ([]byte, error) { return jsonViaYAML(k) }

func (k *StructuralReferenceKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, ok := structuralReferenceKindValues[s]
	if !ok {
		return fmt.Errorf("unknown structural reference kind %q", s)
	}
	*k = v
	return nil
}

type structuralReferenceElementWire struct {
	Kind          StructuralReferenceKind       `yaml:"kind" json:"kind"`
	ID            *identifier.NumericIdentifier `yaml:"id,omitempty" json:"id,omitempty"`
	Title         string                        `yaml:"title,omitempty" json:"title,omitempty"`
	ArticleAnchor *identifier.ArticleIdentifier `yaml:"article,omitempty" json:"article,omitempty"`
}

func (e StructuralReferenceElement) MarshalYAML() (any, error) {
	w := structuralReferenceElementWire{Kind: e.Kind, Title: e.Title}
	if e.NumericID != (identifier.NumericIdentifier{}) {
		id := e.NumericID
		w.ID = &id
	}
	if e.ArticleAnchor != (identifier.ArticleIdentifier{}) {
		anchor := e.ArticleAnchor
		w.ArticleAnchor = &anchor
	}
	return w, nil
}

func (e StructuralReferenceElement) MarshalJSON() ([]byte, error) { return jsonViaYAML(e) }

func (e *StructuralReferenceElement) UnmarshalYAML(value *yaml.Node) error {
	var w structuralReferenceElementWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	*e = StructuralReferenceElement{Kind: w.Kind, Title: w.Title}
	if w.ID != nil {
		e.NumericID = *w.ID
	}
	if w.ArticleAnchor != nil {
		e.ArticleAnchor = *w.ArticleAnchor
	}
	return nil
}

type structuralReferenceWire struct {
	Act     *identifier.ActIdentifier     `yaml:"act,omitempty" json:"act,omitempty"`
	Book    *identifier.NumericIdentifier `yaml:"book,omitempty" json:"book,omitempty"`
	Element StructuralReferenceElement    `yaml:"element" json:"element"`
}

func (r StructuralReference) MarshalYAML() (any, error) {
	return structuralReferenceWire{Act: r.Act, Book: r.Book, Element: r.StructuralElement}, nil
}

func (r StructuralReference) MarshalJSON() ([]byte, error) { return jsonViaYAML(r) }

func (r *StructuralReference) UnmarshalYAML(value *yaml.Node) error {
	var w structuralReferenceWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	*r = StructuralReference{Act: w.Act, Book: w.Book, StructuralElement: w.Element}
	return nil
}
