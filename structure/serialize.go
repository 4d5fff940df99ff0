/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package structure

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/line"
)

// The Act tree serializes to YAML for the human-readable flavor and to
// JSON for the compact one, both built from the same wire values. The
// variant-shaped nodes (ActChild, SAEChildren, SpecialPhrase, ...) are
// written as single-key mappings tagged with the variant name; SAEBody
// is untagged, a bare scalar for leaf text and a mapping for branching
// bodies. Decoding goes through the YAML reader for both flavors, JSON
// being a subset of YAML.

const wireDateFormat = "2006-01-02"

func jsonViaYAML(m yaml.Marshaler) ([]byte, error) {
	v, err := m.MarshalYAML()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// soleEntry unpacks the single-key mapping a tagged variant node uses.
func soleEntry(value *yaml.Node) (string, *yaml.Node, error) {
	if value == nil || value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return "", nil, fmt.Errorf("expected a single-key variant mapping")
	}
	return value.Content[0].Value, value.Content[1], nil
}

// Act

type actWire struct {
	Identifier             identifier.ActIdentifier            `yaml:"identifier" json:"identifier"`
	Subject                string                              `yaml:"subject,omitempty" json:"subject,omitempty"`
	Preamble               string                              `yaml:"preamble,omitempty" json:"preamble,omitempty"`
	PublicationDate        string                              `yaml:"publication_date,omitempty" json:"publication_date,omitempty"`
	ContainedAbbreviations map[string]identifier.ActIdentifier `yaml:"contained_abbreviations,omitempty" json:"contained_abbreviations,omitempty"`
	Children               []any                               `yaml:"children" json:"children"`
}

func (a Act) MarshalYAML() (any, error) {
	w := actWire{
		Identifier:             a.Identifier,
		Subject:                a.Subject,
		Preamble:               a.Preamble,
		ContainedAbbreviations: a.ContainedAbbreviations,
		Children:               make([]any, 0, len(a.Children)),
	}
	if !a.PublicationDate.IsZero() {
		w.PublicationDate = a.PublicationDate.Format(wireDateFormat)
	}
	for _, c := range a.Children {
		cw, err := actChildToWire(c)
		if err != nil {
			return nil, err
		}
		w.Children = append(w.Children, cw)
	}
	return w, nil
}

func (a Act) MarshalJSON() ([]byte, error) { return jsonViaYAML(a) }

func (a *Act) UnmarshalYAML(value *yaml.Node) error {
	var w struct {
		Identifier             identifier.ActIdentifier            `yaml:"identifier"`
		Subject                string                              `yaml:"subject"`
		Preamble               string                              `yaml:"preamble"`
		PublicationDate        string                              `yaml:"publication_date"`
		ContainedAbbreviations map[string]identifier.ActIdentifier `yaml:"contained_abbreviations"`
		Children               []yaml.Node                         `yaml:"children"`
	}
	if err := value.Decode(&w); err != nil {
		return err
	}
	*a = Act{
		Identifier:             w.Identifier,
		Subject:                w.Subject,
		Preamble:               w.Preamble,
		ContainedAbbreviations: w.ContainedAbbreviations,
	}
	if w.PublicationDate != "" {
		d, err := time.Parse(wireDateFormat, w.PublicationDate)
		if err != nil {
			return fmt.Errorf("invalid publication date: %w", err)
		}
		a.PublicationDate = d
	}
	for i := range w.Children {
		c, err := actChildFromNode(&w.Children[i])
		if err != nil {
			return err
		}
		a.Children = append(a.Children, c)
	}
	return nil
}

func actChildToWire(c ActChild) (any, error) {
	switch v := c.(type) {
	case *StructuralElement:
		return map[string]any{"structural_element": v}, nil
	case *Subtitle:
		return map[string]any{"subtitle": v}, nil
	case *Article:
		return map[string]any{"article": v}, nil
	}
	return nil, fmt.Errorf("unknown act child type %T", c)
}

func actChildFromNode(value *yaml.Node) (ActChild, error) {
	key, val, err := soleEntry(value)
	if err != nil {
		return nil, err
	}
	switch key {
	case "structural_element":
		var e StructuralElement
		if err := val.Decode(&e); err != nil {
			return nil, err
		}
		return &e, nil
	case "subtitle":
		var s Subtitle
		if err := val.Decode(&s); err != nil {
			return nil, err
		}
		return &s, nil
	case "article":
		var art Article
		if err := val.Decode(&art); err != nil {
			return nil, err
		}
		return &art, nil
	}
	return nil, fmt.Errorf("unknown act child variant %q", key)
}

// Structural elements and subtitles

var structuralElementTypeNames = map[StructuralElementType]string{
	StructuralElementBook:    "book",
	StructuralElementPart:    "part",
	StructuralElementTitle:   "title",
	StructuralElementChapter: "chapter",
}

var structuralElementTypeValues = func() map[string]StructuralElementType {
	m := make(map[string]StructuralElementType, len(structuralElementTypeNames))
	for k, v := range structuralElementTypeNames {
		m[v] = k
	}
	return m
}()

func (t StructuralElementType) MarshalYAML() (any, error) {
	s, ok := structuralElementTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown structural element type %d", int(t))
	}
	return s, nil
}

func (t StructuralElementType) MarshalJSON() ([]byte, error) { return jsonViaYAML(t) }

func (t *StructuralElementType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, ok := structuralElementTypeValues[s]
	if !ok {
		return fmt.Errorf("unknown structural element type %q", s)
	}
	*t = v
	return nil
}

type structuralElementWire struct {
	Identifier    identifier.NumericIdentifier `yaml:"identifier" json:"identifier"`
	Title         string                       `yaml:"title,omitempty" json:"title,omitempty"`
	Type          StructuralElementType        `yaml:"type" json:"type"`
	IsSpecialPart bool                         `yaml:"special_part,omitempty" json:"special_part,omitempty"`
}

func (e StructuralElement) MarshalYAML() (any, error) {
	return structuralElementWire{
		Identifier: e.Identifier, Title: e.Title, Type: e.Type, IsSpecialPart: e.IsSpecialPart,
	}, nil
}

func (e StructuralElement) MarshalJSON() ([]byte, error) { return jsonViaYAML(e) }

func (e *StructuralElement) UnmarshalYAML(value *yaml.Node) error {
	var w structuralElementWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	*e = StructuralElement{
		Identifier: w.Identifier, Title: w.Title, Type: w.Type, IsSpecialPart: w.IsSpecialPart,
	}
	return nil
}

type subtitleWire struct {
	Identifier *identifier.NumericIdentifier `yaml:"identifier,omitempty" json:"identifier,omitempty"`
	Title      string                        `yaml:"title" json:"title"`
}

func (s Subtitle) MarshalYAML() (any, error) {
	return subtitleWire{Identifier: s.Identifier, Title: s.Title}, nil
}

func (s Subtitle) MarshalJSON() ([]byte, error) { return jsonViaYAML(s) }

func (s *Subtitle) UnmarshalYAML(value *yaml.Node) error {
	var w subtitleWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	*s = Subtitle{Identifier: w.Identifier, Title: w.Title}
	return nil
}

// Article

type articleWire struct {
	Identifier identifier.ArticleIdentifier `yaml:"identifier" json:"identifier"`
	Title      *string                      `yaml:"title,omitempty" json:"title,omitempty"`
	Children   []Paragraph                  `yaml:"children" json:"children"`
}

func (a Article) MarshalYAML() (any, error) {
	return articleWire{Identifier: a.Identifier, Title: a.Title, Children: a.Children}, nil
}

func (a Article) MarshalJSON() ([]byte, error) { return jsonViaYAML(a) }

func (a *Article) UnmarshalYAML(value *yaml.Node) error {
	var w articleWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	*a = Article{Identifier: w.Identifier, Title: w.Title, Children: w.Children}
	return nil
}

// Sub-article elements

type saeWire struct {
	Identifier   any `yaml:"identifier,omitempty" json:"identifier,omitempty"`
	Body         any `yaml:"body" json:"body"`
	SemanticInfo any `yaml:"semantic_info,omitempty" json:"semantic_info,omitempty"`
}

type childrenBodyWire struct {
	Intro    string  `yaml:"intro,omitempty" json:"intro,omitempty"`
	Children any     `yaml:"children" json:"children"`
	WrapUp   *string `yaml:"wrap_up,omitempty" json:"wrap_up,omitempty"`
}

func saeToWire(id any, body SAEBody, sem SemanticInfo) (any, error) {
	bodyWire, err := saeBodyToWire(body)
	if err != nil {
		return nil, err
	}
	w := saeWire{Identifier: id, Body: bodyWire}
	if !sem.IsEmpty() {
		w.SemanticInfo = sem
	}
	return w, nil
}

func saeBodyToWire(b SAEBody) (any, error) {
	switch v := b.(type) {
	case TextBody:
		return string(v), nil
	case ChildrenBody:
		cw, err := saeChildrenToWire(v.Children)
		if err != nil {
			return nil, err
		}
		return childrenBodyWire{Intro: v.Intro, Children: cw, WrapUp: v.WrapUp}, nil
	}
	return nil, fmt.Errorf("unknown SAE body type %T", b)
}

func saeChildrenToWire(c SAEChildren) (any, error) {
	switch v := c.(type) {
	case AlphabeticPointList:
		return map[string]any{"alphabetic_points": v}, nil
	case NumericPointList:
		return map[string]any{"numeric_points": v}, nil
	case QuotedBlockList:
		return map[string]any{"quoted_blocks": v}, nil
	case AlphabeticSubpointList:
		return map[string]any{"alphabetic_subpoints": v}, nil
	case NumericSubpointList:
		return map[string]any{"numeric_subpoints": v}, nil
	case BlockAmendment:
		return map[string]any{"block_amendment": v}, nil
	case StructuralBlockAmendment:
		return map[string]any{"structural_block_amendment": v}, nil
	}
	return nil, fmt.Errorf("unknown SAE children type %T", c)
}

// decodeSAE unpacks the shared {identifier, body, semantic_info} wire
// shape; the caller supplies the children dispatch legal at its level,
// or nil for leaf-only levels.
func decodeSAE(value *yaml.Node, childrenFromNode func(string, *yaml.Node) (SAEChildren, error)) (idNode *yaml.Node, body SAEBody, sem SemanticInfo, err error) {
	var w struct {
		Identifier   yaml.Node `yaml:"identifier"`
		Body         yaml.Node `yaml:"body"`
		SemanticInfo yaml.Node `yaml:"semantic_info"`
	}
	if err = value.Decode(&w); err != nil {
		return nil, nil, SemanticInfo{}, err
	}
	if w.Body.IsZero() {
		return nil, nil, SemanticInfo{}, fmt.Errorf("SAE has no body")
	}
	if w.Body.Kind == yaml.ScalarNode {
		var s string
		if err = w.Body.Decode(&s); err != nil {
			return nil, nil, SemanticInfo{}, err
		}
		body = TextBody(s)
	} else {
		var bw struct {
			Intro    string    `yaml:"intro"`
			Children yaml.Node `yaml:"children"`
			WrapUp   *string   `yaml:"wrap_up"`
		}
		if err = w.Body.Decode(&bw); err != nil {
			return nil, nil, SemanticInfo{}, err
		}
		if childrenFromNode == nil {
			return nil, nil, SemanticInfo{}, fmt.Errorf("leaf element cannot have children")
		}
		key, val, err2 := soleEntry(&bw.Children)
		if err2 != nil {
			return nil, nil, SemanticInfo{}, err2
		}
		children, err2 := childrenFromNode(key, val)
		if err2 != nil {
			return nil, nil, SemanticInfo{}, err2
		}
		body = ChildrenBody{Intro: bw.Intro, Children: children, WrapUp: bw.WrapUp}
	}
	if !w.SemanticInfo.IsZero() {
		if err = w.SemanticInfo.Decode(&sem); err != nil {
			return nil, nil, SemanticInfo{}, err
		}
	}
	if w.Identifier.IsZero() {
		return nil, body, sem, nil
	}
	return &w.Identifier, body, sem, nil
}

func (p Paragraph) MarshalYAML() (any, error) {
	var id any
	if p.Identifier != nil {
		id = *p.Identifier
	}
	return saeToWire(id, p.Body, p.Semantic)
}

func (p Paragraph) MarshalJSON() ([]byte, error) { return jsonViaYAML(p) }

func (p *Paragraph) UnmarshalYAML(value *yaml.Node) error {
	idNode, body, sem, err := decodeSAE(value, paragraphChildrenFromNode)
	if err != nil {
		return err
	}
	*p = Paragraph{Body: body, Semantic: sem}
	if idNode != nil {
		var id identifier.NumericIdentifier
		if err := idNode.Decode(&id); err != nil {
			return err
		}
		p.Identifier = &id
	}
	return nil
}

func paragraphChildrenFromNode(key string, val *yaml.Node) (SAEChildren, error) {
	switch key {
	case "alphabetic_points":
		var l AlphabeticPointList
		return l, val.Decode(&l)
	case "numeric_points":
		var l NumericPointList
		return l, val.Decode(&l)
	case "quoted_blocks":
		var l QuotedBlockList
		return l, val.Decode(&l)
	case "block_amendment":
		var b BlockAmendment
		return b, val.Decode(&b)
	case "structural_block_amendment":
		var b StructuralBlockAmendment
		return b, val.Decode(&b)
	}
	return nil, fmt.Errorf("unknown paragraph children variant %q", key)
}

func (p AlphabeticPoint) MarshalYAML() (any, error) {
	return saeToWire(p.Identifier, p.Body, p.Semantic)
}

func (p AlphabeticPoint) MarshalJSON() ([]byte, error) { return jsonViaYAML(p) }

func (p *AlphabeticPoint) UnmarshalYAML(value *yaml.Node) error {
	idNode, body, sem, err := decodeSAE(value, alphabeticPointChildrenFromNode)
	if err != nil {
		return err
	}
	*p = AlphabeticPoint{Body: body, Semantic: sem}
	if idNode == nil {
		return fmt.Errorf("alphabetic point has no identifier")
	}
	return idNode.Decode(&p.Identifier)
}

func alphabeticPointChildrenFromNode(key string, val *yaml.Node) (SAEChildren, error) {
	switch key {
	case "alphabetic_subpoints":
		var l AlphabeticSubpointList
		return l, val.Decode(&l)
	case "numeric_subpoints":
		var l NumericSubpointList
		return l, val.Decode(&l)
	}
	return nil, fmt.Errorf("unknown alphabetic point children variant %q", key)
}

func (p NumericPoint) MarshalYAML() (any, error) {
	return saeToWire(p.Identifier, p.Body, p.Semantic)
}

func (p NumericPoint) MarshalJSON() ([]byte, error) { return jsonViaYAML(p) }

func (p *NumericPoint) UnmarshalYAML(value *yaml.Node) error {
	idNode, body, sem, err := decodeSAE(value, numericPointChildrenFromNode)
	if err != nil {
		return err
	}
	*p = NumericPoint{Body: body, Semantic: sem}
	if idNode == nil {
		return fmt.Errorf("numeric point has no identifier")
	}
	return idNode.Decode(&p.Identifier)
}

func numericPointChildrenFromNode(key string, val *yaml.Node) (SAEChildren, error) {
	if key == "alphabetic_subpoints" {
		var l AlphabeticSubpointList
		return l, val.Decode(&l)
	}
	return nil, fmt.Errorf("unknown numeric point children variant %q", key)
}

func (p AlphabeticSubpoint) MarshalYAML() (any, error) {
	return saeToWire(p.Identifier, p.Body, p.Semantic)
}

func (p AlphabeticSubpoint) MarshalJSON() ([]byte, error) { return jsonViaYAML(p) }

func (p *AlphabeticSubpoint) UnmarshalYAML(value *yaml.Node) error {
	idNode, body, sem, err := decodeSAE(value, nil)
	if err != nil {
		return err
	}
	*p = AlphabeticSubpoint{Body: body, Semantic: sem}
	if idNode == nil {
		return fmt.Errorf("alphabetic subpoint has no identifier")
	}
	return idNode.Decode(&p.Identifier)
}

func (p NumericSubpoint) MarshalYAML() (any, error) {
	return saeToWire(p.Identifier, p.Body, p.Semantic)
}

func (p NumericSubpoint) MarshalJSON() ([]byte, error) { return jsonViaYAML(p) }

func (p *NumericSubpoint) UnmarshalYAML(value *yaml.Node) error {
	idNode, body, sem, err := decodeSAE(value, nil)
	if err != nil {
		return err
	}
	*p = NumericSubpoint{Body: body, Semantic: sem}
	if idNode == nil {
		return fmt.Errorf("numeric subpoint has no identifier")
	}
	return idNode.Decode(&p.Identifier)
}

// Quoted blocks and block amendments

type quotedBlockWire struct {
	Intro  *string             `yaml:"intro,omitempty" json:"intro,omitempty"`
	Lines  []line.IndentedLine `yaml:"lines" json:"lines"`
	WrapUp *string             `yaml:"wrap_up,omitempty" json:"wrap_up,omitempty"`
}

func (q QuotedBlock) MarshalYAML() (any, error) {
	return quotedBlockWire{Intro: q.Intro, Lines: q.Lines, WrapUp: q.WrapUp}, nil
}

func (q QuotedBlock) MarshalJSON() ([]byte, error) { return jsonViaYAML(q) }

func (q *QuotedBlock) UnmarshalYAML(value *yaml.Node) error {
	var w quotedBlockWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	*q = QuotedBlock{Intro: w.Intro, Lines: w.Lines, WrapUp: w.WrapUp}
	return nil
}

func (b BlockAmendment) MarshalYAML() (any, error) {
	cw, err := blockAmendmentChildrenToWire(b.Children)
	if err != nil {
		return nil, err
	}
	return childrenBodyWire{
		Intro:    derefOrEmpty(b.Intro),
		Children: cw,
		WrapUp:   b.WrapUp,
	}, nil
}

func (b BlockAmendment) MarshalJSON() ([]byte, error) { return jsonViaYAML(b) }

func (b *BlockAmendment) UnmarshalYAML(value *yaml.Node) error {
	var w struct {
		Intro    string    `yaml:"intro"`
		Children yaml.Node `yaml:"children"`
		WrapUp   *string   `yaml:"wrap_up"`
	}
	if err := value.Decode(&w); err != nil {
		return err
	}
	key, val, err := soleEntry(&w.Children)
	if err != nil {
		return err
	}
	children, err := blockAmendmentChildrenFromNode(key, val)
	if err != nil {
		return err
	}
	*b = BlockAmendment{Children: children, WrapUp: w.WrapUp}
	if w.Intro != "" {
		b.Intro = &w.Intro
	}
	return nil
}

func blockAmendmentChildrenToWire(c BlockAmendmentChildren) (any, error) {
	switch v := c.(type) {
	case ParagraphList:
		return map[string]any{"paragraphs": v}, nil
	case AlphabeticPointList:
		return map[string]any{"alphabetic_points": v}, nil
	case NumericPointList:
		return map[string]any{"numeric_points": v}, nil
	case AlphabeticSubpointList:
		return map[string]any{"alphabetic_subpoints": v}, nil
	case NumericSubpointList:
		return map[string]any{"numeric_subpoints": v}, nil
	}
	return nil, fmt.Errorf("unknown block amendment children type %T", c)
}

func blockAmendmentChildrenFromNode(key string, val *yaml.Node) (BlockAmendmentChildren, error) {
	switch key {
	case "paragraphs":
		var l ParagraphList
		return l, val.Decode(&l)
	case "alphabetic_points":
		var l AlphabeticPointList
		return l, val.Decode(&l)
	case "numeric_points":
		var l NumericPointList
		return l, val.Decode(&l)
	case "alphabetic_subpoints":
		var l AlphabeticSubpointList
		return l, val.Decode(&l)
	case "numeric_subpoints":
		var l NumericSubpointList
		return l, val.Decode(&l)
	}
	return nil, fmt.Errorf("unknown block amendment children variant %q", key)
}

type structuralBlockAmendmentWire struct {
	Intro    string  `yaml:"intro,omitempty" json:"intro,omitempty"`
	Children []any   `yaml:"children" json:"children"`
	WrapUp   *string `yaml:"wrap_up,omitempty" json:"wrap_up,omitempty"`
}

func (b StructuralBlockAmendment) MarshalYAML() (any, error) {
	w := structuralBlockAmendmentWire{
		Intro:    derefOrEmpty(b.Intro),
		Children: make([]any, 0, len(b.Children)),
		WrapUp:   b.WrapUp,
	}
	for _, c := range b.Children {
		cw, err := actChildToWire(c)
		if err != nil {
			return nil, err
		}
		w.Children = append(w.Children, cw)
	}
	return w, nil
}

func (b StructuralBlockAmendment) MarshalJSON() ([]byte, error) { return jsonViaYAML(b) }

func (b *StructuralBlockAmendment) UnmarshalYAML(value *yaml.Node) error {
	var w struct {
		Intro    string      `yaml:"intro"`
		Children []yaml.Node `yaml:"children"`
		WrapUp   *string     `yaml:"wrap_up"`
	}
	if err := value.Decode(&w); err != nil {
		return err
	}
	*b = StructuralBlockAmendment{WrapUp: w.WrapUp}
	if w.Intro != "" {
		b.Intro = &w.Intro
	}
	for i := range w.Children {
		c, err := actChildFromNode(&w.Children[i])
		if err != nil {
			return err
		}
		b.Children = append(b.Children, c)
	}
	return nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
