/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package structure

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/reference"
)

type outgoingReferenceWire struct {
	Start     int                 `yaml:"start,omitempty" json:"start,omitempty"`
	End       int                 `yaml:"end,omitempty" json:"end,omitempty"`
	Reference reference.Reference `yaml:"reference" json:"reference"`
}

type semanticInfoWire struct {
	OutgoingReferences []outgoingReferenceWire             `yaml:"outgoing_references,omitempty" json:"outgoing_references,omitempty"`
	NewAbbreviations   map[string]identifier.ActIdentifier `yaml:"new_abbreviations,omitempty" json:"new_abbreviations,omitempty"`
	SpecialPhrase      any                                 `yaml:"special_phrase,omitempty" json:"special_phrase,omitempty"`
}

func (s SemanticInfo) MarshalYAML() (any, error) {
	w := semanticInfoWire{NewAbbreviations: s.NewAbbreviations}
	for _, r := range s.OutgoingReferences {
		w.OutgoingReferences = append(w.OutgoingReferences, outgoingReferenceWire{
			Start: r.Start, End: r.End, Reference: r.Reference,
		})
	}
	if s.SpecialPhrase != nil {
		pw, err := specialPhraseToWire(s.SpecialPhrase)
		if err != nil {
			return nil, err
		}
		w.SpecialPhrase = pw
	}
	return w, nil
}

func (s SemanticInfo) MarshalJSON() ([]byte, error) { return jsonViaYAML(s) }

func (s *SemanticInfo) UnmarshalYAML(value *yaml.Node) error {
	var w struct {
		OutgoingReferences []outgoingReferenceWire             `yaml:"outgoing_references"`
		NewAbbreviations   map[string]identifier.ActIdentifier `yaml:"new_abbreviations"`
		SpecialPhrase      yaml.Node                           `yaml:"special_phrase"`
	}
	if err := value.Decode(&w); err != nil {
		return err
	}
	*s = SemanticInfo{NewAbbreviations: w.NewAbbreviations}
	for _, r := range w.OutgoingReferences {
		s.OutgoingReferences = append(s.OutgoingReferences, OutgoingReference{
			Start: r.Start, End: r.End, Reference: r.Reference,
		})
	}
	if !w.SpecialPhrase.IsZero() {
		p, err := specialPhraseFromNode(&w.SpecialPhrase)
		if err != nil {
			return err
		}
		s.SpecialPhrase = p
	}
	return nil
}

// Special phrases

type blockAmendmentPhraseWire struct {
	Position      reference.Reference `yaml:"position" json:"position"`
	PureInsertion bool                `yaml:"pure_insertion,omitempty" json:"pure_insertion,omitempty"`
}

type structuralBlockAmendmentPhraseWire struct {
	Position      reference.StructuralReference `yaml:"position" json:"position"`
	PureInsertion bool                          `yaml:"pure_insertion,omitempty" json:"pure_insertion,omitempty"`
}

type enforcementDatePhraseWire struct {
	Positions           []reference.Reference           `yaml:"positions,omitempty" json:"positions,omitempty"`
	StructuralPositions []reference.StructuralReference `yaml:"structural_positions,omitempty" json:"structural_positions,omitempty"`
	IsDefault           bool                            `yaml:"default,omitempty" json:"default,omitempty"`
	Date                any                             `yaml:"date" json:"date"`
	InlineRepeal        string                          `yaml:"inline_repeal,omitempty" json:"inline_repeal,omitempty"`
}

type repealPhraseWire struct {
	Positions []reference.Reference `yaml:"positions" json:"positions"`
}

type structuralRepealPhraseWire struct {
	Position reference.StructuralReference `yaml:"position" json:"position"`
}

type articleTitleAmendmentPhraseWire struct {
	Reference reference.Reference `yaml:"reference" json:"reference"`
	From      string              `yaml:"from" json:"from"`
	To        string              `yaml:"to" json:"to"`
}

func specialPhraseToWire(p SpecialPhrase) (any, error) {
	switch v := p.(type) {
	case BlockAmendmentPhrase:
		return map[string]any{"block_amendment": blockAmendmentPhraseWire{
			Position: v.Position, PureInsertion: v.PureInsertion,
		}}, nil
	case StructuralBlockAmendmentPhrase:
		return map[string]any{"structural_block_amendment": structuralBlockAmendmentPhraseWire{
			Position: v.Position, PureInsertion: v.PureInsertion,
		}}, nil
	case EnforcementDatePhrase:
		dw, err := enforcementDateValueToWire(v.Date)
		if err != nil {
			return nil, err
		}
		w := enforcementDatePhraseWire{
			Positions:           v.Positions,
			StructuralPositions: v.StructuralPositions,
			IsDefault:           v.IsDefault,
			Date:                dw,
		}
		if v.InlineRepeal != nil {
			w.InlineRepeal = v.InlineRepeal.Format(wireDateFormat)
		}
		return map[string]any{"enforcement_date": w}, nil
	case RepealPhrase:
		return map[string]any{"repeal": repealPhraseWire{Positions: v.Positions}}, nil
	case StructuralRepealPhrase:
		return map[string]any{"structural_repeal": structuralRepealPhraseWire{Position: v.Position}}, nil
	case TextAmendmentListPhrase:
		wires := make([]textAmendmentWire, 0, len(v))
		for _, ta := range v {
			w, err := textAmendmentToWire(ta)
			if err != nil {
				return nil, err
			}
			wires = append(wires, w)
		}
		return map[string]any{"text_amendments": wires}, nil
	case ArticleTitleAmendmentPhrase:
		return map[string]any{"article_title_amendment": articleTitleAmendmentPhraseWire{
			Reference: v.Reference, From: v.From, To: v.To,
		}}, nil
	}
	return nil, fmt.Errorf("unknown special phrase type %T", p)
}

func specialPhraseFromNode(value *yaml.Node) (SpecialPhrase, error) {
	key, val, err := soleEntry(value)
	if err != nil {
		return nil, err
	}
	switch key {
	case "block_amendment":
		var w blockAmendmentPhraseWire
		if err := val.Decode(&w); err != nil {
			return nil, err
		}
		return BlockAmendmentPhrase{Position: w.Position, PureInsertion: w.PureInsertion}, nil
	case "structural_block_amendment":
		var w structuralBlockAmendmentPhraseWire
		if err := val.Decode(&w); err != nil {
			return nil, err
		}
		return StructuralBlockAmendmentPhrase{Position: w.Position, PureInsertion: w.PureInsertion}, nil
	case "enforcement_date":
		var w struct {
			Positions           []reference.Reference           `yaml:"positions"`
			StructuralPositions []reference.StructuralReference `yaml:"structural_positions"`
			IsDefault           bool                            `yaml:"default"`
			Date                yaml.Node                       `yaml:"date"`
			InlineRepeal        string                          `yaml:"inline_repeal"`
		}
		if err := val.Decode(&w); err != nil {
			return nil, err
		}
		date, err := enforcementDateValueFromNode(&w.Date)
		if err != nil {
			return nil, err
		}
		p := EnforcementDatePhrase{
			Positions:           w.Positions,
			StructuralPositions: w.StructuralPositions,
			IsDefault:           w.IsDefault,
			Date:                date,
		}
		if w.InlineRepeal != "" {
			d, err := time.Parse(wireDateFormat, w.InlineRepeal)
			if err != nil {
				return nil, fmt.Errorf("invalid inline repeal date: %w", err)
			}
			p.InlineRepeal = &d
		}
		return p, nil
	case "repeal":
		var w repealPhraseWire
		if err := val.Decode(&w); err != nil {
			return nil, err
		}
		return RepealPhrase{Positions: w.Positions}, nil
	case "structural_repeal":
		var w structuralRepealPhraseWire
		if err := val.Decode(&w); err != nil {
			return nil, err
		}
		return StructuralRepealPhrase{Position: w.Position}, nil
	case "text_amendments":
		var nodes []yaml.Node
		if err := val.Decode(&nodes); err != nil {
			return nil, err
		}
		var list TextAmendmentListPhrase
		for i := range nodes {
			ta, err := textAmendmentFromNode(&nodes[i])
			if err != nil {
				return nil, err
			}
			list = append(list, ta)
		}
		return list, nil
	case "article_title_amendment":
		var w articleTitleAmendmentPhraseWire
		if err := val.Decode(&w); err != nil {
			return nil, err
		}
		return ArticleTitleAmendmentPhrase{Reference: w.Reference, From: w.From, To: w.To}, nil
	}
	return nil, fmt.Errorf("unknown special phrase variant %q", key)
}

// Enforcement date values

type dayInMonthWire struct {
	Month *int `yaml:"month,omitempty" json:"month,omitempty"`
	Day   int  `yaml:"day" json:"day"`
}

func enforcementDateValueToWire(v EnforcementDateValue) (any, error) {
	switch d := v.(type) {
	case AbsoluteDate:
		return map[string]any{"absolute": time.Time(d).Format(wireDateFormat)}, nil
	case DaysAfterPublication:
		return map[string]any{"days_after_publication": uint16(d)}, nil
	case DayInMonthAfterPublication:
		return map[string]any{"day_in_month": dayInMonthWire{Month: d.Month, Day: d.Day}}, nil
	}
	return nil, fmt.Errorf("unknown enforcement date value type %T", v)
}

func enforcementDateValueFromNode(value *yaml.Node) (EnforcementDateValue, error) {
	key, val, err := soleEntry(value)
	if err != nil {
		return nil, err
	}
	switch key {
	case "absolute":
		var s string
		if err := val.Decode(&s); err != nil {
			return nil, err
		}
		d, err := time.Parse(wireDateFormat, s)
		if err != nil {
			return nil, fmt.Errorf("invalid enforcement date: %w", err)
		}
		return AbsoluteDate(d), nil
	case "days_after_publication":
		var n uint16
		if err := val.Decode(&n); err != nil {
			return nil, err
		}
		return DaysAfterPublication(n), nil
	case "day_in_month":
		var w dayInMonthWire
		if err := val.Decode(&w); err != nil {
			return nil, err
		}
		return DayInMonthAfterPublication{Month: w.Month, Day: w.Day}, nil
	}
	return nil, fmt.Errorf("unknown enforcement date variant %q", key)
}

// Text amendments

var textAmendmentSAEPartNames = map[TextAmendmentSAEPart]string{
	TextAmendmentSAEPartAll:        "all",
	TextAmendmentSAEPartIntroOnly:  "intro_only",
	TextAmendmentSAEPartWrapUpOnly: "wrap_up_only",
}

var textAmendmentSAEPartValues = func() map[string]TextAmendmentSAEPart {
	m := make(map[string]TextAmendmentSAEPart, len(textAmendmentSAEPartNames))
	for k, v := range textAmendmentSAEPartNames {
		m[v] = k
	}
	return m
}()

type saeTextAmendmentReferenceWire struct {
	Reference   reference.Reference `yaml:"reference" json:"reference"`
	AmendedPart string              `yaml:"amended_part,omitempty" json:"amended_part,omitempty"`
}

type textAmendmentWire struct {
	Reference any    `yaml:"reference" json:"reference"`
	From      string `yaml:"from" json:"from"`
	To        string `yaml:"to,omitempty" json:"to,omitempty"`
}

func textAmendmentToWire(ta TextAmendment) (textAmendmentWire, error) {
	w := textAmendmentWire{From: ta.From, To: ta.To}
	switch r := ta.Reference.(type) {
	case SAETextAmendmentReference:
		rw := saeTextAmendmentReferenceWire{Reference: r.Reference}
		if r.AmendedPart != TextAmendmentSAEPartAll {
			rw.AmendedPart = textAmendmentSAEPartNames[r.AmendedPart]
		}
		w.Reference = map[string]any{"sae": rw}
	case StructuralTextAmendmentReference:
		w.Reference = map[string]any{"structural": r.Reference}
	case ArticleTitleTextAmendmentReference:
		w.Reference = map[string]any{"article_title": r.Reference}
	default:
		return w, fmt.Errorf("unknown text amendment reference type %T", ta.Reference)
	}
	return w, nil
}

func textAmendmentFromNode(value *yaml.Node) (TextAmendment, error) {
	var w struct {
		Reference yaml.Node `yaml:"reference"`
		From      string    `yaml:"from"`
		To        string    `yaml:"to"`
	}
	if err := value.Decode(&w); err != nil {
		return TextAmendment{}, err
	}
	key, val, err := soleEntry(&w.Reference)
	if err != nil {
		return TextAmendment{}, err
	}
	ta := TextAmendment{From: w.From, To: w.To}
	switch key {
	case "sae":
		var rw saeTextAmendmentReferenceWire
		if err := val.Decode(&rw); err != nil {
			return TextAmendment{}, err
		}
		ref := SAETextAmendmentReference{Reference: rw.Reference}
		if rw.AmendedPart != "" {
			part, ok := textAmendmentSAEPartValues[rw.AmendedPart]
			if !ok {
				return TextAmendment{}, fmt.Errorf("unknown amended part %q", rw.AmendedPart)
			}
			ref.AmendedPart = part
		}
		ta.Reference = ref
	case "structural":
		var r reference.StructuralReference
		if err := val.Decode(&r); err != nil {
			return TextAmendment{}, err
		}
		ta.Reference = StructuralTextAmendmentReference{Reference: r}
	case "article_title":
		var r reference.Reference
		if err := val.Decode(&r); err != nil {
			return TextAmendment{}, err
		}
		ta.Reference = ArticleTitleTextAmendmentReference{Reference: r}
	default:
		return TextAmendment{}, fmt.Errorf("unknown text amendment reference variant %q", key)
	}
	return ta, nil
}
