/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package identifier

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Identifiers serialize as a single scalar in the same compact textual
// form String renders. The JSON flavor is produced from the same
// intermediate value the YAML encoder sees; decoding accepts either
// flavor through the YAML reader, JSON being a subset of YAML.

func jsonViaYAML(m yaml.Marshaler) ([]byte, error) {
	v, err := m.MarshalYAML()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func unmarshalScalar[T any](value *yaml.Node, dst *T, parse func(string) (T, error)) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := parse(s)
	if err != nil {
		return err
	}
	*dst = parsed
	return nil
}

func (c HungarianChar) MarshalYAML() (any, error) { return c.String(), nil }
func (c HungarianChar) MarshalJSON() ([]byte, error) { return jsonViaYAML(c) }

func (c *HungarianChar) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalScalar(value, c, ParseHungarianChar)
}

func (n NumericIdentifier) MarshalYAML() (any, error) { return n.String(), nil }
func (n NumericIdentifier) MarshalJSON() ([]byte, error) { return jsonViaYAML(n) }

func (n *NumericIdentifier) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalScalar(value, n, ParseNumericIdentifier)
}

func (a ArticleIdentifier) MarshalYAML() (any, error) { return a.String(), nil }
func (a ArticleIdentifier) MarshalJSON() ([]byte, error) { return jsonViaYAML(a) }

func (a *ArticleIdentifier) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalScalar(value, a, ParseArticleIdentifier)
}

func (p PrefixedAlphabeticIdentifier) MarshalYAML() (any, error) { return p.String(), nil }
func (p PrefixedAlphabeticIdentifier) MarshalJSON() ([]byte, error) { return jsonViaYAML(p) }

func (p *PrefixedAlphabeticIdentifier) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalScalar(value, p, ParsePrefixedAlphabeticIdentifier)
}

// ActIdentifier uses the slash-separated decimal form on the wire; the
// parser accepts all four decimal separators plus the classic printed
// form, so hand-edited files stay readable.
func (a ActIdentifier) MarshalYAML() (any, error) { return a.CompactString(), nil }
func (a ActIdentifier) MarshalJSON() ([]byte, error) { return jsonViaYAML(a) }

func (a *ActIdentifier) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalScalar(value, a, ParseActIdentifier)
}

// rangeWire is the {start, end} mapping a genuine range serializes as.
// A degenerate range is written as a bare scalar instead.
type rangeWire struct {
	Start string `yaml:"start" json:"start"`
	End   string `yaml:"end" json:"end"`
}

func (r IdentifierRange[T]) MarshalYAML() (any, error) {
	if !r.isRange {
		return fmt.Sprint(r.first), nil
	}
	return rangeWire{Start: fmt.Sprint(r.first), End: fmt.Sprint(r.last)}, nil
}

func (r IdentifierRange[T]) MarshalJSON() ([]byte, error) { return jsonViaYAML(r) }

func (r *IdentifierRange[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		id, err := parseIdentifierText[T](s)
		if err != nil {
			return err
		}
		*r = SingleIdentifier(id)
		return nil
	}
	var w rangeWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	first, err := parseIdentifierText[T](w.Start)
	if err != nil {
		return err
	}
	last, err := parseIdentifierText[T](w.End)
	if err != nil {
		return err
	}
	*r = NewIdentifierRange(first, last)
	return nil
}

// parseIdentifierText dispatches to the concrete identifier type's
// parser; the Identifier constraint has no parsing method since parsing
// constructs a value rather than transforming one.
func parseIdentifierText[T Identifier[T]](s string) (T, error) {
	var id T
	switch p := any(&id).(type) {
	case *NumericIdentifier:
		v, err := ParseNumericIdentifier(s)
		if err != nil {
			return id, err
		}
		*p = v
	case *ArticleIdentifier:
		v, err := ParseArticleIdentifier(s)
		if err != nil {
			return id, err
		}
		*p = v
	case *HungarianChar:
		v, err := ParseHungarianChar(s)
		if err != nil {
			return id, err
		}
		*p = v
	case *PrefixedAlphabeticIdentifier:
		v, err := ParsePrefixedAlphabeticIdentifier(s)
		if err != nil {
			return id, err
		}
		*p = v
	default:
		return id, fmt.Errorf("no textual parser for identifier type %T", id)
	}
	return id, nil
}
