/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package line

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// IndentedLine serializes as its construction-time inputs, parts plus
// the justified flag; the cached content/bold fields are rebuilt on
// decode by going back through FromParts.

type partWire struct {
	Dx      float64 `yaml:"dx" json:"dx"`
	Content string  `yaml:"content" json:"content"`
	Bold    bool    `yaml:"bold,omitempty" json:"bold,omitempty"`
}

type lineWire struct {
	Parts     []partWire `yaml:"parts,omitempty" json:"parts,omitempty"`
	Justified bool       `yaml:"justified,omitempty" json:"justified,omitempty"`
}

func (l IndentedLine) MarshalYAML() (any, error) {
	w := lineWire{Justified: l.justified}
	for _, p := range l.parts {
		w.Parts = append(w.Parts, partWire{Dx: p.Dx, Content: string(p.Content), Bold: p.Bold})
	}
	return w, nil
}

func (l IndentedLine) MarshalJSON() ([]byte, error) {
	v, err := l.MarshalYAML()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func (l *IndentedLine) UnmarshalYAML(value *yaml.Node) error {
	var w lineWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	if len(w.Parts) == 0 {
		*l = Empty
		return nil
	}
	parts := make([]Part, 0, len(w.Parts))
	for _, p := range w.Parts {
		runes := []rune(p.Content)
		if len(runes) != 1 {
			return fmt.Errorf("line part content %q is not a single character", p.Content)
		}
		parts = append(parts, Part{Dx: p.Dx, Content: runes[0], Bold: p.Bold})
	}
	*l = FromParts(parts, w.Justified)
	return nil
}
