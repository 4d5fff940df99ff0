/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fixup

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/badicsalex/hunlaw/identifier"
	"github.com/badicsalex/hunlaw/line"
)

// Store holds the on-disk fixup list for one Act, loaded from
// "<baseDir>/<year>/<act-id>.yml".
type Store struct {
	fixups []Fixup
	path   string
}

// DefaultBaseDir is the conventional on-disk root for persisted fixup
// lists.
const DefaultBaseDir = "data/fixups"

// Load reads the fixup list for actID from baseDir, returning an empty
// Store (not an error) if no file exists yet for that Act.
func Load(actID identifier.ActIdentifier, baseDir string) (*Store, error) {
	path := filepath.Join(baseDir, fmt.Sprintf("%d", actID.Year), actID.String()+".yml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Store{path: path}, nil
	}
	if err != nil {
		return nil, err
	}
	var fixups []Fixup
	if err := yaml.Unmarshal(data, &fixups); err != nil {
		return nil, fmt.Errorf("parsing fixup store %s: %w", path, err)
	}
	return &Store{fixups: fixups, path: path}, nil
}

// Add appends a new fixup record to the store, for the (out-of-scope)
// fixup-editor workflow to call after diffing a user's edits.
func (s *Store) Add(f Fixup) {
	s.fixups = append(s.fixups, f)
}

// Fixups returns the store's fixup list.
func (s *Store) Fixups() []Fixup {
	return s.fixups
}

// Save writes the store's fixup list back to its on-disk path,
// creating the year directory as needed.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s.fixups)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Apply applies every fixup in the store, in order, to lines.
func (s *Store) Apply(lines []line.IndentedLine) error {
	return ApplyAll(s.fixups, lines)
}
