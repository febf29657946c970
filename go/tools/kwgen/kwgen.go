// Copyright 2025 Supabase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package kwgen generates the keyword tables in go/keywords from the
// kwlist.yaml source of truth. The YAML file carries the keyword list (with
// alternate spellings where the SQL spelling is not a valid identifier) and
// the two alias-reservation lists; the generator validates the data, sorts it
// by spelling and emits keyword_gen.go, so adding a keyword is a one-line
// edit followed by a regeneration.
package kwgen

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// symbolName is a keyword name or spelling taken literally from a YAML
// scalar. Plain names like ON, NO, TRUE or NULL resolve as booleans or null
// under YAML rules and would fail to decode into a string, so this type keeps
// the raw scalar text.
type symbolName string

func (n *symbolName) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a keyword name", value.Line)
	}
	*n = symbolName(value.Value)
	return nil
}

// Entry is one keyword declaration from kwlist.yaml.
type Entry struct {
	Name     symbolName `yaml:"name"`
	Spelling symbolName `yaml:"spelling"`
}

// UnmarshalYAML accepts either a bare name scalar, in which case the spelling
// is the name itself, or a name/spelling mapping for alternate spellings.
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		e.Name = symbolName(value.Value)
		e.Spelling = e.Name
		return nil
	case yaml.MappingNode:
		type plain Entry
		var p plain
		if err := value.Decode(&p); err != nil {
			return err
		}
		if p.Spelling == "" {
			p.Spelling = p.Name
		}
		*e = Entry(p)
		return nil
	default:
		return fmt.Errorf("line %d: keyword entry must be a name or a name/spelling mapping", value.Line)
	}
}

// Spec is the parsed and validated kwlist.yaml document. Keywords are held in
// ascending spelling order regardless of their order in the file.
type Spec struct {
	Keywords               []Entry
	ReservedForTableAlias  []symbolName
	ReservedForColumnAlias []symbolName
}

// specDoc is the raw document. The lists are decoded as raw nodes first:
// yaml.v3 never invokes a custom unmarshaler for a !!null scalar, so a bare
// NULL entry decoded straight into []Entry would vanish from the list
// without an error instead of becoming the NULL keyword.
type specDoc struct {
	Keywords               []yaml.Node `yaml:"keywords"`
	ReservedForTableAlias  []yaml.Node `yaml:"reserved_for_table_alias"`
	ReservedForColumnAlias []yaml.Node `yaml:"reserved_for_column_alias"`
}

// checkNotNull rejects entries YAML resolved to null. The keyword universe
// contains a NULL keyword, so this is a live misspelling of `- "NULL"`.
func checkNotNull(node *yaml.Node) error {
	if node.Tag == "!!null" {
		return fmt.Errorf("line %d: null keyword entry; YAML reads a bare NULL as null, quote it as \"NULL\"", node.Line)
	}
	return nil
}

// symbolNameRE matches the Go constant names the generator is allowed to
// emit: exported, uppercase, no clash risk with the hand-written identifiers
// in the keywords package (which are all mixed case).
var symbolNameRE = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// Parse decodes a kwlist.yaml document, validates it and sorts the keyword
// list by spelling.
func Parse(data []byte) (*Spec, error) {
	var doc specDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing keyword list: %w", err)
	}
	if len(doc.Keywords) == 0 {
		return nil, fmt.Errorf("keyword list is empty")
	}

	var spec Spec
	spec.Keywords = make([]Entry, len(doc.Keywords))
	for i := range doc.Keywords {
		if err := checkNotNull(&doc.Keywords[i]); err != nil {
			return nil, err
		}
		if err := spec.Keywords[i].UnmarshalYAML(&doc.Keywords[i]); err != nil {
			return nil, err
		}
	}
	decodeNames := func(section string, nodes []yaml.Node) ([]symbolName, error) {
		out := make([]symbolName, len(nodes))
		for i := range nodes {
			if err := checkNotNull(&nodes[i]); err != nil {
				return nil, fmt.Errorf("%s: %w", section, err)
			}
			if err := out[i].UnmarshalYAML(&nodes[i]); err != nil {
				return nil, fmt.Errorf("%s: %w", section, err)
			}
		}
		return out, nil
	}
	var err error
	if spec.ReservedForTableAlias, err = decodeNames("reserved_for_table_alias", doc.ReservedForTableAlias); err != nil {
		return nil, err
	}
	if spec.ReservedForColumnAlias, err = decodeNames("reserved_for_column_alias", doc.ReservedForColumnAlias); err != nil {
		return nil, err
	}

	names := make(map[symbolName]struct{}, len(spec.Keywords))
	spellings := make(map[symbolName]symbolName, len(spec.Keywords))
	for _, e := range spec.Keywords {
		if !symbolNameRE.MatchString(string(e.Name)) {
			return nil, fmt.Errorf("keyword name %q is not an uppercase Go identifier", e.Name)
		}
		if err := checkSpelling(string(e.Spelling)); err != nil {
			return nil, fmt.Errorf("keyword %s: %w", e.Name, err)
		}
		if _, dup := names[e.Name]; dup {
			return nil, fmt.Errorf("keyword %s declared twice", e.Name)
		}
		names[e.Name] = struct{}{}
		if prev, dup := spellings[e.Spelling]; dup {
			return nil, fmt.Errorf("spelling %q declared for both %s and %s", e.Spelling, prev, e.Name)
		}
		spellings[e.Spelling] = e.Name
	}

	// Declaration order in the generated file must be spelling order; that is
	// what makes the binary search in the keywords package valid.
	sort.Slice(spec.Keywords, func(i, j int) bool {
		return spec.Keywords[i].Spelling < spec.Keywords[j].Spelling
	})

	if err := checkReserved("reserved_for_table_alias", spec.ReservedForTableAlias, names); err != nil {
		return nil, err
	}
	if err := checkReserved("reserved_for_column_alias", spec.ReservedForColumnAlias, names); err != nil {
		return nil, err
	}
	return &spec, nil
}

// checkSpelling enforces the canonical form: non-empty uppercase ASCII. The
// lookup side folds to uppercase ASCII, so anything else could never match.
func checkSpelling(s string) error {
	if s == "" {
		return fmt.Errorf("empty spelling")
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= 'a' && ch <= 'z' {
			return fmt.Errorf("spelling %q is not uppercase", s)
		}
		if ch >= 0x80 {
			return fmt.Errorf("spelling %q is not ASCII", s)
		}
	}
	return nil
}

// checkReserved validates one alias-reservation list: every entry must name a
// declared keyword, and no entry may repeat.
func checkReserved(list string, members []symbolName, names map[symbolName]struct{}) error {
	seen := make(map[symbolName]struct{}, len(members))
	for _, name := range members {
		if _, ok := names[name]; !ok {
			return fmt.Errorf("%s references undeclared keyword %s", list, name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%s lists %s twice", list, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// Load reads and parses a kwlist.yaml file.
func Load(fs afero.Fs, path string) (*Spec, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading keyword list: %w", err)
	}
	return Parse(data)
}

// Generate renders the keyword_gen.go source for the spec. The output is
// gofmt-clean and deterministic for a given spec.
func Generate(spec *Spec) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, spec); err != nil {
		return nil, fmt.Errorf("rendering keyword tables: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile regenerates the keyword tables at path.
func WriteFile(fs afero.Fs, spec *Spec, path string) error {
	src, err := Generate(spec)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fs, path, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// VerifyFile reports an error if the file at path differs from what Generate
// would emit, without writing anything. Used to keep the committed generated
// file honest.
func VerifyFile(fs afero.Fs, spec *Spec, path string) error {
	want, err := Generate(spec)
	if err != nil {
		return err
	}
	got, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("%s is stale; rerun kwgen generate", path)
	}
	return nil
}
