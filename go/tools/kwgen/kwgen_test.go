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

package kwgen

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleList = `
keywords:
  - SELECT
  - FROM
  - name: END_EXEC
    spelling: END-EXEC
  - JOIN
  - END

reserved_for_table_alias:
  - SELECT
  - JOIN
  - END

reserved_for_column_alias:
  - SELECT
  - FROM
  - END
`

// TestParse tests decoding and normalization of the YAML source of truth.
func TestParse(t *testing.T) {
	spec, err := Parse([]byte(sampleList))
	require.NoError(t, err)

	// Keywords come back sorted by spelling, not file order. The hyphen in
	// END-EXEC sorts before the letters of the plain keywords.
	var spellings []symbolName
	for _, e := range spec.Keywords {
		spellings = append(spellings, e.Spelling)
	}
	assert.Equal(t, []symbolName{"END", "END-EXEC", "FROM", "JOIN", "SELECT"}, spellings)

	assert.Equal(t, Entry{Name: "END_EXEC", Spelling: "END-EXEC"}, spec.Keywords[1])
	assert.Equal(t, []symbolName{"SELECT", "JOIN", "END"}, spec.ReservedForTableAlias)
	assert.Equal(t, []symbolName{"SELECT", "FROM", "END"}, spec.ReservedForColumnAlias)
}

// TestParseYAMLSpecialNames makes sure keyword names that double as YAML
// booleans (ON, NO, TRUE, FALSE) survive as literal names, and that NULL
// works in its quoted form. ON sits in the table-alias reservation list, so
// this is not hypothetical.
func TestParseYAMLSpecialNames(t *testing.T) {
	spec, err := Parse([]byte("keywords: [ON, NO, TRUE, FALSE, \"NULL\"]\nreserved_for_table_alias: [ON]\n"))
	require.NoError(t, err)

	var names []symbolName
	for _, e := range spec.Keywords {
		names = append(names, e.Name)
	}
	assert.Equal(t, []symbolName{"FALSE", "NO", "NULL", "ON", "TRUE"}, names)
	assert.Equal(t, []symbolName{"ON"}, spec.ReservedForTableAlias)
}

// TestParseNullEntryRejected guards against YAML null resolution eating a
// keyword. An unquoted NULL resolves to !!null, for which yaml.v3 skips
// custom unmarshalers entirely, so without an explicit check the entry would
// silently drop out of the generated tables instead of failing.
func TestParseNullEntryRejected(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "bare_null_keyword",
			input: "keywords: [SELECT, NULL]\n",
		},
		{
			name:  "tilde_keyword",
			input: "keywords: [SELECT, ~]\n",
		},
		{
			name:  "bare_null_reserved",
			input: "keywords: [SELECT, \"NULL\"]\nreserved_for_table_alias: [NULL]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), `quote it as "NULL"`)
		})
	}
}

// TestParseErrors tests rejection of the data defects that would corrupt the
// generated tables.
func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "empty_document",
			input:   "keywords: []\n",
			wantErr: "keyword list is empty",
		},
		{
			name:    "duplicate_name",
			input:   "keywords: [SELECT, SELECT]\n",
			wantErr: "declared twice",
		},
		{
			name: "duplicate_spelling",
			input: `
keywords:
  - SELECT
  - name: SELECT_ALT
    spelling: SELECT
`,
			wantErr: `spelling "SELECT" declared for both`,
		},
		{
			name:    "lowercase_name",
			input:   "keywords: [select]\n",
			wantErr: "not an uppercase Go identifier",
		},
		{
			name:    "hyphen_in_name",
			input:   "keywords: [END-EXEC]\n",
			wantErr: "not an uppercase Go identifier",
		},
		{
			name: "lowercase_spelling",
			input: `
keywords:
  - name: SELECT
    spelling: select
`,
			wantErr: "not uppercase",
		},
		{
			name: "empty_spelling_mapping_without_name",
			input: `
keywords:
  - spelling: ""
`,
			wantErr: "not an uppercase Go identifier",
		},
		{
			name:    "reserved_undeclared",
			input:   "keywords: [SELECT]\nreserved_for_table_alias: [JOIN]\n",
			wantErr: "references undeclared keyword JOIN",
		},
		{
			name:    "reserved_duplicate",
			input:   "keywords: [SELECT]\nreserved_for_column_alias: [SELECT, SELECT]\n",
			wantErr: "lists SELECT twice",
		},
		{
			name:    "entry_is_a_sequence",
			input:   "keywords: [[SELECT]]\n",
			wantErr: "must be a name or a name/spelling mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestGenerate checks the emitted source against the structural properties
// the keywords package depends on.
func TestGenerate(t *testing.T) {
	spec, err := Parse([]byte(sampleList))
	require.NoError(t, err)

	src, err := Generate(spec)
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "// Code generated by kwgen from kwlist.yaml. DO NOT EDIT.")
	assert.Contains(t, out, "package keywords")
	assert.Contains(t, out, "NoKeyword Keyword = iota")

	// Constants in spelling order: END before END_EXEC before FROM.
	assert.Less(t, strings.Index(out, "\tEND\n"), strings.Index(out, "\tEND_EXEC\n"))
	assert.Less(t, strings.Index(out, "\tEND_EXEC\n"), strings.Index(out, "\tFROM\n"))

	// The alternate spelling lands in the string table, not the const block.
	assert.Contains(t, out, "\t\"END-EXEC\",")
	assert.NotContains(t, out, "\t\"END_EXEC\",")

	// Reserved lists keep curated order.
	assert.Contains(t, out, "var reservedForTableAlias = []Keyword{\n\tSELECT,\n\tJOIN,\n\tEND,\n}")
	assert.Contains(t, out, "var reservedForColumnAlias = []Keyword{\n\tSELECT,\n\tFROM,\n\tEND,\n}")

	// Deterministic output.
	again, err := Generate(spec)
	require.NoError(t, err)
	assert.Equal(t, src, again)
}

// TestWriteAndVerify tests the write/verify cycle on an in-memory filesystem.
func TestWriteAndVerify(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "kwlist.yaml", []byte(sampleList), 0o644))

	spec, err := Load(fs, "kwlist.yaml")
	require.NoError(t, err)

	// Verify before generation: file missing.
	err = VerifyFile(fs, spec, "keyword_gen.go")
	require.Error(t, err)

	require.NoError(t, WriteFile(fs, spec, "keyword_gen.go"))
	require.NoError(t, VerifyFile(fs, spec, "keyword_gen.go"))

	// Any drift in the committed file must be reported as stale.
	require.NoError(t, afero.WriteFile(fs, "keyword_gen.go", []byte("package keywords\n"), 0o644))
	err = VerifyFile(fs, spec, "keyword_gen.go")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stale")
}

// TestLoadMissingFile tests the error path for an absent source file.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading keyword list")
}
