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

import "text/template"

// fileTemplate renders keyword_gen.go. Keywords arrive already sorted by
// spelling; the reserved lists keep their curated order. The output is kept
// one item per line so it stays gofmt-clean without a formatting pass.
var fileTemplate = template.Must(template.New("keyword_gen").Parse(`// Copyright 2025 Supabase, Inc.
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

// Code generated by kwgen from kwlist.yaml. DO NOT EDIT.

package keywords

// Keyword symbols, one per canonical spelling, declared in ascending spelling
// order. NoKeyword is the sentinel for identifiers that match no keyword.
const (
	NoKeyword Keyword = iota
{{- range .Keywords}}
	{{.Name}}
{{- end}}
)

// keywordSpellings holds the canonical spelling of every keyword in strictly
// ascending order; keywordSpellings[k-1] is the spelling of keyword k. The
// ordering is what makes the binary search in Lookup valid.
var keywordSpellings = []string{
{{- range .Keywords}}
	"{{.Spelling}}",
{{- end}}
}

// reservedForTableAlias lists the keywords that cannot be consumed as an
// implicit table alias, in the curated order from kwlist.yaml.
var reservedForTableAlias = []Keyword{
{{- range .ReservedForTableAlias}}
	{{.}},
{{- end}}
}

// reservedForColumnAlias lists the keywords that cannot be consumed as an
// implicit column alias, in the curated order from kwlist.yaml.
var reservedForColumnAlias = []Keyword{
{{- range .ReservedForColumnAlias}}
	{{.}},
{{- end}}
}
`))
