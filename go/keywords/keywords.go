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

// Package keywords defines the closed universe of SQL keyword spellings and
// classifies identifier-shaped lexemes against it.
//
// A tokenizer calls Lookup on every identifier-like lexeme; a hit re-tags the
// token with the matching Keyword, a miss leaves it a plain identifier. A
// parser about to accept a bare identifier as an implicit alias consults
// IsReservedForTableAlias or IsReservedForColumnAlias on the classified
// lookahead token to decide whether the token instead starts the next clause.
//
// Membership in this universe does not reserve a spelling globally: a parser
// may still accept a keyword spelling as an identifier wherever its grammar
// allows it. All tables are built during package initialization and are
// read-only afterwards, so every function here is safe for unbounded
// concurrent callers.
package keywords

import (
	"fmt"
	"sort"
)

//go:generate go run ../cmd/kwgen generate --kwlist kwlist.yaml --out keyword_gen.go

// Keyword identifies one recognized SQL keyword spelling. The zero value
// NoKeyword means "not a keyword". Keywords are comparable and totally
// ordered by their canonical spelling.
//
// The numeric values are assigned positionally by the generator and shift
// whenever a keyword is added, so they are not a stable external encoding.
// Anything that persists a Keyword must round-trip through the spelling:
// String on the way out, Lookup on the way back in.
type Keyword int

// maxSpellingLen is the length of the longest canonical spelling, computed
// during init. Lookup uses it to reject over-long identifiers before folding.
var maxSpellingLen int

func init() {
	if len(keywordSpellings) == 0 {
		panic("keywords: empty spelling table")
	}
	for i, s := range keywordSpellings {
		if i > 0 && keywordSpellings[i-1] >= s {
			panic(fmt.Sprintf("keywords: spelling table not strictly ascending at %q (index %d)", s, i))
		}
		if len(s) > maxSpellingLen {
			maxSpellingLen = len(s)
		}
	}
}

// String returns the canonical uppercase spelling of k, or the empty string
// for NoKeyword and out-of-range values.
func (k Keyword) String() string {
	if k <= NoKeyword || int(k) > len(keywordSpellings) {
		return ""
	}
	return keywordSpellings[k-1]
}

// All returns every declared keyword in ascending spelling order. The slice
// is freshly allocated on each call; callers may reorder or truncate it
// without affecting the shared tables.
func All() []Keyword {
	all := make([]Keyword, len(keywordSpellings))
	for i := range all {
		all[i] = Keyword(i + 1)
	}
	return all
}

// Count returns the number of declared keywords, excluding NoKeyword.
func Count() int {
	return len(keywordSpellings)
}

// Lookup classifies an identifier-shaped lexeme. It folds text to uppercase
// (ASCII only, matching how the spelling table is cased) and binary-searches
// the sorted spelling table. Exact matches only: no prefix or fuzzy matching.
// Returns NoKeyword when text matches no keyword, including for empty input.
func Lookup(text string) Keyword {
	k, _ := LookupOK(text)
	return k
}

// LookupOK is Lookup with an explicit hit indicator, for callers that need to
// distinguish "not a keyword" without comparing against the sentinel.
func LookupOK(text string) (Keyword, bool) {
	// Keywords are short, so over-long identifiers can skip folding and
	// searching entirely.
	if len(text) == 0 || len(text) > maxSpellingLen {
		return NoKeyword, false
	}

	upper := foldUpperASCII(text)
	i := sort.SearchStrings(keywordSpellings, upper)
	if i < len(keywordSpellings) && keywordSpellings[i] == upper {
		return Keyword(i + 1), true
	}
	return NoKeyword, false
}

// IsKeyword reports whether text spells a recognized keyword, under the same
// case folding as Lookup.
func IsKeyword(text string) bool {
	_, ok := LookupOK(text)
	return ok
}

// foldUpperASCII performs ASCII-only uppercase folding, per SQL99. Multibyte
// and non-letter bytes pass through untouched, which is correct here because
// every canonical spelling is ASCII: a lexeme containing such bytes can only
// miss.
func foldUpperASCII(s string) string {
	// Fast path: identifiers in real SQL are usually already one case, so
	// avoid allocating when there is nothing to fold.
	hasLower := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			hasLower = true
			break
		}
	}
	if !hasLower {
		return s
	}

	result := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		result[i] = ch
	}
	return string(result)
}
