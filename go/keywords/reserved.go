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

package keywords

import "fmt"

// The two alias-reservation sets resolve the lookahead ambiguity in
// `FROM table_name alias` and `SELECT expr alias`: when the would-be alias
// has been classified as one of these keywords, the parser must end the
// current construct instead of consuming the token as an alias.
//
// Membership is hand-curated grammar ambiguity data, not derived from the
// keyword list: the sets overlap heavily, but a handful of join-syntax
// keywords (JOIN, INNER, NATURAL, ...) are reserved only in table position
// and FROM/INTO only in column position. The lists in kwlist.yaml are a
// compatibility surface; treat them as authoritative.

var (
	reservedTableAliasSet  map[Keyword]struct{}
	reservedColumnAliasSet map[Keyword]struct{}
)

func init() {
	reservedTableAliasSet = buildReservedSet("table alias", reservedForTableAlias)
	reservedColumnAliasSet = buildReservedSet("column alias", reservedForColumnAlias)
}

// buildReservedSet indexes a curated reservation list, rejecting entries that
// could only come from a broken generation run.
func buildReservedSet(name string, list []Keyword) map[Keyword]struct{} {
	set := make(map[Keyword]struct{}, len(list))
	for _, k := range list {
		if k <= NoKeyword || int(k) > len(keywordSpellings) {
			panic(fmt.Sprintf("keywords: %s reservation set contains undeclared symbol %d", name, int(k)))
		}
		if _, dup := set[k]; dup {
			panic(fmt.Sprintf("keywords: %s reservation set lists %s twice", name, k))
		}
		set[k] = struct{}{}
	}
	return set
}

// IsReservedForTableAlias reports whether k cannot be consumed as an implicit
// table alias. NoKeyword is never reserved: a token that is not a keyword is
// always a valid alias.
func IsReservedForTableAlias(k Keyword) bool {
	_, ok := reservedTableAliasSet[k]
	return ok
}

// IsReservedForColumnAlias reports whether k cannot be consumed as an
// implicit column alias in a select list.
func IsReservedForColumnAlias(k Keyword) bool {
	_, ok := reservedColumnAliasSet[k]
	return ok
}

// ReservedForTableAlias returns the table-alias reservation list in curated
// order. The slice is a copy.
func ReservedForTableAlias() []Keyword {
	out := make([]Keyword, len(reservedForTableAlias))
	copy(out, reservedForTableAlias)
	return out
}

// ReservedForColumnAlias returns the column-alias reservation list in curated
// order. The slice is a copy.
func ReservedForColumnAlias() []Keyword {
	out := make([]Keyword, len(reservedForColumnAlias))
	copy(out, reservedForColumnAlias)
	return out
}
