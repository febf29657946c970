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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAliasReservation tests membership in the two disambiguation sets,
// including the asymmetric entries.
func TestAliasReservation(t *testing.T) {
	tests := []struct {
		name        string
		keyword     Keyword
		tableAlias  bool
		columnAlias bool
	}{
		// Reserved in both positions.
		{"select", SELECT, true, true},
		{"with", WITH, true, true},
		{"where", WHERE, true, true},
		{"order", ORDER, true, true},
		{"limit", LIMIT, true, true},
		{"union", UNION, true, true},
		{"end", END, true, true},
		{"cluster", CLUSTER, true, true},
		{"distribute", DISTRIBUTE, true, true},

		// Reserved only in table position (join syntax).
		{"join", JOIN, true, false},
		{"inner", INNER, true, false},
		{"cross", CROSS, true, false},
		{"full", FULL, true, false},
		{"left", LEFT, true, false},
		{"right", RIGHT, true, false},
		{"natural", NATURAL, true, false},
		{"using", USING, true, false},
		{"on", ON, true, false},
		{"outer", OUTER, true, false},
		{"set", SET, true, false},
		{"qualify", QUALIFY, true, false},
		{"window", WINDOW, true, false},
		{"for", FOR, true, false},
		{"partition", PARTITION, true, false},
		{"pivot", PIVOT, true, false},
		{"unpivot", UNPIVOT, true, false},

		// Reserved only in column position.
		{"from", FROM, false, true},
		{"into", INTO, false, true},

		// Not reserved anywhere: plain keywords and the sentinel.
		{"table", TABLE, false, false},
		{"as", AS, false, false},
		{"insert", INSERT, false, false},
		{"sentinel", NoKeyword, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.tableAlias, IsReservedForTableAlias(tt.keyword),
				"table alias reservation mismatch for %s", tt.keyword)
			assert.Equal(t, tt.columnAlias, IsReservedForColumnAlias(tt.keyword),
				"column alias reservation mismatch for %s", tt.keyword)
		})
	}
}

// TestReservedSetContents pins the exact membership lists. These are a
// compatibility surface for consuming parsers, so any change here must be a
// deliberate grammar decision, not a regeneration side effect.
func TestReservedSetContents(t *testing.T) {
	table := ReservedForTableAlias()
	column := ReservedForColumnAlias()

	assert.Len(t, table, 38)
	assert.Len(t, column, 23)

	for _, k := range table {
		assert.True(t, IsReservedForTableAlias(k))
		assert.NotEqual(t, NoKeyword, k, "sentinel in table-alias set")
		require.NotEmpty(t, k.String(), "table-alias set references undeclared symbol %d", int(k))
	}
	for _, k := range column {
		assert.True(t, IsReservedForColumnAlias(k))
		assert.NotEqual(t, NoKeyword, k, "sentinel in column-alias set")
		require.NotEmpty(t, k.String(), "column-alias set references undeclared symbol %d", int(k))
	}

	// The overlap is the clause-starting keywords reserved in both positions.
	both := make(map[Keyword]struct{})
	for _, k := range table {
		if IsReservedForColumnAlias(k) {
			both[k] = struct{}{}
		}
	}
	assert.Len(t, both, 21)
	assert.Contains(t, both, END, "END is reserved in both sets")
}

// TestReservedAccessorsReturnCopies makes sure callers cannot corrupt the
// curated lists.
func TestReservedAccessorsReturnCopies(t *testing.T) {
	table := ReservedForTableAlias()
	require.NotEmpty(t, table)
	first := table[0]

	table[0] = NoKeyword
	assert.Equal(t, first, ReservedForTableAlias()[0])
}

// TestParserScenario exercises the alias decision the way a parser uses it:
// in `SELECT x FROM`, the lookahead FROM must not be swallowed as the alias
// of x, while an unclassified identifier is a fine alias.
func TestParserScenario(t *testing.T) {
	lookahead := Lookup("from")
	assert.True(t, IsReservedForColumnAlias(lookahead), "FROM must end the select list")

	lookahead = Lookup("total")
	assert.False(t, IsReservedForColumnAlias(lookahead), "plain identifiers are valid aliases")

	// `FROM t JOIN ...`: JOIN ends the table factor in table position but
	// would be an acceptable column alias.
	lookahead = Lookup("join")
	assert.True(t, IsReservedForTableAlias(lookahead))
	assert.False(t, IsReservedForColumnAlias(lookahead))
}
