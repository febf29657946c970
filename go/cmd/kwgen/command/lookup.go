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

package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/multigres/sqlkeywords/go/keywords"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup WORD...",
	Short: "Classify words against the live keyword tables",
	Long: `Classifies each word the way a tokenizer would: case-insensitively,
exact matches only. For keywords, also shows in which alias positions the
word is reserved.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, word := range args {
			k, ok := keywords.LookupOK(word)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: identifier\n", word)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: keyword %s (table alias reserved: %t, column alias reserved: %t)\n",
				word, k, keywords.IsReservedForTableAlias(k), keywords.IsReservedForColumnAlias(k))
		}
		return nil
	},
}

func init() {
	Root.AddCommand(lookupCmd)
}
