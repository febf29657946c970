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
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/multigres/sqlkeywords/go/tools/kwgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the keyword tables from kwlist.yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := kwgen.Load(fs, kwlistPath())
		if err != nil {
			return err
		}
		if err := kwgen.WriteFile(fs, spec, outPath()); err != nil {
			return err
		}
		slog.Info("keyword tables regenerated",
			"keywords", len(spec.Keywords),
			"reserved_table_alias", len(spec.ReservedForTableAlias),
			"reserved_column_alias", len(spec.ReservedForColumnAlias),
			"out", outPath())
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the committed keyword tables match kwlist.yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := kwgen.Load(fs, kwlistPath())
		if err != nil {
			return err
		}
		if err := kwgen.VerifyFile(fs, spec, outPath()); err != nil {
			return err
		}
		slog.Info("keyword tables up to date", "out", outPath())
		return nil
	},
}

func init() {
	Root.AddCommand(generateCmd)
	Root.AddCommand(verifyCmd)
}
