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

// Package command implements the kwgen CLI: maintenance commands for the
// generated keyword tables in go/keywords.
package command

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// fs is the filesystem the commands operate on. Tests swap in a MemMapFs.
var fs afero.Fs = afero.NewOsFs()

// v backs all flag values, so every flag can also be set through the
// environment (KWGEN_KWLIST, KWGEN_OUT, KWGEN_LOG_LEVEL).
var v = viper.New()

// Root is the kwgen root command.
var Root = &cobra.Command{
	Use:   "kwgen",
	Short: "Maintain the generated SQL keyword tables",
	Long: `kwgen regenerates and checks the keyword tables in go/keywords from the
kwlist.yaml source of truth, and offers a lookup mode for poking at the live
classification tables.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(v.GetString("log-level"))
	},
	SilenceUsage: true,
}

func init() {
	Root.PersistentFlags().String("kwlist", "go/keywords/kwlist.yaml", "path to the keyword list source of truth")
	Root.PersistentFlags().String("out", "go/keywords/keyword_gen.go", "path of the generated keyword tables")
	Root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	v.SetEnvPrefix("KWGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	cobra.CheckErr(v.BindPFlags(Root.PersistentFlags()))
}

func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return err
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
	return nil
}

func kwlistPath() string {
	return v.GetString("kwlist")
}

func outPath() string {
	return v.GetString("out")
}
