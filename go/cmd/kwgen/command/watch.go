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
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/multigres/sqlkeywords/go/tools/kwgen"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the keyword tables whenever kwlist.yaml changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watch(ctx, kwlistPath(), outPath())
	},
}

func init() {
	Root.AddCommand(watchCmd)
}

// watch regenerates out from kwlist on every change until ctx is cancelled.
// A broken edit is logged and skipped, so the loop survives intermediate
// saves of an invalid keyword list.
func watch(ctx context.Context, kwlist, out string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace the file on save,
	// which would silently drop a watch held on the file itself.
	dir := filepath.Dir(kwlist)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	if err := regenerate(kwlist, out); err != nil {
		slog.Error("initial generation failed", "error", err)
	}
	slog.Info("watching keyword list", "kwlist", kwlist)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(kwlist) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := regenerate(kwlist, out); err != nil {
				slog.Error("regeneration failed", "error", err)
				continue
			}
			slog.Info("keyword tables regenerated", "out", out)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "error", err)
		}
	}
}

func regenerate(kwlist, out string) error {
	spec, err := kwgen.Load(fs, kwlist)
	if err != nil {
		return err
	}
	return kwgen.WriteFile(fs, spec, out)
}
