// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"fillmore-labs.com/refescape/boundfile"
)

// debounce delays a re-run until a burst of file events is over.
const debounce = 100 * time.Millisecond

// watchSet holds the files and directories named on the command line.
type watchSet struct {
	files map[string]struct{}
	roots []string
	dirs  []string
}

// newWatchSet resolves args to absolute paths. Directories are watched with all their
// subdirectories, files through their parent directory.
func newWatchSet(args []string) (*watchSet, error) {
	ws := &watchSet{files: make(map[string]struct{}, len(args))}
	seen := make(map[string]struct{})

	addDir := func(dir string) {
		if _, ok := seen[dir]; !ok {
			seen[dir] = struct{}{}
			ws.dirs = append(ws.dirs, dir)
		}
	}

	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, err
		}

		fi, err := os.Stat(abs)
		if err != nil {
			return nil, err
		}

		if !fi.IsDir() {
			ws.files[abs] = struct{}{}
			addDir(filepath.Dir(abs))

			continue
		}

		ws.roots = append(ws.roots, abs)

		err = filepath.WalkDir(abs, func(name string, de fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if de.IsDir() {
				addDir(name)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return ws, nil
}

// matches reports whether a change to name affects the analyzed files.
func (ws *watchSet) matches(name string) bool {
	if _, ok := ws.files[name]; ok {
		return true
	}

	if !boundfile.IsBoundFile(name) {
		return false
	}

	for _, root := range ws.roots {
		if rel, err := filepath.Rel(root, name); err == nil && filepath.IsLocal(rel) {
			return true
		}
	}

	return false
}

// watch runs check once, then again whenever one of the files named by args changes or a
// bound file is added to or removed from one of the directories, until ctx is done.
// Failures of single runs are logged, not returned.
func watch(ctx context.Context, logger *slog.Logger, args []string, check func() error) error {
	ws, err := newWatchSet(args)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// editors replace files, so the directories are watched
	for _, dir := range ws.dirs {
		if err := w.Add(dir); err != nil {
			return err
		}
	}

	rerun := func() {
		if err := check(); err != nil && !errors.Is(err, errFindings) {
			logger.LogAttrs(ctx, slog.LevelError, "check failed", slog.Any("error", err))
		}
	}

	rerun()

	timer := time.NewTimer(debounce)
	timer.Stop()

	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if ev.Op&relevant == 0 || !ws.matches(ev.Name) {
				continue
			}

			logger.LogAttrs(ctx, slog.LevelInfo, "changed", slog.String("file", ev.Name), slog.String("op", ev.Op.String()))
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			logger.LogAttrs(ctx, slog.LevelWarn, "watch error", slog.Any("error", err))

		case <-timer.C:
			rerun()
		}
	}
}
