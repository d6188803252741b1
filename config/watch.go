// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDelay is how long [Watch] waits after the last change to the
// config file before reloading it.
var WatchDelay = 50 * time.Millisecond

// Watch starts watching the given config file for changes. Once the file
// has been written or re-created and then left alone for [WatchDelay],
// load is called and its result sent on out. An empty file is not loaded,
// since writers truncate the file before writing the new contents.
// Load errors are logged and skipped. Watching stops when ctx is done.
// The directory of the file is watched, so that editors that replace the
// file on save are handled.
func Watch(ctx context.Context, file string, load func() (*Config, error), out chan<- *Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	file = filepath.Clean(file)
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		watcher.Close()
		return err
	}
	go func() {
		defer watcher.Close()
		delay := time.NewTimer(WatchDelay)
		delay.Stop()
		defer delay.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != file || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				delay.Reset(WatchDelay)
			case <-delay.C:
				if st, err := os.Stat(file); err == nil && st.Size() == 0 {
					continue
				}
				cfg, err := load()
				if err != nil {
					slog.Error("error reloading config file", "file", file, "err", err)
					continue
				}
				slog.Info("reloaded config file", "file", file)
				select {
				case out <- cfg:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("config file watcher error: " + err.Error())
			}
		}
	}()
	return nil
}

// WatchFile starts watching [Flags.File] with [Watch], loading it on top of
// base with the command line overrides applied. It does nothing if the
// watch flag was not given or there is no config file.
func (fl *Flags) WatchFile(ctx context.Context, base *Config, out chan<- *Config) error {
	if !fl.Watch || fl.File == "" {
		return nil
	}
	return Watch(ctx, fl.File, func() (*Config, error) { return fl.Load(base) }, out)
}
