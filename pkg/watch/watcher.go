//
// Copyright (c) 2025 Chakib Ben Ziane <contact@blob42.xyz> and [`gsxman` contributors]
// (https://github.com/blob42/gsxman/graphs/contributors).
//
// All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// This file is part of gsxman.
//
// gsxman is free software: you can redistribute it and/or modify it under the terms of
// the GNU Affero General Public License as published by the Free Software Foundation,
// either version 3 of the License, or (at your option) any later version.
//
// gsxman is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR
// PURPOSE.  See the GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License along with
// gsxman.  If not, see <http://www.gnu.org/licenses/>.

// Package watch runs a callback when files of a watched directory change.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/blob42/gsxman/pkg/logging"
)

var log = logging.GetLogger("WATCH")

// Runner is called once a burst of events settled.
type Runner interface {
	Run()
}

type RunnerFunc func()

func (f RunnerFunc) Run() { f() }

// Watch is a filesystem object that can be watched for changes.
type Watch struct {
	Path       string        // Path to watch for events
	EventTypes []fsnotify.Op // events to watch for

	// Filters event base names, nil accepts all
	Match func(name string) bool
}

func (w *Watch) accepts(event fsnotify.Event) bool {
	if filepath.Dir(event.Name) != filepath.Clean(w.Path) {
		return false
	}

	if w.Match != nil && !w.Match(filepath.Base(event.Name)) {
		return false
	}

	for _, op := range w.EventTypes {
		if event.Op.Has(op) {
			return true
		}
	}
	return false
}

// Wrapper around fsnotify watcher
type WatchDescriptor struct {
	ID      string
	W       *fsnotify.Watcher // underlying fsnotify watcher
	Watches []*Watch
}

func NewWatcher(name string, watches ...*Watch) (*WatchDescriptor, error) {
	fswatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watcher := &WatchDescriptor{
		ID:      name,
		W:       fswatcher,
		Watches: watches,
	}

	for _, v := range watches {
		if err = watcher.W.Add(v.Path); err != nil {
			fswatcher.Close()
			return nil, err
		}
		log.Debugf("<%s> watching %s", name, v.Path)
	}

	return watcher, nil
}

func (w *WatchDescriptor) Close() error {
	return w.W.Close()
}

func (w *WatchDescriptor) accepts(event fsnotify.Event) bool {
	for _, watched := range w.Watches {
		if watched.accepts(event) {
			return true
		}
	}
	return false
}

// WatchLoop calls r after matching events, once no new event arrived for
// settle. Two calls are at least interval apart. It returns when ctx is done
// or the watcher is closed.
func WatchLoop(ctx context.Context, w *WatchDescriptor, r Runner, settle, interval time.Duration) error {
	limiter := rate.NewLimiter(rate.Every(interval), 1)

	timer := time.NewTimer(settle)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	log.Debugf("<%s> started watcher", w.ID)
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.W.Events:
			if !ok {
				return nil
			}
			if !w.accepts(event) {
				continue
			}
			log.Debug("event", "op", event.Op, "name", event.Name)
			timer.Reset(settle)
			pending = true

		case <-timer.C:
			if !pending {
				continue
			}
			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
			pending = false
			r.Run()

		case err, ok := <-w.W.Errors:
			if !ok {
				return nil
			}
			if err != nil {
				log.Error(err)
			}
		}
	}
}
