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

package watch

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reIni = regexp.MustCompile(`\.ini$`)

func TestWatchAccepts(t *testing.T) {
	w := &Watch{
		Path:       "/profiles/",
		EventTypes: []fsnotify.Op{fsnotify.Create, fsnotify.Remove},
		Match:      reIni.MatchString,
	}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"create ini", fsnotify.Event{Name: "/profiles/LSZH-a.ini", Op: fsnotify.Create}, true},
		{"remove ini", fsnotify.Event{Name: "/profiles/LSZH-a.ini", Op: fsnotify.Remove}, true},
		{"write ini", fsnotify.Event{Name: "/profiles/LSZH-a.ini", Op: fsnotify.Write}, false},
		{"create txt", fsnotify.Event{Name: "/profiles/notes.txt", Op: fsnotify.Create}, false},
		{"other dir", fsnotify.Event{Name: "/elsewhere/LSZH-a.ini", Op: fsnotify.Create}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.accepts(tt.event))
		})
	}
}

func TestWatchLoop(t *testing.T) {
	dir := t.TempDir()

	wd, err := NewWatcher("test", &Watch{
		Path:       dir,
		EventTypes: []fsnotify.Op{fsnotify.Create, fsnotify.Write},
		Match:      reIni.MatchString,
	})
	require.NoError(t, err)
	defer wd.Close()

	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		WatchLoop(ctx, wd, RunnerFunc(func() { runs.Add(1) }), 50*time.Millisecond, 10*time.Millisecond)
	}()

	// a burst of events is coalesced into one run
	for _, name := range []string{"LSZH-a.ini", "LSZH-b.ini", "readme.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("[general]\n"), 0o644))
	}

	require.Eventually(t, func() bool { return runs.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watch loop did not stop")
	}
}
