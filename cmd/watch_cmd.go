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

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v3"

	"github.com/blob42/gsxman/pkg/profiles"
	"github.com/blob42/gsxman/pkg/watch"
)

var WatchCmd = &cli.Command{
	Name:  "watch",
	Usage: "print the profile list each time the profile directory changes",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		s, err := openSession(ctx, managerOpts{})
		if err != nil {
			return err
		}
		defer s.Close()

		wd, err := watch.NewWatcher("profiles", &watch.Watch{
			Path: s.ProfileDir(),
			EventTypes: []fsnotify.Op{
				fsnotify.Create,
				fsnotify.Write,
				fsnotify.Remove,
				fsnotify.Rename,
			},
			Match: profiles.ReGSXArtifact.MatchString,
		})
		if err != nil {
			return err
		}
		defer wd.Close()

		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		printRecords(os.Stdout, s.Catalog().Sorted(), false)
		fmt.Println(faint("watching"), s.ProfileDir())

		rescan := watch.RunnerFunc(func() {
			cat, err := s.ScanProfiles()
			if err != nil {
				log.Error("rescan", "err", err)
				return
			}
			fmt.Printf("\n%s %s\n", faint("rescanned at"), time.Now().Format(time.TimeOnly))
			printRecords(os.Stdout, cat.Sorted(), false)
		})

		return watch.WatchLoop(ctx, wd, rescan, watch.Config.Settle, watch.Config.Throttle)
	},
}
