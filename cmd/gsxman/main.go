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

// Main command line entry point for gsxman
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/blob42/gsxman/cmd"
	"github.com/blob42/gsxman/pkg/build"
	"github.com/blob42/gsxman/pkg/config"
	"github.com/blob42/gsxman/pkg/logging"
)

var log = logging.GetLogger("MAIN")

const logFileMaxSizeMB = 5

func main() {
	app := cli.Command{}

	app.Name = "gsxman"
	app.Usage = "manage GSX airport profiles: list, inspect, import and remove them"
	app.Version = build.Version()
	app.Suggest = true
	app.EnableShellCompletion = true
	app.ExitErrHandler = func(ctx context.Context, cli *cli.Command, err error) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
	}

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Value:       config.DefaultConfPath(),
			Usage:       "config `path`",
			DefaultText: "~/.config/gsxman/config.toml",
			Category:    "_",
		},

		logging.DebugFlag,

		&cli.BoolFlag{
			Name:     "silent",
			Aliases:  []string{"S"},
			Category: "_",
			Usage:    "disable all log output",
			Action: func(_ context.Context, _ *cli.Command, val bool) error {
				if val {
					logging.SilentMode = true
					logging.SetLogLevel(logging.Silent)
				}
				return nil
			},
		},

		&cli.StringFlag{
			Name:     "log-file",
			Category: "_",
			Usage:    "write logs to a size rotated `file` instead of stderr",
		},
	}

	flags = append(flags, config.SetupGlobalFlags()...)
	app.Flags = append(app.Flags, flags...)

	app.Before = func(ctx context.Context, c *cli.Command) (context.Context, error) {
		// 1. load the file config
		// 2. cli flags override the file values
		// 3. config hooks run once everything is loaded
		if err := config.Init(c.String("config")); err != nil {
			return ctx, err
		}
		config.ApplyGlobalFlags(c)

		if path := c.String("log-file"); path != "" {
			logging.SetLogFile(path, logFileMaxSizeMB)
		}

		if err := config.RunConfHooks(ctx, c); err != nil {
			return ctx, err
		}

		return ctx, nil
	}

	app.Commands = cmd.Commands()

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
