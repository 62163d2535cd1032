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

	"github.com/urfave/cli/v3"

	"github.com/blob42/gsxman/pkg/config"
)

var ConfigCmds = &cli.Command{
	Name:  "config",
	Usage: "manage the config file",
	Commands: []*cli.Command{
		cfgInitCmd,
		cfgShowCmd,
		cfgModulesCmd,
	},
}

var cfgInitCmd = &cli.Command{
	Name:  "init",
	Usage: "write a config file with the default options",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "force",
			Usage: "overwrite an existing file",
		},
	},
	Action: func(_ context.Context, cmd *cli.Command) error {
		path := cmd.String("config")
		if exists(path) && !cmd.Bool("force") {
			return fmt.Errorf("%s exists, use --force to overwrite", path)
		}

		if err := config.InitConfigFile(path); err != nil {
			return err
		}
		fmt.Println(green("written"), path)
		return nil
	},
}

var cfgShowCmd = &cli.Command{
	Name:      "show",
	Usage:     "print the current configuration",
	ArgsUsage: "[module]",
	Action: func(_ context.Context, cmd *cli.Command) error {
		if cmd.NArg() == 0 {
			return config.Encode(os.Stdout)
		}

		name := cmd.Args().First()
		mod := config.GetModule(name)
		if mod == nil {
			return fmt.Errorf("unknown config module %q", name)
		}
		for opt, v := range mod.Dump() {
			fmt.Printf("%s = %v\n", bold(opt), v)
		}
		return nil
	},
}

var cfgModulesCmd = &cli.Command{
	Name:  "modules",
	Usage: "list the registered config modules",
	Action: func(_ context.Context, _ *cli.Command) error {
		for _, name := range config.Modules() {
			fmt.Println(name)
		}
		return nil
	},
}
