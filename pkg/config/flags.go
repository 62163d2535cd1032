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

package config

import (
	"sort"

	"github.com/gobuffalo/flect"
	"github.com/urfave/cli/v3"
)

// Setup cli flag for global options
func SetupGlobalFlags() []cli.Flag {
	log.Debugf("setting up global flags")
	flags := []cli.Flag{}

	global := configs[GlobalConfigName].Dump()
	keys := make([]string, 0, len(global))
	for k := range global {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		optName := flect.Dasherize(k)
		log.Debugf("registering global flag %s = %v", optName, global[k])

		switch val := global[k].(type) {
		case string:
			flags = append(flags, &cli.StringFlag{
				Category: "_",
				Name:     optName,
				Value:    val,
			})

		case int:
			flags = append(flags, &cli.IntFlag{
				Category: "_",
				Name:     optName,
				Value:    val,
			})

		case bool:
			flags = append(flags, &cli.BoolFlag{
				Category: "_",
				Name:     optName,
				Value:    val,
			})

		default:
			log.Fatalf("unsupported type for global option %s", optName)
		}
	}

	return flags
}

// ApplyGlobalFlags copies the global flags set on the command line back into
// the global config. Cli flags have the highest priority.
func ApplyGlobalFlags(c *cli.Command) {
	for k, v := range configs[GlobalConfigName].Dump() {
		optName := flect.Dasherize(k)
		if !c.IsSet(optName) {
			continue
		}

		switch v.(type) {
		case string:
			RegisterGlobalOption(k, c.String(optName))
		case int:
			RegisterGlobalOption(k, int(c.Int(optName)))
		case bool:
			RegisterGlobalOption(k, c.Bool(optName))
		}
	}
}
