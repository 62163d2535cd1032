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

package logging

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"
)

var (
	globalLevel  = DefaultLogLevels[Release]
	loggerLevels = make(map[string]int)

	allLevels = []string{"none", "error", "warn", "info", "debug"}
	levels    = map[string]int{
		"none":  Silent,
		"error": 0,
		"warn":  1,
		"info":  2,
		"debug": 3,
	}
)

var DebugFlag = &cli.StringFlag{
	Name:        "debug",
	Aliases:     []string{"D"},
	Usage:       debugHelp,
	DefaultText: "warn",
	Category:    "_",
	Sources:     cli.EnvVars(EnvGsxmanDebug),
	Action: func(_ context.Context, _ *cli.Command, val string) error {
		if SilentMode {
			SetLogLevel(Silent)
			return nil
		}
		return ParseDebugLevels(val)
	},
}

// errors
var (
	ErrUnknownLevel  = errors.New("unknown debug level")
	ErrHelpQuit      = errors.New("help quit")
	ErrParseSubLevel = errors.New("cannot parse unit level")
)

var debugHelp = `logging level for all units {none, error, warn, info, debug} or (-1..3)
	You may also specify <global-level>,<unit>=<level>,<unit2>=<level>,...
	Use 'debug=list' to list available units`

func parseLevel(lvl string) (int, error) {
	if slices.Contains(allLevels, lvl) {
		return levels[lvl], nil
	}

	// numeric levels as used by the env var
	var n int
	if _, err := fmt.Sscanf(lvl, "%d", &n); err == nil && n >= Silent && n <= 3 {
		return n, nil
	}

	return 0, ErrUnknownLevel
}

func parseUnitLvl(sl string) error {
	tokens := strings.Split(sl, "=")
	if len(tokens) != 2 {
		return ErrParseSubLevel
	}
	unit, lvl := tokens[0], tokens[1]

	n, err := parseLevel(lvl)
	if err != nil {
		return fmt.Errorf("%w %s", err, lvl)
	}
	SetUnitLevel(strings.ToUpper(unit), n)

	return nil
}

// ParseDebugLevels parses `<global>[,<unit>=<level>...]` and applies it.
func ParseDebugLevels(val string) error {
	args := strings.Split(val, ",")

	if args[0] == "list" {
		units := listLoggers()
		sort.Strings(units)
		fmt.Printf("available levels: [%s]\n", strings.Join(allLevels, ","))
		fmt.Printf("available units: [%s]\n", strings.Join(units, ","))
		return ErrHelpQuit
	}

	global, err := parseLevel(args[0])
	if err != nil {
		return fmt.Errorf("%w `%s'", err, args[0])
	}
	SetLogLevel(global)

	for _, arg := range args[1:] {
		if err = parseUnitLvl(arg); err != nil {
			return fmt.Errorf("%w `%s'", err, arg)
		}
	}

	return nil
}
