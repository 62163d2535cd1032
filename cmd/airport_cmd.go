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
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/blob42/gsxman/pkg/airports"
	"github.com/blob42/gsxman/pkg/geo"
)

var AirportCmd = &cli.Command{
	Name:      "airport",
	Usage:     "look up an airport of the reference table",
	ArgsUsage: "<icao>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "near",
			Usage: "find the airport closest to `\"lat lon\"`",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		dir := airports.Default()

		if near := cmd.String("near"); near != "" {
			p, err := geo.ParsePoint(near)
			if err != nil {
				return err
			}
			ap, ok := dir.Nearest(p)
			if !ok {
				return errors.New("empty airport table")
			}
			printAirport(ap)
			fmt.Printf("  %s %.1f km\n", faint("distance"), p.DistanceKm(ap.Location))
			return nil
		}

		if cmd.NArg() < 1 {
			return errors.New("missing ICAO code")
		}

		ap, ok := dir.Lookup(cmd.Args().First())
		if !ok {
			return fmt.Errorf("unknown airport %q", cmd.Args().First())
		}
		printAirport(ap)
		return nil
	},
}

func printAirport(ap airports.Airport) {
	fmt.Printf("%s  %s\n  %s %s\n", green(ap.ICAO), bold(ap.Name), faint("location"), ap.Location)
}
