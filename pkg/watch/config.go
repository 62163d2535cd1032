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
	"time"

	"github.com/blob42/gsxman/pkg/config"
)

const ConfigName = "watch"

type WatchConfig struct {
	// wait this long after the last event before rescanning
	Settle time.Duration `toml:"settle"`

	// minimum time between two rescans
	Throttle time.Duration `toml:"throttle"`
}

var Config = &WatchConfig{
	Settle:   500 * time.Millisecond,
	Throttle: 2 * time.Second,
}

func init() {
	config.RegisterConfigurator(ConfigName, config.AsConfigurator(Config))
}
