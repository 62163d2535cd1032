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

package manager

import (
	"github.com/blob42/gsxman/internal/database"
	"github.com/blob42/gsxman/internal/utils"
	"github.com/blob42/gsxman/pkg/config"
)

const (
	OptProfileDir = "profile_dir"
	OptNotesDB    = "notes_db"

	ImportConfigName = "import"
)

type ImportConfig struct {
	// remove the extraction directory of an archive after importing it
	CleanScratch bool `toml:"clean_scratch"`
}

var Config = &ImportConfig{}

func init() {
	config.RegisterGlobalOption(OptProfileDir, utils.DefaultProfileDir())

	notesDB, err := database.DefaultDBPath()
	if err != nil {
		log.Warn("no data dir for the notes database", "err", err)
	}
	config.RegisterGlobalOption(OptNotesDB, notesDB)

	config.RegisterConfigurator(ImportConfigName, config.AsConfigurator(Config))
}
