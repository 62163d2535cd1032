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

// Package cmd holds the gsxman cli commands.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/blob42/gsxman/internal/database"
	"github.com/blob42/gsxman/internal/utils"
	"github.com/blob42/gsxman/pkg/config"
	"github.com/blob42/gsxman/pkg/importer"
	"github.com/blob42/gsxman/pkg/logging"
	"github.com/blob42/gsxman/pkg/manager"
	"github.com/blob42/gsxman/pkg/profiles"
)

var log = logging.GetLogger("CMD")

var (
	red    = color.New(color.FgRed).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	faint  = color.New(color.Faint).SprintFunc()
)

// Commands returns the top level commands.
func Commands() []*cli.Command {
	return []*cli.Command{
		ListCmd,
		ShowCmd,
		ImportCmd,
		DeleteCmd,
		NotesCmds,
		WatchCmd,
		AirportCmd,
		ConfigCmds,
	}
}

type managerOpts struct {
	notes     bool
	chooser   importer.Chooser
	confirmer manager.Confirmer
}

// session is a scanned manager and the resources it holds.
type session struct {
	*manager.Manager
	notes *database.DB
}

func (s *session) Close() {
	if s.notes != nil {
		if err := s.notes.Close(); err != nil {
			log.Error(err)
		}
	}
}

func profileDir() (string, error) {
	dir := config.GetGlobalOption[string](manager.OptProfileDir)
	if dir == "" {
		return "", fmt.Errorf("no profile directory, set --%s", "profile-dir")
	}
	return utils.ExpandPath(dir)
}

// openSession builds a manager from the loaded config and scans the profile
// directory.
func openSession(ctx context.Context, opts managerOpts) (*session, error) {
	dir, err := profileDir()
	if err != nil {
		return nil, err
	}

	s := &session{}
	if opts.notes {
		if s.notes, err = openNotes(ctx); err != nil {
			return nil, err
		}
	}

	s.Manager = manager.New(manager.Options{
		ProfileDir:   dir,
		Chooser:      opts.chooser,
		Confirmer:    opts.confirmer,
		Notes:        s.notes,
		CleanScratch: manager.Config.CleanScratch,
	})

	if _, err = s.ScanProfiles(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func openNotes(ctx context.Context) (*database.DB, error) {
	path := config.GetGlobalOption[string](manager.OptNotesDB)
	if path == "" {
		return nil, manager.ErrNotesDisabled
	}

	path, err := utils.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	return database.Open(ctx, path)
}

// resolveArg resolves the first argument of cmd to a record.
func resolveArg(s *session, cmd *cli.Command) (*profiles.Record, error) {
	if cmd.NArg() < 1 {
		return nil, fmt.Errorf("missing profile: id, file name or ICAO code")
	}
	return s.Resolve(cmd.Args().First())
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
