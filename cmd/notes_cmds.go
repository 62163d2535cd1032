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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/blob42/gsxman/internal/database"
)

var NotesCmds = &cli.Command{
	Name:  "notes",
	Usage: "personal notes attached to profiles",
	Commands: []*cli.Command{
		noteGetCmd,
		noteSetCmd,
		noteRmCmd,
		noteListCmd,
	},
}

var noteGetCmd = &cli.Command{
	Name:      "get",
	Usage:     "print the note of a profile",
	ArgsUsage: "<id|file|icao>",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		s, err := openSession(ctx, managerOpts{notes: true})
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := resolveArg(s, cmd)
		if err != nil {
			return err
		}

		note, err := s.Note(ctx, rec.ID)
		if errors.Is(err, database.ErrNoteNotFound) {
			fmt.Println(faint("no note for"), rec.FileName)
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Println(note.Text)
		return nil
	},
}

var noteSetCmd = &cli.Command{
	Name:      "set",
	Usage:     "attach a note to a profile, an empty text removes it",
	ArgsUsage: "<id|file|icao> <text>...",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		s, err := openSession(ctx, managerOpts{notes: true})
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := resolveArg(s, cmd)
		if err != nil {
			return err
		}

		text := strings.Join(cmd.Args().Tail(), " ")
		return s.SetNote(ctx, rec.ID, text)
	},
}

var noteRmCmd = &cli.Command{
	Name:      "rm",
	Usage:     "remove the note of a profile",
	ArgsUsage: "<id|file|icao>",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		s, err := openSession(ctx, managerOpts{notes: true})
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := resolveArg(s, cmd)
		if err != nil {
			return err
		}
		return s.DeleteNote(ctx, rec.ID)
	},
}

var noteListCmd = &cli.Command{
	Name:    "list",
	Aliases: []string{"ls"},
	Usage:   "list all notes",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		s, err := openSession(ctx, managerOpts{notes: true})
		if err != nil {
			return err
		}
		defer s.Close()

		notes, err := s.Notes(ctx)
		if err != nil {
			return err
		}

		for _, n := range notes {
			name := bold(n.Profile)
			if _, err := s.Resolve(n.Profile); err != nil {
				// the profile was removed outside of gsxman
				name = faint(n.Profile)
			}
			fmt.Printf("%s  %s  %s\n", name, faint(n.ModifiedAt().Format("2006-01-02")), n.Text)
		}
		return nil
	},
}
