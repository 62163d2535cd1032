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
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/blob42/gsxman/internal/database"
	"github.com/blob42/gsxman/pkg/importer"
	"github.com/blob42/gsxman/pkg/ini"
	"github.com/blob42/gsxman/pkg/manager"
	"github.com/blob42/gsxman/pkg/profiles"
	"github.com/blob42/gsxman/pkg/tree"
)

var ListCmd = &cli.Command{
	Name:    "list",
	Aliases: []string{"ls"},
	Usage:   "list the installed airport profiles",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "fuzzy filter on ICAO code, airport or file `name`",
		},
		&cli.BoolFlag{
			Name:  "conflicts",
			Usage: "only list airports with several profiles",
		},
		&cli.BoolFlag{
			Name:  "ids",
			Usage: "print profile ids",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		s, err := openSession(ctx, managerOpts{})
		if err != nil {
			return err
		}
		defer s.Close()

		records := s.Catalog().Filter(cmd.String("filter"))
		if cmd.Bool("conflicts") {
			records = onlyConflicts(records)
		}

		printRecords(os.Stdout, records, cmd.Bool("ids"))
		return nil
	},
}

func onlyConflicts(records []*profiles.Record) []*profiles.Record {
	var res []*profiles.Record
	for _, r := range records {
		if r.Conflict {
			res = append(res, r)
		}
	}
	return res
}

func printRecords(w io.Writer, records []*profiles.Record, ids bool) {
	if len(records) == 0 {
		fmt.Fprintln(w, faint("no profiles"))
		return
	}

	for _, r := range records {
		icao := green(r.ICAO())
		if r.Conflict {
			icao = red(r.ICAO())
		}

		line := fmt.Sprintf("%s  %-40.40s  %s", icao, r.Airport.Name, bold(r.FileName))
		if r.HasScript() {
			line += " " + yellow("+py")
		}
		if ids {
			line += "  " + faint(r.ID.String())
		}
		fmt.Fprintln(w, line)
	}
}

var ShowCmd = &cli.Command{
	Name:      "show",
	Usage:     "show the stands of a profile",
	ArgsUsage: "<id|file|icao>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "only show sections matching `text`",
		},
		&cli.BoolFlag{
			Name:  "ini",
			Usage: "print the parsed profile as strict ini",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		s, err := openSession(ctx, managerOpts{})
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := resolveArg(s, cmd)
		if err != nil {
			return err
		}

		if cmd.Bool("ini") {
			doc, err := ini.ParseFile(rec.Path)
			if err != nil {
				return err
			}
			_, err = doc.Export(os.Stdout)
			return err
		}

		body, err := s.Body(rec.ID)
		if err != nil {
			return err
		}

		if text := cmd.String("filter"); text != "" {
			fmt.Print(tree.Sections(rec.FileName, body.FilterSections(text)).String())
			return nil
		}

		fmt.Print(tree.Profile(rec, body, noteText(ctx, rec)).String())
		return nil
	},
}

// noteText returns the note of rec when the notes database is available.
func noteText(ctx context.Context, rec *profiles.Record) string {
	db, err := openNotes(ctx)
	if err != nil {
		log.Debug("notes unavailable", "err", err)
		return ""
	}
	defer db.Close()

	note, err := db.GetNote(ctx, rec.FileName)
	if err != nil {
		if !errors.Is(err, database.ErrNoteNotFound) {
			log.Warn("reading note", "err", err)
		}
		return ""
	}
	return note.Text
}

var ImportCmd = &cli.Command{
	Name:      "import",
	Usage:     "install profiles from zip/rar archives or .ini files",
	ArgsUsage: "<path>...",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		if cmd.NArg() == 0 {
			return errors.New("missing archive or profile path")
		}

		s, err := openSession(ctx, managerOpts{chooser: NewPrompt(os.Stdin, os.Stdout)})
		if err != nil {
			return err
		}
		defer s.Close()

		failed := 0
		for _, path := range cmd.Args().Slice() {
			out := s.Import(path)
			switch out.Status {
			case importer.Imported:
				fmt.Println(green(out.Status), out.Profile)
				if out.Script != "" {
					fmt.Println(green(out.Status), out.Script)
				}
			case importer.Partial:
				fmt.Println(yellow(out.Status), out.String())
			case importer.Cancelled:
				fmt.Println(faint(out.Status), path)
			default:
				failed++
				fmt.Println(red(out.Status), path, out.Err)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d imports failed", failed, cmd.NArg())
		}
		return nil
	},
}

var DeleteCmd = &cli.Command{
	Name:      "delete",
	Aliases:   []string{"rm"},
	Usage:     "remove a profile, its script and its note",
	ArgsUsage: "<id|file|icao>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "do not ask for confirmation",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		var confirmer manager.Confirmer = NewPrompt(os.Stdin, os.Stdout)
		if cmd.Bool("yes") {
			confirmer = manager.ConfirmerFunc(func(*profiles.Record) bool { return true })
		}

		s, err := openSession(ctx, managerOpts{notes: true, confirmer: confirmer})
		if errors.Is(err, manager.ErrNotesDisabled) {
			s, err = openSession(ctx, managerOpts{confirmer: confirmer})
		}
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := resolveArg(s, cmd)
		if err != nil {
			return err
		}

		if !s.Delete(rec.ID) {
			fmt.Println(faint("not deleted"), rec.FileName)
			return nil
		}
		fmt.Println(red("deleted"), rec.FileName)
		return nil
	},
}
