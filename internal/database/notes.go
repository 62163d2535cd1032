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

package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

var ErrNoteNotFound = errors.New("note not found")

// Note is free text attached by the user to a profile file.
type Note struct {
	Profile  string `db:"profile"`
	Text     string `db:"text"`
	Modified int64  `db:"modified"`
}

func (n *Note) ModifiedAt() time.Time {
	return time.Unix(n.Modified, 0)
}

const (
	qGetNote    = `SELECT profile, text, modified FROM notes WHERE profile = ?`
	qListNotes  = `SELECT profile, text, modified FROM notes ORDER BY profile`
	qDeleteNote = `DELETE FROM notes WHERE profile = ?`
	qUpsertNote = `
	INSERT INTO notes (profile, text, modified) VALUES (?, ?, ?)
		ON CONFLICT(profile) DO UPDATE SET
			text = excluded.text,
			modified = excluded.modified`
)

func (db *DB) GetNote(ctx context.Context, profile string) (*Note, error) {
	var note Note
	err := db.Handle.GetContext(ctx, &note, qGetNote, profile)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, DBError{DBName: db.Name, Err: err}
	}
	return &note, nil
}

// SetNote stores text for profile. Blank text removes the note.
func (db *DB) SetNote(ctx context.Context, profile, text string) error {
	if strings.TrimSpace(text) == "" {
		return db.DeleteNote(ctx, profile)
	}

	_, err := db.Handle.ExecContext(ctx, qUpsertNote, profile, text, time.Now().Unix())
	if err != nil {
		return DBError{DBName: db.Name, Err: err}
	}
	return nil
}

// DeleteNote removes the note of profile, a missing note is not an error.
func (db *DB) DeleteNote(ctx context.Context, profile string) error {
	if _, err := db.Handle.ExecContext(ctx, qDeleteNote, profile); err != nil {
		return DBError{DBName: db.Name, Err: err}
	}
	return nil
}

func (db *DB) Notes(ctx context.Context) ([]*Note, error) {
	var notes []*Note
	if err := db.Handle.SelectContext(ctx, &notes, qListNotes); err != nil {
		return nil, DBError{DBName: db.Name, Err: err}
	}
	return notes, nil
}
