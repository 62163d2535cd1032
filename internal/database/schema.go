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
	"fmt"
)

// Database schemas used for the creation of new databases
//
// # Schema versions:
// 1: initial version
const CurrentSchemaVersion = 1

const (
	// profile: file name of the profile the note belongs to
	// modified: time.Now().Unix()
	QCreateSchema = `
	CREATE TABLE IF NOT EXISTS notes (
		profile TEXT PRIMARY KEY,
		text TEXT NOT NULL DEFAULT '',
		modified INTEGER DEFAULT (strftime('%s'))
	)`

	QCreateSchemaVersion = `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		)
	`
)

func checkDBVersion(ctx context.Context, db *DB) error {
	var version int
	log.Debug("checking schema version")

	if _, err := db.Handle.ExecContext(ctx, QCreateSchemaVersion); err != nil {
		return DBError{DBName: db.Name, Err: err}
	}

	err := db.Handle.QueryRowContext(ctx, "SELECT version FROM schema_version").Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("unversioned schema detected")
		if _, err = db.Handle.ExecContext(ctx,
			"INSERT INTO schema_version (version) VALUES (?)", CurrentSchemaVersion); err != nil {
			return DBError{DBName: db.Name, Err: err}
		}
		version = CurrentSchemaVersion
	} else if err != nil {
		return DBError{DBName: db.Name, Err: err}
	}

	if version > CurrentSchemaVersion {
		return fmt.Errorf("unrecognized db version %d: current=%d", version, CurrentSchemaVersion)
	}

	log.Debug("schema", "version", version)
	return nil
}

func (db *DB) InitSchema(ctx context.Context) error {
	tx, err := db.Handle.BeginTxx(ctx, nil)
	if err != nil {
		return DBError{DBName: db.Name, Err: err}
	}

	if _, err = tx.ExecContext(ctx, QCreateSchema); err != nil {
		tx.Rollback()
		return DBError{DBName: db.Name, Err: err}
	}

	if err = tx.Commit(); err != nil {
		return DBError{DBName: db.Name, Err: err}
	}

	if err = checkDBVersion(ctx, db); err != nil {
		return fmt.Errorf("checking schema version: %w", err)
	}

	log.Debugf("<%s> initialized", db.Name)
	return nil
}
