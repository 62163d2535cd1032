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

// Package database stores user data that does not belong in the profile files
// in a sqlite database.
package database

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/blob42/gsxman/internal/utils"
	"github.com/blob42/gsxman/pkg/logging"
)

var log = logging.GetLogger("DB")

const (
	DBFileName = "gsxman.db"
	DBName     = "gsxman_db"

	DBTypeFileDSN     = "file:%s"
	DBTypeInMemoryDSN = "file:%s?mode=memory&cache=shared"

	driverName = "sqlite3"
)

type DsnOptions map[string]string

type DBError struct {
	// Database name
	DBName string

	Err error
}

func (e DBError) Error() string {
	return fmt.Sprintf("<%s>: %s", e.DBName, e.Err)
}

func (e DBError) Unwrap() error {
	return e.Err
}

type DB struct {
	Name   string
	Path   string
	Handle *sqlx.DB
}

// NewDB prepares a database handle. path is used in place of the name when
// given. Options are appended to the DSN in key order.
func NewDB(name string, path string, format string, opts ...DsnOptions) *DB {
	target := name
	if path != "" {
		target = path
	}
	dsn := fmt.Sprintf(format, target)

	for _, o := range opts {
		if len(o) == 0 {
			continue
		}

		keys := make([]string, 0, len(o))
		for k := range o {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var params []string
		for _, k := range keys {
			params = append(params, k+"="+o[k])
		}

		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + strings.Join(params, "&")
	}

	return &DB{Name: name, Path: dsn}
}

// Init opens the database and creates the schema.
func (db *DB) Init(ctx context.Context) (*DB, error) {
	var err error

	db.Handle, err = sqlx.Open(driverName, db.Path)
	if err != nil {
		return nil, DBError{DBName: db.Name, Err: err}
	}

	// single writer, keeps in memory databases alive between queries
	db.Handle.SetMaxOpenConns(1)

	if err = db.Handle.PingContext(ctx); err != nil {
		return nil, DBError{DBName: db.Name, Err: err}
	}

	if err = db.InitSchema(ctx); err != nil {
		return nil, err
	}

	log.Debugf("<%s> opened at %s", db.Name, db.Path)
	return db, nil
}

func (db *DB) Close() error {
	if db.Handle == nil {
		return nil
	}
	log.Debugf("closing <%s>", db.Name)
	return db.Handle.Close()
}

// DefaultDBPath returns the notes database location under the data dir.
func DefaultDBPath() (string, error) {
	dir, err := utils.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DBFileName), nil
}

// Open opens, and creates if needed, the database file at path.
func Open(ctx context.Context, path string) (*DB, error) {
	if err := utils.MkDir(filepath.Dir(path)); err != nil {
		return nil, err
	}
	return NewDB(DBName, path, DBTypeFileDSN).Init(ctx)
}

// OpenMemory opens a private in memory database called name.
func OpenMemory(ctx context.Context, name string) (*DB, error) {
	return NewDB(name, "", DBTypeInMemoryDSN).Init(ctx)
}
