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
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("MemPath", func(t *testing.T) {
		db := NewDB("cache", "", DBTypeInMemoryDSN)
		assert.Equal(t, "file:cache?mode=memory&cache=shared", db.Path)
	})

	t.Run("FilePath", func(t *testing.T) {
		db := NewDB("file_test", "/tmp/test/testdb.sqlite", DBTypeFileDSN)
		assert.Equal(t, "file:/tmp/test/testdb.sqlite", db.Path)
	})

	t.Run("FileCustomDsn", func(t *testing.T) {
		opts := DsnOptions{
			"foo":  "bar",
			"mode": "rw",
		}
		db := NewDB("file_dsn", "", DBTypeFileDSN, opts)
		assert.Equal(t, "file:file_dsn?foo=bar&mode=rw", db.Path)
	})

	t.Run("AppendOptions", func(t *testing.T) {
		opts := DsnOptions{
			"foo":  "bar",
			"mode": "rw",
		}
		db := NewDB("append_opts", "", DBTypeInMemoryDSN, opts)
		assert.Equal(t, "file:append_opts?mode=memory&cache=shared&foo=bar&mode=rw", db.Path)
	})
}

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenMemory(context.Background(), t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNotes(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	_, err := db.GetNote(ctx, "LSZH-fsdt.ini")
	assert.True(t, errors.Is(err, ErrNoteNotFound))

	require.NoError(t, db.SetNote(ctx, "LSZH-fsdt.ini", "use gate A 51"))
	require.NoError(t, db.SetNote(ctx, "EDDF-aerosoft.ini", "needs update"))

	note, err := db.GetNote(ctx, "LSZH-fsdt.ini")
	require.NoError(t, err)
	assert.Equal(t, "use gate A 51", note.Text)
	assert.False(t, note.ModifiedAt().IsZero())

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, db.SetNote(ctx, "LSZH-fsdt.ini", "use stand E 27"))
		note, err := db.GetNote(ctx, "LSZH-fsdt.ini")
		require.NoError(t, err)
		assert.Equal(t, "use stand E 27", note.Text)
	})

	t.Run("list", func(t *testing.T) {
		notes, err := db.Notes(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "EDDF-aerosoft.ini", notes[0].Profile)
		assert.Equal(t, "LSZH-fsdt.ini", notes[1].Profile)
	})

	t.Run("blank text deletes", func(t *testing.T) {
		require.NoError(t, db.SetNote(ctx, "EDDF-aerosoft.ini", "   "))
		_, err := db.GetNote(ctx, "EDDF-aerosoft.ini")
		assert.True(t, errors.Is(err, ErrNoteNotFound))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, db.DeleteNote(ctx, "LSZH-fsdt.ini"))
		require.NoError(t, db.DeleteNote(ctx, "LSZH-fsdt.ini"))

		notes, err := db.Notes(ctx)
		require.NoError(t, err)
		assert.Empty(t, notes)
	})
}

func TestOpenFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", DBFileName)

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.SetNote(ctx, "LSZH-fsdt.ini", "kept on disk"))
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	note, err := db.GetNote(ctx, "LSZH-fsdt.ini")
	require.NoError(t, err)
	assert.Equal(t, "kept on disk", note.Text)
}
