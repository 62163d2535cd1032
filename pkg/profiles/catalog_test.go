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

package profiles

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blob42/gsxman/pkg/airports"
)

func testRecord(t *testing.T, fileName string) *Record {
	t.Helper()
	icao, ok := ParseICAO(fileName)
	require.True(t, ok)
	ap, ok := airports.Default().Lookup(icao)
	require.True(t, ok)
	return &Record{
		ID:       RecordID(fileName),
		FileName: fileName,
		Path:     "/profiles/" + fileName,
		Airport:  ap,
	}
}

func fileNames(records []*Record) []string {
	var names []string
	for _, r := range records {
		names = append(names, r.FileName)
	}
	return names
}

func TestCatalog(t *testing.T) {
	zrhB := testRecord(t, "LSZH-b.ini")
	fra := testRecord(t, "EDDF-aerosoft.ini")
	zrhA := testRecord(t, "LSZH-a.ini")
	zrhA.Conflict = true
	zrhB.Conflict = true
	gva := testRecord(t, "LSGG-fsdt.ini")

	cat := NewCatalog([]*Record{zrhB, fra, zrhA, gva})
	require.Equal(t, 4, cat.Len())

	t.Run("sorted", func(t *testing.T) {
		assert.Equal(t,
			[]string{"EDDF-aerosoft.ini", "LSGG-fsdt.ini", "LSZH-a.ini", "LSZH-b.ini"},
			fileNames(cat.Sorted()))
		// scan order untouched
		assert.Equal(t, "LSZH-b.ini", cat.Records()[0].FileName)
	})

	t.Run("get", func(t *testing.T) {
		rec, ok := cat.Get(fra.ID)
		require.True(t, ok)
		assert.Same(t, fra, rec)

		_, ok = cat.Get(RecordID("KJFK-none.ini"))
		assert.False(t, ok)
	})

	t.Run("by icao", func(t *testing.T) {
		assert.Equal(t, []string{"LSZH-a.ini", "LSZH-b.ini"}, fileNames(cat.ByICAO("lszh")))
		assert.Empty(t, cat.ByICAO("KJFK"))
	})

	t.Run("conflicts", func(t *testing.T) {
		assert.Equal(t, []string{"LSZH-a.ini", "LSZH-b.ini"}, fileNames(cat.Conflicts()))
	})

	t.Run("filter", func(t *testing.T) {
		assert.Len(t, cat.Filter(""), 4)
		assert.Equal(t, []string{"LSGG-fsdt.ini"}, fileNames(cat.Filter("geneva")))
		assert.Equal(t, []string{"EDDF-aerosoft.ini"}, fileNames(cat.Filter("aerosoft")))
		assert.Equal(t, []string{"LSZH-a.ini", "LSZH-b.ini"}, fileNames(cat.Filter("zurich")))
	})

	t.Run("ids", func(t *testing.T) {
		ids := cat.IDs()
		assert.Len(t, ids, 4)
		assert.Contains(t, ids, gva.ID)
	})

	t.Run("resolve", func(t *testing.T) {
		rec, err := cat.Resolve(fra.ID.String())
		require.NoError(t, err)
		assert.Same(t, fra, rec)

		rec, err = cat.Resolve("LSZH-a.ini")
		require.NoError(t, err)
		assert.Same(t, zrhA, rec)

		rec, err = cat.Resolve("lsgg")
		require.NoError(t, err)
		assert.Same(t, gva, rec)

		_, err = cat.Resolve("LSZH")
		assert.True(t, errors.Is(err, ErrAmbiguousRef))

		_, err = cat.Resolve("KJFK")
		assert.True(t, errors.Is(err, ErrRecordNotFound))

		_, err = cat.Resolve(RecordID("nope.ini").String())
		assert.True(t, errors.Is(err, ErrRecordNotFound))
	})
}
