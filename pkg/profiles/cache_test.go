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
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyCache(t *testing.T) {
	dir := t.TempDir()
	createProfileFiles(t, dir, "LSZH-a.ini", "EDDF-b.ini")
	records := byName(scanDir(t, dir))
	zrh := records["LSZH-a.ini"]
	fra := records["EDDF-b.ini"]

	cache := NewBodyCache()

	first, err := cache.Get(zrh)
	require.NoError(t, err)
	assert.Equal(t, "tester", first.Creator)
	require.Len(t, first.Sections, 1)

	t.Run("reused while unchanged", func(t *testing.T) {
		again, err := cache.Get(zrh)
		require.NoError(t, err)
		assert.Same(t, first, again)
	})

	t.Run("refreshed on change", func(t *testing.T) {
		content := "[general]\ncreator = someone else\n"
		require.NoError(t, os.WriteFile(zrh.Path, []byte(content), 0o644))

		changed, err := cache.Get(zrh)
		require.NoError(t, err)
		assert.NotSame(t, first, changed)
		assert.Equal(t, "someone else", changed.Creator)
		assert.Empty(t, changed.Sections)
	})

	t.Run("retain", func(t *testing.T) {
		_, err := cache.Get(fra)
		require.NoError(t, err)
		require.Equal(t, 2, cache.Len())

		cache.Retain(map[uuid.UUID]struct{}{fra.ID: {}})
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("forget and reset", func(t *testing.T) {
		cache.Forget(fra.ID)
		assert.Equal(t, 0, cache.Len())

		_, err := cache.Get(fra)
		require.NoError(t, err)
		cache.Reset()
		assert.Equal(t, 0, cache.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		gone := &Record{ID: RecordID("LSGG-gone.ini"), FileName: "LSGG-gone.ini", Path: filepath.Join(dir, "LSGG-gone.ini")}
		_, err := cache.Get(gone)
		assert.Error(t, err)
	})
}
