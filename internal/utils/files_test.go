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

package utils

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "LSZH-fsdt.ini")
	require.NoError(t, os.WriteFile(file, []byte("[general]"), 0644))

	ok, err := CheckFileExists(file)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckFileExists(filepath.Join(dir, "missing.ini"))
	assert.NoError(t, err)
	assert.False(t, ok)

	_, err = CheckFileExists(dir)
	assert.Error(t, err, "a directory is not a file")

	ok, err = CheckDirExists(dir)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestCopyFileToDstTruncates(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.ini")
	dst := filepath.Join(dir, "dst.ini")
	require.NoError(t, os.WriteFile(src, []byte("short"), 0644))
	require.NoError(t, os.WriteFile(dst, []byte("a much longer previous content"), 0644))

	require.NoError(t, CopyFileToDst(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "short", string(got))
}

func TestWriteFileFromCreatesParents(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "a", "b", "EDDF-x.py")
	require.NoError(t, WriteFileFrom(dst, strings.NewReader("print()")))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "print()", string(got))
}

type closeErrWriter struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (w *closeErrWriter) Close() error {
	w.closed = true
	return w.closeErr
}

func TestCopyAndClose(t *testing.T) {
	errClose := errors.New("no space left on device")

	t.Run("close error is returned", func(t *testing.T) {
		w := &closeErrWriter{closeErr: errClose}
		err := copyAndClose(w, strings.NewReader("[general]"))
		assert.ErrorIs(t, err, errClose)
		assert.True(t, w.closed)
	})

	t.Run("copy error wins", func(t *testing.T) {
		errRead := errors.New("read failed")
		w := &closeErrWriter{closeErr: errClose}
		err := copyAndClose(w, iotest.ErrReader(errRead))
		assert.ErrorIs(t, err, errRead)
		assert.True(t, w.closed)
	})

	t.Run("ok", func(t *testing.T) {
		w := &closeErrWriter{}
		require.NoError(t, copyAndClose(w, strings.NewReader("[general]")))
		assert.Equal(t, "[general]", w.String())
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/gsx")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "gsx"), got)

	t.Setenv("GSX_TEST_DIR", "/tmp/profiles")
	got, err = ExpandPath("$GSX_TEST_DIR", "MSFS")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/tmp/profiles/MSFS"), got)
}
