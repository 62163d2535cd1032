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

package importer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/nwaples/rardecode/v2"

	"github.com/blob42/gsxman/internal/utils"
	"github.com/blob42/gsxman/pkg/profiles"
)

const macOSMetaDir = "__MACOSX"

// scratch is the extraction directory of one archive.
type scratch struct {
	dir      string
	profiles []string
	scripts  []string
}

// ScratchDir returns the preferred extraction directory of an archive:
// `<archive-dir>/<archive-stem>`.
func ScratchDir(archive string) string {
	base := filepath.Base(archive)
	return filepath.Join(filepath.Dir(archive), strings.TrimSuffix(base, filepath.Ext(base)))
}

// newScratch creates the extraction directory of an archive. An existing
// directory is never extracted into: when ScratchDir is taken a fresh
// `<archive-stem>-*` sibling is created instead.
func newScratch(archive string) (*scratch, error) {
	dir := ScratchDir(archive)
	err := os.Mkdir(dir, 0o755)
	if errors.Is(err, fs.ErrExist) {
		log.Debug("scratch dir taken", "dir", dir)
		dir, err = os.MkdirTemp(filepath.Dir(archive), filepath.Base(dir)+"-*")
	}
	if err != nil {
		return nil, err
	}
	return &scratch{dir: dir}, nil
}

// discard removes the scratch directory and everything extracted to it.
func (s *scratch) discard() {
	if err := os.RemoveAll(s.dir); err != nil {
		log.Warn("could not remove scratch dir", "dir", s.dir, "err", err)
	}
}

// memberKind classifies an archive member, ok is false for members that are
// not imported.
func memberKind(name string) (Kind, bool) {
	name = path.Clean(strings.ReplaceAll(name, `\`, "/"))
	if strings.HasPrefix(name, macOSMetaDir+"/") || strings.HasPrefix(path.Base(name), "._") {
		return 0, false
	}

	switch strings.ToLower(path.Ext(name)) {
	case profiles.IniExt:
		return KindProfile, true
	case profiles.ScriptExt:
		return KindScript, true
	}
	return 0, false
}

// target returns where the member is written, refusing names escaping the
// scratch directory.
func (s *scratch) target(name string) (string, error) {
	name = strings.ReplaceAll(name, `\`, "/")
	if path.IsAbs(name) || filepath.IsAbs(name) {
		return "", fmt.Errorf("absolute member path %q", name)
	}

	dst := filepath.Join(s.dir, filepath.FromSlash(path.Clean(name)))
	if !strings.HasPrefix(dst, filepath.Clean(s.dir)+string(filepath.Separator)) {
		return "", fmt.Errorf("member path %q escapes %s", name, s.dir)
	}
	return dst, nil
}

// add extracts one member. Members that are not profiles or scripts are
// skipped.
func (s *scratch) add(name string, r io.Reader) error {
	kind, ok := memberKind(name)
	if !ok {
		log.Debug("ignoring archive member", "name", name)
		return nil
	}

	dst, err := s.target(name)
	if err != nil {
		return err
	}

	if err := utils.WriteFileFrom(dst, r); err != nil {
		return err
	}

	switch kind {
	case KindProfile:
		s.profiles = append(s.profiles, dst)
	case KindScript:
		s.scripts = append(s.scripts, dst)
	}
	return nil
}

func (s *scratch) sort() {
	sort.Strings(s.profiles)
	sort.Strings(s.scripts)
}

// extractor writes the profiles and scripts of an archive into s.
type extractor func(archive string, s *scratch) error

func extractZip(archive string, s *scratch) error {
	zr, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if _, ok := memberKind(f.Name); !ok {
			log.Debug("ignoring archive member", "name", f.Name)
			continue
		}

		if err := extractZipFile(f, s); err != nil {
			log.Warn("skipping archive member", "name", f.Name, "err", err)
		}
	}

	return nil
}

func extractZipFile(f *zip.File, s *scratch) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	return s.add(f.Name, rc)
}

func extractRar(archive string, s *scratch) error {
	rr, err := rardecode.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer rr.Close()

	read := 0
	for {
		hdr, err := rr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if read == 0 {
				return fmt.Errorf("%w: %w", ErrUnreadable, err)
			}
			// later members can not be reached past a broken header
			log.Warn("stopping rar extraction", "archive", archive, "err", err)
			break
		}
		read++

		if hdr.IsDir {
			continue
		}
		if err := s.add(hdr.Name, rr); err != nil {
			log.Warn("skipping archive member", "name", hdr.Name, "err", err)
		}
	}

	return nil
}
