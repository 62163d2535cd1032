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
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/blob42/gsxman/pkg/airports"
)

var (
	// any file GSX may own in its profile directory
	ReGSXArtifact = regexp.MustCompile(`^\w{4}-.*\.(ini|py)$`)

	// airport profiles, the ICAO code is the 4 letter prefix
	ReProfileFile = regexp.MustCompile(`^(?P<icao>\w{4})-.*\.ini$`)
)

// Scanner lists the profiles of one directory.
type Scanner struct {
	// The directory scanned, GSX reads its profiles from there
	Dir string

	Airports *airports.Directory
}

func NewScanner(dir string, ap *airports.Directory) *Scanner {
	return &Scanner{Dir: dir, Airports: ap}
}

// ParseICAO returns the upper case ICAO prefix of a profile file name.
func ParseICAO(fileName string) (string, bool) {
	caps := ReProfileFile.FindStringSubmatch(fileName)
	if caps == nil {
		return "", false
	}
	return strings.ToUpper(caps[ReProfileFile.SubexpIndex("icao")]), true
}

// Scan lists the directory and returns a record for every profile whose
// airport is known. Entries that cannot be used are logged and skipped, an
// error is only returned when the directory itself cannot be read.
//
// The returned order follows the directory listing and carries no meaning.
func (s *Scanner) Scan() ([]*Record, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("listing profile dir: %w", err)
	}

	// regular files, sorted by name as returned by ReadDir
	var files []string
	infos := make(map[string]fs.FileInfo, len(entries))
	for _, e := range entries {
		info, err := s.entryInfo(e)
		if err != nil {
			log.Warn("skipping unreadable entry", "name", e.Name(), "err", err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, e.Name())
		infos[e.Name()] = info
	}

	var records []*Record
	for _, name := range files {
		if !ReGSXArtifact.MatchString(name) {
			log.Info("not a gsx file", "file", name)
			continue
		}

		icao, ok := ParseICAO(name)
		if !ok {
			// scripts are only picked up as companions
			continue
		}

		airport, ok := s.Airports.Lookup(icao)
		if !ok {
			log.Warn("airport not found", "icao", icao, "file", name)
			continue
		}

		rec := &Record{
			ID:       RecordID(name),
			FileName: name,
			Path:     filepath.Join(s.Dir, name),
			Airport:  airport,
			Modified: infos[name].ModTime(),
		}
		if script := findCompanion(CompanionName(name), files); script != "" {
			rec.ScriptPath = filepath.Join(s.Dir, script)
		}

		for _, other := range records {
			if other.Airport.ICAO == rec.Airport.ICAO {
				other.Conflict = true
				rec.Conflict = true
			}
		}

		records = append(records, rec)
	}

	log.Debugf("found %d profiles in %s", len(records), s.Dir)
	return records, nil
}

// entryInfo follows symlinks so linked profiles are treated as files.
func (s *Scanner) entryInfo(e fs.DirEntry) (fs.FileInfo, error) {
	if e.Type()&fs.ModeSymlink != 0 {
		return os.Stat(filepath.Join(s.Dir, e.Name()))
	}
	return e.Info()
}

// findCompanion returns the exact, case sensitive, match of want in files.
// files is sorted so the lexicographically first match wins.
func findCompanion(want string, files []string) string {
	for _, f := range files {
		if f == want {
			return f
		}
	}
	return ""
}
