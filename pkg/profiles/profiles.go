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

// Package profiles discovers GSX airport profiles in a directory and extracts
// the stand positions they define.
package profiles

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/uuid"

	"github.com/blob42/gsxman/pkg/airports"
	"github.com/blob42/gsxman/pkg/logging"
)

var log = logging.GetLogger("PROF")

var (
	ErrRecordNotFound = errors.New("profile not found")
	ErrAmbiguousRef   = errors.New("profile reference matches several profiles")
)

// record ids are derived from the file name in this namespace so they stay
// the same across rescans
var recordNamespace = uuid.Must(uuid.FromString("8f0c3a52-6a4e-5d7b-9c1e-2b7f4d9a6e10"))

const (
	IniExt    = ".ini"
	ScriptExt = ".py"
)

// Record is a discovered profile file. The parsed body is not part of the
// record, see BodyCache.
type Record struct {
	// Unique identifier, stable for a given file name
	ID uuid.UUID

	// Base name of the .ini file
	FileName string

	// Absolute path of the .ini file
	Path string

	Airport airports.Airport

	// Path of the companion python script, empty if there is none
	ScriptPath string

	Modified time.Time

	// Set on every record sharing its airport with another record of the
	// same scan
	Conflict bool
}

// RecordID returns the id a profile file called fileName gets.
func RecordID(fileName string) uuid.UUID {
	return uuid.NewV5(recordNamespace, fileName)
}

func (r *Record) HasScript() bool {
	return r.ScriptPath != ""
}

func (r *Record) ICAO() string {
	return r.Airport.ICAO
}

// Stem returns the file name without the .ini extension.
func (r *Record) Stem() string {
	return strings.TrimSuffix(r.FileName, IniExt)
}

// ScriptName returns the file name a companion script of this profile must
// have.
func (r *Record) ScriptName() string {
	return CompanionName(r.FileName)
}

// Files returns the paths of all files belonging to the profile.
func (r *Record) Files() []string {
	files := []string{r.Path}
	if r.HasScript() {
		files = append(files, r.ScriptPath)
	}
	return files
}

// CompanionName derives the companion script name of a profile file:
// `<stem>.ini` -> `<stem>.py`.
func CompanionName(iniName string) string {
	base := filepath.Base(iniName)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ScriptExt
}
