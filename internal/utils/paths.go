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
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const (
	// GSX keeps its airport profiles under the roaming app data directory
	GSXProfileSubDir = "virtuali/GSX/MSFS"
	AppDirName       = "gsxman"
)

// ExpandPath expands a path with environment variables and tilde.
func ExpandPath(paths ...string) (string, error) {
	var homedir string
	var err error

	path := os.ExpandEnv(filepath.Join(paths...))
	if path == "" {
		return "", errors.New("empty path")
	}

	if path[0] == '~' {
		if homedir, err = os.UserHomeDir(); err != nil {
			return "", err
		}
		path = filepath.Join(homedir, strings.TrimPrefix(path[1:], string(filepath.Separator)))
	}
	return filepath.Clean(path), nil
}

// DefaultProfileDir returns the directory where GSX looks for airport profiles.
func DefaultProfileDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, filepath.FromSlash(GSXProfileSubDir))
}

// GetDataDir returns the gsxman data directory ($XDG_DATA_HOME/gsxman)
func GetDataDir() (string, error) {
	if dataDir := os.Getenv("XDG_DATA_HOME"); dataDir != "" {
		return filepath.Join(dataDir, AppDirName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "share", AppDirName), nil
}
