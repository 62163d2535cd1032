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

// Package build exposes version information set at link time or read from
// the embedded build info.
package build

import (
	"fmt"
	"runtime/debug"
	"strings"
)

var (
	// Describe is the output of `git describe` at build time, set with
	// -ldflags "-X github.com/blob42/gsxman/pkg/build.Describe=..."
	Describe string

	CommitHash string

	// RawTags contains the raw set of build tags, separated by commas.
	RawTags string

	GoVersion string

	// Module version, "(devel)" for local builds
	PackageVersion = "(devel)"
)

const shortHashLen = 8

func shortCommit() string {
	if len(CommitHash) > shortHashLen {
		return CommitHash[:shortHashLen]
	}
	return CommitHash
}

// Version returns the version string shown by `gsxman --version`.
func Version() string {
	if Describe == "" {
		if c := shortCommit(); c != "" && PackageVersion == "(devel)" {
			return fmt.Sprintf("%s commit=%s", PackageVersion, c)
		}
		return PackageVersion
	}

	return fmt.Sprintf("%s commit=%s", Describe, shortCommit())
}

func Tags() []string {
	if len(RawTags) == 0 {
		return []string{}
	}

	return strings.Split(RawTags, ",")
}

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	GoVersion = info.GoVersion
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if CommitHash == "" {
				CommitHash = setting.Value
			}
		case "-tags":
			RawTags = setting.Value
		}
	}
	if info.Main.Version != "" {
		PackageVersion = info.Main.Version
	}
}
