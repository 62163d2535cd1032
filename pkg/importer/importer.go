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

// Package importer installs GSX profiles from zip and rar archives or from a
// loose .ini file into the profile directory.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/blob42/gsxman/internal/utils"
	"github.com/blob42/gsxman/pkg/logging"
	"github.com/blob42/gsxman/pkg/profiles"
)

var log = logging.GetLogger("IMPORT")

const (
	ExtZip = ".zip"
	ExtRar = ".rar"
)

type Importer struct {
	// Destination of imported profiles
	ProfileDir string

	// Asked when an archive holds several candidates. A nil Chooser cancels
	// ambiguous profile imports and skips ambiguous scripts.
	Chooser Chooser
}

func New(profileDir string, chooser Chooser) *Importer {
	return &Importer{ProfileDir: profileDir, Chooser: chooser}
}

// Supported reports whether path can be imported, judging by its extension.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtZip, ExtRar, profiles.IniExt:
		return true
	}
	return false
}

// Import installs the profile found at path. Archives are extracted into a
// new directory next to themselves which is left for the caller to remove.
func (imp *Importer) Import(path string) *Outcome {
	out := &Outcome{Source: path}
	log.Debug("importing", "source", path)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ExtZip:
		return imp.importArchive(path, extractZip, out)
	case ExtRar:
		return imp.importArchive(path, extractRar, out)
	case profiles.IniExt:
		return imp.importDirect(path, out)
	default:
		return out.fail(fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext))
	}
}

func (imp *Importer) importArchive(path string, extract extractor, out *Outcome) *Outcome {
	if _, err := os.Stat(path); err != nil {
		return out.fail(fmt.Errorf("%w: %w", ErrUnreadable, err))
	}

	s, err := newScratch(path)
	if err != nil {
		return out.fail(fmt.Errorf("%w: scratch dir: %w", ErrPlacement, err))
	}
	if err := extract(path, s); err != nil {
		s.discard()
		return out.fail(err)
	}
	s.sort()
	if len(s.profiles) > 0 || len(s.scripts) > 0 {
		out.Scratch = s.dir
	} else {
		s.discard()
	}
	log.Debug("extracted archive", "scratch", s.dir, "profiles", len(s.profiles), "scripts", len(s.scripts))

	if len(s.profiles) == 0 {
		return out.fail(fmt.Errorf("%w: %s", ErrNoIniFound, filepath.Base(path)))
	}

	ini, chosen, err := imp.choose(KindProfile, s.profiles)
	if err != nil {
		return out.fail(err)
	}
	if !chosen {
		return out.cancel()
	}

	script, _, err := imp.choose(KindScript, s.scripts)
	if err != nil {
		return out.fail(err)
	}

	return imp.place(ini, script, out)
}

// importDirect installs a loose profile and the companion script next to it.
func (imp *Importer) importDirect(path string, out *Outcome) *Outcome {
	if ok, err := utils.CheckFileExists(path); !ok {
		if err == nil {
			err = os.ErrNotExist
		}
		return out.fail(fmt.Errorf("%w: %w", ErrUnreadable, err))
	}

	script := filepath.Join(filepath.Dir(path), profiles.CompanionName(path))
	if ok, _ := utils.CheckFileExists(script); !ok {
		script = ""
	}

	return imp.place(path, script, out)
}

// choose selects one candidate. It returns false when there is nothing to
// choose from or no choice was made.
func (imp *Importer) choose(kind Kind, candidates []string) (string, bool, error) {
	switch len(candidates) {
	case 0:
		return "", false, nil
	case 1:
		return candidates[0], true, nil
	}

	if imp.Chooser == nil {
		log.Warn("several candidates and no chooser", "kind", kind, "count", len(candidates))
		return "", false, nil
	}

	choice, ok := imp.Chooser.Choose(kind, candidates)
	if !ok {
		return "", false, nil
	}
	if !slices.Contains(candidates, choice) {
		return "", false, fmt.Errorf("%w: %s %q", ErrInvalidChoice, kind, choice)
	}
	return choice, true, nil
}

// place copies the profile and its script into the profile directory. The
// script is renamed after the profile and installed files are never rolled
// back.
func (imp *Importer) place(ini, script string, out *Outcome) *Outcome {
	if err := utils.MkDir(imp.ProfileDir); err != nil {
		return out.fail(fmt.Errorf("%w: %w", ErrPlacement, err))
	}

	base := filepath.Base(ini)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if _, ok := profiles.ParseICAO(stem + profiles.IniExt); !ok {
		log.Warn("profile name does not start with an airport code", "file", base)
	}

	iniDst := filepath.Join(imp.ProfileDir, stem+profiles.IniExt)
	if err := copyFile(ini, iniDst); err != nil {
		return out.fail(fmt.Errorf("%w: %w", ErrPlacement, err))
	}
	out.Profile = iniDst
	out.Status = Imported

	if script == "" {
		log.Info("imported profile", "profile", iniDst)
		return out
	}

	scriptDst := filepath.Join(imp.ProfileDir, stem+profiles.ScriptExt)
	if name := filepath.Base(script); name != filepath.Base(scriptDst) {
		log.Debug("renaming script", "from", name, "to", filepath.Base(scriptDst))
	}
	if err := copyFile(script, scriptDst); err != nil {
		log.Error("could not place script", "script", script, "err", err)
		out.Errors = append(out.Errors, fmt.Errorf("%w: %w", ErrPlacement, err))
		out.Status = Partial
		return out
	}
	out.Script = scriptDst

	log.Info("imported profile", "profile", iniDst, "script", scriptDst)
	return out
}

// copyFile does nothing when src already is dst.
func copyFile(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return nil
	}
	return utils.CopyFileToDst(src, dst)
}
