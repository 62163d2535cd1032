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

// Package manager ties the profile directory, the importer and the notes
// database together behind the operations a user interface needs.
package manager

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/uuid"

	"github.com/blob42/gsxman/internal/database"
	"github.com/blob42/gsxman/pkg/airports"
	"github.com/blob42/gsxman/pkg/importer"
	"github.com/blob42/gsxman/pkg/logging"
	"github.com/blob42/gsxman/pkg/profiles"
)

var log = logging.GetLogger("MNGR")

var ErrNotesDisabled = errors.New("notes database not configured")

// Confirmer is asked before a profile is deleted.
type Confirmer interface {
	Confirm(rec *profiles.Record) bool
}

type ConfirmerFunc func(rec *profiles.Record) bool

func (f ConfirmerFunc) Confirm(rec *profiles.Record) bool {
	return f(rec)
}

type Options struct {
	ProfileDir string

	// Defaults to the embedded airport table
	Airports *airports.Directory

	Chooser   importer.Chooser
	Confirmer Confirmer

	// Optional, note operations fail with ErrNotesDisabled without it
	Notes *database.DB

	CleanScratch bool
}

type Manager struct {
	scanner  *profiles.Scanner
	importer *importer.Importer
	bodies   *profiles.BodyCache
	catalog  *profiles.Catalog

	confirmer    Confirmer
	notes        *database.DB
	cleanScratch bool
}

func New(opts Options) *Manager {
	ap := opts.Airports
	if ap == nil {
		ap = airports.Default()
	}

	return &Manager{
		scanner:      profiles.NewScanner(opts.ProfileDir, ap),
		importer:     importer.New(opts.ProfileDir, opts.Chooser),
		bodies:       profiles.NewBodyCache(),
		catalog:      profiles.NewCatalog(nil),
		confirmer:    opts.Confirmer,
		notes:        opts.Notes,
		cleanScratch: opts.CleanScratch,
	}
}

func (m *Manager) ProfileDir() string {
	return m.scanner.Dir
}

func (m *Manager) Airports() *airports.Directory {
	return m.scanner.Airports
}

// ScanProfiles rescans the profile directory and replaces the catalog. Bodies
// of records that disappeared are dropped from the cache.
func (m *Manager) ScanProfiles() (*profiles.Catalog, error) {
	records, err := m.scanner.Scan()
	if err != nil {
		return nil, err
	}

	m.catalog = profiles.NewCatalog(records)
	m.bodies.Retain(m.catalog.IDs())
	return m.catalog, nil
}

// Catalog returns the result of the last scan.
func (m *Manager) Catalog() *profiles.Catalog {
	return m.catalog
}

func (m *Manager) Record(id uuid.UUID) (*profiles.Record, bool) {
	return m.catalog.Get(id)
}

// Resolve finds a record of the last scan by id, file name or ICAO code.
func (m *Manager) Resolve(ref string) (*profiles.Record, error) {
	return m.catalog.Resolve(ref)
}

// Body returns the extracted content of a profile, parsing it on first use.
func (m *Manager) Body(id uuid.UUID) (*profiles.Body, error) {
	rec, ok := m.catalog.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", profiles.ErrRecordNotFound, id)
	}
	return m.bodies.Get(rec)
}

// Import installs the profile at path and rescans the profile directory when
// something was placed.
func (m *Manager) Import(path string) *importer.Outcome {
	out := m.importer.Import(path)

	// Scratch is always a directory created by this import.
	if m.cleanScratch && out.Scratch != "" {
		if err := os.RemoveAll(out.Scratch); err != nil {
			log.Warn("could not remove scratch dir", "dir", out.Scratch, "err", err)
		} else {
			log.Debug("removed scratch dir", "dir", out.Scratch)
		}
	}

	if out.Ok() {
		if _, err := m.ScanProfiles(); err != nil {
			log.Error("rescan after import", "err", err)
		}
	}

	return out
}

// Delete removes a profile with its script and note once the Confirmer agreed.
// It reports whether the profile file was removed.
func (m *Manager) Delete(id uuid.UUID) bool {
	rec, ok := m.catalog.Get(id)
	if !ok {
		log.Warn("delete: unknown profile", "id", id)
		return false
	}

	if m.confirmer == nil || !m.confirmer.Confirm(rec) {
		log.Info("delete not confirmed", "file", rec.FileName)
		return false
	}

	if err := os.Remove(rec.Path); err != nil {
		log.Error("could not delete profile", "file", rec.Path, "err", err)
		return false
	}

	if rec.HasScript() {
		if err := os.Remove(rec.ScriptPath); err != nil {
			log.Error("could not delete script", "file", rec.ScriptPath, "err", err)
		}
	}

	if m.notes != nil {
		if err := m.notes.DeleteNote(context.Background(), rec.FileName); err != nil {
			log.Error("could not delete note", "file", rec.FileName, "err", err)
		}
	}

	m.bodies.Forget(rec.ID)
	log.Info("deleted profile", "file", rec.FileName)

	if _, err := m.ScanProfiles(); err != nil {
		log.Error("rescan after delete", "err", err)
	}
	return true
}

func (m *Manager) Note(ctx context.Context, id uuid.UUID) (*database.Note, error) {
	rec, err := m.noteTarget(id)
	if err != nil {
		return nil, err
	}
	return m.notes.GetNote(ctx, rec.FileName)
}

func (m *Manager) SetNote(ctx context.Context, id uuid.UUID, text string) error {
	rec, err := m.noteTarget(id)
	if err != nil {
		return err
	}
	return m.notes.SetNote(ctx, rec.FileName, text)
}

func (m *Manager) DeleteNote(ctx context.Context, id uuid.UUID) error {
	rec, err := m.noteTarget(id)
	if err != nil {
		return err
	}
	return m.notes.DeleteNote(ctx, rec.FileName)
}

// Notes lists all stored notes, including those of profiles no longer present.
func (m *Manager) Notes(ctx context.Context) ([]*database.Note, error) {
	if m.notes == nil {
		return nil, ErrNotesDisabled
	}
	return m.notes.Notes(ctx)
}

func (m *Manager) noteTarget(id uuid.UUID) (*profiles.Record, error) {
	if m.notes == nil {
		return nil, ErrNotesDisabled
	}
	rec, ok := m.catalog.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", profiles.ErrRecordNotFound, id)
	}
	return rec, nil
}
