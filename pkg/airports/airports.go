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

// Package airports is the static ICAO airport reference table used to place
// profiles on the map.
package airports

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/blob42/gsxman/pkg/geo"
	"github.com/blob42/gsxman/pkg/logging"
)

// Curated sample of large airports with coordinates from
// https://ourairports.com/data/. Profiles for airports missing here are
// skipped by discovery.
//
//go:embed airports.csv
var airportsCSV []byte

var (
	log = logging.GetLogger("ARPT")

	// columns of the reference table, in the order they are read
	fields = []string{"icao", "name", "latitude", "longitude"}

	ErrCorruptTable = errors.New("corrupt airport table")

	defaultDir  *Directory
	defaultOnce sync.Once
)

// Airport is immutable once loaded.
type Airport struct {
	ICAO     string
	Name     string
	Location geo.Point
}

// Directory maps upper case ICAO codes to airports. It is read-only after
// loading and safe for concurrent readers.
type Directory struct {
	airports map[string]Airport
}

// Default returns the directory built from the embedded table. It is parsed
// once; a corrupt embedded table is a build defect and panics.
func Default() *Directory {
	defaultOnce.Do(func() {
		dir, err := Parse(bytes.NewReader(airportsCSV))
		if err != nil {
			panic(fmt.Sprintf("embedded airport table: %s", err))
		}
		log.Debugf("loaded %d airports", dir.Len())
		defaultDir = dir
	})
	return defaultDir
}

// Parse reads a csv table with an `icao,name,latitude,longitude` header.
// Column order is taken from the header.
func Parse(r io.Reader) (*Directory, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: header: %s", ErrCorruptTable, err)
	}

	// Find the index of each field
	var fieldIndices []int
	for _, f := range fields {
		found := false
		for hi, h := range header {
			if strings.EqualFold(f, strings.TrimSpace(h)) {
				fieldIndices = append(fieldIndices, hi)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: missing column %q", ErrCorruptTable, f)
		}
	}

	dir := &Directory{airports: make(map[string]Airport)}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrCorruptTable, err)
		}

		line, _ := cr.FieldPos(0)
		icao := strings.ToUpper(strings.TrimSpace(record[fieldIndices[0]]))
		if icao == "" {
			return nil, fmt.Errorf("%w: line %d: empty code", ErrCorruptTable, line)
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[fieldIndices[2]]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: latitude: %s", ErrCorruptTable, line, err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(record[fieldIndices[3]]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: longitude: %s", ErrCorruptTable, line, err)
		}

		dir.airports[icao] = Airport{
			ICAO:     icao,
			Name:     strings.TrimSpace(record[fieldIndices[1]]),
			Location: geo.Point{Lat: lat, Lon: lon},
		}
	}

	return dir, nil
}

// Lookup finds an airport by ICAO code, case insensitively.
func (d *Directory) Lookup(icao string) (Airport, bool) {
	ap, ok := d.airports[strings.ToUpper(strings.TrimSpace(icao))]
	return ap, ok
}

func (d *Directory) Len() int {
	return len(d.airports)
}

// Codes returns all ICAO codes, sorted.
func (d *Directory) Codes() []string {
	codes := make([]string, 0, len(d.airports))
	for c := range d.airports {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Nearest returns the airport closest to p.
func (d *Directory) Nearest(p geo.Point) (Airport, bool) {
	var best Airport
	bestDist := -1.0
	for _, code := range d.Codes() {
		ap := d.airports[code]
		if dist := p.DistanceKm(ap.Location); bestDist < 0 || dist < bestDist {
			best, bestDist = ap, dist
		}
	}
	return best, bestDist >= 0
}
