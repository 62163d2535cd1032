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

// Package geo holds the coordinate type shared by airports and profiles.
package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrMalformedPoint = errors.New("malformed position")
	ErrOutOfRange     = errors.New("position out of range")
)

// Point is a WGS84 position in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

func (p Point) String() string {
	return fmt.Sprintf("%.6f %.6f", p.Lat, p.Lon)
}

// Valid reports whether p is a finite position on earth.
func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lon, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// ParsePoint parses "lat lon", two whitespace separated decimal numbers.
// Trailing tokens are ignored.
func ParsePoint(s string) (Point, error) {
	tokens := strings.Fields(s)
	if len(tokens) < 2 {
		return Point{}, fmt.Errorf("%w: %q", ErrMalformedPoint, s)
	}

	lat, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: latitude %q", ErrMalformedPoint, tokens[0])
	}
	lon, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: longitude %q", ErrMalformedPoint, tokens[1])
	}

	p := Point{Lat: lat, Lon: lon}
	if !p.Valid() {
		return Point{}, fmt.Errorf("%w: %s", ErrOutOfRange, s)
	}
	return p, nil
}

const earthRadiusKm = 6371.0088

// DistanceKm returns the great circle distance between p and q.
func (p Point) DistanceKm(q Point) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := rad(q.Lat - p.Lat)
	dLon := rad(q.Lon - p.Lon)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(p.Lat))*math.Cos(rad(q.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(a)))
}
