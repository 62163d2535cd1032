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
	"sort"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Catalog indexes the records of one scan.
type Catalog struct {
	records []*Record
	byID    map[uuid.UUID]*Record
}

func NewCatalog(records []*Record) *Catalog {
	c := &Catalog{
		records: records,
		byID:    make(map[uuid.UUID]*Record, len(records)),
	}
	for _, r := range records {
		c.byID[r.ID] = r
	}
	return c
}

func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns the records in scan order.
func (c *Catalog) Records() []*Record {
	return c.records
}

func (c *Catalog) Get(id uuid.UUID) (*Record, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// IDs returns the set of record ids.
func (c *Catalog) IDs() map[uuid.UUID]struct{} {
	ids := make(map[uuid.UUID]struct{}, len(c.byID))
	for id := range c.byID {
		ids[id] = struct{}{}
	}
	return ids
}

// Sorted returns the records ordered by ICAO then file name.
func (c *Catalog) Sorted() []*Record {
	res := append([]*Record(nil), c.records...)
	sort.Slice(res, func(i, j int) bool {
		if res[i].Airport.ICAO != res[j].Airport.ICAO {
			return res[i].Airport.ICAO < res[j].Airport.ICAO
		}
		return res[i].FileName < res[j].FileName
	})
	return res
}

func (c *Catalog) ByICAO(code string) []*Record {
	code = strings.ToUpper(strings.TrimSpace(code))
	var res []*Record
	for _, r := range c.Sorted() {
		if r.Airport.ICAO == code {
			res = append(res, r)
		}
	}
	return res
}

// Conflicts returns the records flagged as duplicates.
func (c *Catalog) Conflicts() []*Record {
	var res []*Record
	for _, r := range c.Sorted() {
		if r.Conflict {
			res = append(res, r)
		}
	}
	return res
}

// Filter returns the sorted records whose ICAO, airport name or file name
// fuzzy matches text. An empty text matches everything.
func (c *Catalog) Filter(text string) []*Record {
	text = strings.TrimSpace(text)
	if text == "" {
		return c.Sorted()
	}

	var res []*Record
	for _, r := range c.Sorted() {
		for _, target := range []string{r.Airport.ICAO, r.Airport.Name, r.FileName} {
			if fuzzy.MatchNormalizedFold(text, target) {
				res = append(res, r)
				break
			}
		}
	}
	return res
}

// Resolve finds a record by id, file name or ICAO code. An ICAO code shared by
// several records returns ErrAmbiguousRef.
func (c *Catalog) Resolve(ref string) (*Record, error) {
	ref = strings.TrimSpace(ref)

	if id, err := uuid.FromString(ref); err == nil {
		if r, ok := c.Get(id); ok {
			return r, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, ref)
	}

	for _, r := range c.records {
		if r.FileName == ref {
			return r, nil
		}
	}

	switch matches := c.ByICAO(ref); len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousRef, ref)
	}
}
