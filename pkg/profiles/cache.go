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
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/OneOfOne/xxhash"
	"github.com/gofrs/uuid"

	"github.com/blob42/gsxman/pkg/ini"
)

type cacheEntry struct {
	sum  uint64
	body *Body
}

// BodyCache keeps extracted bodies per record id. An entry is reused as long
// as the checksum of the file content did not change.
type BodyCache struct {
	mu      sync.Mutex
	entries map[uuid.UUID]cacheEntry
}

func NewBodyCache() *BodyCache {
	return &BodyCache{entries: make(map[uuid.UUID]cacheEntry)}
}

// Get returns the body of rec, parsing the file on first access or when its
// content changed since the last call.
func (c *BodyCache) Get(rec *Record) (*Body, error) {
	data, err := os.ReadFile(rec.Path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	sum := xxhash.Checksum64(data)

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[rec.ID]; ok && e.sum == sum {
		return e.body, nil
	}

	doc, err := ini.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}

	body := Extract(doc)
	c.entries[rec.ID] = cacheEntry{sum: sum, body: body}
	log.Debug("extracted body", "file", rec.FileName, "sections", len(body.Sections))
	return body, nil
}

func (c *BodyCache) Forget(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}

// Retain drops the entries whose id is not in ids.
func (c *BodyCache) Retain(ids map[uuid.UUID]struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id := range c.entries {
		if _, ok := ids[id]; !ok {
			delete(c.entries, id)
		}
	}
}

func (c *BodyCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uuid.UUID]cacheEntry)
}

func (c *BodyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
