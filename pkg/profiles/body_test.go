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
	"strings"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blob42/gsxman/pkg/geo"
	"github.com/blob42/gsxman/pkg/ini"
)

func extractString(t *testing.T, content string) *Body {
	t.Helper()
	doc, err := ini.Parse(strings.NewReader(content))
	require.NoError(t, err)
	return Extract(doc)
}

func sectionNames(sections []Section) []string {
	var names []string
	for _, s := range sections {
		names = append(names, s.Name)
	}
	return names
}

func TestExtractCreator(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		body := extractString(t, "[general]\ncreator = FSDreamTeam\n")
		assert.Equal(t, "FSDreamTeam", body.Creator)
		assert.Empty(t, body.Sections)
	})

	t.Run("case insensitive section", func(t *testing.T) {
		body := extractString(t, "[GENERAL]\ncreator = Aerosoft\n")
		assert.Equal(t, "Aerosoft", body.Creator)
	})

	t.Run("general is never a section", func(t *testing.T) {
		body := extractString(t, "[General]\ncreator = x\npushback_pos = 1 2\n")
		assert.Empty(t, body.Sections)
	})

	t.Run("missing", func(t *testing.T) {
		body := extractString(t, "[gate 1]\npushback_pos = 1 2\n")
		assert.Empty(t, body.Creator)
	})
}

func TestExtractSections(t *testing.T) {
	body := extractString(t, `
[general]
creator = tester

[gate A 51]
pushback_pos = 47.4501 8.5621
pushbacklabels = Left|Right
pushbackleftpos = 47.4502 8.5622
pushbackrightpos = 47.4503 8.5623

[gate A 52]
pushback_pos = 47.4511 8.5631
pushbacklabels = Tow out
pushbackleftpos = 47.4512 8.5632
pushbackrightpos = 47.4513 8.5633

[stand B 1]
maxwingspan = 36

[stand B 2]
pushback_pos = north of the hangar

[stand B 3]
pushback_pos = 95.0 8.0

[stand B 4]
pushback_pos = 47.46 8.54 extra tokens
pushbacklabels = South|North
pushbackleftpos = not a point
pushbackrightpos = 47.47 8.55

[stand B 5]
pushback_pos = 47.48 8.56
pushbacklabels = |North
pushbackrightpos = 47.49 8.57
`)

	require.Equal(t, []string{"gate A 51", "gate A 52", "stand B 4", "stand B 5"}, sectionNames(body.Sections))

	t.Run("both pushbacks", func(t *testing.T) {
		s := body.Sections[0]
		assert.Equal(t, geo.Point{Lat: 47.4501, Lon: 8.5621}, s.Position)
		require.NotNil(t, s.Left)
		require.NotNil(t, s.Right)
		assert.Equal(t, Pushback{Label: "Left", Position: geo.Point{Lat: 47.4502, Lon: 8.5622}}, *s.Left)
		assert.Equal(t, Pushback{Label: "Right", Position: geo.Point{Lat: 47.4503, Lon: 8.5623}}, *s.Right)
		assert.True(t, s.HasPushback())
	})

	t.Run("single label ignores right position", func(t *testing.T) {
		s := body.Sections[1]
		require.NotNil(t, s.Left)
		assert.Equal(t, "Tow out", s.Left.Label)
		assert.Nil(t, s.Right)
	})

	t.Run("malformed side dropped", func(t *testing.T) {
		s := body.Sections[2]
		assert.Equal(t, geo.Point{Lat: 47.46, Lon: 8.54}, s.Position)
		assert.Nil(t, s.Left)
		require.NotNil(t, s.Right)
		assert.Equal(t, "North", s.Right.Label)
	})

	t.Run("empty label dropped", func(t *testing.T) {
		s := body.Sections[3]
		assert.Nil(t, s.Left)
		require.NotNil(t, s.Right)
		assert.Equal(t, "North", s.Right.Label)
	})

	t.Run("unique ids", func(t *testing.T) {
		seen := map[uuid.UUID]bool{}
		for _, s := range body.Sections {
			assert.NotEqual(t, uuid.Nil, s.ID)
			assert.False(t, seen[s.ID])
			seen[s.ID] = true

			found, ok := body.Section(s.ID)
			require.True(t, ok)
			assert.Equal(t, s.Name, found.Name)
		}
	})
}

func TestExtractUnparsablePositionExcludesSection(t *testing.T) {
	// no (0,0) default for a position that does not parse
	body := extractString(t, `
[gate 1]
pushback_pos = 47.45 east
[gate 2]
pushback_pos = 47.45
[gate 3]
pushback_pos = 47.45 8.56
`)
	require.Equal(t, []string{"gate 3"}, sectionNames(body.Sections))
}

func TestExtractNoLabels(t *testing.T) {
	body := extractString(t, `
[gate 1]
pushback_pos = 1 2
pushbackleftpos = 3 4
`)
	require.Len(t, body.Sections, 1)
	assert.False(t, body.Sections[0].HasPushback())
}

func TestExtractEmptyDocument(t *testing.T) {
	body := Extract(ini.NewDocument())
	assert.Empty(t, body.Creator)
	assert.Empty(t, body.Sections)
}

func TestFilterSections(t *testing.T) {
	body := extractString(t, `
[gate A 51]
pushback_pos = 1 1
[gate A 52]
pushback_pos = 1 2
[stand E 27]
pushback_pos = 1 3
pushbacklabels = Tail west
pushbackleftpos = 1 4
`)

	assert.Len(t, body.FilterSections(""), 3)
	assert.Equal(t, []string{"gate A 51", "gate A 52"}, sectionNames(body.FilterSections("gate")))
	assert.Equal(t, []string{"stand E 27"}, sectionNames(body.FilterSections("STAND e")))
	assert.Equal(t, []string{"stand E 27"}, sectionNames(body.FilterSections("west")))
	assert.Empty(t, body.FilterSections("hangar"))
}
