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

package ini

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProfile = "testdata/lszh-fsdt.ini"

func parseString(t *testing.T, s string) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func TestParseFile(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		doc, err := ParseFile(testProfile)
		require.NoError(t, err)

		var names []string
		for _, s := range doc.Sections() {
			names = append(names, s.Name())
		}
		want := []string{"general", "gate A 51", "gate A 52", "stand  E 27", "stand F 1", "stand F 2"}
		assert.Equal(t, want, names)

		general, ok := doc.Section("general")
		require.True(t, ok)
		creator, _ := general.Get("creator")
		assert.Equal(t, "FSDreamTeam", creator)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := ParseFile("testdata/notexisting.ini")
		assert.Error(t, err)
	})
}

func TestSectionHeaders(t *testing.T) {
	doc := parseString(t, `
[section1]
[    section2]
[      section3       ]
[section4       ]
[  section 5      ]
[      ]
`)
	assert.Equal(t, 5, doc.Len())
	for _, name := range []string{"section1", "section2", "section3", "section4", "section 5"} {
		_, ok := doc.Section(name)
		assert.True(t, ok, name)
	}
}

func TestBlankHeaderKeepsContext(t *testing.T) {
	doc := parseString(t, `
[gate 1]
a = 1
[   ]
b = 2
[]
c = 3
[broken
d = 4
`)
	want := map[string]map[string]string{
		"gate 1": {"a": "1", "b": "2", "c": "3", "d": "4"},
	}
	if diff := cmp.Diff(want, doc.Map()); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestKeyValueLines(t *testing.T) {
	doc := parseString(t, `
key0 = no section yet
[Testsection]
key1 = value
key2= value
key3 =value
key4=value
key4 = valuenew
key6 = [(value1),(value2)]
key7 =
key8 = a = b
key9 value
1key = digits
_key = symbol
`)
	want := map[string]map[string]string{
		"Testsection": {
			"key1": "value",
			"key2": "value",
			"key3": "value",
			"key4": "valuenew",
			"key6": "[(value1),(value2)]",
			"key7": "",
		},
	}
	if diff := cmp.Diff(want, doc.Map()); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}

	s, _ := doc.Section("Testsection")
	assert.Equal(t, []string{"key1", "key2", "key3", "key4", "key6", "key7"}, s.Keys())
}

func TestLastWriteWins(t *testing.T) {
	doc, err := ParseFile(testProfile)
	require.NoError(t, err)

	s, ok := doc.Section("stand F 2")
	require.True(t, ok)
	v, _ := s.Get("pushback_pos")
	assert.Equal(t, "47.4493 8.5705", v)
	assert.Equal(t, 1, s.Len())
}

func TestRedefinedSectionResets(t *testing.T) {
	doc := parseString(t, `
[a]
x = 1
[b]
y = 2
[a]
z = 3
`)
	names := []string{}
	for _, s := range doc.Sections() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Equal(t, map[string]string{"z": "3"}, doc.Map()["a"])
}

func TestIgnoredLines(t *testing.T) {
	doc, err := ParseFile(testProfile)
	require.NoError(t, err)

	s, ok := doc.Section("stand F 1")
	require.True(t, ok)
	// lines are trimmed before classification, digits and double `=` are dropped
	assert.Equal(t, map[string]string{
		"maxwingspan": "80",
		"indented":    "trimmed first",
	}, doc.Map()["stand F 1"])
	assert.False(t, s.Has("key"))
}

func TestByteOrderMark(t *testing.T) {
	doc := parseString(t, "\xEF\xBB\xBF[general]\r\ncreator = Someone\r\n")
	assert.Equal(t, map[string]map[string]string{
		"general": {"creator": "Someone"},
	}, doc.Map())
}

func TestOversizedLine(t *testing.T) {
	long := strings.Repeat("x", 2*maxLineSize)

	for name, text := range map[string]string{
		"comment":   "[gate A]\npushback_pos = 47.45 8.56\n; " + long + "\n[gate B]\npushback_pos = 47.46 8.57\n",
		"key value": "[gate A]\npushback_pos = 47.45 8.56\nlabel = " + long + "\n[gate B]\npushback_pos = 47.46 8.57\n",
		"last line": "[gate A]\npushback_pos = 47.45 8.56\n[gate B]\npushback_pos = 47.46 8.57\n; " + long,
	} {
		t.Run(name, func(t *testing.T) {
			doc := parseString(t, text)
			assert.Equal(t, map[string]map[string]string{
				"gate A": {"pushback_pos": "47.45 8.56"},
				"gate B": {"pushback_pos": "47.46 8.57"},
			}, doc.Map())
		})
	}

	doc := parseString(t, "[gate A]\nlabel = "+strings.Repeat("y", maxLineSize-len("label = "))+"\n")
	v, ok := doc.Map()["gate A"]["label"]
	assert.True(t, ok, "a line of exactly maxLineSize is kept")
	assert.Len(t, v, maxLineSize-len("label = "))
}

func TestSectionFold(t *testing.T) {
	doc := parseString(t, "[GENERAL]\ncreator=x\n[General]\ncreator=y\n")

	s, ok := doc.SectionFold("general")
	require.True(t, ok)
	assert.Equal(t, "GENERAL", s.Name())

	s, ok = doc.SectionFold("General")
	require.True(t, ok)
	assert.Equal(t, "General", s.Name())
}

func TestExportRoundTrip(t *testing.T) {
	doc, err := ParseFile(testProfile)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = doc.Export(&buf)
	require.NoError(t, err)

	again, err := Parse(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(doc.Map(), again.Map()); diff != "" {
		t.Errorf("export round trip mismatch (-want +got):\n%s", diff)
	}
}
