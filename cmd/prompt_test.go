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

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blob42/gsxman/pkg/importer"
	"github.com/blob42/gsxman/pkg/profiles"
)

func TestPromptChoose(t *testing.T) {
	candidates := []string{"/dl/pack/LSZH-summer.ini", "/dl/pack/LSZH-winter.ini"}

	tests := []struct {
		input  string
		choice string
		ok     bool
	}{
		{"2\n", "/dl/pack/LSZH-winter.ini", true},
		{" 1 \n", "/dl/pack/LSZH-summer.ini", true},
		{"\n", "", false},
		{"q\n", "", false},
		{"3\n", "", false},
		{"winter\n", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompt(strings.NewReader(tt.input), &out)

			choice, ok := p.Choose(importer.KindProfile, candidates)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.choice, choice)
			assert.Contains(t, out.String(), "1) pack/LSZH-summer.ini")
		})
	}
}

func TestPromptConfirm(t *testing.T) {
	rec := &profiles.Record{
		FileName:   "LSZH-fsdt.ini",
		Path:       "/profiles/LSZH-fsdt.ini",
		ScriptPath: "/profiles/LSZH-fsdt.py",
	}

	for input, want := range map[string]bool{
		"y\n":   true,
		"YES\n": true,
		"n\n":   false,
		"\n":    false,
		"":      false,
	} {
		var out bytes.Buffer
		got := NewPrompt(strings.NewReader(input), &out).Confirm(rec)
		assert.Equal(t, want, got, "input %q", input)
		assert.Contains(t, out.String(), "delete LSZH-fsdt.ini + LSZH-fsdt.py?")
	}
}
