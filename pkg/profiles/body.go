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

	"github.com/gofrs/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/blob42/gsxman/pkg/geo"
	"github.com/blob42/gsxman/pkg/ini"
)

const (
	SectionGeneral = "general"
	KeyCreator     = "creator"

	KeyPushbackPos      = "pushback_pos"
	KeyPushbackLabels   = "pushbacklabels"
	KeyPushbackLeftPos  = "pushbackleftpos"
	KeyPushbackRightPos = "pushbackrightpos"

	labelSeparator = "|"
)

// Pushback is one pushback direction of a stand.
type Pushback struct {
	Label    string
	Position geo.Point
}

// Section is a stand or gate of the profile.
type Section struct {
	// Random id, changes each time the body is extracted
	ID   uuid.UUID
	Name string

	// Main pushback position of the stand
	Position geo.Point

	Left  *Pushback
	Right *Pushback
}

// Body is the content extracted from a profile file.
type Body struct {
	// Empty when the file has no [general] creator
	Creator  string
	Sections []Section
}

// Extract builds a profile body out of a parsed document. Sections without
// a valid pushback_pos are left out, it never fails.
func Extract(doc *ini.Document) *Body {
	body := &Body{}

	if general, ok := doc.SectionFold(SectionGeneral); ok {
		body.Creator, _ = general.Get(KeyCreator)
	}

	for _, s := range doc.Sections() {
		if strings.EqualFold(s.Name(), SectionGeneral) {
			continue
		}

		raw, ok := s.Get(KeyPushbackPos)
		if !ok {
			continue
		}

		pos, err := geo.ParsePoint(raw)
		if err != nil {
			log.Debug("dropping section", "section", s.Name(), "err", err)
			continue
		}

		sec := Section{
			ID:       uuid.Must(uuid.NewV4()),
			Name:     s.Name(),
			Position: pos,
		}

		rawLabels, _ := s.Get(KeyPushbackLabels)
		labels := splitLabels(rawLabels)
		if len(labels) > 0 {
			sec.Left = pushback(s, labels[0], KeyPushbackLeftPos)
		}
		if len(labels) > 1 {
			sec.Right = pushback(s, labels[1], KeyPushbackRightPos)
		}

		body.Sections = append(body.Sections, sec)
	}

	return body
}

func splitLabels(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	labels := strings.Split(raw, labelSeparator)
	for i := range labels {
		labels[i] = strings.TrimSpace(labels[i])
	}
	return labels
}

// pushback returns nil when the label is empty or the position key is
// missing or malformed.
func pushback(s *ini.Section, label, posKey string) *Pushback {
	if label == "" {
		return nil
	}
	raw, ok := s.Get(posKey)
	if !ok {
		return nil
	}
	pos, err := geo.ParsePoint(raw)
	if err != nil {
		log.Debug("dropping pushback", "section", s.Name(), "key", posKey, "err", err)
		return nil
	}
	return &Pushback{Label: label, Position: pos}
}

// Section returns the section with the given id.
func (b *Body) Section(id uuid.UUID) (*Section, bool) {
	for i := range b.Sections {
		if b.Sections[i].ID == id {
			return &b.Sections[i], true
		}
	}
	return nil, false
}

// FilterSections returns the sections whose name or pushback labels fuzzy
// match text, all of them when text is empty.
func (b *Body) FilterSections(text string) []Section {
	text = strings.TrimSpace(text)
	if text == "" {
		return b.Sections
	}

	var res []Section
	for _, s := range b.Sections {
		if s.matches(text) {
			res = append(res, s)
		}
	}
	return res
}

func (s *Section) matches(text string) bool {
	targets := []string{s.Name}
	for _, p := range []*Pushback{s.Left, s.Right} {
		if p != nil {
			targets = append(targets, p.Label)
		}
	}
	for _, t := range targets {
		if fuzzy.MatchNormalizedFold(text, t) {
			return true
		}
	}
	return false
}

func (s *Section) HasPushback() bool {
	return s.Left != nil || s.Right != nil
}
