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

// Package ini parses the loose INI dialect used by GSX airport profiles.
//
// The dialect is line based:
//   - a line whose trimmed form matches `[name]` opens the section `name`
//   - a line starting with an ASCII letter and containing exactly one `=` is a
//     key/value pair of the current section
//   - everything else is ignored
//
// Values are never interpreted: no quoting, escaping, inline comments or
// multi-line values.
package ini

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/blob42/gsxman/pkg/logging"
)

var (
	log = logging.GetLogger("INI")

	reSectionHeader = regexp.MustCompile(`^\[(.+)\]$`)

	utf8BOM = []byte{0xEF, 0xBB, 0xBF}
)

// Lines longer than maxLineSize are skipped
const maxLineSize = 1 << 20

// Section is a named group of key/value pairs. Keys keep their first insertion
// order, a redefined key keeps its position and takes the new value.
type Section struct {
	name   string
	keys   []string
	values map[string]string
}

func newSection(name string) *Section {
	return &Section{name: name, values: make(map[string]string)}
}

func (s *Section) Name() string {
	return s.name
}

// Get returns the value of key.
func (s *Section) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *Section) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Keys returns the keys in file order.
func (s *Section) Keys() []string {
	return append([]string(nil), s.keys...)
}

func (s *Section) Len() int {
	return len(s.keys)
}

func (s *Section) set(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

func (s *Section) reset() {
	s.keys = nil
	s.values = make(map[string]string)
}

// Document is a parsed profile. Sections keep their first definition order.
type Document struct {
	order    []string
	sections map[string]*Section
}

func NewDocument() *Document {
	return &Document{sections: make(map[string]*Section)}
}

// Section returns the section called name. Names are case sensitive.
func (d *Document) Section(name string) (*Section, bool) {
	s, ok := d.sections[name]
	return s, ok
}

// SectionFold returns the first section whose name equals name under unicode
// case folding, preferring an exact match.
func (d *Document) SectionFold(name string) (*Section, bool) {
	if s, ok := d.sections[name]; ok {
		return s, true
	}
	for _, n := range d.order {
		if strings.EqualFold(n, name) {
			return d.sections[n], true
		}
	}
	return nil, false
}

// Sections returns all sections in file order.
func (d *Document) Sections() []*Section {
	res := make([]*Section, 0, len(d.order))
	for _, n := range d.order {
		res = append(res, d.sections[n])
	}
	return res
}

func (d *Document) Len() int {
	return len(d.order)
}

// Map returns the document as a section -> key -> value mapping.
func (d *Document) Map() map[string]map[string]string {
	res := make(map[string]map[string]string, len(d.sections))
	for name, s := range d.sections {
		kv := make(map[string]string, len(s.values))
		for k, v := range s.values {
			kv[k] = v
		}
		res[name] = kv
	}
	return res
}

// openSection creates the section or clears an existing one.
func (d *Document) openSection(name string) *Section {
	if s, ok := d.sections[name]; ok {
		s.reset()
		return s
	}
	s := newSection(name)
	d.sections[name] = s
	d.order = append(d.order, name)
	return s
}

// ParseFile reads and parses the profile at path. It only fails if the file
// cannot be read.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse parses a profile. Malformed lines are skipped, the only errors
// returned come from reading r.
func Parse(r io.Reader) (*Document, error) {
	doc := NewDocument()
	var current *Section

	br := bufio.NewReaderSize(r, 64*1024)
	first := true
	for n := 1; ; n++ {
		raw, tooLong, err := readLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if first {
			raw = bytes.TrimPrefix(raw, utf8BOM)
			first = false
		}
		if tooLong {
			log.Debug("skipping oversized line", "line", n, "max", maxLineSize)
			continue
		}

		line := strings.TrimSpace(string(raw))
		if line == "" {
			continue
		}

		switch c := line[0]; {
		case c == '[':
			if s := doc.handleSectionLine(line); s != nil {
				current = s
			}
		case isASCIILetter(c):
			handleKeyValueLine(line, current)
		}
	}

	return doc, nil
}

// readLine returns the next line without its line ending. A line longer than
// maxLineSize is consumed entirely and reported with tooLong set.
func readLine(br *bufio.Reader) (line []byte, tooLong bool, err error) {
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			if err == io.EOF && (len(line) > 0 || tooLong) {
				return line, tooLong, nil
			}
			return nil, false, err
		}

		if !tooLong {
			if len(line)+len(chunk) > maxLineSize {
				tooLong, line = true, nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			return line, tooLong, nil
		}
	}
}

// handleSectionLine opens the section declared on line. It returns nil when
// the header is malformed or its name is blank, in which case the caller keeps
// its current section.
func (d *Document) handleSectionLine(line string) *Section {
	caps := reSectionHeader.FindStringSubmatch(line)
	if caps == nil {
		log.Debug("ignoring malformed section header", "line", line)
		return nil
	}

	name := strings.TrimSpace(caps[1])
	if name == "" {
		log.Debug("ignoring empty section header", "line", line)
		return nil
	}

	return d.openSection(name)
}

func handleKeyValueLine(line string, current *Section) {
	if current == nil {
		return
	}

	if strings.Count(line, "=") != 1 {
		return
	}

	key, value, _ := strings.Cut(line, "=")
	current.set(strings.TrimSpace(key), strings.TrimSpace(value))
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
