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
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/blob42/gsxman/pkg/importer"
	"github.com/blob42/gsxman/pkg/profiles"
)

// Prompt asks the user on a terminal. It is both an import Chooser and a
// delete Confirmer.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

func (p *Prompt) readLine() (string, bool) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// Choose lists the candidates and reads a number. An empty answer, `q` or an
// out of range number means no choice.
func (p *Prompt) Choose(kind importer.Kind, candidates []string) (string, bool) {
	fmt.Fprintf(p.out, "several %s files found:\n", kind)
	for i, c := range candidates {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, displayName(c))
	}
	fmt.Fprintf(p.out, "choose 1-%d (empty to skip): ", len(candidates))

	answer, ok := p.readLine()
	if !ok || answer == "" || answer == "q" {
		return "", false
	}

	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(candidates) {
		fmt.Fprintf(p.out, "invalid choice %q\n", answer)
		return "", false
	}
	return candidates[n-1], true
}

func (p *Prompt) Confirm(rec *profiles.Record) bool {
	files := make([]string, 0, 2)
	for _, f := range rec.Files() {
		files = append(files, filepath.Base(f))
	}
	fmt.Fprintf(p.out, "delete %s? [y/N]: ", strings.Join(files, " + "))

	answer, ok := p.readLine()
	if !ok {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}

// displayName shortens a scratch path to the archive relative part.
func displayName(path string) string {
	dir := filepath.Base(filepath.Dir(path))
	return filepath.Join(dir, filepath.Base(path))
}
