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

package importer

// Kind tells a Chooser what the candidates are.
type Kind int

const (
	KindProfile Kind = iota
	KindScript
)

func (k Kind) String() string {
	if k == KindScript {
		return "script"
	}
	return "profile"
}

// Chooser picks one path out of candidates when an archive holds more than
// one file of a kind. Candidates are sorted. Returning false means no choice
// was made.
type Chooser interface {
	Choose(kind Kind, candidates []string) (string, bool)
}

type ChooserFunc func(kind Kind, candidates []string) (string, bool)

func (f ChooserFunc) Choose(kind Kind, candidates []string) (string, bool) {
	return f(kind, candidates)
}
