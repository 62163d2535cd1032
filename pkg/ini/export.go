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
	"fmt"
	"io"

	goini "github.com/go-ini/ini"
)

// Export writes the document as strict INI, readable by standard INI tooling.
// Section and key order are preserved.
func (d *Document) Export(w io.Writer) (int64, error) {
	cfg := goini.Empty(goini.LoadOptions{
		IgnoreInlineComment: true,
	})

	for _, s := range d.Sections() {
		sec, err := cfg.NewSection(s.name)
		if err != nil {
			return 0, fmt.Errorf("export section %q: %w", s.name, err)
		}
		for _, k := range s.keys {
			if _, err := sec.NewKey(k, s.values[k]); err != nil {
				return 0, fmt.Errorf("export key %q in [%s]: %w", k, s.name, err)
			}
		}
	}

	return cfg.WriteTo(w)
}
