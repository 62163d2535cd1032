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

// Package tree renders profiles as text trees.
package tree

import (
	"fmt"
	"path/filepath"

	"github.com/xlab/treeprint"

	"github.com/blob42/gsxman/pkg/profiles"
)

// Profile builds the tree of a record. body and note are optional.
func Profile(rec *profiles.Record, body *profiles.Body, note string) treeprint.Tree {
	tree := treeprint.NewWithRoot(fmt.Sprintf("%s <%s %s>", rec.FileName, rec.ICAO(), rec.Airport.Name))

	tree.AddMetaNode("id", rec.ID.String())
	tree.AddMetaNode("modified", rec.Modified.Format("2006-01-02 15:04"))

	if rec.HasScript() {
		tree.AddMetaNode("script", filepath.Base(rec.ScriptPath))
	}
	if rec.Conflict {
		tree.AddMetaNode("conflict", fmt.Sprintf("other profiles exist for %s", rec.ICAO()))
	}
	if note != "" {
		tree.AddMetaNode("note", note)
	}

	if body == nil {
		return tree
	}

	if body.Creator != "" {
		tree.AddMetaNode("creator", body.Creator)
	}
	addSections(tree, body.Sections)

	return tree
}

func addSections(tree treeprint.Tree, sections []profiles.Section) {
	branch := tree.AddMetaBranch(len(sections), "sections")
	for _, s := range sections {
		if !s.HasPushback() {
			branch.AddMetaNode(s.Position.String(), s.Name)
			continue
		}

		sb := branch.AddMetaBranch(s.Position.String(), s.Name)
		if s.Left != nil {
			sb.AddMetaNode(s.Left.Position.String(), "left: "+s.Left.Label)
		}
		if s.Right != nil {
			sb.AddMetaNode(s.Right.Position.String(), "right: "+s.Right.Label)
		}
	}
}

// Sections builds a tree of a filtered section list.
func Sections(title string, sections []profiles.Section) treeprint.Tree {
	tree := treeprint.NewWithRoot(title)
	addSections(tree, sections)
	return tree
}
