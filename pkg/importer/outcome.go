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

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnreadable        = errors.New("unreadable")
	ErrNoIniFound        = errors.New("no_ini_found")
	ErrUnsupportedFormat = errors.New("unsupported_format")
	ErrInvalidChoice     = errors.New("invalid_choice")
	ErrPlacement         = errors.New("placement")
)

type Status int

const (
	Failed Status = iota
	Imported
	// the profile was placed but its script could not be
	Partial
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Imported:
		return "imported"
	case Partial:
		return "partial"
	case Cancelled:
		return "cancelled"
	default:
		return "failed"
	}
}

// Outcome is the result of one import.
type Outcome struct {
	Status Status

	// The imported file or archive
	Source string

	// Extraction directory created by this import, left in place after the
	// import. Empty when nothing was extracted.
	Scratch string

	// Installed profile and script paths, empty when not placed
	Profile string
	Script  string

	// Reason of a failure, wraps one of the package errors
	Err error

	// Non fatal errors, one per file that could not be placed
	Errors []error
}

func (o *Outcome) Ok() bool {
	return o.Status == Imported || o.Status == Partial
}

// Placed returns the installed files.
func (o *Outcome) Placed() []string {
	var res []string
	for _, p := range []string{o.Profile, o.Script} {
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

func (o *Outcome) String() string {
	switch o.Status {
	case Failed:
		return fmt.Sprintf("%s: %v", o.Status, o.Err)
	case Partial:
		var errs []string
		for _, err := range o.Errors {
			errs = append(errs, err.Error())
		}
		return fmt.Sprintf("%s: %s (%s)", o.Status, strings.Join(o.Placed(), ", "), strings.Join(errs, "; "))
	case Imported:
		return fmt.Sprintf("%s: %s", o.Status, strings.Join(o.Placed(), ", "))
	default:
		return o.Status.String()
	}
}

func (o *Outcome) fail(err error) *Outcome {
	o.Status = Failed
	o.Err = err
	log.Error("import failed", "source", o.Source, "err", err)
	return o
}

func (o *Outcome) cancel() *Outcome {
	o.Status = Cancelled
	log.Info("import cancelled", "source", o.Source)
	return o
}
