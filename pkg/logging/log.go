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

package logging

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	log "github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"gopkg.in/natefinch/lumberjack.v2"
)

const EnvGsxmanDebug = "GSXMAN_DEBUG"

const (
	Silent = -1 + iota
	Release
	Dev
)

var (
	//RELEASE: Change to Release for release mode
	LoggingMode = Release
	SilentMode  bool
)

var (
	DefaultLogLevels = map[int]int{
		Release: 1,
		Dev:     3,
	}

	// Map cli log level to log.Level
	LogLvlMap = map[int]log.Level{
		-1: math.MaxInt32,
		0:  log.ErrorLevel,
		1:  log.WarnLevel,
		2:  log.InfoLevel,
		3:  log.DebugLevel,
	}

	mu      sync.Mutex
	loggers = make(map[string]*log.Logger)
	output  io.Writer = os.Stderr

	logTextFaintStyle = lipgloss.NewStyle().Foreground(
		lipgloss.AdaptiveColor{Light: "240", Dark: "246"},
	)
	logLevelStyles = map[log.Level]lipgloss.Style{
		log.DebugLevel: lipgloss.NewStyle().
			SetString(strings.ToUpper(log.DebugLevel.String())).
			MaxWidth(4).
			Foreground(lipgloss.Color("63")),
		log.InfoLevel: lipgloss.NewStyle().
			SetString(strings.ToUpper(log.InfoLevel.String())).
			MaxWidth(4).
			Foreground(lipgloss.Color("36")),
		log.WarnLevel: lipgloss.NewStyle().
			SetString(strings.ToUpper(log.WarnLevel.String())).
			MaxWidth(4).
			Foreground(lipgloss.Color("178")),
		log.ErrorLevel: lipgloss.NewStyle().
			SetString(strings.ToUpper(log.ErrorLevel.String())).
			MaxWidth(4).
			Foreground(lipgloss.Color("204")),
		log.FatalLevel: lipgloss.NewStyle().
			SetString(strings.ToUpper(log.FatalLevel.String())).
			MaxWidth(4).
			Foreground(lipgloss.Color("134")),
	}
)

// GetLogger returns the logger of a unit, creating it on first use. Units are
// shown as a 4 letter prefix.
func GetLogger(unit string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if lg, ok := loggers[unit]; ok {
		return lg
	}

	var lg *log.Logger
	if len(unit) > 0 {
		lg = log.NewWithOptions(output, log.Options{
			Prefix: fmt.Sprintf("[%.4s]", strings.ToUpper(unit)),
		})
	} else {
		lg = log.New(output)
	}
	lg.SetStyles(styles())

	if LoggingMode == Dev {
		lg.SetTimeFormat(time.TimeOnly)
		lg.SetReportTimestamp(true)
		lg.SetCallerFormatter(func(file string, line int, _ string) string {
			return fmt.Sprintf("%s:%d", trimCallerPath(file, 1), line)
		})
		lg.SetReportCaller(true)
	}

	if lvl, ok := loggerLevels[unit]; ok {
		lg.SetLevel(LogLvlMap[lvl])
	} else {
		lg.SetLevel(LogLvlMap[globalLevel])
	}

	if LoggingMode == Silent || SilentMode {
		lg.SetOutput(io.Discard)
	}

	loggers[unit] = lg
	return lg
}

func styles() *log.Styles {
	st := log.DefaultStyles()
	st.Levels = logLevelStyles
	st.Prefix = logTextFaintStyle
	st.Key = logTextFaintStyle
	st.Separator = logTextFaintStyle
	return st
}

// SetLogLevel sets the level of all loggers. A level of -1 silences them.
func SetLogLevel(lvl int) {
	mu.Lock()
	defer mu.Unlock()

	if lvl < Silent {
		lvl = Silent
	}
	globalLevel = lvl
	for _, logger := range loggers {
		logger.SetLevel(LogLvlMap[lvl])
		if lvl <= Silent {
			logger.SetOutput(io.Discard)
		} else {
			logger.SetOutput(output)
		}
	}
}

// SetUnitLevel overrides the level of a single unit.
func SetUnitLevel(unit string, lvl int) {
	mu.Lock()
	defer mu.Unlock()

	loggerLevels[unit] = lvl
	if logger, ok := loggers[unit]; ok {
		logger.SetLevel(LogLvlMap[lvl])
	}
}

// SetLogFile sends the output of all loggers to a size rotated file.
func SetLogFile(path string, maxSizeMB int) io.Closer {
	mu.Lock()
	defer mu.Unlock()

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 3,
	}
	output = lj
	for _, logger := range loggers {
		logger.SetOutput(lj)
		logger.SetColorProfile(termenv.Ascii)
	}
	return lj
}

func listLoggers() []string {
	mu.Lock()
	defer mu.Unlock()

	units := make([]string, 0, len(loggers))
	for k := range loggers {
		if k != "" {
			units = append(units, k)
		}
	}
	return units
}

func trimCallerPath(path string, n int) string {
	// lovely borrowed from zap
	// nb. To make sure we trim the path correctly on Windows too, we
	// counter-intuitively need to use '/' and *not* os.PathSeparator here,
	// because the path given originates from Go stdlib, specifically
	// runtime.Caller() which (as of Mar/17) returns forward slashes even on
	// Windows.
	//
	// See https://github.com/golang/go/issues/3335
	// and https://github.com/golang/go/issues/18151
	//
	// for discussion on the issue on Go side.

	// Return the full path if n is 0.
	if n <= 0 {
		return path
	}

	// Find the last separator.
	idx := strings.LastIndexByte(path, '/')
	if idx == -1 {
		return path
	}

	for i := 0; i < n-1; i++ {
		// Find the penultimate separator.
		idx = strings.LastIndexByte(path[:idx], '/')
		if idx == -1 {
			return path
		}
	}

	return path[idx+1:]
}

func init() {
	envDebug := os.Getenv(EnvGsxmanDebug)
	if envDebug != "" {
		lvl, err := strconv.Atoi(envDebug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s=%v: %v\n", EnvGsxmanDebug, envDebug, err)
			return
		}
		globalLevel = lvl
	}
}
