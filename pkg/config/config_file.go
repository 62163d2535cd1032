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

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/blob42/gsxman/internal/utils"
)

const (
	ConfigFileName = "config.toml"
	ConfigDirName  = "gsxman"
)

func getConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get config dir: %s", err)
	}
	if configDir == "" {
		return "", errors.New("could not get config dir")
	}

	return filepath.Join(configDir, ConfigDirName), nil
}

// DefaultConfPath returns the default config file path or an empty string if
// the user config dir is unknown.
func DefaultConfPath() string {
	configDir, err := getConfigDir()
	if err != nil {
		log.Warn(err)
		return ""
	}
	return filepath.Join(configDir, ConfigFileName)
}

func ConfigExists(path string) (bool, error) {
	return utils.CheckFileExists(path)
}

// InitConfigFile writes all registered options to a toml file at path.
func InitConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create config dir: %w", err)
	}

	configFile, err := os.Create(path)
	if err != nil {
		return err
	}
	defer configFile.Close()

	return Encode(configFile)
}

// Encode writes all registered options as toml.
func Encode(w io.Writer) error {
	allConf := make(map[string]any)
	for k, c := range configs {
		dump := c.Dump()
		// toml cannot encode durations
		for opt, v := range dump {
			if d, ok := v.(time.Duration); ok {
				dump[opt] = d.String()
			}
		}
		allConf[k] = dump
	}

	tomlEncoder := toml.NewEncoder(w)
	tomlEncoder.Indent = ""
	return tomlEncoder.Encode(allConf)
}

// Loads gsxman configuation into the registered configurators
func LoadFromTomlFile(path string) error {
	buffer := make(Config)
	_, err := toml.DecodeFile(path, &buffer)
	if err != nil {
		return fmt.Errorf("loading config file %w", err)
	}

	for k, val := range buffer {
		// send the conf to its own module
		if _, ok := configs[k]; !ok {
			log.Debugf("creating module config [%s]", k)
			configs[k] = make(Config)
		}
		if err = configs[k].MapFrom(val); err != nil {
			return fmt.Errorf("parsing config <%s>: %w", k, err)
		}
	}

	return nil
}
