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

// Package config holds the global and per module options of gsxman. Options are
// read from a toml file and can be overridden by cli flags.
package config

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/blob42/gsxman/pkg/logging"

	"github.com/fatih/structs"
	"github.com/hako/durafmt"
	"github.com/mitchellh/mapstructure"
	"github.com/urfave/cli/v3"
)

type Hook func(ctx context.Context, c *cli.Command) error

var (
	log            = logging.GetLogger("CONF")
	ConfReadyHooks []Hook
	configs        = make(map[string]Configurator)
)

const (
	GlobalConfigName = "global"
)

// A Configurator allows multiple packages to set and access configs which can
// be mapped to any output format (toml, cli flags, env variables ...)
type Configurator interface {
	Set(opt string, v any) error
	Get(opt string) (any, error)
	Dump() map[string]any
	MapFrom(any) error
}

// Config is a schemaless configurator, used for the global options.
type Config map[string]any

func (c Config) Set(opt string, v any) error {
	c[opt] = v
	return nil
}

func (c Config) Get(opt string) (any, error) {
	return c[opt], nil
}

func (c Config) Dump() map[string]any {
	return c
}

func (c Config) MapFrom(src any) error {
	m, ok := src.(map[string]any)
	if !ok {
		return fmt.Errorf("cannot map %T to global config", src)
	}
	for k, v := range m {
		c[k] = v
	}
	return nil
}

type AutoConfigurator struct {
	c any
}

func (ac AutoConfigurator) Set(opt string, v any) error {
	s := structs.New(ac.c)
	f, ok := s.FieldOk(opt)
	if !ok {
		return fmt.Errorf("%s option not defined", opt)
	}

	return f.Set(v)
}

func (ac AutoConfigurator) Get(opt string) (any, error) {
	s := structs.New(ac.c)
	f, ok := s.FieldOk(opt)
	if !ok {
		return nil, fmt.Errorf("%s option not defined", opt)
	}

	return f.Value(), nil
}

func (ac AutoConfigurator) Dump() map[string]any {
	s := structs.New(ac.c)
	s.TagName = "toml"
	return s.Map()
}

func (ac AutoConfigurator) MapFrom(src any) error {
	log.Debugf("mapping from:  %#v ", src)

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.DecodeHookFuncType(durationHook),
		TagName:    "toml",
		Result:     ac.c,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(src)
}

// durationHook decodes toml strings such as "500ms" or "2s" into
// time.Duration fields.
func durationHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(time.Duration(0)) {
		return data, nil
	}

	d, err := durafmt.ParseString(data.(string))
	if err != nil {
		return nil, fmt.Errorf("invalid duration %q: %w", data, err)
	}
	return d.Duration(), nil
}

// AsConfigurator implements a default Configurator for a given struct. Use this
// to handle module options.
func AsConfigurator(c any) Configurator {
	return AutoConfigurator{c}
}

// Register a global option ie. under [global] in toml file
func RegisterGlobalOption(key string, val any) {
	log.Debugf("registering global option %s = %v", key, val)
	configs[GlobalConfigName].Set(key, val)
}

// GetGlobalOption returns the value of a global option or the zero value of T
// if it is not set or has another type.
func GetGlobalOption[T any](key string) T {
	var zero T
	v, err := configs[GlobalConfigName].Get(key)
	if err != nil {
		return zero
	}
	if tv, ok := v.(T); ok {
		return tv
	}
	return zero
}

// Get all configs as a map[string]any
func GetAll() Config {
	result := make(Config)
	for k, c := range configs {
		// if its an AutoConfigurator, use its c field
		if ac, ok := c.(AutoConfigurator); ok {
			result[k] = ac.c
		} else {
			result[k] = c
		}
	}
	return result
}

// Modules returns the names of all registered configurators, sorted.
func Modules() []string {
	names := make([]string, 0, len(configs))
	for k := range configs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func GetModule(module string) Configurator {
	if c, ok := configs[module]; ok {
		return c
	}
	return nil
}

// Hooks registered here will be executed after the config package has finished
// loading the conf
func RegisterConfReadyHooks(hooks ...Hook) {
	ConfReadyHooks = append(ConfReadyHooks, hooks...)
}

// A call to this func will run all registered config hooks
func RunConfHooks(ctx context.Context, c *cli.Command) error {
	log.Debug("running config hooks")
	for _, f := range ConfReadyHooks {
		if err := f(ctx, c); err != nil {
			return fmt.Errorf("config hook: %w", err)
		}
	}
	return nil
}

// A configurator can set options available under it's own module scope
// or under the global scope. A configurator implements the Configurator interface
func RegisterConfigurator(name string, c Configurator) {
	log.Debugf("registering configurator %s", name)
	configs[name] = c
}

func init() {
	configs[GlobalConfigName] = make(Config)
}
