//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds globally available configuration variables
// which are either set by defaults, read from a config file or set
// by command line options.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/arcanechess/engine/internal/engine"
	"github.com/arcanechess/engine/internal/util"
)

// globally available config values.
var (
	// ConfFile hold the path to the used config file (relative to working directory)
	ConfFile = "./config.toml"

	// LogLevel defines the general log level - can be overwritten by cmd line options or config file
	LogLevel = 5

	// TestLogLevel defines the test log level
	TestLogLevel = 5

	// Settings is the global configuration read in from file
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Game   gameConfiguration
	Armies armiesConfiguration
}

// Setup reads the configuration file and sets settings from this file
// or defaults for the aspects a host of this engine needs: log level,
// the RNG seed and the decision-provider mode, and each side's default
// army loadout.
func Setup() {
	if initialized {
		return
	}

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}

	// setup log level from the config file, or leave the default; a cmd
	// line override is applied by the caller after Setup returns
	setupLogLvl()
	initialized = true
}

// Loadouts builds the White and Black engine.Loadout from the
// configured (or default) army settings, validating each against
// Loadout.Validate before returning.
func Loadouts() (white, black engine.Loadout, err error) {
	white, err = Settings.Armies.White.toLoadout()
	if err != nil {
		return engine.Loadout{}, engine.Loadout{}, err
	}
	black, err = Settings.Armies.Black.toLoadout()
	if err != nil {
		return engine.Loadout{}, engine.Loadout{}, err
	}
	if err := white.Validate(); err != nil {
		return engine.Loadout{}, engine.Loadout{}, err
	}
	if err := black.Validate(); err != nil {
		return engine.Loadout{}, engine.Loadout{}, err
	}
	return white, black, nil
}
