/*
 * spell-chess - deterministic rules engine for chess with spells
 *
 * MIT License
 *
 * Copyright (c) 2026 wjkiely
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config holds globally available configuration values for the
// engine: log levels and the spell balance table. Values default to the
// numbers spec.md hard-codes (2 jump charges, 5 freeze charges, a 3-turn
// cooldown, a 2-ply duration) and may be overridden by a TOML file so a
// house-ruled variant can run without a code change.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/wjkiely/spell-chess/internal/util"
)

// ConfFile holds the path to the config file (relative to the working
// directory) used by Setup.
var ConfFile = "./config.toml"

// Settings is the global configuration, read from ConfFile if present or
// left at its defaults otherwise.
var Settings conf

var initialized = false

type conf struct {
	Log    logConfiguration
	Spells spellConfiguration
}

type logConfiguration struct {
	Level     int
	TestLevel int
}

// spellConfiguration mirrors the SpellState constants from spec.md §3/§4.4.
type spellConfiguration struct {
	JumpCharges         int
	FreezeCharges       int
	JumpCooldownTurns   int
	FreezeCooldownTurns int
	JumpDurationPlies   int
	FreezeDurationPlies int
}

func init() {
	Settings.Log.Level = 5
	Settings.Log.TestLevel = 5
	Settings.Spells = spellConfiguration{
		JumpCharges:         2,
		FreezeCharges:       5,
		JumpCooldownTurns:   3,
		FreezeCooldownTurns: 3,
		JumpDurationPlies:   2,
		FreezeDurationPlies: 2,
	}
}

// Setup reads the configuration file (if present) and overlays it onto the
// defaults above. A missing or malformed config file is not an error - the
// engine falls back to spec.md's standard balance.
func Setup() {
	if initialized {
		return
	}
	initialized = true
	path, err := util.ResolveFile(ConfFile)
	if err != nil {
		return
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("spell-chess: config file not found or invalid, using defaults (", err, ")")
	}
}
