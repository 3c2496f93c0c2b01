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

package config

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/arcanechess/engine/internal/types"
)

// make tests run in the project's root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestSetupDefaults(t *testing.T) {
	initialized = false
	Setup()
	assert.Equal(t, "info", Settings.Log.LogLvl)
	assert.Equal(t, LogLevels["info"], LogLevel)
	assert.Equal(t, int64(1), Settings.Game.Seed)
	assert.Equal(t, "auto", Settings.Game.Decisions)
}

func TestSetupIsIdempotent(t *testing.T) {
	initialized = false
	Setup()
	Settings.Game.Seed = 42
	Setup()
	assert.Equal(t, int64(42), Settings.Game.Seed, "a second Setup call must be a no-op")
}

func TestLoadoutsFromDefaults(t *testing.T) {
	initialized = false
	Setup()
	white, black, err := Loadouts()
	assert.NoError(t, err)
	assert.Equal(t, Water, white.Element)
	assert.Equal(t, Water, black.Element)
}

func TestArmyConfigurationUnknownElement(t *testing.T) {
	a := armyConfiguration{Element: "Void"}
	_, err := a.toLoadout()
	assert.Error(t, err)
}

func TestArmyConfigurationScopedAbility(t *testing.T) {
	a := armyConfiguration{
		Element:   "Lightning",
		Abilities: []string{"Redo:Pawn"},
	}
	l, err := a.toLoadout()
	assert.NoError(t, err)
	assert.Len(t, l.Abilities, 1)
	assert.Equal(t, Redo, l.Abilities[0].Ability)
	assert.NotNil(t, l.Abilities[0].PieceType)
	assert.Equal(t, Pawn, *l.Abilities[0].PieceType)
}

func TestArmyConfigurationUnknownAbility(t *testing.T) {
	a := armyConfiguration{Element: "Water", Abilities: []string{"Frenzy"}}
	_, err := a.toLoadout()
	assert.Error(t, err)
}
