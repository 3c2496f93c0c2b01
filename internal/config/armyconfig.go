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
	"fmt"
	"strings"

	"github.com/arcanechess/engine/internal/engine"
	. "github.com/arcanechess/engine/internal/types"
)

// gameConfiguration covers the settings a match needs outside either
// army's loadout: the RNG seed driving every sampled-once misfire/Chain
// Kill/Quantum Kill draw, and whether unresolved decisions (Redo's
// replacement move, Double Kill's target) are answered by a
// host-supplied DecisionProvider or the engine's own deterministic
// default provider.
type gameConfiguration struct {
	Seed         int64
	Decisions    string // "auto" or "interactive"
}

// armiesConfiguration holds both sides' default loadouts, read from the
// [Armies.White] / [Armies.Black] config file tables.
type armiesConfiguration struct {
	White armyConfiguration
	Black armyConfiguration
}

// armyConfiguration is one side's default loadout as TOML sees it:
// plain names rather than the engine's internal enum values, so a
// config file stays readable and the toml package never needs to know
// about Element/Item/Ability.
type armyConfiguration struct {
	Element   string
	Items     []string
	Abilities []string
}

func init() {
	Settings.Game.Seed = 1
	Settings.Game.Decisions = "auto"

	Settings.Armies.White = armyConfiguration{
		Element: "Water",
		Items:   nil,
	}
	Settings.Armies.Black = armyConfiguration{
		Element: "Water",
		Items:   nil,
	}
}

var elementNames = map[string]Element{
	"Water":     Water,
	"Fire":      Fire,
	"Earth":     Earth,
	"Air":       Air,
	"Lightning": Lightning,
}

var itemNames = map[string]Item{
	"Multitasker":    Multitasker,
	"PoisonedDagger": PoisonedDagger,
	"DualGloves":     DualGloves,
	"TripleGloves":   TripleGloves,
	"Headmaster":     Headmaster,
	"PotOfHunger":    PotOfHunger,
	"Solar":          Solar,
}

var abilityNames = map[string]Ability{
	"BlockPath":   BlockPath,
	"Stalwart":    Stalwart,
	"Belligerent": Belligerent,
	"Redo":        Redo,
	"DoubleKill":  DoubleKill,
	"QuantumKill": QuantumKill,
	"ChainKill":   ChainKill,
	"Necromancer": Necromancer,
}

var pieceTypeNames = map[string]PieceType{
	"King":   King,
	"Queen":  Queen,
	"Rook":   Rook,
	"Bishop": Bishop,
	"Knight": Knight,
	"Pawn":   Pawn,
}

// toLoadout translates the TOML-friendly name lists into an
// engine.Loadout. Ability entries take the form "Ability" for an
// army-wide slot or "Ability:PieceType" for a slot scoped to one piece
// type (Loadout.Validate rejects scoped slots that lack Lightning or
// Multitasker).
func (a armyConfiguration) toLoadout() (engine.Loadout, error) {
	el, ok := elementNames[a.Element]
	if !ok {
		return engine.Loadout{}, fmt.Errorf("config: unknown element %q", a.Element)
	}
	l := engine.Loadout{Element: el}

	for _, name := range a.Items {
		it, ok := itemNames[name]
		if !ok {
			return engine.Loadout{}, fmt.Errorf("config: unknown item %q", name)
		}
		l.Items = append(l.Items, it)
	}

	for _, spec := range a.Abilities {
		slot, err := parseAbilitySlot(spec)
		if err != nil {
			return engine.Loadout{}, err
		}
		l.Abilities = append(l.Abilities, slot)
	}

	return l, nil
}

func parseAbilitySlot(spec string) (engine.AbilitySlot, error) {
	parts := strings.SplitN(spec, ":", 2)
	ab, ok := abilityNames[parts[0]]
	if !ok {
		return engine.AbilitySlot{}, fmt.Errorf("config: unknown ability %q", parts[0])
	}
	slot := engine.AbilitySlot{Ability: ab}
	if len(parts) == 2 {
		pt, ok := pieceTypeNames[parts[1]]
		if !ok {
			return engine.AbilitySlot{}, fmt.Errorf("config: unknown piece type %q", parts[1])
		}
		slot.PieceType = &pt
	}
	return slot, nil
}
