/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
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

package types

// Element is an army's elemental affinity. It gates the offensive and
// defensive ability interactions in the Resolution System and the
// ChainKill/CaptureDefense filters.
type Element uint8

const (
	Water Element = iota
	Fire
	Earth
	Air
	Lightning
	ElementNone
)

func (e Element) String() string {
	switch e {
	case Water:
		return "Water"
	case Fire:
		return "Fire"
	case Earth:
		return "Earth"
	case Air:
		return "Air"
	case Lightning:
		return "Lightning"
	default:
		return "-"
	}
}

// Ability is one of the arcane abilities an army (or a specific piece
// type within an army) can slot.
type Ability uint8

const (
	BlockPath Ability = iota
	Stalwart
	Belligerent
	Redo
	DoubleKill
	QuantumKill
	ChainKill
	Necromancer
	abilityLength
)

func (a Ability) String() string {
	switch a {
	case BlockPath:
		return "BlockPath"
	case Stalwart:
		return "Stalwart"
	case Belligerent:
		return "Belligerent"
	case Redo:
		return "Redo"
	case DoubleKill:
		return "DoubleKill"
	case QuantumKill:
		return "QuantumKill"
	case ChainKill:
		return "ChainKill"
	case Necromancer:
		return "Necromancer"
	default:
		return "-"
	}
}

// IsDefensive reports whether a is one of the capture-defense family.
func (a Ability) IsDefensive() bool {
	switch a {
	case BlockPath, Stalwart, Belligerent, Redo:
		return true
	default:
		return false
	}
}

// IsOffensive reports whether a fires from the attacker's side on
// capture.
func (a Ability) IsOffensive() bool {
	switch a {
	case DoubleKill, QuantumKill, ChainKill, Necromancer:
		return true
	default:
		return false
	}
}

// Item is one of the equippable army items from spec.md 4.7. Items grant
// abilities, ability-slot bonuses, or standalone passive effects
// (Poisoned Dagger, Solar Necklace, Pot of Hunger).
type Item uint8

const (
	Multitasker Item = iota
	PoisonedDagger
	DualGloves
	TripleGloves
	Headmaster
	PotOfHunger
	Solar
	itemLength
)

func (i Item) String() string {
	switch i {
	case Multitasker:
		return "Multitasker"
	case PoisonedDagger:
		return "PoisonedDagger"
	case DualGloves:
		return "DualGloves"
	case TripleGloves:
		return "TripleGloves"
	case Headmaster:
		return "Headmaster"
	case PotOfHunger:
		return "PotOfHunger"
	case Solar:
		return "Solar"
	default:
		return "-"
	}
}

// SlotCost is the item's cost against the 4-point item budget.
func (i Item) SlotCost() int {
	switch i {
	case Multitasker, PoisonedDagger, DualGloves, PotOfHunger, Solar:
		return 1
	case TripleGloves:
		return 2
	case Headmaster:
		return 3
	default:
		return 0
	}
}

// SolarMaxUses is the fixed cap on Solar Necklace uses per match.
const SolarMaxUses = 3
