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

package engine

import (
	"fmt"

	"github.com/arcanechess/engine/internal/piece"
	. "github.com/arcanechess/engine/internal/types"
)

// AbilitySlot grants an ability, either army-wide (PieceType == nil) or
// scoped to one piece type (requires Lightning or Multitasker, enforced
// by Loadout.Validate).
type AbilitySlot struct {
	Ability   Ability
	PieceType *PieceType
}

// Loadout is one army's full arcane configuration: element, equipped
// items, and slotted abilities. Build it as a struct literal and
// validate with Validate before handing it to NewGame.
type Loadout struct {
	Element   Element
	Items     []Item
	Abilities []AbilitySlot
}

// HasItem reports whether i is equipped.
func (l Loadout) HasItem(i Item) bool {
	for _, x := range l.Items {
		if x == i {
			return true
		}
	}
	return false
}

// AbilitySlotCount is 1 plus glove/ring bonuses (spec.md 4.7).
func (l Loadout) AbilitySlotCount() int {
	bonus := 0
	if l.HasItem(DualGloves) {
		bonus++
	}
	if l.HasItem(TripleGloves) {
		bonus += 2
	}
	if l.HasItem(Headmaster) {
		bonus += 3
	}
	return 1 + bonus
}

// Validate enforces every configuration rule from spec.md 4.7.
func (l Loadout) Validate() error {
	cost := 0
	for _, i := range l.Items {
		cost += i.SlotCost()
	}
	if cost > 4 {
		return fmt.Errorf("engine: item slot cost %d exceeds budget of 4", cost)
	}

	triple := l.HasItem(TripleGloves)
	dual := l.HasItem(DualGloves)
	head := l.HasItem(Headmaster)
	if triple && (dual || head) {
		return fmt.Errorf("engine: Triple Gloves excludes Dual Gloves and Headmaster")
	}
	if head && (dual || triple) {
		return fmt.Errorf("engine: Headmaster excludes Dual Gloves and Triple Gloves")
	}

	if l.Element == Lightning && l.HasItem(Multitasker) {
		return fmt.Errorf("engine: Multitasker's Schedule is mutually exclusive with Lightning")
	}

	slots := l.AbilitySlotCount()
	if len(l.Abilities) > slots {
		return fmt.Errorf("engine: %d abilities slotted, only %d slots available", len(l.Abilities), slots)
	}

	allowPieceType := l.Element == Lightning || l.HasItem(Multitasker)
	if !allowPieceType {
		for _, s := range l.Abilities {
			if s.PieceType != nil {
				return fmt.Errorf("engine: piece-type ability targeting requires Lightning or Multitasker")
			}
		}
	}
	return nil
}

// GraveyardEntry is a captured piece together with the square it was
// captured on, keyed (per spec.md 9's preserved open question) by the
// captured piece's own color - each color's graveyard is the list of
// that color's casualties, consulted by Necromancer to resurrect a
// friendly piece.
type GraveyardEntry struct {
	Piece *piece.Piece
	Square Square
}

// ArcaneUndoableSnapshot is the one-shot per-ply record stored in an
// Undo's Extras under arcaneUndoableKey. It stores *base* necromancer
// pool/max values (current value minus the current monotonic bonus) so
// restoring recomposes base + current bonus rather than clobbering a
// Solar top-up that happened after the snapshot was taken.
type ArcaneUndoableSnapshot struct {
	NecroPoolBase map[Color]int
	NecroMaxBase  map[Color]int
	Graveyard     map[Color][]GraveyardEntry
}

const arcaneUndoableKey = "arcane_undoable"

// ArcaneState holds every per-match arcane resource (spec.md 3).
type ArcaneState struct {
	RedoCharges map[uint64]int
	RedoMax     map[uint64]int

	NecroPool  map[Color]int
	NecroMax   map[Color]int
	NecroBonus map[Color]int

	SolarUses map[Color]int

	Graveyard map[Color][]GraveyardEntry
}

// NewArcaneState returns a zeroed ArcaneState ready for
// Game.bootstrapResources.
func NewArcaneState() *ArcaneState {
	return &ArcaneState{
		RedoCharges: make(map[uint64]int),
		RedoMax:     make(map[uint64]int),
		NecroPool:   map[Color]int{White: 0, Black: 0},
		NecroMax:    map[Color]int{White: 0, Black: 0},
		NecroBonus:  map[Color]int{White: 0, Black: 0},
		SolarUses:   map[Color]int{White: 0, Black: 0},
		Graveyard:   map[Color][]GraveyardEntry{White: nil, Black: nil},
	}
}

func cloneGraveyard(g map[Color][]GraveyardEntry) map[Color][]GraveyardEntry {
	out := make(map[Color][]GraveyardEntry, len(g))
	for c, entries := range g {
		cp := make([]GraveyardEntry, len(entries))
		copy(cp, entries)
		out[c] = cp
	}
	return out
}

// snapshotUndoable captures the undoable portion of arcane state: base
// necromancer values and the graveyard. Redo charges and Solar uses are
// deliberately excluded - they are monotonic and must survive a Redo
// rewind (spec.md 3).
func (a *ArcaneState) snapshotUndoable() *ArcaneUndoableSnapshot {
	poolBase := make(map[Color]int, len(a.NecroPool))
	maxBase := make(map[Color]int, len(a.NecroMax))
	for c, v := range a.NecroPool {
		poolBase[c] = v - a.NecroBonus[c]
	}
	for c, v := range a.NecroMax {
		maxBase[c] = v - a.NecroBonus[c]
	}
	return &ArcaneUndoableSnapshot{
		NecroPoolBase: poolBase,
		NecroMaxBase:  maxBase,
		Graveyard:     cloneGraveyard(a.Graveyard),
	}
}

func (a *ArcaneState) restoreUndoable(snap *ArcaneUndoableSnapshot) {
	for c, base := range snap.NecroPoolBase {
		a.NecroPool[c] = base + a.NecroBonus[c]
	}
	for c, base := range snap.NecroMaxBase {
		a.NecroMax[c] = base + a.NecroBonus[c]
	}
	a.Graveyard = cloneGraveyard(snap.Graveyard)
}

// --- elemental interaction matrix (spec.md 4.1, 4.2, 4.4, 8) ---

// earthBlocksRemote reports whether an Earth defender nullifies a
// remote-capture ability (ChainKill) unless the attacker is Fire.
func earthBlocksRemote(attacker, defender Element) bool {
	return defender == Earth && attacker != Fire
}

// fireNoOpVsWater reports whether a Fire attacker's offensive abilities
// (ChainKill's capture, and the offensive trigger step) are no-ops
// against a Water defender.
func fireNoOpVsWater(attacker, defender Element) bool {
	return attacker == Fire && defender == Water
}

// airNegatesDefense reports whether an Air attacker bypasses the
// defender's Block Path / Stalwart / Belligerent / Redo, unless the
// defender is Earth.
func airNegatesDefense(attacker, defender Element) bool {
	return attacker == Air && defender != Earth
}

// lightningMisfireApplies reports whether a misfire is possible at all,
// which is only for Lightning attacking Air; callers must still consume exactly one RNG draw on every resolution
// so determinism holds even when the branch is structurally skipped by
// a different elemental pairing upstream (spec.md 9).
func lightningMisfireApplies(attacker, defender Element) bool {
	return attacker == Lightning && defender == Air
}
