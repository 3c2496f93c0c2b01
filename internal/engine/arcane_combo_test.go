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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/arcanechess/engine/internal/types"
)

// TestChainKillDoubleKillPoisonedDaggerFireFirst reproduces spec.md 8's
// combination example: a Fire Rook with Chain Kill and Double Kill,
// chaining through an adjacent Pawn to remotely capture a Poisoned
// Dagger-equipped Air Queen. Fire attacks resolve offensive triggers
// before Poisoned Dagger, so Double Kill claims the adjacent Black pawn
// before Poisoned Dagger's own rank check fires and removes the Rook.
func TestChainKillDoubleKillPoisonedDaggerFireFirst(t *testing.T) {
	dualGloves := Item(DualGloves)
	loadouts := map[Color]Loadout{
		White: {
			Element: Fire,
			Items:   []Item{dualGloves},
			Abilities: []AbilitySlot{
				{Ability: ChainKill},
				{Ability: DoubleKill},
			},
		},
		Black: {
			Element: Air,
			Items:   []Item{PoisonedDagger},
		},
	}
	g := newCustomGame(t, func(b *Board) {
		b.AddPiece(p(White, King, NewSquare(7, 0))) // h1, out of the way
		b.AddPiece(p(White, Rook, NewSquare(0, 0))) // a1
		b.AddPiece(p(White, Pawn, NewSquare(1, 0))) // b1
		b.AddPiece(p(Black, King, NewSquare(7, 7))) // h8, out of the way
		b.AddPiece(p(Black, Queen, NewSquare(1, 7))) // b8
		b.AddPiece(p(Black, Pawn, NewSquare(0, 7)))  // a8
	}, White, 0, loadouts, 1)

	rook := g.Board.PieceAt(NewSquare(0, 0))
	queen := g.Board.PieceAt(NewSquare(1, 7))
	blackPawn := g.Board.PieceAt(NewSquare(0, 7))

	chain := findMove(t, g.LegalMoves(White), func(m Move) bool {
		return m.Kind == RemoteCapture && m.From == NewSquare(0, 0) && m.To == NewSquare(1, 7)
	})
	assert.Equal(t, NewSquare(1, 0), chain.OriginSq)

	_, err := g.Push(chain)
	assert.NoError(t, err)

	// The Queen was captured to Black's graveyard.
	assert.Nil(t, g.Board.PieceAt(NewSquare(1, 7)))
	foundQueen := false
	for _, e := range g.Arcane.Graveyard[Black] {
		if e.Piece.UID == queen.UID {
			foundQueen = true
		}
	}
	assert.True(t, foundQueen)

	// Double Kill then claimed the only eligible adjacent piece: the
	// pawn on a8 (rank 1 <= the Rook's rank 5).
	assert.Nil(t, g.Board.PieceAt(NewSquare(0, 7)))
	foundPawn := false
	for _, e := range g.Arcane.Graveyard[Black] {
		if e.Piece.UID == blackPawn.UID {
			foundPawn = true
		}
	}
	assert.True(t, foundPawn)

	// Fire resolves offensive triggers first, then Poisoned Dagger: the
	// Rook's rank (5) is not greater than the Queen's (9), so the dagger
	// still fires and removes the Rook from a1, to White's own graveyard.
	assert.Nil(t, g.Board.PieceAt(NewSquare(0, 0)))
	foundRook := false
	for _, e := range g.Arcane.Graveyard[White] {
		if e.Piece.UID == rook.UID {
			foundRook = true
		}
	}
	assert.True(t, foundRook, "Poisoned Dagger must remove the attacking Rook")
}

// TestPoisonedDaggerSparesHigherRankAttacker confirms the rank
// comparison spares an attacker that outranks its victim.
func TestPoisonedDaggerSparesHigherRankAttacker(t *testing.T) {
	loadouts := map[Color]Loadout{
		White: {Element: Water},
		Black: {Element: Water, Items: []Item{PoisonedDagger}},
	}
	g := newCustomGame(t, func(b *Board) {
		b.AddPiece(p(White, King, NewSquare(7, 0)))
		b.AddPiece(p(White, Queen, NewSquare(0, 0)))
		b.AddPiece(p(Black, King, NewSquare(7, 7)))
		b.AddPiece(p(Black, Pawn, NewSquare(0, 7)))
	}, White, 0, loadouts, 1)

	capture := findMove(t, g.LegalMoves(White), func(m Move) bool {
		return m.Kind == Normal && m.From == NewSquare(0, 0) && m.To == NewSquare(0, 7)
	})
	_, err := g.Push(capture)
	assert.NoError(t, err)

	assert.Equal(t, Queen, g.Board.PieceAt(NewSquare(0, 7)).Type)
	assert.Equal(t, White, g.Board.PieceAt(NewSquare(0, 7)).Color)
}
