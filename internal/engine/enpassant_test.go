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

// TestEnPassantWindow verifies spec.md 4.1's timing rule: en passant is
// legal only in the ply immediately after the enabling double push, and
// gone the moment another move intervenes.
func TestEnPassantWindow(t *testing.T) {
	g := newCustomGame(t, func(b *Board) {
		b.AddPiece(p(White, King, NewSquare(4, 0)))
		b.AddPiece(p(Black, King, NewSquare(4, 7)))
		b.AddPiece(p(White, Pawn, NewSquare(4, 4))) // e5
		b.AddPiece(p(Black, Pawn, NewSquare(3, 6))) // d7
	}, Black, 0, neutralLoadouts(), 1)

	dPush := findMove(t, g.LegalMoves(Black), func(m Move) bool {
		return m.Kind == Normal && m.From == NewSquare(3, 6) && m.HasFlag("double_pawn_push")
	})
	_, err := g.Push(dPush)
	assert.NoError(t, err)
	assert.Equal(t, White, g.Side)

	epMove := findMove(t, g.LegalMoves(White), func(m Move) bool {
		return m.Kind == EnPassant
	})
	assert.Equal(t, NewSquare(4, 4), epMove.From)
	assert.Equal(t, NewSquare(3, 5), epMove.To)
	assert.Equal(t, NewSquare(3, 4), epMove.CapturedSq) // d5, where the double-pushed pawn actually sits

	u, err := g.Push(epMove)
	assert.NoError(t, err)
	assert.NotNil(t, u.Captured)
	assert.Equal(t, Pawn, u.Captured.Type)
	assert.Nil(t, g.Board.PieceAt(NewSquare(3, 4)))
	assert.Equal(t, Pawn, g.Board.PieceAt(NewSquare(3, 5)).Type)
	assert.Nil(t, g.Board.PieceAt(NewSquare(4, 4)))
}

func TestEnPassantExpiresAfterIntervalMove(t *testing.T) {
	g := newCustomGame(t, func(b *Board) {
		b.AddPiece(p(White, King, NewSquare(4, 0)))
		b.AddPiece(p(Black, King, NewSquare(4, 7)))
		b.AddPiece(p(White, Pawn, NewSquare(4, 4))) // e5
		b.AddPiece(p(Black, Pawn, NewSquare(3, 6))) // d7
	}, Black, 0, neutralLoadouts(), 1)

	dPush := findMove(t, g.LegalMoves(Black), func(m Move) bool {
		return m.Kind == Normal && m.From == NewSquare(3, 6) && m.HasFlag("double_pawn_push")
	})
	_, err := g.Push(dPush)
	assert.NoError(t, err)

	// White plays a quiet king shuffle instead of capturing en passant.
	kingMove := findMove(t, g.LegalMoves(White), func(m Move) bool {
		return m.Kind == Normal && m.From == NewSquare(4, 0)
	})
	_, err = g.Push(kingMove)
	assert.NoError(t, err)

	// Black's king shuffle back.
	blackKingMove := findMove(t, g.LegalMoves(Black), func(m Move) bool {
		return m.Kind == Normal && m.From == NewSquare(4, 7)
	})
	_, err = g.Push(blackKingMove)
	assert.NoError(t, err)

	for _, m := range g.LegalMoves(White) {
		assert.NotEqual(t, EnPassant, m.Kind, "en passant must not survive an intervening move")
	}
}
