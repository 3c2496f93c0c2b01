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

// TestThreefoldRepetitionByShuffling shuffles a single knight back and
// forth until the starting position has recurred three times, and
// checks the tracker's repetition count against an independent
// from-scratch recompute at every step (spec.md 4.5, 8).
func TestThreefoldRepetitionByShuffling(t *testing.T) {
	g := newCustomGame(t, func(b *Board) {
		b.AddPiece(p(White, King, NewSquare(4, 0)))
		b.AddPiece(p(White, Knight, NewSquare(1, 0))) // b1
		b.AddPiece(p(Black, King, NewSquare(4, 7)))
		b.AddPiece(p(Black, Knight, NewSquare(1, 7))) // b8
	}, White, 0, neutralLoadouts(), 1)

	assert.False(t, g.tracker.IsThreefold())

	shuffle := func(from, to Square, side Color) {
		m := findMove(t, g.LegalMoves(side), func(m Move) bool {
			return m.Kind == Normal && m.From == from && m.To == to
		})
		_, err := g.Push(m)
		assert.NoError(t, err)
		assert.Equal(t, g.tracker.RecomputeHash(g), g.tracker.Hash, "incremental hash must match a from-scratch recompute")
	}

	// Nb1-c3, Nb8-c6, Nc3-b1, Nc6-b8: back to the start - 2nd occurrence.
	shuffle(NewSquare(1, 0), NewSquare(2, 2), White)
	shuffle(NewSquare(1, 7), NewSquare(2, 5), Black)
	shuffle(NewSquare(2, 2), NewSquare(1, 0), White)
	shuffle(NewSquare(2, 5), NewSquare(1, 7), Black)
	assert.False(t, g.tracker.IsThreefold())

	// Repeat the same round trip once more - 3rd occurrence.
	shuffle(NewSquare(1, 0), NewSquare(2, 2), White)
	shuffle(NewSquare(1, 7), NewSquare(2, 5), Black)
	shuffle(NewSquare(2, 2), NewSquare(1, 0), White)
	shuffle(NewSquare(2, 5), NewSquare(1, 7), Black)
	assert.True(t, g.tracker.IsThreefold())
}

// TestZobristHashRestoredOnPop checks that Pop restores the exact
// pre-push hash, not merely an equivalent one.
func TestZobristHashRestoredOnPop(t *testing.T) {
	g := newCustomGame(t, func(b *Board) {
		b.AddPiece(p(White, King, NewSquare(4, 0)))
		b.AddPiece(p(White, Knight, NewSquare(1, 0)))
		b.AddPiece(p(Black, King, NewSquare(4, 7)))
	}, White, 0, neutralLoadouts(), 1)

	before := g.tracker.Hash
	m := findMove(t, g.LegalMoves(White), func(m Move) bool {
		return m.Kind == Normal && m.From == NewSquare(1, 0) && m.To == NewSquare(2, 2)
	})
	_, err := g.Push(m)
	assert.NoError(t, err)
	assert.NotEqual(t, before, g.tracker.Hash)

	assert.NoError(t, g.Pop())
	assert.Equal(t, before, g.tracker.Hash)
}
