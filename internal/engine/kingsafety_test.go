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

// TestKingSafetyFiltersPinnedPiece: a White rook pinned on the e-file
// between its own king and a Black rook cannot step off the file, even
// though the step itself is otherwise a pseudo-legal rook move.
func TestKingSafetyFiltersPinnedPiece(t *testing.T) {
	g := newCustomGame(t, func(b *Board) {
		b.AddPiece(p(White, King, NewSquare(4, 0))) // e1
		b.AddPiece(p(White, Rook, NewSquare(4, 3))) // e4
		b.AddPiece(p(Black, King, NewSquare(0, 7))) // a8, out of the way
		b.AddPiece(p(Black, Rook, NewSquare(4, 7))) // e8
	}, White, 0, neutralLoadouts(), 1)

	legal := g.LegalMoves(White)
	for _, m := range legal {
		if m.From != NewSquare(4, 3) {
			continue
		}
		assert.Equal(t, 4, m.To.File(), "a pinned rook may only move along the pin's own file")
	}

	// Sliding along the file (towards or away from the king, short of
	// exposing it) stays legal.
	foundAlongFile := false
	for _, m := range legal {
		if m.From == NewSquare(4, 3) && m.To == NewSquare(4, 4) {
			foundAlongFile = true
		}
	}
	assert.True(t, foundAlongFile, "moving along the pin line must remain legal")
}

// TestKingSafetyAllowsCaptureOfCheckingPiece confirms KingSafety doesn't
// over-filter: capturing the sole checking piece is legal.
func TestKingSafetyAllowsCaptureOfCheckingPiece(t *testing.T) {
	g := newCustomGame(t, func(b *Board) {
		b.AddPiece(p(White, King, NewSquare(4, 0))) // e1
		b.AddPiece(p(White, Rook, NewSquare(0, 3))) // a4
		b.AddPiece(p(Black, King, NewSquare(0, 7))) // a8
		b.AddPiece(p(Black, Rook, NewSquare(4, 3))) // e4, giving check down the e-file
	}, White, 0, neutralLoadouts(), 1)

	assert.True(t, g.InCheck(White))

	capture := findMove(t, g.LegalMoves(White), func(m Move) bool {
		return m.Kind == Normal && m.From == NewSquare(0, 3) && m.To == NewSquare(4, 3)
	})
	_, err := g.Push(capture)
	assert.NoError(t, err)
	assert.False(t, g.InCheck(White))
}
