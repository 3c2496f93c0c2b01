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

	"github.com/arcanechess/engine/internal/piece"
	. "github.com/arcanechess/engine/internal/types"
)

// newCustomGame builds a Game from a caller-supplied board instead of
// the standard starting position, bypassing NewGame's SetupStandard
// call so scenario tests can exercise a single ability or interaction
// without the rest of a full army on the board. It is a thin
// test-local wrapper over NewCustomGame that fails the test on an
// invalid loadout instead of returning an error.
func newCustomGame(t *testing.T, place func(b *Board), side Color, castling CastlingRights, loadouts map[Color]Loadout, seed int64) *Game {
	t.Helper()
	g, err := NewCustomGame(place, side, castling, loadouts, DefaultDecisions{}, seed)
	assert.NoError(t, err)
	return g
}

func neutralLoadouts() map[Color]Loadout {
	return map[Color]Loadout{
		White: {Element: Water},
		Black: {Element: Water},
	}
}

func p(color Color, pt PieceType, sq Square) *piece.Piece {
	return piece.New(color, pt, sq)
}

// findMove returns the first legal move matching pred, failing the test
// if none does.
func findMove(t *testing.T, moves []Move, pred func(Move) bool) Move {
	t.Helper()
	for _, m := range moves {
		if pred(m) {
			return m
		}
	}
	t.Fatalf("no matching move found among %d candidates", len(moves))
	return Move{}
}
