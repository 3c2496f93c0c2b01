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

package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcanechess/engine/internal/engine"
	"github.com/arcanechess/engine/internal/piece"
	. "github.com/arcanechess/engine/internal/types"
)

// Perft results from https://www.chessprogramming.org/Perft_Results for
// the standard starting position. Armies are loadout-neutral (no items,
// no abilities) so ChainKill/CaptureDefense never fire and the tree
// matches plain chess exactly.
//
//nolint:gochecknoglobals
var standardResults = [6][6]uint64{
	// depth      nodes   captures       ep     checks    mates
	{0, 1, 0, 0, 0, 0},
	{1, 20, 0, 0, 0, 0},
	{2, 400, 0, 0, 0, 0},
	{3, 8902, 34, 0, 12, 0},
	{4, 197281, 1576, 0, 469, 8},
	{5, 4865609, 82719, 258, 27351, 347},
}

func neutralGame(t *testing.T) *engine.Game {
	t.Helper()
	loadouts := map[Color]engine.Loadout{
		White: {Element: Water},
		Black: {Element: Water},
	}
	g, err := engine.NewGame(loadouts, nil, 1)
	assert.NoError(t, err)
	return g
}

func TestStandardPerft(t *testing.T) {
	maxDepth := 4
	if testing.Short() {
		maxDepth = 3
	}
	g := neutralGame(t)
	for depth := 1; depth <= maxDepth; depth++ {
		c := Run(g, depth)
		assert.Equalf(t, standardResults[depth][1], c.Nodes, "depth %d nodes", depth)
		assert.Equalf(t, standardResults[depth][2], c.Captures, "depth %d captures", depth)
		assert.Equalf(t, standardResults[depth][3], c.EnPassant, "depth %d en passant", depth)
		assert.Equalf(t, standardResults[depth][4], c.Checks, "depth %d checks", depth)
		assert.Equalf(t, standardResults[depth][5], c.Checkmates, "depth %d checkmates", depth)
		assert.Equal(t, White, g.Side, "perft must leave the game at its starting position")
	}
}

func TestStandardPerftDepth5(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 5 perft is slow; run with -short=false")
	}
	g := neutralGame(t)
	c := Run(g, 5)
	assert.Equal(t, standardResults[5][1], c.Nodes)
	assert.Equal(t, standardResults[5][2], c.Captures)
	assert.Equal(t, standardResults[5][3], c.EnPassant)
}

// kiwipeteResults are the well-known node counts for "Kiwipete"
// (r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1),
// chosen for its dense mix of captures, castles and en passant rights
// on both sides (spec.md:174).
//
//nolint:gochecknoglobals
var kiwipeteResults = [4]uint64{0, 48, 2039, 97862}

func kiwipeteGame(t *testing.T) *engine.Game {
	t.Helper()
	place := func(b *engine.Board) {
		add := func(color Color, pt PieceType, sq Square) { b.AddPiece(piece.New(color, pt, sq)) }
		// rank 8
		add(Black, Rook, NewSquare(0, 7))
		add(Black, King, NewSquare(4, 7))
		add(Black, Rook, NewSquare(7, 7))
		// rank 7
		add(Black, Pawn, NewSquare(0, 6))
		add(Black, Pawn, NewSquare(2, 6))
		add(Black, Pawn, NewSquare(3, 6))
		add(Black, Queen, NewSquare(4, 6))
		add(Black, Pawn, NewSquare(5, 6))
		add(Black, Bishop, NewSquare(6, 6))
		// rank 6
		add(Black, Bishop, NewSquare(0, 5))
		add(Black, Knight, NewSquare(1, 5))
		add(Black, Pawn, NewSquare(4, 5))
		add(Black, Knight, NewSquare(5, 5))
		add(Black, Pawn, NewSquare(6, 5))
		// rank 5
		add(White, Pawn, NewSquare(3, 4))
		add(White, Knight, NewSquare(4, 4))
		// rank 4
		add(Black, Pawn, NewSquare(1, 3))
		add(White, Pawn, NewSquare(4, 3))
		// rank 3
		add(White, Knight, NewSquare(2, 2))
		add(White, Queen, NewSquare(5, 2))
		add(Black, Pawn, NewSquare(7, 2))
		// rank 2
		add(White, Pawn, NewSquare(0, 1))
		add(White, Pawn, NewSquare(1, 1))
		add(White, Pawn, NewSquare(2, 1))
		add(White, Bishop, NewSquare(3, 1))
		add(White, Bishop, NewSquare(4, 1))
		add(White, Pawn, NewSquare(5, 1))
		add(White, Pawn, NewSquare(6, 1))
		add(White, Pawn, NewSquare(7, 1))
		// rank 1
		add(White, Rook, NewSquare(0, 0))
		add(White, King, NewSquare(4, 0))
		add(White, Rook, NewSquare(7, 0))
	}
	loadouts := map[Color]engine.Loadout{
		White: {Element: Water},
		Black: {Element: Water},
	}
	castling := WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
	g, err := engine.NewCustomGame(place, White, castling, loadouts, nil, 1)
	assert.NoError(t, err)
	return g
}

func TestKiwipetePerft(t *testing.T) {
	g := kiwipeteGame(t)
	for depth := 1; depth <= 3; depth++ {
		c := Run(g, depth)
		assert.Equalf(t, kiwipeteResults[depth], c.Nodes, "kiwipete depth %d nodes", depth)
		assert.Equal(t, White, g.Side, "perft must leave the game at its starting position")
	}
}
