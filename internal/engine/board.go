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

// Board is the square -> piece mapping. Invariants (spec.md 3):
// (a) at most one piece per square, (b) a stored piece's Pos equals its
// key, (c) exactly one King per color at all times.
type Board struct {
	squares [64]*piece.Piece
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// PieceAt returns the piece on s, or nil.
func (b *Board) PieceAt(s Square) *piece.Piece {
	if !s.IsValid() {
		return nil
	}
	return b.squares[s]
}

// AddPiece places p on p.Pos. Panics (corrupt-board bug, not a caller
// error) if the square is occupied.
func (b *Board) AddPiece(p *piece.Piece) {
	if b.squares[p.Pos] != nil {
		panic(fmt.Sprintf("engine: square %s already occupied", p.Pos))
	}
	b.squares[p.Pos] = p
}

// RemovePiece clears s, if occupied.
func (b *Board) RemovePiece(s Square) {
	b.squares[s] = nil
}

// MovePiece relocates the piece on from to to, updating its Pos.
func (b *Board) MovePiece(from, to Square) {
	p := b.squares[from]
	if p == nil {
		panic(fmt.Sprintf("engine: no piece on %s to move", from))
	}
	b.squares[from] = nil
	p.Pos = to
	b.squares[to] = p
}

// PiecesOf returns every piece of the given color. Order is board-index
// order so iteration is deterministic (RNG draws like Quantum Kill and
// misfire checks depend on everything upstream being reproducible).
func (b *Board) PiecesOf(c Color) []*piece.Piece {
	out := make([]*piece.Piece, 0, 16)
	for _, p := range b.squares {
		if p != nil && p.Color == c {
			out = append(out, p)
		}
	}
	return out
}

// AllPieces returns every piece on the board, in square-index order.
func (b *Board) AllPieces() []*piece.Piece {
	out := make([]*piece.Piece, 0, 32)
	for _, p := range b.squares {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// KingOf returns the king of color c. Panics if missing - invariant (c)
// means this should never happen mid-application.
func (b *Board) KingOf(c Color) *piece.Piece {
	for _, p := range b.squares {
		if p != nil && p.Color == c && p.Type == King {
			return p
		}
	}
	panic(fmt.Sprintf("engine: no king for %s - corrupt board", c))
}

// SetupStandard places the standard chess starting position.
func SetupStandard(b *Board) {
	backRank := [...]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f, pt := range backRank {
		b.AddPiece(piece.New(White, pt, NewSquare(f, 0)))
		b.AddPiece(piece.New(Black, pt, NewSquare(f, 7)))
	}
	for f := 0; f < 8; f++ {
		b.AddPiece(piece.New(White, Pawn, NewSquare(f, 1)))
		b.AddPiece(piece.New(Black, Pawn, NewSquare(f, 6)))
	}
}
