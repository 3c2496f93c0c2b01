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
	"github.com/arcanechess/engine/internal/piece"
	. "github.com/arcanechess/engine/internal/types"
)

var knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
var kingOffsets = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
var bishopDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var rookDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
var queenDirs = [8][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// slideCanPassThrough is the hook spec.md 4.1 reserves so a future
// ability or elemental affinity could let a slider's ray continue past
// the first blocker. No ability in this army's set grants phasing, so
// it always answers false; the hook stays wired into every ray walk so
// adding one later touches a single function.
func slideCanPassThrough(g *Game, p *piece.Piece) bool {
	return false
}

// attackSquaresFrom is pure movement geometry for p as if standing on
// from: it does not filter by occupant color, matching spec.md 4.1's
// attack-set semantics (attacked squares include own-colored ones).
// ChainKill reuses this to project a piece's captures from an ally
// square, and the Position Tracker's attack cache reuses it to build
// per-color attack bitboards.
func attackSquaresFrom(g *Game, p *piece.Piece, from Square) []Square {
	switch p.Type {
	case Knight:
		return stepSquares(from, knightOffsets[:])
	case King:
		return stepSquares(from, kingOffsets[:])
	case Bishop:
		return slideSquares(g, p, from, bishopDirs[:])
	case Rook:
		return slideSquares(g, p, from, rookDirs[:])
	case Queen:
		return slideSquares(g, p, from, queenDirs[:])
	case Pawn:
		dir := 1
		if p.Color == Black {
			dir = -1
		}
		var out []Square
		for _, df := range [2]int{-1, 1} {
			if to := from.Offset(df, dir); to.IsValid() {
				out = append(out, to)
			}
		}
		return out
	default:
		return nil
	}
}

func stepSquares(from Square, offsets [][2]int) []Square {
	var out []Square
	for _, o := range offsets {
		if to := from.Offset(o[0], o[1]); to.IsValid() {
			out = append(out, to)
		}
	}
	return out
}

func slideSquares(g *Game, p *piece.Piece, from Square, dirs [][2]int) []Square {
	pass := slideCanPassThrough(g, p)
	var out []Square
	for _, d := range dirs {
		sq := from
		for {
			sq = sq.Offset(d[0], d[1])
			if !sq.IsValid() {
				break
			}
			out = append(out, sq)
			if g.Board.PieceAt(sq) != nil && !pass {
				break
			}
		}
	}
	return out
}

// pseudoLegalMoves generates every move for color before the rule
// pipeline runs: steps, slides, pawn pushes/captures/en passant, and
// castling.
func pseudoLegalMoves(g *Game, color Color) []Move {
	var moves []Move
	for _, p := range g.Board.PiecesOf(color) {
		switch p.Type {
		case Pawn:
			moves = append(moves, pawnMoves(g, p)...)
		case King:
			moves = append(moves, nonSlideMoves(g, p)...)
			moves = append(moves, castleMoves(g, p)...)
		case Knight:
			moves = append(moves, nonSlideMoves(g, p)...)
		default:
			moves = append(moves, nonSlideMoves(g, p)...)
		}
	}
	return moves
}

// nonSlideMoves covers steppers and sliders alike: attackSquaresFrom
// already stops a slider's ray at the first blocker, so the only extra
// work here is excluding a square occupied by a piece of p's own color.
func nonSlideMoves(g *Game, p *piece.Piece) []Move {
	var moves []Move
	for _, sq := range attackSquaresFrom(g, p, p.Pos) {
		occ := g.Board.PieceAt(sq)
		if occ != nil && occ.Color == p.Color {
			continue
		}
		moves = append(moves, Move{Kind: Normal, From: p.Pos, To: sq})
	}
	return moves
}

var promoTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

func promotionMoves(from, to Square) []Move {
	moves := make([]Move, 0, 4)
	for _, pt := range promoTypes {
		moves = append(moves, Move{Kind: Promotion, From: from, To: to, PromoteTo: pt})
	}
	return moves
}

func pawnMoves(g *Game, p *piece.Piece) []Move {
	var moves []Move
	b := g.Board
	dir := 1
	startRank, lastRank := 1, 7
	if p.Color == Black {
		dir, startRank, lastRank = -1, 6, 0
	}

	if oneTo := p.Pos.Offset(0, dir); oneTo.IsValid() && b.PieceAt(oneTo) == nil {
		if oneTo.Rank() == lastRank {
			moves = append(moves, promotionMoves(p.Pos, oneTo)...)
		} else {
			moves = append(moves, Move{Kind: Normal, From: p.Pos, To: oneTo})
			if p.Pos.Rank() == startRank {
				if twoTo := p.Pos.Offset(0, 2*dir); b.PieceAt(twoTo) == nil {
					moves = append(moves, Move{Kind: Normal, From: p.Pos, To: twoTo, Flags: []string{"double_pawn_push"}})
				}
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to := p.Pos.Offset(df, dir)
		if !to.IsValid() {
			continue
		}
		occ := b.PieceAt(to)
		switch {
		case occ != nil && occ.Color != p.Color:
			if to.Rank() == lastRank {
				moves = append(moves, promotionMoves(p.Pos, to)...)
			} else {
				moves = append(moves, Move{Kind: Normal, From: p.Pos, To: to})
			}
		case occ == nil:
			if capSq, ok := enPassantCapture(g, p, to); ok {
				moves = append(moves, Move{Kind: EnPassant, From: p.Pos, To: to, CapturedSq: capSq})
			}
		}
	}
	return moves
}

// enPassantCapture reports whether a pawn capture landing on the empty
// square to is a legal en passant, per spec.md 4.1: the immediately
// prior move must have been a double_pawn_push by an opposing pawn now
// sitting adjacent on the capturer's rank.
func enPassantCapture(g *Game, p *piece.Piece, to Square) (Square, bool) {
	lm := g.LastMove
	if lm == nil || !lm.HasFlag("double_pawn_push") {
		return SquareNone, false
	}
	capSq := NewSquare(to.File(), p.Pos.Rank())
	if lm.To != capSq {
		return SquareNone, false
	}
	victim := g.Board.PieceAt(capSq)
	if victim == nil || victim.Color == p.Color || victim.Type != Pawn {
		return SquareNone, false
	}
	return capSq, true
}

func allEmpty(b *Board, squares []Square) bool {
	for _, sq := range squares {
		if b.PieceAt(sq) != nil {
			return false
		}
	}
	return true
}

func noneAttacked(g *Game, squares []Square, by Color) bool {
	for _, sq := range squares {
		if g.IsSquareAttacked(sq, by) {
			return false
		}
	}
	return true
}

// castleMoves implements spec.md 4.1: both king and the chosen rook
// unmoved, king not currently in check, squares between empty, and the
// king's traversed squares (including destination) not attacked.
func castleMoves(g *Game, k *piece.Piece) []Move {
	if k.HasMoved || g.InCheck(k.Color) {
		return nil
	}
	homeRank := 0
	if k.Color == Black {
		homeRank = 7
	}
	var moves []Move
	opp := k.Color.Opponent()

	if g.CastlingRights.Has(KingsideFor(k.Color)) {
		rookSq := NewSquare(7, homeRank)
		if rook := g.Board.PieceAt(rookSq); rook != nil && rook.Type == Rook && !rook.HasMoved {
			between := []Square{NewSquare(5, homeRank), NewSquare(6, homeRank)}
			if allEmpty(g.Board, between) && noneAttacked(g, between, opp) {
				moves = append(moves, Move{
					Kind: Castle, From: k.Pos, To: NewSquare(6, homeRank),
					RookFrom: rookSq, RookTo: NewSquare(5, homeRank),
				})
			}
		}
	}
	if g.CastlingRights.Has(QueensideFor(k.Color)) {
		rookSq := NewSquare(0, homeRank)
		if rook := g.Board.PieceAt(rookSq); rook != nil && rook.Type == Rook && !rook.HasMoved {
			between := []Square{NewSquare(1, homeRank), NewSquare(2, homeRank), NewSquare(3, homeRank)}
			traversed := []Square{NewSquare(2, homeRank), NewSquare(3, homeRank)}
			if allEmpty(g.Board, between) && noneAttacked(g, traversed, opp) {
				moves = append(moves, Move{
					Kind: Castle, From: k.Pos, To: NewSquare(2, homeRank),
					RookFrom: rookSq, RookTo: NewSquare(3, homeRank),
				})
			}
		}
	}
	return moves
}
