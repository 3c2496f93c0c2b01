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

func eightNeighbors(sq Square) []Square {
	return stepSquares(sq, kingOffsets[:])
}

// ChainKill injects synthetic RemoteCapture moves (spec.md 4.2): for
// every piece of color holding CHAIN_KILL, for every adjacent square
// occupied by an allied piece, compute that piece's native capture
// geometry as if it stood on the ally square, and emit a remote capture
// for each enemy target, subject to the pre-emission elemental gates.
var ChainKillRule Rule = RuleFunc(func(g *Game, color Color, moves []Move) []Move {
	for _, p := range g.Board.PiecesOf(color) {
		if !g.HasAbility(p, ChainKill) {
			continue
		}
		for _, allySq := range eightNeighbors(p.Pos) {
			ally := g.Board.PieceAt(allySq)
			if ally == nil || ally.Color != p.Color {
				continue
			}
			for _, t := range attackSquaresFrom(g, p, allySq) {
				target := g.Board.PieceAt(t)
				if target == nil || target.Color == p.Color {
					continue
				}
				attackerEl := g.Loadouts[p.Color].Element
				defenderEl := g.Loadouts[target.Color].Element
				if earthBlocksRemote(attackerEl, defenderEl) {
					continue
				}
				if fireNoOpVsWater(attackerEl, defenderEl) {
					continue
				}
				moves = append(moves, Move{Kind: RemoteCapture, From: p.Pos, To: t, OriginSq: allySq})
			}
		}
	}
	return moves
})

// CaptureDefense drops captures vetoed by the defender's BlockPath,
// Stalwart or Belligerent, unless the attacker is Air against a
// non-Earth defender (spec.md 4.2).
var CaptureDefenseRule Rule = RuleFunc(func(g *Game, color Color, moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if keepCapture(g, m) {
			out = append(out, m)
		}
	}
	return out
})

func keepCapture(g *Game, m Move) bool {
	defender := g.Board.PieceAt(m.CaptureSquare())
	if defender == nil {
		return true
	}
	attacker := g.Board.PieceAt(m.From)
	if attacker == nil {
		return true
	}

	attackerEl := g.Loadouts[attacker.Color].Element
	defenderEl := g.Loadouts[defender.Color].Element
	if airNegatesDefense(attackerEl, defenderEl) {
		return true
	}

	if g.HasAbility(defender, BlockPath) {
		if dirStr, ok := defender.Meta[piece.MetaBlockDir]; ok {
			if dir, aligned := DirectionFrom(defender.Pos, m.EffectiveOrigin()); aligned && dir.String() == dirStr {
				return false
			}
		}
	}
	if g.HasAbility(defender, Stalwart) && attacker.Type.Rank() < defender.Type.Rank() {
		return false
	}
	if g.HasAbility(defender, Belligerent) && attacker.Type.Rank() > defender.Type.Rank() {
		return false
	}
	return true
}
