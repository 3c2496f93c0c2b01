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
	"math/rand"

	. "github.com/arcanechess/engine/internal/types"
)

type zobristKeys struct {
	piece  [2][6][64]uint64
	side   uint64
	castle [4]uint64
	epFile [8]uint64
}

// zobrist is a process-wide constant table, built once from a fixed
// seed so the keys are identical across runs - this is a bootstrap
// constant, not part of any individual game's RNG stream.
var zobrist = buildZobristKeys()

func buildZobristKeys() *zobristKeys {
	r := rand.New(rand.NewSource(0xA1CAFE))
	z := &zobristKeys{}
	for c := 0; c < 2; c++ {
		for pt := 0; pt < 6; pt++ {
			for sq := 0; sq < 64; sq++ {
				z.piece[c][pt][sq] = r.Uint64()
			}
		}
	}
	z.side = r.Uint64()
	for i := range z.castle {
		z.castle[i] = r.Uint64()
	}
	for i := range z.epFile {
		z.epFile[i] = r.Uint64()
	}
	return z
}

func pieceKey(c Color, pt PieceType, sq Square) uint64 {
	return zobrist.piece[c][pt][sq]
}

var castleBits = [4]CastlingRights{WhiteKingside, WhiteQueenside, BlackKingside, BlackQueenside}

func xorCastle(h uint64, cr CastlingRights) uint64 {
	for i, bit := range castleBits {
		if cr.Has(bit) {
			h ^= zobrist.castle[i]
		}
	}
	return h
}

type trackerSnap struct {
	hash    uint64
	castle  CastlingRights
	epFile  int
}

// PositionTracker is the Position Tracker from spec.md 4.5: an
// incrementally maintained Zobrist hash, a repetition counter, and a
// lazy per-color attack cache. It implements Listener so it observes
// the same push/pop event stream the Resolution System does.
type PositionTracker struct {
	Hash           uint64
	CastleRights   CastlingRights
	EPFile         int

	rep map[uint64]int

	pushStack []trackerSnap

	attackDirty bool
	attackBB    map[Color]uint64
}

// NewPositionTracker bootstraps a tracker from g's current (starting)
// position and seeds the repetition table with that opening hash.
func NewPositionTracker(g *Game) *PositionTracker {
	t := &PositionTracker{
		EPFile:      -1,
		rep:         make(map[uint64]int),
		attackDirty: true,
	}
	t.CastleRights = g.CastlingRights
	t.Hash = t.RecomputeHash(g)
	t.rep[t.Hash] = 1
	return t
}

// OnEvent implements Listener.
func (t *PositionTracker) OnEvent(g *Game, ev Event) {
	switch ev.Kind {
	case MoveWillApply:
		t.pushStack = append(t.pushStack, trackerSnap{t.Hash, t.CastleRights, t.EPFile})
	case MoveApplied:
		t.applyIncremental(g, ev)
		t.rep[t.Hash]++
		t.attackDirty = true
	case MoveUndone:
		t.rep[t.Hash]--
		if t.rep[t.Hash] <= 0 {
			delete(t.rep, t.Hash)
		}
		n := len(t.pushStack) - 1
		top := t.pushStack[n]
		t.pushStack = t.pushStack[:n]
		t.Hash, t.CastleRights, t.EPFile = top.hash, top.castle, top.epFile
		t.attackDirty = true
	}
}

func (t *PositionTracker) applyIncremental(g *Game, ev Event) {
	h := t.Hash
	h = xorCastle(h, t.CastleRights)
	if t.EPFile >= 0 {
		h ^= zobrist.epFile[t.EPFile]
	}
	h ^= zobrist.side

	m := ev.Move
	switch m.Kind {
	case Normal:
		h ^= pieceKey(ev.Mover.Color, ev.Mover.Type, m.From)
		h ^= pieceKey(ev.Mover.Color, ev.Mover.Type, m.To)
		if ev.Captured != nil {
			h ^= pieceKey(ev.Captured.Color, ev.Captured.Type, m.To)
		}
	case EnPassant:
		h ^= pieceKey(ev.Mover.Color, ev.Mover.Type, m.From)
		h ^= pieceKey(ev.Mover.Color, ev.Mover.Type, m.To)
		if ev.Captured != nil {
			h ^= pieceKey(ev.Captured.Color, ev.Captured.Type, m.CapturedSq)
		}
	case Castle:
		h ^= pieceKey(ev.Mover.Color, King, m.From)
		h ^= pieceKey(ev.Mover.Color, King, m.To)
		h ^= pieceKey(ev.Mover.Color, Rook, m.RookFrom)
		h ^= pieceKey(ev.Mover.Color, Rook, m.RookTo)
	case Promotion:
		h ^= pieceKey(ev.Mover.Color, Pawn, m.From)
		h ^= pieceKey(ev.Mover.Color, m.PromoteTo, m.To)
		if ev.Captured != nil {
			h ^= pieceKey(ev.Captured.Color, ev.Captured.Type, m.To)
		}
	case RemoteCapture:
		if ev.Captured != nil {
			h ^= pieceKey(ev.Captured.Color, ev.Captured.Type, m.To)
		}
	default:
		t.Hash = t.RecomputeHash(g)
		t.CastleRights = g.CastlingRights
		t.EPFile = currentEPFile(g)
		return
	}

	t.CastleRights = g.CastlingRights
	t.EPFile = currentEPFile(g)
	h = xorCastle(h, t.CastleRights)
	if t.EPFile >= 0 {
		h ^= zobrist.epFile[t.EPFile]
	}
	t.Hash = h
}

func currentEPFile(g *Game) int {
	if g.LastMove != nil && g.LastMove.HasFlag("double_pawn_push") {
		return g.LastMove.To.File()
	}
	return -1
}

// RecomputeHash rebuilds the hash from scratch without mutating t, used
// both for the "unknown move class" safety net and for the Zobrist
// soundness testable property (spec.md 8).
func (t *PositionTracker) RecomputeHash(g *Game) uint64 {
	var h uint64
	for _, p := range g.Board.AllPieces() {
		h ^= pieceKey(p.Color, p.Type, p.Pos)
	}
	if g.Side == Black {
		h ^= zobrist.side
	}
	h = xorCastle(h, g.CastlingRights)
	if ep := currentEPFile(g); ep >= 0 {
		h ^= zobrist.epFile[ep]
	}
	return h
}

// IsThreefold reports whether the current hash has recurred at least
// three times.
func (t *PositionTracker) IsThreefold() bool {
	return t.rep[t.Hash] >= 3
}

func (t *PositionTracker) rebuildAttacks(g *Game) {
	bb := map[Color]uint64{White: 0, Black: 0}
	for _, p := range g.Board.AllPieces() {
		for _, sq := range attackSquaresFrom(g, p, p.Pos) {
			bb[p.Color] |= 1 << uint(sq)
		}
	}
	t.attackBB = bb
	t.attackDirty = false
}

// Invalidate marks the attack cache dirty without touching the hash or
// repetition table. PushQuiet/PopQuiet mutate the board without going
// through the event stream, so they call this directly instead of
// relying on OnEvent.
func (t *PositionTracker) Invalidate() {
	t.attackDirty = true
}

// IsSquareAttacked rebuilds the lazy attack cache on demand and answers
// from it.
func (t *PositionTracker) IsSquareAttacked(g *Game, sq Square, by Color) bool {
	if t.attackDirty || t.attackBB == nil {
		t.rebuildAttacks(g)
	}
	return t.attackBB[by]&(1<<uint(sq)) != 0
}
