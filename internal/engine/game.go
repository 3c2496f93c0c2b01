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
	"math/rand"

	"github.com/arcanechess/engine/internal/assert"
	"github.com/arcanechess/engine/internal/piece"
	. "github.com/arcanechess/engine/internal/types"
)

// Game is the Game Core: board, clocks, the rule pipeline, the listener
// set, and the arcane resources that back the Resolution System. Rules
// and Listeners are wired by NewGame in the fixed order spec.md 4.2 and
// 4.4 require; callers should not reorder them after construction.
type Game struct {
	Board *Board
	Side  Color

	LastMove          *Move
	HalfmoveClock     int
	FullmoveNum       int
	CastlingRights    CastlingRights

	Stack      []*Undo
	quietStack []*Undo

	Rules     []Rule
	Listeners []Listener

	Arcane    *ArcaneState
	Loadouts  map[Color]Loadout
	Decisions DecisionProvider
	RNG       *rand.Rand

	tracker *PositionTracker

	// pendingErr surfaces a DecisionProvider's ErrNeedDecision from deep
	// inside a listener (Listener.OnEvent has no error return) back out
	// through Push. Per spec.md 5/7, the engine does not unwind on its
	// own - the host must Pop back to the pre-apply depth.
	pendingErr error
}

// NewGame constructs a standard starting position with the given
// per-color loadouts, wiring the rule pipeline and listener set spec.md
// 4.2/4.4 prescribe, and bootstrapping arcane resources per spec.md 4.7.
func NewGame(loadouts map[Color]Loadout, decisions DecisionProvider, seed int64) (*Game, error) {
	for c, lo := range loadouts {
		if err := lo.Validate(); err != nil {
			return nil, fmt.Errorf("engine: invalid loadout for %s: %w", c, err)
		}
	}
	b := NewBoard()
	SetupStandard(b)
	if decisions == nil {
		decisions = DefaultDecisions{}
	}
	g := &Game{
		Board:          b,
		Side:           White,
		CastlingRights: WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside,
		FullmoveNum:    1,
		Rules:          []Rule{ChainKillRule, CaptureDefenseRule, KingSafety},
		Arcane:         NewArcaneState(),
		Loadouts:       loadouts,
		Decisions:      decisions,
		RNG:            rand.New(rand.NewSource(seed)),
	}
	g.tracker = NewPositionTracker(g)
	g.Listeners = []Listener{ResolutionSystem{}, g.tracker}
	g.bootstrapResources()
	return g, nil
}

// NewCustomGame builds a Game from a caller-supplied piece placement
// instead of the standard starting position - the composition a FEN
// parser would otherwise provide, which is out of scope here (spec.md
// 1, Non-goals). place is called once against an empty Board; side and
// castling set the initial side-to-move and castling rights directly,
// since there is no notation to derive them from.
func NewCustomGame(place func(b *Board), side Color, castling CastlingRights, loadouts map[Color]Loadout, decisions DecisionProvider, seed int64) (*Game, error) {
	for c, lo := range loadouts {
		if err := lo.Validate(); err != nil {
			return nil, fmt.Errorf("engine: invalid loadout for %s: %w", c, err)
		}
	}
	b := NewBoard()
	place(b)
	if decisions == nil {
		decisions = DefaultDecisions{}
	}
	g := &Game{
		Board:          b,
		Side:           side,
		CastlingRights: castling,
		FullmoveNum:    1,
		Rules:          []Rule{ChainKillRule, CaptureDefenseRule, KingSafety},
		Arcane:         NewArcaneState(),
		Loadouts:       loadouts,
		Decisions:      decisions,
		RNG:            rand.New(rand.NewSource(seed)),
	}
	g.tracker = NewPositionTracker(g)
	g.Listeners = []Listener{ResolutionSystem{}, g.tracker}
	g.bootstrapResources()
	return g, nil
}

// bootstrapResources implements spec.md 4.7's resource bootstrapping.
func (g *Game) bootstrapResources() {
	for _, c := range [...]Color{White, Black} {
		lo := g.Loadouts[c]
		opp := g.Loadouts[c.Opponent()]
		if lo.HasItem(Solar) {
			g.Arcane.SolarUses[c] = SolarMaxUses
		}
		base := 0
		if g.hasArmyAbility(lo, Necromancer) {
			base = 1
			if lo.Element == Water && opp.Element != Lightning {
				base = 2
			}
		}
		g.Arcane.NecroPool[c] = base
		g.Arcane.NecroMax[c] = base
	}
	for _, p := range g.Board.AllPieces() {
		lo := g.Loadouts[p.Color]
		opp := g.Loadouts[p.Color.Opponent()]
		if !g.hasAbilityFor(lo, Redo, p.Type) {
			continue
		}
		charges := 1
		if lo.Element == Water && opp.Element != Lightning {
			charges = 2
		}
		g.Arcane.RedoMax[p.UID] = charges
		g.Arcane.RedoCharges[p.UID] = charges
	}
}

func (g *Game) hasArmyAbility(lo Loadout, a Ability) bool {
	for _, s := range lo.Abilities {
		if s.Ability == a {
			return true
		}
	}
	return false
}

func (g *Game) hasAbilityFor(lo Loadout, a Ability, pt PieceType) bool {
	for _, s := range lo.Abilities {
		if s.Ability != a {
			continue
		}
		if s.PieceType == nil || *s.PieceType == pt {
			return true
		}
	}
	return false
}

// HasAbility reports whether p's army grants it ability a, either
// army-wide or scoped to p's own piece type.
func (g *Game) HasAbility(p *piece.Piece, a Ability) bool {
	return g.hasAbilityFor(g.Loadouts[p.Color], a, p.Type)
}

func (g *Game) emit(ev Event) {
	for _, l := range g.Listeners {
		l.OnEvent(g, ev)
	}
}

// LegalMoves returns color's legal moves: pseudo-legal generation
// followed by the ChainKill, CaptureDefense and KingSafety filters in
// that order (spec.md 4.2).
func (g *Game) LegalMoves(color Color) []Move {
	moves := pseudoLegalMoves(g, color)
	for _, r := range g.Rules {
		moves = r.Filter(g, color, moves)
	}
	return moves
}

// InCheck reports whether color's king is currently attacked.
func (g *Game) InCheck(color Color) bool {
	king := g.Board.KingOf(color)
	return g.IsSquareAttacked(king.Pos, color.Opponent())
}

// IsSquareAttacked reports whether sq is attacked by any piece of color by.
func (g *Game) IsSquareAttacked(sq Square, by Color) bool {
	return g.tracker.IsSquareAttacked(g, sq, by)
}

// Push validates m against LegalMoves(g.Side), applies it, and runs the
// Resolution System. It returns the move's Undo record. A non-nil error
// means either the move was illegal (the stack is untouched) or a
// DecisionProvider asked for an external decision mid-resolution (the
// stack was partially mutated; per spec.md 5 the caller MUST Pop back to
// the pre-apply depth before doing anything else with g).
func (g *Game) Push(m Move) (*Undo, error) {
	legal := g.LegalMoves(g.Side)
	matched := false
	for _, lm := range legal {
		if lm.SameAs(m) && lm.PromoteTo == m.PromoteTo && lm.OriginSq == m.OriginSq {
			m = lm
			matched = true
			break
		}
	}
	if !matched {
		return nil, fmt.Errorf("engine: illegal move %s", m)
	}

	mover := g.Board.PieceAt(m.From)
	assert.Assert(mover != nil && mover.Color == g.Side, "engine: mover resolution failed for legal move %s", m)

	g.emit(Event{Kind: MoveWillApply, Move: m, Mover: mover})

	u := newUndo(g.LastMove, g.Side)
	u.PrevHalfmoveClock = g.HalfmoveClock
	u.PrevFullmoveNum = g.FullmoveNum
	u.PrevCastlingRights = g.CastlingRights
	applyMove(g, m, mover, u, false)
	g.Stack = append(g.Stack, u)

	preSide := u.PrevSide
	if u.Mover.Type == Pawn || u.Captured != nil {
		g.HalfmoveClock = 0
	} else {
		g.HalfmoveClock++
	}
	if preSide == Black {
		g.FullmoveNum++
	}
	g.Side = preSide.Opponent()
	mv := m
	g.LastMove = &mv

	g.pendingErr = nil
	g.emit(Event{Kind: MoveApplied, Move: m, Mover: u.Mover, Captured: u.Captured})
	if g.pendingErr != nil {
		err := g.pendingErr
		g.pendingErr = nil
		return u, err
	}
	return u, nil
}

// Pop reverses the top Undo on the stack and emits MoveUndone.
func (g *Game) Pop() error {
	if len(g.Stack) == 0 {
		return fmt.Errorf("engine: pop on empty stack")
	}
	u := g.Stack[len(g.Stack)-1]
	g.Stack = g.Stack[:len(g.Stack)-1]
	undoMove(g, u)
	if snap, ok := u.Extras[arcaneUndoableKey].(*ArcaneUndoableSnapshot); ok {
		g.Arcane.restoreUndoable(snap)
	}
	g.Side = u.PrevSide
	g.HalfmoveClock = u.PrevHalfmoveClock
	g.FullmoveNum = u.PrevFullmoveNum
	g.LastMove = u.PrevLastMove
	g.CastlingRights = u.PrevCastlingRights
	g.emit(Event{Kind: MoveUndone, Move: u.Move, Mover: u.Mover, Captured: u.Captured})
	return nil
}

// PushQuiet applies m without emitting events or invoking listeners,
// recording its Undo on a separate quiet stack so it cannot disturb the
// Redo rewind depth math on the main stack. Used by KingSafety and
// perft (spec.md 4.2, 4.5, GLOSSARY "Quiet push/pop").
func (g *Game) PushQuiet(m Move) *Undo {
	mover := g.Board.PieceAt(m.From)
	u := newUndo(g.LastMove, g.Side)
	u.PrevCastlingRights = g.CastlingRights
	applyMove(g, m, mover, u, true)
	g.quietStack = append(g.quietStack, u)
	g.Side = u.PrevSide.Opponent()
	mv := m
	g.LastMove = &mv
	g.tracker.Invalidate()
	return u
}

// PopQuiet reverses the top quiet Undo.
func (g *Game) PopQuiet() {
	n := len(g.quietStack)
	u := g.quietStack[n-1]
	g.quietStack = g.quietStack[:n-1]
	undoMove(g, u)
	g.Side = u.PrevSide
	g.LastMove = u.PrevLastMove
	g.CastlingRights = u.PrevCastlingRights
	g.tracker.Invalidate()
}

var homeSquareRights = map[Square]CastlingRights{
	NewSquare(4, 0): WhiteKingside | WhiteQueenside,
	NewSquare(0, 0): WhiteQueenside,
	NewSquare(7, 0): WhiteKingside,
	NewSquare(4, 7): BlackKingside | BlackQueenside,
	NewSquare(0, 7): BlackQueenside,
	NewSquare(7, 7): BlackKingside,
}

func (g *Game) touchCastlingRights(sq Square) {
	if mask, ok := homeSquareRights[sq]; ok {
		g.CastlingRights = g.CastlingRights.Clear(mask)
	}
}

// applyMove performs the pure board mutation for m, populating u. It
// never touches Side, clocks, or LastMove - Push/PushQuiet own those
// (PushQuiet sets Side and LastMove only; clocks are left alone).
func applyMove(g *Game, m Move, mover *piece.Piece, u *Undo, quiet bool) {
	b := g.Board
	u.Move = m
	u.Mover = mover
	u.PostCapturer = mover

	switch m.Kind {
	case Normal:
		if captured := b.PieceAt(m.To); captured != nil {
			u.captured = append(u.captured, changedEntry{captured, captured.Pos, captured.HasMoved})
			b.RemovePiece(captured.Pos)
			u.Captured = captured
		}
		u.changed = append(u.changed, changedEntry{mover, mover.Pos, mover.HasMoved})
		g.touchCastlingRights(mover.Pos)
		g.touchCastlingRights(m.To)
		b.MovePiece(mover.Pos, m.To)
		mover.HasMoved = true

	case EnPassant:
		captured := b.PieceAt(m.CapturedSq)
		assert.Assert(captured != nil, "engine: en passant with no pawn on %s", m.CapturedSq)
		u.captured = append(u.captured, changedEntry{captured, captured.Pos, captured.HasMoved})
		b.RemovePiece(m.CapturedSq)
		u.Captured = captured
		u.changed = append(u.changed, changedEntry{mover, mover.Pos, mover.HasMoved})
		b.MovePiece(mover.Pos, m.To)
		mover.HasMoved = true

	case Castle:
		rook := b.PieceAt(m.RookFrom)
		assert.Assert(rook != nil, "engine: castle with no rook on %s", m.RookFrom)
		u.changed = append(u.changed, changedEntry{mover, mover.Pos, mover.HasMoved})
		u.changed = append(u.changed, changedEntry{rook, rook.Pos, rook.HasMoved})
		g.touchCastlingRights(mover.Pos)
		b.MovePiece(mover.Pos, m.To)
		mover.HasMoved = true
		b.MovePiece(rook.Pos, m.RookTo)
		rook.HasMoved = true

	case Promotion:
		if captured := b.PieceAt(m.To); captured != nil {
			u.captured = append(u.captured, changedEntry{captured, captured.Pos, captured.HasMoved})
			b.RemovePiece(captured.Pos)
			u.Captured = captured
		}
		g.touchCastlingRights(m.To)
		u.removed = append(u.removed, changedEntry{mover, mover.Pos, mover.HasMoved})
		b.RemovePiece(mover.Pos)
		promoted := piece.New(mover.Color, m.PromoteTo, m.To)
		b.AddPiece(promoted)
		u.added = append(u.added, promoted)
		u.PostCapturer = promoted

	case RemoteCapture:
		u.changed = append(u.changed, changedEntry{mover, mover.Pos, mover.HasMoved})
		mover.HasMoved = true
		target := b.PieceAt(m.To)
		if target != nil {
			misfired := false
			if !quiet {
				draw := g.RNG.Float64()
				attackerEl := g.Loadouts[mover.Color].Element
				defenderEl := g.Loadouts[target.Color].Element
				misfired = lightningMisfireApplies(attackerEl, defenderEl) && draw < 0.5
			}
			if misfired {
				u.Effects = append(u.Effects, Effect{Type: "remote_capture_misfire", Data: map[string]interface{}{"sq": m.To.String()}})
			} else {
				u.captured = append(u.captured, changedEntry{target, target.Pos, target.HasMoved})
				b.RemovePiece(m.To)
				u.Captured = target
			}
		}

	default:
		panic(fmt.Sprintf("engine: unknown move kind %v", m.Kind))
	}
}

// undoMove is the inverse of applyMove: it restores board state only,
// leaving Side/clocks/LastMove/arcane restoration to the caller.
func undoMove(g *Game, u *Undo) {
	b := g.Board

	for i := len(u.added) - 1; i >= 0; i-- {
		b.RemovePiece(u.added[i].Pos)
	}
	for i := len(u.removed) - 1; i >= 0; i-- {
		e := u.removed[i]
		e.p.Pos = e.priorPos
		e.p.HasMoved = e.priorHM
		b.AddPiece(e.p)
	}
	for i := len(u.changed) - 1; i >= 0; i-- {
		e := u.changed[i]
		b.RemovePiece(e.p.Pos)
		e.p.Pos = e.priorPos
		e.p.HasMoved = e.priorHM
		b.AddPiece(e.p)
	}
	for i := len(u.captured) - 1; i >= 0; i-- {
		e := u.captured[i]
		e.p.Pos = e.priorPos
		e.p.HasMoved = e.priorHM
		b.AddPiece(e.p)
	}
	for i := len(u.metaSnaps) - 1; i >= 0; i-- {
		s := u.metaSnaps[i]
		s.p.Meta = s.meta
	}
}
