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

// ResolutionSystem is the MoveApplied listener that runs the fixed
// sequence from spec.md 4.4: Block Path selection, Redo rewind,
// Poisoned Dagger, and the offensive triggers, gated by the elemental
// interaction matrix.
type ResolutionSystem struct{}

// OnEvent implements Listener.
func (ResolutionSystem) OnEvent(g *Game, ev Event) {
	if ev.Kind != MoveApplied {
		return
	}
	g.resolve(ev)
}

func (g *Game) resolve(ev Event) {
	u := g.Stack[len(g.Stack)-1]
	mover := ev.Mover
	postCapturer := u.PostCapturer

	if g.HasAbility(postCapturer, BlockPath) {
		u.snapshotPieceMeta(postCapturer)
		dir, err := g.Decisions.ChooseBlockPathDir(g, postCapturer)
		if err != nil {
			g.pendingErr = err
			return
		}
		if postCapturer.Meta == nil {
			postCapturer.Meta = make(map[string]string)
		}
		postCapturer.Meta[piece.MetaBlockDir] = dir.String()
		u.Effects = append(u.Effects, Effect{Type: "block_path", Data: map[string]interface{}{"uid": postCapturer.UID, "dir": dir.String()}})
	}

	captured := ev.Captured
	if captured == nil {
		return
	}

	u.Effects = append(u.Effects, Effect{Type: "capture", Data: map[string]interface{}{"captured_uid": captured.UID, "sq": u.Move.CaptureSquare().String()}})
	g.snapshotArcaneOnce(u)
	g.Arcane.Graveyard[captured.Color] = append(g.Arcane.Graveyard[captured.Color], GraveyardEntry{Piece: captured, Square: u.Move.CaptureSquare()})

	attackerEl := g.Loadouts[mover.Color].Element
	defenderEl := g.Loadouts[captured.Color].Element
	airNegated := airNegatesDefense(attackerEl, defenderEl)

	if !airNegated && g.HasAbility(captured, Redo) && g.Arcane.RedoCharges[captured.UID] > 0 && len(g.Stack) >= 2 {
		g.runRedo(u, captured)
		return
	}

	fireFirst := attackerEl == Fire
	fireVsWater := fireNoOpVsWater(attackerEl, defenderEl)
	misfireDraw := g.RNG.Float64()
	misfired := lightningMisfireApplies(attackerEl, defenderEl) && misfireDraw < 0.5
	offensiveIsNoOp := fireVsWater || misfired

	if fireFirst {
		if !offensiveIsNoOp {
			g.runOffensiveTriggers(u, mover, captured)
		}
		g.runPoisonedDagger(u, mover, captured, postCapturer)
	} else {
		g.runPoisonedDagger(u, mover, captured, postCapturer)
		if g.Board.PieceAt(postCapturer.Pos) == postCapturer && !offensiveIsNoOp {
			g.runOffensiveTriggers(u, mover, captured)
		}
	}
}

func (g *Game) snapshotArcaneOnce(u *Undo) {
	if _, ok := u.Extras[arcaneUndoableKey]; !ok {
		u.Extras[arcaneUndoableKey] = g.Arcane.snapshotUndoable()
	}
}

// runRedo implements the Redo rewind protocol (spec.md 4.4 step 4).
func (g *Game) runRedo(u *Undo, defender *piece.Piece) {
	rewind := 2
	if len(g.Stack) >= 4 {
		rewind = 4
	}
	forbidden := g.Stack[len(g.Stack)-rewind].Move
	g.Arcane.RedoCharges[defender.UID]--
	u.Effects = append(u.Effects, Effect{Type: "redo_pending", Data: map[string]interface{}{
		"uid": defender.UID, "forbidden": forbidden.String(), "rewind_plies": rewind,
	}})

	for i := 0; i < rewind; i++ {
		if err := g.Pop(); err != nil {
			g.pendingErr = err
			return
		}
	}

	legal := g.LegalMoves(defender.Color)
	replay, err := g.Decisions.ChooseRedoReplay(g, defender.Color, forbidden, legal)
	if err != nil {
		g.pendingErr = err
		return
	}
	if replay == nil {
		return
	}
	if _, err := g.Push(*replay); err != nil {
		g.pendingErr = err
	}
}

// runPoisonedDagger implements spec.md 4.4 step 6. The attacker-rank
// comparison deliberately uses mover (the pre-move actor - the pawn
// itself for a promotion) rather than post_capturer, preserving the
// pre-promotion pawn-rank semantics spec.md 9 calls out as intentional.
func (g *Game) runPoisonedDagger(u *Undo, mover, captured, postCapturer *piece.Piece) {
	if !g.Loadouts[captured.Color].HasItem(PoisonedDagger) {
		return
	}
	if mover.Type.Rank() > captured.Type.Rank() {
		return
	}
	if g.Board.PieceAt(postCapturer.Pos) != postCapturer {
		return
	}
	if !u.pieceWasAdded(postCapturer) {
		// Logged as removed, not captured: undoMove restores removed
		// entries before changed ones, so the mover is put back on its
		// capture square and then walked home by its changed entry,
		// leaving the square free for the victim's captured entry.
		u.removed = append(u.removed, changedEntry{postCapturer, postCapturer.Pos, postCapturer.HasMoved})
	}
	g.Arcane.Graveyard[postCapturer.Color] = append(g.Arcane.Graveyard[postCapturer.Color], GraveyardEntry{Piece: postCapturer, Square: postCapturer.Pos})
	g.Board.RemovePiece(postCapturer.Pos)
	u.Effects = append(u.Effects, Effect{Type: "poisoned_dagger", Data: map[string]interface{}{"uid": postCapturer.UID}})
}

func (g *Game) runOffensiveTriggers(u *Undo, mover, captured *piece.Piece) {
	g.snapshotArcaneOnce(u)
	if g.HasAbility(mover, DoubleKill) {
		g.resolveDoubleKill(u, mover)
	}
	if g.HasAbility(mover, QuantumKill) {
		g.resolveQuantumKill(u, mover)
	}
	if g.HasAbility(mover, Necromancer) {
		g.resolveNecromancer(u, mover, captured)
	}
}

func (g *Game) removeCapturedPiece(u *Undo, p *piece.Piece) {
	u.captured = append(u.captured, changedEntry{p, p.Pos, p.HasMoved})
	g.Arcane.Graveyard[p.Color] = append(g.Arcane.Graveyard[p.Color], GraveyardEntry{Piece: p, Square: p.Pos})
	g.Board.RemovePiece(p.Pos)
}

func (g *Game) resolveDoubleKill(u *Undo, mover *piece.Piece) {
	capSq := u.Move.CaptureSquare()
	var candidates []*piece.Piece
	for _, p := range g.Board.AllPieces() {
		if p.Color == mover.Color || p.Type == King {
			continue
		}
		if !p.Pos.Adjacent(capSq) {
			continue
		}
		if p.Type.Rank() > mover.Type.Rank() {
			continue
		}
		candidates = append(candidates, p)
	}
	choice, err := g.Decisions.ChooseDoubleKillTarget(g, mover, candidates)
	if err != nil {
		g.pendingErr = err
		return
	}
	if choice == nil {
		return
	}
	g.removeCapturedPiece(u, choice)
	u.Effects = append(u.Effects, Effect{Type: "double_kill", Data: map[string]interface{}{"uid": choice.UID}})
}

// resolveQuantumKill always consumes exactly one RNG draw, even with no
// eligible candidates, so determinism holds regardless of board state
// (spec.md 9's RNG reproducibility note).
func (g *Game) resolveQuantumKill(u *Undo, mover *piece.Piece) {
	var candidates []*piece.Piece
	for _, p := range g.Board.PiecesOf(mover.Color.Opponent()) {
		if p.Type != King && p.Type.Rank() <= mover.Type.Rank() {
			candidates = append(candidates, p)
		}
	}
	draw := g.RNG.Float64()
	if len(candidates) == 0 {
		return
	}
	idx := int(draw * float64(len(candidates)))
	if idx >= len(candidates) {
		idx = len(candidates) - 1
	}
	choice := candidates[idx]
	g.removeCapturedPiece(u, choice)
	u.Effects = append(u.Effects, Effect{Type: "quantum_kill", Data: map[string]interface{}{"uid": choice.UID}})
}

func (g *Game) resolveNecromancer(u *Undo, mover, captured *piece.Piece) {
	if captured.Type.Rank() <= mover.Type.Rank() {
		return
	}
	if g.Arcane.NecroPool[mover.Color] <= 0 {
		return
	}
	var candidates []GraveyardEntry
	for _, e := range g.Arcane.Graveyard[mover.Color] {
		if e.Piece.Type == King {
			continue
		}
		if g.Board.PieceAt(e.Square) != nil {
			continue
		}
		candidates = append(candidates, e)
	}
	choice, err := g.Decisions.ChooseNecromancerResurrect(g, candidates)
	if err != nil {
		g.pendingErr = err
		return
	}
	if choice == nil {
		return
	}
	g.resurrect(u, *choice)
	u.Effects = append(u.Effects, Effect{Type: "necromancer", Data: map[string]interface{}{"uid": choice.Piece.UID}})
}

func (g *Game) resurrect(u *Undo, entry GraveyardEntry) {
	g.Arcane.NecroPool[entry.Piece.Color]--
	list := g.Arcane.Graveyard[entry.Piece.Color]
	for i, e := range list {
		if e.Piece.UID == entry.Piece.UID && e.Square == entry.Square {
			g.Arcane.Graveyard[entry.Piece.Color] = append(list[:i], list[i+1:]...)
			break
		}
	}
	entry.Piece.Pos = entry.Square
	g.Board.AddPiece(entry.Piece)
	u.added = append(u.added, entry.Piece)
}
