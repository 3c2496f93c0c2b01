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

// changedEntry is one (piece, prior position, prior has_moved) reversal
// tuple, used for the "changed" and "removed"/"captured" undo lists.
type changedEntry struct {
	p        *piece.Piece
	priorPos Square
	priorHM  bool
}

// metaSnapshot is a one-shot, once-per-ply-per-piece copy of a piece's
// meta map taken before a listener mutates it (e.g. Block Path).
type metaSnapshot struct {
	p    *piece.Piece
	meta map[string]string
}

// Undo is the reversal record for exactly one applied move. Every
// mutation push/pop or a listener makes to board state during that
// move's application must be represented here so Pop can reverse it
// byte-for-byte, except the arcane monotonic fields (spec.md 3) which
// are deliberately excluded.
type Undo struct {
	PrevLastMove *Move
	PrevSide     Color

	PrevHalfmoveClock  int
	PrevFullmoveNum    int
	PrevCastlingRights CastlingRights

	Move     Move
	Mover    *piece.Piece
	Captured *piece.Piece

	// PostCapturer is the piece physically on to_sq after apply and owned
	// by the mover's side: the mover itself for Normal/EnPassant/Castle,
	// the freshly materialized piece for Promotion, or mover again for
	// RemoteCapture (spec.md 4.4's post_capturer).
	PostCapturer *piece.Piece

	changed  []changedEntry
	captured []changedEntry
	removed  []changedEntry
	added    []*piece.Piece

	metaSnaps []metaSnapshot

	// Extras is the opaque bag cross-cutting listeners (the arcane
	// Resolution System, the Position Tracker) use to stash their own
	// per-ply snapshots, keyed by a listener-private string.
	Extras map[string]interface{}

	// Effects is an ordered, append-only log of what the Resolution
	// System did on this ply (capture, block_path, redo, double_kill,
	// ...). It exists for the snapshot/diff facade (spec.md 6) to
	// describe "what just happened" without re-deriving it.
	Effects []Effect
}

// Effect is one semantic event the Resolution System logged for a ply.
type Effect struct {
	Type string
	Data map[string]interface{}
}

func newUndo(prevLastMove *Move, prevSide Color) *Undo {
	return &Undo{
		PrevLastMove: prevLastMove,
		PrevSide:     prevSide,
		Extras:       make(map[string]interface{}),
	}
}

// snapshotPieceMeta records p's current meta once per ply; a second
// call for the same piece within the same Undo is a no-op so repeated
// mutations in one resolution pass don't clobber the original snapshot.
func (u *Undo) snapshotPieceMeta(p *piece.Piece) {
	for _, s := range u.metaSnaps {
		if s.p == p {
			return
		}
	}
	u.metaSnaps = append(u.metaSnaps, metaSnapshot{p: p, meta: p.CloneMeta()})
}

// pieceWasAdded reports whether p was newly materialized this ply
// (promotion or resurrection), used by Poisoned Dagger to avoid double-
// restoring a piece that was never "captured" from the board.
func (u *Undo) pieceWasAdded(p *piece.Piece) bool {
	for _, a := range u.added {
		if a == p {
			return true
		}
	}
	return false
}
