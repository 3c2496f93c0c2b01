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
	"errors"

	"github.com/arcanechess/engine/internal/piece"
	. "github.com/arcanechess/engine/internal/types"
)

// ErrNeedDecision is the typed "need decision" signal from spec.md 4.6 /
// 7. A DecisionProvider backing an interactive host returns this to
// suspend the current apply; the caller of Push MUST then Pop back to
// the pre-apply depth (spec.md 5) before doing anything else with the
// Game.
var ErrNeedDecision = errors.New("engine: decision required")

// DecisionProvider answers the four choices the Resolution System needs
// mid-resolution. Every method may return ErrNeedDecision instead of an
// answer to request an external prompt.
type DecisionProvider interface {
	ChooseBlockPathDir(g *Game, mover *piece.Piece) (Direction, error)
	ChooseDoubleKillTarget(g *Game, capturer *piece.Piece, candidates []*piece.Piece) (*piece.Piece, error)
	ChooseNecromancerResurrect(g *Game, candidates []GraveyardEntry) (*GraveyardEntry, error)
	ChooseRedoReplay(g *Game, defender Color, forbidden Move, legal []Move) (*Move, error)
}

// DefaultDecisions is the deterministic provider from spec.md 4.6:
// first option / first non-forbidden legal move. It never asks for an
// external prompt.
type DefaultDecisions struct{}

// ChooseBlockPathDir always answers North, matching the reference
// engine's default.
func (DefaultDecisions) ChooseBlockPathDir(g *Game, mover *piece.Piece) (Direction, error) {
	return North, nil
}

// ChooseDoubleKillTarget picks the first candidate, or nil if none.
func (DefaultDecisions) ChooseDoubleKillTarget(g *Game, capturer *piece.Piece, candidates []*piece.Piece) (*piece.Piece, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	return candidates[0], nil
}

// ChooseNecromancerResurrect picks the first candidate, or nil if none.
func (DefaultDecisions) ChooseNecromancerResurrect(g *Game, candidates []GraveyardEntry) (*GraveyardEntry, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	return &candidates[0], nil
}

// ChooseRedoReplay returns the first legal move that doesn't match
// forbidden under Move.SameAs, or nil if every legal move is forbidden
// (impossible once rewound, but handled defensively).
func (DefaultDecisions) ChooseRedoReplay(g *Game, defender Color, forbidden Move, legal []Move) (*Move, error) {
	for i := range legal {
		if !legal[i].SameAs(forbidden) {
			return &legal[i], nil
		}
	}
	return nil, nil
}
