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

import "github.com/arcanechess/engine/internal/piece"

// EventKind distinguishes the three Listener events without requiring
// a type assertion on every dispatch - a small sum type per spec.md 9's
// design note, not a heap-allocated trait-object hierarchy.
type EventKind uint8

const (
	MoveWillApply EventKind = iota
	MoveApplied
	MoveUndone
)

// Event is delivered to every Listener in registration order. Captured
// is only meaningful for MoveApplied/MoveUndone.
type Event struct {
	Kind     EventKind
	Move     Move
	Mover    *piece.Piece
	Captured *piece.Piece
}

// Listener observes the engine's push/pop lifecycle. Implementations
// may themselves call Push/Pop (the Resolution System's Redo rewind
// does exactly that) - re-entrancy is part of the contract, not a bug.
type Listener interface {
	OnEvent(g *Game, ev Event)
}
