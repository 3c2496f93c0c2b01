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

// Package piece holds the Piece Registry's unit of identity: a mutable
// Piece value with a process-wide stable uid, used for identity
// comparisons across undo/redo and the graveyard.
package piece

import (
	"sync/atomic"

	. "github.com/arcanechess/engine/internal/types"
)

var nextUID uint64

// NextUID hands out a fresh, process-wide unique piece identifier.
// uids are never reused, even across games, so identity comparisons
// (graveyard entries, redo charges keyed by uid) stay unambiguous.
func NextUID() uint64 {
	return atomic.AddUint64(&nextUID, 1)
}

// Piece is one chess unit on the board. Two Pieces are "the same piece"
// iff their UID matches, not by value equality - has_moved and meta
// change over the piece's lifetime while uid never does.
type Piece struct {
	UID      uint64
	Color    Color
	Type     PieceType
	Pos      Square
	HasMoved bool
	Meta     map[string]string
}

// New creates a piece with a fresh uid.
func New(color Color, pt PieceType, pos Square) *Piece {
	return &Piece{
		UID:   NextUID(),
		Color: color,
		Type:  pt,
		Pos:   pos,
		Meta:  make(map[string]string),
	}
}

// Symbol renders the standard single-letter piece code, upper-case for
// White and lower-case for Black, as used by board printers.
func (p *Piece) Symbol() string {
	s := p.Type.String()
	if p.Color == Black {
		return string(s[0] + ('a' - 'A'))
	}
	return s
}

// CloneMeta returns an independent copy of p.Meta, used by the
// Resolution System to snapshot per-piece meta into an Undo record
// before mutating it (e.g. Block Path's block_dir).
func (p *Piece) CloneMeta() map[string]string {
	m := make(map[string]string, len(p.Meta))
	for k, v := range p.Meta {
		m[k] = v
	}
	return m
}

// MetaBlockDir key used for the Block Path ability.
const MetaBlockDir = "block_dir"
