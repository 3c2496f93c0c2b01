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

// Package types holds the small value types shared by every package in
// the engine: squares, colors, piece types, castling rights, and the
// elemental affinities the arcane layer adds on top of plain chess.
package types

import (
	"fmt"

	"github.com/arcanechess/engine/internal/util"
)

// Square is a board square, 0..63, row-major: square = rank*8 + file.
type Square int8

// SquareNone marks "off board" / "no square".
const SquareNone Square = -1

// BoardSize is the fixed 8x8 board side length; spec.md Non-goals
// excludes variant board sizes.
const BoardSize = 8

// NewSquare builds a Square from zero-based file (0=a..7=h) and rank
// (0=rank1..7=rank8).
func NewSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SquareNone
	}
	return Square(rank*8 + file)
}

// File returns the zero-based file (0=a..7=h).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the zero-based rank (0=rank1..7=rank8).
func (s Square) Rank() int { return int(s) / 8 }

// IsValid reports whether s is within the 8x8 board.
func (s Square) IsValid() bool { return s >= 0 && s < 64 }

var fileLabels = "abcdefgh"

// String renders algebraic notation, e.g. "e4". Returns "-" for
// SquareNone.
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", fileLabels[s.File()], s.Rank()+1)
}

// Offset returns the square df files and dr ranks away from s, or
// SquareNone if that lands off the board.
func (s Square) Offset(df, dr int) Square {
	return NewSquare(s.File()+df, s.Rank()+dr)
}

// Adjacent reports whether s and other are one king-step apart
// (8-connectivity), used by Double Kill's "adjacent to capture square"
// search.
func (s Square) Adjacent(other Square) bool {
	if !s.IsValid() || !other.IsValid() {
		return false
	}
	df := util.Abs(s.File() - other.File())
	dr := util.Abs(s.Rank() - other.Rank())
	return df <= 1 && dr <= 1 && (df != 0 || dr != 0)
}

// Direction is one of the four cardinal directions used by Block Path.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	DirectionNone
)

// String renders the single-letter direction code used in meta maps.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	default:
		return "-"
	}
}

// DirectionFrom returns the cardinal direction from "from" to "to", and
// false if the two squares aren't aligned on a file, rank (or don't
// share one), matching the Block Path rule in spec.md 4.2 which only
// ever compares cardinal alignment between a defender and an attack's
// effective origin.
func DirectionFrom(from, to Square) (Direction, bool) {
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()
	switch {
	case df == 0 && dr > 0:
		return North, true
	case df == 0 && dr < 0:
		return South, true
	case dr == 0 && df > 0:
		return East, true
	case dr == 0 && df < 0:
		return West, true
	default:
		return DirectionNone, false
	}
}
