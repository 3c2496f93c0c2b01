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

// Package engine is the interaction engine: move generation, legality
// filtering, application, undo, the arcane Resolution System, and the
// Zobrist position tracker. These five subsystems are deliberately kept
// in one package because the spec they implement couples them tightly -
// listeners re-enter Push/Pop, rules query arcane ability state, and the
// tracker observes the same event stream the Resolution System does.
package engine

import (
	"fmt"
	"strings"

	. "github.com/arcanechess/engine/internal/types"
)

// MoveKind is the closed family of move variants.
type MoveKind uint8

const (
	Normal MoveKind = iota
	EnPassant
	Castle
	Promotion
	RemoteCapture
)

func (k MoveKind) String() string {
	switch k {
	case Normal:
		return "Normal"
	case EnPassant:
		return "EnPassant"
	case Castle:
		return "Castle"
	case Promotion:
		return "Promotion"
	case RemoteCapture:
		return "RemoteCapture"
	default:
		return "?"
	}
}

// Move is a tagged-variant move value. Every field not used by Kind is
// left at its Go zero value (square 0, not SquareNone, for squares).
type Move struct {
	Kind  MoveKind
	From  Square
	To    Square
	Flags []string

	// EnPassant
	CapturedSq Square

	// Castle
	RookFrom Square
	RookTo   Square

	// Promotion
	PromoteTo PieceType

	// RemoteCapture
	OriginSq Square
}

// HasFlag reports whether f is set on m, e.g. "double_pawn_push".
func (m Move) HasFlag(f string) bool {
	for _, x := range m.Flags {
		if x == f {
			return true
		}
	}
	return false
}

// SameAs reports structural equality under the rule in spec.md 4.4's
// Redo protocol ("forbidding any move equal to forbidden in class,
// from, to, and flags"). Push also uses it to find a submitted move in
// the legal list, additionally matching PromoteTo and OriginSq.
func (m Move) SameAs(o Move) bool {
	if m.Kind != o.Kind || m.From != o.From || m.To != o.To {
		return false
	}
	if len(m.Flags) != len(o.Flags) {
		return false
	}
	for i := range m.Flags {
		if m.Flags[i] != o.Flags[i] {
			return false
		}
	}
	return true
}

// EffectiveOrigin is the square CaptureDefense's Block Path direction
// check measures from: from_sq for Normal/EnPassant, origin_sq for
// RemoteCapture.
func (m Move) EffectiveOrigin() Square {
	if m.Kind == RemoteCapture {
		return m.OriginSq
	}
	return m.From
}

// CaptureSquare is the square whose occupant is removed by this move,
// if any (the "to" square except for en passant).
func (m Move) CaptureSquare() Square {
	if m.Kind == EnPassant {
		return m.CapturedSq
	}
	return m.To
}

var promoLetters = map[PieceType]string{Queen: "q", Rook: "r", Bishop: "b", Knight: "n"}

// String renders the compact move encoding from spec.md 6:
// <from><to>[promo][@<origin>].
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.Kind == Promotion {
		sb.WriteString(promoLetters[m.PromoteTo])
	}
	if m.Kind == RemoteCapture {
		sb.WriteString("@")
		sb.WriteString(m.OriginSq.String())
	}
	return sb.String()
}

// ParseMoveString decodes the compact string form. It is a minimal
// helper for tests and the perft/demo CLI, not a full move-notation
// codec - spec.md 1 keeps SAN/UCI text codecs out of the core's scope.
func ParseMoveString(s string) (Move, error) {
	if len(s) < 4 {
		return Move{}, fmt.Errorf("engine: malformed move string %q", s)
	}
	from, err := parseSquare(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := parseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}
	rest := s[4:]
	m := Move{Kind: Normal, From: from, To: to}
	if idx := strings.IndexByte(rest, '@'); idx >= 0 {
		origin, err := parseSquare(rest[idx+1 : idx+3])
		if err != nil {
			return Move{}, err
		}
		m.Kind = RemoteCapture
		m.OriginSq = origin
		rest = rest[:idx]
	}
	if rest != "" {
		for pt, letter := range promoLetters {
			if rest == letter {
				m.Kind = Promotion
				m.PromoteTo = pt
			}
		}
		if m.Kind != Promotion {
			return Move{}, fmt.Errorf("engine: unknown promotion letter %q", rest)
		}
	}
	return m, nil
}

func parseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return SquareNone, fmt.Errorf("engine: malformed square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	sq := NewSquare(file, rank)
	if !sq.IsValid() {
		return SquareNone, fmt.Errorf("engine: malformed square %q", s)
	}
	return sq, nil
}
