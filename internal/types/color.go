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

package types

// Color is White or Black.
type Color uint8

const (
	White Color = iota
	Black
	ColorNone
	ColorLength = ColorNone
)

// Opponent returns the other color. Involutive: c.Opponent().Opponent() == c.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// String renders "w" or "b".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return "-"
	}
}

// PieceType is one of the six chess piece kinds.
type PieceType uint8

const (
	King PieceType = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	PieceTypeNone
	PieceTypeLength = PieceTypeNone
)

var pieceTypeLabels = [...]string{"K", "Q", "R", "B", "N", "P"}

// String renders the upper-case piece letter, e.g. "N" for Knight.
func (pt PieceType) String() string {
	if pt >= PieceTypeLength {
		return "-"
	}
	return pieceTypeLabels[pt]
}

// Rank is the piece-rank table from the GLOSSARY, used by Stalwart,
// Belligerent, Poisoned Dagger, Double Kill, Quantum Kill and
// Necromancer comparisons.
func (pt PieceType) Rank() int {
	switch pt {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	case King:
		return 100
	default:
		return 0
	}
}

// CastlingRights is a 4-bit set: WK=1, WQ=2, BK=4, BQ=8.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// KingsideFor returns the kingside right bit for c.
func KingsideFor(c Color) CastlingRights {
	if c == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideFor returns the queenside right bit for c.
func QueensideFor(c Color) CastlingRights {
	if c == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// Has reports whether all bits in mask are set.
func (cr CastlingRights) Has(mask CastlingRights) bool { return cr&mask == mask }

// Clear returns cr with mask's bits removed.
func (cr CastlingRights) Clear(mask CastlingRights) CastlingRights { return cr &^ mask }
