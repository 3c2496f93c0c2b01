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

import . "github.com/arcanechess/engine/internal/types"

// Rule filters a candidate move list for color. Rules compose
// left-to-right, as wired by NewGame (spec.md 4.2, 6).
type Rule interface {
	Filter(g *Game, color Color, moves []Move) []Move
}

// RuleFunc adapts a plain function to Rule.
type RuleFunc func(g *Game, color Color, moves []Move) []Move

// Filter calls f.
func (f RuleFunc) Filter(g *Game, color Color, moves []Move) []Move {
	return f(g, color, moves)
}

// KingSafety drops any move that would leave the mover's own king in
// check, tested by a quiet push/pop so the simulation never touches
// events or the Resolution System.
var KingSafety Rule = RuleFunc(func(g *Game, color Color, moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		g.PushQuiet(m)
		safe := !g.InCheck(color)
		g.PopQuiet()
		if safe {
			out = append(out, m)
		}
	}
	return out
})
