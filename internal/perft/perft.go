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

// Package perft walks the legal move tree to a fixed depth, purely to
// cross-check move generation against known node counts. It never
// touches the Resolution System or the Listener stream - every descent
// uses PushQuiet/PopQuiet so a perft run can never fire an arcane effect
// or consume an RNG draw, matching the plain-chess node counts a
// standard perft table publishes.
package perft

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/arcanechess/engine/internal/engine"
	. "github.com/arcanechess/engine/internal/types"
	"github.com/arcanechess/engine/internal/util"
)

var out = message.NewPrinter(language.English)

// Counters accumulates the standard perft breakdown alongside the raw
// node count, matching the fields a perft table is usually checked
// against.
type Counters struct {
	Nodes     uint64
	Captures  uint64
	EnPassant uint64
	Castles   uint64
	Promotions uint64
	Checks    uint64
	Checkmates uint64
}

// Run walks g's legal move tree to depth plies from the side to move,
// starting and ending at g's current position (it leaves g unmodified:
// every descent is popped back off the quiet stack before returning).
func Run(g *engine.Game, depth int) Counters {
	var c Counters
	walk(g, depth, &c)
	return c
}

func walk(g *engine.Game, depth int, c *Counters) uint64 {
	side := g.Side
	moves := g.LegalMoves(side)
	if depth == 1 {
		var total uint64
		for _, m := range moves {
			isCapture := g.Board.PieceAt(m.CaptureSquare()) != nil
			isEnPassant := m.Kind == EnPassant
			isCastle := m.Kind == Castle
			isPromotion := m.Kind == Promotion
			g.PushQuiet(m)
			total++
			if isEnPassant {
				c.EnPassant++
				c.Captures++
			} else if isCapture {
				c.Captures++
			}
			if isCastle {
				c.Castles++
			}
			if isPromotion {
				c.Promotions++
			}
			opp := side.Opponent()
			if g.InCheck(opp) {
				c.Checks++
				if len(g.LegalMoves(opp)) == 0 {
					c.Checkmates++
				}
			}
			g.PopQuiet()
		}
		c.Nodes += total
		return total
	}

	var total uint64
	for _, m := range moves {
		g.PushQuiet(m)
		total += walk(g, depth-1, c)
		g.PopQuiet()
	}
	return total
}

// Report runs Run and prints the standard perft summary, in the
// reference engine's grouped-number style.
func Report(g *engine.Game, depth int) Counters {
	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	defer util.TimeTrack(time.Now(), fmt.Sprintf("perft depth %d", depth))
	start := time.Now()
	c := Run(g, depth)
	elapsed := time.Since(start)
	out.Printf("NPS          : %d nps\n", util.Nps(c.Nodes, elapsed))
	out.Printf("Results:\n")
	out.Printf("   Nodes      : %d\n", c.Nodes)
	out.Printf("   Captures   : %d\n", c.Captures)
	out.Printf("   EnPassant  : %d\n", c.EnPassant)
	out.Printf("   Castles    : %d\n", c.Castles)
	out.Printf("   Promotions : %d\n", c.Promotions)
	out.Printf("   Checks     : %d\n", c.Checks)
	out.Printf("   Checkmates : %d\n", c.Checkmates)
	return c
}
