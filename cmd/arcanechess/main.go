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

package main

import (
	"flag"
	"os"
	"runtime"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/arcanechess/engine/internal/config"
	"github.com/arcanechess/engine/internal/engine"
	"github.com/arcanechess/engine/internal/logging"
	"github.com/arcanechess/engine/internal/perft"
	. "github.com/arcanechess/engine/internal/types"
)

var out = message.NewPrinter(language.English)

var log = logging.GetLog("main")

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	perftDepth := flag.Int("perft", 0, "runs perft on the standard starting position to the given depth\nusing each side's configured loadout")
	demo := flag.Bool("demo", false, "plays out a short scripted opening and prints the position after each ply")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
		logging.SetLevel(lvl)
	}

	white, black, err := config.Loadouts()
	if err != nil {
		log.Errorf("invalid army configuration: %v", err)
		os.Exit(1)
	}

	switch {
	case *perftDepth != 0:
		g, err := engine.NewGame(map[Color]engine.Loadout{White: white, Black: black}, nil, config.Settings.Game.Seed)
		if err != nil {
			log.Errorf("could not start game: %v", err)
			os.Exit(1)
		}
		perft.Report(g, *perftDepth)
	case *demo:
		runDemo(white, black)
	default:
		flag.Usage()
	}
}

// runDemo plays out the first few legal moves of a game against itself,
// printing the resulting Snapshot after each ply - a quick smoke test
// of NewGame/Push/TakeSnapshot without any interactive decision server.
func runDemo(white, black engine.Loadout) {
	g, err := engine.NewGame(map[Color]engine.Loadout{White: white, Black: black}, nil, config.Settings.Game.Seed)
	if err != nil {
		log.Errorf("could not start game: %v", err)
		os.Exit(1)
	}

	for ply := 0; ply < 6; ply++ {
		moves := g.LegalMoves(g.Side)
		if len(moves) == 0 {
			out.Printf("no legal moves for %s, stopping\n", g.Side)
			break
		}
		m := moves[ply%len(moves)]
		if _, err := g.Push(m); err != nil {
			out.Printf("push failed: %v\n", err)
			break
		}
		snap := g.TakeSnapshot()
		out.Printf("ply %d: %s played, %d pieces on board, check=%v\n", ply+1, snap.LastMove, len(snap.Pieces), snap.Check)
	}
}

func printVersionInfo() {
	out.Println("arcanechess")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
