//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package gamepool

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arcanechess/engine/internal/engine"
	. "github.com/arcanechess/engine/internal/types"
)

func neutralGame(t *testing.T) *engine.Game {
	t.Helper()
	loadouts := map[Color]engine.Loadout{
		White: {Element: Water},
		Black: {Element: Water},
	}
	g, err := engine.NewGame(loadouts, nil, 1)
	assert.NoError(t, err)
	return g
}

func TestOpenLookupClose(t *testing.T) {
	g := neutralGame(t)
	Open("t1", g)
	defer Close("t1")

	table, ok := Lookup("t1")
	assert.True(t, ok)
	assert.NotNil(t, table)

	_, ok = Lookup("missing")
	assert.False(t, ok)
}

func TestWithRunsExclusively(t *testing.T) {
	g := neutralGame(t)
	table := Open("t2", g)
	defer Close("t2")

	var mu sync.Mutex
	inside := 0
	maxConcurrent := 0

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = table.With(context.Background(), func(g *engine.Game) error {
				mu.Lock()
				inside++
				if inside > maxConcurrent {
					maxConcurrent = inside
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxConcurrent, "With must never run two callbacks concurrently")
}

func TestTryWithReportsContention(t *testing.T) {
	g := neutralGame(t)
	table := Open("t3", g)
	defer Close("t3")

	holding := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = table.With(context.Background(), func(g *engine.Game) error {
			close(holding)
			<-release
			return nil
		})
	}()
	<-holding

	ran, err := table.TryWith(func(g *engine.Game) error { return nil })
	assert.False(t, ran)
	assert.NoError(t, err)

	close(release)
}

func TestClosedTableRejectsWith(t *testing.T) {
	g := neutralGame(t)
	table := Open("t5", g)
	assert.False(t, table.IsClosed())

	Close("t5")
	assert.True(t, table.IsClosed())

	err := table.With(context.Background(), func(g *engine.Game) error { return nil })
	assert.Error(t, err)

	ran, err := table.TryWith(func(g *engine.Game) error { return nil })
	assert.False(t, ran)
	assert.Error(t, err)
}

func TestWithHonorsContextCancellation(t *testing.T) {
	g := neutralGame(t)
	table := Open("t4", g)
	defer Close("t4")

	release := make(chan struct{})
	go func() {
		_ = table.With(context.Background(), func(g *engine.Game) error {
			<-release
			return nil
		})
	}()
	// Give the goroutine above a chance to grab the gate first.
	time.Sleep(5 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	err := table.With(ctx, func(g *engine.Game) error { return nil })
	assert.Error(t, err)

	close(release)
}
