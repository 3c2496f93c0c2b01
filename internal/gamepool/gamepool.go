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

// Package gamepool hands a host one shared *engine.Game per table and
// serializes access to it. The engine core itself is single-threaded
// and side-effect-heavy (RNG draws, the Resolution System's recursive
// push) - two request handlers racing Push/Pop against the same Game
// would corrupt the undo stack, so every entry point here is an
// acquire/do/release around a semaphore.Weighted(1) rather than a
// mutex, matching the reference engine's own WaitWhileSearching gate.
package gamepool

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/arcanechess/engine/internal/engine"
	"github.com/arcanechess/engine/internal/logging"
	"github.com/arcanechess/engine/internal/util"
)

var log = logging.GetLog("gamepool")

// Table owns one *engine.Game and the semaphore serializing access to
// it. Zero value is not usable; construct with NewTable.
type Table struct {
	id     string
	game   *engine.Game
	gate   *semaphore.Weighted
	closed *util.Bool
}

// NewTable wraps g in a Table identified by id.
func NewTable(id string, g *engine.Game) *Table {
	return &Table{id: id, game: g, gate: semaphore.NewWeighted(1), closed: util.NewBool(false)}
}

// With acquires exclusive access to the table's Game and calls fn with
// it, releasing the gate when fn returns (or panics). Blocks until any
// concurrent caller's fn has returned. ctx cancellation is honored while
// waiting for the gate, not once fn is running.
func (t *Table) With(ctx context.Context, fn func(g *engine.Game) error) error {
	if t.closed.Load() {
		return fmt.Errorf("gamepool: table %s is closed", t.id)
	}
	if err := t.gate.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("gamepool: table %s: %w", t.id, err)
	}
	defer t.gate.Release(1)
	return fn(t.game)
}

// TryWith behaves like With but never blocks: if another caller is
// currently inside With/TryWith for this table, it returns false
// immediately instead of waiting.
func (t *Table) TryWith(fn func(g *engine.Game) error) (ran bool, err error) {
	if t.closed.Load() {
		return false, fmt.Errorf("gamepool: table %s is closed", t.id)
	}
	if !t.gate.TryAcquire(1) {
		return false, nil
	}
	defer t.gate.Release(1)
	return true, fn(t.game)
}

// IsClosed reports whether Close has been called on this table.
func (t *Table) IsClosed() bool {
	return t.closed.Load()
}

// registry is the process-wide set of live tables.
var (
	mu     sync.Mutex
	tables = make(map[string]*Table)
)

// Open registers a new Table for id, replacing any previous table
// under the same id. Returns the new Table.
func Open(id string, g *engine.Game) *Table {
	mu.Lock()
	defer mu.Unlock()
	t := NewTable(id, g)
	tables[id] = t
	log.Infof("opened table %s", id)
	return t
}

// Lookup returns the Table registered under id, if any.
func Lookup(id string) (*Table, bool) {
	mu.Lock()
	defer mu.Unlock()
	t, ok := tables[id]
	return t, ok
}

// Close marks the table closed (so subsequent With/TryWith calls fail
// fast instead of silently operating on a Game no one is tracking
// anymore) and removes id from the registry. It does not wait for any
// in-flight With/TryWith call to finish; callers that need that
// guarantee should call With one last time before Close.
func Close(id string) {
	mu.Lock()
	defer mu.Unlock()
	if t, ok := tables[id]; ok {
		t.closed.Store(true)
	}
	delete(tables, id)
	log.Infof("closed table %s", id)
}
