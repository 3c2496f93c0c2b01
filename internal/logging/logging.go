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

// Package logging provides the single shared logger used across the
// engine's packages. It is a thin wrapper around op/go-logging so
// callers get one consistently formatted backend instead of each
// package rolling its own.
package logging

import (
	"os"
	"sync"

	"github.com/op/go-logging"
)

var (
	once    sync.Once
	shared  *logging.Logger
	leveled *logging.LeveledBackend
)

// GetLog returns the shared logger, creating its backend on first use.
// Safe to call from multiple package init()s.
func GetLog(name string) *logging.Logger {
	once.Do(func() {
		backend := logging.NewLogBackend(os.Stdout, "", 0)
		format := logging.MustStringFormatter(
			`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
		)
		backendFormatter := logging.NewBackendFormatter(backend, format)
		lvl := logging.AddModuleLevel(backendFormatter)
		lvl.SetLevel(logging.INFO, "")
		leveled = &lvl
		logging.SetBackend(lvl)
	})
	shared = logging.MustGetLogger(name)
	return shared
}

// SetLevel adjusts the shared backend's log level. level follows
// op/go-logging's own scale (CRITICAL=0 ... DEBUG=5); a negative level
// turns logging off entirely. Safe to call before or after the first
// GetLog call.
func SetLevel(level int) {
	GetLog("logging")
	(*leveled).SetLevel(logging.Level(level), "")
}
