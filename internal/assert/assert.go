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

// Package assert provides cheap internal-invariant checks. These are
// reserved for conditions that indicate a corrupt engine state (a bug)
// rather than caller error - caller-reachable failures (illegal move,
// malformed record, invalid config) are always returned as errors, never
// asserted.
package assert

import "fmt"

// DEBUG toggles whether Assert panics. Tests and cmd/arcanechess leave
// this on; a host embedding the engine in a hot loop may turn it off.
var DEBUG = true

// Assert panics with a formatted message if cond is false.
func Assert(cond bool, format string, args ...interface{}) {
	if !DEBUG {
		return
	}
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
