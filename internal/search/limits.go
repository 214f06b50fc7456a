//
// chesskernel - bitboard chess engine kernel
//
// MIT License
//
// Copyright (c) 2020 chesskernel contributors
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

package search

import "sync/atomic"

// Limits controls how deep a Search runs: no wall-clock budgets, no
// pondering, no mate search, no per-root-move restriction - just
// iterative deepening to a fixed target depth.
type Limits struct {
	// TargetDepth is the last iterative-deepening depth to complete.
	TargetDepth int

	// StopFlag, if non-nil, is polled with atomic.LoadInt32 once per
	// completed iterative-deepening iteration - never from inside a
	// single iteration's recursion. Nil by default: no caller in this
	// module sets it yet, since no time management exists - an inert
	// hook for a future external stop request.
	StopFlag *int32
}

func (l *Limits) stopRequested() bool {
	return l.StopFlag != nil && atomic.LoadInt32(l.StopFlag) != 0
}
