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

import (
	"fmt"

	. "github.com/chesskernel/chesskernel/internal/types"
)

// IterationInfo is the line a single iterative-deepening iteration
// reports: score, depth, nodes and the principal variation found so
// far.
type IterationInfo struct {
	Depth int
	Score Value
	Nodes uint64
	PV    []Move
}

func (i IterationInfo) String() string {
	return fmt.Sprintf("depth %d score %s nodes %d pv %s", i.Depth, i.Score, i.Nodes, pvString(i.PV))
}

func pvString(pv []Move) string {
	s := ""
	for i, m := range pv {
		if i > 0 {
			s += " "
		}
		s += m.String()
	}
	return s
}

// Result is what Search.Run returns once the final requested iteration
// has completed: the best move and PV from that iteration, plus the
// total node count accumulated across every iteration.
type Result struct {
	BestMove   Move
	Score      Value
	Depth      int
	Nodes      uint64
	PV         []Move
	Iterations []IterationInfo
}
