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

package movegen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chesskernel/chesskernel/internal/position"
)

// Known-good perft leaf counts for the standard starting position.
func TestPerftStartPosition(t *testing.T) {
	p := position.NewPosition()
	want := []uint64{1, 20, 400, 8902, 197281}
	for depth, w := range want {
		assert.Equal(t, w, Perft(p, depth), "perft(%d) from start position", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	want := []uint64{1, 48, 2039, 97862}
	for depth, w := range want {
		assert.Equal(t, w, Perft(p, depth), "perft(%d) from kiwipete", depth)
	}
}

func TestPerftPosition6(t *testing.T) {
	p, err := position.NewPositionFen("r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10")
	require.NoError(t, err)
	assert.Equal(t, uint64(3894594), Perft(p, 4))
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	p := position.NewPosition()
	results, total := PerftDivide(p, 3)
	assert.Len(t, results, 20)
	assert.Equal(t, Perft(p, 3), total)

	var sum uint64
	for _, r := range results {
		sum += r.Nodes
	}
	assert.Equal(t, total, sum)
}

func TestPerftDivideParallelMatchesSequential(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	seqResults, seqTotal := PerftDivide(p, 2)
	parResults, parTotal, err := PerftDivideParallel(context.Background(), p, 2)
	require.NoError(t, err)

	assert.Equal(t, seqTotal, parTotal)
	assert.Len(t, parResults, len(seqResults))

	seqByMove := make(map[string]uint64, len(seqResults))
	for _, r := range seqResults {
		seqByMove[r.MoveUci] = r.Nodes
	}
	for _, r := range parResults {
		assert.Equal(t, seqByMove[r.MoveUci], r.Nodes, "move %s", r.MoveUci)
	}
}
