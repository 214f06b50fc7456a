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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chesskernel/chesskernel/internal/evaluator"
	"github.com/chesskernel/chesskernel/internal/position"
	. "github.com/chesskernel/chesskernel/internal/types"
)

func TestRunFindsMateInOne(t *testing.T) {
	// White king e6 confines the black king to the back rank; Rh1-h8 is
	// mate (check along the whole rank, no escape square the white
	// king doesn't already cover).
	p, err := position.NewPositionFen("4k3/8/4K3/8/8/8/8/7R w - - 0 1")
	require.NoError(t, err)

	s := NewSearch(evaluator.Material{})
	result := s.Run(p, Limits{TargetDepth: 3})

	assert.Equal(t, "h1h8", result.BestMove.String())
	assert.True(t, result.Score.IsMateScore())
	assert.Greater(t, result.Score, Value(0))
}

func TestRunReturnsPositionUnchanged(t *testing.T) {
	p := position.NewPosition()
	before := p.Fen()

	s := NewSearch(evaluator.Material{})
	s.Run(p, Limits{TargetDepth: 3})

	assert.Equal(t, before, p.Fen())
}

func TestRunReportsOneIterationPerDepth(t *testing.T) {
	p := position.NewPosition()
	s := NewSearch(evaluator.Material{})
	result := s.Run(p, Limits{TargetDepth: 3})

	require.Len(t, result.Iterations, 3)
	for i, it := range result.Iterations {
		assert.Equal(t, i+1, it.Depth)
	}
}

func TestRunStopsAtRequestedIterationBoundary(t *testing.T) {
	p := position.NewPosition()
	s := NewSearch(evaluator.Material{})

	var stop int32 = 1
	result := s.Run(p, Limits{TargetDepth: 5, StopFlag: &stop})

	assert.Len(t, result.Iterations, 1)
}

func TestMvvLvaFormula(t *testing.T) {
	// Most-valuable-victim/least-valuable-attacker formula: attacker rank
	// dominates, victim rank breaks ties among captures.
	assert.Equal(t, 625, mvvLva(PtPawn, PtQueen))
	assert.Equal(t, 105, mvvLva(PtKing, PtPawn))
}

func TestStalemateScoresAsDraw(t *testing.T) {
	// Classic stalemate: Black to move, no legal moves, not in check.
	p, err := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	s := NewSearch(evaluator.Material{})
	result := s.Run(p, Limits{TargetDepth: 1})
	assert.Equal(t, Value(0), result.Score)
}
