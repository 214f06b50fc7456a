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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chesskernel/chesskernel/internal/position"
	. "github.com/chesskernel/chesskernel/internal/types"
)

func TestStartPositionIsBalanced(t *testing.T) {
	p := position.NewPosition()
	assert.Equal(t, Value(0), Material{}.Evaluate(p))
}

func TestMaterialImbalanceFavorsTheSideUp(t *testing.T) {
	// White is down a rook relative to the start position.
	p, err := position.NewPositionFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/1NBQKBNR w Kkq - 0 1")
	require.NoError(t, err)
	assert.Less(t, Material{}.Evaluate(p), Value(0))
}

func TestEvaluateIsSideToMoveRelative(t *testing.T) {
	fenWhiteToMove := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/1NBQKBNR w Kkq - 0 1"
	fenBlackToMove := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/1NBQKBNR b Kkq - 0 1"

	white, err := position.NewPositionFen(fenWhiteToMove)
	require.NoError(t, err)
	black, err := position.NewPositionFen(fenBlackToMove)
	require.NoError(t, err)

	assert.Equal(t, Material{}.Evaluate(white), -Material{}.Evaluate(black))
}

func TestPawnAdvanceIncreasesItsPositionalScore(t *testing.T) {
	base, err := position.NewPositionFen("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	advanced, err := position.NewPositionFen("4k3/8/8/8/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, Material{}.Evaluate(advanced), Material{}.Evaluate(base))
}

func TestMirrorSquareFlipsRankKeepsFile(t *testing.T) {
	assert.Equal(t, SqA1, mirrorSquare(SqA8))
	assert.Equal(t, SqH8, mirrorSquare(SqH1))
	assert.Equal(t, SqE4, mirrorSquare(SqE5))
}

func TestQueenHasNoPositionalBonus(t *testing.T) {
	for _, v := range pst[PtQueen] {
		assert.Equal(t, Value(0), v)
	}
}
