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

package uci

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chesskernel/chesskernel/internal/evaluator"
)

func newTestHandler() *Handler {
	return NewHandler(evaluator.Material{})
}

func TestIdentifyRespondsWithEngineNameAndOk(t *testing.T) {
	h := newTestHandler()
	out := h.Command("identify")
	assert.Contains(t, out, "id name "+EngineName)
	assert.Contains(t, out, "identifyok")
}

func TestIsReadyRespondsReadyOk(t *testing.T) {
	h := newTestHandler()
	assert.Equal(t, "readyok\n", h.Command("is-ready"))
}

func TestNewGameResetsToStartingPosition(t *testing.T) {
	h := newTestHandler()
	h.Command("position fen 7k/8/8/8/8/8/8/7K w - - 0 1")
	h.Command("new-game")
	assert.Contains(t, h.pos.Fen(), "rnbqkbnr")
}

func TestPositionStartposAppliesMoves(t *testing.T) {
	h := newTestHandler()
	h.Command("position startpos moves e2e4 e7e5")
	fen := h.pos.Fen()
	assert.True(t, strings.HasPrefix(fen, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR"))
}

func TestPositionFenLoadsGivenFen(t *testing.T) {
	h := newTestHandler()
	fen := "4k3/8/4K3/8/8/8/8/7R w - - 0 1"
	h.Command("position fen " + fen)
	assert.Equal(t, fen, h.pos.Fen())
}

func TestPositionRejectsMalformedMove(t *testing.T) {
	h := newTestHandler()
	out := h.Command("position startpos moves e2e5")
	assert.Contains(t, out, "malformed move")
}

func TestGoReturnsBestMoveWithinDepth(t *testing.T) {
	h := newTestHandler()
	h.Command("position fen 4k3/8/4K3/8/8/8/8/7R w - - 0 1")
	out := h.Command("go depth 3")
	assert.Contains(t, out, "bestmove h1h8")
}

func TestGoDefaultsToDepthSixWhenUnspecified(t *testing.T) {
	h := newTestHandler()
	h.Command("position fen 4k3/8/4K3/8/8/8/8/7R w - - 0 1")
	out := h.Command("go")
	assert.Contains(t, out, "info depth 6")
}

func TestLoopStopsOnQuit(t *testing.T) {
	h := newTestHandler()
	assert.True(t, h.handle("quit"))
	assert.False(t, h.handle("is-ready"))
}
