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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/chesskernel/chesskernel/internal/types"
)

func TestNewPositionStartFen(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, StartFen, p.Fen())
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, p.Fen())
	}
}

func TestSetFenRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"not a fen at all",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XYkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
	}
	for _, fen := range bad {
		_, err := NewPositionFen(fen)
		assert.Error(t, err, "fen %q should be rejected", fen)
	}
}

func TestDoUndoMoveRoundTrip(t *testing.T) {
	p := NewPosition()
	before := p.Fen()

	m := NewMove(SqE2, SqE4, PtPawn, PtNone, false, true, false, false)
	ok := p.DoMove(m, MakeAll)
	require.True(t, ok)
	assert.Equal(t, Black, p.SideToMove())
	assert.Equal(t, SqE3, p.EnPassantSquare())

	p.UndoMove()
	assert.Equal(t, before, p.Fen())
}

func TestDoMoveRejectsMovesThatExposeOwnKing(t *testing.T) {
	// The e2 pawn is pinned against the white king on e1 by the rook on
	// e8; capturing on d3 takes it off the e-file and would expose check.
	p, err := NewPositionFen("4r3/8/8/8/8/3p4/4P3/4K3 w - - 0 1")
	require.NoError(t, err)

	m := NewMove(SqE2, SqD3, PtPawn, PtNone, true, false, false, false)
	ok := p.DoMove(m, MakeAll)
	assert.False(t, ok)
	assert.Equal(t, 0, p.Ply())
}

func TestDoMoveCapturesOnlyRejectsQuietMoves(t *testing.T) {
	p := NewPosition()
	quiet := NewMove(SqE2, SqE3, PtPawn, PtNone, false, false, false, false)
	assert.False(t, p.DoMove(quiet, MakeCapturesOnly))
}

func TestIsAttacked(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/8/4r3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.IsAttacked(SqE1, Black))
	assert.True(t, p.InCheck())
}

func TestEnPassantCapture(t *testing.T) {
	p, err := NewPositionFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)

	m := NewMove(SqE5, SqD6, PtPawn, PtNone, true, false, true, false)
	require.True(t, p.DoMove(m, MakeAll))
	assert.Equal(t, PieceNone, p.PieceAt(SqD5))
	assert.Equal(t, WhitePawn, p.PieceAt(SqD6))

	p.UndoMove()
	assert.Equal(t, BlackPawn, p.PieceAt(SqD5))
	assert.Equal(t, PieceNone, p.PieceAt(SqD6))
}

func TestCastlingMovesRook(t *testing.T) {
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	m := NewMove(SqE1, SqG1, PtKing, PtNone, false, false, false, true)
	require.True(t, p.DoMove(m, MakeAll))
	assert.Equal(t, WhiteKing, p.PieceAt(SqG1))
	assert.Equal(t, WhiteRook, p.PieceAt(SqF1))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteKingSide))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteQueenSide))

	p.UndoMove()
	assert.Equal(t, WhiteKing, p.PieceAt(SqE1))
	assert.Equal(t, WhiteRook, p.PieceAt(SqH1))
	assert.True(t, p.CastlingRights().Has(CastlingWhiteKingSide))
}

func TestRookMoveRevokesOnlyItsOwnSideCastling(t *testing.T) {
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	m := NewMove(SqA1, SqB1, PtRook, PtNone, false, false, false, false)
	require.True(t, p.DoMove(m, MakeAll))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteQueenSide))
	assert.True(t, p.CastlingRights().Has(CastlingWhiteKingSide))
	assert.True(t, p.CastlingRights().Has(CastlingBlackKingSide))
	assert.True(t, p.CastlingRights().Has(CastlingBlackQueenSide))
}
