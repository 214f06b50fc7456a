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

// Package evaluator scores a position in centipawns from the side to
// move's perspective. A plain material-plus-piece-square-table scorer: no
// pawn-structure cache, no attack-map bookkeeping, no king safety or
// mobility term.
package evaluator

import (
	"github.com/chesskernel/chesskernel/internal/position"
	. "github.com/chesskernel/chesskernel/internal/types"
)

// Evaluator scores a position. search.Search is built against this
// interface rather than the concrete Material type, leaving room for a
// future (out of scope) learned evaluator to drop in without touching
// search.
type Evaluator interface {
	Evaluate(pos *position.Position) Value
}

// Material is the default Evaluator: material balance plus piece-square
// tables, mirrored for Black, returned from the side-to-move's
// perspective.
type Material struct{}

// materialScore is indexed by types.Piece - white pawn..king then black
// pawn..king.
var materialScore = [PieceLength]Value{
	100, 300, 350, 500, 1000, 10000,
	-100, -300, -350, -500, -1000, -10000,
}

// pst holds one piece-square table per piece type, indexed by Square
// (a8=0 .. h1=63, matching this module's square numbering throughout).
var pst = [PtLength][64]Value{
	PtPawn: {
		90, 90, 90, 90, 90, 90, 90, 90,
		30, 30, 30, 40, 40, 30, 30, 30,
		20, 20, 20, 30, 30, 30, 20, 20,
		10, 10, 10, 20, 20, 10, 10, 10,
		5, 5, 10, 20, 20, 5, 5, 5,
		0, 0, 0, 5, 5, 0, 0, 0,
		0, 0, 0, -10, -10, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	PtKnight: {
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 10, 10, 0, 0, -5,
		-5, 5, 20, 20, 20, 20, 5, -5,
		-5, 10, 20, 30, 30, 20, 10, -5,
		-5, 10, 20, 30, 30, 20, 10, -5,
		-5, 5, 20, 10, 10, 20, 5, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, -10, 0, 0, 0, 0, -10, -5,
	},
	PtBishop: {
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 10, 10, 0, 0, 0,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 10, 0, 0, 0, 0, 10, 0,
		0, 30, 0, 0, 0, 0, 30, 0,
		0, 0, -10, 0, 0, -10, 0, 0,
	},
	PtRook: {
		50, 50, 50, 50, 50, 50, 50, 50,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 0, 10, 20, 20, 10, 0, 0,
		0, 0, 0, 20, 20, 0, 0, 0,
	},
	// PtQueen: the queen carries no positional bonus - kept explicit
	// here as an all-zero table rather than left implicit.
	PtQueen: {},
	PtKing: {
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 5, 5, 5, 5, 0, 0,
		0, 5, 5, 10, 10, 5, 5, 0,
		0, 5, 10, 20, 20, 10, 5, 0,
		0, 5, 10, 20, 20, 10, 5, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 5, 5, -5, -5, 0, 5, 0,
		0, 0, 5, 0, -15, 0, 10, 0,
	},
}

// Evaluate returns the position's score in centipawns, positive for the
// side to move.
func (Material) Evaluate(pos *position.Position) Value {
	var score Value
	for pc := WhitePawn; pc < PieceLength; pc++ {
		bb := pos.PieceBb(pc)
		pt := pc.TypeOf()
		for bb != BbZero {
			sq := bb.PopLsb()
			if pc.ColorOf() == White {
				score += materialScore[pc] + pst[pt][sq]
			} else {
				// mirrorSquare flips the table vertically (rank 1 <-> rank
				// 8) so Black reads the same table White does. XORing with
				// 56 flips the three rank bits of a rank*8+file square
				// index regardless of which rank the numbering calls zero,
				// so it applies unchanged under this module's a8=0
				// convention.
				score += materialScore[pc] - pst[pt][mirrorSquare(sq)]
			}
		}
	}
	if pos.SideToMove() == Black {
		score = -score
	}
	return score
}

func mirrorSquare(sq Square) Square {
	return Square(uint8(sq) ^ 56)
}
