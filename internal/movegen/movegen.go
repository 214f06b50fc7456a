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

// Package movegen enumerates pseudo-legal moves. Perft and search
// share a single enumerator: Generate, driven by a visitor callback.
// Legality (does this move leave the mover's own king in check?) is
// entirely position.Position.DoMove's concern, not this package's -
// Generate only filters out moves that are structurally impossible
// (blocked slider path, no piece to capture, no castling right).
package movegen

import (
	"github.com/chesskernel/chesskernel/internal/attacks"
	"github.com/chesskernel/chesskernel/internal/moveslice"
	"github.com/chesskernel/chesskernel/internal/position"
	. "github.com/chesskernel/chesskernel/internal/types"
)

// MaxMoves upper-bounds the number of pseudo-legal moves any reachable
// chess position can have, with headroom; used to pre-size move buffers.
const MaxMoves = 256

// promotionPieces lists the four promotion choices, queen first since
// it is almost always the best and callers that break out of Generate
// early benefit from seeing it first.
var promotionPieces = [4]PieceType{PtQueen, PtKnight, PtRook, PtBishop}

// Generate calls visit once for every pseudo-legal move available to the
// side to move in pos, in no particular order. If visit returns false,
// Generate stops early. Generate never mutates pos.
func Generate(pos *position.Position, visit func(Move) bool) {
	us := pos.SideToMove()
	ok := generatePawnMoves(pos, us, visit)
	ok = ok && generateLeaperOrSliderMoves(pos, us, PtKnight, visit)
	ok = ok && generateLeaperOrSliderMoves(pos, us, PtBishop, visit)
	ok = ok && generateLeaperOrSliderMoves(pos, us, PtRook, visit)
	ok = ok && generateLeaperOrSliderMoves(pos, us, PtQueen, visit)
	ok = ok && generateKingMoves(pos, us, visit)
	if ok {
		generateCastling(pos, us, visit)
	}
}

// GenerateAll collects every pseudo-legal move into a slice. Convenience
// wrapper around Generate for callers (tests, perft) that want the whole
// batch rather than streaming visitation.
func GenerateAll(pos *position.Position) []Move {
	moves := moveslice.New(MaxMoves)
	Generate(pos, func(m Move) bool {
		moves.PushBack(m)
		return true
	})
	return moves.Slice()
}

func generatePawnMoves(pos *position.Position, us Color, visit func(Move) bool) bool {
	them := us.Flip()
	myPawns := pos.PieceBb(MakePiece(us, PtPawn))
	enemy := pos.PiecesOf(them)
	occupied := pos.Occupied()

	var forward Direction
	var startRank, promoRank Rank
	var startRankBb, promoRankBb Bitboard
	if us == White {
		forward, startRank, promoRank = North, Rank2, Rank8
	} else {
		forward, startRank, promoRank = South, Rank7, Rank1
	}
	startRankBb = startRank.Bb()
	promoRankBb = promoRank.Bb()

	captureDirs := [2]Direction{East, West}

	bb := myPawns
	for bb != BbZero {
		from := bb.PopLsb()
		to := from.To(forward)

		// single and double pushes
		if to != SqNone && !occupied.Has(to) {
			if !emitPawnMove(from, to, promoRankBb, false, visit) {
				return false
			}
			if from.Bb()&startRankBb != 0 {
				to2 := to.To(forward)
				if to2 != SqNone && !occupied.Has(to2) {
					if !visit(NewMove(from, to2, PtPawn, PtNone, false, true, false, false)) {
						return false
					}
				}
			}
		}

		// captures, including en passant
		for _, d := range captureDirs {
			capSq := from.To(forward + d)
			if capSq == SqNone {
				continue
			}
			if enemy.Has(capSq) {
				if !emitPawnMove(from, capSq, promoRankBb, true, visit) {
					return false
				}
			} else if capSq == pos.EnPassantSquare() {
				if !visit(NewMove(from, capSq, PtPawn, PtNone, true, false, true, false)) {
					return false
				}
			}
		}
	}
	return true
}

func emitPawnMove(from, to Square, promoRankBb Bitboard, capture bool, visit func(Move) bool) bool {
	if to.Bb()&promoRankBb != 0 {
		for _, promo := range promotionPieces {
			if !visit(NewMove(from, to, PtPawn, promo, capture, false, false, false)) {
				return false
			}
		}
		return true
	}
	return visit(NewMove(from, to, PtPawn, PtNone, capture, false, false, false))
}

func generateLeaperOrSliderMoves(pos *position.Position, us Color, pt PieceType, visit func(Move) bool) bool {
	occupied := pos.Occupied()
	own := pos.PiecesOf(us)
	enemy := pos.PiecesOf(us.Flip())

	pieces := pos.PieceBb(MakePiece(us, pt))
	for pieces != BbZero {
		from := pieces.PopLsb()
		targets := attacks.AttacksBb(pt, from, occupied) &^ own

		moves := targets
		for moves != BbZero {
			to := moves.PopLsb()
			capture := enemy.Has(to)
			if !visit(NewMove(from, to, pt, PtNone, capture, false, false, false)) {
				return false
			}
		}
	}
	return true
}

func generateKingMoves(pos *position.Position, us Color, visit func(Move) bool) bool {
	own := pos.PiecesOf(us)
	enemy := pos.PiecesOf(us.Flip())
	from := pos.KingSquare(us)
	targets := attacks.KingAttacks(from) &^ own

	for targets != BbZero {
		to := targets.PopLsb()
		capture := enemy.Has(to)
		if !visit(NewMove(from, to, PtKing, PtNone, capture, false, false, false)) {
			return false
		}
	}
	return true
}

// generateCastling adds both castling moves still available to us,
// checking that the squares the king passes through (including its
// start and destination) are empty and not attacked. This is checked
// directly here, not deferred to DoMove's generic own-king-attacked
// test, since DoMove only re-checks the king's final square, not the
// square it passes through.
func generateCastling(pos *position.Position, us Color, visit func(Move) bool) bool {
	them := us.Flip()
	cr := pos.CastlingRights()
	occupied := pos.Occupied()

	type castle struct {
		right            CastlingRights
		kingFrom, kingTo Square
		passThrough      Bitboard
	}

	var candidates [2]castle
	if us == White {
		candidates = [2]castle{
			{CastlingWhiteKingSide, SqE1, SqG1, SqE1.Bb() | SqF1.Bb() | SqG1.Bb()},
			{CastlingWhiteQueenSide, SqE1, SqC1, SqC1.Bb() | SqD1.Bb() | SqE1.Bb()},
		}
	} else {
		candidates = [2]castle{
			{CastlingBlackKingSide, SqE8, SqG8, SqE8.Bb() | SqF8.Bb() | SqG8.Bb()},
			{CastlingBlackQueenSide, SqE8, SqC8, SqC8.Bb() | SqD8.Bb() | SqE8.Bb()},
		}
	}

	emptySquares := [2]Bitboard{SqF1.Bb() | SqG1.Bb(), SqB1.Bb() | SqC1.Bb() | SqD1.Bb()}
	if us == Black {
		emptySquares = [2]Bitboard{SqF8.Bb() | SqG8.Bb(), SqB8.Bb() | SqC8.Bb() | SqD8.Bb()}
	}

	for i, c := range candidates {
		if !cr.Has(c.right) {
			continue
		}
		if occupied&emptySquares[i] != BbZero {
			continue
		}
		attacked := false
		for sq := c.passThrough; sq != BbZero; {
			if pos.IsAttacked(sq.PopLsb(), them) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		if !visit(NewMove(c.kingFrom, c.kingTo, PtKing, PtNone, false, false, false, true)) {
			return false
		}
	}
	return true
}
