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

// Package position holds the mutable board state, its text I/O, and
// the make/unmake layer, built around this engine's a8=0 square
// numbering and a full-state snapshot stack for undo.
package position

import (
	"fmt"
	"strings"

	"github.com/chesskernel/chesskernel/internal/attacks"
	. "github.com/chesskernel/chesskernel/internal/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxHistory bounds the make/unmake snapshot stack: search recurses to
// at most 64 ply; this leaves headroom for the moves a "position ...
// moves ..." adapter command replays before search even starts, plus
// check extensions.
const maxHistory = 512

// MakeMoveMode selects whether DoMove commits any pseudo-legal move or
// only captures.
type MakeMoveMode int

// The two make-move modes.
const (
	MakeAll MakeMoveMode = iota
	MakeCapturesOnly
)

// snapshot is the complete mutable state of a Position, saved before each
// DoMove and restored by UndoMove or by a rejected DoMove's own internal
// rollback.
type snapshot struct {
	pieces         [PieceLength]Bitboard
	occupied       [ColorLength]Bitboard
	board          [64]Piece
	sideToMove     Color
	epSquare       Square
	castling       CastlingRights
	halfMoveClock  int
	fullMoveNumber int
	zobristKey     uint64
}

// Position is the single mutable object a search recurses over. It is
// owned exclusively by one in-progress search.
type Position struct {
	pieces         [PieceLength]Bitboard
	occupied       [ColorLength]Bitboard
	board          [64]Piece
	sideToMove     Color
	epSquare       Square
	castling       CastlingRights
	halfMoveClock  int
	fullMoveNumber int

	// ZobristKey is an inert hook for a future transposition table. It
	// is maintained incrementally by every mutation below but never
	// read by search.
	ZobristKey uint64

	history [maxHistory]snapshot
	ply     int
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p, err := NewPositionFen(StartFen)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPositionFen parses fen and returns the resulting Position, or a
// MalformedPosition error.
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{}
	if err := p.SetFen(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// SideToMove returns the side to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the current castling-rights nibble.
func (p *Position) CastlingRights() CastlingRights { return p.castling }

// EnPassantSquare returns the current en-passant target, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.epSquare }

// HalfMoveClock returns the half-move clock used for the fifty-move rule.
// Search itself never consults it (fifty-move detection is a Non-goal);
// it exists for FEN round-tripping.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// FullMoveNumber returns the full-move counter.
func (p *Position) FullMoveNumber() int { return p.fullMoveNumber }

// PieceAt returns the piece occupying sq, or PieceNone.
func (p *Position) PieceAt(sq Square) Piece { return p.board[sq] }

// PieceBb returns the bitboard of all pieces of kind pc.
func (p *Position) PieceBb(pc Piece) Bitboard { return p.pieces[pc] }

// PiecesOf returns the union bitboard of every piece type for color c.
func (p *Position) PiecesOf(c Color) Bitboard { return p.occupied[c] }

// Occupied returns the union of both sides' pieces.
func (p *Position) Occupied() Bitboard { return p.occupied[ColorBoth] }

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.pieces[MakePiece(c, PtKing)].Lsb()
}

// Ply returns the number of moves currently applied via DoMove without a
// matching UndoMove (the make/unmake stack depth).
func (p *Position) Ply() int { return p.ply }

func (p *Position) pushSnapshot() {
	p.history[p.ply] = snapshot{
		pieces:         p.pieces,
		occupied:       p.occupied,
		board:          p.board,
		sideToMove:     p.sideToMove,
		epSquare:       p.epSquare,
		castling:       p.castling,
		halfMoveClock:  p.halfMoveClock,
		fullMoveNumber: p.fullMoveNumber,
		zobristKey:     p.ZobristKey,
	}
	p.ply++
}

func (p *Position) popSnapshot() {
	p.ply--
	s := &p.history[p.ply]
	p.pieces = s.pieces
	p.occupied = s.occupied
	p.board = s.board
	p.sideToMove = s.sideToMove
	p.epSquare = s.epSquare
	p.castling = s.castling
	p.halfMoveClock = s.halfMoveClock
	p.fullMoveNumber = s.fullMoveNumber
	p.ZobristKey = s.zobristKey
}

func (p *Position) putPiece(pc Piece, sq Square) {
	p.pieces[pc].PushSquare(sq)
	p.occupied[pc.ColorOf()].PushSquare(sq)
	p.occupied[ColorBoth].PushSquare(sq)
	p.board[sq] = pc
	p.ZobristKey ^= zobristPiece[pc][sq]
}

func (p *Position) removePiece(pc Piece, sq Square) {
	p.pieces[pc].PopSquare(sq)
	p.occupied[pc.ColorOf()].PopSquare(sq)
	p.occupied[ColorBoth].PopSquare(sq)
	p.board[sq] = PieceNone
	p.ZobristKey ^= zobristPiece[pc][sq]
}

func (p *Position) movePiece(pc Piece, from, to Square) {
	p.removePiece(pc, from)
	p.putPiece(pc, to)
}

// DoMove applies m under mode, through a fixed fourteen-step sequence.
// It returns false (and leaves the position exactly as it was) if
// mode rejects m outright, or if applying m leaves the mover's own
// king attacked. On true, the caller owns a balanced UndoMove call.
func (p *Position) DoMove(m Move, mode MakeMoveMode) bool {
	// Step 1.
	if mode == MakeCapturesOnly && !m.IsCapture() {
		return false
	}

	// Step 2.
	p.pushSnapshot()

	us := p.sideToMove
	them := us.Flip()
	from := m.From()
	to := m.To()
	pt := m.PieceType()
	mover := MakePiece(us, pt)

	if p.epSquare != SqNone {
		p.ZobristKey ^= zobristEnPassant[p.epSquare.FileOf()]
	}
	p.ZobristKey ^= zobristCastling[p.castling]

	// En-passant capture must run before the generic capture-removal
	// below, since the captured pawn does not sit on `to`.
	if m.IsEnPassant() {
		var capSq Square
		if us == White {
			capSq = to.To(South)
		} else {
			capSq = to.To(North)
		}
		p.removePiece(MakePiece(them, PtPawn), capSq)
	} else if m.IsCapture() {
		// Step 4: remove whatever enemy piece sits on the target square.
		captured := p.board[to]
		p.removePiece(captured, to)
	}

	// Step 3 + step 5 (promotion swaps the piece placed on `to`).
	p.removePiece(mover, from)
	if m.IsPromotion() {
		p.putPiece(MakePiece(us, m.Promotion()), to)
	} else {
		p.putPiece(mover, to)
	}

	// Step 9: castling also relocates the rook.
	if m.IsCastling() {
		rookFrom, rookTo := castlingRookSquares(to)
		p.movePiece(MakePiece(us, PtRook), rookFrom, rookTo)
	}

	// Step 7 + step 8: en-passant target reset, then set on a double push.
	p.epSquare = SqNone
	if m.IsDoublePawnPush() {
		if us == White {
			p.epSquare = to.To(South)
		} else {
			p.epSquare = to.To(North)
		}
		p.ZobristKey ^= zobristEnPassant[p.epSquare.FileOf()]
	}

	// Step 10.
	p.castling &= CastlingRightsMask[from] & CastlingRightsMask[to]
	p.ZobristKey ^= zobristCastling[p.castling]

	if pt == PtPawn || m.IsCapture() {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}
	if us == Black {
		p.fullMoveNumber++
	}

	// Step 12.
	p.sideToMove = them
	p.ZobristKey ^= zobristSideToMove

	// Step 13: the mover's own king must not now be attacked.
	if p.IsAttacked(p.KingSquare(us), them) {
		p.popSnapshot()
		return false
	}

	// Step 14.
	return true
}

// UndoMove reverts the most recent successful DoMove.
func (p *Position) UndoMove() {
	p.popSnapshot()
}

// castlingRookSquares returns the rook's home and inner-castle squares
// given the king's destination square.
func castlingRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	default:
		panic(fmt.Sprintf("castlingRookSquares: %s is not a castling destination", kingTo))
	}
}

// IsAttacked reports whether sq is attacked by any piece of color by:
// it probes with each attacker kind's own attack pattern from sq and
// checks it against by's pieces of that kind.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	occ := p.occupied[ColorBoth]

	if attacks.PawnAttacks(by.Flip(), sq)&p.pieces[MakePiece(by, PtPawn)] != 0 {
		return true
	}
	if attacks.KnightAttacks(sq)&p.pieces[MakePiece(by, PtKnight)] != 0 {
		return true
	}
	if attacks.KingAttacks(sq)&p.pieces[MakePiece(by, PtKing)] != 0 {
		return true
	}
	bishopsQueens := p.pieces[MakePiece(by, PtBishop)] | p.pieces[MakePiece(by, PtQueen)]
	if attacks.BishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.pieces[MakePiece(by, PtRook)] | p.pieces[MakePiece(by, PtQueen)]
	if attacks.RookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// InCheck reports whether the side to move's king is currently attacked.
func (p *Position) InCheck() bool {
	return p.IsAttacked(p.KingSquare(p.sideToMove), p.sideToMove.Flip())
}

func (p *Position) String() string {
	var sb strings.Builder
	for r := Rank8; r < RankLength; r++ {
		sb.WriteString(r.String())
		sb.WriteString(" ")
		for f := FileA; f < FileLength; f++ {
			pc := p.board[NewSquare(f, r)]
			if pc == PieceNone {
				sb.WriteString(". ")
			} else {
				sb.WriteString(pc.String())
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  a b c d e f g h\n")
	fmt.Fprintf(&sb, "side=%s castling=%s ep=%s\n", p.sideToMove, p.castling, p.epSquare)
	return sb.String()
}
