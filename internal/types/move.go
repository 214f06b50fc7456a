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

package types

// Move packs a chess move into a single 24-bit integer:
//
//	bits 0-5   source square
//	bits 6-11  target square
//	bits 12-15 moving piece type
//	bits 16-19 promotion piece type (PtNone = no promotion)
//	bit  20    capture flag
//	bit  21    double-pawn-push flag
//	bit  22    en-passant capture flag
//	bit  23    castling flag
//
// Kept as a typed int rather than a bare int or an unpacked struct;
// the accessors below unpack each field from the bit layout.
type Move uint32

// MoveNone represents "no move" - the zero value, since source==target==0
// (a8->a8) can never be a legal encoded move.
const MoveNone Move = 0

const (
	moveSourceShift    = 0
	moveTargetShift    = 6
	movePieceShift     = 12
	movePromoteShift   = 16
	moveCaptureShift   = 20
	moveDoublePushBit  = 21
	moveEnPassantBit   = 22
	moveCastlingBit    = 23
	moveSquareMask     = 0x3F
	movePieceTypeMask  = 0xF
)

// NewMove packs a move's fields into the 24-bit encoding.
func NewMove(from, to Square, piece, promotion PieceType, capture, doublePush, enPassant, castling bool) Move {
	m := Move(uint32(from)&moveSquareMask) << moveSourceShift
	m |= Move(uint32(to)&moveSquareMask) << moveTargetShift
	m |= Move(uint32(piece)&movePieceTypeMask) << movePieceShift
	m |= Move(uint32(promotion)&movePieceTypeMask) << movePromoteShift
	if capture {
		m |= 1 << moveCaptureShift
	}
	if doublePush {
		m |= 1 << moveDoublePushBit
	}
	if enPassant {
		m |= 1 << moveEnPassantBit
	}
	if castling {
		m |= 1 << moveCastlingBit
	}
	return m
}

// From returns the move's source square.
func (m Move) From() Square {
	return Square((m >> moveSourceShift) & moveSquareMask)
}

// To returns the move's target square.
func (m Move) To() Square {
	return Square((m >> moveTargetShift) & moveSquareMask)
}

// PieceType returns the type of the piece making the move.
func (m Move) PieceType() PieceType {
	return PieceType((m >> movePieceShift) & movePieceTypeMask)
}

// Promotion returns the promotion piece type, or PtNone if this move does
// not promote.
func (m Move) Promotion() PieceType {
	return PieceType((m >> movePromoteShift) & movePieceTypeMask)
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion() != PtNone
}

// IsCapture reports whether m captures a piece (including en-passant).
func (m Move) IsCapture() bool {
	return m&(1<<moveCaptureShift) != 0
}

// IsDoublePawnPush reports whether m is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	return m&(1<<moveDoublePushBit) != 0
}

// IsEnPassant reports whether m is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m&(1<<moveEnPassantBit) != 0
}

// IsCastling reports whether m is a castling move.
func (m Move) IsCastling() bool {
	return m&(1<<moveCastlingBit) != 0
}

// String renders m in long algebraic form (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.Promotion().String()
	}
	return s
}
