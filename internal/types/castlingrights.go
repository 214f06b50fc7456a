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

// CastlingRights is a four-bit nibble tracking which castling moves are
// still available.
type CastlingRights uint8

// The four castling rights bits.
const (
	CastlingWhiteKingSide CastlingRights = 1 << iota
	CastlingWhiteQueenSide
	CastlingBlackKingSide
	CastlingBlackQueenSide

	CastlingNone CastlingRights = 0
	CastlingAny  CastlingRights = CastlingWhiteKingSide | CastlingWhiteQueenSide | CastlingBlackKingSide | CastlingBlackQueenSide
)

// Has reports whether cr carries the given right(s).
func (cr CastlingRights) Has(r CastlingRights) bool {
	return cr&r != 0
}

func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(CastlingWhiteKingSide) {
		s += "K"
	}
	if cr.Has(CastlingWhiteQueenSide) {
		s += "Q"
	}
	if cr.Has(CastlingBlackKingSide) {
		s += "k"
	}
	if cr.Has(CastlingBlackQueenSide) {
		s += "q"
	}
	return s
}

// CastlingRightsMask is a 64-entry byte table: entry s is 0b1111 except
// on the six squares where a king or rook starts, where the bits
// belonging to that square's home right(s) are cleared. ANDing the
// current rights with mask[source] and mask[target] on every move
// monotonically revokes rights without ever granting one.
//
// Values are derived for this engine's a8=0 numbering from the six
// interesting squares (kings' and rooks' home squares).
var CastlingRightsMask = [64]CastlingRights{
	// rank 8 (a8..h8): a8/h8 are black's rook homes, e8 black's king home.
	0b0111, 0b1111, 0b1111, 0b1111, 0b0011, 0b1111, 0b1111, 0b1011,
	0b1111, 0b1111, 0b1111, 0b1111, 0b1111, 0b1111, 0b1111, 0b1111,
	0b1111, 0b1111, 0b1111, 0b1111, 0b1111, 0b1111, 0b1111, 0b1111,
	0b1111, 0b1111, 0b1111, 0b1111, 0b1111, 0b1111, 0b1111, 0b1111,
	0b1111, 0b1111, 0b1111, 0b1111, 0b1111, 0b1111, 0b1111, 0b1111,
	0b1111, 0b1111, 0b1111, 0b1111, 0b1111, 0b1111, 0b1111, 0b1111,
	0b1111, 0b1111, 0b1111, 0b1111, 0b1111, 0b1111, 0b1111, 0b1111,
	// rank 1 (a1..h1): a1/h1 are white's rook homes, e1 white's king home.
	0b1101, 0b1111, 0b1111, 0b1111, 0b1100, 0b1111, 0b1111, 0b1110,
}
