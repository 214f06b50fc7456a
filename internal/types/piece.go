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

// Piece combines a PieceType with a Color. White pieces are 0..5, black
// pieces 6..11, in {pawn,knight,bishop,rook,queen,king} order for each
// color - this is also the order the embedded material and piece-square
// tables are indexed by.
type Piece uint8

// The twelve pieces plus a sentinel for an empty square.
const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceNone
	PieceLength = PieceNone
)

var pieceLabels = [PieceLength]string{"P", "N", "B", "R", "Q", "K", "p", "n", "b", "r", "q", "k"}

// MakePiece builds a Piece from a color and a piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(uint8(c)*6 + uint8(pt))
}

// IsValid reports whether p is one of the twelve pieces.
func (p Piece) IsValid() bool {
	return p < PieceLength
}

// ColorOf returns the color of p.
func (p Piece) ColorOf() Color {
	if p < BlackPawn {
		return White
	}
	return Black
}

// TypeOf returns the piece type of p, independent of color.
func (p Piece) TypeOf() PieceType {
	return PieceType(uint8(p) % 6)
}

func (p Piece) String() string {
	if !p.IsValid() {
		return "-"
	}
	return pieceLabels[p]
}
