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

// PieceType is the kind of a piece, independent of color.
type PieceType uint8

// The six piece kinds plus a sentinel. PtNone also doubles as the "no
// promotion" value in an encoded Move.
const (
	PtPawn PieceType = iota
	PtKnight
	PtBishop
	PtRook
	PtQueen
	PtKing
	PtNone
	PtLength = PtNone
)

var pieceTypeLabels = [PtLength]string{"p", "n", "b", "r", "q", "k"}

// IsValid reports whether pt is one of the six piece kinds.
func (pt PieceType) IsValid() bool {
	return pt < PtLength
}

// IsSlider reports whether pt slides along rays (bishop, rook or queen).
func (pt PieceType) IsSlider() bool {
	return pt == PtBishop || pt == PtRook || pt == PtQueen
}

func (pt PieceType) String() string {
	if !pt.IsValid() {
		return "-"
	}
	return pieceTypeLabels[pt]
}
