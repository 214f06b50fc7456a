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

import "fmt"

// Square identifies one of the 64 board squares. Square 0 is a8 (top-left
// from white's point of view), square 63 is h1 - the opposite numbering
// from the classic a1=0 scheme, chosen so that file = sq % 8 and
// rank_from_top = sq / 8 fall out directly.
type Square int8

// SqNone is the sentinel "no square" value, used for an unset en-passant
// target.
const (
	SqA8 Square = iota
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA1
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqLength
	SqNone = SqLength
)

// Direction is a square delta. North moves toward rank 8 (square index
// decreases) because rank 8 is square-numbered first.
type Direction int8

// The eight ray directions plus the four knight-adjacent double steps used
// to build pawn double-push and knight offsets.
const (
	North     Direction = -8
	South     Direction = 8
	East      Direction = 1
	West      Direction = -1
	NorthEast Direction = North + East
	NorthWest Direction = North + West
	SouthEast Direction = South + East
	SouthWest Direction = South + West
)

// NewSquare builds a Square from a file and a rank.
func NewSquare(f File, r Rank) Square {
	return Square(uint8(r)*8 + uint8(f))
}

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq >= SqA8 && sq < SqLength
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(int8(sq) % 8)
}

// RankOf returns the rank of sq (Rank8 for the top row).
func (sq Square) RankOf() Rank {
	return Rank(int8(sq) / 8)
}

// Bb returns a Bitboard with only sq set.
func (sq Square) Bb() Bitboard {
	return Bitboard(1) << uint(sq)
}

// To returns the square reached by moving one step in Direction d, or
// SqNone if that step would leave the board or wrap around a file edge.
func (sq Square) To(d Direction) Square {
	to := sq + Square(d)
	if to < SqA8 || to >= SqLength {
		return SqNone
	}
	if SquareDistance(sq, to) != 1 {
		return SqNone
	}
	return to
}

// SquareDistance returns the Chebyshev distance between two squares (the
// number of king moves to go from one to the other). It is also used to
// detect file-wrap: two squares that are direct ray neighbours are never
// more than one file and one rank apart.
func SquareDistance(a, b Square) int {
	df := int(a.FileOf()) - int(b.FileOf())
	if df < 0 {
		df = -df
	}
	dr := int(a.RankOf()) - int(b.RankOf())
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%s%s", sq.FileOf(), sq.RankOf())
}
