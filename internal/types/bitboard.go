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

// Package types holds the board-independent value types shared across the
// engine kernel: squares, files, ranks, pieces, bitboards, castling
// rights, encoded moves and search values.
package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares; bit i is set iff square i belongs
// to the set, using this engine's a8=0 square numbering throughout.
type Bitboard uint64

// BbZero and BbAll are the empty and full bitboards.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

var fileBb [FileLength]Bitboard
var rankBb [RankLength]Bitboard

func init() {
	for f := FileA; f < FileLength; f++ {
		var bb Bitboard
		for r := Rank8; r < RankLength; r++ {
			bb.PushSquare(NewSquare(f, r))
		}
		fileBb[f] = bb
	}
	for r := Rank8; r < RankLength; r++ {
		var bb Bitboard
		for f := FileA; f < FileLength; f++ {
			bb.PushSquare(NewSquare(f, r))
		}
		rankBb[r] = bb
	}
}

// Has reports whether sq is a member of b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// PushSquare sets sq's bit in b.
func (b *Bitboard) PushSquare(sq Square) {
	*b |= sq.Bb()
}

// PopSquare clears sq's bit in b.
func (b *Bitboard) PopSquare(sq Square) {
	*b &^= sq.Bb()
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the least-significant set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most-significant set square, or SqNone if b is empty.
func (b Bitboard) Msb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb clears and returns the least-significant set square. Calling it
// on an empty bitboard returns SqNone and leaves b unchanged.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq == SqNone {
		return SqNone
	}
	b.PopSquare(sq)
	return sq
}

// Shift moves every bit in b one step in Direction d, discarding bits
// that would wrap around a file edge.
func (b Bitboard) Shift(d Direction) Bitboard {
	switch d {
	case North:
		return b >> 8
	case South:
		return b << 8
	case East:
		return (b &^ FileH.Bb()) << 1
	case West:
		return (b &^ FileA.Bb()) >> 1
	case NorthEast:
		return (b &^ FileH.Bb()) >> 7
	case NorthWest:
		return (b &^ FileA.Bb()) >> 9
	case SouthEast:
		return (b &^ FileH.Bb()) << 9
	case SouthWest:
		return (b &^ FileA.Bb()) << 7
	default:
		return 0
	}
}

// String renders b as a compact list of set squares.
func (b Bitboard) String() string {
	var sqs []string
	t := b
	for t != 0 {
		sqs = append(sqs, t.PopLsb().String())
	}
	return strings.Join(sqs, " ")
}

// StringBoard renders b as an 8x8 ASCII board, rank 8 at the top, for
// debug output.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	for r := Rank8; r < RankLength; r++ {
		for f := FileA; f < FileLength; f++ {
			if b.Has(NewSquare(f, r)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString("0 ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
