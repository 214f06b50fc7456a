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

import . "github.com/chesskernel/chesskernel/internal/types"

// zobristRand is a xorshift64star generator (public domain algorithm
// by Sebastiano Vigna) seeded with a fixed constant so the key tables
// below are reproducible across runs.
type zobristRand struct {
	s uint64
}

func (r *zobristRand) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// zobristPiece, zobristSideToMove, zobristCastling and zobristEnPassant
// are the random numbers ZobristKey is incrementally XORed against.
// ZobristKey itself is never read by search, since there is no
// transposition table yet; these tables exist purely so the hook
// carries a real, collision-resistant value rather than a stub.
var (
	zobristPiece      [PieceLength][64]uint64
	zobristSideToMove uint64
	zobristCastling   [16]uint64
	zobristEnPassant  [FileLength]uint64
)

func init() {
	r := &zobristRand{s: 1070372}
	for pc := Piece(0); pc < PieceLength; pc++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[pc][sq] = r.next()
		}
	}
	zobristSideToMove = r.next()
	for i := range zobristCastling {
		zobristCastling[i] = r.next()
	}
	for f := FileA; f < FileLength; f++ {
		zobristEnPassant[f] = r.next()
	}
}
