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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/chesskernel/chesskernel/internal/types"
)

func TestPawnAttacks(t *testing.T) {
	assert.Equal(t, SqD5.Bb()|SqF5.Bb(), PawnAttacks(White, SqE4))
	assert.Equal(t, SqD4.Bb()|SqF4.Bb(), PawnAttacks(Black, SqE5))
	// A pawn on the back rank has no legal attacks - the shift runs off
	// the board in both directions.
	assert.Equal(t, BbZero, PawnAttacks(White, SqB8))
	assert.Equal(t, BbZero, PawnAttacks(Black, SqB1))
}

func TestKnightAttacksCenterAndCorner(t *testing.T) {
	center := KnightAttacks(SqD4)
	assert.Equal(t, 8, center.PopCount())
	for _, sq := range []Square{SqB3, SqB5, SqC2, SqC6, SqE2, SqE6, SqF3, SqF5} {
		assert.True(t, center.Has(sq), "expected %s in knight attacks from d4", sq)
	}

	corner := KnightAttacks(SqA8)
	assert.Equal(t, 2, corner.PopCount())
	assert.True(t, corner.Has(SqB6))
	assert.True(t, corner.Has(SqC7))
}

func TestKingAttacksCenterAndCorner(t *testing.T) {
	assert.Equal(t, 8, KingAttacks(SqD4).PopCount())
	assert.Equal(t, 3, KingAttacks(SqA8).PopCount())
	assert.Equal(t, 5, KingAttacks(SqA4).PopCount())
}

// rayWalk is a slow, independent reference for slider attacks: it walks
// each direction one square at a time and stops at the first blocker, the
// same logic slidingAttack implements, but written out again here so the
// magic-indexed tables have something to be checked against.
func rayWalk(dirs [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var b Bitboard
	for _, d := range dirs {
		s := sq
		for {
			ns := s.To(d)
			if ns == SqNone {
				break
			}
			b.PushSquare(ns)
			if occupied.Has(ns) {
				break
			}
			s = ns
		}
	}
	return b
}

func TestRookAttacksAgainstRayWalk(t *testing.T) {
	occupancies := []Bitboard{
		BbZero,
		SqD1.Bb() | SqD8.Bb() | SqA4.Bb() | SqH4.Bb(),
		SqD5.Bb(),
		BbAll &^ (SqD4.Bb()),
	}
	for sq := SqA8; sq < SqLength; sq++ {
		for _, occ := range occupancies {
			want := rayWalk(rookDirs, sq, occ)
			got := RookAttacks(sq, occ)
			assert.Equal(t, want, got, "rook attacks from %s with occ\n%s", sq, occ.StringBoard())
		}
	}
}

func TestBishopAttacksAgainstRayWalk(t *testing.T) {
	occupancies := []Bitboard{
		BbZero,
		SqB2.Bb() | SqG7.Bb() | SqC3.Bb(),
		SqD5.Bb(),
		BbAll &^ (SqD4.Bb()),
	}
	for sq := SqA8; sq < SqLength; sq++ {
		for _, occ := range occupancies {
			want := rayWalk(bishopDirs, sq, occ)
			got := BishopAttacks(sq, occ)
			assert.Equal(t, want, got, "bishop attacks from %s with occ\n%s", sq, occ.StringBoard())
		}
	}
}

func TestQueenAttacksIsUnionOfRookAndBishop(t *testing.T) {
	occ := SqD5.Bb() | SqD1.Bb() | SqA4.Bb()
	for sq := SqA8; sq < SqLength; sq++ {
		want := RookAttacks(sq, occ) | BishopAttacks(sq, occ)
		assert.Equal(t, want, QueenAttacks(sq, occ))
	}
}

func TestAttacksBbDispatch(t *testing.T) {
	assert.Equal(t, KnightAttacks(SqD4), AttacksBb(PtKnight, SqD4, BbZero))
	assert.Equal(t, KingAttacks(SqD4), AttacksBb(PtKing, SqD4, BbZero))
	assert.Equal(t, RookAttacks(SqD4, BbZero), AttacksBb(PtRook, SqD4, BbZero))
	assert.Equal(t, BishopAttacks(SqD4, BbZero), AttacksBb(PtBishop, SqD4, BbZero))
	assert.Equal(t, QueenAttacks(SqD4, BbZero), AttacksBb(PtQueen, SqD4, BbZero))
}

func TestDeriveMagicsProducesAWorkingTable(t *testing.T) {
	derived := DeriveMagics(rookDirs, &rookRelevantBits)

	// A derived magic need not equal the embedded constant for its square
	// (several magics can work), but it must be collision-free: indexing
	// with it must reproduce the exact same attack set slidingAttack
	// would compute directly, for every blocker subset of that square's
	// mask.
	for _, sq := range []Square{SqA8, SqD4, SqH1, SqE5} {
		mask := slidingAttack(rookDirs, sq, BbZero) & trimEdges(sq)
		shift := uint(64 - rookRelevantBits[sq])
		var table [4096]Bitboard

		b := BbZero
		for {
			want := slidingAttack(rookDirs, sq, b)
			idx := uint((b & mask) * derived[sq] >> shift)
			if table[idx] != BbZero && table[idx] != want {
				t.Fatalf("derived magic for %s collides on occupancy %s", sq, b)
			}
			table[idx] = want
			b = (b - mask) & mask
			if b == BbZero {
				break
			}
		}
	}
}
