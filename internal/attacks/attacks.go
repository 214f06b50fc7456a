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

// Package attacks precomputes every attack set the engine will ever need:
// leaper tables (pawn, knight, king) indexed directly by square, and
// magic-indexed slider tables (bishop, rook) built once at process start.
// Everything here is process-wide, read-only after init() runs, and safe
// to share across concurrent perft workers (see movegen.PerftDivideParallel).
package attacks

import (
	. "github.com/chesskernel/chesskernel/internal/types"
)

// magicEntry holds the data needed to index into one square's slider
// attack table, following the "fancy magic" approach to magic
// bitboards.
type magicEntry struct {
	mask    Bitboard
	magic   Bitboard
	shift   uint
	attacks []Bitboard
}

func (m *magicEntry) index(occupied Bitboard) uint {
	occ := occupied & m.mask
	occ *= m.magic
	occ >>= m.shift
	return uint(occ)
}

var (
	pawnAttacks   [2][64]Bitboard
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard

	bishopMagic [64]magicEntry
	rookMagic   [64]magicEntry

	bishopTable []Bitboard
	rookTable   []Bitboard
)

var bishopDirs = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}
var rookDirs = [4]Direction{North, South, East, West}

func init() {
	initLeapers()
	initSliders()
}

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack set from sq.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// BishopAttacks returns the bishop attack set from sq given the current
// board occupancy, via the magic-bitboard index.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagic[sq]
	return m.attacks[m.index(occupied)]
}

// RookAttacks returns the rook attack set from sq given the current board
// occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagic[sq]
	return m.attacks[m.index(occupied)]
}

// QueenAttacks is the union of bishop and rook attacks from sq.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// AttacksBb dispatches to the right table for pt. Only used by callers
// that don't already know the piece kind at compile time (e.g. a
// generic is-square-attacked probe); movegen prefers the typed
// functions above.
func AttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case PtBishop:
		return BishopAttacks(sq, occupied)
	case PtRook:
		return RookAttacks(sq, occupied)
	case PtQueen:
		return QueenAttacks(sq, occupied)
	case PtKnight:
		return knightAttacks[sq]
	case PtKing:
		return kingAttacks[sq]
	default:
		return BbZero
	}
}

func initLeapers() {
	for sq := SqA8; sq < SqLength; sq++ {
		b := sq.Bb()

		pawnAttacks[White][sq] = b.Shift(NorthEast) | b.Shift(NorthWest)
		pawnAttacks[Black][sq] = b.Shift(SouthEast) | b.Shift(SouthWest)

		var n Bitboard
		n |= (b &^ (FileG.Bb() | FileH.Bb())).Shift(North).Shift(East).Shift(East)
		n |= (b &^ (FileA.Bb() | FileB.Bb())).Shift(North).Shift(West).Shift(West)
		n |= (b &^ (FileG.Bb() | FileH.Bb())).Shift(South).Shift(East).Shift(East)
		n |= (b &^ (FileA.Bb() | FileB.Bb())).Shift(South).Shift(West).Shift(West)
		n |= (b &^ FileH.Bb()).Shift(North).Shift(North).Shift(East)
		n |= (b &^ FileA.Bb()).Shift(North).Shift(North).Shift(West)
		n |= (b &^ FileH.Bb()).Shift(South).Shift(South).Shift(East)
		n |= (b &^ FileA.Bb()).Shift(South).Shift(South).Shift(West)
		knightAttacks[sq] = n

		var k Bitboard
		k |= b.Shift(North)
		k |= b.Shift(South)
		k |= b.Shift(East)
		k |= b.Shift(West)
		k |= b.Shift(NorthEast)
		k |= b.Shift(NorthWest)
		k |= b.Shift(SouthEast)
		k |= b.Shift(SouthWest)
		kingAttacks[sq] = k
	}
}

// slidingAttack walks each of dirs from sq over occupied, stopping (and
// including) the first blocker. Used both for mask construction (with
// occupied == BbZero, then trimmed by trimEdges) and during attack-table
// construction (with a concrete blocker subset). Not used during move
// generation or search - only at init time.
func slidingAttack(dirs [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range dirs {
		s := sq
		for {
			ns := s.To(d)
			if ns == SqNone {
				break
			}
			attack.PushSquare(ns)
			if occupied.Has(ns) {
				break
			}
			s = ns
		}
	}
	return attack
}

// trimEdges removes the board border from a full-ray attack set to get a
// slider's relevant-occupancy mask: a blocker on the far edge never
// changes the attack set further, so it need not be part of the index.
func trimEdges(sq Square) Bitboard {
	edges := ((Rank1.Bb() | Rank8.Bb()) &^ sq.RankOf().Bb()) |
		((FileA.Bb() | FileH.Bb()) &^ sq.FileOf().Bb())
	return ^edges
}

func initSliders() {
	bishopTable = make([]Bitboard, 64*512)
	rookTable = make([]Bitboard, 64*4096)

	for sq := SqA8; sq < SqLength; sq++ {
		initOneSlider(&bishopMagic[sq], bishopDirs, sq, bishopMagicNumbers[sq],
			uint(bishopRelevantBits[sq]), bishopTable[int(sq)*512:int(sq)*512+512])
		initOneSlider(&rookMagic[sq], rookDirs, sq, rookMagicNumbers[sq],
			uint(rookRelevantBits[sq]), rookTable[int(sq)*4096:int(sq)*4096+4096])
	}
}

func initOneSlider(m *magicEntry, dirs [4]Direction, sq Square, magic Bitboard, relevantBits uint, table []Bitboard) {
	m.mask = slidingAttack(dirs, sq, BbZero) & trimEdges(sq)
	m.magic = magic
	m.shift = 64 - relevantBits
	m.attacks = table

	// Carry-Rippler enumeration of every subset of mask.
	b := BbZero
	for {
		idx := m.index(b)
		m.attacks[idx] = slidingAttack(dirs, sq, b)
		b = (b - m.mask) & m.mask
		if b == BbZero {
			break
		}
	}
}
