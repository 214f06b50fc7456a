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

// Package moveslice provides a small reusable []Move buffer. Move
// itself carries no sort-value bits - movegen.Generate never orders
// its output, ordering is search's job - so this package is a plain
// append/clear buffer, nothing more.
package moveslice

import (
	"strings"

	. "github.com/chesskernel/chesskernel/internal/types"
)

// MoveSlice is a reusable, reset-without-reallocating buffer of moves.
type MoveSlice struct {
	moves []Move
}

// New returns a MoveSlice pre-sized to hold capacity moves without
// reallocating, avoiding per-node heap allocation during search.
func New(capacity int) *MoveSlice {
	return &MoveSlice{moves: make([]Move, 0, capacity)}
}

// Clear empties the slice but keeps its backing array.
func (ms *MoveSlice) Clear() { ms.moves = ms.moves[:0] }

// PushBack appends m.
func (ms *MoveSlice) PushBack(m Move) { ms.moves = append(ms.moves, m) }

// Len returns the number of moves currently held.
func (ms *MoveSlice) Len() int { return len(ms.moves) }

// At returns the move at index i.
func (ms *MoveSlice) At(i int) Move { return ms.moves[i] }

// Set overwrites the move at index i.
func (ms *MoveSlice) Set(i int, m Move) { ms.moves[i] = m }

// Slice exposes the underlying moves for range iteration.
func (ms *MoveSlice) Slice() []Move { return ms.moves }

func (ms *MoveSlice) String() string {
	parts := make([]string, len(ms.moves))
	for i, m := range ms.moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
