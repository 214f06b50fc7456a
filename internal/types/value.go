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

// Value is a centipawn evaluation or search score, signed from the
// perspective of the side to move. A plain int32 is needed to hold
// ValueMate's magnitude with headroom.
type Value int32

// Sentinel and mate-scoring values. Mate scores are offset from
// ValueMate by ply so that a shorter mate always outscores a longer
// one, and are kept far below ValueInf so they never collide with an
// alpha-beta search window bound.
const (
	ValueZero    Value = 0
	ValueDraw    Value = 0
	ValueInf     Value = 50000
	ValueNA      Value = -ValueInf - 1
	ValueMate    Value = 49000
	// ValueMateThreshold: any value with a magnitude at or above this is
	// considered a forced mate rather than a material/positional score.
	ValueMateThreshold Value = ValueMate - 128
)

// MatedIn returns the score for being checkmated in the given number of
// plies from the root: shorter mates are scored as more negative (worse).
func MatedIn(ply int) Value {
	return -ValueMate + Value(ply)
}

// MateIn returns the score for delivering checkmate in the given number
// of plies from the root.
func MateIn(ply int) Value {
	return ValueMate - Value(ply)
}

// IsMateScore reports whether v represents a forced mate (for either
// side).
func (v Value) IsMateScore() bool {
	return v >= ValueMateThreshold || v <= -ValueMateThreshold
}

func (v Value) String() string {
	if v >= ValueMateThreshold {
		return fmt.Sprintf("mate %d", (ValueMate-v+1)/2)
	}
	if v <= -ValueMateThreshold {
		return fmt.Sprintf("mate -%d", (ValueMate+v+1)/2)
	}
	return fmt.Sprintf("cp %d", v)
}
