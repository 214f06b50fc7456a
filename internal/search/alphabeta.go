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

package search

import (
	"github.com/chesskernel/chesskernel/internal/movegen"
	"github.com/chesskernel/chesskernel/internal/position"
	. "github.com/chesskernel/chesskernel/internal/types"
)

// negamax is the fail-hard alpha-beta recursion: check extension,
// PV-seeded move ordering, PVS null-window re-search, late-move
// reduction at the (moves_searched>=4, depth>=3, quiet, not in check)
// threshold, killer shift and history increment on the matching
// cutoff/improvement paths, triangular PV copy.
func (s *Search) negamax(alpha, beta Value, depth int) Value {
	s.pvLength[s.ply] = s.ply

	if depth == 0 {
		return s.quiescence(alpha, beta)
	}
	if s.ply > MaxPly-1 {
		return s.eval.Evaluate(s.pos)
	}
	s.nodes++

	us := s.pos.SideToMove()
	inCheck := s.pos.InCheck()
	if inCheck {
		depth++
	}

	moves := movegen.GenerateAll(s.pos)
	s.orderMoves(moves)

	foundPV := false
	legalMoves := 0

	for _, m := range moves {
		s.ply++
		if !s.pos.DoMove(m, position.MakeAll) {
			s.ply--
			continue
		}
		legalMoves++

		var score Value
		switch {
		case foundPV:
			score = -s.negamax(-alpha-1, -alpha, depth-1)
			if score > alpha && score < beta {
				score = -s.negamax(-beta, -alpha, depth-1)
			}
		case legalMoves == 1:
			score = -s.negamax(-beta, -alpha, depth-1)
		default:
			if legalMoves-1 >= fullDepthMoves && depth >= reductionLimit &&
				!inCheck && !m.IsCapture() && !m.IsPromotion() {
				score = -s.negamax(-alpha-1, -alpha, depth-2)
			} else {
				// force the full-depth branch below to run
				score = alpha + 1
			}
			if score > alpha {
				score = -s.negamax(-alpha-1, -alpha, depth-1)
				if score > alpha && score < beta {
					score = -s.negamax(-beta, -alpha, depth-1)
				}
			}
		}

		s.pos.UndoMove()
		s.ply--

		if score >= beta {
			if !m.IsCapture() {
				s.killers[1][s.ply] = s.killers[0][s.ply]
				s.killers[0][s.ply] = m
			}
			return beta
		}
		if score > alpha {
			if !m.IsCapture() {
				piece := MakePiece(us, m.PieceType())
				s.history[piece][m.To()] += int32(depth)
			}
			alpha = score
			foundPV = true

			s.pv[s.ply][s.ply] = m
			for nextPly := s.ply + 1; nextPly < s.pvLength[s.ply+1]; nextPly++ {
				s.pv[s.ply][nextPly] = s.pv[s.ply+1][nextPly]
			}
			s.pvLength[s.ply] = s.pvLength[s.ply+1]
		}
	}

	if legalMoves == 0 {
		if inCheck {
			return MatedIn(s.ply)
		}
		return ValueDraw
	}
	return alpha
}

// quiescence extends the search along capture chains until the
// position is quiet: stand-pat cutoff/improvement, then recurse only
// into moves position.Position.DoMove actually
// accepts under MakeCapturesOnly - quiet moves in the generated list
// are rejected by DoMove itself (step 1 of its 14-step sequence), so
// this function does not need to filter them out before trying.
func (s *Search) quiescence(alpha, beta Value) Value {
	s.nodes++

	if s.ply > MaxPly-1 {
		return s.eval.Evaluate(s.pos)
	}

	standPat := s.eval.Evaluate(s.pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := movegen.GenerateAll(s.pos)
	s.orderMoves(moves)

	for _, m := range moves {
		s.ply++
		if !s.pos.DoMove(m, position.MakeCapturesOnly) {
			s.ply--
			continue
		}

		score := -s.quiescence(-beta, -alpha)

		s.pos.UndoMove()
		s.ply--

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
