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

// Package search implements iterative-deepening alpha-beta search with
// quiescence, PVS and late-move reductions, move ordering by PV move,
// captures (MVV/LVA), killer moves, and history heuristic. No
// transposition table, no multi-threaded search, no time management -
// a Zobrist key and a stop-flag poll exist as hooks but stay inert.
package search

import (
	"sort"

	"github.com/chesskernel/chesskernel/internal/evaluator"
	"github.com/chesskernel/chesskernel/internal/position"
	. "github.com/chesskernel/chesskernel/internal/types"
)

// MaxPly bounds recursion depth and the size of every search-scoped
// table.
const MaxPly = 64

// fullDepthMoves and reductionLimit are the late-move-reduction
// thresholds: a move is searched at reduced depth once at least this
// many moves have already been tried at this depth, at depths at or
// above reductionLimit.
const (
	fullDepthMoves = 4
	reductionLimit = 3
)

// Search holds every table a single run of iterative deepening needs.
// A Search is not safe for concurrent use - board state and search
// tables are scoped to exactly one Search instance per call.
type Search struct {
	eval evaluator.Evaluator

	pos *position.Position

	ply   int
	nodes uint64

	followPV bool
	scorePV  bool

	killers [2][MaxPly]Move
	history [PieceLength][64]int32

	pvLength [MaxPly]int
	pv       [MaxPly][MaxPly]Move

	limits Limits
}

// NewSearch returns a Search that scores leaves with eval.
func NewSearch(eval evaluator.Evaluator) *Search {
	return &Search{eval: eval}
}

// Run performs iterative deepening from depth 1 to limits.TargetDepth
// against pos, returning the final iteration's best move and PV plus
// every intermediate iteration's line. pos is left unchanged: every
// DoMove the search performs is matched by an UndoMove on every return
// path.
func (s *Search) Run(pos *position.Position, limits Limits) Result {
	s.pos = pos
	s.limits = limits
	s.ply = 0
	s.nodes = 0
	s.followPV = false
	s.scorePV = false
	s.killers = [2][MaxPly]Move{}
	s.history = [PieceLength][64]int32{}
	s.pvLength = [MaxPly]int{}
	s.pv = [MaxPly][MaxPly]Move{}

	var result Result
	for depth := 1; depth <= limits.TargetDepth; depth++ {
		s.followPV = true
		score := s.negamax(-ValueInf, ValueInf, depth)

		pv := make([]Move, s.pvLength[0])
		copy(pv, s.pv[0][:s.pvLength[0]])

		best := MoveNone
		if len(pv) > 0 {
			best = pv[0]
		}

		result = Result{
			BestMove:   best,
			Score:      score,
			Depth:      depth,
			Nodes:      s.nodes,
			PV:         pv,
			Iterations: append(result.Iterations, IterationInfo{Depth: depth, Score: score, Nodes: s.nodes, PV: pv}),
		}

		if limits.stopRequested() {
			break
		}
	}
	return result
}

// scoreMove orders moves: the PV move at this ply scores highest (and
// is consumed - scorePV only fires once per node), then captures by
// MVV/LVA, then the two killer moves, then quiet moves by history
// count.
func (s *Search) scoreMove(m Move) int32 {
	if s.scorePV {
		if s.pv[0][s.ply] == m {
			s.scorePV = false
			return 20000
		}
	}

	if m.IsCapture() {
		attacker := m.PieceType()
		victimSq := m.To()
		if m.IsEnPassant() {
			return int32(10000 + mvvLva(attacker, PtPawn))
		}
		victim := s.pos.PieceAt(victimSq).TypeOf()
		return int32(10000 + mvvLva(attacker, victim))
	}

	if s.killers[0][s.ply] == m {
		return 9000
	}
	if s.killers[1][s.ply] == m {
		return 8000
	}

	piece := MakePiece(s.pos.SideToMove(), m.PieceType())
	return s.history[piece][m.To()]
}

// mvvLva scores a capture by most-valuable-victim/least-valuable-attacker:
// attacker rank weighs far more than victim rank, so any capture
// outranks any non-capture scored below it while cheap attackers taking
// big victims sort first among captures.
func mvvLva(attacker, victim PieceType) int {
	return 100*(6-int(attacker)) + 5*int(victim) + 5
}

// orderMoves scores and sorts moves in place, descending by score.
func (s *Search) orderMoves(moves []Move) {
	if s.followPV {
		s.enablePVScoring(moves)
	}
	scores := make([]int32, len(moves))
	for i, m := range moves {
		scores[i] = s.scoreMove(m)
	}
	idx := make([]int, len(moves))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return scores[idx[i]] > scores[idx[j]] })
	sorted := make([]Move, len(moves))
	for i, id := range idx {
		sorted[i] = moves[id]
	}
	copy(moves, sorted)
}

// enablePVScoring checks whether the previous iteration's PV move at
// this ply is present in moves: if so it is marked for top scoring and
// the search keeps following the PV into the next ply; otherwise the
// PV line has diverged and following stops here.
func (s *Search) enablePVScoring(moves []Move) {
	s.followPV = false
	for _, m := range moves {
		if s.pv[0][s.ply] == m {
			s.scorePV = true
			s.followPV = true
			return
		}
	}
}
