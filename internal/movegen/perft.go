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

package movegen

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/chesskernel/chesskernel/internal/position"
)

// Perft walks the full game tree to depth and returns the number of leaf
// nodes, a standard correctness check for move generators: the known
// leaf counts for the standard starting position and several tactical
// test positions are fixed reference values.
func Perft(pos *position.Position, depth int) uint64 {
	return perftRecurse(pos, depth)
}

func perftRecurse(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range GenerateAll(pos) {
		if !pos.DoMove(m, position.MakeAll) {
			continue
		}
		nodes += perftRecurse(pos, depth-1)
		pos.UndoMove()
	}
	return nodes
}

// DivideResult pairs a root move with the node count below it.
type DivideResult struct {
	MoveUci string
	Nodes   uint64
}

// PerftDivide is Perft but reports the node count contributed by each
// legal root move separately, the standard debugging aid for isolating a
// move-generation bug to a single branch.
func PerftDivide(pos *position.Position, depth int) ([]DivideResult, uint64) {
	var results []DivideResult
	var total uint64
	for _, m := range GenerateAll(pos) {
		if !pos.DoMove(m, position.MakeAll) {
			continue
		}
		n := perftRecurse(pos, depth-1)
		pos.UndoMove()
		results = append(results, DivideResult{MoveUci: m.String(), Nodes: n})
		total += n
	}
	return results, total
}

// PerftDivideParallel is PerftDivide with each root move's subtree walked
// concurrently, one independent position.Position copy per move so no
// state is shared across goroutines. Search itself stays
// single-threaded; this diagnostic tool is the one place concurrency
// pays off, since each root subtree is fully independent.
func PerftDivideParallel(ctx context.Context, pos *position.Position, depth int) ([]DivideResult, uint64, error) {
	moves := GenerateAll(pos)
	// legal[i] stays MoveUci == "" for a pseudo-legal move that turned
	// out illegal; filtered out below rather than reported as a 0-node
	// branch, since a 0-node branch and "not actually a legal move" mean
	// different things to whoever is reading a divide report.
	legal := make([]DivideResult, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			branch, err := position.NewPositionFen(pos.Fen())
			if err != nil {
				return err
			}
			if !branch.DoMove(m, position.MakeAll) {
				return nil
			}
			n := perftRecurse(branch, depth-1)
			legal[i] = DivideResult{MoveUci: m.String(), Nodes: n}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	var total uint64
	results := make([]DivideResult, 0, len(moves))
	for _, r := range legal {
		if r.MoveUci == "" {
			continue
		}
		results = append(results, r)
		total += r.Nodes
	}
	return results, total, nil
}
