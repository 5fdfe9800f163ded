package engine

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore/chess"
	"github.com/lgbarn/chesscore/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
func (p *Position) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		rec := p.make(m)
		nodes += p.Perft(depth - 1)
		p.unmake(rec)
	}
	return nodes
}

// Divide returns the perft count below each legal root move.
func (p *Position) Divide(depth int) map[chess.Move]uint64 {
	div := make(map[chess.Move]uint64)
	if depth <= 0 {
		return div
	}
	for _, m := range p.LegalMoves() {
		rec := p.make(m)
		div[m] = p.Perft(depth - 1)
		p.unmake(rec)
	}
	return div
}

// ParallelDivide is Divide with the root moves spread over a worker pool.
// Every task works on its own clone, so p is only read.
func ParallelDivide(p *Position, depth, workers int) map[chess.Move]uint64 {
	div := make(map[chess.Move]uint64)
	if depth <= 0 {
		return div
	}

	moves := p.LegalMoves()
	if len(moves) == 0 {
		return div
	}

	items := make([]worker.WorkItem, len(moves))
	clones := make([]*Position, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Move: m, Depth: depth - 1, Index: i}
		clones[i] = p.Clone()
	}

	count := func(item worker.WorkItem) worker.ProcessResult {
		child := clones[item.Index]
		child.Apply(item.Move)
		return worker.ProcessResult{Move: item.Move, Index: item.Index, Nodes: child.Perft(item.Depth)}
	}

	pool := worker.NewPoolWithOptions(count, worker.WithWorkers(workers), worker.WithBufferSize(len(items)))
	for _, r := range pool.Run(items) {
		div[r.Move] = r.Nodes
	}
	return div
}

// SumNodes adds up a divide result.
func SumNodes(div map[chess.Move]uint64) uint64 {
	var total uint64
	for _, n := range div {
		total += n
	}
	return total
}

// SortedMoves returns the moves of a divide result ordered by their long
// algebraic text.
func SortedMoves(div map[chess.Move]uint64) []chess.Move {
	byText := make(map[string]chess.Move, len(div))
	for _, m := range maps.Keys(div) {
		byText[m.String()] = m
	}
	names := maps.Keys(byText)
	slices.Sort(names)

	moves := make([]chess.Move, len(names))
	for i, name := range names {
		moves[i] = byText[name]
	}
	return moves
}
