// Package worker spreads subtree counts for a list of root moves over a
// fixed number of goroutines.
package worker

import (
	"sync"

	"github.com/lgbarn/chesscore/chess"
)

// WorkItem is one root move whose subtree is to be counted.
type WorkItem struct {
	Move  chess.Move
	Depth int // Remaining depth below Move
	Index int // Position of Move in the root move list
}

// ProcessResult is the outcome of a WorkItem.
type ProcessResult struct {
	Move  chess.Move
	Index int
	Nodes uint64
}

// ProcessFunc counts the subtree of a single item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over batches of items.
type Pool struct {
	numWorkers  int
	bufferSize  int
	processFunc ProcessFunc
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPoolWithOptions creates a pool for processFunc.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes every item and returns the results ordered by Index. Items
// must carry distinct indices in [0, len(items)). Run may be called again
// once it has returned.
func (p *Pool) Run(items []WorkItem) []ProcessResult {
	work := make(chan WorkItem, p.bufferSize)
	results := make(chan ProcessResult, p.bufferSize)

	var wg sync.WaitGroup
	for i := 0; i < p.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range work {
				results <- p.processFunc(item)
			}
		}()
	}

	go func() {
		for _, item := range items {
			work <- item
		}
		close(work)
		wg.Wait()
		close(results)
	}()

	ordered := make([]ProcessResult, len(items))
	for r := range results {
		ordered[r.Index] = r
	}
	return ordered
}
