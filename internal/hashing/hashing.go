// Package hashing provides position signatures and repetition counting.
package hashing

import "github.com/lgbarn/chesscore/chess"

// Signature identifies a position for repetition purposes. It covers the
// pieces, side to move, castling rights and en-passant square, but not the
// halfmove clock or fullmove number. Signatures are comparable.
type Signature struct {
	Board        chess.Board
	Turn         chess.Colour
	Castling     chess.CastlingRights
	EnPassant    chess.Square
	HasEnPassant bool
}

// entry is one distinct signature and the number of times it is recorded.
type entry struct {
	sig   Signature
	count int
}

// RepetitionTable counts how often each position has been reached.
type RepetitionTable struct {
	// hashTable buckets signatures by Zobrist hash; colliding signatures
	// are told apart by full comparison.
	hashTable map[uint64][]entry
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{
		hashTable: make(map[uint64][]entry),
	}
}

// Add records one occurrence of sig and returns its new count.
func (t *RepetitionTable) Add(sig Signature) int {
	hash := Zobrist(&sig)

	bucket := t.hashTable[hash]
	for i := range bucket {
		if bucket[i].sig == sig {
			bucket[i].count++
			return bucket[i].count
		}
	}
	t.hashTable[hash] = append(bucket, entry{sig: sig, count: 1})
	return 1
}

// Remove forgets one occurrence of sig. Removing an unrecorded signature is
// a no-op.
func (t *RepetitionTable) Remove(sig Signature) {
	hash := Zobrist(&sig)
	bucket := t.hashTable[hash]
	for i := range bucket {
		if bucket[i].sig != sig {
			continue
		}
		bucket[i].count--
		if bucket[i].count == 0 {
			bucket = append(bucket[:i], bucket[i+1:]...)
			if len(bucket) == 0 {
				delete(t.hashTable, hash)
			} else {
				t.hashTable[hash] = bucket
			}
		}
		return
	}
}

// Count returns how many times sig has been recorded.
func (t *RepetitionTable) Count(sig Signature) int {
	for _, e := range t.hashTable[Zobrist(&sig)] {
		if e.sig == sig {
			return e.count
		}
	}
	return 0
}

// Clone returns an independent copy of the table.
func (t *RepetitionTable) Clone() *RepetitionTable {
	c := &RepetitionTable{
		hashTable: make(map[uint64][]entry, len(t.hashTable)),
	}
	for hash, bucket := range t.hashTable {
		c.hashTable[hash] = append([]entry(nil), bucket...)
	}
	return c
}
