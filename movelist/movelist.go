/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package movelist is a stack-allocated bounded move container: a fixed
// [256]Move backing array plus a length, created fresh per search node and
// discarded on node exit, per §3's "MoveList is stack-bounded."
package movelist

import (
	"sync"

	. "github.com/frankkopp/forkedge/types"
)

// MaxMoves is the move list's fixed capacity; no chess position has more
// than this many legal moves.
const MaxMoves = 256

// MoveList is a fixed-capacity, insertion-ordered list of moves.
type MoveList struct {
	moves [MaxMoves]Move
	len   int
}

// New returns an empty MoveList.
func New() *MoveList {
	return &MoveList{}
}

// Add appends m, preserving generation order. Panics if the list is full,
// which never happens for a legal chess position.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.len] = m
	ml.len++
}

// Len returns the number of moves currently held.
func (ml *MoveList) Len() int { return ml.len }

// At returns the move at index i.
func (ml *MoveList) At(i int) Move { return ml.moves[i] }

// Set overwrites the move at index i.
func (ml *MoveList) Set(i int, m Move) { ml.moves[i] = m }

// Clear empties the list without releasing its backing array.
func (ml *MoveList) Clear() { ml.len = 0 }

// Slice returns the occupied portion of the backing array as a plain
// slice. The slice aliases the MoveList's storage; it is invalidated by
// the next Add or Clear.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.len]
}

// ForEach calls f with the index of every move in generation order.
func (ml *MoveList) ForEach(f func(index int)) {
	for i := 0; i < ml.len; i++ {
		f(i)
	}
}

// ForEachParallel calls f once per move from its own goroutine and waits
// for all to finish. f is responsible for synchronizing any state it
// shares across calls.
func (ml *MoveList) ForEachParallel(f func(index int)) {
	var wg sync.WaitGroup
	wg.Add(ml.len)
	for i := 0; i < ml.len; i++ {
		go func(idx int) {
			defer wg.Done()
			f(idx)
		}(i)
	}
	wg.Wait()
}
