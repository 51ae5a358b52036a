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

package search

import (
	"sync"
	"sync/atomic"

	"github.com/frankkopp/forkedge/movelist"
	. "github.com/frankkopp/forkedge/types"
)

// node is the small shared coordination record a parallel node's dispatched
// children all hold a pointer to: alpha, best, bestPV are guarded by mu;
// cancelled is read and written without a lock from any goroutine. A node
// is created fresh per search call and discarded when that call returns.
type node struct {
	mu        sync.Mutex
	alpha     Value
	best      Value
	bestMove  Move
	bestPV    movelist.PV
	cancelled int32
}

// newNode returns a node with best seeded at -ValueInf and alpha at the
// window's lower bound, so the first child recorded always improves it.
func newNode(alpha Value) *node {
	return &node{alpha: alpha, best: -ValueInf, bestMove: MoveNone, bestPV: movelist.NewPV()}
}

// Alpha returns the current alpha under lock, for a sibling about to open
// its own window.
func (n *node) Alpha() Value {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.alpha
}

// Cancelled reports whether a sibling has already found a beta cutoff.
func (n *node) Cancelled() bool {
	return atomic.LoadInt32(&n.cancelled) != 0
}

// Cancel marks the node so outstanding siblings stop at their next
// checkpoint; it is idempotent and safe to call more than once.
func (n *node) Cancel() {
	atomic.StoreInt32(&n.cancelled, 1)
}

// Update folds one child's result into the node: if v improves best, best
// and bestPV are replaced and alpha is raised; if the result now reaches or
// exceeds beta, the node is cancelled so the caller can stop dispatching
// further siblings. Returns the node's best/bestPV/cancelled state after
// the update, a snapshot the caller may act on without holding the lock
// again.
func (n *node) Update(beta Value, v Value, m Move, childPV movelist.PV) (best Value, bestPV movelist.PV, cutoff bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if v > n.best {
		n.best = v
		n.bestMove = m
		n.bestPV = movelist.Prepend(m, childPV)
	}
	if n.best > n.alpha {
		n.alpha = n.best
	}
	if n.alpha >= beta {
		n.Cancel()
	}
	return n.best, n.bestPV, n.Cancelled()
}

// Result returns the node's final best score and PV under lock.
func (n *node) Result() (Value, movelist.PV) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.best, n.bestPV
}
