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
	"github.com/frankkopp/forkedge/config"
	"github.com/frankkopp/forkedge/movegen"
	"github.com/frankkopp/forkedge/movelist"
	"github.com/frankkopp/forkedge/position"
	. "github.com/frankkopp/forkedge/types"
)

// Parallel runs the naive parallel alpha-beta variant: every child of a node
// above the serial-depth cutoff is dispatched at once with the node's
// original window, with no child benefiting from a sibling's cutoff. It
// exists mainly as the baseline YBWC and PVS are measured against.
func Parallel(pos *position.Position, depth int) (movelist.PV, Value, error) {
	if depth <= 0 {
		return movelist.NewPV(), ValueZero, ErrInvalidDepth
	}
	acquireRun()
	defer releaseRun()
	pv, score := parallelSearch(pos, -ValueInf, ValueInf, depth, 0)
	return pv, score, nil
}

func parallelSearch(pos *position.Position, alpha, beta Value, depth, ply int) (movelist.PV, Value) {
	if depth <= config.Settings.Search.SerialDepth {
		return negamax(pos, alpha, beta, depth, ply)
	}

	ml := movegen.GenerateLegalMoves(pos)
	if ml.Len() == 0 {
		if pos.InCheck(pos.SideToMove()) {
			return movelist.NewPV(), MateIn(ply)
		}
		return movelist.NewPV(), ValueDraw
	}

	n := newNode(alpha)
	p := currentPool()
	j := newJoinGroup(p, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		child := copyAndMove(pos, m)
		p.submit(func() {
			defer j.dec()
			// Every child searches the node's original window: no sibling
			// result is visible to another, by design of this variant.
			childPV, childScore := parallelSearch(child, -beta, -alpha, depth-1, ply+1)
			n.Update(beta, -childScore, m, childPV)
		})
	}
	p.await(j)

	best, bestPV := n.Result()
	return bestPV, best
}
