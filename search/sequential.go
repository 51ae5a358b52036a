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
	"github.com/frankkopp/forkedge/movegen"
	"github.com/frankkopp/forkedge/movelist"
	"github.com/frankkopp/forkedge/position"
	. "github.com/frankkopp/forkedge/types"
)

// Sequential runs a plain fail-soft negamax alpha-beta search to depth from
// pos's current position and returns the principal variation and its score
// from the side to move's perspective. It never parallelizes; it is also
// the base case every parallel variant falls back to at or below
// config.Settings.Search.SerialDepth.
func Sequential(pos *position.Position, depth int) (movelist.PV, Value, error) {
	if depth <= 0 {
		return movelist.NewPV(), ValueZero, ErrInvalidDepth
	}
	pv, score := negamax(pos, -ValueInf, ValueInf, depth, 0)
	return pv, score, nil
}

// negamax is the shared recursive core every parallel variant's serial
// fallback calls directly, so a cutoff found at or below the serial depth
// behaves identically regardless of variant.
func negamax(pos *position.Position, alpha, beta Value, depth, ply int) (movelist.PV, Value) {
	if depth == 0 {
		return movelist.NewPV(), eval.Evaluate(pos)
	}

	ml := movegen.GenerateLegalMoves(pos)
	if ml.Len() == 0 {
		if pos.InCheck(pos.SideToMove()) {
			return movelist.NewPV(), MateIn(ply)
		}
		return movelist.NewPV(), ValueDraw
	}

	best := -ValueInf
	bestPV := movelist.NewPV()
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		undo := pos.MakeMove(m)
		childPV, childScore := negamax(pos, -beta, -alpha, depth-1, ply+1)
		pos.UnmakeMove(m, undo)

		v := -childScore
		if v > best {
			best = v
			bestPV = movelist.Prepend(m, childPV)
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return bestPV, best
}
