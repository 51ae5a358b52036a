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

// Package search implements fail-soft negamax alpha-beta search over a
// Position, sequentially and in three parallel variants (naive, PVS, YBWC)
// that share a fixed-size process-wide worker pool. Every variant returns
// the same score for the same (position, depth); only the principal
// variation and wall-clock behavior differ.
package search

import (
	"errors"

	"github.com/frankkopp/forkedge/evaluator"
	"github.com/frankkopp/forkedge/logging"
	"github.com/frankkopp/forkedge/position"
	. "github.com/frankkopp/forkedge/types"
)

var log = logging.GetLog("search")

// ErrInvalidDepth is returned when a caller asks for a non-positive depth.
var ErrInvalidDepth = errors.New("invalid depth")

// eval is the leaf evaluator every search variant calls; a package-level
// instance is enough since Evaluator is stateless beyond its logger.
var eval = evaluator.NewEvaluator()

// copyAndMove returns a deep copy of pos with m already applied, isolated
// from pos and from any sibling's own copy. Position holds no pointers or
// slices, so *pos is a real, independent deep copy, and the child never
// needs to unmake m: it is a throwaway value owned by one task.
func copyAndMove(pos *position.Position, m Move) *position.Position {
	cp := *pos
	cp.MakeMove(m)
	return &cp
}
