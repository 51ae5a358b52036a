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

// Package types contains the board representation primitives shared by every
// other package: squares, colors, pieces, bitboards, moves, and the
// precomputed leaper and sliding attack tables. Many of these would be ideal
// enum candidates but Go has none, so plain typed constants stand in.
package types

import (
	"github.com/frankkopp/forkedge/logging"
)

var log = logging.GetLog("types")

var initialized = false

// init pre computes every table this package exposes: leaper attacks, the
// flat magic sliding table, and square distance/index helpers. Guarded by
// initialized so re-importing the package never repeats the work.
func init() {
	if initialized {
		return
	}
	log.Debug("initializing board tables")
	initBb()
	initLeaperAttacks()
	initMagic()
	initRays()
	initialized = true
}

const (
	// SqLength is the number of squares on a board.
	SqLength int = 64

	// MaxDepth is the maximum search depth / PV length supported.
	MaxDepth = 128
)
