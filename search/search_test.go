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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/forkedge/position"
)

// fenKiwipete is the standard middlegame torture-test position used across
// the example pack's perft and search suites: open king, both sides with
// castling rights available, promotions and en passant all reachable.
const fenKiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

const fenEndgame = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

// TestSearchConsistency checks the property every variant must uphold:
// Sequential, YBWC, PVS, and Parallel all return the same score for a given
// (position, depth), regardless of how the tree is split across workers.
// depth 5 exceeds config.Settings.Search.SerialDepth (3) by two, so every
// variant actually dispatches node tasks onto the shared pool here rather
// than falling straight through to the sequential fallback.
func TestSearchConsistency(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
	}{
		{"startpos depth 1", position.StartFen, 1},
		{"startpos depth 3", position.StartFen, 3},
		{"startpos depth 5", position.StartFen, 5},
		{"kiwipete depth 2", fenKiwipete, 2},
		{"kiwipete depth 4", fenKiwipete, 4},
		{"kiwipete depth 5", fenKiwipete, 5},
		{"endgame depth 5", fenEndgame, 5},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			pos, err := position.FromFEN(tc.fen)
			assert.NoError(t, err)
			_, seqScore, err := Sequential(pos, tc.depth)
			assert.NoError(t, err)

			pos, err = position.FromFEN(tc.fen)
			assert.NoError(t, err)
			_, ybwcScore, err := YBWC(pos, tc.depth)
			assert.NoError(t, err)
			assert.Equal(t, seqScore, ybwcScore, "YBWC diverged from Sequential")

			pos, err = position.FromFEN(tc.fen)
			assert.NoError(t, err)
			_, pvsScore, err := PVS(pos, tc.depth)
			assert.NoError(t, err)
			assert.Equal(t, seqScore, pvsScore, "PVS diverged from Sequential")

			pos, err = position.FromFEN(tc.fen)
			assert.NoError(t, err)
			_, parScore, err := Parallel(pos, tc.depth)
			assert.NoError(t, err)
			assert.Equal(t, seqScore, parScore, "Parallel diverged from Sequential")
		})
	}
}

// TestSearchInvalidDepth checks every variant rejects a non-positive depth
// the same way, matching §6's external interface contract.
func TestSearchInvalidDepth(t *testing.T) {
	pos, err := position.FromFEN(position.StartFen)
	assert.NoError(t, err)

	_, _, err = Sequential(pos, 0)
	assert.ErrorIs(t, err, ErrInvalidDepth)
	_, _, err = YBWC(pos, 0)
	assert.ErrorIs(t, err, ErrInvalidDepth)
	_, _, err = PVS(pos, -1)
	assert.ErrorIs(t, err, ErrInvalidDepth)
	_, _, err = Parallel(pos, -1)
	assert.ErrorIs(t, err, ErrInvalidDepth)
}
