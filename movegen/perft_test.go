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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/forkedge/position"
)

// startPerftResults are the standard perft anchors for the initial
// position, indexed by depth.
var startPerftResults = [5]uint64{1, 20, 400, 8_902, 197_281}

func TestPerftStartPosition(t *testing.T) {
	for depth := 1; depth < len(startPerftResults); depth++ {
		p := NewPerft()
		assert.NoError(t, p.Run(position.StartFen, depth))
		assert.Equal(t, startPerftResults[depth], p.Nodes, "depth %d", depth)
	}
}

func TestPerftStartPositionDepth3Detail(t *testing.T) {
	p := NewPerft()
	assert.NoError(t, p.Run(position.StartFen, 3))
	assert.Equal(t, uint64(8_902), p.Nodes)
	assert.Equal(t, uint64(34), p.CaptureCounter)
	assert.Equal(t, uint64(0), p.EnpassantCounter)
	assert.Equal(t, uint64(12), p.CheckCounter)
	assert.Equal(t, uint64(0), p.CheckMateCounter)
}

func TestPerftKiwipete(t *testing.T) {
	// The "Kiwipete" position, well known for exercising castling, en
	// passant, promotion, and pins all at once.
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	results := map[int]uint64{1: 48, 2: 2_039}
	for depth, want := range results {
		p := NewPerft()
		assert.NoError(t, p.Run(fen, depth))
		assert.Equal(t, want, p.Nodes, "depth %d", depth)
	}
}

func TestPerftPosition3(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	results := map[int]uint64{1: 14, 2: 191, 3: 2_812}
	for depth, want := range results {
		p := NewPerft()
		assert.NoError(t, p.Run(fen, depth))
		assert.Equal(t, want, p.Nodes, "depth %d", depth)
	}
}
