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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// exhaustiveSquares are checked against every subset of their relevant
// occupancy; the remaining squares are checked only against the empty board
// (TestSlidingAttacksAllSquaresEmptyBoard), to bound test time.
var exhaustiveSquares = []Square{SqA1, SqH1, SqA8, SqH8, SqD4, SqE5}

func TestBishopAttacksMatchNaiveExhaustive(t *testing.T) {
	for _, sq := range exhaustiveSquares {
		mask := relevantMask(bishopDirs, sq)
		occ := Bitboard(0)
		for {
			want := slidingAttack(bishopDirs, sq, occ)
			got := BishopAttacks(sq, occ)
			assert.Equal(t, want, got, "bishop sq=%s occ=%d", sq, occ)
			occ = (occ - mask) & mask
			if occ == 0 {
				break
			}
		}
	}
}

func TestRookAttacksMatchNaiveExhaustive(t *testing.T) {
	for _, sq := range exhaustiveSquares {
		mask := relevantMask(rookDirs, sq)
		occ := Bitboard(0)
		for {
			want := slidingAttack(rookDirs, sq, occ)
			got := RookAttacks(sq, occ)
			assert.Equal(t, want, got, "rook sq=%s occ=%d", sq, occ)
			occ = (occ - mask) & mask
			if occ == 0 {
				break
			}
		}
	}
}

func TestSlidingAttacksAllSquaresEmptyBoard(t *testing.T) {
	for sq := SqA1; sq <= SqH8; sq++ {
		assert.Equal(t, slidingAttack(bishopDirs, sq, BbZero), BishopAttacks(sq, BbZero), "bishop %s", sq)
		assert.Equal(t, slidingAttack(rookDirs, sq, BbZero), RookAttacks(sq, BbZero), "rook %s", sq)
	}
}

func TestQueenAttacksIsUnion(t *testing.T) {
	occ := SqD2.ToSquare() | SqB4.ToSquare() | SqG4.ToSquare()
	assert.Equal(t, BishopAttacks(SqD4, occ)|RookAttacks(SqD4, occ), QueenAttacks(SqD4, occ))
}
