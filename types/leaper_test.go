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

// naiveKnightAttacks recomputes knight attacks directly from rank/file deltas,
// independent of the shift-based table builder, as the cross-check §4.2 asks for.
func naiveKnightAttacks(sq Square) Bitboard {
	var b Bitboard
	deltas := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	f, r := int(sq.FileOf()), int(sq.RankOf())
	for _, d := range deltas {
		nf, nr := f+d[0], r+d[1]
		if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
			b = Set(b, SquareOf(File(nf), Rank(nr)))
		}
	}
	return b
}

func naiveKingAttacks(sq Square) Bitboard {
	var b Bitboard
	f, r := int(sq.FileOf()), int(sq.RankOf())
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			nf, nr := f+df, r+dr
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				b = Set(b, SquareOf(File(nf), Rank(nr)))
			}
		}
	}
	return b
}

func TestKnightAttacksMatchNaive(t *testing.T) {
	for sq := SqA1; sq <= SqH8; sq++ {
		assert.Equal(t, naiveKnightAttacks(sq), KnightAttacks[sq], "square %s", sq)
	}
}

func TestKingAttacksMatchNaive(t *testing.T) {
	for sq := SqA1; sq <= SqH8; sq++ {
		assert.Equal(t, naiveKingAttacks(sq), KingAttacks[sq], "square %s", sq)
	}
}

func TestPawnAttacksPromotionRankEmpty(t *testing.T) {
	for f := FileA; f <= FileH; f++ {
		sq := SquareOf(f, Rank8)
		assert.Equal(t, BbZero, PawnAttacks[White][sq])
		sq = SquareOf(f, Rank1)
		assert.Equal(t, BbZero, PawnAttacks[Black][sq])
	}
}

func TestPawnAttacksCenter(t *testing.T) {
	assert.Equal(t, SqD5.ToSquare()|SqF5.ToSquare(), PawnAttacks[White][SqE4])
	assert.Equal(t, SqD3.ToSquare()|SqF3.ToSquare(), PawnAttacks[Black][SqE4])
}
