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

func TestSetClearTest(t *testing.T) {
	b := BbZero
	b = Set(b, SqE4)
	assert.True(t, Test(b, SqE4))
	assert.Equal(t, 1, PopCount(b))
	b = Clear(b, SqE4)
	assert.False(t, Test(b, SqE4))
	assert.Equal(t, 0, PopCount(b))
}

func TestPopCount(t *testing.T) {
	tests := []struct {
		value    Bitboard
		expected int
	}{
		{BbZero, 0},
		{BbAll, 64},
		{BbOne, 1},
		{Rank1Bb, 8},
		{FileABb, 8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, PopCount(tt.value))
	}
}

func TestLsbPopLsb(t *testing.T) {
	b := SqC3.ToSquare() | SqG7.ToSquare()
	assert.Equal(t, SqC3, LsbIndex(b))
	sq, rest := PopLsb(b)
	assert.Equal(t, SqC3, sq)
	assert.Equal(t, SqG7, LsbIndex(rest))
	_, empty := PopLsb(rest)
	assert.Equal(t, SqNone, LsbIndex(empty))
}

func TestShiftBitboardNoWrap(t *testing.T) {
	// a rook's-file pawn must not reappear on the opposite edge when shifted.
	b := SqA4.ToSquare()
	assert.Equal(t, BbZero, ShiftBitboard(b, West))
	b = SqH4.ToSquare()
	assert.Equal(t, BbZero, ShiftBitboard(b, East))
	b = SqA4.ToSquare()
	assert.False(t, Test(ShiftBitboard(b, Northeast), SqH5))
}

func TestShiftBitboardDirections(t *testing.T) {
	b := SqE4.ToSquare()
	assert.Equal(t, SqE5.ToSquare(), ShiftBitboard(b, North))
	assert.Equal(t, SqE3.ToSquare(), ShiftBitboard(b, South))
	assert.Equal(t, SqF4.ToSquare(), ShiftBitboard(b, East))
	assert.Equal(t, SqD4.ToSquare(), ShiftBitboard(b, West))
}

func TestSquareDistance(t *testing.T) {
	assert.Equal(t, 0, SquareDistance(SqE4, SqE4))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 1, SquareDistance(SqE4, SqE5))
}
