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
	"fmt"
	"math/bits"
	"strings"

	"github.com/frankkopp/forkedge/util"
)

// Bitboard is a 64 bit set, one bit per square, little endian rank-file
// mapped (bit f + 8*r).
type Bitboard uint64

// various constant bitboards for convenience
//noinspection ALL
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = 1

	FileABb Bitboard = 0x0101010101010101
	FileBBb Bitboard = FileABb << 1
	FileCBb Bitboard = FileABb << 2
	FileDBb Bitboard = FileABb << 3
	FileEBb Bitboard = FileABb << 4
	FileFBb Bitboard = FileABb << 5
	FileGBb Bitboard = FileABb << 6
	FileHBb Bitboard = FileABb << 7

	Rank1Bb Bitboard = 0xFF
	Rank2Bb Bitboard = Rank1Bb << (8 * 1)
	Rank3Bb Bitboard = Rank1Bb << (8 * 2)
	Rank4Bb Bitboard = Rank1Bb << (8 * 3)
	Rank5Bb Bitboard = Rank1Bb << (8 * 4)
	Rank6Bb Bitboard = Rank1Bb << (8 * 5)
	Rank7Bb Bitboard = Rank1Bb << (8 * 6)
	Rank8Bb Bitboard = Rank1Bb << (8 * 7)

	notFileABb Bitboard = ^FileABb
	notFileHBb Bitboard = ^FileHBb
	notRank1Bb Bitboard = ^Rank1Bb
	notRank8Bb Bitboard = ^Rank8Bb
)

// Set returns b with the bit for sq set.
func Set(b Bitboard, sq Square) Bitboard {
	return b | (BbOne << sq)
}

// Clear returns b with the bit for sq cleared.
func Clear(b Bitboard, sq Square) Bitboard {
	return b &^ (BbOne << sq)
}

// Test reports whether the bit for sq is set in b.
func Test(b Bitboard, sq Square) bool {
	return b&(BbOne<<sq) != 0
}

// PopCount returns the number of set bits in b.
func PopCount(b Bitboard) int {
	return bits.OnesCount64(uint64(b))
}

// LsbIndex returns the square of the least significant set bit, or SqNone
// if b is empty.
func LsbIndex(b Bitboard) Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the least significant set bit's square and the bitboard
// with that bit cleared.
func PopLsb(b Bitboard) (Square, Bitboard) {
	if b == BbZero {
		return SqNone, b
	}
	sq := LsbIndex(b)
	return sq, b & (b - 1)
}

// ToSquare returns the bitboard with only sq's bit set.
func (sq Square) ToSquare() Bitboard {
	return BbOne << sq
}

// ShiftBitboard shifts every bit of b one square in direction d, masking
// off squares that would wrap around a file edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return (notRank8Bb & b) << 8
	case South:
		return (notRank1Bb & b) >> 8
	case East:
		return (notFileHBb & b) << 1
	case West:
		return (notFileABb & b) >> 1
	case Northeast:
		return (notRank8Bb & notFileHBb & b) << 9
	case Southeast:
		return (notRank1Bb & notFileHBb & b) >> 7
	case Southwest:
		return (notRank1Bb & notFileABb & b) >> 9
	case Northwest:
		return (notRank8Bb & notFileABb & b) << 7
	}
	return b
}

// Str returns a 64 character string of the raw bits, MSB first.
func (b Bitboard) Str() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StrBoard renders b as an 8x8 ASCII board, rank 8 first.
func (b Bitboard) StrBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if Test(b, SquareOf(f, r)) {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return os.String()
}

// FileDistance returns the absolute distance in files between f1 and f2.
func FileDistance(f1, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns the absolute distance in ranks between r1 and r2.
func RankDistance(r1, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}

// SquareDistance returns Chebyshev distance between two squares.
func SquareDistance(s1, s2 Square) int {
	return squareDistance[s1][s2]
}

var squareDistance [64][64]int

var sqToFileBb [64]Bitboard
var sqToRankBb [64]Bitboard

// FileBbOf returns the bitboard of all squares sharing sq's file.
func FileBbOf(sq Square) Bitboard { return sqToFileBb[sq] }

// RankBbOf returns the bitboard of all squares sharing sq's rank.
func RankBbOf(sq Square) Bitboard { return sqToRankBb[sq] }

func initBb() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqToFileBb[sq] = FileABb << Square(sq.FileOf())
		sqToRankBb[sq] = Rank1Bb << (8 * Square(sq.RankOf()))
	}
	for s1 := SqA1; s1 <= SqH8; s1++ {
		for s2 := SqA1; s2 <= SqH8; s2++ {
			squareDistance[s1][s2] = util.Max(
				FileDistance(s1.FileOf(), s2.FileOf()),
				RankDistance(s1.RankOf(), s2.RankOf()))
		}
	}
}
