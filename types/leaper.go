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

// PawnAttacks[color][sq] are the squares a pawn of color on sq attacks,
// empty on that color's promotion rank.
var PawnAttacks [2][64]Bitboard

// KnightAttacks[sq] are the squares a knight on sq attacks.
var KnightAttacks [64]Bitboard

// KingAttacks[sq] are the squares a king on sq attacks.
var KingAttacks [64]Bitboard

// knightDirs pairs a "long" orthogonal axis (moved two squares) with a
// "short" orthogonal axis (moved one square) to build each of the eight
// knight hops without ever expressing them as diagonal shifts.
var knightDirs = [8][2]Direction{
	{North, East}, {North, West},
	{South, East}, {South, West},
	{East, North}, {East, South},
	{West, North}, {West, South},
}

var kingDirs = [8]Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}

// initLeaperAttacks builds the pawn/knight/king attack tables once, purely
// from directional shifts of a single-square bitboard, matching the way the
// original source's constant leaper arrays were themselves generated.
func initLeaperAttacks() {
	for sq := SqA1; sq <= SqH8; sq++ {
		b := sq.ToSquare()

		if sq.RankOf() != Rank8 {
			PawnAttacks[White][sq] = ShiftBitboard(b, Northeast) | ShiftBitboard(b, Northwest)
		}
		if sq.RankOf() != Rank1 {
			PawnAttacks[Black][sq] = ShiftBitboard(b, Southeast) | ShiftBitboard(b, Southwest)
		}

		var king Bitboard
		for _, d := range kingDirs {
			king |= ShiftBitboard(b, d)
		}
		KingAttacks[sq] = king

		var knight Bitboard
		for _, pair := range knightDirs {
			// a knight move is a leaper two-one: shift once the "long" way,
			// once more the "short" way, with each hop masked against file
			// wrap so we never jump across the board edge.
			step1 := ShiftBitboard(b, pair[0])
			step1 = ShiftBitboard(step1, pair[0])
			step2 := ShiftBitboard(step1, pair[1])
			knight |= step2
		}
		KnightAttacks[sq] = knight
	}
}
