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

// Between and Line are the two square-pair tables the legal move generator
// needs for check-blocking masks and pin rays: Between holds the squares
// strictly in between two aligned squares (exclusive of both ends), Line
// holds the full infinite ray through both squares clipped to the board.
// Both are BbZero for unaligned square pairs. Built once at init from the
// same directional ray walk magic.go uses to build relevantMask/slidingAttack,
// generalized to stop only at the board edge for Line and at sq2 for Between.
var between [64][64]Bitboard
var line [64][64]Bitboard

var allDirs = [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

// Between returns the squares strictly between sq1 and sq2 if they share a
// rank, file, or diagonal; BbZero otherwise.
func Between(sq1, sq2 Square) Bitboard {
	return between[sq1][sq2]
}

// Line returns sq1 plus the ray from sq1 through sq2 to the board edge,
// including sq2; squares on the far side of sq1 are not included. BbZero if
// the squares do not share a rank, file, or diagonal.
func Line(sq1, sq2 Square) Bitboard {
	return line[sq1][sq2]
}

func initRays() {
	for s1 := SqA1; s1 <= SqH8; s1++ {
		for _, d := range allDirs {
			var ray Bitboard
			s := s1
			for {
				next := s.To(d)
				if next == SqNone {
					break
				}
				s = next
				ray |= s.ToSquare()
			}
			// walk the same ray again to fill between[s1][s2] and line[s1][s2]
			// for every s2 on it, and line[s1][s2] for the full ray plus s1.
			betweenAcc := Bitboard(0)
			s = s1
			for {
				next := s.To(d)
				if next == SqNone {
					break
				}
				s = next
				between[s1][s] = betweenAcc
				line[s1][s] = ray | s1.ToSquare()
				betweenAcc |= s.ToSquare()
			}
		}
	}
}
