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

// File is a board file, A..H.
type File int8

// Rank is a board rank, 1..8.
type Rank int8

//noinspection GoUnusedConst
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
)

//noinspection GoUnusedConst
const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone
)

// IsValid checks whether f is one of FileA..FileH.
func (f File) IsValid() bool {
	return f >= FileA && f <= FileH
}

// IsValid checks whether r is one of Rank1..Rank8.
func (r Rank) IsValid() bool {
	return r >= Rank1 && r <= Rank8
}

// String returns the single lower case letter for the file.
func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(rune('a' + int(f)))
}

// String returns the single digit for the rank.
func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return string(rune('1' + int(r)))
}
