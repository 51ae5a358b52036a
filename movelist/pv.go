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

package movelist

import . "github.com/frankkopp/forkedge/types"

// PV is a principal variation returned by value: a fixed-capacity array of
// moves terminated by the canonical sentinel MoveNone (From == To == SqA1,
// which no legal move ever encodes), rather than a length-carrying slice.
// A parallel search task can hand one back from a goroutine with no
// allocation and no aliasing concerns.
type PV [MaxDepth]Move

// NewPV returns a PV with every entry set to the sentinel.
func NewPV() PV {
	var pv PV
	pv.Clear()
	return pv
}

// Clear resets every entry to the sentinel move.
func (pv *PV) Clear() {
	for i := range pv {
		pv[i] = MoveNone
	}
}

// Len returns the number of real moves before the first sentinel.
func (pv PV) Len() int {
	for i, m := range pv {
		if m == MoveNone {
			return i
		}
	}
	return len(pv)
}

// Prepend returns a new PV consisting of m followed by child's moves, each
// shifted one slot to the right; entries that would fall past the array's
// end are dropped rather than overflowing.
func Prepend(m Move, child PV) PV {
	var pv PV
	pv[0] = m
	for i := 0; i < len(child)-1; i++ {
		pv[i+1] = child[i]
	}
	return pv
}

// String renders the PV in UCI-style "e2e4 e7e5 ..." form up to the first
// sentinel.
func (pv PV) String() string {
	s := ""
	for i := 0; i < pv.Len(); i++ {
		if i > 0 {
			s += " "
		}
		s += pv[i].String()
	}
	return s
}
