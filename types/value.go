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
	"strconv"
	"strings"

	"github.com/frankkopp/forkedge/util"
)

// Value represents the evaluation of a position from the perspective of the
// side to move: positive favors the mover.
type Value int32

// Constants for values. ValueCheckMate minus the ply at which the mate is
// delivered encodes mate distance; anything within MaxDepth plies of
// ValueCheckMate is a forced mate score, per ValueCheckMateThreshold.
const (
	ValueZero               Value = 0
	ValueDraw               Value = 0
	ValueInf                Value = 1_000_000
	ValueNA                 Value = -ValueInf - 1
	ValueCheckMate          Value = 100_000
	ValueCheckMateThreshold Value = ValueCheckMate - Value(MaxDepth) - 1

	// Epsilon is the smallest representable increment on this integer
	// evaluation scale; PVS's null window is (-(alpha+Epsilon), -alpha).
	Epsilon Value = 1
)

// IsCheckMateValue reports whether v encodes a forced mate score.
func (v Value) IsCheckMateValue() bool {
	return Value(util.Abs(int(v))) > ValueCheckMateThreshold && Value(util.Abs(int(v))) <= ValueCheckMate
}

// String renders v either as "mate N", "cp N", or "N/A".
func (v Value) String() string {
	var os strings.Builder
	switch {
	case v == ValueNA:
		os.WriteString("N/A")
	case v.IsCheckMateValue():
		os.WriteString("mate ")
		if v < ValueZero {
			os.WriteString("-")
		}
		pliesToMate := int(ValueCheckMate) - util.Abs(int(v))
		os.WriteString(strconv.Itoa((pliesToMate + 1) / 2))
	default:
		os.WriteString("cp ")
		os.WriteString(strconv.Itoa(int(v)))
	}
	return os.String()
}

// MateIn returns the mate score for a mate delivered ply plies from the
// current node (negamax convention: the side to move is being mated).
func MateIn(ply int) Value {
	return -ValueCheckMate + Value(ply)
}
