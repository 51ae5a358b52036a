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

// Package evaluator contains structures and functions to calculate the
// static value of a chess position to be used as a search leaf score. It
// deliberately knows nothing about check, mate, or stalemate — those are
// game-tree properties the search detects by asking the move generator,
// not something a position's material and piece placement alone can tell.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/frankkopp/forkedge/config"
	myLogging "github.com/frankkopp/forkedge/logging"
	"github.com/frankkopp/forkedge/position"
	. "github.com/frankkopp/forkedge/types"
)

// Evaluator scores a position by material, piece-square placement, and
// mobility, each a heuristic a caller can disable independently through
// config.Settings.Eval. Create one with NewEvaluator per searching
// goroutine; it holds only a logger and is otherwise stateless.
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator creates a new Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{log: myLogging.GetLog("evaluator")}
}

// Evaluate scores pos from the perspective of the side to move: positive
// favors the mover. Every heuristic below computes its contribution from
// White's perspective and the sign flip for Black happens once, at the end.
func (e *Evaluator) Evaluate(pos *position.Position) Value {
	var value Value

	value += material(pos)
	if config.Settings.Eval.UsePsqt {
		value += placement(pos)
	}
	if config.Settings.Eval.UseMobility {
		value += mobility(pos)
	}

	if pos.SideToMove() == Black {
		value = -value
	}
	value += Value(config.Settings.Eval.Tempo)

	return value
}

func material(pos *position.Position) Value {
	var v Value
	for pt := Pawn; pt < PtLength; pt++ {
		n := Value(PopCount(pos.Pieces(White, pt)) - PopCount(pos.Pieces(Black, pt)))
		v += n * Value(pt.ValueOf())
	}
	return v
}

func placement(pos *position.Position) Value {
	var v Value
	for pt := King; pt < PtLength; pt++ {
		table := psqt[pt]
		for bb := pos.Pieces(White, pt); bb != 0; {
			var sq Square
			sq, bb = PopLsb(bb)
			v += Value(table[sq])
		}
		for bb := pos.Pieces(Black, pt); bb != 0; {
			var sq Square
			sq, bb = PopLsb(bb)
			v -= Value(table[flipSquare(sq)])
		}
	}
	return v
}

// mobility counts each side's pseudo-legal non-pawn attacked squares not
// occupied by a piece of the same color. It is a cheap proxy for piece
// activity that does not need a legal move generator: an attacked square
// behind a pin is still "active" in the sense this heuristic measures.
func mobility(pos *position.Position) Value {
	bonus := Value(config.Settings.Eval.MobilityBonus)
	return bonus * Value(countMobility(pos, White)-countMobility(pos, Black))
}

func countMobility(pos *position.Position, us Color) int {
	occ := pos.Occupancy(White) | pos.Occupancy(Black)
	friendly := pos.Occupancy(us)
	count := 0
	for bb := pos.Pieces(us, Knight); bb != 0; {
		var sq Square
		sq, bb = PopLsb(bb)
		count += PopCount(KnightAttacks[sq] &^ friendly)
	}
	for bb := pos.Pieces(us, Bishop); bb != 0; {
		var sq Square
		sq, bb = PopLsb(bb)
		count += PopCount(BishopAttacks(sq, occ) &^ friendly)
	}
	for bb := pos.Pieces(us, Rook); bb != 0; {
		var sq Square
		sq, bb = PopLsb(bb)
		count += PopCount(RookAttacks(sq, occ) &^ friendly)
	}
	for bb := pos.Pieces(us, Queen); bb != 0; {
		var sq Square
		sq, bb = PopLsb(bb)
		count += PopCount(QueenAttacks(sq, occ) &^ friendly)
	}
	return count
}

// flipSquare mirrors a square across the board's horizontal center, so a
// single White-oriented piece-square table can score Black's pieces too.
func flipSquare(sq Square) Square {
	return SquareOf(sq.FileOf(), Rank8-sq.RankOf())
}
