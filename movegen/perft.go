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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/forkedge/position"
	. "github.com/frankkopp/forkedge/types"
)

var out = message.NewPrinter(language.English)

// Perft counts the leaf nodes of the full legal-move game tree below a
// position to a fixed depth, tagging each leaf with the move type that
// produced it. Because GenerateLegalMoves never returns an illegal move,
// every node the walk reaches is counted; there is no post-hoc legality
// filter to apply.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft returns a zeroed Perft counter.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop requests an in-progress Run (called from another goroutine) abandon
// its walk at the next opportunity.
func (p *Perft) Stop() {
	p.stopFlag = true
}

// Run walks the legal-move tree from fen to depth and reports timing and
// per-category counts through out, mirroring the retrieved engine's own
// locale-aware perft report.
func (p *Perft) Run(fen string, depth int) error {
	if depth <= 0 {
		depth = 1
	}
	p.stopFlag = false
	p.resetCounter()

	pos, err := position.FromFEN(fen)
	if err != nil {
		return err
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := p.miniMax(depth, pos)
	elapsed := time.Since(start)

	if p.stopFlag {
		out.Print("Perft stopped\n")
		return nil
	}
	p.Nodes = result

	nanos := elapsed.Nanoseconds()
	if nanos == 0 {
		nanos = 1
	}
	out.Printf("Time         : %d ms\n", elapsed.Milliseconds())
	out.Printf("NPS          : %d nps\n", (p.Nodes*uint64(time.Second.Nanoseconds()))/uint64(nanos))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", p.Nodes)
	out.Printf("   Captures  : %d\n", p.CaptureCounter)
	out.Printf("   EnPassant : %d\n", p.EnpassantCounter)
	out.Printf("   Checks    : %d\n", p.CheckCounter)
	out.Printf("   CheckMates: %d\n", p.CheckMateCounter)
	out.Printf("   Castles   : %d\n", p.CastleCounter)
	out.Printf("   Promotions: %d\n", p.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
	return nil
}

func (p *Perft) miniMax(depth int, pos *position.Position) uint64 {
	if p.stopFlag {
		return 0
	}

	moves := GenerateLegalMoves(pos)
	if depth > 1 {
		var nodes uint64
		for i := 0; i < moves.Len(); i++ {
			move := moves.At(i)
			undo := pos.MakeMove(move)
			nodes += p.miniMax(depth-1, pos)
			pos.UnmakeMove(move, undo)
		}
		return nodes
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		move := moves.At(i)
		capture := move.IsCapture()
		enpassant := move.Type() == EnPassant
		castle := move.Type() == Castle
		promotion := move.IsPromotion()

		undo := pos.MakeMove(move)
		nodes++
		if enpassant {
			p.EnpassantCounter++
		}
		if capture {
			p.CaptureCounter++
		}
		if castle {
			p.CastleCounter++
		}
		if promotion {
			p.PromotionCounter++
		}
		if pos.InCheck(pos.SideToMove()) {
			p.CheckCounter++
			if GenerateLegalMoves(pos).Len() == 0 {
				p.CheckMateCounter++
			}
		}
		pos.UnmakeMove(move, undo)
	}
	return nodes
}

func (p *Perft) resetCounter() {
	p.Nodes = 0
	p.CheckCounter = 0
	p.CheckMateCounter = 0
	p.CaptureCounter = 0
	p.EnpassantCounter = 0
	p.CastleCounter = 0
	p.PromotionCounter = 0
}
