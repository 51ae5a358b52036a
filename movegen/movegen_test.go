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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/forkedge/position"
	. "github.com/frankkopp/forkedge/types"
)

func TestGenerateLegalMovesStartPosition(t *testing.T) {
	p := position.New()
	moves := GenerateLegalMoves(p)
	assert.Equal(t, 20, moves.Len())
}

func TestCheckmateHasNoLegalMoves(t *testing.T) {
	// Fool's mate: 1.f3 e5 2.g4 Qh4#, White to move and mated.
	p, err := position.FromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.NoError(t, err)
	assert.True(t, p.InCheck(White))
	moves := GenerateLegalMoves(p)
	assert.Equal(t, 0, moves.Len())
}

func TestStalemateHasNoLegalMoves(t *testing.T) {
	p, err := position.FromFEN("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)
	assert.False(t, p.InCheck(Black))
	moves := GenerateLegalMoves(p)
	assert.Equal(t, 0, moves.Len())
}

func TestPinnedRookMustStayOnPinLine(t *testing.T) {
	p, err := position.FromFEN("k3r3/8/8/8/4R3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	moves := GenerateLegalMoves(p)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From() != SqE4 {
			continue
		}
		assert.Equal(t, FileE, m.To().FileOf(), "pinned rook must stay on the e file, got %s", m)
	}
}

func TestCheckByKnightOnlyCaptureOrKingMove(t *testing.T) {
	// A knight check can never be blocked, only captured or escaped by
	// moving the king; the bishop on c1 cannot reach d3 and must generate
	// no moves at all here.
	p, err := position.FromFEN("4k3/8/8/8/8/3n4/8/2B1K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.InCheck(White))
	moves := GenerateLegalMoves(p)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		isKingMove := m.From() == SqE1
		isCaptureOfCheckingKnight := m.To() == SqD3
		assert.True(t, isKingMove || isCaptureOfCheckingKnight, "only king moves or capturing the checker are legal, got %s", m)
	}
}

func TestCastlingBlockedWhileInCheck(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.InCheck(White))
	moves := GenerateLegalMoves(p)
	for i := 0; i < moves.Len(); i++ {
		assert.NotEqual(t, Castle, moves.At(i).Type())
	}
}

func TestCastlingBlockedThroughAttackedSquare(t *testing.T) {
	// Black rook on f8 controls f1, the square the White king must cross
	// to castle king side.
	p, err := position.FromFEN("4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	assert.NoError(t, err)
	moves := GenerateLegalMoves(p)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.Type() == Castle {
			assert.NotEqual(t, SqG1, m.To(), "king side castle must be illegal while f1 is attacked")
		}
	}
}

func TestEnPassantDiscoveredCheckIsIllegal(t *testing.T) {
	// White king and a black rook share rank 5 with the white pawn d5 and
	// black pawn e5 the only pieces between them; capturing en passant
	// removes both pawns from the rank and exposes the king.
	p, err := position.FromFEN("8/8/8/K2Pp2r/8/8/8/4k3 w - e6 0 1")
	assert.NoError(t, err)
	moves := GenerateLegalMoves(p)
	for i := 0; i < moves.Len(); i++ {
		assert.NotEqual(t, EnPassant, moves.At(i).Type(), "en passant must not expose the king to the rook on rank 5")
	}
}
