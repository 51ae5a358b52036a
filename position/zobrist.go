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

package position

import (
	. "github.com/frankkopp/forkedge/types"
)

// Key is the 64 bit Zobrist hash type used to identify a position modulo
// collisions.
type Key uint64

// castlingRightsLength is one past CastlingAny, sized to index every
// possible 4-bit castling rights value.
const castlingRightsLength = int(CastlingAny) + 1

// zobrist holds the per-feature random keys XORed together to form a
// Position's hash: one key per (piece, square), one per castling rights
// value, one per en-passant file, and one for side to move.
type zobrist struct {
	pieces        [PieceLength][SqLength]Key
	castling      [castlingRightsLength]Key
	enPassantFile [8]Key
	sideToMove    Key
}

var zobristBase zobrist

// initZobrist fills zobristBase from a fixed seed so the hash is
// reproducible across runs, matching the retrieved engine's own
// xorshift64star-seeded key generation.
func initZobrist() {
	r := newRandom(1070372)
	for pc := PieceNone; pc < PieceLength; pc++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			zobristBase.pieces[pc][sq] = Key(r.rand64())
		}
	}
	for cr := 0; cr < castlingRightsLength; cr++ {
		zobristBase.castling[cr] = Key(r.rand64())
	}
	for f := FileA; f <= FileH; f++ {
		zobristBase.enPassantFile[f] = Key(r.rand64())
	}
	zobristBase.sideToMove = Key(r.rand64())
}

func init() {
	initZobrist()
}
