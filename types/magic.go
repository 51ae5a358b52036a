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

// This file builds the sliding-piece attack table: one flat Bitboard array
// shared by bishops and rooks on every square, indexed by a per-square magic
// multiplier hash of the relevant occupancy. Each square gets exactly as
// many table entries as it has relevant-occupancy subsets (2^popcount of its
// mask), packed back to back rather than padded to a fixed stride; across
// both piece kinds and all squares this totals 107,648 entries (5,248 for
// bishops, 102,400 for rooks). Entries of different squares never overlap,
// so the table is larger than an overlapping black-magic layout.
//
// Magic multipliers are found once at init time by the same trial-and-error
// search the retrieved engine's magic.go uses (a seeded xorshift64star PRNG,
// restricted to sparse candidates, validated by replaying every occupancy
// subset through a naive ray walk and rejecting a candidate on any index
// collision between two different attack sets). The search is deterministic
// for a fixed seed, so the table is reproducible across runs.

type magicEntry struct {
	mask   Bitboard // relevant occupancy mask (excludes board edge along the ray)
	magic  uint64
	shift  uint
	offset int // base offset into the shared Sliding table
}

var bishopMagics [64]magicEntry
var rookMagics [64]magicEntry

// Sliding is the single flat attack table shared by bishops and rooks.
var Sliding []Bitboard

var bishopDirs = [4]Direction{Northeast, Northwest, Southeast, Southwest}
var rookDirs = [4]Direction{North, South, East, West}

// BishopAttacks returns the bishop attack set from sq given board occupancy.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	e := &bishopMagics[sq]
	idx := e.offset + int((uint64(occ&e.mask)*e.magic)>>e.shift)
	return Sliding[idx]
}

// RookAttacks returns the rook attack set from sq given board occupancy.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	e := &rookMagics[sq]
	idx := e.offset + int((uint64(occ&e.mask)*e.magic)>>e.shift)
	return Sliding[idx]
}

// QueenAttacks returns the queen attack set from sq given board occupancy.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return BishopAttacks(sq, occ) | RookAttacks(sq, occ)
}

// slidingAttack walks the four rays of dirs from sq across occ, stopping
// (inclusive) at the first occupied square. Used only at build time; the
// runtime query path never walks rays.
func slidingAttack(dirs [4]Direction, sq Square, occ Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next := s.To(d)
			if next == SqNone {
				break
			}
			s = next
			attacks |= s.ToSquare()
			if Test(occ, s) {
				break
			}
		}
	}
	return attacks
}

// relevantMask returns the occupancy squares that can affect sliding attacks
// from sq, excluding the board edge along each ray (an occupied edge square
// cannot block anything further since the ray already ends there).
func relevantMask(dirs [4]Direction, sq Square) Bitboard {
	return slidingAttack(dirs, sq, BbZero) &^ edgeMaskFor(sq)
}

// edgeMaskFor excludes the outer ring for every rank/file not already on
// sq's own rank/file, since a blocker there is never "behind" another
// blocker along the ray and the mask only needs the squares that can
// actually change the attack set.
func edgeMaskFor(sq Square) Bitboard {
	edges := (Rank1Bb | Rank8Bb) &^ sqToRankBb[sq]
	edges |= (FileABb | FileHBb) &^ sqToFileBb[sq]
	return edges
}

// initMagic builds bishopMagics, rookMagics and the shared Sliding table.
func initMagic() {
	rng := newMagicRng(0x9E3779B97F4A7C15)
	offset := 0
	for sq := SqA1; sq <= SqH8; sq++ {
		offset = buildMagic(&bishopMagics[sq], bishopDirs, sq, offset, rng)
	}
	for sq := SqA1; sq <= SqH8; sq++ {
		offset = buildMagic(&rookMagics[sq], rookDirs, sq, offset, rng)
	}
	Sliding = make([]Bitboard, offset)
	for sq := SqA1; sq <= SqH8; sq++ {
		fillMagic(&bishopMagics[sq], bishopDirs, sq)
		fillMagic(&rookMagics[sq], rookDirs, sq)
	}
	log.Debug("sliding attack table built")
}

// buildMagic searches for a working magic multiplier for sq and reserves
// its span in the shared table, returning the next free offset.
func buildMagic(e *magicEntry, dirs [4]Direction, sq Square, offset int, rng *magicRng) int {
	mask := relevantMask(dirs, sq)
	bits := PopCount(mask)
	size := 1 << uint(bits)
	shift := uint(64 - bits)

	occupancies := make([]Bitboard, size)
	references := make([]Bitboard, size)
	n := 0
	occ := Bitboard(0)
	for {
		occupancies[n] = occ
		references[n] = slidingAttack(dirs, sq, occ)
		n++
		occ = (occ - mask) & mask
		if occ == 0 {
			break
		}
	}

	used := make([]Bitboard, size)
	for {
		magic := rng.sparse()
		if PopCount(Bitboard((uint64(mask)*magic)&0xFF00000000000000)) < 6 {
			continue
		}
		for i := range used {
			used[i] = BbAll // sentinel "unused" marker distinct from BbZero
		}
		ok := true
		for i := 0; i < n && ok; i++ {
			idx := int((uint64(occupancies[i]) * magic) >> shift)
			if used[idx] == BbAll {
				used[idx] = references[i]
			} else if used[idx] != references[i] {
				ok = false
			}
		}
		if ok {
			e.mask = mask
			e.magic = magic
			e.shift = shift
			e.offset = offset
			return offset + size
		}
	}
}

// fillMagic replays the occupancy enumeration through the now-fixed magic
// to populate the shared Sliding table.
func fillMagic(e *magicEntry, dirs [4]Direction, sq Square) {
	occ := Bitboard(0)
	for {
		idx := e.offset + int((uint64(occ&e.mask)*e.magic)>>e.shift)
		Sliding[idx] = slidingAttack(dirs, sq, occ)
		occ = (occ - e.mask) & e.mask
		if occ == 0 {
			break
		}
	}
}

// magicRng is a small xorshift64star PRNG, matching the retrieved engine's
// magic-search generator, biased via sparse() toward the low-popcount
// candidates that make good magic multipliers.
type magicRng struct{ state uint64 }

func newMagicRng(seed uint64) *magicRng {
	return &magicRng{state: seed}
}

func (r *magicRng) next() uint64 {
	r.state ^= r.state >> 12
	r.state ^= r.state << 25
	r.state ^= r.state >> 27
	return r.state * 2685821657736338717
}

func (r *magicRng) sparse() uint64 {
	return r.next() & r.next() & r.next()
}
