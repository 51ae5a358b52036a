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

// Package movegen generates fully legal moves for a position directly,
// rather than generating pseudo-legal moves and filtering them by replaying
// each one. It computes the checkers bitboard, a check-evasion mask and a
// per-square pin ray once per call and folds all three into every piece
// type's attack bitboard before a single move is appended.
package movegen

import (
	"errors"

	"github.com/frankkopp/forkedge/movelist"
	"github.com/frankkopp/forkedge/position"
	. "github.com/frankkopp/forkedge/types"
)

// ErrIllegalMove is the error for a move that is not a member of the
// position's legal move set. IsLegalMove reports that condition as a bool;
// no function in this module returns ErrIllegalMove itself.
var ErrIllegalMove = errors.New("illegal move")

// IsLegalMove reports whether m is one of pos's legal moves. Front-ends that
// accept a move from outside the engine (UCI "position ... moves", a PV
// replay) should call this before Position.MakeMove, which trusts its input.
func IsLegalMove(pos *position.Position, m Move) bool {
	ml := GenerateLegalMoves(pos)
	for i := 0; i < ml.Len(); i++ {
		if ml.At(i) == m {
			return true
		}
	}
	return false
}

// GenerateLegalMoves returns every legal move available to the side to move
// in pos, generated in the order king, pawn, knight, bishop, rook, queen,
// castling.
func GenerateLegalMoves(pos *position.Position) *movelist.MoveList {
	ml := movelist.New()
	GenerateLegalMovesInto(pos, ml)
	return ml
}

// GenerateLegalMovesInto fills ml (which the caller must have cleared) with
// every legal move for the side to move in pos. Kept separate from
// GenerateLegalMoves so a hot search loop can reuse one MoveList per node
// instead of allocating one per call.
func GenerateLegalMovesInto(pos *position.Position, ml *movelist.MoveList) {
	us := pos.SideToMove()
	them := us.Flip()
	kingSq := pos.KingSquare(us)
	occ := pos.OccupancyAll()

	checkers := computeCheckers(pos, us, kingSq, occ)
	numCheckers := PopCount(checkers)

	generateKingMoves(pos, us, them, kingSq, occ, ml)

	// Double check: only the king can move.
	if numCheckers >= 2 {
		return
	}

	var checkMask Bitboard
	if numCheckers == 1 {
		checkerSq := LsbIndex(checkers)
		checkMask = Between(kingSq, checkerSq) | checkerSq.ToSquare()
	} else {
		checkMask = BbAll
	}

	pinRay := computePinRays(pos, us, kingSq, occ)

	generatePawnMoves(pos, us, them, checkMask, pinRay, ml)
	generateLeaperOrSliderMoves(pos, us, Knight, checkMask, pinRay, ml)
	generateLeaperOrSliderMoves(pos, us, Bishop, checkMask, pinRay, ml)
	generateLeaperOrSliderMoves(pos, us, Rook, checkMask, pinRay, ml)
	generateLeaperOrSliderMoves(pos, us, Queen, checkMask, pinRay, ml)
	generateCastling(pos, us, numCheckers > 0, ml)
}

// computeCheckers returns every enemy piece currently attacking us's king,
// found by placing each attacker type on the king's square and intersecting
// its attack pattern with the matching enemy piece bitboard.
func computeCheckers(pos *position.Position, us Color, kingSq Square, occ Bitboard) Bitboard {
	them := us.Flip()
	var checkers Bitboard
	checkers |= PawnAttacks[us][kingSq] & pos.Pieces(them, Pawn)
	checkers |= KnightAttacks[kingSq] & pos.Pieces(them, Knight)
	diagonal := pos.Pieces(them, Bishop) | pos.Pieces(them, Queen)
	checkers |= BishopAttacks(kingSq, occ) & diagonal
	orthogonal := pos.Pieces(them, Rook) | pos.Pieces(them, Queen)
	checkers |= RookAttacks(kingSq, occ) & orthogonal
	return checkers
}

// computePinRays returns, for every square, the set of squares a piece
// pinned there may still move to: BbAll for a square holding no pinned
// piece, or the full king-slider line for one that is pinned. A friendly
// piece is pinned when exactly one of our pieces sits on the line between
// our king and an aligned enemy slider.
func computePinRays(pos *position.Position, us Color, kingSq Square, occ Bitboard) [SqLength]Bitboard {
	var pinRay [SqLength]Bitboard
	for sq := range pinRay {
		pinRay[sq] = BbAll
	}

	them := us.Flip()
	friendly := pos.Occupancy(us)

	markPins := func(sliders Bitboard, aligned func(sq Square) bool) {
		for sliders != 0 {
			var sq Square
			sq, sliders = PopLsb(sliders)
			if !aligned(sq) {
				continue
			}
			between := Between(kingSq, sq)
			blockers := between & occ
			if PopCount(blockers) == 1 && blockers&friendly == blockers {
				pinnedSq := LsbIndex(blockers)
				pinRay[pinnedSq] = Line(kingSq, sq)
			}
		}
	}

	diagSliders := pos.Pieces(them, Bishop) | pos.Pieces(them, Queen)
	markPins(diagSliders, func(sq Square) bool {
		return sq != kingSq && FileDistance(kingSq.FileOf(), sq.FileOf()) == RankDistance(kingSq.RankOf(), sq.RankOf())
	})

	orthSliders := pos.Pieces(them, Rook) | pos.Pieces(them, Queen)
	markPins(orthSliders, func(sq Square) bool {
		return sq != kingSq && (kingSq.FileOf() == sq.FileOf() || kingSq.RankOf() == sq.RankOf())
	})

	return pinRay
}

// generateKingMoves adds every legal king step: destinations not occupied
// by a friendly piece and not attacked once the king itself is removed from
// the occupancy (otherwise the king would appear to "block" an attack on
// the square it is stepping away along the same ray).
func generateKingMoves(pos *position.Position, us, them Color, kingSq Square, occ Bitboard, ml *movelist.MoveList) {
	friendly := pos.Occupancy(us)
	occWithoutKing := Clear(occ, kingSq)
	destinations := KingAttacks[kingSq] &^ friendly
	for destinations != 0 {
		var to Square
		to, destinations = PopLsb(destinations)
		if pos.IsSquareAttackedWithOccupancy(to, them, occWithoutKing) {
			continue
		}
		addMove(pos, ml, kingSq, to, PtNone, Quiet)
	}
}

// generateLeaperOrSliderMoves handles every non-king, non-pawn piece type:
// its destinations are its attack bitboard, minus friendly-occupied
// squares, intersected with the check mask and the mover's own pin ray.
func generateLeaperOrSliderMoves(pos *position.Position, us Color, pt PieceType, checkMask Bitboard, pinRay [SqLength]Bitboard, ml *movelist.MoveList) {
	friendly := pos.Occupancy(us)
	occ := pos.OccupancyAll()
	pieces := pos.Pieces(us, pt)
	for pieces != 0 {
		var from Square
		from, pieces = PopLsb(pieces)
		var attacks Bitboard
		switch pt {
		case Knight:
			attacks = KnightAttacks[from]
		case Bishop:
			attacks = BishopAttacks(from, occ)
		case Rook:
			attacks = RookAttacks(from, occ)
		case Queen:
			attacks = QueenAttacks(from, occ)
		}
		destinations := attacks &^ friendly & checkMask & pinRay[from]
		for destinations != 0 {
			var to Square
			to, destinations = PopLsb(destinations)
			addMove(pos, ml, from, to, PtNone, Quiet)
		}
	}
}

var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// generatePawnMoves handles single and double pushes, diagonal captures,
// en passant, and promotion (plain and capturing), each masked by the
// check mask and the mover's pin ray.
func generatePawnMoves(pos *position.Position, us, them Color, checkMask Bitboard, pinRay [SqLength]Bitboard, ml *movelist.MoveList) {
	occ := pos.OccupancyAll()
	enemy := pos.Occupancy(them)
	pawns := pos.Pieces(us, Pawn)
	promoRank := us.PromotionRankBb()
	pushDir := North
	if us == Black {
		pushDir = South
	}

	for p := pawns; p != 0; {
		var from Square
		from, p = PopLsb(p)
		ray := pinRay[from]

		// captures before pushes, then en passant; this order holds per pawn,
		// so moves of different pawns are not grouped by kind
		captures := PawnAttacks[us][from] & enemy & checkMask & ray
		for captures != 0 {
			var to Square
			to, captures = PopLsb(captures)
			addPawnCapture(pos, ml, from, to, promoRank)
		}

		// single and double push
		single := from.To(pushDir)
		if single != SqNone && !Test(occ, single) {
			dest := single.ToSquare() & checkMask & ray
			if dest != 0 {
				addPawnMove(pos, ml, from, single, promoRank)
			}
			double := single.To(pushDir)
			if double != SqNone && Test(us.DoublePushRankBb(), double) && !Test(occ, double) {
				if double.ToSquare()&checkMask&ray != 0 {
					addMove(pos, ml, from, double, PtNone, DoublePush)
				}
			}
		}

		// en passant
		epSq := pos.EnPassantSquare()
		if epSq != SqNone && Test(PawnAttacks[us][from], epSq) {
			if isLegalEnPassant(pos, us, them, from, epSq, checkMask, ray) {
				addMove(pos, ml, from, epSq, PtNone, EnPassant)
			}
		}
	}
}

// isLegalEnPassant additionally rules out the rare case where capturing en
// passant exposes the king to a rook/queen along the fourth or fifth rank
// once both the capturing pawn and the captured pawn leave it — a case the
// ordinary pin computation above cannot see since the captured pawn is not
// on the same line as the king and the capturing pawn.
func isLegalEnPassant(pos *position.Position, us, them Color, from, epSq Square, checkMask Bitboard, ray Bitboard) bool {
	capturedSq := SquareOf(epSq.FileOf(), from.RankOf())
	captureTarget := epSq.ToSquare() | capturedSq.ToSquare()
	if checkMask != BbAll && checkMask&captureTarget == 0 {
		return false
	}
	if ray != BbAll && ray&epSq.ToSquare() == 0 {
		return false
	}
	kingSq := pos.KingSquare(us)
	if kingSq.RankOf() != from.RankOf() {
		return true
	}
	occAfter := pos.OccupancyAll()
	occAfter = Clear(occAfter, from)
	occAfter = Clear(occAfter, capturedSq)
	occAfter = Set(occAfter, epSq)
	orthogonal := pos.Pieces(them, Rook) | pos.Pieces(them, Queen)
	return RookAttacks(kingSq, occAfter)&orthogonal == 0
}

func addPawnMove(pos *position.Position, ml *movelist.MoveList, from, to Square, promoRank Bitboard) {
	if Test(promoRank, to) {
		for _, pt := range promotionTypes {
			addMove(pos, ml, from, to, pt, Promotion)
		}
		return
	}
	addMove(pos, ml, from, to, PtNone, Quiet)
}

func addPawnCapture(pos *position.Position, ml *movelist.MoveList, from, to Square, promoRank Bitboard) {
	if Test(promoRank, to) {
		for _, pt := range promotionTypes {
			addMove(pos, ml, from, to, pt, PromotionCapture)
		}
		return
	}
	addMove(pos, ml, from, to, PtNone, Capture)
}

// generateCastling adds king-side and queen-side castling when the
// relevant right is held, every square between king and rook is empty, and
// the king does not start, pass through, or land on an attacked square. A
// king already in check may never castle.
func generateCastling(pos *position.Position, us Color, inCheck bool, ml *movelist.MoveList) {
	if inCheck {
		return
	}
	cr := pos.CastlingRights()
	occ := pos.OccupancyAll()
	them := us.Flip()

	clear := func(a, b Square) bool { return Between(a, b)&occ == 0 }
	safe := func(squares ...Square) bool {
		for _, sq := range squares {
			if pos.IsSquareAttacked(sq, them) {
				return false
			}
		}
		return true
	}

	if us == White {
		if cr.Has(CastlingWhiteOO) && clear(SqE1, SqH1) && safe(SqE1, SqF1, SqG1) {
			addMove(pos, ml, SqE1, SqG1, PtNone, Castle)
		}
		if cr.Has(CastlingWhiteOOO) && clear(SqE1, SqA1) && safe(SqE1, SqD1, SqC1) {
			addMove(pos, ml, SqE1, SqC1, PtNone, Castle)
		}
	} else {
		if cr.Has(CastlingBlackOO) && clear(SqE8, SqH8) && safe(SqE8, SqF8, SqG8) {
			addMove(pos, ml, SqE8, SqG8, PtNone, Castle)
		}
		if cr.Has(CastlingBlackOOO) && clear(SqE8, SqA8) && safe(SqE8, SqD8, SqC8) {
			addMove(pos, ml, SqE8, SqC8, PtNone, Castle)
		}
	}
}

// addMove appends from->to, upgrading mt to its capturing counterpart when
// the destination is occupied (needed for the leaper/slider and king paths,
// which compute their destination set before knowing which squares are
// captures).
func addMove(pos *position.Position, ml *movelist.MoveList, from, to Square, promo PieceType, mt MoveType) {
	if mt == Quiet && pos.PieceAt(to) != PieceNone {
		mt = Capture
	} else if mt == Promotion && pos.PieceAt(to) != PieceNone {
		mt = PromotionCapture
	}
	ml.Add(NewMove(from, to, promo, mt))
}
