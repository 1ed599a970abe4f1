// Package movegen generates pseudo-legal moves per piece type, filters them
// to legal moves via copy-make, and answers check/checkmate/stalemate
// queries. Grounded on the teacher engine's movegen.go (GenLegalMoves'
// copy-make legality filter, GenChecksCounter's OR-of-attacker-bitboards
// scheme, and the per-piece pseudo-legal generators).
package movegen

import (
	"github.com/tmttn/chess-sub000/internal/attack"
	"github.com/tmttn/chess-sub000/internal/bitops"
	"github.com/tmttn/chess-sub000/piece"
	"github.com/tmttn/chess-sub000/position"
)

// Legal returns every legal move for the side to move in pos.
func Legal(pos position.Position) piece.MoveList {
	var pseudo piece.MoveList
	generatePseudoLegal(&pos, &pseudo)

	var legal piece.MoveList
	for _, m := range pseudo.Slice() {
		next := pos
		next.MakeMove(m)
		if !Attacked(&next, next.Side, next.King(pos.Side)) {
			legal.Push(m)
		}
	}
	return legal
}

// InCheck reports whether the side to move's king is currently attacked.
func InCheck(pos *position.Position) bool {
	return Attacked(pos, pos.Side.Opposite(), pos.King(pos.Side))
}

// Attacked reports whether sq is attacked by any piece of color by.
//
// For the pawn check, attack.Pawn[c][s] is "the squares a c-colored pawn
// standing on s attacks". To find whether a by-pawn attacks sq we need the
// reverse lookup — the squares a by-pawn would have to stand on — which is
// exactly attack.Pawn[by.Opposite()][sq] (the mirror-direction table),
// intersected with by's actual pawns. Grounded on the teacher's
// GenChecksCounter, which indexes pawnAttacks by the defender's color at
// the king square.
func Attacked(pos *position.Position, by piece.Color, sq piece.Square) bool {
	occ := pos.AllOccupancy()
	s := int(sq)

	if attack.Pawn[by.Opposite()][s]&pos.PieceBB(by, piece.Pawn) != 0 {
		return true
	}
	if attack.Knight[s]&pos.PieceBB(by, piece.Knight) != 0 {
		return true
	}
	if attack.King[s]&pos.PieceBB(by, piece.King) != 0 {
		return true
	}
	bishopsQueens := pos.PieceBB(by, piece.Bishop) | pos.PieceBB(by, piece.Queen)
	if attack.BishopAttacks(s, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := pos.PieceBB(by, piece.Rook) | pos.PieceBB(by, piece.Queen)
	if attack.RookAttacks(s, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// Attackers returns how many of by's piece types (pawn, knight, king,
// bishop, rook, queen) have at least one piece attacking sq. Several
// attackers of the same type count once, so the result is at most 6.
func Attackers(pos *position.Position, by piece.Color, sq piece.Square) int {
	occ := pos.AllOccupancy()
	s := int(sq)
	cnt := 0
	if attack.Pawn[by.Opposite()][s]&pos.PieceBB(by, piece.Pawn) != 0 {
		cnt++
	}
	if attack.Knight[s]&pos.PieceBB(by, piece.Knight) != 0 {
		cnt++
	}
	if attack.King[s]&pos.PieceBB(by, piece.King) != 0 {
		cnt++
	}
	if attack.BishopAttacks(s, occ)&pos.PieceBB(by, piece.Bishop) != 0 {
		cnt++
	}
	if attack.RookAttacks(s, occ)&pos.PieceBB(by, piece.Rook) != 0 {
		cnt++
	}
	if attack.QueenAttacks(s, occ)&pos.PieceBB(by, piece.Queen) != 0 {
		cnt++
	}
	return cnt
}

func generatePseudoLegal(pos *position.Position, l *piece.MoveList) {
	genPawnMoves(pos, l)
	genLeaperOrSliderMoves(pos, l, piece.Knight)
	genLeaperOrSliderMoves(pos, l, piece.Bishop)
	genLeaperOrSliderMoves(pos, l, piece.Rook)
	genLeaperOrSliderMoves(pos, l, piece.Queen)
	genKingMoves(pos, l)
	genCastling(pos, l)
}

func genPawnMoves(pos *position.Position, l *piece.MoveList) {
	side := pos.Side
	pawns := pos.PieceBB(side, piece.Pawn)
	occ := pos.AllOccupancy()
	enemies := pos.Occupancy(side.Opposite())

	dir := 8
	startRank, promoRank := bitops.Rank2, bitops.Rank8
	if side == piece.Black {
		dir = -8
		startRank, promoRank = bitops.Rank7, bitops.Rank1
	}

	var epBB uint64
	if pos.EPTarget != piece.NoSquare {
		epBB = pos.EPTarget.Bitboard()
	}

	for pawns != 0 {
		from := bitops.PopLSB(&pawns)
		fromSq := piece.Square(from)
		fromBB := fromSq.Bitboard()

		to := from + dir
		toBB := uint64(1) << uint(to)
		if toBB&occ == 0 {
			pushMoveOrPromotions(l, fromSq, piece.Square(to), toBB, promoRank)

			dbl := from + 2*dir
			dblBB := uint64(1) << uint(dbl)
			if fromBB&startRank != 0 && dblBB&occ == 0 {
				l.Push(piece.NewMove(fromSq, piece.Square(dbl), piece.Quiet))
			}
		}

		captures := attack.Pawn[colorIndex(side)][from] & (enemies | epBB)
		for captures != 0 {
			toSq := piece.Square(bitops.PopLSB(&captures))
			toMask := toSq.Bitboard()
			switch {
			case toMask&promoRank != 0:
				pushPromotions(l, fromSq, toSq)
			case toMask&epBB != 0:
				l.Push(piece.NewMove(fromSq, toSq, piece.EnPassant))
			default:
				l.Push(piece.NewMove(fromSq, toSq, piece.Quiet))
			}
		}
	}
}

func colorIndex(c piece.Color) int { return int(c) }

func pushMoveOrPromotions(l *piece.MoveList, from, to piece.Square, toBB, promoRank uint64) {
	if toBB&promoRank != 0 {
		pushPromotions(l, from, to)
		return
	}
	l.Push(piece.NewMove(from, to, piece.Quiet))
}

func pushPromotions(l *piece.MoveList, from, to piece.Square) {
	l.Push(piece.NewPromotion(from, to, piece.PromoKnight))
	l.Push(piece.NewPromotion(from, to, piece.PromoBishop))
	l.Push(piece.NewPromotion(from, to, piece.PromoRook))
	l.Push(piece.NewPromotion(from, to, piece.PromoQueen))
}

func genLeaperOrSliderMoves(pos *position.Position, l *piece.MoveList, pc piece.Piece) {
	side := pos.Side
	pieces := pos.PieceBB(side, pc)
	own := pos.Occupancy(side)
	occ := pos.AllOccupancy()

	for pieces != 0 {
		from := bitops.PopLSB(&pieces)
		var dests uint64
		switch pc {
		case piece.Knight:
			dests = attack.Knight[from]
		case piece.Bishop:
			dests = attack.BishopAttacks(from, occ)
		case piece.Rook:
			dests = attack.RookAttacks(from, occ)
		case piece.Queen:
			dests = attack.QueenAttacks(from, occ)
		}
		dests &^= own
		for dests != 0 {
			to := bitops.PopLSB(&dests)
			l.Push(piece.NewMove(piece.Square(from), piece.Square(to), piece.Quiet))
		}
	}
}

func genKingMoves(pos *position.Position, l *piece.MoveList) {
	side := pos.Side
	from := pos.King(side)
	dests := attack.King[from] &^ pos.Occupancy(side)
	for dests != 0 {
		to := bitops.PopLSB(&dests)
		l.Push(piece.NewMove(from, piece.Square(to), piece.Quiet))
	}
}

// castlingOption describes the static geometry of one castling option.
type castlingOption struct {
	right       piece.CastlingRights
	king        piece.Square
	rook        piece.Square
	kingTo      piece.Square
	emptyMask   uint64
	passThrough [2]piece.Square // squares (other than the origin) that must not be attacked
}

var castlingOptions = []castlingOption{
	{piece.WhiteKingSide, piece.E1, piece.H1, piece.G1, piece.F1.Bitboard() | piece.G1.Bitboard(), [2]piece.Square{piece.F1, piece.G1}},
	{piece.WhiteQueenSide, piece.E1, piece.A1, piece.C1, piece.D1.Bitboard() | piece.C1.Bitboard() | piece.B1.Bitboard(), [2]piece.Square{piece.D1, piece.C1}},
	{piece.BlackKingSide, piece.E8, piece.H8, piece.G8, piece.F8.Bitboard() | piece.G8.Bitboard(), [2]piece.Square{piece.F8, piece.G8}},
	{piece.BlackQueenSide, piece.E8, piece.A8, piece.C8, piece.D8.Bitboard() | piece.C8.Bitboard() | piece.B8.Bitboard(), [2]piece.Square{piece.D8, piece.C8}},
}

func genCastling(pos *position.Position, l *piece.MoveList) {
	side := pos.Side
	occ := pos.AllOccupancy()
	opp := side.Opposite()

	for _, opt := range castlingOptions {
		if (side == piece.White) != (opt.right == piece.WhiteKingSide || opt.right == piece.WhiteQueenSide) {
			continue
		}
		if !pos.Castling.Has(opt.right) {
			continue
		}
		if occ&opt.emptyMask != 0 {
			continue
		}
		if Attacked(pos, opp, opt.king) {
			continue
		}
		if Attacked(pos, opp, opt.passThrough[0]) || Attacked(pos, opp, opt.passThrough[1]) {
			continue
		}
		l.Push(piece.NewMove(opt.king, opt.kingTo, piece.Castle))
	}
}
