// Package position implements the Position aggregate: the twelve
// piece bitboards, color/total occupancy, castling rights, en-passant
// target, clocks and side to move, plus MakeMove and FEN conversion.
//
// Grounded on the teacher engine's position.go (the 15-bitboard layout —
// 12 piece boards plus white/black/total occupancy caches — and its
// placePiece/removePiece/MakeMove bookkeeping for castling rights, en
// passant, and the halfmove clock).
package position

import (
	"github.com/tmttn/chess-sub000/internal/bitops"
	"github.com/tmttn/chess-sub000/internal/zobristkeys"
	"github.com/tmttn/chess-sub000/piece"
)

// Bitboard indices: 0-11 are (piece*2+color) piece boards, 12 is white
// occupancy, 13 is black occupancy, 14 is total occupancy.
const (
	idxWhiteOccupancy = 12
	idxBlackOccupancy = 13
	idxOccupancy      = 14
	numBitboards      = 15
)

// boardIndex returns the bitboard slot for a (color, piece) pair.
func boardIndex(c piece.Color, p piece.Piece) int { return int(p)*2 + int(c) }

// occupancyIndex returns the per-color occupancy slot.
func occupancyIndex(c piece.Color) int {
	if c == piece.White {
		return idxWhiteOccupancy
	}
	return idxBlackOccupancy
}

// Position is a value type: copying it copies the whole board state, which
// is the basis for the engine's copy-make approach to move application and
// legality filtering.
type Position struct {
	Bitboards      [numBitboards]uint64
	Side           piece.Color
	Castling       piece.CastlingRights
	EPTarget       piece.Square
	HalfmoveClock  int
	FullmoveNumber int

	// Hash is the position's Zobrist key, maintained incrementally by place,
	// remove, and MakeMove. It is not one of the Bitboards slots; it exists
	// purely for repetition detection and transposition lookups, so copying
	// a Position (the basis of copy-make) carries a correct hash for free.
	Hash uint64
}

// PieceBB returns the bitboard for a single (color, piece) pair.
func (p *Position) PieceBB(c piece.Color, pc piece.Piece) uint64 {
	return p.Bitboards[boardIndex(c, pc)]
}

// Occupancy returns the combined occupancy of one color.
func (p *Position) Occupancy(c piece.Color) uint64 { return p.Bitboards[occupancyIndex(c)] }

// AllOccupancy returns the union of every piece on the board.
func (p *Position) AllOccupancy() uint64 { return p.Bitboards[idxOccupancy] }

// PieceAt returns the (color, piece) occupying sq, or (White, piece.None) if
// the square is empty.
func (p *Position) PieceAt(sq piece.Square) (piece.Color, piece.Piece) {
	bb := sq.Bitboard()
	for pc := piece.Pawn; pc < piece.NumPieces; pc++ {
		if p.Bitboards[boardIndex(piece.White, pc)]&bb != 0 {
			return piece.White, pc
		}
		if p.Bitboards[boardIndex(piece.Black, pc)]&bb != 0 {
			return piece.Black, pc
		}
	}
	return piece.White, piece.None
}

// King returns the square of the given color's king.
func (p *Position) King(c piece.Color) piece.Square {
	return piece.Square(bitops.LSB(p.PieceBB(c, piece.King)))
}

func (p *Position) place(c piece.Color, pc piece.Piece, sq piece.Square) {
	bb := sq.Bitboard()
	idx := boardIndex(c, pc)
	p.Bitboards[idx] |= bb
	p.Bitboards[occupancyIndex(c)] |= bb
	p.Bitboards[idxOccupancy] |= bb
	p.Hash ^= zobristkeys.Piece(idx, int(sq))
}

func (p *Position) remove(c piece.Color, pc piece.Piece, sq piece.Square) {
	bb := sq.Bitboard()
	idx := boardIndex(c, pc)
	p.Bitboards[idx] &^= bb
	p.Bitboards[occupancyIndex(c)] &^= bb
	p.Bitboards[idxOccupancy] &^= bb
	p.Hash ^= zobristkeys.Piece(idx, int(sq))
}

// cornerRight maps a rook's home square to the castling right it guards.
var cornerRight = map[piece.Square]piece.CastlingRights{
	piece.A1: piece.WhiteQueenSide,
	piece.H1: piece.WhiteKingSide,
	piece.A8: piece.BlackQueenSide,
	piece.H8: piece.BlackKingSide,
}

// MakeMove applies m to the position in place, incrementally maintaining
// Hash alongside the bitboards. The caller must ensure m is at least
// pseudo-legal for the position's side to move; MakeMove does not validate
// legality (that is movegen's job).
func (p *Position) MakeMove(m piece.Move) {
	from, to := m.From(), m.To()
	side := p.Side
	opp := side.Opposite()

	_, moved := p.PieceAt(from)
	_, captured := p.PieceAt(to)

	// XOR out the castling/en-passant keys for the state being left; the
	// piece keys are handled inside place/remove below, and the matching
	// XOR-in for the post-move state happens once the new state is known.
	if p.EPTarget != piece.NoSquare {
		p.Hash ^= zobristkeys.EPFile(p.EPTarget.File())
	}
	p.Hash ^= zobristkeys.Castling(int(p.Castling))

	p.remove(side, moved, from)

	irreversible := moved == piece.Pawn
	if captured != piece.None {
		p.remove(opp, captured, to)
		irreversible = true
	}

	switch m.Kind() {
	case piece.EnPassant:
		p.place(side, moved, to)
		var capturedPawnSq piece.Square
		if side == piece.White {
			capturedPawnSq = to - 8
		} else {
			capturedPawnSq = to + 8
		}
		p.remove(opp, piece.Pawn, capturedPawnSq)

	case piece.Castle:
		p.place(side, moved, to)
		switch to {
		case piece.G1:
			p.remove(piece.White, piece.Rook, piece.H1)
			p.place(piece.White, piece.Rook, piece.F1)
		case piece.C1:
			p.remove(piece.White, piece.Rook, piece.A1)
			p.place(piece.White, piece.Rook, piece.D1)
		case piece.G8:
			p.remove(piece.Black, piece.Rook, piece.H8)
			p.place(piece.Black, piece.Rook, piece.F8)
		case piece.C8:
			p.remove(piece.Black, piece.Rook, piece.A8)
			p.place(piece.Black, piece.Rook, piece.D8)
		}

	case piece.Promotion:
		p.place(side, m.Promo().Piece(), to)

	default: // Quiet (covers normal quiet moves, captures and double pushes).
		p.place(side, moved, to)
	}

	// Castling rights: a king move clears both of its side's rights; a rook
	// moving from, or a piece capturing on, one of the four corners clears
	// just that corner's right.
	if moved == piece.King {
		if side == piece.White {
			p.Castling &^= piece.WhiteKingSide | piece.WhiteQueenSide
		} else {
			p.Castling &^= piece.BlackKingSide | piece.BlackQueenSide
		}
	}
	if r, ok := cornerRight[from]; ok {
		p.Castling &^= r
	}
	if r, ok := cornerRight[to]; ok {
		p.Castling &^= r
	}

	// En-passant target is only set for a double pawn push, and only when
	// an opposing pawn could actually capture there — otherwise two
	// positions differing only in an unreachable ep square would hash
	// differently and break repetition detection (see zobrist package).
	p.EPTarget = piece.NoSquare
	if moved == piece.Pawn {
		diff := int(to) - int(from)
		if diff == 16 || diff == -16 {
			target := from + piece.Square(diff/2)
			if opposingPawnCanCapture(p, to, side) {
				p.EPTarget = target
			}
		}
	}

	p.Hash ^= zobristkeys.Castling(int(p.Castling))
	if p.EPTarget != piece.NoSquare {
		p.Hash ^= zobristkeys.EPFile(p.EPTarget.File())
	}

	if irreversible {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}

	if side == piece.Black {
		p.FullmoveNumber++
	}

	p.Side = opp
	p.Hash ^= zobristkeys.Color()
}

// opposingPawnCanCapture reports whether an opposing pawn stands immediately
// beside pushedTo (the double-pushed pawn's destination), i.e. whether an
// en-passant capture is actually possible next move.
func opposingPawnCanCapture(p *Position, pushedTo piece.Square, mover piece.Color) bool {
	opp := mover.Opposite()
	file := pushedTo.File()
	rank := pushedTo.Rank()
	for _, df := range [2]int{-1, 1} {
		f := file + df
		if f < 0 || f > 7 {
			continue
		}
		sq := piece.Square(rank*8 + f)
		if p.PieceBB(opp, piece.Pawn)&sq.Bitboard() != 0 {
			return true
		}
	}
	return false
}
