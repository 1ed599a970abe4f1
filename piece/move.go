package piece

// MoveKind classifies a move beyond its from/to squares: whether it is a
// quiet move, a castle, an en-passant capture, or a promotion. Captures
// (other than en passant) and double pawn pushes are not distinct kinds:
// both are Quiet, and the mover/captured pieces and the from/to distance on
// the position determine them, keeping the encoding to 2 bits.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	Castle
	Promotion
	EnPassant
)

// PromoPiece identifies which piece a pawn promotes to. Only meaningful
// when Move.Kind() == Promotion.
type PromoPiece uint8

const (
	PromoKnight PromoPiece = iota
	PromoBishop
	PromoRook
	PromoQueen
)

// Piece returns the promoted-to Piece for a PromoPiece flag.
func (p PromoPiece) Piece() Piece { return Piece(int(p) + int(Knight)) }

/*
Move is a chess move packed into 16 bits:

	bits 0-5:   destination square
	bits 6-11:  origin square
	bits 12-13: promotion piece (meaningful only for Promotion moves)
	bits 14-15: move kind

This mirrors the teacher engine's encoding; it keeps a MoveList cheap to
copy and lets the whole legal-move buffer live on the stack.
*/
type Move uint16

// NewMove builds a quiet/capture/double-push move; captures are implicit
// from whatever piece occupies the destination square on the Position.
func NewMove(from, to Square, kind MoveKind) Move {
	return Move(to) | Move(from)<<6 | Move(kind)<<14
}

// NewPromotion builds a promotion (or capture-promotion) move.
func NewPromotion(from, to Square, promo PromoPiece) Move {
	return Move(to) | Move(from)<<6 | Move(promo)<<12 | Move(Promotion)<<14
}

// From returns the move's origin square.
func (m Move) From() Square { return Square(m >> 6 & 0x3F) }

// To returns the move's destination square.
func (m Move) To() Square { return Square(m & 0x3F) }

// Promo returns the encoded promotion piece flag.
func (m Move) Promo() PromoPiece { return PromoPiece(m >> 12 & 0x3) }

// Kind returns the move's kind.
func (m Move) Kind() MoveKind { return MoveKind(m >> 14 & 0x3) }

// MaxMoves bounds the number of moves in any single legal chess position.
// See https://www.talkchess.com/forum/viewtopic.php?t=61792
const MaxMoves = 218

// MoveList is a fixed-capacity move buffer, avoiding heap allocation during
// move generation. The zero value is an empty list ready to use.
type MoveList struct {
	Moves [MaxMoves]Move
	Len   int
}

// Push appends a move to the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Len] = m
	l.Len++
}

// Slice returns the populated prefix of Moves.
func (l *MoveList) Slice() []Move { return l.Moves[:l.Len] }
