// Package piece contains the primitive chess value types shared across the
// engine: squares, colors, pieces, castling rights, and the compact move
// encoding. None of these types own any behavior beyond what can be derived
// from their bit layout.
package piece

// Color identifies a side. ColorBoth is a convenience value used when
// indexing tables that care about "either side" rather than a concrete one.
type Color int

const (
	White Color = iota
	Black
	ColorBoth
)

// Opposite returns the other color.
func (c Color) Opposite() Color { return c ^ 1 }

// Piece enumerates the six piece types. It is not color-specific; bitboard
// indexing by (Color, Piece) is handled by the position package.
type Piece int

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieces
)

// None marks the absence of a piece, e.g. when probing an empty square.
const None Piece = -1

// Symbols maps a (color, piece) pair, encoded as piece*2+color, to its FEN
// letter. White pieces are uppercase, black lowercase.
var Symbols = [12]byte{
	'P', 'p', 'N', 'n', 'B', 'b',
	'R', 'r', 'Q', 'q', 'K', 'k',
}

// Square is a board square index, a1=0 ... h8=63.
type Square int

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NoSquare marks the absence of a square, e.g. no en-passant target.
const NoSquare Square = -1

// File returns the 0-based file (a=0 .. h=7).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the 0-based rank (1st rank = 0 .. 8th rank = 7).
func (s Square) Rank() int { return int(s) / 8 }

// Bitboard returns the single-bit bitboard for the square.
func (s Square) Bitboard() uint64 { return 1 << uint(s) }

// names maps each square to its algebraic string.
var names = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// String returns the algebraic name of the square ("e4").
func (s Square) String() string { return names[s] }

// ParseSquare parses an algebraic square string ("e4"). Returns NoSquare and
// false if the string is not a valid square.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, false
	}
	return Square(int(s[0]-'a') + int(s[1]-'1')*8), true
}

// CastlingRights tracks the four independent castling privileges as bit
// flags so they can be cleared/tested with plain bitwise operations.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

// Has reports whether all the given rights are currently held.
func (c CastlingRights) Has(r CastlingRights) bool { return c&r == r }
