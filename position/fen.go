package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tmttn/chess-sub000/internal/bitops"
	"github.com/tmttn/chess-sub000/internal/zobristkeys"
	"github.com/tmttn/chess-sub000/piece"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FenError reports why a FEN string could not be parsed. Unlike the teacher
// engine's ParseFEN (which panics on malformed input, trusting its caller),
// spec.md's FEN boundary requires rejecting bad input with a typed error —
// see DESIGN.md.
type FenError struct {
	Reason string
}

func (e *FenError) Error() string { return "invalid fen: " + e.Reason }

var pieceLetters = map[byte]struct {
	c piece.Color
	p piece.Piece
}{
	'P': {piece.White, piece.Pawn}, 'N': {piece.White, piece.Knight},
	'B': {piece.White, piece.Bishop}, 'R': {piece.White, piece.Rook},
	'Q': {piece.White, piece.Queen}, 'K': {piece.White, piece.King},
	'p': {piece.Black, piece.Pawn}, 'n': {piece.Black, piece.Knight},
	'b': {piece.Black, piece.Bishop}, 'r': {piece.Black, piece.Rook},
	'q': {piece.Black, piece.Queen}, 'k': {piece.Black, piece.King},
}

// ParseFEN parses a FEN string into a Position. The board is not checked
// for reachability from the initial position; only the six-field structure,
// digit/letter validity, side-to-move and castling letters, king presence,
// en-passant rank, and the two clock values are validated.
func ParseFEN(fen string) (Position, error) {
	var p Position
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return p, &FenError{Reason: fmt.Sprintf("expected 6 fields, got %d", len(fields))}
	}

	if err := parseBoard(&p, fields[0]); err != nil {
		return Position{}, err
	}

	switch fields[1] {
	case "w":
		p.Side = piece.White
	case "b":
		p.Side = piece.Black
	default:
		return Position{}, &FenError{Reason: "side to move must be 'w' or 'b'"}
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				p.Castling |= piece.WhiteKingSide
			case 'Q':
				p.Castling |= piece.WhiteQueenSide
			case 'k':
				p.Castling |= piece.BlackKingSide
			case 'q':
				p.Castling |= piece.BlackQueenSide
			default:
				return Position{}, &FenError{Reason: "invalid castling rights character"}
			}
		}
	}

	if fields[3] == "-" {
		p.EPTarget = piece.NoSquare
	} else {
		sq, ok := piece.ParseSquare(fields[3])
		if !ok {
			return Position{}, &FenError{Reason: "invalid en-passant square"}
		}
		if sq.Rank() != 2 && sq.Rank() != 5 {
			return Position{}, &FenError{Reason: "en-passant square must be on rank 3 or 6"}
		}
		p.EPTarget = sq
	}

	half, err := strconv.Atoi(fields[4])
	if err != nil || half < 0 {
		return Position{}, &FenError{Reason: "invalid halfmove clock"}
	}
	p.HalfmoveClock = half

	full, err := strconv.Atoi(fields[5])
	if err != nil || full < 1 {
		return Position{}, &FenError{Reason: "invalid fullmove number"}
	}
	p.FullmoveNumber = full

	if p.PieceBB(piece.White, piece.King) == 0 || p.PieceBB(piece.Black, piece.King) == 0 {
		return Position{}, &FenError{Reason: "missing king"}
	}
	if bitops.PopCount(p.PieceBB(piece.White, piece.King)) != 1 ||
		bitops.PopCount(p.PieceBB(piece.Black, piece.King)) != 1 {
		return Position{}, &FenError{Reason: "each side must have exactly one king"}
	}

	// parseBoard already folded the piece keys into p.Hash via place; add the
	// castling/en-passant/side-to-move contributions now that they're final.
	p.Hash ^= zobristkeys.Castling(int(p.Castling))
	if p.EPTarget != piece.NoSquare {
		p.Hash ^= zobristkeys.EPFile(p.EPTarget.File())
	}
	if p.Side == piece.Black {
		p.Hash ^= zobristkeys.Color()
	}

	return p, nil
}

func parseBoard(p *Position, board string) error {
	ranks := strings.Split(board, "/")
	if len(ranks) != 8 {
		return &FenError{Reason: "board must have 8 ranks"}
	}

	for r := 0; r < 8; r++ {
		rankStr := ranks[r]
		rankIdx := 7 - r
		file := 0
		for i := 0; i < len(rankStr); i++ {
			ch := rankStr[i]
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				pc, ok := pieceLetters[ch]
				if !ok {
					return &FenError{Reason: fmt.Sprintf("unknown piece letter %q", ch)}
				}
				if file > 7 {
					return &FenError{Reason: "rank has too many squares"}
				}
				sq := piece.Square(rankIdx*8 + file)
				p.place(pc.c, pc.p, sq)
				file++
			}
		}
		if file != 8 {
			return &FenError{Reason: fmt.Sprintf("rank %d does not sum to 8 squares", 8-r)}
		}
	}
	return nil
}

// String serializes the Position back into a FEN string.
func (p *Position) String() string {
	var b strings.Builder
	b.Grow(64)

	b.WriteString(serializeBoard(p))
	b.WriteByte(' ')

	if p.Side == piece.White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}
	b.WriteByte(' ')

	none := true
	if p.Castling.Has(piece.WhiteKingSide) {
		b.WriteByte('K')
		none = false
	}
	if p.Castling.Has(piece.WhiteQueenSide) {
		b.WriteByte('Q')
		none = false
	}
	if p.Castling.Has(piece.BlackKingSide) {
		b.WriteByte('k')
		none = false
	}
	if p.Castling.Has(piece.BlackQueenSide) {
		b.WriteByte('q')
		none = false
	}
	if none {
		b.WriteByte('-')
	}
	b.WriteByte(' ')

	if p.EPTarget == piece.NoSquare {
		b.WriteByte('-')
	} else {
		b.WriteString(p.EPTarget.String())
	}
	b.WriteByte(' ')

	b.WriteString(strconv.Itoa(p.HalfmoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.FullmoveNumber))

	return b.String()
}

func serializeBoard(p *Position) string {
	var board [64]byte
	for pc := piece.Pawn; pc < piece.NumPieces; pc++ {
		for _, c := range [2]piece.Color{piece.White, piece.Black} {
			bb := p.PieceBB(c, pc)
			for bb != 0 {
				sq := bitops.PopLSB(&bb)
				board[sq] = piece.Symbols[int(pc)*2+int(c)]
			}
		}
	}

	var b strings.Builder
	b.Grow(72)
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := r*8 + f
			if board[sq] == 0 {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte('0' + byte(empty))
				empty = 0
			}
			b.WriteByte(board[sq])
		}
		if empty > 0 {
			b.WriteByte('0' + byte(empty))
		}
		if r != 0 {
			b.WriteByte('/')
		}
	}
	return b.String()
}
