// Package san converts moves to and from Standard Algebraic Notation.
// Generation is grounded on the teacher engine's san.go (Move2SAN's
// disambiguation-by-file-then-rank scheme); parsing has no teacher
// precedent and is written fresh against the notation table, validated by
// matching the parsed intent against the position's legal moves.
package san

import (
	"fmt"
	"strings"

	"github.com/tmttn/chess-sub000/movegen"
	"github.com/tmttn/chess-sub000/piece"
	"github.com/tmttn/chess-sub000/position"
)

// InvalidSanError reports why a SAN string could not be decoded: either it
// is malformed, or it is well-formed but matches zero or more than one of
// the position's legal moves.
type InvalidSanError struct {
	SAN    string
	Reason string
}

func (e *InvalidSanError) Error() string {
	return fmt.Sprintf("invalid san %q: %s", e.SAN, e.Reason)
}

var pieceLetter = map[piece.Piece]byte{
	piece.Knight: 'N',
	piece.Bishop: 'B',
	piece.Rook:   'R',
	piece.Queen:  'Q',
	piece.King:   'K',
}

var letterPiece = map[byte]piece.Piece{
	'N': piece.Knight,
	'B': piece.Bishop,
	'R': piece.Rook,
	'Q': piece.Queen,
	'K': piece.King,
}

var promoLetter = map[piece.PromoPiece]byte{
	piece.PromoKnight: 'N',
	piece.PromoBishop: 'B',
	piece.PromoRook:   'R',
	piece.PromoQueen:  'Q',
}

var letterPromo = map[byte]piece.PromoPiece{
	'N': piece.PromoKnight,
	'B': piece.PromoBishop,
	'R': piece.PromoRook,
	'Q': piece.PromoQueen,
}

// Encode renders m, played from pos (before the move is applied), as SAN.
// legalMoves must be the full legal move list for pos, used to resolve
// disambiguation; check and checkmate report the status of the position
// after m has been applied.
func Encode(m piece.Move, pos *position.Position, legalMoves piece.MoveList, check, checkmate bool) string {
	if m.Kind() == piece.Castle {
		if m.To() == piece.G1 || m.To() == piece.G8 {
			return "O-O"
		}
		return "O-O-O"
	}

	_, moved := pos.PieceAt(m.From())
	_, captured := pos.PieceAt(m.To())
	isCapture := captured != piece.None || m.Kind() == piece.EnPassant

	var b strings.Builder
	b.Grow(8)

	if l, ok := pieceLetter[moved]; ok {
		b.WriteByte(l)
		b.WriteString(disambiguation(m, pos, legalMoves, moved))
	}

	if isCapture {
		if moved == piece.Pawn {
			b.WriteByte(fileLetter(m.From().File()))
		}
		b.WriteByte('x')
	}

	b.WriteString(m.To().String())

	if m.Kind() == piece.Promotion {
		b.WriteByte('=')
		b.WriteByte(promoLetter[m.Promo()])
	}

	switch {
	case checkmate:
		b.WriteByte('#')
	case check:
		b.WriteByte('+')
	}

	return b.String()
}

// disambiguation returns the file/rank (or both) needed to distinguish m
// from other legal moves of the same piece type landing on the same
// square, per the file-first-then-rank-then-both rule.
func disambiguation(m piece.Move, pos *position.Position, legalMoves piece.MoveList, moved piece.Piece) string {
	if moved == piece.Pawn || moved == piece.King {
		return ""
	}

	sameFile, sameRank, ambiguous := false, false, false
	for _, other := range legalMoves.Slice() {
		if other.From() == m.From() || other.To() != m.To() {
			continue
		}
		_, otherPiece := pos.PieceAt(other.From())
		if otherPiece != moved {
			continue
		}
		ambiguous = true
		if other.From().File() == m.From().File() {
			sameFile = true
		}
		if other.From().Rank() == m.From().Rank() {
			sameRank = true
		}
	}
	if !ambiguous {
		return ""
	}

	switch {
	case !sameFile:
		return string(fileLetter(m.From().File()))
	case !sameRank:
		return rankDigit(m.From().Rank())
	default:
		return m.From().String()
	}
}

func fileLetter(f int) byte { return 'a' + byte(f) }
func rankDigit(r int) string {
	return string(rune('1' + r))
}

// Decode parses a SAN string against pos, matching it to exactly one of
// pos's legal moves. Returns an error if san is malformed or matches zero
// or more than one legal move.
func Decode(san string, pos *position.Position) (piece.Move, error) {
	s := strings.TrimRight(san, "+#")
	legal := movegen.Legal(*pos)

	if s == "O-O" || s == "O-O-O" {
		kingTo := piece.G1
		if s == "O-O-O" {
			kingTo = piece.C1
		}
		if pos.Side == piece.Black {
			if s == "O-O" {
				kingTo = piece.G8
			} else {
				kingTo = piece.C8
			}
		}
		for _, m := range legal.Slice() {
			if m.Kind() == piece.Castle && m.To() == kingTo {
				return m, nil
			}
		}
		return 0, &InvalidSanError{SAN: san, Reason: "no legal castling move matches"}
	}

	var promo piece.PromoPiece
	hasPromo := false
	if i := strings.IndexByte(s, '='); i != -1 {
		if i+1 >= len(s) {
			return 0, &InvalidSanError{SAN: san, Reason: "invalid promotion piece"}
		}
		p, ok := letterPromo[s[i+1]]
		if !ok {
			return 0, &InvalidSanError{SAN: san, Reason: "invalid promotion piece"}
		}
		promo, hasPromo = p, true
		s = s[:i]
	}

	if len(s) == 0 {
		return 0, &InvalidSanError{SAN: san, Reason: "malformed move"}
	}
	wantPiece := piece.Pawn
	if p, ok := letterPiece[s[0]]; ok {
		wantPiece = p
		s = s[1:]
	}

	s = strings.Replace(s, "x", "", 1)
	if len(s) < 2 {
		return 0, &InvalidSanError{SAN: san, Reason: "malformed move"}
	}

	destStr := s[len(s)-2:]
	dest, ok := piece.ParseSquare(destStr)
	if !ok {
		return 0, &InvalidSanError{SAN: san, Reason: "invalid destination square"}
	}
	disambig := s[:len(s)-2]

	var match piece.Move
	found := 0
	for _, m := range legal.Slice() {
		if m.To() != dest {
			continue
		}
		_, moved := pos.PieceAt(m.From())
		if moved != wantPiece {
			continue
		}
		if hasPromo && (m.Kind() != piece.Promotion || m.Promo() != promo) {
			continue
		}
		if !hasPromo && m.Kind() == piece.Promotion {
			continue
		}
		if !matchesDisambiguation(m.From(), disambig) {
			continue
		}
		match = m
		found++
	}

	switch found {
	case 0:
		return 0, &InvalidSanError{SAN: san, Reason: "matches no legal move"}
	case 1:
		return match, nil
	default:
		return 0, &InvalidSanError{SAN: san, Reason: "ambiguous among legal moves"}
	}
}

func matchesDisambiguation(from piece.Square, disambig string) bool {
	if disambig == "" {
		return true
	}
	if len(disambig) == 2 {
		sq, ok := piece.ParseSquare(disambig)
		return ok && sq == from
	}
	c := disambig[0]
	if c >= 'a' && c <= 'h' {
		return from.File() == int(c-'a')
	}
	if c >= '1' && c <= '8' {
		return from.Rank() == int(c-'1')
	}
	return false
}
