// Package uci converts moves to and from long algebraic notation, the move
// format used on UCI's "position ... moves ..." line. Emit is grounded on
// the teacher engine's uci.go (Move2UCI); Parse has no teacher precedent
// and is written fresh, matching the parsed square pair (and optional
// promotion letter) against the position's legal moves.
package uci

import (
	"fmt"
	"strings"

	"github.com/tmttn/chess-sub000/movegen"
	"github.com/tmttn/chess-sub000/piece"
	"github.com/tmttn/chess-sub000/position"
)

// InvalidUciError reports why a long-algebraic move string could not be
// decoded: either it is malformed, or it is well-formed but matches none of
// the position's legal moves.
type InvalidUciError struct {
	UCI    string
	Reason string
}

func (e *InvalidUciError) Error() string {
	return fmt.Sprintf("invalid uci move %q: %s", e.UCI, e.Reason)
}

var promoLetter = map[piece.PromoPiece]byte{
	piece.PromoKnight: 'n',
	piece.PromoBishop: 'b',
	piece.PromoRook:   'r',
	piece.PromoQueen:  'q',
}

var letterPromo = map[byte]piece.PromoPiece{
	'n': piece.PromoKnight,
	'b': piece.PromoBishop,
	'r': piece.PromoRook,
	'q': piece.PromoQueen,
}

// Encode renders m as long algebraic notation, e.g. "e2e4", "e7e8q".
func Encode(m piece.Move) string {
	var b strings.Builder
	b.Grow(5)
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.Kind() == piece.Promotion {
		b.WriteByte(promoLetter[m.Promo()])
	}
	return b.String()
}

// Parse decodes a long algebraic move string against pos, matching it to
// one of pos's legal moves.
func Parse(s string, pos *position.Position) (piece.Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return 0, &InvalidUciError{UCI: s, Reason: "malformed move"}
	}

	from, ok := piece.ParseSquare(s[0:2])
	if !ok {
		return 0, &InvalidUciError{UCI: s, Reason: "invalid origin square"}
	}
	to, ok := piece.ParseSquare(s[2:4])
	if !ok {
		return 0, &InvalidUciError{UCI: s, Reason: "invalid destination square"}
	}

	var promo piece.PromoPiece
	hasPromo := false
	if len(s) == 5 {
		p, ok := letterPromo[s[4]]
		if !ok {
			return 0, &InvalidUciError{UCI: s, Reason: "invalid promotion letter"}
		}
		promo, hasPromo = p, true
	}

	legal := movegen.Legal(*pos)
	for _, m := range legal.Slice() {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.Kind() == piece.Promotion {
			if !hasPromo || m.Promo() != promo {
				continue
			}
		} else if hasPromo {
			continue
		}
		return m, nil
	}

	return 0, &InvalidUciError{UCI: s, Reason: "matches no legal move"}
}
