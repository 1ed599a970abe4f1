// Package boardfmt pretty-prints boards and bitboards for debugging and
// test failure output. Grounded on the teacher engine's format/format.go
// and cli/cli.go (the Unicode-piece rank-by-rank board renderer).
package boardfmt

import (
	"strings"

	"github.com/tmttn/chess-sub000/piece"
	"github.com/tmttn/chess-sub000/position"
)

var pieceSymbols = [12]rune{
	'♙', '♟', '♘', '♞', '♗', '♝',
	'♖', '♜', '♕', '♛', '♔', '♚',
}

// Bitboard renders a single bitboard as an 8x8 grid, marking set squares
// with pc's Unicode glyph.
func Bitboard(bb uint64, c piece.Color, pc piece.Piece) string {
	var b strings.Builder
	symbol := pieceSymbols[int(pc)*2+int(c)]

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + 1 + '0')
		b.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := uint64(1) << uint(8*rank+file)
			ch := symbol
			if bb&sq == 0 {
				ch = '.'
			}
			b.WriteRune(ch)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")
	return b.String()
}

// Position renders the full board plus side-to-move, en-passant target,
// and castling rights, in the teacher's layout.
func Position(p *position.Position) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + 1 + '0')
		b.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := piece.Square(rank*8 + file)
			c, pc := p.PieceAt(sq)
			symbol := rune('.')
			if pc != piece.None {
				symbol = pieceSymbols[int(pc)*2+int(c)]
			}
			b.WriteRune(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\nActive color: ")

	if p.Side == piece.White {
		b.WriteString("white\nEn passant: ")
	} else {
		b.WriteString("black\nEn passant: ")
	}

	if p.EPTarget == piece.NoSquare {
		b.WriteString("none\nCastling rights: ")
	} else {
		b.WriteString(p.EPTarget.String())
		b.WriteString("\nCastling rights: ")
	}

	if p.Castling.Has(piece.WhiteKingSide) {
		b.WriteByte('K')
	}
	if p.Castling.Has(piece.WhiteQueenSide) {
		b.WriteByte('Q')
	}
	if p.Castling.Has(piece.BlackKingSide) {
		b.WriteByte('k')
	}
	if p.Castling.Has(piece.BlackQueenSide) {
		b.WriteByte('q')
	}
	b.WriteByte('\n')

	return b.String()
}
