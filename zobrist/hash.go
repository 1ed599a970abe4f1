package zobrist

import (
	"github.com/tmttn/chess-sub000/internal/bitops"
	"github.com/tmttn/chess-sub000/piece"
	"github.com/tmttn/chess-sub000/position"
)

// Hash computes a position's Zobrist key from scratch. position.Position
// maintains its own Hash field incrementally inside MakeMove (and ParseFEN
// seeds it without calling this function); this function exists for
// verifying that incremental maintenance hasn't drifted (see zobrist_test.go).
func Hash(p *position.Position) uint64 {
	var key uint64
	for pc := piece.Pawn; pc < piece.NumPieces; pc++ {
		for _, c := range [2]piece.Color{piece.White, piece.Black} {
			bb := p.PieceBB(c, pc)
			for bb != 0 {
				sq := bitops.PopLSB(&bb)
				key ^= PieceKey(int(pc)*2+int(c), sq)
			}
		}
	}

	if p.EPTarget != piece.NoSquare {
		key ^= EPFileKey(p.EPTarget.File())
	}

	key ^= CastlingKey(int(p.Castling))

	if p.Side == piece.Black {
		key ^= ColorKey()
	}

	return key
}
