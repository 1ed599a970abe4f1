// Package zobristkeys holds the random key tables behind Zobrist hashing.
// It has no dependency on position so both position (incremental maintenance
// inside MakeMove) and zobrist (from-scratch verification) can import it
// without a cycle.
//
// Grounded on the teacher engine's zobrist.go (the piece/en-passant/
// castling/color key layout), with one deliberate deviation: the teacher
// seeds its keys with the global, non-deterministic math/rand/v2 source, so
// two runs of the same program hash the same position differently.
// Repetition detection and any test that hashes a known FEN need a stable
// hash across runs, so this package seeds its own rand.Rand from a fixed
// two-word seed instead.
package zobristkeys

import "math/rand/v2"

// seed1/seed2 are arbitrary fixed constants — any two values work, since all
// that matters is that every process derives the same key table.
const (
	seed1 uint64 = 0x9E3779B97F4A7C15
	seed2 uint64 = 0xC2B2AE3D27D4EB4F
)

var (
	pieceKeys    [12][64]uint64
	epFileKeys   [8]uint64
	castlingKeys [16]uint64
	colorKey     uint64
)

func init() {
	r := rand.New(rand.NewPCG(seed1, seed2))
	for pc := 0; pc < 12; pc++ {
		for sq := 0; sq < 64; sq++ {
			pieceKeys[pc][sq] = r.Uint64()
		}
	}
	for f := 0; f < 8; f++ {
		epFileKeys[f] = r.Uint64()
	}
	for c := 0; c < 16; c++ {
		castlingKeys[c] = r.Uint64()
	}
	colorKey = r.Uint64()
}

// Piece returns the key for a (piece*2+color) board slot at sq, matching
// position.boardIndex's layout.
func Piece(boardIndex, sq int) uint64 { return pieceKeys[boardIndex][sq] }

// EPFile returns the key for an en-passant target on file f (0-7). Only the
// file matters: two positions whose only difference is the rank half of the
// ep square never actually occur, since ep targets always sit on rank 3 or 6.
func EPFile(file int) uint64 { return epFileKeys[file] }

// Castling returns the key for a castling-rights nibble (0-15).
func Castling(rights int) uint64 { return castlingKeys[rights] }

// Color is XORed in when black is the side to move.
func Color() uint64 { return colorKey }
