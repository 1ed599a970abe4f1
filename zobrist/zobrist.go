// Package zobrist provides from-scratch Zobrist hashing, used to verify that
// position.Position.MakeMove's incremental maintenance hasn't drifted
// (position.ParseFEN seeds a new Position's hash itself, from the same keys). The key tables themselves live in
// internal/zobristkeys (imported by both this package and position, so
// position can maintain its Hash field incrementally without importing
// zobrist and creating a cycle).
//
// Grounded on the teacher engine's zobrist.go (the piece/en-passant/
// castling/color key layout and the XOR-fold hash function).
package zobrist

import "github.com/tmttn/chess-sub000/internal/zobristkeys"

// PieceKey returns the key for a (piece*2+color) board slot at sq.
func PieceKey(boardIndex, sq int) uint64 { return zobristkeys.Piece(boardIndex, sq) }

// EPFileKey returns the key for an en-passant target on file f (0-7).
func EPFileKey(file int) uint64 { return zobristkeys.EPFile(file) }

// CastlingKey returns the key for a castling-rights nibble (0-15).
func CastlingKey(rights int) uint64 { return zobristkeys.Castling(rights) }

// ColorKey is XORed in when black is the side to move.
func ColorKey() uint64 { return zobristkeys.Color() }
