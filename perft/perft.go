// Package perft counts leaf nodes of the legal move-generation tree to a
// given depth — the standard correctness oracle for a move generator.
// Grounded on the teacher engine's internal/perft.go (the copy-make
// recursion) and internal/perft/perft.go (the per-root-move divide used
// to localize a generator bug to a specific branch).
package perft

import (
	"github.com/tmttn/chess-sub000/movegen"
	"github.com/tmttn/chess-sub000/position"
	"github.com/tmttn/chess-sub000/uci"
)

// Count walks the legal move tree from pos to depth plies and returns the
// number of leaf nodes. Count(pos, 0) is 1 by convention (the position
// itself is the only "leaf").
func Count(pos position.Position, depth int) int {
	if depth == 0 {
		return 1
	}

	legal := movegen.Legal(pos)
	if depth == 1 {
		return legal.Len
	}

	nodes := 0
	for _, m := range legal.Slice() {
		next := pos
		next.MakeMove(m)
		nodes += Count(next, depth-1)
	}
	return nodes
}

// DivideEntry is one root move's subtree node count, as produced by Divide.
type DivideEntry struct {
	Move  string
	Nodes int
}

// Divide returns, for every legal root move, the node count of the subtree
// rooted at that move — used to find which specific root move a generator
// bug hides behind, by diffing against a known-good engine's divide output.
func Divide(pos position.Position, depth int) []DivideEntry {
	legal := movegen.Legal(pos)
	entries := make([]DivideEntry, 0, legal.Len)

	for _, m := range legal.Slice() {
		next := pos
		next.MakeMove(m)
		entries = append(entries, DivideEntry{
			Move:  uci.Encode(m),
			Nodes: Count(next, depth-1),
		})
	}
	return entries
}
