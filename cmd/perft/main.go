// Command perft runs the node-counting correctness oracle against a suite
// of FEN positions and known-good depth counts, optionally dividing a
// single position's root moves to localize a move generator bug.
//
// Grounded on the teacher engine's internal/perft.go and
// internal/perft/perft.go main() (flag-driven depth/verbose/profile
// options, per-root-move divide output).
package main

import (
	"flag"
	"os"
	"runtime/pprof"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tmttn/chess-sub000/internal/boardfmt"
	"github.com/tmttn/chess-sub000/perft"
	"github.com/tmttn/chess-sub000/position"
)

var log = logging.MustGetLogger("perft")

var out = message.NewPrinter(language.English)

// Suite is the TOML layout of a perft test suite file: a list of FEN
// positions, each with the expected node count at a given depth.
type Suite struct {
	Case []SuiteCase `toml:"case"`
}

// SuiteCase is one FEN/depth/expected-node-count entry in a Suite.
type SuiteCase struct {
	FEN      string `toml:"fen"`
	Depth    int    `toml:"depth"`
	Expected int    `toml:"expected"`
}

func main() {
	fen := flag.String("fen", position.StartFEN, "FEN of the position to test")
	depth := flag.Int("depth", 4, "perft depth")
	divide := flag.Bool("divide", false, "print per-root-move subtree counts")
	suitePath := flag.String("suite", "", "TOML suite file to run instead of a single position")
	cpuprofile := flag.String("cpuprofile", "", "file to write a CPU profile to")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatalf("creating cpu profile: %v", err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *suitePath != "" {
		runSuite(*suitePath)
		return
	}

	pos, err := position.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("parsing fen: %v", err)
	}

	log.Infof("root position:\n%s", boardfmt.Position(&pos))

	if *divide {
		runDivide(pos, *depth)
		return
	}

	start := time.Now()
	nodes := perft.Count(pos, *depth)
	elapsed := time.Since(start)

	out.Printf("depth %d: %d nodes\n", *depth, nodes)
	log.Infof("elapsed: %s", elapsed)
}

func runDivide(pos position.Position, depth int) {
	entries := perft.Divide(pos, depth)
	total := 0
	for _, e := range entries {
		out.Printf("%s %d\n", e.Move, e.Nodes)
		total += e.Nodes
	}
	out.Printf("total: %d\n", total)
}

func runSuite(path string) {
	var suite Suite
	if _, err := toml.DecodeFile(path, &suite); err != nil {
		log.Fatalf("decoding suite %s: %v", path, err)
	}

	failures := 0
	for _, c := range suite.Case {
		pos, err := position.ParseFEN(c.FEN)
		if err != nil {
			log.Errorf("%s: invalid fen: %v", c.FEN, err)
			failures++
			continue
		}

		start := time.Now()
		nodes := perft.Count(pos, c.Depth)
		elapsed := time.Since(start)

		if nodes != c.Expected {
			log.Errorf("FAIL %s depth %d: got %d, want %d (%s)", c.FEN, c.Depth, nodes, c.Expected, elapsed)
			failures++
			continue
		}
		log.Infof("ok %s depth %d: %d nodes (%s)", c.FEN, c.Depth, nodes, elapsed)
	}

	if failures > 0 {
		log.Fatalf("%d suite case(s) failed", failures)
	}
}
