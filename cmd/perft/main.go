/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Command perft is the minimal external front-end exercising the CORE end
// to end: it parses a FEN, then either runs the perft leaf counter or one
// of the four search variants against it, printing the result. FEN parsing
// here is just flag handling, not the out-of-scope "front-end" parser the
// specification excludes (§1); this binary owns no move legality, search,
// or position logic of its own.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/frankkopp/forkedge/config"
	"github.com/frankkopp/forkedge/logging"
	"github.com/frankkopp/forkedge/movegen"
	"github.com/frankkopp/forkedge/position"
	"github.com/frankkopp/forkedge/search"
)

func main() {
	configFile := flag.String("config", "", "path to configuration settings file (TOML)")
	fen := flag.String("fen", position.StartFen, "FEN of the position to search or count from")
	depth := flag.Int("depth", 5, "perft/search depth")
	mode := flag.String("mode", "perft", "perft|sequential|ybwc|pvs|parallel")
	threads := flag.Int("threads", 0, "worker pool size for parallel search variants (0 = hardware concurrency)")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to ./cpu.pprof for the duration of the run")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.Setup(*configFile)
	log := logging.GetLog("main")

	pos, err := position.FromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid fen: %v\n", err)
		os.Exit(1)
	}

	if *threads > 0 {
		search.SetNumThreads(*threads)
	}

	switch *mode {
	case "perft":
		p := movegen.NewPerft()
		if err := p.Run(*fen, *depth); err != nil {
			fmt.Fprintf(os.Stderr, "perft failed: %v\n", err)
			os.Exit(1)
		}
	case "sequential":
		pv, score, err := search.Sequential(pos, *depth)
		report(log, pv, score, err)
	case "ybwc":
		pv, score, err := search.YBWC(pos, *depth)
		report(log, pv, score, err)
	case "pvs":
		pv, score, err := search.PVS(pos, *depth)
		report(log, pv, score, err)
	case "parallel":
		pv, score, err := search.Parallel(pos, *depth)
		report(log, pv, score, err)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q (want perft|sequential|ybwc|pvs|parallel)\n", *mode)
		os.Exit(1)
	}
}

func report(log interface{ Infof(string, ...interface{}) }, pv fmt.Stringer, score fmt.Stringer, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "search failed: %v\n", err)
		os.Exit(1)
	}
	log.Infof("score=%s pv=%s", score, pv)
	fmt.Printf("score=%s pv=%s\n", score, pv)
}
