// mist-bench measures the throughput of Offer, Compute and hierarchy
// traversal against a synthetic tree of randomly generated ranges.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/jamplate/mist"
)

// BenchResult is one reported measurement: a named operation, how long
// count repetitions of it took, and an optional human-readable extra.
type BenchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
	Extra    string
}

func (r BenchResult) String() string {
	opsPerSec := 0.0
	if r.Ops > 0 && r.Duration > 0 {
		opsPerSec = float64(r.Ops) / r.Duration.Seconds()
	}
	if r.Extra != "" {
		return fmt.Sprintf("%-32s %12v  (%d ops, %.0f ops/sec) %s", r.Name, r.Duration.Round(time.Microsecond), r.Ops, opsPerSec, r.Extra)
	}
	return fmt.Sprintf("%-32s %12v  (%d ops, %.0f ops/sec)", r.Name, r.Duration.Round(time.Microsecond), r.Ops, opsPerSec)
}

func main() {
	app := &cli.App{
		Name:  "mist-bench",
		Usage: "benchmark Offer/Compute/hierarchy traversal on a synthetic tree",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "count", Value: 20000, Usage: "number of ranges to offer"},
			&cli.Int64Flag{Name: "seed", Value: 1, Usage: "PRNG seed, for reproducible runs"},
			&cli.Uint64Flag{Name: "max-span", Value: 1 << 24, Usage: "root range length; ranges are generated within it"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	count := c.Int("count")
	maxSpan := c.Uint64("max-span")
	rng := rand.New(rand.NewSource(c.Int64("seed")))

	log.Info("starting benchmark", zap.Int("count", count), zap.Uint64("max_span", maxSpan))

	root, err := mist.NewNode(-1, 0, maxSpan, 0)
	if err != nil {
		return fmt.Errorf("create root: %w", err)
	}

	ranges := generateRanges(rng, count, maxSpan)

	var results []BenchResult
	results = append(results, benchOffer(root, ranges))
	results = append(results, benchCompute(root, ranges[:min(len(ranges), 5000)]))
	results = append(results, benchHierarchy(root))
	results = append(results, benchPopAll(root))

	fmt.Println("mist benchmark")
	fmt.Println("==============")
	fmt.Printf("count=%d max-span=%d seed=%d\n\n", count, maxSpan, c.Int64("seed"))
	for _, r := range results {
		fmt.Println(r)
		log.Info("result", zap.String("name", r.Name), zap.Duration("duration", r.Duration), zap.Int("ops", r.Ops))
	}
	return nil
}

func generateRanges(rng *rand.Rand, count int, maxSpan uint64) []mist.Range {
	out := make([]mist.Range, 0, count)
	for i := 0; i < count; i++ {
		offset := rng.Uint64() % maxSpan
		length := uint64(rng.Intn(1000)) + 1
		if offset+length > maxSpan {
			length = maxSpan - offset
		}
		r, err := mist.NewRange(offset, length)
		if err != nil {
			continue
		}
		out = append(out, r)
	}
	return out
}

func benchOffer(root *mist.Node[int], ranges []mist.Range) BenchResult {
	ops, clashes := 0, 0
	start := time.Now()
	for i, r := range ranges {
		n, err := mist.NewNode(i, r.Offset, r.Length, 0)
		if err != nil {
			continue
		}
		if err := root.Offer(n); err != nil {
			clashes++
			continue
		}
		ops++
	}
	return BenchResult{
		Name:     "Offer",
		Duration: time.Since(start),
		Ops:      ops,
		Extra:    fmt.Sprintf("%d clashes/takeovers", clashes),
	}
}

func benchCompute(root *mist.Node[int], ranges []mist.Range) BenchResult {
	ops := 0
	start := time.Now()
	for _, r := range ranges {
		if _, err := root.Compute(r.Offset, r.Length, 0); err == nil {
			ops++
		}
	}
	return BenchResult{Name: "Compute (dry-run, no mutation)", Duration: time.Since(start), Ops: ops}
}

func benchHierarchy(root *mist.Node[int]) BenchResult {
	start := time.Now()
	ops := 0
	for range root.Hierarchy() {
		ops++
	}
	return BenchResult{Name: "Hierarchy traversal", Duration: time.Since(start), Ops: ops}
}

func benchPopAll(root *mist.Node[int]) BenchResult {
	ops := 0
	start := time.Now()
	for {
		child := root.Bottom()
		if child == nil {
			break
		}
		if err := child.Pop(); err != nil {
			break
		}
		ops++
	}
	return BenchResult{Name: "Pop (drain all children)", Duration: time.Since(start), Ops: ops}
}
