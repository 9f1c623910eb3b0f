package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"shortlist/pkg/common"
	"shortlist/pkg/config"
	"shortlist/pkg/core"
	"shortlist/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	nRecords int
	nTags    int
	seed     int64
)

var rootCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Compare the AVL and B-tree indexes on random candidates",
	RunE: func(cmd *cobra.Command, args []string) error {
		recs := generate(nRecords, nTags, seed)
		fmt.Printf("Shortlist Index Benchmark (N=%d, tags=%d)\n", nRecords, nTags)
		fmt.Println("---------------------------------------------------")
		for _, kind := range []string{"avl", "btree"} {
			if err := run(kind, recs); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVarP(&nRecords, "count", "n", 100000, "number of records to insert")
	rootCmd.Flags().IntVar(&nTags, "tags", 50, "number of distinct tags")
	rootCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generate(n, tags int, seed int64) []common.Record {
	if tags < 1 {
		tags = 1
	}
	r := rand.New(rand.NewSource(seed))
	recs := make([]common.Record, n)
	for i := range recs {
		recs[i] = common.Record{
			Name:  fmt.Sprintf("cand-%d", r.Intn(n+1)),
			Tag:   fmt.Sprintf("skill-%d", r.Intn(tags)),
			Score: r.Intn(101),
		}
	}
	return recs
}

func run(kind string, recs []common.Record) error {
	cfg := config.Default()
	cfg.Index.Kind = kind
	sl, err := core.NewShortlist(cfg, logging.Discard())
	if err != nil {
		return err
	}

	start := time.Now()
	for _, rec := range recs {
		sl.Insert(rec)
	}
	insertDur := time.Since(start)

	start = time.Now()
	asc := sl.Ascending()
	desc := sl.Descending()
	dumpDur := time.Since(start)

	start = time.Now()
	hits := len(sl.SearchByTag("skill-0"))
	searchDur := time.Since(start)

	fmt.Printf(">> %s\n", sl.IndexType())
	fmt.Printf("   Insert: %v (%.0f ops/s)\n", insertDur, float64(len(recs))/insertDur.Seconds())
	fmt.Printf("   Dump x2: %v (%d + %d records)\n", dumpDur, len(asc), len(desc))
	fmt.Printf("   Search: %v (%d hits)\n", searchDur, hits)
	if w := sl.Workload(); w.TotalRotations() > 0 {
		fmt.Printf("   Rotations: %d (height %v)\n", w.TotalRotations(), sl.Stats()["tree_height"])
	}
	return nil
}
