package main

import (
	"fmt"
	"log"
	"os"

	"shortlist/pkg/common"
	"shortlist/pkg/config"
	"shortlist/pkg/core"
	"shortlist/pkg/logging"
	"shortlist/pkg/ux"
)

func main() {
	cfg := config.Default()
	sl, err := core.NewShortlist(cfg, logging.New(cfg.Log))
	if err != nil {
		log.Fatalf("Failed to create shortlist: %v", err)
	}

	for _, rec := range []common.Record{
		{Name: "Ravi", Tag: "Python", Score: 85},
		{Name: "Amit", Tag: "Java", Score: 92},
		{Name: "Priya", Tag: "C++", Score: 78},
		{Name: "Anjali", Tag: "Python", Score: 88},
	} {
		fmt.Printf("Inserting %s\n", rec)
		sl.Insert(rec)
	}

	table := ux.NewTable(os.Stdout, cfg.Display)
	table.Render("All Candidates (Lowest → Highest)", sl.Ascending())
	table.Render("All Candidates (Highest → Lowest)", sl.Descending())
	table.Render("Search Results for: Python", sl.SearchByTag("Python"))

	fmt.Printf("\nEmpty: %v, stats: %v\n", sl.IsEmpty(), sl.Stats())
}
