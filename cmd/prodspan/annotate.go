package main

import (
	"fmt"

	"github.com/fwojciec/prodspan"
	"github.com/fwojciec/prodspan/fs"
)

// progressEvery is the number of records annotated between progress logs.
const progressEvery = 50

// Run executes the annotate command.
func (c *AnnotateCmd) Run(deps *Dependencies) error {
	records, rejected, err := fs.ReadTextRecords(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodspan.ErrorMessage(err))
		return err
	}
	for _, rerr := range rejected {
		fmt.Fprintf(deps.Stderr, "skip: %s\n", prodspan.ErrorMessage(rerr))
	}

	var (
		out   = make([]prodspan.AnnotatedRecord, 0, len(records))
		stats prodspan.AnnotateStats
	)
	for start := 0; start < len(records); start += progressEvery {
		end := min(start+progressEvery, len(records))

		batch, batchStats, err := prodspan.AnnotateAll(deps.Ctx, deps.Annotator, records[start:end], c.KeepEmpty, c.Workers)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", prodspan.ErrorMessage(err))
			return err
		}
		out = append(out, batch...)
		stats = addStats(stats, batchStats)

		if deps.Logger != nil {
			deps.Logger.Info("annotated", "done", end, "total", len(records), "entities", stats.Entities)
		}
	}
	stats.Skipped += len(rejected)
	stats.Total += len(rejected)

	if err := fs.WriteJSON(c.Output, out); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodspan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Annotated %d records: %d with products, %d without, %d skipped\n",
		stats.Total, stats.Matched, stats.Empty, stats.Skipped)
	fmt.Fprintf(deps.Stdout, "Found %d product spans\n", stats.Entities)
	fmt.Fprintf(deps.Stdout, "Wrote %d records to %s\n", len(out), c.Output)
	return nil
}

func addStats(a, b prodspan.AnnotateStats) prodspan.AnnotateStats {
	return prodspan.AnnotateStats{
		Total:    a.Total + b.Total,
		Skipped:  a.Skipped + b.Skipped,
		Matched:  a.Matched + b.Matched,
		Empty:    a.Empty + b.Empty,
		Entities: a.Entities + b.Entities,
	}
}
