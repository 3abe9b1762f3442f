package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/prodspan"
	"github.com/fwojciec/prodspan/fs"
)

// Run executes the split command.
func (c *SplitCmd) Run(deps *Dependencies) error {
	records, rejected, err := fs.ReadAnnotatedRecords(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodspan.ErrorMessage(err))
		return err
	}
	for _, rerr := range rejected {
		fmt.Fprintf(deps.Stderr, "skip: %s\n", prodspan.ErrorMessage(rerr))
	}

	cleaned, stats := prodspan.CleanForTraining(records, prodspan.LabelProduct)
	fmt.Fprintf(deps.Stdout, "Cleaned %d records with %d entities: dropped %d with another label, %d out of bounds, %d overlapping\n",
		stats.Records, stats.Entities, stats.WrongLabel, stats.InvalidOffsets, stats.OverlapsDropped)
	if stats.SkippedRecords > 0 {
		fmt.Fprintf(deps.Stdout, "Skipped %d records without text\n", stats.SkippedRecords)
	}

	train, dev, err := prodspan.SplitRecords(cleaned, c.Dev, c.Seed)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodspan.ErrorMessage(err))
		return err
	}

	trainPath := filepath.Join(c.OutDir, "train.json")
	devPath := filepath.Join(c.OutDir, "dev.json")
	if err := fs.WriteJSON(trainPath, train); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodspan.ErrorMessage(err))
		return err
	}
	if err := fs.WriteJSON(devPath, dev); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", prodspan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d train records to %s\n", len(train), trainPath)
	fmt.Fprintf(deps.Stdout, "Wrote %d dev records to %s\n", len(dev), devPath)
	return nil
}
