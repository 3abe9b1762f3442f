package prodspan

import (
	"math"
	"math/rand/v2"
	"slices"
)

// CleanStats counts what CleanForTraining removed.
type CleanStats struct {
	Records         int
	SkippedRecords  int // blank text
	Entities        int
	WrongLabel      int
	InvalidOffsets  int
	OverlapsDropped int
}

// CleanForTraining keeps only entities the tagger can consume: matching
// label, offsets inside the text and no overlap with an earlier kept entity.
// Records with blank text are dropped. Input records are not modified.
func CleanForTraining(records []AnnotatedRecord, label string) ([]AnnotatedRecord, CleanStats) {
	var stats CleanStats
	out := make([]AnnotatedRecord, 0, len(records))
	for _, rec := range records {
		stats.Records++
		if rec.Text == "" {
			stats.SkippedRecords++
			continue
		}
		n := len([]rune(rec.Text))

		ents := slices.Clone(rec.Entities)
		slices.SortStableFunc(ents, func(a, b Entity) int { return a.Start - b.Start })

		kept := make([]Entity, 0, len(ents))
		lastEnd := 0
		for _, ent := range ents {
			stats.Entities++
			if ent.Label != label {
				stats.WrongLabel++
				continue
			}
			if ent.Start < 0 || ent.Start >= n || ent.End <= ent.Start || ent.End > n {
				stats.InvalidOffsets++
				continue
			}
			if ent.Start < lastEnd {
				stats.OverlapsDropped++
				continue
			}
			kept = append(kept, ent)
			lastEnd = ent.End
		}
		out = append(out, AnnotatedRecord{Text: rec.Text, Entities: kept})
	}
	return out, stats
}

// SplitRecords shuffles records with the given seed and splits off
// ceil(len*devFraction) records as the dev set. The same seed always yields
// the same split. devFraction must be in (0, 1).
func SplitRecords(records []AnnotatedRecord, devFraction float64, seed uint64) (train, dev []AnnotatedRecord, err error) {
	if devFraction <= 0 || devFraction >= 1 {
		return nil, nil, Errorf(EINVALID, "dev fraction must be between 0 and 1, got %v", devFraction)
	}

	shuffled := slices.Clone(records)
	rng := rand.New(rand.NewPCG(seed, seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	nDev := int(math.Ceil(float64(len(shuffled)) * devFraction))
	if nDev > len(shuffled) {
		nDev = len(shuffled)
	}
	return shuffled[nDev:], shuffled[:nDev], nil
}
