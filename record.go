package prodspan

import (
	"context"
	"runtime"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// TextRecord is a scraped page reduced to plain text.
type TextRecord struct {
	URL   string `json:"url,omitempty"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
}

// Validate returns an error if the record cannot be annotated.
func (r *TextRecord) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return Errorf(EINVALID, "record text required")
	}
	if !utf8.ValidString(r.Text) {
		return Errorf(EINVALID, "record text must be valid UTF-8")
	}
	return nil
}

// AnnotatedRecord is a text with its labeled spans, in the shape the
// tagger's training pipeline consumes.
type AnnotatedRecord struct {
	Text     string   `json:"text"`
	Entities []Entity `json:"entities"`
}

// Validate returns an error if the record text is missing or any entity
// does not fit the text.
func (r *AnnotatedRecord) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return Errorf(EINVALID, "record text required")
	}
	if err := ValidateEntities(r.Text, r.Entities, false); err != nil {
		return Errorf(EINVALID, "%s", ErrorMessage(err))
	}
	return nil
}

// AnnotateStats summarizes a batch annotation run.
type AnnotateStats struct {
	Total    int
	Skipped  int // blank or invalid text
	Matched  int // records with at least one entity
	Empty    int // records without entities
	Entities int
}

// AnnotateRecord annotates a single record. It returns ok=false when the
// record is invalid and must be skipped.
func AnnotateRecord(a Annotator, rec *TextRecord) (AnnotatedRecord, bool) {
	if rec == nil || rec.Validate() != nil {
		return AnnotatedRecord{}, false
	}
	return AnnotatedRecord{Text: rec.Text, Entities: a.Annotate(rec.Text)}, true
}

// CollectAnnotations applies the batch retention policy to annotated
// results in input order. Records that were skipped are passed as nil.
// Records without entities are dropped unless keepEmpty is set.
func CollectAnnotations(results []*AnnotatedRecord, keepEmpty bool) ([]AnnotatedRecord, AnnotateStats) {
	stats := AnnotateStats{Total: len(results)}
	out := make([]AnnotatedRecord, 0, len(results))
	for _, res := range results {
		if res == nil {
			stats.Skipped++
			continue
		}
		if len(res.Entities) == 0 {
			stats.Empty++
			if !keepEmpty {
				continue
			}
			res.Entities = []Entity{}
		} else {
			stats.Matched++
			stats.Entities += len(res.Entities)
		}
		out = append(out, *res)
	}
	return out, stats
}

// AnnotateAll annotates records concurrently, at most workers at a time,
// and applies the retention policy of CollectAnnotations. Output order
// always matches input order. A workers value below 1 means one worker per
// CPU.
func AnnotateAll(ctx context.Context, a Annotator, records []*TextRecord, keepEmpty bool, workers int) ([]AnnotatedRecord, AnnotateStats, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*AnnotatedRecord, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, rec := range records {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if res, ok := AnnotateRecord(a, rec); ok {
				results[i] = &res
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, AnnotateStats{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, AnnotateStats{}, err
	}

	out, stats := CollectAnnotations(results, keepEmpty)
	return out, stats, nil
}
