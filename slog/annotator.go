package slog

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/prodspan"
)

// Ensure LoggingAnnotator implements prodspan.Annotator.
var _ prodspan.Annotator = (*LoggingAnnotator)(nil)

// LoggingAnnotator wraps an Annotator with debug logging and checks every
// result against its text. A result that fails the check is logged as an
// error and replaced by no entities, so a broken annotation never reaches
// the output.
type LoggingAnnotator struct {
	next   prodspan.Annotator
	logger *slog.Logger
}

// NewLoggingAnnotator creates a new LoggingAnnotator.
func NewLoggingAnnotator(next prodspan.Annotator, logger *slog.Logger) *LoggingAnnotator {
	return &LoggingAnnotator{next: next, logger: logger}
}

// Annotate delegates to the wrapped annotator.
func (a *LoggingAnnotator) Annotate(text string) []prodspan.Entity {
	begin := time.Now()
	entities := a.next.Annotate(text)

	if err := prodspan.ValidateEntities(text, entities, true); err != nil {
		a.logger.Error("dropping invalid annotation",
			"runes", utf8.RuneCountInString(text),
			"entities", len(entities),
			"err", err,
		)
		return nil
	}

	a.logger.Debug("annotate",
		"runes", utf8.RuneCountInString(text),
		"entities", len(entities),
		"duration", time.Since(begin),
	)
	return entities
}
