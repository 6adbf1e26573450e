// Package importer turns raw scraped place payloads into normalized
// directory records and drives batch ingestion.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const maxErrorMessages = 10

// Saver consolidates one normalized record into the directory.
type Saver interface {
	Save(ctx context.Context, record Record) (*SaveOutcome, error)
}

// SaveOutcome mirrors the consolidation result without importing it, to
// keep this package free of a dependency on the pipeline internals.
type SaveOutcome struct {
	Action string
	ID     uint
}

// Stats summarizes one import batch. ErrorMessages keeps only the first few
// failures so a large broken batch does not balloon the response.
type Stats struct {
	Total         int      `json:"total"`
	Created       int      `json:"created"`
	Merged        int      `json:"merged"`
	Updated       int      `json:"updated"`
	Errors        int      `json:"errors"`
	Skipped       int      `json:"skipped"`
	ErrorMessages []string `json:"errorMessages,omitempty"`
}

func (s Stats) Processed() int {
	return s.Created + s.Merged + s.Updated
}

// MarshalJSON includes the derived processed count alongside the raw
// counters, which is what the admin client displays.
func (s Stats) MarshalJSON() ([]byte, error) {
	type plain Stats

	return json.Marshal(struct {
		plain
		Processed int `json:"processed"`
	}{plain(s), s.Processed()})
}

type Importer struct {
	saver  Saver
	logger *zap.Logger
}

func New(saver Saver, logger *zap.Logger) *Importer {
	return &Importer{saver: saver, logger: logger}
}

// ImportBatch normalizes and saves every item. Invalid items are skipped,
// save failures are counted; neither aborts the batch. The combined error
// carries every individual failure for the caller's log.
func (i *Importer) ImportBatch(ctx context.Context, items []RawPlace, source string) (*Stats, error) {
	stats := &Stats{Total: len(items)}

	var combined error

	for index, item := range items {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		record, err := Normalize(item, source)
		if err != nil {
			if errors.Is(err, ErrInvalidRecord) {
				stats.Skipped++

				continue
			}

			stats.Errors++
			combined = multierr.Append(combined, fmt.Errorf("item %d: %w", index, err))
			stats.appendMessage(fmt.Sprintf("item %d: %v", index, err))

			continue
		}

		outcome, err := i.saver.Save(ctx, record)
		if err != nil {
			stats.Errors++
			combined = multierr.Append(combined, fmt.Errorf("%q: %w", record.Restaurant.Name, err))
			stats.appendMessage(fmt.Sprintf("%q: %v", record.Restaurant.Name, err))

			continue
		}

		switch outcome.Action {
		case "created":
			stats.Created++
		case "merged":
			stats.Merged++
		default:
			stats.Updated++
		}
	}

	i.logger.Info("import batch finished",
		zap.String("source", source),
		zap.Int("total", stats.Total),
		zap.Int("created", stats.Created),
		zap.Int("merged", stats.Merged),
		zap.Int("updated", stats.Updated),
		zap.Int("skipped", stats.Skipped),
		zap.Int("errors", stats.Errors))

	return stats, combined
}

func (s *Stats) appendMessage(message string) {
	if len(s.ErrorMessages) < maxErrorMessages {
		s.ErrorMessages = append(s.ErrorMessages, message)
	}
}
