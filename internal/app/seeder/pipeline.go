package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/transkana/internal/domain"
	"github.com/heartmarshall/transkana/internal/lexicon"
	"github.com/heartmarshall/transkana/internal/seeder/bep"
	"github.com/heartmarshall/transkana/internal/seeder/cmu"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"cmu", "bep", "overrides"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Parsed   int
	Written  int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the seeding phases.
type Pipeline struct {
	log     *slog.Logger
	repo    WordWriter
	cfg     Config
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo WordWriter, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		repo:    repo,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run, still in canonical order. A failing phase does not stop later ones.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
				delete(filter, ph)
			}
		}
		for ph := range filter {
			return fmt.Errorf("unknown phase %q", ph)
		}
		toRun = filtered
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "cmu":
			result = p.runCMU(ctx)
		case "bep":
			result = p.runBEP(ctx)
		case "overrides":
			result = p.runOverrides(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("parsed", result.Parsed),
				slog.Int("written", result.Written),
				slog.Int("skipped", result.Skipped),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

// runCMU derives katakana from CMU ARPAbet transcriptions.
func (p *Pipeline) runCMU(ctx context.Context) PhaseResult {
	if p.cfg.CMUPath == "" {
		return PhaseResult{Skipped: 1, Err: fmt.Errorf("cmu path not configured")}
	}

	parsed, err := cmu.Parse(p.cfg.CMUPath)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("parse cmu: %w", err)}
	}
	p.log.Info("cmu parsed",
		slog.Int("unique_words", parsed.Stats.UniqueWords),
		slog.Int("variants", parsed.Stats.VariantLines),
		slog.Int("rejected", parsed.Stats.RejectedWords),
	)

	return p.write(ctx, parsed.ToDomainWords())
}

// runBEP loads the English-katakana dictionary.
func (p *Pipeline) runBEP(ctx context.Context) PhaseResult {
	if p.cfg.BEPPath == "" {
		return PhaseResult{Skipped: 1, Err: fmt.Errorf("bep path not configured")}
	}

	parsed, err := bep.Parse(p.cfg.BEPPath)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("parse bep: %w", err)}
	}
	p.log.Info("bep parsed",
		slog.Int("unique_words", parsed.Stats.UniqueWords),
		slog.Int("not_katakana", parsed.Stats.NotKatakana),
	)

	return p.write(ctx, parsed.ToDomainWords())
}

// runOverrides loads hand-curated readings from a surface<TAB>reading file.
// They land in the highest-priority column.
func (p *Pipeline) runOverrides(ctx context.Context) PhaseResult {
	if p.cfg.OverridesPath == "" {
		return PhaseResult{Skipped: 1, Err: fmt.Errorf("overrides path not configured")}
	}

	f, err := os.Open(p.cfg.OverridesPath)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("open overrides: %w", err)}
	}
	defer f.Close()

	var words []domain.Word
	err = lexicon.EachTSV(ctx, f, func(surface, reading string) error {
		words = append(words, domain.Word{Surface: surface, GPTReading: reading})
		return nil
	})
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("parse overrides: %w", err)}
	}
	p.log.Info("overrides parsed", slog.Int("words", len(words)))

	return p.write(ctx, words)
}

func (p *Pipeline) write(ctx context.Context, words []domain.Word) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Parsed: len(words), Skipped: len(words)}
	}

	written, err := batchProcess(words, p.cfg.BatchSize, func(batch []domain.Word) (int, error) {
		return p.repo.Upsert(ctx, batch)
	})
	if err != nil {
		return PhaseResult{Parsed: len(words), Written: written, Err: fmt.Errorf("upsert words: %w", err)}
	}
	return PhaseResult{Parsed: len(words), Written: written}
}

// batchProcess splits items into batches and processes each via fn.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
