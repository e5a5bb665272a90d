// Package engine is the public entry point of kupu. An [Engine] bundles an
// immutable lexicon store with the correction pipeline, the cultural safety
// validator and the scorers, and exposes them as context-aware operations.
//
// An Engine holds no per-request state. Every call builds its own loader for
// the supplied [types.EngineContext], so one Engine may serve any number of
// goroutines with different contexts at once.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/MrWong99/kupu/internal/correction"
	"github.com/MrWong99/kupu/internal/legality"
	"github.com/MrWong99/kupu/internal/loader"
	"github.com/MrWong99/kupu/internal/observe"
	"github.com/MrWong99/kupu/internal/phonetic"
	"github.com/MrWong99/kupu/internal/safety"
	"github.com/MrWong99/kupu/internal/scoring"
	"github.com/MrWong99/kupu/pkg/lexicon"
	"github.com/MrWong99/kupu/pkg/types"
)

// Option is a functional option for configuring an [Engine].
type Option func(*Engine)

// WithLogger sets the logger used for context fallbacks. When unset, each
// call logs through [observe.Logger] so records carry the active trace.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithMetrics sets the metric instruments. Default: [observe.DefaultMetrics].
func WithMetrics(m *observe.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithSafetyFloor sets the minimum protection score for a safe verdict.
// Default: [safety.DefaultSafetyFloor].
func WithSafetyFloor(floor int) Option {
	return func(e *Engine) {
		e.safetyOpts = append(e.safetyOpts, safety.WithSafetyFloor(floor))
	}
}

// WithAutoApplyOnly makes corrections below the confidence threshold come
// back as suggestions instead of being applied. Default: false.
func WithAutoApplyOnly(enabled bool) Option {
	return func(e *Engine) {
		e.autoApplyOnly = enabled
	}
}

// WithObserver attaches a pipeline [correction.Observer] to every correction
// run. It must be safe for concurrent use.
func WithObserver(o correction.Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// Engine corrects, validates and scores text against one lexicon store.
type Engine struct {
	store         *lexicon.Store
	matcher       *phonetic.Matcher
	detector      *legality.Detector
	validator     *safety.Validator
	log           *slog.Logger
	metrics       *observe.Metrics
	observer      correction.Observer
	safetyOpts    []safety.Option
	autoApplyOnly bool
}

// New returns an Engine over store.
func New(store *lexicon.Store, opts ...Option) *Engine {
	e := &Engine{store: store}
	for _, o := range opts {
		o(e)
	}
	if e.metrics == nil {
		e.metrics = observe.DefaultMetrics()
	}
	e.matcher = phonetic.New()
	e.detector = legality.New(store, legality.WithMatcher(e.matcher))
	e.validator = safety.New(store, append([]safety.Option{safety.WithDetector(e.detector)}, e.safetyOpts...)...)
	return e
}

// NewBuiltin returns an Engine over the built-in lexicon merged with
// overlays.
func NewBuiltin(overlays [][]lexicon.Entry, opts ...Option) (*Engine, error) {
	store, err := lexicon.NewBuiltinStore(overlays...)
	if err != nil {
		return nil, fmt.Errorf("engine: build lexicon: %w", err)
	}
	return New(store, opts...), nil
}

// Store returns the lexicon store the engine reads.
func (e *Engine) Store() *lexicon.Store { return e.store }

// Loader returns a fresh [loader.Loader] for ectx. The effective context,
// with unknown values cleared and the threshold filled in, is available from
// its Context method.
func (e *Engine) Loader(ctx context.Context, ectx types.EngineContext) *loader.Loader {
	return loader.New(e.store, ectx, loader.WithLogger(e.logger(ctx)))
}

func (e *Engine) logger(ctx context.Context) *slog.Logger {
	if e.log != nil {
		return e.log
	}
	return observe.Logger(ctx)
}

func (e *Engine) pipeline(ctx context.Context, ectx types.EngineContext) *correction.Pipeline {
	opts := []correction.Option{
		correction.WithDetector(e.detector),
		correction.WithMatcher(e.matcher),
		correction.WithAutoApplyOnly(e.autoApplyOnly),
	}
	if e.observer != nil {
		opts = append(opts, correction.WithObserver(e.observer))
	}
	return correction.New(e.Loader(ctx, ectx), opts...)
}

// Correct runs the correction pipeline over text under ectx. It never fails;
// text with nothing to correct comes back unchanged.
func (e *Engine) Correct(ctx context.Context, text string, ectx types.EngineContext) types.CorrectionResult {
	ctx, span := observe.StartSpan(ctx, "kupu.correct")
	defer span.End()

	start := time.Now()
	res := e.pipeline(ctx, ectx).Correct(text)
	e.metrics.RecordCorrection(ctx, res, time.Since(start).Seconds())

	span.SetAttributes(
		attribute.Int("kupu.records", len(res.Records)),
		attribute.Int("kupu.suggestions", len(res.Suggestions)),
		attribute.Int("kupu.threshold", res.Threshold),
	)
	return res
}

// ValidateCulturalSafety checks text without changing it.
func (e *Engine) ValidateCulturalSafety(ctx context.Context, text string) types.ValidationResult {
	ctx, span := observe.StartSpan(ctx, "kupu.validate")
	defer span.End()

	res := e.validator.Validate(text)
	e.metrics.RecordValidation(ctx, res)

	span.SetAttributes(
		attribute.Bool("kupu.safe", res.IsSafe),
		attribute.Int("kupu.protection_score", res.ProtectionScore),
	)
	return res
}

// ScoreCommercialRelevance corrects text under ectx and scores the tourism
// businesses it mentions.
func (e *Engine) ScoreCommercialRelevance(ctx context.Context, text string, ectx types.EngineContext) types.CommercialScore {
	res := e.Correct(ctx, text, ectx)
	score := scoring.Commercial(res)
	e.metrics.RecordCommercial(ctx, score)
	return score
}

// ScoreCulturalAuthenticity corrects text under ectx and scores the
// corrections it needed.
func (e *Engine) ScoreCulturalAuthenticity(ctx context.Context, text string, ectx types.EngineContext) types.CulturalScore {
	return scoring.Cultural(e.Correct(ctx, text, ectx))
}

// CorrectBatch corrects texts concurrently with at most workers goroutines
// (at least one). Results are in input order. It returns early with the
// context's error when ctx is cancelled.
func (e *Engine) CorrectBatch(ctx context.Context, texts []string, ectx types.EngineContext, workers int) ([]types.CorrectionResult, error) {
	ctx, span := observe.StartSpan(ctx, "kupu.correct_batch")
	defer span.End()
	span.SetAttributes(attribute.Int("kupu.batch.size", len(texts)))

	out := make([]types.CorrectionResult, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i, text := range texts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			e.metrics.BatchInFlight.Add(gctx, 1)
			defer e.metrics.BatchInFlight.Add(gctx, -1)
			out[i] = e.Correct(gctx, text, ectx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("engine: correct batch: %w", err)
	}
	return out, nil
}

// BusinessesInRegion lists the tourism businesses of region, strongest
// business tier first.
func (e *Engine) BusinessesInRegion(region lexicon.Region) []lexicon.Entry {
	return e.store.BusinessesInRegion(region)
}

// PlacesForDemo lists the businesses and places relevant to a named sales
// demonstration.
func (e *Engine) PlacesForDemo(demo string) []lexicon.Entry {
	return e.store.PlacesForDemo(demo)
}

// PerfectDemoMatches lists the entries flagged as perfect demo matches.
func (e *Engine) PerfectDemoMatches() []lexicon.Entry {
	return e.store.PerfectDemoMatches()
}
