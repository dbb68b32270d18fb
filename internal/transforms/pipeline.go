package transforms

import (
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/docxclean/internal/logfields"
	"git.home.luguber.info/inful/docxclean/internal/metrics"
)

// Pipeline applies an ordered set of transforms to a document.
type Pipeline struct {
	transforms []Transformer
	logger     *slog.Logger
	recorder   metrics.Recorder
}

// NewPipeline orders transforms by their declared dependencies.
func NewPipeline(transforms []Transformer) (*Pipeline, error) {
	ordered, err := BuildPipeline(transforms)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		transforms: ordered,
		logger:     slog.Default(),
		recorder:   metrics.NoopRecorder{},
	}, nil
}

// WithLogger sets the logger used for per-pass reporting.
func (p *Pipeline) WithLogger(l *slog.Logger) *Pipeline {
	if l != nil {
		p.logger = l
	}
	return p
}

// WithRecorder sets the metrics recorder.
func (p *Pipeline) WithRecorder(r metrics.Recorder) *Pipeline {
	if r != nil {
		p.recorder = r
	}
	return p
}

// Names returns the transform names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.transforms))
	for i, t := range p.transforms {
		names[i] = t.Name()
	}
	return names
}

// Apply runs every transform in order. All passes run even when earlier ones
// matched nothing; the first error aborts.
func (p *Pipeline) Apply(doc *Document) (Counts, error) {
	var counts Counts
	for _, t := range p.transforms {
		before := counts.Total()
		start := time.Now()

		if err := t.Transform(doc, &counts); err != nil {
			return counts, fmt.Errorf("transform %s: %w", t.Name(), err)
		}

		matched := counts.Total() - before
		elapsed := time.Since(start)
		p.recorder.AddTransformMatches(t.Name(), matched)
		p.recorder.ObserveTransformDuration(t.Name(), elapsed)
		p.logger.Debug("Applied transform",
			logfields.Transform(t.Name()),
			logfields.Count(matched),
			logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	}
	return counts, nil
}
