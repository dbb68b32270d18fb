package sanitize

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"git.home.luguber.info/inful/docxclean/internal/archive"
	"git.home.luguber.info/inful/docxclean/internal/config"
	derrors "git.home.luguber.info/inful/docxclean/internal/errors"
	"git.home.luguber.info/inful/docxclean/internal/logfields"
	"git.home.luguber.info/inful/docxclean/internal/manifest"
	"git.home.luguber.info/inful/docxclean/internal/metrics"
	"git.home.luguber.info/inful/docxclean/internal/transforms"
	"git.home.luguber.info/inful/docxclean/internal/workspace"
)

// Stage names used in logs and metrics.
const (
	StageUnpack    = "unpack"
	StageTransform = "transform"
	StagePersist   = "persist"
	StageSync      = "sync_manifests"
	StagePack      = "pack"
)

// Sanitizer runs the unpack -> transform -> sync -> pack sequence.
// A Sanitizer holds no per-run state; every Run is independent.
type Sanitizer struct {
	cfg           *config.Config
	logger        *slog.Logger
	recorder      metrics.Recorder
	keepWorkspace bool
}

// New creates a Sanitizer; a nil cfg means config.Default().
func New(cfg *config.Config) *Sanitizer {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Sanitizer{
		cfg:      cfg,
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
}

// WithLogger sets the logger.
func (s *Sanitizer) WithLogger(l *slog.Logger) *Sanitizer {
	if l != nil {
		s.logger = l
	}
	return s
}

// WithRecorder sets the metrics recorder.
func (s *Sanitizer) WithRecorder(r metrics.Recorder) *Sanitizer {
	if r != nil {
		s.recorder = r
	}
	return s
}

// KeepWorkspace leaves the working directory on disk after the run.
func (s *Sanitizer) KeepWorkspace(keep bool) *Sanitizer {
	s.keepWorkspace = keep
	return s
}

// Run sanitizes input and writes the result to output (derived from input when
// empty). Any error aborts the run and no output is written.
func (s *Sanitizer) Run(input, output string) (report *Report, err error) {
	start := time.Now()
	defer func() {
		s.recorder.ObserveRunDuration(time.Since(start))
		if err != nil {
			s.recorder.IncRunOutcome(metrics.OutcomeFailed)
			return
		}
		s.recorder.IncRunOutcome(metrics.OutcomeSuccess)
	}()

	in, out, err := ResolvePaths(input, output, s.cfg.OutputSuffix)
	if err != nil {
		return nil, derrors.InternalError("failed to resolve paths", err)
	}

	if _, statErr := os.Stat(in); statErr != nil {
		if errors.Is(statErr, os.ErrNotExist) {
			return nil, derrors.InputNotFound(in)
		}
		return nil, derrors.Wrap(statErr, derrors.CategoryInput, "input file is not accessible").
			WithContext("path", in)
	}

	pipeline, err := transforms.NewPipeline(transforms.Defaults(s.cfg.CommentParts))
	if err != nil {
		return nil, derrors.InternalError("invalid transform pipeline", err)
	}
	pipeline.WithLogger(s.logger).WithRecorder(s.recorder)

	ws := workspace.NewManager(s.cfg.WorkspaceDir)
	if s.keepWorkspace {
		ws = workspace.NewRetainedManager(s.cfg.WorkspaceDir)
	}
	if err := ws.Create(); err != nil {
		return nil, derrors.WorkspaceError("create", err)
	}
	if ws.Retained() {
		s.logger.Warn("Workspace will be kept after the run; remove it manually", logfields.Path(ws.GetPath()))
	}
	defer func() {
		if cerr := ws.Cleanup(); cerr != nil {
			s.logger.Warn("Failed to cleanup workspace", logfields.Error(cerr))
		}
	}()

	s.logger.Info("Sanitizing document", logfields.Path(in), logfields.Output(out))
	report = &Report{Input: in, Output: out}

	var pkg *archive.Package
	if err := s.stage(StageUnpack, func() error {
		var uerr error
		pkg, uerr = archive.Unpack(in, ws.GetPath())
		return uerr
	}); err != nil {
		return nil, err
	}
	report.MainDocument = pkg.MainDocument

	var doc *transforms.Document
	if err := s.stage(StageTransform, func() error {
		var rerr error
		doc, rerr = transforms.ReadDocument(pkg.Root, pkg.MainDocument)
		if rerr != nil {
			return derrors.TransformFailure("read", rerr).WithContext("part", pkg.MainDocument)
		}
		counts, aerr := pipeline.Apply(doc)
		if aerr != nil {
			return derrors.TransformFailure(StageTransform, aerr)
		}
		report.Counts = counts
		report.RemovedParts = doc.RemovedParts
		return nil
	}); err != nil {
		return nil, err
	}

	if err := s.stage(StagePersist, func() error {
		if werr := doc.Write(pkg.Root); werr != nil {
			return derrors.TransformFailure(StagePersist, werr).WithContext("part", pkg.MainDocument)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := s.stage(StageSync, func() error {
		relsPath := pkg.Path(archive.RelationshipsPart(pkg.MainDocument))
		res, serr := manifest.Sync(pkg.ContentTypesPath(), relsPath)
		if serr != nil {
			return derrors.TransformFailure(StageSync, serr)
		}
		report.ContentTypesRemoved = res.ContentTypesRemoved
		report.RelationshipsRemoved = res.RelationshipsRemoved
		return nil
	}); err != nil {
		return nil, err
	}

	if err := s.stage(StagePack, func() error {
		if perr := archive.Pack(pkg.Root, out, s.cfg.Compression()); perr != nil {
			return derrors.OutputFailure(out, perr)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if ws.Retained() {
		report.Workspace = ws.GetPath()
	}
	report.Duration = time.Since(start)
	s.logger.Info("Sanitized document",
		logfields.Output(out),
		logfields.Count(report.Total()),
		logfields.DurationMS(float64(report.Duration.Microseconds())/1000))
	return report, nil
}

// stage runs fn, recording its duration and outcome.
func (s *Sanitizer) stage(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	s.recorder.ObserveStageDuration(name, elapsed)
	if err != nil {
		s.recorder.IncStageResult(name, metrics.ResultFailed)
		s.logger.Debug("Stage failed", logfields.Stage(name), logfields.Error(err))
		return err
	}
	s.recorder.IncStageResult(name, metrics.ResultSuccess)
	s.logger.Debug("Stage completed",
		logfields.Stage(name),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	return nil
}
