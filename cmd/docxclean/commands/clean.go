package commands

import (
	prom "github.com/prometheus/client_golang/prometheus"

	derrors "git.home.luguber.info/inful/docxclean/internal/errors"
	"git.home.luguber.info/inful/docxclean/internal/logfields"
	"git.home.luguber.info/inful/docxclean/internal/metrics"
	"git.home.luguber.info/inful/docxclean/internal/sanitize"
)

// CleanCmd implements the default 'clean' command.
type CleanCmd struct {
	Input  string `arg:"" help:"Document to sanitize" type:"path"`
	Output string `arg:"" optional:"" help:"Destination path (default: <input>_fixed.docx next to the input)" type:"path"`
}

func (c *CleanCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.effectiveConfig()
	if err != nil {
		return err
	}
	logger := root.setupLogging(cfg.LogLevel, cfg.LogFormat)

	s := sanitize.New(cfg).WithLogger(logger).KeepWorkspace(root.KeepWorkspace)

	var reg *prom.Registry
	if cfg.MetricsTextfile != "" {
		reg = prom.NewRegistry()
		s.WithRecorder(metrics.NewPrometheusRecorder(reg))
	}

	report, err := s.Run(c.Input, c.Output)
	if err != nil {
		return err
	}

	if reg != nil {
		if werr := metrics.WriteTextfile(cfg.MetricsTextfile, reg); werr != nil {
			// The document was written; a metrics failure only warrants a warning.
			logger.Warn("Failed to write metrics textfile",
				logfields.Path(cfg.MetricsTextfile), logfields.Error(werr))
		}
	}

	if err := report.WriteSummary(g.Stdout); err != nil {
		return derrors.InternalError("failed to print summary", err)
	}
	return nil
}
