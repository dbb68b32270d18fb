package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
)

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
	exit    func(int)
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		out:     os.Stderr,
		exit:    os.Exit,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if ce, ok := As(err); ok {
		return exitCodeFromCategory(ce.Category)
	}

	return 1
}

func exitCodeFromCategory(category ErrorCategory) int {
	switch category {
	case CategoryInput:
		return 3 // Input missing
	case CategoryArchive:
		return 4 // Not a zip container
	case CategoryStructure:
		return 5 // Not a word-processing package
	case CategoryTransform:
		return 6
	case CategoryConfig:
		return 7
	case CategoryFileSystem:
		return 11
	case CategoryInternal:
		return 10
	default:
		return 1
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if ce, ok := As(err); ok {
		return a.formatClean(ce)
	}

	return fmt.Sprintf("Error: %v", err)
}

func (a *CLIErrorAdapter) formatClean(err *CleanError) string {
	if a.verbose {
		return "Error: " + err.Error() + formatContext(err.Context)
	}

	switch err.Category {
	case CategoryInput, CategoryStructure:
		return "Error: " + err.Message + formatContext(err.Context)
	case CategoryConfig:
		return "Error: " + err.Message + formatContext(err.Context)
	default:
		if err.Cause != nil {
			return fmt.Sprintf("Error: %s: %v", err.Message, err.Cause)
		}
		return "Error: " + err.Message
	}
}

func formatContext(ctx ContextFields) string {
	if len(ctx) == 0 {
		return ""
	}
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, ctx[k]))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

// HandleError logs and prints an error, then exits with the mapped code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	if a.verbose {
		a.logError(err)
	}

	fmt.Fprintln(a.out, a.FormatError(err))
	a.exit(a.ExitCodeFor(err))
}

func (a *CLIErrorAdapter) logError(err error) {
	if ce, ok := As(err); ok {
		attrs := []slog.Attr{
			slog.String("category", string(ce.Category)),
		}
		if ce.Cause != nil {
			attrs = append(attrs, slog.String("cause", ce.Cause.Error()))
		}
		a.logger.LogAttrs(context.Background(), slog.LevelError, ce.Message, attrs...)
		return
	}

	a.logger.Error("Unclassified error", "error", err)
}
