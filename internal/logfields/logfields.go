package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyOutput     = "output"
	KeyStage      = "stage"
	KeyTransform  = "transform"
	KeyCount      = "count"
	KeyPart       = "part"
	KeyEntries    = "entries"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Output(p string) slog.Attr       { return slog.String(KeyOutput, p) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func Transform(name string) slog.Attr { return slog.String(KeyTransform, name) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Part(name string) slog.Attr      { return slog.String(KeyPart, name) }
func Entries(n int) slog.Attr         { return slog.Int(KeyEntries, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
