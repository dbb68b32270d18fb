package sanitize

import (
	"fmt"
	"io"
	"time"

	"git.home.luguber.info/inful/docxclean/internal/transforms"
)

// Report summarizes a successful run.
type Report struct {
	Input  string
	Output string

	transforms.Counts

	MainDocument         string
	RemovedParts         []string
	ContentTypesRemoved  int
	RelationshipsRemoved int
	Duration             time.Duration
	Workspace            string // set only when the workspace is retained
}

// WriteSummary prints the human-readable run summary.
func (r *Report) WriteSummary(w io.Writer) error {
	_, err := fmt.Fprintf(w, `Sanitized %s
  SVG extensions removed:        %d
  Tracked deletions removed:     %d
  Tracked insertions accepted:   %d
  Comment markers removed:       %d
  Alternate content simplified:  %d
Output: %s
`,
		r.Input,
		r.SVGExtensionsRemoved,
		r.DeletionsRemoved,
		r.InsertionsAccepted,
		r.CommentMarkersRemoved,
		r.AlternateContentSimplified,
		r.Output)
	if err != nil {
		return err
	}
	if r.Workspace != "" {
		_, err = fmt.Fprintf(w, "Workspace kept at %s\n", r.Workspace)
	}
	return err
}
