package transforms

import (
	"fmt"
	"path"
)

// commentMarkerElements anchor comments in the body; each may be self-closing
// or written with explicit open and close tags.
var commentMarkerElements = []string{
	"commentRangeStart",
	"commentRangeEnd",
	"commentReference",
}

// stripCommentsTransform removes comment anchors and the parts holding comment bodies.
type stripCommentsTransform struct {
	markers []tagMatcher
	parts   []string
}

func newStripComments(parts []string) stripCommentsTransform {
	t := stripCommentsTransform{parts: parts}
	for _, name := range commentMarkerElements {
		t.markers = append(t.markers, newTagMatcher(name))
	}
	return t
}

func (t stripCommentsTransform) Name() string { return "strip_comments" }

func (t stripCommentsTransform) Dependencies() TransformDependencies {
	return TransformDependencies{
		MustRunAfter: []string{"resolve_revisions"},
		RemovesParts: true,
	}
}

func (t stripCommentsTransform) Transform(doc *Document, counts *Counts) error {
	content := doc.Content
	removed := 0
	for _, m := range t.markers {
		var n int
		content, n = m.rewrite(content, removeElement)
		removed += n
	}
	doc.Content = content
	counts.CommentMarkersRemoved += removed

	for _, name := range t.parts {
		if _, err := doc.RemovePart(path.Join(doc.Dir(), name)); err != nil {
			return fmt.Errorf("strip_comments: %w", err)
		}
	}
	return nil
}
