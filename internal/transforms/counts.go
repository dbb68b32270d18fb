package transforms

// Counts holds the per-run match counters reported after a run.
type Counts struct {
	SVGExtensionsRemoved       int
	DeletionsRemoved           int
	InsertionsAccepted         int
	CommentMarkersRemoved      int
	AlternateContentSimplified int
}

// Total returns the sum of all counters.
func (c Counts) Total() int {
	return c.SVGExtensionsRemoved + c.DeletionsRemoved + c.InsertionsAccepted +
		c.CommentMarkersRemoved + c.AlternateContentSimplified
}
