package transforms

// Defaults returns the standard document passes. commentParts names the
// auxiliary comment parts relative to the main document's directory.
func Defaults(commentParts []string) []Transformer {
	return []Transformer{
		newStripSVGExtensions(),
		newResolveRevisions(),
		newStripComments(commentParts),
		newSimplifyAlternateContent(),
	}
}
