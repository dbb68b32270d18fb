package transforms

// simplifyAlternateContentTransform replaces each markup-compatibility block
// with the children of its Fallback, discarding the preferred Choice.
//
// Blocks are handled outermost first and the substituted fallback is scanned
// again, so blocks nested inside a fallback are simplified as well. A block
// without a Fallback is left untouched together with its content.
type simplifyAlternateContentTransform struct {
	alternate tagMatcher
	choice    tagMatcher
	fallback  tagMatcher
}

func newSimplifyAlternateContent() simplifyAlternateContentTransform {
	return simplifyAlternateContentTransform{
		alternate: newTagMatcher("AlternateContent"),
		choice:    newTagMatcher("Choice"),
		fallback:  newTagMatcher("Fallback"),
	}
}

func (t simplifyAlternateContentTransform) Name() string { return "simplify_alternate_content" }

func (t simplifyAlternateContentTransform) Dependencies() TransformDependencies {
	return TransformDependencies{
		MustRunAfter: []string{"strip_comments"},
	}
}

func (t simplifyAlternateContentTransform) Transform(doc *Document, counts *Counts) error {
	content, n := t.alternate.rewriteUntilStable(doc.Content, func(content string, el element) (string, bool) {
		inner, ok := t.fallbackChildren(el.inner(content))
		return inner, ok
	})
	doc.Content = content
	counts.AlternateContentSimplified += n
	return nil
}

// fallbackChildren returns the inner content of the Fallback that is a direct
// child of the block body, skipping fallbacks of blocks nested in a Choice.
func (t simplifyAlternateContentTransform) fallbackChildren(body string) (string, bool) {
	choices := outermost(t.choice.elements(body))
	nested := outermost(t.alternate.elements(body))

	for _, fb := range outermost(t.fallback.elements(body)) {
		if insideAny(choices, fb) || insideAny(nested, fb) {
			continue
		}
		return fb.inner(body), true
	}
	return "", false
}

func insideAny(els []element, el element) bool {
	for _, e := range els {
		if e.contains(el) {
			return true
		}
	}
	return false
}
