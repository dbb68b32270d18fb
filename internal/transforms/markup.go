package transforms

import (
	"regexp"
	"sort"
	"strings"
)

// anyPrefix matches an optional namespace prefix such as "w:" or "a14:".
const anyPrefix = `(?:[A-Za-z_][\w.\-]*:)?`

// element is one located occurrence of a markup element.
type element struct {
	Start, End           int // whole element, [Start, End)
	InnerStart, InnerEnd int // content between the tags; empty for self-closing
	OpenTag              string
	SelfClosing          bool
}

func (e element) inner(content string) string { return content[e.InnerStart:e.InnerEnd] }

func (e element) contains(o element) bool { return o.Start >= e.Start && o.End <= e.End }

// tagMatcher finds the open, close and self-closing tags of one element name.
type tagMatcher struct {
	re *regexp.Regexp
}

// newTagMatcher builds a matcher for localName under any namespace prefix.
// The name must be followed by whitespace, "/" or ">", so "del" never matches "delText".
func newTagMatcher(localName string) tagMatcher {
	pattern := `<(/?)(` + anyPrefix + regexp.QuoteMeta(localName) + `)(?:\s[^>]*?)?(/?)>`
	return tagMatcher{re: regexp.MustCompile(pattern)}
}

// elements pairs every open tag with its balanced close tag and returns all
// elements, nested ones included, ordered by start offset. Stray close tags
// and unclosed open tags are ignored.
func (m tagMatcher) elements(content string) []element {
	tokens := m.re.FindAllStringSubmatchIndex(content, -1)
	var out []element
	var stack [][]int

	for _, tok := range tokens {
		closing := tok[3] > tok[2]
		selfClosing := tok[7] > tok[6]

		switch {
		case selfClosing && !closing:
			out = append(out, element{
				Start: tok[0], End: tok[1],
				InnerStart: tok[1], InnerEnd: tok[1],
				OpenTag:     content[tok[0]:tok[1]],
				SelfClosing: true,
			})
		case closing:
			if len(stack) == 0 {
				continue
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			out = append(out, element{
				Start: open[0], End: tok[1],
				InnerStart: open[1], InnerEnd: tok[0],
				OpenTag: content[open[0]:open[1]],
			})
		default:
			stack = append(stack, tok)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// outermost keeps only elements not contained in an earlier kept element.
func outermost(els []element) []element {
	var out []element
	for _, el := range els {
		if len(out) > 0 && out[len(out)-1].contains(el) {
			continue
		}
		out = append(out, el)
	}
	return out
}

// rewriteFunc returns the replacement text for el and whether it applied.
// Returning false leaves the element (and everything inside it) untouched.
type rewriteFunc func(content string, el element) (string, bool)

// rewrite replaces outermost-first every element selected by fn and returns
// the new content and the number of replacements.
func (m tagMatcher) rewrite(content string, fn rewriteFunc) (string, int) {
	return m.rewriteElements(content, fn, false)
}

// rewriteDescending is rewrite, except that elements nested inside a declined
// element are still offered to fn.
func (m tagMatcher) rewriteDescending(content string, fn rewriteFunc) (string, int) {
	return m.rewriteElements(content, fn, true)
}

func (m tagMatcher) rewriteElements(content string, fn rewriteFunc, descend bool) (string, int) {
	els := m.elements(content)
	if len(els) == 0 {
		return content, 0
	}

	var b strings.Builder
	b.Grow(len(content))
	last, count := 0, 0
	var skipped []element

	for _, el := range els {
		if el.Start < last {
			continue // inside a replaced element
		}
		if len(skipped) > 0 && skipped[len(skipped)-1].contains(el) {
			continue // inside an element fn declined
		}
		repl, ok := fn(content, el)
		if !ok {
			if !descend {
				skipped = append(skipped, el)
			}
			continue
		}
		b.WriteString(content[last:el.Start])
		b.WriteString(repl)
		last = el.End
		count++
	}

	if count == 0 {
		return content, 0
	}
	b.WriteString(content[last:])
	return b.String(), count
}

// rewriteUntilStable reapplies rewrite until no replacement happens, so content
// surfaced by one replacement (for example a nested wrapper) is processed too.
func (m tagMatcher) rewriteUntilStable(content string, fn rewriteFunc) (string, int) {
	return untilStable(content, func(c string) (string, int) { return m.rewrite(c, fn) })
}

func untilStable(content string, pass func(string) (string, int)) (string, int) {
	total := 0
	for {
		var n int
		content, n = pass(content)
		if n == 0 {
			return content, total
		}
		total += n
	}
}

func removeElement(string, element) (string, bool) { return "", true }

func unwrapElement(content string, el element) (string, bool) { return el.inner(content), true }
