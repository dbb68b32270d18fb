package transforms

import (
	"regexp"
	"strings"
)

// SVGExtensionURI identifies the DrawingML extension carrying an SVG blip.
const SVGExtensionURI = "{96DAC541-7B7A-43D3-8B79-37D633B846F1}"

// removedMark stands in for a removed block until empty lists are resolved.
// NUL cannot appear in XML text.
const removedMark = "\x00"

var svgURIAttr = regexp.MustCompile(`(?i)\buri\s*=\s*["']` + regexp.QuoteMeta(SVGExtensionURI) + `["']`)

// stripSVGExtensionsTransform removes SVG extension blocks from pictures, keeping
// the raster blip they extend, then drops extension lists the removal left
// empty. Blocks nested inside other extensions are found too. Lists that were
// already empty are kept.
type stripSVGExtensionsTransform struct {
	ext    tagMatcher
	extLst tagMatcher
}

func newStripSVGExtensions() stripSVGExtensionsTransform {
	return stripSVGExtensionsTransform{
		ext:    newTagMatcher("ext"),
		extLst: newTagMatcher("extLst"),
	}
}

func (t stripSVGExtensionsTransform) Name() string { return "strip_svg_extensions" }

func (t stripSVGExtensionsTransform) Dependencies() TransformDependencies {
	return TransformDependencies{}
}

func (t stripSVGExtensionsTransform) Transform(doc *Document, counts *Counts) error {
	// Removed blocks leave a placeholder so only lists emptied here are dropped.
	content, removed := t.ext.rewriteDescending(doc.Content, func(content string, el element) (string, bool) {
		if !svgURIAttr.MatchString(el.OpenTag) {
			return "", false
		}
		return removedMark, true
	})
	if removed == 0 {
		return nil
	}

	content, _ = untilStable(content, func(c string) (string, int) {
		return t.extLst.rewriteDescending(c, func(c string, el element) (string, bool) {
			inner := el.inner(c)
			if !strings.Contains(inner, removedMark) ||
				strings.TrimSpace(strings.ReplaceAll(inner, removedMark, "")) != "" {
				return "", false
			}
			return removedMark, true
		})
	})

	doc.Content = strings.ReplaceAll(content, removedMark, "")
	counts.SVGExtensionsRemoved += removed
	return nil
}
