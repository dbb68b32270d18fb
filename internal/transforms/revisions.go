package transforms

import "regexp"

// changeRecordElements hold formatting revision history; they are dropped with their content.
var changeRecordElements = []string{
	"pPrChange",
	"rPrChange",
	"sectPrChange",
	"tblPrChange",
	"tblPrExChange",
	"trPrChange",
	"tcPrChange",
	"tblGridChange",
}

var rsidDelAttr = regexp.MustCompile(`\s+` + anyPrefix + `rsidDel\s*=\s*"[^"]*"`)

// resolveRevisionsTransform rejects tracked deletions and accepts tracked insertions.
type resolveRevisionsTransform struct {
	del     tagMatcher
	ins     tagMatcher
	changes []tagMatcher
}

func newResolveRevisions() resolveRevisionsTransform {
	t := resolveRevisionsTransform{
		del: newTagMatcher("del"),
		ins: newTagMatcher("ins"),
	}
	for _, name := range changeRecordElements {
		t.changes = append(t.changes, newTagMatcher(name))
	}
	return t
}

func (t resolveRevisionsTransform) Name() string { return "resolve_revisions" }

func (t resolveRevisionsTransform) Dependencies() TransformDependencies {
	return TransformDependencies{
		MustRunAfter: []string{"strip_svg_extensions"},
	}
}

func (t resolveRevisionsTransform) Transform(doc *Document, counts *Counts) error {
	// Deletions first: an insertion may wrap a later deletion of the same text.
	content, deleted := t.del.rewrite(doc.Content, removeElement)
	content, inserted := t.ins.rewriteUntilStable(content, unwrapElement)

	for _, m := range t.changes {
		content, _ = m.rewrite(content, removeElement)
	}

	content = rsidDelAttr.ReplaceAllString(content, "")

	doc.Content = content
	counts.DeletionsRemoved += deleted
	counts.InsertionsAccepted += inserted
	return nil
}
