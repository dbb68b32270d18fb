package archive

import (
	"encoding/xml"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const (
	// DefaultMainDocument is the conventional main document part name.
	DefaultMainDocument = "word/document.xml"
	// ContentTypesPart is the package content-type manifest.
	ContentTypesPart = "[Content_Types].xml"

	packageRelsPart        = "_rels/.rels"
	officeDocumentRelation = "/officeDocument"
)

// Package is an extracted package on disk.
type Package struct {
	// Root is the working directory holding the extracted entries.
	Root string
	// MainDocument is the part name of the main document, e.g. "word/document.xml".
	MainDocument string
	// Entries lists the extracted part names in archive order.
	Entries []string
}

// Path returns the filesystem path of a part.
func (p *Package) Path(part string) string {
	return filepath.Join(p.Root, filepath.FromSlash(part))
}

// ContentTypesPath returns the filesystem path of [Content_Types].xml.
func (p *Package) ContentTypesPath() string {
	return p.Path(ContentTypesPart)
}

// RelationshipsPart converts a part name to its relationships part name,
// e.g. "word/document.xml" -> "word/_rels/document.xml.rels".
func RelationshipsPart(partName string) string {
	dir, base := path.Split(partName)
	return path.Join(dir, "_rels", base+".rels")
}

// relationship represents one entry of a relationships part.
type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type relationships struct {
	XMLName      xml.Name       `xml:"Relationships"`
	Relationship []relationship `xml:"Relationship"`
}

// resolveMainDocument reads _rels/.rels and returns the officeDocument target.
// It falls back to DefaultMainDocument when the part is missing or unusable.
func resolveMainDocument(root string) string {
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(packageRelsPart)))
	if err != nil {
		return DefaultMainDocument
	}

	var rels relationships
	if err := xml.Unmarshal(data, &rels); err != nil {
		return DefaultMainDocument
	}

	for _, rel := range rels.Relationship {
		if !strings.HasSuffix(rel.Type, officeDocumentRelation) || rel.Target == "" {
			continue
		}
		target := path.Clean(strings.TrimPrefix(rel.Target, "/"))
		if target == "." || strings.HasPrefix(target, "../") {
			continue
		}
		return target
	}
	return DefaultMainDocument
}
