package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helpers "git.home.luguber.info/inful/docxclean/internal/testutil/testutils"
)

func TestStripContentTypes(t *testing.T) {
	out, n := StripContentTypes(helpers.ContentTypesXML)

	assert.Equal(t, 2, n)
	assert.NotContains(t, out, "comments")
	assert.Contains(t, out, `PartName="/word/document.xml"`)
	assert.Contains(t, out, `PartName="/word/styles.xml"`)
	assert.Contains(t, out, `<Default Extension="rels"`)
}

func TestStripContentTypes_CaseSensitive(t *testing.T) {
	in := `<Types><Override PartName="/word/Comments.xml" ContentType="x"/></Types>`
	out, n := StripContentTypes(in)
	assert.Equal(t, 0, n)
	assert.Equal(t, in, out)
}

func TestStripRelationships(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		n    int
	}{
		{
			name: "comment relationships removed",
			in:   helpers.DocumentRelsXML,
			n:    2,
		},
		{
			name: "case insensitive target",
			in:   `<Relationships><Relationship Id="rId9" Type="t" Target="COMMENTS.xml"/></Relationships>`,
			want: `<Relationships></Relationships>`,
			n:    1,
		},
		{
			name: "explicit close tag",
			in:   `<Relationships><Relationship Id="rId9" Type="t" Target="comments.xml"></Relationship><Relationship Id="rId1" Type="t" Target="styles.xml"/></Relationships>`,
			want: `<Relationships><Relationship Id="rId1" Type="t" Target="styles.xml"/></Relationships>`,
			n:    1,
		},
		{
			name: "nothing to remove",
			in:   `<Relationships><Relationship Id="rId1" Type="t" Target="styles.xml"/></Relationships>`,
			want: `<Relationships><Relationship Id="rId1" Type="t" Target="styles.xml"/></Relationships>`,
			n:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, n := StripRelationships(tt.in)
			assert.Equal(t, tt.n, n)
			if tt.want != "" {
				assert.Equal(t, tt.want, out)
			}
			assert.NotContains(t, strings.ToLower(out), "comments")
		})
	}
}

func TestSync_EditsFilesInPlace(t *testing.T) {
	dir := t.TempDir()
	ct := filepath.Join(dir, "[Content_Types].xml")
	rels := filepath.Join(dir, "document.xml.rels")
	require.NoError(t, os.WriteFile(ct, []byte(helpers.ContentTypesXML), 0o600))
	require.NoError(t, os.WriteFile(rels, []byte(helpers.DocumentRelsXML), 0o600))

	res, err := Sync(ct, rels)
	require.NoError(t, err)
	assert.Equal(t, Result{ContentTypesRemoved: 2, RelationshipsRemoved: 2}, res)
	assert.Equal(t, 4, res.Total())

	fa := helpers.NewFileAssertions(t, dir)
	fa.AssertFileNotContains("[Content_Types].xml", "comments").
		AssertFileContains("document.xml.rels", `Target="styles.xml"`).
		AssertFileNotContains("document.xml.rels", "comments")
}

func TestSync_MissingManifestsAreSkipped(t *testing.T) {
	dir := t.TempDir()
	res, err := Sync(filepath.Join(dir, "[Content_Types].xml"), filepath.Join(dir, "missing.rels"))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total())
}
