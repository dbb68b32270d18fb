package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docxclean/internal/config"
	derrors "git.home.luguber.info/inful/docxclean/internal/errors"
	helpers "git.home.luguber.info/inful/docxclean/internal/testutil/testutils"
)

const revisionBody = `<w:p><w:del w:id="1" w:author="a"><w:r><w:delText>OLDTEXT</w:delText></w:r></w:del>` +
	`<w:ins w:id="2" w:author="a"><w:r><w:t>NEWTEXT</w:t></w:r></w:ins>` +
	`<w:r><w:commentReference w:id="0"/></w:r></w:p>`

// run parses args like the binary does and executes the selected command.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvWorkspaceDir, t.TempDir())

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docxclean"),
		kong.Vars{"version": "test"},
		kong.Exit(func(int) { t.Fatalf("unexpected exit for args %v", args) }),
	)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	require.NoError(t, err)

	var out bytes.Buffer
	err = ctx.Run(&Global{Stdout: &out}, cli)
	return out.String(), err
}

func TestClean_DefaultOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "memo.docx")
	helpers.WriteZip(t, input, helpers.PackageFiles(revisionBody))

	out, err := run(t, input)
	require.NoError(t, err)

	output := filepath.Join(dir, "memo_fixed.docx")
	assert.Contains(t, out, "Tracked deletions removed:     1")
	assert.Contains(t, out, "Tracked insertions accepted:   1")
	assert.Contains(t, out, "Comment markers removed:       1")
	assert.Contains(t, out, "Output: "+output)

	files, _ := helpers.ReadZip(t, output)
	assert.Contains(t, files["word/document.xml"], "NEWTEXT")
	assert.NotContains(t, files, "word/comments.xml")
}

func TestClean_ExplicitOutputAndMetrics(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.docx")
	output := filepath.Join(dir, "cleaned.docx")
	metricsFile := filepath.Join(dir, "docxclean.prom")
	helpers.WriteZip(t, input, helpers.PackageFiles(revisionBody))

	_, err := run(t, "--metrics-textfile", metricsFile, "--log-format", "json", input, output)
	require.NoError(t, err)

	helpers.NewFileAssertions(t, dir).
		AssertFileExists("cleaned.docx").
		AssertFileAbsent("in_fixed.docx").
		AssertFileContains("docxclean.prom", `docxclean_run_outcomes_total{outcome="success"} 1`).
		AssertFileContains("docxclean.prom", `transform="resolve_revisions"`)
}

func TestClean_ConfigFileSuffix(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.docx")
	cfgPath := filepath.Join(dir, "docxclean.toml")
	helpers.WriteZip(t, input, helpers.PackageFiles(revisionBody))
	require.NoError(t, os.WriteFile(cfgPath, []byte("output_suffix = \"_clean\"\n"), 0o600))

	_, err := run(t, "-c", cfgPath, input)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "in_clean.docx"))
}

func TestClean_MissingInput(t *testing.T) {
	dir := t.TempDir()
	metricsFile := filepath.Join(dir, "m.prom")

	_, err := run(t, "--metrics-textfile", metricsFile, filepath.Join(dir, "absent.docx"))
	require.Error(t, err)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryInput))
	assert.Equal(t, 3, derrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClean_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.docx")
	cfgPath := filepath.Join(dir, "bad.yaml")
	helpers.WriteZip(t, input, helpers.PackageFiles(revisionBody))
	require.NoError(t, os.WriteFile(cfgPath, []byte("compression_level: 42\n"), 0o600))

	_, err := run(t, "--config", cfgPath, input)
	require.Error(t, err)
	assert.Equal(t, 7, derrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
	assert.NoFileExists(t, filepath.Join(dir, "in_fixed.docx"))
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "docxclean ")
}
