package cli

import (
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitlake/adr/internal/config"
	adrerrors "github.com/bitlake/adr/internal/errors"
)

func TestEndToEnd(t *testing.T) {
	dir := newWorkspace(t)

	_, _, err := runCLI(t, "init", "adr-root")
	require.NoError(t, err)
	_, _, err = runCLI(t, "new", "First Decision")
	require.NoError(t, err)
	stdout, _, err := runCLI(t, "list")
	require.NoError(t, err)

	assert.Equal(t, "1_first_decision.md\n", stdout)
	assert.Equal(t, "adr-root", readFile(t, filepath.Join(dir, ".adr_file")))
	assert.Equal(t, "# init\n", readFile(t, filepath.Join(dir, "adr-root", "init.md")))
	assert.Equal(t, "# Title\n", readFile(t, filepath.Join(dir, "adr-root", "1_first_decision.md")))
}

func TestNew_NumbersAfterExistingRecords(t *testing.T) {
	dir := newWorkspace(t)
	_, _, err := runCLI(t, "init", "docs/adr")
	require.NoError(t, err)
	writeFile(t, filepath.Join(dir, "docs", "adr", "1_a.md"), "")
	writeFile(t, filepath.Join(dir, "docs", "adr", "2_b.md"), "")

	_, stderr, err := runCLI(t, "new", "C")

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "docs", "adr", "3_c.md"))
	assert.Contains(t, stderr, "3_c.md")

	stdout, _, err := runCLI(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	sort.Strings(lines)
	assert.Equal(t, []string{"1_a.md", "2_b.md", "3_c.md"}, lines)
}

func TestInit_SecondTimeAborts(t *testing.T) {
	dir := newWorkspace(t)
	_, _, err := runCLI(t, "init", "docs/adr")
	require.NoError(t, err)

	_, _, err = runCLI(t, "init", "elsewhere")

	assert.ErrorIs(t, err, adrerrors.ErrAlreadyInitialized)
	assert.Equal(t, config.ExitAlreadyInitialized, ExitCode(err))
	assert.Equal(t, "docs/adr", readFile(t, filepath.Join(dir, ".adr_file")))
	assert.NoDirExists(t, filepath.Join(dir, "elsewhere"))
}

func TestTypoOfInitStillInitialises(t *testing.T) {
	dir := newWorkspace(t)

	_, _, err := runCLI(t, "nit", "docs/adr")

	require.NoError(t, err)
	assert.Equal(t, "docs/adr", readFile(t, filepath.Join(dir, ".adr_file")))
	assert.DirExists(t, filepath.Join(dir, "docs", "adr"))
}

func TestArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "unknown single word", args: []string{"anything-else"}},
		{name: "new without title", args: []string{"new"}},
		{name: "unknown flag", args: []string{"--nope", "list"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newWorkspace(t)

			_, _, err := runCLI(t, tt.args...)

			assert.ErrorIs(t, err, adrerrors.ErrInvalidCommand)
			assert.Equal(t, config.ExitInvalidArguments, ExitCode(err))
		})
	}
}

func TestList_BeforeInit(t *testing.T) {
	newWorkspace(t)

	_, _, err := runCLI(t, "list")

	assert.ErrorIs(t, err, adrerrors.ErrMarkerMissing)
	assert.Equal(t, config.ExitMarkerMissing, ExitCode(err))
}

func TestList_MissingDirectory(t *testing.T) {
	dir := newWorkspace(t)
	writeFile(t, filepath.Join(dir, ".adr_file"), "gone")

	_, _, err := runCLI(t, "list")

	assert.ErrorIs(t, err, adrerrors.ErrDirectoryList)
	assert.Equal(t, config.ExitDirectoryListFailed, ExitCode(err))
}

func TestList_YAMLFormat(t *testing.T) {
	dir := newWorkspace(t)
	_, _, err := runCLI(t, "init", "docs/adr")
	require.NoError(t, err)
	writeFile(t, filepath.Join(dir, "docs", "adr", "1_a.md"), "")

	stdout, _, err := runCLI(t, "--format", "yaml", "list")

	require.NoError(t, err)
	assert.Equal(t, "- 1_a.md\n", stdout)
}

func TestMissingResources_AreNotFatal(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, stderr, err := runCLI(t, "init", "docs/adr")
	require.NoError(t, err)
	assert.Contains(t, stderr, "copying init template")

	_, stderr, err = runCLI(t, "new", "A")
	require.NoError(t, err)
	assert.Contains(t, stderr, "creating record from template")
	assert.NoFileExists(t, filepath.Join(dir, "docs", "adr", "1_a.md"))
}

func TestEmbeddedTemplates(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, _, err := runCLI(t, "--embedded-templates", "init", "docs/adr")
	require.NoError(t, err)
	_, _, err = runCLI(t, "--embedded-templates", "new", "A")
	require.NoError(t, err)

	assert.Contains(t, readFile(t, filepath.Join(dir, "docs", "adr", "1_a.md")), "## Decision")
}

func TestDryRun_LeavesDiskUntouched(t *testing.T) {
	dir := newWorkspace(t)

	_, stderr, err := runCLI(t, "--dry-run", "init", "adr-root")

	require.NoError(t, err)
	assert.Contains(t, stderr, "Dry run")
	assert.NoFileExists(t, filepath.Join(dir, ".adr_file"))
	assert.NoDirExists(t, filepath.Join(dir, "adr-root"))
}

func TestConfigFile_SetsResources(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, filepath.Join(dir, "templates", "init.md"), "custom init\n")
	writeFile(t, filepath.Join(dir, ".adr.yaml"), "resources: templates\n")

	_, _, err := runCLI(t, "init", "docs/adr")

	require.NoError(t, err)
	assert.Equal(t, "custom init\n", readFile(t, filepath.Join(dir, "docs", "adr", "init.md")))
}

func TestConfigFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, filepath.Join(dir, ".adr.yaml"), "format: xml\n")

	_, _, err := runCLI(t, "list")

	assert.ErrorIs(t, err, adrerrors.ErrConfig)
	assert.Equal(t, config.ExitConfigurationError, ExitCode(err))
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := runCLI(t, "--version")

	require.NoError(t, err)
	assert.Equal(t, "adr version "+Version+"\n", stdout)
}

func TestArgumentsAfterCommandAreLiteral(t *testing.T) {
	t.Run("title starting with a dash", func(t *testing.T) {
		dir := newWorkspace(t)
		_, _, err := runCLI(t, "init", "docs/adr")
		require.NoError(t, err)

		_, _, err = runCLI(t, "new", "-1 Rollback plan")

		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "docs", "adr", "1_-1_rollback_plan.md"))
	})

	t.Run("path starting with a dash", func(t *testing.T) {
		dir := newWorkspace(t)

		_, _, err := runCLI(t, "init", "-docs")

		require.NoError(t, err)
		assert.Equal(t, "-docs", readFile(t, filepath.Join(dir, ".adr_file")))
		assert.DirExists(t, filepath.Join(dir, "-docs"))
	})

	t.Run("help after new is a title", func(t *testing.T) {
		dir := newWorkspace(t)
		_, _, err := runCLI(t, "init", "docs/adr")
		require.NoError(t, err)

		stdout, _, err := runCLI(t, "new", "--help")

		require.NoError(t, err)
		assert.NotContains(t, stdout, "Usage:")
		assert.FileExists(t, filepath.Join(dir, "docs", "adr", "1_--help.md"))
	})
}

func TestFlagsBeforeCommandStillApply(t *testing.T) {
	dir := newWorkspace(t)

	_, _, err := runCLI(t, "--dry-run", "--verbose", "init", "adr-root")

	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dir, ".adr_file"))
}

func TestShellEnvironmentDoesNotLeakIntoRuns(t *testing.T) {
	t.Setenv("ADR_DRY_RUN", "true")
	t.Setenv("ADR_FORMAT", "yaml")
	dir := newWorkspace(t)

	_, _, err := runCLI(t, "init", "docs/adr")
	require.NoError(t, err)
	writeFile(t, filepath.Join(dir, "docs", "adr", "1_a.md"), "")
	stdout, _, err := runCLI(t, "list")

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, ".adr_file"))
	assert.Equal(t, "1_a.md\n", stdout)
}
