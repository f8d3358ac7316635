package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simnet/internal/corpus"
	"simnet/internal/testsupport"
)

func TestExtractWritesDataset(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteSourceTree(t, root, map[string]string{
		"pkg/A.java": "package pkg;\n/**\n * @author Ann Lee\n */\nclass A {}\n",
		"pkg/B.java": "package pkg;\nclass B {}\n",
	})
	env := setupCLITestEnv(t, testsupport.WithCorpusRoot(root))

	out, _, err := runCLI(t, []string{"extract"}, env.configPath)
	require.NoError(t, err)
	requireContains(t, out, "Wrote 2 documents (1 blank)")

	f, err := os.Open(filepath.Join(env.cfg.Paths.OutputDir, "demo_author_dataset.tsv"))
	require.NoError(t, err)
	defer f.Close()
	docs, err := corpus.ReadDataset(f)
	require.NoError(t, err)
	assert.Equal(t, []corpus.Document{{ID: "pkg.A", Text: "Ann Lee"}, {ID: "pkg.B", Text: ""}}, docs)
}

func TestExtractToStdout(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteSourceTree(t, root, map[string]string{
		"A.java": "/** @author Ann */\nclass A {}\n",
	})
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"extract", "--root", root, "--stdout"}, env.configPath)
	require.NoError(t, err)
	assert.Equal(t, "# id\ttext\nA\tAnn\n", out)
}

func TestExtractRequiresRoot(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"extract"}, env.configPath)
	require.ErrorContains(t, err, "no corpus root")
}

func TestScoreCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteDatasetFile(t, env.baseDir, sampleRows)

	out, _, err := runCLI(t, []string{"score", "--input", input, "a", "e", "--json"}, env.configPath)
	require.NoError(t, err)
	var report scoreReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "a", report.Source)
	assert.Equal(t, "e", report.Target)
	assert.False(t, report.Exact)
	assert.Equal(t, 1, report.Shared)
	assert.InDelta(t, 1.0/3.0, report.Jaccard, 1e-12)

	out, _, err = runCLI(t, []string{"score", "--input", input, "a", "d"}, env.configPath)
	require.NoError(t, err)
	requireContains(t, out, "blank documents never match")

	_, _, err = runCLI(t, []string{"score", "--input", input, "a", "zzz"}, env.configPath)
	require.ErrorContains(t, err, `"zzz" not found`)
}

func TestRunsCommands(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithModels("exact"))
	input := testsupport.WriteDatasetFile(t, env.baseDir, sampleRows)

	out, _, err := runCLI(t, []string{"runs"}, env.configPath)
	require.NoError(t, err)
	requireContains(t, out, "No runs recorded")

	_, _, err = runCLI(t, []string{"build", "--input", input}, env.configPath)
	require.NoError(t, err)

	out, _, err = runCLI(t, []string{"runs", "--json"}, env.configPath)
	require.NoError(t, err)
	var views []runView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "demo", views[0].Dataset)
	assert.Equal(t, 1, views[0].EdgeSets)

	out, _, err = runCLI(t, []string{"runs", "show", views[0].ID}, env.configPath)
	require.NoError(t, err)
	requireContains(t, out, "Run "+views[0].ID+" (completed)")
	requireContains(t, out, "demo_author_exact.txt")
	requireContains(t, out, " ok ")

	require.NoError(t, os.WriteFile(filepath.Join(env.cfg.Paths.OutputDir, "demo_author_exact.txt"), []byte("# source target\n"), 0o644))
	out, _, err = runCLI(t, []string{"runs", "show", views[0].ID}, env.configPath)
	require.NoError(t, err)
	requireContains(t, out, "modified")

	_, _, err = runCLI(t, []string{"runs", "show", "missing"}, env.configPath)
	require.Error(t, err)
}

func TestRunsRequiresLedger(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithLedgerDisabled())

	_, _, err := runCLI(t, []string{"runs"}, env.configPath)
	require.ErrorIs(t, err, errLedgerDisabled)
}

func TestCheckCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteDatasetFile(t, env.baseDir, sampleRows)

	out, _, err := runCLI(t, []string{"check", "--input", input}, env.configPath)
	require.NoError(t, err)
	requireContains(t, out, "== Environment ==")
	requireContains(t, out, "[OK]")
	requireContains(t, out, "0.6")
	assert.NotContains(t, out, "[ERROR]")

	out, _, err = runCLI(t, []string{"check", "--root", filepath.Join(env.baseDir, "missing")}, env.configPath)
	require.Error(t, err)
	requireContains(t, out, "[ERROR]")
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	require.NoError(t, err)
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, "Models: exact, bow, jaccard, cosine")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	require.NoError(t, err)
	requireContains(t, out, "Wrote sample configuration")
	require.FileExists(t, target)

	_, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	require.ErrorContains(t, err, "already exists")

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	require.NoError(t, err)
	requireContains(t, out, "Config path: "+target)
}

func TestConfigValidateRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[network]\nmodels = [\"levenshtein\"]\n"), 0o644))

	_, _, err := runCLI(t, []string{"config", "validate"}, path)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "network.models"))
}

func TestLogLevelFlagValidated(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteDatasetFile(t, env.baseDir, sampleRows)

	_, _, err := runCLI(t, []string{"--log-level", "loud", "score", "--input", input, "a", "b"}, env.configPath)
	require.ErrorContains(t, err, "--log-level")

	_, stderr, err := runCLI(t, []string{"--log-level", "debug", "score", "--input", input, "a", "b"}, env.configPath)
	require.NoError(t, err)
	assert.NotEmpty(t, stderr)
}
