package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fxarb/arbitrage"
	"github.com/katalvlaran/fxarb/internal/cli"
	"github.com/katalvlaran/fxarb/internal/config"
	"github.com/katalvlaran/fxarb/ratesheet"
)

// execute runs the command tree with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCommand(config.Default())
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

// generate writes a generated sheet to dir and returns its path.
func generate(t *testing.T, dir, file string, args ...string) string {
	t.Helper()
	out, _, err := execute(t, append([]string{"generate"}, args...)...)
	require.NoError(t, err)
	path := filepath.Join(dir, file)
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))

	return path
}

func TestDetect_BuiltIn(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "detect")
	require.NoError(t, err)
	assert.Equal(t, "Arbitrage opportunity detected!\n"+
		"Cycle: GBP -> EUR -> USD -> GBP\n"+
		"Starting with $1, you can end with $1.232\n", out)
}

func TestDetect_Trace(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "detect", "--trace")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.True(t, strings.HasPrefix(lines[0], "Distances after relaxation 1: "))
	assert.True(t, strings.HasPrefix(lines[1], "Distances after relaxation 2: "))
	assert.True(t, strings.HasPrefix(lines[2], "Final distances after all relaxations: "))
	assert.Equal(t, "Arbitrage opportunity detected!", lines[3])
}

func TestDetect_JSON(t *testing.T) {
	t.Parallel()

	out, stderr, err := execute(t, "--format", "json", "detect", "--trace")
	require.NoError(t, err)
	assert.Contains(t, out, `"cycle":["GBP","EUR","USD","GBP"]`)
	assert.Contains(t, out, `"indices":[2,1,0,2]`)
	assert.NotContains(t, out, "Distances after")
	assert.Contains(t, stderr, "Distances after relaxation 1:")
}

func TestDetect_VerifyAndMetrics(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	flat := generate(t, dir, "flat.yaml", "--n", "5", "--seed", "9", "--spread", "0.01")
	prom := filepath.Join(dir, "fxarb.prom")

	out, _, err := execute(t, "--metrics-file", prom, "detect", "--verify", flat)
	require.NoError(t, err)
	assert.Equal(t, "No arbitrage opportunity.\n", out)

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `fxarb_detections_total{outcome="none"} 1`)
}

func TestDetect_Rejected(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"rates":[[1,-2],[0.5,1]]}`), 0o600))

	out, _, err := execute(t, "detect", path)
	require.ErrorIs(t, err, arbitrage.ErrInvalidRate)
	assert.True(t, strings.HasPrefix(out, "Rejected: "))
}

func TestDetect_RejectedJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rates: [[1, 0], [1, 1]]\n"), 0o600))

	out, _, err := execute(t, "--format", "json", "detect", path)
	require.ErrorIs(t, err, arbitrage.ErrInvalidRate)
	assert.Contains(t, out, `"found":false`)
	assert.Contains(t, out, `"error":`)
}

func TestDetect_VerifyConfirmsCycle(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "detect", "--verify")
	require.NoError(t, err)
	assert.Contains(t, out, "Cycle: GBP -> EUR -> USD -> GBP")
}

func TestDetect_BadFormat(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "--format", "xml", "detect")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestGenerate_InjectedCycleIsDetected(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "generate", "--n", "4", "--seed", "5",
		"--inject", "1,3,2", "--gain", "1.05", "--sheet-format", "json")
	require.NoError(t, err)

	sheet, err := ratesheet.Parse([]byte(out), ratesheet.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "generated", sheet.Name)

	res, err := arbitrage.Detect(sheet.Size(), sheet.Rates)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Greater(t, res.Profit, 1.0)
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "generate", "--spread", "1")
	assert.Error(t, err)
	_, _, err = execute(t, "generate", "--sheet-format", "csv")
	assert.ErrorIs(t, err, ratesheet.ErrUnknownFormat)
	_, _, err = execute(t, "generate", "--n", "3", "--inject", "0,7")
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	flat := generate(t, dir, "flat.yaml", "--n", "4", "--seed", "2", "--spread", "0.01")
	arb := generate(t, dir, "arb.yaml", "--n", "4", "--seed", "2", "--inject", "0,1,2", "--gain", "1.1")

	out, _, err := execute(t, "batch", "--workers", "2", flat, arb, flat)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "== "))
	assert.Equal(t, 2, strings.Count(out, "No arbitrage opportunity."))
	assert.Equal(t, 1, strings.Count(out, "Arbitrage opportunity detected!"))

	missing := filepath.Join(dir, "missing.yaml")
	out, _, err = execute(t, "--format", "json", "batch", arb, missing)
	require.Error(t, err)
	assert.Contains(t, out, `"found":true`)
	assert.Contains(t, out, `"error":`)
}
