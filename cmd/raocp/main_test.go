package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config", "", "--log-level", "warn"}, args...))
	// Slice flags append once set; start every run from an empty vector.
	x := projectCmd.Flags().Lookup("x").Value.(interface{ Replace([]string) error })
	require.NoError(t, x.Replace(nil))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTreeCommand(t *testing.T) {
	out, err := run(t, "tree", "--node=-1")
	require.NoError(t, err)
	require.Contains(t, out, "ScenarioTree(nodes=32, stages=4, stopping_time=3) widths=[1 2 5 12 12]")
	require.Contains(t, out, "stage 0: nodes [0, 1) mass 1.000000")
	require.Contains(t, out, "stage 4: nodes [20, 32) mass 1.000000")
	require.NotContains(t, out, "path to")

	out, err = run(t, "tree", "--node", "20")
	require.NoError(t, err)
	require.Contains(t, out, "path to 20: nodes [0 1 3 8 20] states [0 0 0 0] probability 0.005000")

	_, err = run(t, "tree", "--node", "99")
	require.Error(t, err)
}

func TestRiskCommand(t *testing.T) {
	out, err := run(t, "risk")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 20)
	require.Equal(t, "Risk item at node 0; type: AVaR, alpha: 0.5; cone: Cart(NonnegOrth, NonnegOrth, Zero)", lines[0])
}

func TestRenderCommand(t *testing.T) {
	out, err := run(t, "render", "--format", "mermaid")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "graph TD\n"))

	out, err = run(t, "render", "--format", "svg")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "<svg "))

	_, err = run(t, "render", "--format", "png")
	require.Error(t, err)
}

func TestProjectCommand(t *testing.T) {
	out, err := run(t, "project", "--cone", "nonneg", "--x=-1,2", "--dual=false")
	require.NoError(t, err)
	require.Equal(t, "NonnegOrth: [0.0000 2.0000]\n", out)

	out, err = run(t, "project", "--cone", "soc", "--x", "4,4,5", "--dual=false")
	require.NoError(t, err)
	require.Equal(t, "SOC: [3.7678 3.7678 5.3284]\n", out)

	out, err = run(t, "project", "--cone", "uni", "--x=3,-4", "--dual")
	require.NoError(t, err)
	require.Equal(t, "Zero: [0.0000 0.0000]\n", out)

	_, err = run(t, "project", "--cone", "cube", "--x", "1", "--dual=false")
	require.Error(t, err)
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	doc := "transition: [[0.5, 0.5], [0, 1]]\ninitial: [1, 0]\nhorizon: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--config", path, "--log-level", "warn", "tree", "--node=-1"})
	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), "ScenarioTree(nodes=4, stages=2, stopping_time=2) widths=[1 1 2]")

	_, err := run(t, "--log-level", "loud", "tree")
	require.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("RAOCP_CONFIG", "/tmp/scenario.yaml")
	t.Setenv("RAOCP_LOG_LEVEL", "debug")
	cfg, err := loadEnv()
	require.NoError(t, err)
	require.Equal(t, "/tmp/scenario.yaml", cfg.Config)
	require.Equal(t, "debug", cfg.LogLevel)

	// Restored by t.Setenv on cleanup.
	require.NoError(t, os.Unsetenv("RAOCP_LOG_LEVEL"))
	cfg, err = loadEnv()
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.LogLevel)
}
