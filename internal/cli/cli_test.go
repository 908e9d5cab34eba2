package cli

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kartoza/kinetics-lab/internal/catalog"
	"github.com/kartoza/kinetics-lab/internal/kinetics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with an isolated settings directory and
// returns whatever the command printed to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("KINETICS_CONFIG_DIR", t.TempDir())
	t.Setenv("KINETICS_CATALOG", "")
	t.Setenv("KINETICS_PORT", "")
	t.Setenv("KINETICS_LOG_LEVEL", "error")

	var out, errOut bytes.Buffer
	cmd := NewRootCommand("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionFlag(t *testing.T) {
	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "Kinetics Lab vtest\n", out)
}

func TestEvaluateDefaults(t *testing.T) {
	out, err := run(t, "evaluate")
	require.NoError(t, err)

	assert.Contains(t, out, "Reaction:                      Sodium thiosulfate + hydrochloric acid")
	assert.Contains(t, out, "Temperature:                   25 ℃")
	assert.Contains(t, out, "Concentration:                 0.10 mol/L")
	assert.Contains(t, out, "Rate constant k:")
	assert.Contains(t, out, "Estimated time (inverse rate):")
}

func TestEvaluateConditions(t *testing.T) {
	out, err := run(t, "evaluate", "-r", "hydrogen_peroxide", "-t", "25", "-c", "0.1")
	require.NoError(t, err)

	assert.Contains(t, out, "Equation:                      2H₂O₂ → 2H₂O + O₂")
	assert.Contains(t, out, "Rate constant k:               3.07518e-05 s⁻¹")
	assert.Contains(t, out, "Reaction rate:                 0.000 mol/(L·s)")
	assert.Contains(t, out, "Estimated time (inverse rate): 325184.71 s")
}

func TestEvaluateZeroConcentration(t *testing.T) {
	out, err := run(t, "evaluate", "--concentration", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Estimated time (inverse rate): "+kinetics.InfiniteMarker)
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown reaction", []string{"evaluate", "-r", "phlogiston"}, catalog.ErrUnknownReaction},
		{"below absolute zero", []string{"evaluate", "--temperature=-300"}, kinetics.ErrTemperatureOutOfDomain},
		{"negative concentration", []string{"evaluate", "--concentration=-1"}, kinetics.ErrNegativeConcentration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCurveCSV(t *testing.T) {
	out, err := run(t, "curve", "--min", "0", "--max", "100", "--step", "1")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 102)

	assert.Equal(t, []string{"temperature", "rate"}, records[0])
	assert.Equal(t, "0", records[1][0])
	assert.Equal(t, "100", records[101][0])
}

func TestCurveDefaultsToCatalogRange(t *testing.T) {
	out, err := run(t, "curve", "-r", "ester_hydrolysis")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	// built-in temperature slider is 0..150 in steps of 1
	assert.Len(t, records, 152)
}

func TestCurveInvalidRange(t *testing.T) {
	_, err := run(t, "curve", "--min", "50", "--max", "10")
	assert.ErrorIs(t, err, kinetics.ErrInvalidRange)
}

func TestReactionsTable(t *testing.T) {
	out, err := run(t, "reactions")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "KEY"))
	assert.Contains(t, out, "thiosulfate_hcl *")
	assert.Contains(t, out, "Ethyl acetate saponification")
}

func TestCatalogFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.yaml")
	data := `default: iodine_clock
reactions:
  - key: iodine_clock
    name: Iodine clock
    pre_exponential_factor: 2.0e5
    activation_energy: 55000
    order: 1
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, err := run(t, "reactions", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "iodine_clock *")
	assert.NotContains(t, out, "thiosulfate_hcl")

	out, err = run(t, "evaluate", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Reaction:                      Iodine clock")
}

func TestMissingCatalogFile(t *testing.T) {
	_, err := run(t, "reactions", "--catalog", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestFindAvailablePort(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer l.Close()
	busy := l.Addr().(*net.TCPAddr).Port

	port, err := findAvailablePort(busy, 10)
	require.NoError(t, err)
	assert.NotEqual(t, busy, port)
	assert.Greater(t, port, busy)
}

func TestFindAvailablePortExhausted(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer l.Close()
	busy := l.Addr().(*net.TCPAddr).Port

	_, err = findAvailablePort(busy, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("starting from %d", busy))
}
