package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rogerio-castellano/inventory-manager/internal/cli"
	"github.com/rogerio-castellano/inventory-manager/internal/config"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOW_STOCK_THRESHOLD", "5")
	t.Setenv("SEED_SAMPLE", "true")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "inventory dev")
}

func TestReportCommand(t *testing.T) {
	out, err := run(t, "report")
	require.NoError(t, err)
	assert.Equal(t, "=== Low Stock Report (threshold 5) ===\n\nID: 4 | Name: Milk | Qty: 5 | Price: 3.00\n", out)
}

func TestReportCommand_Threshold(t *testing.T) {
	out, err := run(t, "report", "--threshold", "-3")
	require.NoError(t, err)
	assert.Equal(t, "=== Low Stock Report (threshold 0) ===\n\n"+repo.NoLowStockMessage+"\n", out)

	out, err = run(t, "report", "--threshold", "0", "--json")
	require.NoError(t, err)
	var empty repo.LowStockReport
	require.NoError(t, json.Unmarshal([]byte(out), &empty))
	assert.Empty(t, empty.Items)
	assert.Equal(t, repo.NoLowStockMessage, empty.Message)

	out, err = run(t, "report", "--threshold", "20", "--json")
	require.NoError(t, err)
	var report repo.LowStockReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 20, report.Threshold)
	assert.Len(t, report.Items, 3)
}

func TestDashboardCommand_EmptyStore(t *testing.T) {
	t.Setenv("SEED_SAMPLE", "false")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"dashboard", "--json"})
	require.NoError(t, cmd.Execute())

	var m repo.Metrics
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, 0, m.TotalProducts)
	assert.Equal(t, repo.NewestItemPlaceholder, m.NewestItem)
}

func TestDashboardCommand(t *testing.T) {
	out, err := run(t, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Products")
	assert.Contains(t, out, "130.00")
	assert.Contains(t, out, "Milk")
}

func TestServeCommand_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := run(t, "serve")

	assert.ErrorIs(t, err, config.ErrMissingConfig)
}

func TestEventsCommand_RequiresRedis(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")

	_, err := run(t, "events")

	assert.ErrorIs(t, err, config.ErrMissingConfig)
}
