package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "none.env")))
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestOrdersCommand(t *testing.T) {
	out := execute(t, "", "orders", "--search", "draft")
	require.Contains(t, out, "PO-2024-002")
	require.NotContains(t, out, "PO-2024-001")
	require.Contains(t, out, "Showing 1 to 1 of 1 purchase orders")
}

func TestBillsCommandExpand(t *testing.T) {
	out := execute(t, "", "bills", "--expand")
	require.Contains(t, out, "BILL-001")
	require.Contains(t, out, "BILL-002")
	require.Contains(t, out, "PO Number: PO-2024-001 (#PO001)")
}

func TestBillsCommandPaging(t *testing.T) {
	out := execute(t, "", "bills", "--limit", "1", "--page", "2")
	require.Contains(t, out, "BILL-002")
	require.NotContains(t, out, "BILL-001")
	require.Contains(t, out, "Showing 2 to 2 of 2 purchase bills")
}

func TestShellCommand(t *testing.T) {
	out := execute(t, "list orders\nquit\n", "shell")
	require.Contains(t, out, "PO-2024-001")
	require.Contains(t, out, "console> ")
}

func TestSeedDisabled(t *testing.T) {
	t.Setenv("CONSOLE_SEED", "false")
	out := execute(t, "", "orders")
	require.Contains(t, out, "Showing 0 of 0 purchase orders")
}
