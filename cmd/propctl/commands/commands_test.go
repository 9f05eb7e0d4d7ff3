package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planpaineis_propostas/internal/printer"
	"planpaineis_propostas/internal/usecase"
	"planpaineis_propostas/pkg"
)

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	prevNoColor, prevOut, prevErr := color.NoColor, printer.Out, printer.ErrOut
	color.NoColor = true
	var out, errOut bytes.Buffer
	printer.Out, printer.ErrOut = &out, &errOut
	t.Cleanup(func() {
		color.NoColor, printer.Out, printer.ErrOut = prevNoColor, prevOut, prevErr
	})
	return &out, &errOut
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	return Execute()
}

func TestMaskCommands(t *testing.T) {
	out, _ := captureOutput(t)

	require.NoError(t, run(t, "mask", "cnpj", "11222333000181"))
	require.NoError(t, run(t, "mask", "phone", "11987654321"))

	assert.Equal(t, "11.222.333/0001-81\n(11) 98765-4321\n", out.String())
}

func TestMaskCommand_RequiresValue(t *testing.T) {
	captureOutput(t)
	assert.Error(t, run(t, "mask", "cnpj"))
}

func TestReadExportRequest(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "proposal.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("fileName: acme\nprofileId: 2\nbudgetOptions:\n  - months: 3\n    installments: 1\n"), 0o644))
	r, err := readExportRequest(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "acme", r.FileName)
	assert.Equal(t, int64(2), r.ProfileID)
	require.Len(t, r.BudgetOptions, 1)
	assert.Equal(t, 3, r.BudgetOptions[0].Months)

	jsonPath := filepath.Join(dir, "proposal.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"client":{"name":"Acme"}}`), 0o644))
	r, err = readExportRequest(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "Acme", r.Client.Name)

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`{`), 0o644))
	_, err = readExportRequest(badPath)
	assert.ErrorContains(t, err, "decode bad.json")

	_, err = readExportRequest(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestReportMigration(t *testing.T) {
	out, errOut := captureOutput(t)

	err := reportMigration(usecase.MigrationReport{
		State:    usecase.MigrationDone,
		Inserted: map[string]int{"products": 2, "cover_images": 1},
		Skipped:  map[string]int{"products": 1},
	}, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "  cover_images   inserted=1 skipped=0\n  products       inserted=2 skipped=1\n")
	assert.Contains(t, out.String(), "✓ migration done\n")

	out.Reset()
	require.NoError(t, reportMigration(usecase.MigrationReport{State: usecase.MigrationDone}, nil))
	assert.Equal(t, "✓ migration done, nothing to copy\n", out.String())

	err = reportMigration(usecase.MigrationReport{}, &pkg.MigrationError{Collection: "products", Err: errors.New("timeout")})
	assert.EqualError(t, err, "Migration failed")
	assert.Contains(t, errOut.String(), "migration of products failed: timeout")
}

func TestSetupError(t *testing.T) {
	_, errOut := captureOutput(t)

	err := setupError(&pkg.ConfigurationError{Missing: []string{"STORE_ENDPOINT"}})
	assert.EqualError(t, err, "Configuration error")
	assert.Contains(t, errOut.String(), "Missing required environment variables: STORE_ENDPOINT")
}
