package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	request "planpaineis_propostas/internal/adapter/http/dto/request"
	"planpaineis_propostas/internal/printer"
	"planpaineis_propostas/internal/usecase/interfaces"
)

var (
	exportInput  string
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a proposal to PDF or HTML",
	Long: `export reads a proposal form (YAML or JSON, same fields as the
POST /v1/proposals/export body), composes it against the stored catalog and
writes the document to RENDER_OUTPUT_DIR.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "input", "i", "", "proposal form file (.yaml, .yml or .json)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(interfaces.ExportFormatPDF), "pdf or html")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "file name, overrides fileName in the form")
	_ = exportCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	form, err := readExportRequest(exportInput)
	if err != nil {
		return printer.Error("Invalid input", err.Error())
	}
	if exportOut != "" {
		form.FileName = exportOut
	}
	in, err := form.ToComposeInput()
	if err != nil {
		return printer.Error("Invalid input", err.Error())
	}

	ctx := cmd.Context()
	a, err := buildApp(ctx)
	if err != nil {
		return setupError(err)
	}
	defer a.Close()

	// Local records are copied before the first catalog read, as the API does
	// on start. A failure only means the catalog may still miss them.
	if _, err := a.Migration.Run(ctx); err != nil {
		printer.Warning("local data migration failed, composing from the remote catalog: %v\n", err)
	}

	printer.Step("composing proposal\n")
	proposal, err := a.Proposal.Compose(ctx, in)
	if err != nil {
		return printer.Error("Compose failed", err.Error())
	}

	printer.Step("rendering %s\n", exportFormat)
	doc, err := a.Proposal.Export(ctx, proposal, interfaces.ExportFormat(strings.ToLower(exportFormat)), form.FileName)
	if err != nil {
		return printer.Error("Export failed", err.Error(), "Set BROWSER_BIN if Chromium cannot be downloaded", "Raise RENDER_CAPABILITY_TIMEOUT on slow machines")
	}
	printer.Success("%s written to %s (%d bytes)\n", doc.FileName, doc.Location, len(doc.Data))
	return nil
}

// readExportRequest decodes JSON for .json files and YAML otherwise.
func readExportRequest(path string) (request.ExportRequest, error) {
	var r request.ExportRequest
	raw, err := os.ReadFile(path)
	if err != nil {
		return r, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(raw, &r)
	default:
		err = yaml.Unmarshal(raw, &r)
	}
	if err != nil {
		return r, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return r, nil
}
