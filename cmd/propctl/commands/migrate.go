package commands

import (
	"sort"

	"github.com/spf13/cobra"

	"planpaineis_propostas/internal/app"
	"planpaineis_propostas/internal/printer"
	"planpaineis_propostas/internal/usecase"
)

var seedDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy local records to the data store once",
	Long: `migrate copies the sales profiles, products and cover images kept in the
local store to the configured data store and marks the migration as done.
A finished migration is not repeated.

With --seed-dir, <key>.json files in the directory are first imported into
the local store (planpaineis_salesProfiles.json, planpaineis_products.json,
planpaineis_coverImages.json).`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&seedDir, "seed-dir", "", "directory with legacy JSON arrays to import first")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := buildApp(ctx, app.WithoutRendering())
	if err != nil {
		return setupError(err)
	}
	defer a.Close()

	if seedDir != "" {
		imported, err := a.Legacy.Import(ctx, seedDir)
		if err != nil {
			return printer.Error("Seed import failed", err.Error(), "Check that every <key>.json file holds a JSON array")
		}
		for _, key := range imported {
			printer.Step("imported %s\n", key)
		}
	}

	return reportMigration(a.Migration.Run(ctx))
}

func reportMigration(report usecase.MigrationReport, err error) error {
	if err != nil {
		return printer.Error("Migration failed", err.Error(), "Nothing was marked as done; run the command again to resume")
	}
	if len(report.Inserted) == 0 && len(report.Skipped) == 0 {
		printer.Success("migration %s, nothing to copy\n", report.State)
		return nil
	}
	for _, name := range collectionNames(report) {
		printer.Info("  %-14s inserted=%d skipped=%d\n", name, report.Inserted[name], report.Skipped[name])
	}
	printer.Success("migration %s\n", report.State)
	return nil
}

func collectionNames(r usecase.MigrationReport) []string {
	seen := map[string]bool{}
	var names []string
	for _, m := range []map[string]int{r.Inserted, r.Skipped} {
		for k := range m {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}
	sort.Strings(names)
	return names
}
