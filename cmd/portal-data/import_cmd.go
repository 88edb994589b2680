package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/siviack/portal/modules/tracking/importer"
	"github.com/siviack/portal/modules/tracking/infrastructure/persistence"
	"github.com/siviack/portal/pkg/composables"
	"github.com/siviack/portal/pkg/configuration"
	"github.com/siviack/portal/pkg/eventbus"
	"github.com/siviack/portal/pkg/passwords"
)

type importOptions struct {
	file     string
	skipRows int
	orgName  string
	orgRUC   string
}

func newImportCmd() *cobra.Command {
	var opts importOptions
	conf := configuration.Use()

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import the activity extract into the portal database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", conf.Import.SourcePath, "Extract file (.xlsx or .csv)")
	cmd.Flags().IntVar(&opts.skipRows, "skip-rows", conf.Import.HeaderSkipRows, "Decorative rows above the header")
	cmd.Flags().StringVar(&opts.orgName, "org-name", conf.Import.DefaultOrgName, "Organization the rows belong to")
	cmd.Flags().StringVar(&opts.orgRUC, "org-ruc", conf.Import.DefaultOrgRUC, "Organization tax ID used on first creation")

	return cmd
}

func runImport(ctx context.Context, opts importOptions) error {
	if strings.TrimSpace(opts.file) == "" {
		return withCode(exitUsage, fmt.Errorf("--file is required"))
	}
	if opts.skipRows < 0 {
		return withCode(exitUsage, fmt.Errorf("--skip-rows must be non-negative"))
	}
	if _, err := os.Stat(opts.file); err != nil {
		return withCode(exitValidation, fmt.Errorf("source file: %w", err))
	}

	source, err := openSource(opts.file, opts.skipRows)
	if err != nil {
		return withCode(exitUsage, err)
	}

	conf := configuration.Use()
	log := conf.Logger()

	pool, err := connectDB(ctx)
	if err != nil {
		return withCode(exitDB, err)
	}
	defer pool.Close()
	ctx = composables.WithPool(ctx, pool)

	placeholderHash, err := passwords.Hash(conf.Import.DefaultUserPassword)
	if err != nil {
		return withCode(exitValidation, fmt.Errorf("hash placeholder password: %w", err))
	}

	orgs := persistence.NewOrganizationRepository()
	areas := persistence.NewAreaRepository()
	persons := persistence.NewPersonRepository()
	activities := persistence.NewActivityRepository()

	resolver := importer.NewResolver(orgs, areas, persons, importer.ResolverConfig{
		PasswordHash: placeholderHash,
	})
	sink := importer.MultiSink(
		importer.NewLogSink(log),
		importer.NewEventSink(eventbus.NewEventPublisher(log)),
	)

	imp := importer.New(source, resolver, activities, sink, log, importer.Config{
		DefaultOrgName: opts.orgName,
		DefaultOrgRUC:  opts.orgRUC,
	})

	summary, err := imp.Run(ctx)
	if err != nil {
		_ = emitResult(summary)
		return withCode(exitDBWrite, err)
	}
	return emitResult(summary)
}

// openSource picks the reader by extension. The default extract carries a
// misleading double extension ("datos_scp.csv.xlsx"); only the final one
// counts.
func openSource(path string, skipRows int) (importer.TabularSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return importer.NewXLSXSource(path, skipRows), nil
	case ".csv":
		return importer.NewCSVSource(path, skipRows), nil
	default:
		return nil, fmt.Errorf("unsupported source extension: %s", filepath.Ext(path))
	}
}
