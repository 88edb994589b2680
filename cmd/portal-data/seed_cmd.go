package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siviack/portal/modules/tracking/infrastructure/persistence"
	"github.com/siviack/portal/modules/tracking/services"
	"github.com/siviack/portal/pkg/composables"
	"github.com/siviack/portal/pkg/configuration"
)

type seedOptions struct {
	adminEmail    string
	adminPassword string
	skipCatalogs  bool
}

func newSeedCmd() *cobra.Command {
	var opts seedOptions
	conf := configuration.Use()

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the admin account and master-data catalogs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.adminEmail, "admin-email", conf.AdminEmail, "Administrator email")
	cmd.Flags().StringVar(&opts.adminPassword, "admin-password", conf.AdminPassword, "Administrator password")
	cmd.Flags().BoolVar(&opts.skipCatalogs, "skip-catalogs", false, "Seed only the admin account")

	return cmd
}

type seedSummary struct {
	AdminEmail       string `json:"adminEmail"`
	CatalogsInserted int    `json:"catalogsInserted"`
}

func runSeed(ctx context.Context, opts seedOptions) error {
	if opts.adminEmail == "" {
		return withCode(exitUsage, fmt.Errorf("--admin-email is required"))
	}
	if opts.adminPassword == "" {
		return withCode(exitUsage, fmt.Errorf("--admin-password is required"))
	}

	conf := configuration.Use()
	log := conf.Logger()

	pool, err := connectDB(ctx)
	if err != nil {
		return withCode(exitDB, err)
	}
	defer pool.Close()
	ctx = composables.WithPool(ctx, pool)

	svc := services.NewSeedService(
		persistence.NewPersonRepository(),
		persistence.NewCatalogRepository(),
		log,
	)

	summary, err := composables.InTxResult(ctx, func(txCtx context.Context) (seedSummary, error) {
		admin, err := svc.SeedAdmin(txCtx, opts.adminEmail, opts.adminPassword)
		if err != nil {
			return seedSummary{}, err
		}
		out := seedSummary{AdminEmail: admin.Email()}

		if opts.skipCatalogs {
			return out, nil
		}
		inserted, err := svc.SeedCatalogs(txCtx)
		if err != nil {
			return seedSummary{}, err
		}
		out.CatalogsInserted = inserted
		return out, nil
	})
	if err != nil {
		return withCode(exitDBWrite, err)
	}
	return emitResult(summary)
}
