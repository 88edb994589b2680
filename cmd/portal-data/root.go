package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/siviack/portal/pkg/configuration"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "portal-data",
		Short:         "Portal data import/seed tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newSeedCmd())
	return cmd
}

func Execute() {
	defer configuration.Use().Unload()
	if err := newRootCmd().Execute(); err != nil {
		code := exitCode(err)
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(code)
	}
}
