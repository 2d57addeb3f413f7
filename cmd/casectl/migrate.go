package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/casebook/internal/services"
)

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// the schema is migrated when the store is opened
			fmt.Fprintf(cmd.OutOrStdout(), "Schema up to date (%s)\n", c.db.Driver())
			return nil
		},
	}
}

func newSeedCmd(c *cli) *cobra.Command {
	var ifEmpty bool
	cmd := &cobra.Command{
		Use:   "seed <file>",
		Short: "Load cases from a YAML seed file",
		Long: `Seed validates every case in the file and stores them in one
transaction: either all are added or none are.

Example seed file:
  cases:
    - title: Rate limiter
      description: Design a distributed rate limiter.
      difficulty: senior
      diagram: diagrams/rate-limiter.excalidraw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ifEmpty {
				created, err := services.SeedIfEmpty(cmd.Context(), c.svc, args[0])
				if err != nil {
					return err
				}
				if created == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "Store is not empty, nothing seeded")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d cases\n", len(created))
				return nil
			}
			subs, err := services.LoadSeedFile(args[0])
			if err != nil {
				return err
			}
			created, err := c.svc.SubmitAll(cmd.Context(), subs)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d cases\n", len(created))
			return nil
		},
	}
	cmd.Flags().BoolVar(&ifEmpty, "if-empty", false, "only seed when the store has no cases")
	return cmd
}
