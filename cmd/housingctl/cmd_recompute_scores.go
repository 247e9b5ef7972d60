package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/housing-reviews-api/internal/application/usecase"
	"github.com/jhoicas/housing-reviews-api/internal/infrastructure/postgres"
)

func recomputeScoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recompute-scores",
		Short: "Recalcula trust score y completitud de todos los usuarios y empresas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			scores := usecase.NewScoreUseCase(
				postgres.NewUserRepository(pool),
				postgres.NewCompanyRepository(pool),
				log,
			)
			sum, err := scores.RecalculateAll(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "usuarios: %d, empresas: %d, fallos: %d\n", sum.Users, sum.Companies, sum.Failed)
			return nil
		},
	}
}
