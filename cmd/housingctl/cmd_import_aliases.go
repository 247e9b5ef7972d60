package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/housing-reviews-api/internal/application/importer"
	"github.com/jhoicas/housing-reviews-api/internal/application/usecase"
	"github.com/jhoicas/housing-reviews-api/internal/infrastructure/postgres"
)

func importAliasesCmd() *cobra.Command {
	var encoding string

	cmd := &cobra.Command{
		Use:   "import-aliases <file.csv>",
		Short: "Alta masiva de alias desde CSV",
		Long: `Lee un CSV con cabecera (name obligatoria; company_id, category y priority opcionales)
y da de alta cada fila con las mismas validaciones que POST /api/admin/aliases.

Los nombres ya activos se informan y se saltan.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("abrir %s: %w", args[0], err)
			}
			defer func() { _ = f.Close() }()

			rows, err := importer.ReadAliases(f, encoding)
			if err != nil {
				return err
			}

			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			uc := usecase.NewAliasUseCase(
				postgres.NewAliasRepository(pool),
				postgres.NewCompanyRepository(pool),
				log,
				usecase.SearchLimits{Default: cfg.Search.DefaultLimit, Max: cfg.Search.MaxLimit},
			)
			sum, err := importer.Import(ctx, uc, rows)
			if sum != nil {
				out := cmd.OutOrStdout()
				for _, s := range sum.Skipped {
					fmt.Fprintf(out, "línea %d: %q ya existe, se salta\n", s.Line, s.Name)
				}
				for _, r := range sum.Rejected {
					fmt.Fprintf(out, "línea %d: %q rechazado: %s\n", r.Line, r.Name, r.Reason)
				}
				fmt.Fprintf(out, "creados: %d, duplicados: %d, rechazados: %d\n",
					sum.Created, len(sum.Skipped), len(sum.Rejected))
			}
			return err
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", importer.EncodingUTF8, "codificación del fichero: utf8 o latin1")
	return cmd
}
