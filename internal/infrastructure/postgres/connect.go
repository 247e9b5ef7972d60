package postgres

import (
	"context"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/housing-reviews-api/pkg/config"
	"github.com/jhoicas/housing-reviews-api/pkg/logger"
)

// Connect abre el pool reintentando mientras la base de datos arranca.
// Los intentos y la espera salen de DB_CONNECT_ATTEMPTS y DB_CONNECT_DELAY_MS.
func Connect(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*pgxpool.Pool, error) {
	attempts := cfg.ConnectAttempts
	if attempts <= 0 {
		attempts = 1
	}
	return retry.DoWithData(
		func() (*pgxpool.Pool, error) {
			return NewPool(ctx, cfg)
		},
		retry.Context(ctx),
		retry.Attempts(uint(attempts)),
		retry.Delay(time.Duration(cfg.ConnectDelayMS)*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Uint("attempt", n+1).Msg("PostgreSQL no disponible, reintentando")
		}),
	)
}
