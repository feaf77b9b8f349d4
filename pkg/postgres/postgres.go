package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/wildfire_dashboard/internal/config"
)

const (
	maxConns        = 10
	pingTimeout     = 5 * time.Second
	maxConnIdleTime = 5 * time.Minute
)

// NewPostgresDB создает пул соединений PostgreSQL для журнала анализов
// и проверяет, что расширение PostGIS доступно
func NewPostgresDB(ctx context.Context, appCfg *config.Config) (*pgxpool.Pool, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}
	cfgPool.MaxConns = maxConns
	cfgPool.MaxConnIdleTime = maxConnIdleTime

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул соединений: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := dbpool.Ping(pingCtx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("не удалось выполнить ping к postgres: %w", err)
	}

	var version string
	if err := dbpool.QueryRow(pingCtx, "SELECT PostGIS_Version()").Scan(&version); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("расширение postgis недоступно: %w", err)
	}

	return dbpool, nil
}
