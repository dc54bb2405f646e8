package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/franpass87/esperienze-insights-api/infrastructure/database/postgres"
)

const (
	analyticsCacheTable = "analytics_cache ac"
)

type AnalyticsCacheRepository interface {
	Get(key string) ([]byte, error)
	Save(key string, payload []byte, ttl time.Duration) error
	DeleteExpired() (int64, error)
}

type analyticsCacheRepository struct {
	conn *postgres.Connection
}

func NewAnalyticsCacheRepository(conn *postgres.Connection) AnalyticsCacheRepository {
	return &analyticsCacheRepository{
		conn: conn,
	}
}

// Get retorna o payload cacheado, ou nil em caso de miss ou entrada expirada
func (r *analyticsCacheRepository) Get(key string) ([]byte, error) {
	query, args, err := squirrel.
		Select("ac.payload").
		From(analyticsCacheTable).
		Where(squirrel.Eq{"ac.cache_key": key}).
		Where(squirrel.Gt{"ac.expires_at": time.Now()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var payload []byte
	err = r.conn.QueryRow(query, args...).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar entrada de cache: %w", err)
	}

	return payload, nil
}

func (r *analyticsCacheRepository) Save(key string, payload []byte, ttl time.Duration) error {
	query := squirrel.StatementBuilder.
		Insert("analytics_cache").
		Columns("cache_key", "payload", "expires_at").
		Values(key, payload, time.Now().Add(ttl)).
		Suffix(`
			ON CONFLICT (cache_key) DO UPDATE SET
				payload = EXCLUDED.payload,
				expires_at = EXCLUDED.expires_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao salvar entrada de cache: %w", err)
	}

	return nil
}

func (r *analyticsCacheRepository) DeleteExpired() (int64, error) {
	query, args, err := squirrel.
		Delete("analytics_cache").
		Where(squirrel.LtOrEq{"expires_at": time.Now()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
