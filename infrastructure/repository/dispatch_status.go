package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/franpass87/esperienze-insights-api/infrastructure/database/postgres"
	"github.com/franpass87/esperienze-insights-api/internal/domain"
)

const (
	dispatchStatusTable = "digest_dispatch_status ds"
)

// ID fixo: a tabela guarda um único registro, sobrescrito a cada envio
const dispatchStatusSlotID = 1

type DispatchStatusRepository interface {
	Save(status *domain.DispatchStatus) error
	Get() (*domain.DispatchStatus, error)
}

type dispatchStatusRepository struct {
	conn *postgres.Connection
}

func NewDispatchStatusRepository(conn *postgres.Connection) DispatchStatusRepository {
	return &dispatchStatusRepository{
		conn: conn,
	}
}

// Save sobrescreve o registro único de status (last-write-wins, sem
// verificação otimista; envios concorrentes são raros e aceitos).
func (r *dispatchStatusRepository) Save(status *domain.DispatchStatus) error {
	query := squirrel.StatementBuilder.
		Insert("digest_dispatch_status").
		Columns("id", "dispatched_at", "message", "status").
		Values(dispatchStatusSlotID, status.Timestamp, status.Message, status.Status).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				dispatched_at = EXCLUDED.dispatched_at,
				message = EXCLUDED.message,
				status = EXCLUDED.status
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao salvar status de dispatch: %w", err)
	}

	return nil
}

func (r *dispatchStatusRepository) Get() (*domain.DispatchStatus, error) {
	query, args, err := squirrel.
		Select("ds.dispatched_at, ds.message, ds.status").
		From(dispatchStatusTable).
		Where(squirrel.Eq{"ds.id": dispatchStatusSlotID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	status := &domain.DispatchStatus{}
	err = r.conn.QueryRow(query, args...).Scan(&status.Timestamp, &status.Message, &status.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar status de dispatch: %w", err)
	}

	return status, nil
}
