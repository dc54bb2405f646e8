package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/franpass87/esperienze-insights-api/infrastructure/database/postgres"
	"github.com/franpass87/esperienze-insights-api/internal/domain"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const (
	trackingEventsTable = "tracking_events te"
)

// pq 42P01: undefined_table
const pqUndefinedTable = "42P01"

type EventCountRepository interface {
	CountByType(eventType domain.EventType, startDate, endDate time.Time) (int, error)
}

type eventCountRepository struct {
	conn *postgres.Connection
}

func NewEventCountRepository(conn *postgres.Connection) EventCountRepository {
	return &eventCountRepository{
		conn: conn,
	}
}

// CountByType conta os eventos de tracking de um tipo no período informado.
// A tabela de eventos pode não existir em instalações recentes; nesse caso
// a contagem é 0, não erro.
func (r *eventCountRepository) CountByType(eventType domain.EventType, startDate, endDate time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(trackingEventsTable).
		Where(squirrel.Eq{"te.event_type": string(eventType)}).
		Where(squirrel.GtOrEq{"te.occurred_at": startDate.Format(time.DateOnly)}).
		Where(squirrel.Lt{"te.occurred_at": endDate.AddDate(0, 0, 1).Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	err = r.conn.QueryRow(query, args...).Scan(&count)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		if isUndefinedTable(err) {
			logrus.WithField("event_type", eventType).Debug("Tabela de eventos de tracking ausente; contagem 0")
			return 0, nil
		}
		return 0, fmt.Errorf("erro ao contar eventos: %w", err)
	}

	return count, nil
}

func isUndefinedTable(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return string(pqErr.Code) == pqUndefinedTable
	}
	return false
}
