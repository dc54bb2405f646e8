package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/franpass87/esperienze-insights-api/infrastructure/database/postgres"
	"github.com/franpass87/esperienze-insights-api/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	bookingsTable = "bookings b"
)

type BookingReportRepository interface {
	AggregateByDay(startDate, endDate time.Time) ([]*domain.BookingDayRow, error)
}

type bookingReportRepository struct {
	conn *postgres.Connection
}

func NewBookingReportRepository(conn *postgres.Connection) BookingReportRepository {
	return &bookingReportRepository{
		conn: conn,
	}
}

// AggregateByDay agrega as reservas do período por dia e status. Se a tabela
// de reservas ainda não existe, retorna lista vazia (digest zerado).
func (r *bookingReportRepository) AggregateByDay(startDate, endDate time.Time) ([]*domain.BookingDayRow, error) {
	query, args, err := squirrel.
		Select(
			"TO_CHAR(b.booking_date, 'YYYY-MM-DD') AS day",
			"b.status",
			"COUNT(*) AS total",
			"COALESCE(SUM(b.participants), 0) AS participants",
			"COALESCE(SUM(b.total_amount), 0) AS revenue",
		).
		From(bookingsTable).
		Where(squirrel.GtOrEq{"b.booking_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"b.booking_date": endDate.Format(time.DateOnly)}).
		GroupBy("day", "b.status").
		OrderBy("day ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if isUndefinedTable(err) {
			logrus.Debug("Tabela de reservas ausente; digest será zerado")
			return []*domain.BookingDayRow{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	results := make([]*domain.BookingDayRow, 0)
	for rows.Next() {
		row := &domain.BookingDayRow{}
		err := rows.Scan(&row.Day, &row.Status, &row.Count, &row.Participants, &row.Revenue)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de reservas: %w", err)
		}
		results = append(results, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return results, nil
}
