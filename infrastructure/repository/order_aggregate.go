package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/franpass87/esperienze-insights-api/infrastructure/database/postgres"
	"github.com/franpass87/esperienze-insights-api/internal/domain"
)

const (
	ordersTable = "orders o"
)

// Status de pedidos considerados nas agregações de receita
var completedOrderStatuses = []string{"completed", "processing"}

type OrderAggregateRepository interface {
	CountCompleted(startDate, endDate time.Time) (int, error)
	SumRevenue(startDate, endDate time.Time) (float64, error)
	ListWithAttribution(startDate, endDate time.Time) ([]*domain.AttributionOrder, error)
	GetByID(orderID int) (*domain.AttributionOrder, error)
}

type orderAggregateRepository struct {
	conn *postgres.Connection
}

func NewOrderAggregateRepository(conn *postgres.Connection) OrderAggregateRepository {
	return &orderAggregateRepository{
		conn: conn,
	}
}

func (r *orderAggregateRepository) CountCompleted(startDate, endDate time.Time) (int, error) {
	query, args, err := r.periodBuilder("COUNT(*)", startDate, endDate).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		if err == sql.ErrNoRows || isUndefinedTable(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("erro ao contar pedidos: %w", err)
	}

	return count, nil
}

func (r *orderAggregateRepository) SumRevenue(startDate, endDate time.Time) (float64, error) {
	query, args, err := r.periodBuilder("COALESCE(SUM(o.total_amount), 0)", startDate, endDate).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var revenue float64
	if err := r.conn.QueryRow(query, args...).Scan(&revenue); err != nil {
		if err == sql.ErrNoRows || isUndefinedTable(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("erro ao somar receita: %w", err)
	}

	return revenue, nil
}

// ListWithAttribution retorna os pedidos concluídos do período com o blob
// JSON de atribuição bruto. O parse do blob é responsabilidade do chamador.
func (r *orderAggregateRepository) ListWithAttribution(startDate, endDate time.Time) ([]*domain.AttributionOrder, error) {
	query, args, err := squirrel.
		Select("o.id, o.order_number, o.customer_id, o.total_amount, o.attribution_meta, o.created_at").
		From(ordersTable).
		Where(squirrel.Eq{"o.status": completedOrderStatuses}).
		Where(squirrel.GtOrEq{"o.created_at": startDate.Format(time.DateOnly)}).
		Where(squirrel.Lt{"o.created_at": endDate.AddDate(0, 0, 1).Format(time.DateOnly)}).
		OrderBy("o.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if isUndefinedTable(err) {
			return []*domain.AttributionOrder{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.AttributionOrder, 0)
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

func (r *orderAggregateRepository) GetByID(orderID int) (*domain.AttributionOrder, error) {
	query, args, err := squirrel.
		Select("o.id, o.order_number, o.customer_id, o.total_amount, o.attribution_meta, o.created_at").
		From(ordersTable).
		Where(squirrel.Eq{"o.id": orderID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	order := &domain.AttributionOrder{}
	var rawMeta sql.NullString

	err = r.conn.QueryRow(query, args...).Scan(
		&order.OrderID,
		&order.OrderNumber,
		&order.CustomerID,
		&order.Total,
		&rawMeta,
		&order.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar pedido: %w", err)
	}

	if rawMeta.Valid {
		order.RawMeta = []byte(rawMeta.String)
	}

	return order, nil
}

func (r *orderAggregateRepository) periodBuilder(column string, startDate, endDate time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select(column).
		From(ordersTable).
		Where(squirrel.Eq{"o.status": completedOrderStatuses}).
		Where(squirrel.GtOrEq{"o.created_at": startDate.Format(time.DateOnly)}).
		Where(squirrel.Lt{"o.created_at": endDate.AddDate(0, 0, 1).Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *orderAggregateRepository) scanOrder(rows *sql.Rows) (*domain.AttributionOrder, error) {
	order := &domain.AttributionOrder{}
	var rawMeta sql.NullString

	err := rows.Scan(
		&order.OrderID,
		&order.OrderNumber,
		&order.CustomerID,
		&order.Total,
		&rawMeta,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if rawMeta.Valid {
		order.RawMeta = []byte(rawMeta.String)
	}

	return order, nil
}
