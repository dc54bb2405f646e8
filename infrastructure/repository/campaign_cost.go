package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/franpass87/esperienze-insights-api/infrastructure/database/postgres"
	"github.com/franpass87/esperienze-insights-api/internal/domain"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	campaignCostsTable = "campaign_costs cc"
)

type CampaignCostRepository interface {
	ListCosts() ([]domain.CampaignCost, error)
	ReplaceAll(costs []domain.CampaignCost) error
}

type campaignCostRepository struct {
	conn *postgres.Connection
}

func NewCampaignCostRepository(conn *postgres.Connection) CampaignCostRepository {
	return &campaignCostRepository{
		conn: conn,
	}
}

func (r *campaignCostRepository) ListCosts() ([]domain.CampaignCost, error) {
	query, args, err := squirrel.
		Select("cc.source, cc.medium, cc.name, cc.cost").
		From(campaignCostsTable).
		OrderBy("cc.source ASC, cc.medium ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if isUndefinedTable(err) {
			return []domain.CampaignCost{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	costs := make([]domain.CampaignCost, 0)
	for rows.Next() {
		var cost domain.CampaignCost
		if err := rows.Scan(&cost.Source, &cost.Medium, &cost.Name, &cost.Cost); err != nil {
			return nil, fmt.Errorf("erro ao escanear custo de campanha: %w", err)
		}
		costs = append(costs, cost)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return costs, nil
}

// ReplaceAll substitui o conteúdo da tabela pelos custos do feed externo.
// O feed é a fonte de verdade: entradas que saíram dele também saem daqui.
func (r *campaignCostRepository) ReplaceAll(costs []domain.CampaignCost) error {
	builder := squirrel.StatementBuilder.
		Insert("campaign_costs").
		Columns("id", "source", "medium", "name", "cost").
		PlaceholderFormat(squirrel.Dollar)

	for _, cost := range costs {
		id, err := gonanoid.New(6)
		if err != nil {
			return fmt.Errorf("erro ao gerar id de custo de campanha: %w", err)
		}
		builder = builder.Values(id, cost.Source, cost.Medium, cost.Name, cost.Cost)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM campaign_costs"); err != nil {
			return err
		}

		_, err := tx.Exec(query, args...)
		return err
	})
	if err != nil {
		return fmt.Errorf("erro ao atualizar custos de campanha: %w", err)
	}

	return nil
}
