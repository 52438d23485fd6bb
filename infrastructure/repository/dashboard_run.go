package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/exterior-marketing/infrastructure/database/postgres"
	"github.com/vfg2006/exterior-marketing/internal/domain"
)

const (
	dashboardRunsTable = "dashboard_runs dr"
)

type DashboardRunRepository interface {
	Save(ctx context.Context, run *domain.DashboardRun) error
	ListRecent(ctx context.Context, limit int) ([]*domain.DashboardRun, error)
}

type dashboardRunRepository struct {
	conn postgres.Queryer
}

func NewDashboardRunRepository(conn postgres.Queryer) DashboardRunRepository {
	return &dashboardRunRepository{
		conn: conn,
	}
}

func (r *dashboardRunRepository) Save(ctx context.Context, run *domain.DashboardRun) error {
	query, args, err := squirrel.
		Insert("dashboard_runs").
		Columns("id", "generated_at", "total_sales", "roi", "contracts", "total_reach", "output_path").
		Values(
			run.ID,
			run.GeneratedAt,
			run.TotalSales,
			run.ROI,
			run.Contracts,
			run.TotalReach,
			run.OutputPath,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *dashboardRunRepository) ListRecent(ctx context.Context, limit int) ([]*domain.DashboardRun, error) {
	query, args, err := squirrel.
		Select("dr.id, dr.generated_at, dr.total_sales, dr.roi, dr.contracts, dr.total_reach, dr.output_path").
		From(dashboardRunsTable).
		OrderBy("dr.generated_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.DashboardRun, 0)
	for rows.Next() {
		run := &domain.DashboardRun{}
		if err := rows.Scan(
			&run.ID,
			&run.GeneratedAt,
			&run.TotalSales,
			&run.ROI,
			&run.Contracts,
			&run.TotalReach,
			&run.OutputPath,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear execução do dashboard: %w", err)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}
