package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/exterior-marketing/infrastructure/database/postgres"
	"github.com/vfg2006/exterior-marketing/internal/domain"
)

const (
	generatedContentsTable = "generated_contents gc"
)

type ContentRepository interface {
	Save(ctx context.Context, content *domain.GeneratedContent) error
	ListRecent(ctx context.Context, kind domain.ContentKind, limit int) ([]*domain.GeneratedContent, error)
}

type contentRepository struct {
	conn postgres.Queryer
}

func NewContentRepository(conn postgres.Queryer) ContentRepository {
	return &contentRepository{
		conn: conn,
	}
}

func (r *contentRepository) Save(ctx context.Context, content *domain.GeneratedContent) error {
	query, args, err := squirrel.
		Insert("generated_contents").
		Columns("id", "kind", "content_type", "season", "body", "degraded", "failure_reason", "created_at").
		Values(
			content.ID,
			string(content.Kind),
			string(content.ContentType),
			string(content.Season),
			content.Body,
			content.Degraded,
			content.FailureReason,
			content.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// ListRecent retorna os conteúdos mais recentes. kind vazio retorna todos os tipos.
func (r *contentRepository) ListRecent(ctx context.Context, kind domain.ContentKind, limit int) ([]*domain.GeneratedContent, error) {
	builder := squirrel.
		Select("gc.id, gc.kind, gc.content_type, gc.season, gc.body, gc.degraded, gc.failure_reason, gc.created_at").
		From(generatedContentsTable).
		OrderBy("gc.created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if kind != "" {
		builder = builder.Where(squirrel.Eq{"gc.kind": string(kind)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	contents := make([]*domain.GeneratedContent, 0)
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conteúdo: %w", err)
		}
		contents = append(contents, content)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return contents, nil
}

func scanContent(rows *sql.Rows) (*domain.GeneratedContent, error) {
	content := &domain.GeneratedContent{}
	var kind, contentType, season string
	var failureReason sql.NullString

	err := rows.Scan(
		&content.ID,
		&kind,
		&contentType,
		&season,
		&content.Body,
		&content.Degraded,
		&failureReason,
		&content.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	content.Kind = domain.ContentKind(kind)
	content.ContentType = domain.ContentType(contentType)
	content.Season = domain.SeasonName(season)
	content.FailureReason = failureReason.String

	return content, nil
}
