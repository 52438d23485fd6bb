package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/exterior-marketing/internal/domain"
)

// fakeQueryer registra a última query recebida
type fakeQueryer struct {
	query string
	args  []interface{}
	err   error
}

func (f *fakeQueryer) Exec(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.query, f.args = query, args
	if f.err != nil {
		return nil, f.err
	}
	return driverResult{}, nil
}

func (f *fakeQueryer) Query(_ context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	f.query, f.args = query, args
	return nil, f.err
}

func (f *fakeQueryer) QueryRow(_ context.Context, query string, args ...interface{}) *sql.Row {
	f.query, f.args = query, args
	return nil
}

type driverResult struct{}

func (driverResult) LastInsertId() (int64, error) { return 0, nil }
func (driverResult) RowsAffected() (int64, error) { return 1, nil }

var createdAt = time.Date(2024, 7, 15, 8, 0, 0, 0, time.UTC)

func TestContentRepository_Save(t *testing.T) {
	content := &domain.GeneratedContent{
		ID:          "abc",
		Kind:        domain.ContentKindInstagramPost,
		ContentType: domain.ContentTypeShowcase,
		Season:      domain.Summer,
		Body:        "本文",
		CreatedAt:   createdAt,
	}

	tests := []struct {
		name    string
		dbErr   error
		wantErr string
	}{
		{name: "success"},
		{name: "postgres error keeps the code", dbErr: &pq.Error{Code: "23505", Message: "duplicate key"}, wantErr: "código: 23505"},
		{name: "generic error", dbErr: errors.New("connection reset"), wantErr: "erro ao executar a query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := &fakeQueryer{err: tt.dbErr}
			err := NewContentRepository(conn).Save(context.Background(), content)

			assert.Equal(t,
				"INSERT INTO generated_contents (id,kind,content_type,season,body,degraded,failure_reason,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)",
				conn.query)
			assert.Equal(t, []interface{}{"abc", "instagram_post", "施工事例", "夏", "本文", false, "", createdAt}, conn.args)

			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.dbErr)
		})
	}
}

func TestContentRepository_ListRecent_Query(t *testing.T) {
	dbErr := errors.New("timeout")

	tests := []struct {
		name      string
		kind      domain.ContentKind
		wantQuery string
		wantArgs  []interface{}
	}{
		{
			name:      "all kinds",
			wantQuery: "SELECT gc.id, gc.kind, gc.content_type, gc.season, gc.body, gc.degraded, gc.failure_reason, gc.created_at FROM generated_contents gc ORDER BY gc.created_at DESC LIMIT 20",
		},
		{
			name:      "filtered by kind",
			kind:      domain.ContentKindFollowUp,
			wantQuery: "SELECT gc.id, gc.kind, gc.content_type, gc.season, gc.body, gc.degraded, gc.failure_reason, gc.created_at FROM generated_contents gc WHERE gc.kind = $1 ORDER BY gc.created_at DESC LIMIT 20",
			wantArgs:  []interface{}{"follow_up"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := &fakeQueryer{err: dbErr}

			contents, err := NewContentRepository(conn).ListRecent(context.Background(), tt.kind, 20)
			assert.Nil(t, contents)
			assert.ErrorIs(t, err, dbErr)

			assert.Equal(t, tt.wantQuery, conn.query)
			if tt.wantArgs == nil {
				assert.Empty(t, conn.args)
			} else {
				assert.Equal(t, tt.wantArgs, conn.args)
			}
		})
	}
}

func TestDashboardRunRepository_Save(t *testing.T) {
	run := &domain.DashboardRun{
		ID:          "run1",
		GeneratedAt: createdAt,
		TotalSales:  1000000,
		ROI:         185.71,
		Contracts:   1,
		TotalReach:  88000,
		OutputPath:  "dashboard.html",
	}

	conn := &fakeQueryer{}
	require.NoError(t, NewDashboardRunRepository(conn).Save(context.Background(), run))

	assert.Equal(t,
		"INSERT INTO dashboard_runs (id,generated_at,total_sales,roi,contracts,total_reach,output_path) VALUES ($1,$2,$3,$4,$5,$6,$7)",
		conn.query)
	assert.Equal(t, []interface{}{"run1", createdAt, int64(1000000), 185.71, 1, 88000, "dashboard.html"}, conn.args)
}

func TestDashboardRunRepository_ListRecent_QueryError(t *testing.T) {
	dbErr := errors.New("timeout")
	conn := &fakeQueryer{err: dbErr}

	runs, err := NewDashboardRunRepository(conn).ListRecent(context.Background(), 5)
	assert.Nil(t, runs)
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t,
		"SELECT dr.id, dr.generated_at, dr.total_sales, dr.roi, dr.contracts, dr.total_reach, dr.output_path FROM dashboard_runs dr ORDER BY dr.generated_at DESC LIMIT 5",
		conn.query)
}
