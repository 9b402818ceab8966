package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jengzang/gpx-pace-backend/internal/models"
)

// QueryRepository handles database operations for the pace query ledger
type QueryRepository struct {
	db *sql.DB
}

// NewQueryRepository creates a new query repository
func NewQueryRepository(db *sql.DB) *QueryRepository {
	return &QueryRepository{db: db}
}

// Insert stores one computation outcome
func (r *QueryRepository) Insert(ctx context.Context, q *models.PaceQuery) error {
	query := `
		INSERT INTO pace_queries (
			id, storage_key, original_name, method, start_param, end_param,
			point_count, distance_m, duration_s, pace_s_per_km,
			error_kind, error_message, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		q.ID,
		q.StorageKey,
		q.OriginalName,
		q.Method,
		q.StartParam,
		q.EndParam,
		q.PointCount,
		q.DistanceMeters,
		q.DurationSeconds,
		q.PaceSecondsPerKm,
		q.ErrorKind,
		q.ErrorMessage,
		q.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert pace query: %w", err)
	}

	return nil
}

// List returns the most recent queries, newest first
func (r *QueryRepository) List(ctx context.Context, limit int) ([]models.PaceQuery, error) {
	query := `
		SELECT id, storage_key, original_name, method, start_param, end_param,
			   point_count, distance_m, duration_s, pace_s_per_km,
			   error_kind, error_message, created_at
		FROM pace_queries
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pace queries: %w", err)
	}
	defer rows.Close()

	queries := make([]models.PaceQuery, 0)
	for rows.Next() {
		var q models.PaceQuery
		var pace sql.NullFloat64
		var kind, message sql.NullString
		var createdAt int64

		err := rows.Scan(
			&q.ID, &q.StorageKey, &q.OriginalName, &q.Method, &q.StartParam, &q.EndParam,
			&q.PointCount, &q.DistanceMeters, &q.DurationSeconds, &pace,
			&kind, &message, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pace query: %w", err)
		}

		if pace.Valid {
			q.PaceSecondsPerKm = &pace.Float64
		}
		if kind.Valid {
			q.ErrorKind = &kind.String
		}
		if message.Valid {
			q.ErrorMessage = &message.String
		}
		q.CreatedAt = time.UnixMilli(createdAt).UTC()

		queries = append(queries, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pace queries: %w", err)
	}

	return queries, nil
}
