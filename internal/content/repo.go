package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/puneethk/portfolio-backend/internal/telemetry/tracing"
)

var ErrSectionNotFound = errors.New("content section not found")

type sectionStore interface {
	Get(ctx context.Context, name string) (json.RawMessage, error)
	Upsert(ctx context.Context, name string, doc json.RawMessage) error
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, name string) (json.RawMessage, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "contentRepo.get")
	defer span.End()

	rows, err := r.db.Query(
		ctx,
		`SELECT data FROM content_section WHERE name = $1;`,
		name,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrSectionNotFound
	}

	var doc json.RawMessage
	if err := rows.Scan(&doc); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	return doc, nil
}

func (r *Repo) Upsert(ctx context.Context, name string, doc json.RawMessage) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "contentRepo.upsert")
	defer span.End()

	if name == "" {
		return errors.New("section name empty")
	}

	_, err := r.db.Exec(
		ctx,
		`INSERT INTO content_section (name, data, updated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO UPDATE SET data = $2, updated_at = $3;`,
		name, doc, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("upsert section %s: %w", name, err)
	}

	return nil
}
