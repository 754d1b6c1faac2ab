package reel

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/dharmayuga/dharmayuga/internal/domain"
	"github.com/dharmayuga/dharmayuga/internal/repositories"
	"github.com/dharmayuga/dharmayuga/pkg/errors"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const table = "reels"

var columns = []string{
	"id",
	"title",
	"description",
	"video_url",
	"thumbnail_url",
	"COALESCE(likes_count, 0) AS likes_count",
	"COALESCE(comments_count, 0) AS comments_count",
	"COALESCE(shares_count, 0) AS shares_count",
	"category",
	"uploaded_by",
	"created_at",
}

type Pgx struct {
	db     repositories.Querier
	logger logger.Logger
}

func NewPgx(pool *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		db:     pool,
		logger: logger.WithComponent("ReelRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

func (p *Pgx) List(ctx context.Context) ([]domain.Reel, error) {
	return repositories.SelectAll[domain.Reel](ctx, p.db, repositories.Query{
		Table:   table,
		Columns: columns,
		OrderBy: []string{"created_at DESC"},
	})
}

func (p *Pgx) GetByID(ctx context.Context, id string) (*domain.Reel, error) {
	reel, err := repositories.SelectOne[domain.Reel](ctx, p.db, repositories.Query{
		Table:   table,
		Columns: columns,
		Where:   sq.Eq{"id": id},
	})
	if errors.IsNotFound(err) {
		return nil, ErrNotFound
	}
	return reel, err
}

func (p *Pgx) GetCounter(ctx context.Context, id string, counter domain.Counter) (int, error) {
	if !counter.Valid() {
		return 0, errors.Invalid(fmt.Sprintf("unknown counter %q", counter))
	}

	query, args, err := repositories.SqBuilder.
		Select(fmt.Sprintf("COALESCE(%s, 0)", counter)).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	var value int
	if err := p.db.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to read %s of reel %s: %w", counter, id, err)
	}

	return value, nil
}

func (p *Pgx) SetCounter(ctx context.Context, id string, counter domain.Counter, value int) error {
	if !counter.Valid() {
		return errors.Invalid(fmt.Sprintf("unknown counter %q", counter))
	}

	affected, err := repositories.Update(ctx, p.db, table,
		map[string]any{string(counter): value},
		sq.Eq{"id": id},
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	p.logger.Debug("Counter updated", "reel_id", id, "counter", counter, "value", value)
	return nil
}
