package heropage

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/dharmayuga/dharmayuga/internal/domain"
	"github.com/dharmayuga/dharmayuga/internal/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Pgx struct {
	db repositories.Querier
}

func NewPgx(pool *pgxpool.Pool) *Pgx {
	return &Pgx{db: pool}
}

var _ Repository = (*Pgx)(nil)

func (p *Pgx) ListActive(ctx context.Context) ([]domain.HeroPage, error) {
	return repositories.SelectAll[domain.HeroPage](ctx, p.db, repositories.Query{
		Table: "hero_pages",
		Columns: []string{
			"id",
			"title",
			"subtitle",
			"description",
			"background_image_url",
			"display_order",
			"COALESCE(is_active, false) AS is_active",
		},
		Where:   sq.Eq{"is_active": true},
		OrderBy: []string{"display_order ASC"},
	})
}
