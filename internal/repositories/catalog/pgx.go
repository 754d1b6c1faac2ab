package catalog

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/dharmayuga/dharmayuga/internal/domain"
	"github.com/dharmayuga/dharmayuga/internal/repositories"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Pgx[E any] struct {
	db     repositories.Querier
	tables Tables
	logger logger.Logger
}

func NewPgx[E any](pool *pgxpool.Pool, tables Tables, logger logger.Logger) *Pgx[E] {
	return &Pgx[E]{
		db:     pool,
		tables: tables,
		logger: logger.WithComponent("CatalogRepo").With("catalog", tables.Entries),
	}
}

func NewDeities(pool *pgxpool.Pool, logger logger.Logger) Repository[domain.Deity] {
	return NewPgx[domain.Deity](pool, DeityTables, logger)
}

func NewScriptures(pool *pgxpool.Pool, logger logger.Logger) Repository[domain.Scripture] {
	return NewPgx[domain.Scripture](pool, ScriptureTables, logger)
}

func (p *Pgx[E]) ListEntries(ctx context.Context) ([]E, error) {
	return repositories.SelectAll[E](ctx, p.db, repositories.Query{
		Table:   p.tables.Entries,
		Columns: p.tables.EntryColumns,
		OrderBy: []string{"order_index ASC"},
	})
}

func (p *Pgx[E]) ListSections(ctx context.Context, parentID string) ([]domain.Section, error) {
	return repositories.SelectAll[domain.Section](ctx, p.db, repositories.Query{
		Table: p.tables.Sections,
		Columns: []string{
			"id",
			p.tables.ParentColumn + " AS parent_id",
			"section_name",
			"order_index",
			"created_at",
		},
		Where:   sq.Eq{p.tables.ParentColumn: parentID},
		OrderBy: []string{"order_index ASC"},
	})
}

func (p *Pgx[E]) GetContent(ctx context.Context, parentID, sectionID string) (*domain.Content, error) {
	return repositories.SelectOne[domain.Content](ctx, p.db, repositories.Query{
		Table: p.tables.Content,
		Columns: []string{
			"id",
			p.tables.ParentColumn + " AS parent_id",
			"section_id",
			"title",
			"image_url",
			"content",
			"created_at",
			"updated_at",
		},
		Where: sq.Eq{
			p.tables.ParentColumn: parentID,
			"section_id":          sectionID,
		},
	})
}
