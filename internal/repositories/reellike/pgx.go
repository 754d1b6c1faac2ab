package reellike

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/dharmayuga/dharmayuga/internal/domain"
	"github.com/dharmayuga/dharmayuga/internal/repositories"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

const table = "reel_likes"

var columns = []string{"id", "reel_id", "user_session_id", "created_at"}

type Pgx struct {
	db     repositories.Querier
	logger logger.Logger
}

func NewPgx(pool *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		db:     pool,
		logger: logger.WithComponent("ReelLikeRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

func (p *Pgx) ListByReel(ctx context.Context, reelID string) ([]domain.ReelLike, error) {
	return repositories.SelectAll[domain.ReelLike](ctx, p.db, repositories.Query{
		Table:   table,
		Columns: columns,
		Where:   sq.Eq{"reel_id": reelID},
	})
}

func (p *Pgx) Create(ctx context.Context, reelID, sessionID string) (*domain.ReelLike, error) {
	like, err := repositories.InsertReturning[domain.ReelLike](ctx, p.db, table,
		map[string]any{
			"reel_id":         reelID,
			"user_session_id": sessionID,
		},
		columns,
	)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to like reel %s: %w", reelID, err)
	}
	return like, nil
}

func (p *Pgx) Delete(ctx context.Context, reelID, sessionID string) (bool, error) {
	affected, err := repositories.Delete(ctx, p.db, table, sq.Eq{
		"reel_id":         reelID,
		"user_session_id": sessionID,
	})
	if err != nil {
		return false, err
	}
	if affected == 0 {
		p.logger.Debug("No like to remove", "reel_id", reelID)
	}
	return affected > 0, nil
}
