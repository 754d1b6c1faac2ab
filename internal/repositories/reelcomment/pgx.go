package reelcomment

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/dharmayuga/dharmayuga/internal/domain"
	"github.com/dharmayuga/dharmayuga/internal/repositories"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

const table = "reel_comments"

var columns = []string{"id", "reel_id", "user_name", "comment_text", "created_at", "updated_at"}

type Pgx struct {
	db     repositories.Querier
	logger logger.Logger
}

func NewPgx(pool *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		db:     pool,
		logger: logger.WithComponent("ReelCommentRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

func (p *Pgx) ListByReel(ctx context.Context, reelID string) ([]domain.ReelComment, error) {
	return repositories.SelectAll[domain.ReelComment](ctx, p.db, repositories.Query{
		Table:   table,
		Columns: columns,
		Where:   sq.Eq{"reel_id": reelID},
		OrderBy: []string{"created_at DESC"},
	})
}

func (p *Pgx) Create(ctx context.Context, comment domain.NewComment) (*domain.ReelComment, error) {
	stored, err := repositories.InsertReturning[domain.ReelComment](ctx, p.db, table,
		map[string]any{
			"reel_id":      comment.ReelID,
			"user_name":    comment.UserName,
			"comment_text": comment.CommentText,
		},
		columns,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add comment to reel %s: %w", comment.ReelID, err)
	}
	return stored, nil
}
