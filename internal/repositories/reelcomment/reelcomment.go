package reelcomment

import (
	"context"

	"github.com/dharmayuga/dharmayuga/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=reelcomment.go -destination=mocks/mock.go
type Repository interface {
	// ListByReel returns the comments of a reel, newest first
	ListByReel(ctx context.Context, reelID string) ([]domain.ReelComment, error)

	// Create stores a comment and returns the stored row
	Create(ctx context.Context, comment domain.NewComment) (*domain.ReelComment, error)
}
