package reellike

import (
	"context"

	"github.com/dharmayuga/dharmayuga/internal/domain"
	"github.com/dharmayuga/dharmayuga/pkg/errors"
)

var ErrAlreadyExists = errors.WrapWithCode(errors.ErrConflict, errors.CodeConflict, "reel already liked by this session")

//go:generate go run go.uber.org/mock/mockgen -source=reellike.go -destination=mocks/mock.go
type Repository interface {
	// ListByReel returns the full like set of a reel
	ListByReel(ctx context.Context, reelID string) ([]domain.ReelLike, error)

	// Create records a like of reelID by sessionID
	Create(ctx context.Context, reelID, sessionID string) (*domain.ReelLike, error)

	// Delete removes the like of reelID by sessionID and reports whether a row was removed
	Delete(ctx context.Context, reelID, sessionID string) (bool, error)
}
