package heropage

import (
	"context"

	"github.com/dharmayuga/dharmayuga/internal/domain"
)

type Repository interface {
	// ListActive returns the active hero pages by display order
	ListActive(ctx context.Context) ([]domain.HeroPage, error)
}
