package reel

import (
	"context"

	"github.com/dharmayuga/dharmayuga/internal/domain"
	"github.com/dharmayuga/dharmayuga/pkg/errors"
)

var ErrNotFound = errors.NotFound("reel not found")

//go:generate go run go.uber.org/mock/mockgen -source=reel.go -destination=mocks/mock.go
type Repository interface {
	// List returns every reel, newest first
	List(ctx context.Context) ([]domain.Reel, error)

	// GetByID returns a single reel
	GetByID(ctx context.Context, id string) (*domain.Reel, error)

	// GetCounter reads the current value of a denormalized counter
	GetCounter(ctx context.Context, id string, counter domain.Counter) (int, error)

	// SetCounter overwrites a denormalized counter
	SetCounter(ctx context.Context, id string, counter domain.Counter, value int) error
}
