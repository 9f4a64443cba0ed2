package seeder

import (
	"context"

	"smart-hire/internal/repository"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, store repository.Store) error
}
