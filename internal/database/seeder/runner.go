package seeder

import (
	"context"
	"fmt"

	"smart-hire/internal/repository"
)

// Runner applies every seeder inside one transaction.
type Runner struct {
	Seeders []Seeder
}

func (r Runner) Run(ctx context.Context, store repository.Store) error {
	if store == nil {
		return fmt.Errorf("nil store")
	}
	return store.Transact(ctx, func(tx repository.Store) error {
		for _, s := range r.Seeders {
			if s == nil {
				continue
			}
			if err := s.Run(ctx, tx); err != nil {
				return fmt.Errorf("seed %s: %w", s.Name(), err)
			}
		}
		return nil
	})
}
