// Package usecase defines the application service interfaces.
package usecase

import (
	"context"

	"bloodbridge/internal/domain/entity"
)

// StockUsecase is the ledger of available blood units. It is the only
// component allowed to mutate stock counts; every mutation goes through
// Adjust, which keeps each per-group balance non-negative.
type StockUsecase interface {
	// Adjust atomically applies units += delta for one blood group.
	// Returns ErrInsufficientStock, with no state change, when the result
	// would be negative.
	Adjust(ctx context.Context, group entity.BloodGroup, delta int) error

	// Balance returns a point-in-time balance for one blood group.
	Balance(ctx context.Context, group entity.BloodGroup) (int, error)

	// Snapshot returns a point-in-time view of every blood group's balance,
	// for dashboards.
	Snapshot(ctx context.Context) (map[entity.BloodGroup]int, error)
}
