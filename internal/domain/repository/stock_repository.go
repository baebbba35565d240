// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bloodbridge/internal/domain/entity"
	"bloodbridge/internal/errors"
)

// Domain-specific errors for stock persistence.
var (
	// ErrStockEntryNotFound is returned when no ledger row exists for a blood group.
	ErrStockEntryNotFound = errors.New("stock entry not found")
)

// StockRepository defines the interface for stock ledger database operations.
// The ledger holds exactly one row per blood group; rows are created once at
// initialization and only ever mutated through AdjustUnits.
type StockRepository interface {
	// EnsureEntries creates a zero-unit ledger row for every blood group that
	// does not already have one. Idempotent; called at startup.
	EnsureEntries(ctx context.Context, groups []entity.BloodGroup) error

	// AdjustUnits atomically applies units += delta for one blood group.
	// Returns false (with no state change) when the adjustment would drive
	// the balance negative. Adjustments to the same group are serialized by
	// the underlying row lock; different groups proceed independently.
	AdjustUnits(ctx context.Context, group entity.BloodGroup, delta int) (bool, error)

	// FindByGroup retrieves the ledger entry for a blood group.
	FindByGroup(ctx context.Context, group entity.BloodGroup) (*entity.StockEntry, error)

	// Snapshot returns a point-in-time view of all ledger entries. No
	// ordering guarantee relative to concurrent adjusts beyond never
	// observing a torn write.
	Snapshot(ctx context.Context) ([]*entity.StockEntry, error)
}
