// Package impl contains the application service implementations.
package impl

import (
	"context"

	"bloodbridge/internal/domain/entity"
	domainerrors "bloodbridge/internal/domain/errors"
	"bloodbridge/internal/domain/repository"
	"bloodbridge/internal/errors"
	"bloodbridge/internal/usecase"
)

type stockService struct {
	stockRepo repository.StockRepository
}

// NewStockService creates the stock ledger service. No other component
// holds a mutable reference to stock state; all adjustments funnel
// through Adjust.
func NewStockService(stockRepo repository.StockRepository) usecase.StockUsecase {
	return &stockService{stockRepo: stockRepo}
}

// Adjust atomically applies units += delta for one blood group.
func (s *stockService) Adjust(ctx context.Context, group entity.BloodGroup, delta int) error {
	if !group.IsValid() {
		return domainerrors.ErrInvalidBloodGroup.WithDetails(group.String())
	}

	applied, err := s.stockRepo.AdjustUnits(ctx, group, delta)
	if err != nil {
		return errors.Wrap(err, "failed to adjust stock")
	}
	if !applied {
		return domainerrors.ErrInsufficientStock
	}

	return nil
}

// Balance returns a point-in-time balance for one blood group.
func (s *stockService) Balance(ctx context.Context, group entity.BloodGroup) (int, error) {
	if !group.IsValid() {
		return 0, domainerrors.ErrInvalidBloodGroup.WithDetails(group.String())
	}

	entry, err := s.stockRepo.FindByGroup(ctx, group)
	if err != nil {
		if errors.Is(err, repository.ErrStockEntryNotFound) {
			return 0, domainerrors.ErrStockEntryNotFound
		}

		return 0, errors.Wrap(err, "failed to read stock balance")
	}

	return entry.Units, nil
}

// Snapshot returns every blood group's balance for dashboards.
func (s *stockService) Snapshot(ctx context.Context) (map[entity.BloodGroup]int, error) {
	entries, err := s.stockRepo.Snapshot(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read stock snapshot")
	}

	snapshot := make(map[entity.BloodGroup]int, len(entries))
	for _, entry := range entries {
		snapshot[entry.BloodGroup] = entry.Units
	}

	return snapshot, nil
}
