package usecase

import (
	"context"

	"bloodbridge/internal/domain/entity"
)

// MatchPolicy decides which donor blood groups may serve a request's
// group. The default is exact-group equality; a clinically correct
// compatibility matrix can be plugged in without touching the matcher.
type MatchPolicy func(request entity.BloodGroup) []entity.BloodGroup

// ExactGroupPolicy matches donors of the identical blood group only.
func ExactGroupPolicy(request entity.BloodGroup) []entity.BloodGroup {
	return []entity.BloodGroup{request}
}

// MatcherUsecase selects and ranks eligible donors for an urgent request.
// Matching is a pure read over a snapshot of donor state: available donors
// of a compatible group, same-postal-code donors first, then nearest by
// great-circle distance, then least recently notified. The result is
// deterministic for a fixed donor set, request, and configuration.
type MatcherUsecase interface {
	// Match returns the ranked donor sequence for a request, truncated to
	// the configured recipient cap (0 meaning unbounded).
	Match(ctx context.Context, request *entity.BloodRequest) ([]*entity.Donor, error)
}
