package impl

import (
	"context"
	"math"
	"sort"

	"bloodbridge/internal/domain/entity"
	domainerrors "bloodbridge/internal/domain/errors"
	"bloodbridge/internal/domain/repository"
	"bloodbridge/internal/errors"
	"bloodbridge/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

type matcherService struct {
	donorRepo     repository.DonorRepository
	policy        usecase.MatchPolicy
	maxRecipients int
}

// NewMatcherService creates the donor matching service. maxRecipients
// caps the ranked result; zero means unbounded.
func NewMatcherService(donorRepo repository.DonorRepository, policy usecase.MatchPolicy, maxRecipients int) usecase.MatcherUsecase {
	if policy == nil {
		policy = usecase.ExactGroupPolicy
	}

	return &matcherService{
		donorRepo:     donorRepo,
		policy:        policy,
		maxRecipients: maxRecipients,
	}
}

// rankedDonor pairs a candidate with its precomputed distance to the
// request, so the sort never recomputes haversines.
type rankedDonor struct {
	donor    *entity.Donor
	distance float64 // meters; math.Inf(1) when either side lacks coordinates
}

// Match selects and ranks eligible donors for a request. Matching is a
// pure read: same-postal-code donors first, then nearest by great-circle
// distance, then least recently notified, with donor ID as the final
// tie-break so the ranking is deterministic for a fixed snapshot.
func (s *matcherService) Match(ctx context.Context, request *entity.BloodRequest) ([]*entity.Donor, error) {
	if !request.BloodGroup.IsValid() {
		return nil, domainerrors.ErrInvalidBloodGroup.WithDetails(request.BloodGroup.String())
	}

	var candidates []*entity.Donor
	for _, group := range s.policy(request.BloodGroup) {
		donors, err := s.donorRepo.FindCandidates(ctx, group)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load donor candidates")
		}
		candidates = append(candidates, donors...)
	}

	ranked := make([]rankedDonor, 0, len(candidates))
	for _, donor := range candidates {
		ranked = append(ranked, rankedDonor{
			donor:    donor,
			distance: distanceMeters(request, donor),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j], request.PostalCode)
	})

	result := make([]*entity.Donor, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, r.donor)
	}
	if s.maxRecipients > 0 && len(result) > s.maxRecipients {
		result = result[:s.maxRecipients]
	}

	return result, nil
}

func less(a, b rankedDonor, postalCode string) bool {
	aPostal := postalCode != "" && a.donor.PostalCode == postalCode
	bPostal := postalCode != "" && b.donor.PostalCode == postalCode
	if aPostal != bPostal {
		return aPostal
	}

	if a.distance != b.distance {
		return a.distance < b.distance
	}

	// Least recently notified first; never-notified donors lead.
	aNotified, bNotified := a.donor.LastNotifiedAt, b.donor.LastNotifiedAt
	switch {
	case aNotified == nil && bNotified != nil:
		return true
	case aNotified != nil && bNotified == nil:
		return false
	case aNotified != nil && bNotified != nil && !aNotified.Equal(*bNotified):
		return aNotified.Before(*bNotified)
	}

	return a.donor.ID.String() < b.donor.ID.String()
}

func distanceMeters(request *entity.BloodRequest, donor *entity.Donor) float64 {
	if !request.HasLocation() || !donor.HasLocation() {
		return math.Inf(1)
	}

	from := orb.Point{*request.Longitude, *request.Latitude}
	to := orb.Point{*donor.Longitude, *donor.Latitude}

	return geo.DistanceHaversine(from, to)
}
