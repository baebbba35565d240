package impl

import (
	"context"
	"testing"
	"time"

	"bloodbridge/internal/domain/entity"
	domainerrors "bloodbridge/internal/domain/errors"
	mockRepo "bloodbridge/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func testDonor(name, postalCode string, lat, lon float64) *entity.Donor {
	return &entity.Donor{
		ID:         uuid.New(),
		Name:       name,
		BloodGroup: entity.BloodGroupBPositive,
		Phone:      "01712345678",
		PostalCode: postalCode,
		Latitude:   ptr(lat),
		Longitude:  ptr(lon),
		Available:  true,
	}
}

func testRequest(postalCode string, lat, lon float64) *entity.BloodRequest {
	return &entity.BloodRequest{
		ID:         uuid.New(),
		Requestor:  entity.RequestorRef{Kind: entity.RequestorAnonymous},
		BloodGroup: entity.BloodGroupBPositive,
		Units:      450,
		PostalCode: postalCode,
		Latitude:   ptr(lat),
		Longitude:  ptr(lon),
		Urgent:     true,
		Status:     entity.StatusPending,
	}
}

func TestMatcherService_Match_PostalCodePartitionLeads(t *testing.T) {
	donorRepo := mockRepo.NewMockDonorRepository(t)
	matcher := NewMatcherService(donorRepo, nil, 0)
	ctx := context.Background()

	// Dhaka city coordinates; the far donor shares the request's postal code.
	near := testDonor("near", "1000", 23.7104, 90.4074)
	farSamePostal := testDonor("far-same-postal", "1207", 23.8759, 90.3795)
	request := testRequest("1207", 23.7104, 90.4074)

	donorRepo.EXPECT().
		FindCandidates(ctx, entity.BloodGroupBPositive).
		Return([]*entity.Donor{near, farSamePostal}, nil)

	donors, err := matcher.Match(ctx, request)
	require.NoError(t, err)
	require.Len(t, donors, 2)
	assert.Equal(t, farSamePostal.ID, donors[0].ID)
	assert.Equal(t, near.ID, donors[1].ID)
}

func TestMatcherService_Match_NearestFirstWithinPartition(t *testing.T) {
	donorRepo := mockRepo.NewMockDonorRepository(t)
	matcher := NewMatcherService(donorRepo, nil, 0)
	ctx := context.Background()

	near := testDonor("near", "1000", 23.7110, 90.4080)
	mid := testDonor("mid", "1000", 23.7500, 90.4200)
	far := testDonor("far", "1000", 23.8759, 90.3795)
	request := testRequest("9999", 23.7104, 90.4074)

	donorRepo.EXPECT().
		FindCandidates(ctx, entity.BloodGroupBPositive).
		Return([]*entity.Donor{far, near, mid}, nil)

	donors, err := matcher.Match(ctx, request)
	require.NoError(t, err)
	require.Len(t, donors, 3)
	assert.Equal(t, near.ID, donors[0].ID)
	assert.Equal(t, mid.ID, donors[1].ID)
	assert.Equal(t, far.ID, donors[2].ID)
}

func TestMatcherService_Match_DonorsWithoutCoordinatesRankLast(t *testing.T) {
	donorRepo := mockRepo.NewMockDonorRepository(t)
	matcher := NewMatcherService(donorRepo, nil, 0)
	ctx := context.Background()

	located := testDonor("located", "1000", 23.8759, 90.3795)
	unlocated := &entity.Donor{
		ID:         uuid.New(),
		Name:       "unlocated",
		BloodGroup: entity.BloodGroupBPositive,
		Phone:      "01712345678",
		PostalCode: "1000",
		Available:  true,
	}
	request := testRequest("9999", 23.7104, 90.4074)

	donorRepo.EXPECT().
		FindCandidates(ctx, entity.BloodGroupBPositive).
		Return([]*entity.Donor{unlocated, located}, nil)

	donors, err := matcher.Match(ctx, request)
	require.NoError(t, err)
	require.Len(t, donors, 2)
	assert.Equal(t, located.ID, donors[0].ID)
	assert.Equal(t, unlocated.ID, donors[1].ID)
}

func TestMatcherService_Match_LeastRecentlyNotifiedBreaksTies(t *testing.T) {
	donorRepo := mockRepo.NewMockDonorRepository(t)
	matcher := NewMatcherService(donorRepo, nil, 0)
	ctx := context.Background()

	// Identical locations force the tie-break onto LastNotifiedAt.
	recent := testDonor("recent", "1000", 23.7104, 90.4074)
	recent.LastNotifiedAt = ptr(time.Now().Add(-1 * time.Hour))
	stale := testDonor("stale", "1000", 23.7104, 90.4074)
	stale.LastNotifiedAt = ptr(time.Now().Add(-48 * time.Hour))
	never := testDonor("never", "1000", 23.7104, 90.4074)

	request := testRequest("9999", 23.7104, 90.4074)

	donorRepo.EXPECT().
		FindCandidates(ctx, entity.BloodGroupBPositive).
		Return([]*entity.Donor{recent, stale, never}, nil)

	donors, err := matcher.Match(ctx, request)
	require.NoError(t, err)
	require.Len(t, donors, 3)
	assert.Equal(t, never.ID, donors[0].ID)
	assert.Equal(t, stale.ID, donors[1].ID)
	assert.Equal(t, recent.ID, donors[2].ID)
}

func TestMatcherService_Match_CapsRecipients(t *testing.T) {
	donorRepo := mockRepo.NewMockDonorRepository(t)
	matcher := NewMatcherService(donorRepo, nil, 2)
	ctx := context.Background()

	candidates := []*entity.Donor{
		testDonor("a", "1000", 23.7110, 90.4080),
		testDonor("b", "1000", 23.7500, 90.4200),
		testDonor("c", "1000", 23.8759, 90.3795),
	}
	request := testRequest("9999", 23.7104, 90.4074)

	donorRepo.EXPECT().
		FindCandidates(ctx, entity.BloodGroupBPositive).
		Return(candidates, nil)

	donors, err := matcher.Match(ctx, request)
	require.NoError(t, err)
	assert.Len(t, donors, 2)
}

func TestMatcherService_Match_Deterministic(t *testing.T) {
	donorRepo := mockRepo.NewMockDonorRepository(t)
	matcher := NewMatcherService(donorRepo, nil, 0)
	ctx := context.Background()

	candidates := []*entity.Donor{
		testDonor("a", "1207", 23.7110, 90.4080),
		testDonor("b", "1000", 23.7500, 90.4200),
		testDonor("c", "1000", 23.8759, 90.3795),
	}
	request := testRequest("1207", 23.7104, 90.4074)

	donorRepo.EXPECT().
		FindCandidates(ctx, entity.BloodGroupBPositive).
		Return(candidates, nil).
		Times(3)

	first, err := matcher.Match(ctx, request)
	require.NoError(t, err)
	for range 2 {
		again, err := matcher.Match(ctx, request)
		require.NoError(t, err)
		require.Equal(t, len(first), len(again))
		for i := range first {
			assert.Equal(t, first[i].ID, again[i].ID)
		}
	}
}

func TestMatcherService_Match_CustomPolicy(t *testing.T) {
	donorRepo := mockRepo.NewMockDonorRepository(t)
	universal := func(entity.BloodGroup) []entity.BloodGroup {
		return []entity.BloodGroup{entity.BloodGroupBPositive, entity.BloodGroupONegative}
	}
	matcher := NewMatcherService(donorRepo, universal, 0)
	ctx := context.Background()

	request := testRequest("1000", 23.7104, 90.4074)

	donorRepo.EXPECT().
		FindCandidates(ctx, entity.BloodGroupBPositive).
		Return([]*entity.Donor{testDonor("same", "1000", 23.7104, 90.4074)}, nil)
	donorRepo.EXPECT().
		FindCandidates(ctx, entity.BloodGroupONegative).
		Return([]*entity.Donor{testDonor("universal", "1000", 23.7104, 90.4074)}, nil)

	donors, err := matcher.Match(ctx, request)
	require.NoError(t, err)
	assert.Len(t, donors, 2)
}

func TestMatcherService_Match_InvalidGroup(t *testing.T) {
	donorRepo := mockRepo.NewMockDonorRepository(t)
	matcher := NewMatcherService(donorRepo, nil, 0)

	request := testRequest("1000", 23.7104, 90.4074)
	request.BloodGroup = "Q+"

	_, err := matcher.Match(context.Background(), request)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBloodGroup)
}
