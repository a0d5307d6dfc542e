package unit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/service"
)

func TestFuneralService_Activate(t *testing.T) {
	ctx := context.Background()

	t.Run("Basic plan without family details", func(t *testing.T) {
		repo := new(MockFuneralRepo)
		svc := service.NewFuneralService(repo)

		repo.On("GetActiveByUser", ctx, "uid-1").Return(nil, domain.ErrNotFound)
		repo.On("CreateMembership", ctx, mock.AnythingOfType("*domain.FuneralCoverMembership")).Return(nil)

		m, err := svc.Activate(ctx, "uid-1", domain.FuneralPlanBasic, []string{"tombstone"}, nil)
		assert.NoError(t, err)
		assert.Equal(t, domain.CoverStatusActive, m.Status)
		assert.Equal(t, "144", m.MonthlyPremium.String()) // 99 base + 45 tombstone
	})

	t.Run("Family plan requires family details", func(t *testing.T) {
		repo := new(MockFuneralRepo)
		svc := service.NewFuneralService(repo)

		_, err := svc.Activate(ctx, "uid-1", domain.FuneralPlanFamily, nil, nil)
		assert.ErrorIs(t, err, domain.ErrMissingFamilyDetails)
		repo.AssertNotCalled(t, "CreateMembership", mock.Anything, mock.Anything)
	})

	t.Run("Unknown plan", func(t *testing.T) {
		repo := new(MockFuneralRepo)
		svc := service.NewFuneralService(repo)

		_, err := svc.Activate(ctx, "uid-1", domain.FuneralPlanID("PLATINUM"), nil, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidPlan)
	})

	t.Run("Second concurrent cover", func(t *testing.T) {
		repo := new(MockFuneralRepo)
		svc := service.NewFuneralService(repo)

		repo.On("GetActiveByUser", ctx, "uid-1").Return(&domain.FuneralCoverMembership{ID: "cov-1"}, nil)

		_, err := svc.Activate(ctx, "uid-1", domain.FuneralPlanBasic, nil, nil)
		assert.ErrorIs(t, err, service.ErrCoverExists)
	})
}

func TestFuneralService_SubmitClaim(t *testing.T) {
	ctx := context.Background()

	coverStarted := func(monthsAgo int) *domain.FuneralCoverMembership {
		return &domain.FuneralCoverMembership{
			ID:        "cov-1",
			UserID:    "uid-1",
			PlanID:    domain.FuneralPlanBasic,
			StartDate: time.Now().UTC().AddDate(0, 0, -monthsAgo*30),
			Status:    domain.CoverStatusActive,
		}
	}

	t.Run("Natural death inside waiting period is rejected", func(t *testing.T) {
		repo := new(MockFuneralRepo)
		svc := service.NewFuneralService(repo)

		repo.On("GetMembershipByID", ctx, "cov-1").Return(coverStarted(5), nil)
		repo.On("CreateClaim", ctx, mock.AnythingOfType("*domain.FuneralClaim")).Return(nil)

		claim, err := svc.SubmitClaim(ctx, "uid-1", "cov-1", domain.CauseNaturalDeath, domain.MemberCategoryMain)
		assert.NoError(t, err)
		assert.Equal(t, domain.ClaimStatusRejected, claim.Status)
		assert.NotEmpty(t, claim.RejectionReason)
	})

	t.Run("Natural death after six cover months is pending", func(t *testing.T) {
		repo := new(MockFuneralRepo)
		svc := service.NewFuneralService(repo)

		repo.On("GetMembershipByID", ctx, "cov-1").Return(coverStarted(7), nil)
		repo.On("CreateClaim", ctx, mock.AnythingOfType("*domain.FuneralClaim")).Return(nil)

		claim, err := svc.SubmitClaim(ctx, "uid-1", "cov-1", domain.CauseNaturalDeath, domain.MemberCategoryMain)
		assert.NoError(t, err)
		assert.Equal(t, domain.ClaimStatusPending, claim.Status)
	})

	t.Run("Accidental death has no waiting period", func(t *testing.T) {
		repo := new(MockFuneralRepo)
		svc := service.NewFuneralService(repo)

		repo.On("GetMembershipByID", ctx, "cov-1").Return(coverStarted(0), nil)
		repo.On("CreateClaim", ctx, mock.AnythingOfType("*domain.FuneralClaim")).Return(nil)

		claim, err := svc.SubmitClaim(ctx, "uid-1", "cov-1", domain.CauseAccidentalDeath, domain.MemberCategoryMain)
		assert.NoError(t, err)
		assert.Equal(t, domain.ClaimStatusPending, claim.Status)
	})

	t.Run("Someone else's cover", func(t *testing.T) {
		repo := new(MockFuneralRepo)
		svc := service.NewFuneralService(repo)

		repo.On("GetMembershipByID", ctx, "cov-1").Return(coverStarted(7), nil)

		_, err := svc.SubmitClaim(ctx, "uid-other", "cov-1", domain.CauseNaturalDeath, domain.MemberCategoryMain)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestFuneralService_Cancel(t *testing.T) {
	ctx := context.Background()
	repo := new(MockFuneralRepo)
	svc := service.NewFuneralService(repo)

	active := &domain.FuneralCoverMembership{
		ID:     "cov-1",
		UserID: "uid-1",
		Status: domain.CoverStatusActive,
	}
	repo.On("GetMembershipByID", ctx, "cov-1").Return(active, nil)
	repo.On("UpdateMembership", ctx, mock.AnythingOfType("*domain.FuneralCoverMembership")).Return(nil)

	assert.NoError(t, svc.Cancel(ctx, "uid-1", "cov-1"))
	assert.Equal(t, domain.CoverStatusCancelled, active.Status)

	// Cancelling twice trips the state check.
	err := svc.Cancel(ctx, "uid-1", "cov-1")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}
