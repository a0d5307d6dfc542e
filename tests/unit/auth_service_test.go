package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"stokvel-backend/internal/auth"
	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/security"
	"stokvel-backend/internal/service"
)

func newTokenManager() security.TokenManager {
	return security.NewTokenManager("test-secret", 15, 1440)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		provider := new(MockAuthProvider)
		userRepo := new(MockUserRepo)
		refRepo := new(MockReferralRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewAuthService(provider, userRepo, refRepo, newTokenManager(), emailSvc)

		provider.On("Register", ctx, "thandi@test.com", "s3cretpass", "Thandi").
			Return(&auth.Identity{UID: "uid-1", Email: "thandi@test.com", DisplayName: "Thandi"}, nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)
		emailSvc.On("SendWelcome", ctx, "thandi@test.com", "Thandi").Return(nil)

		user, access, refresh, err := svc.Signup(ctx, "Thandi", "thandi@test.com", "0821234567", "s3cretpass", "")
		assert.NoError(t, err)
		assert.Equal(t, "uid-1", user.ID)
		assert.Equal(t, domain.UserRoleMember, user.Role)
		assert.Len(t, user.ReferralCode, 8)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		refRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("With referral code", func(t *testing.T) {
		provider := new(MockAuthProvider)
		userRepo := new(MockUserRepo)
		refRepo := new(MockReferralRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewAuthService(provider, userRepo, refRepo, newTokenManager(), emailSvc)

		referrer := &domain.User{ID: "uid-referrer", ReferralCode: "AB12CD34"}
		userRepo.On("GetByReferralCode", ctx, "AB12CD34").Return(referrer, nil)
		provider.On("Register", ctx, "sipho@test.com", "s3cretpass", "Sipho").
			Return(&auth.Identity{UID: "uid-2", Email: "sipho@test.com"}, nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)
		refRepo.On("Create", ctx, mock.AnythingOfType("*domain.Referral")).Return(nil)
		emailSvc.On("SendWelcome", ctx, "sipho@test.com", mock.Anything).Return(nil)

		user, _, _, err := svc.Signup(ctx, "Sipho", "sipho@test.com", "", "s3cretpass", "ab12cd34")
		assert.NoError(t, err)
		assert.Equal(t, "uid-referrer", user.ReferredBy)

		refRepo.AssertCalled(t, "Create", ctx, mock.MatchedBy(func(r *domain.Referral) bool {
			return r.ReferrerID == "uid-referrer" && r.ReferredUserID == "uid-2" && r.Status == domain.ReferralStatusPending
		}))
	})

	t.Run("Unknown referral code", func(t *testing.T) {
		provider := new(MockAuthProvider)
		userRepo := new(MockUserRepo)
		refRepo := new(MockReferralRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewAuthService(provider, userRepo, refRepo, newTokenManager(), emailSvc)

		userRepo.On("GetByReferralCode", ctx, "ZZZZZZZZ").Return(nil, domain.ErrNotFound)

		_, _, _, err := svc.Signup(ctx, "Nomsa", "nomsa@test.com", "", "s3cretpass", "ZZZZZZZZ")
		assert.ErrorIs(t, err, service.ErrUnknownReferral)
		provider.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		provider := new(MockAuthProvider)
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(provider, userRepo, new(MockReferralRepo), newTokenManager(), new(MockEmailService))

		provider.On("SignIn", ctx, "thandi@test.com", "s3cretpass").
			Return(&auth.Identity{UID: "uid-1", Email: "thandi@test.com"}, nil)
		userRepo.On("GetByID", ctx, "uid-1").Return(&domain.User{ID: "uid-1", Email: "thandi@test.com"}, nil)

		user, access, refresh, err := svc.Login(ctx, "thandi@test.com", "s3cretpass")
		assert.NoError(t, err)
		assert.Equal(t, "uid-1", user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("Wrong password maps to invalid credentials", func(t *testing.T) {
		provider := new(MockAuthProvider)
		svc := service.NewAuthService(provider, new(MockUserRepo), new(MockReferralRepo), newTokenManager(), new(MockEmailService))

		provider.On("SignIn", ctx, "thandi@test.com", "wrong").
			Return(nil, &auth.Error{Kind: auth.KindWrongPassword})

		_, _, _, err := svc.Login(ctx, "thandi@test.com", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	tokens := newTokenManager()
	userRepo := new(MockUserRepo)
	svc := service.NewAuthService(new(MockAuthProvider), userRepo, new(MockReferralRepo), tokens, new(MockEmailService))

	userRepo.On("GetByID", ctx, "uid-1").Return(&domain.User{ID: "uid-1", Email: "thandi@test.com"}, nil)

	refresh, err := tokens.GenerateRefreshToken("uid-1", "thandi@test.com")
	assert.NoError(t, err)

	newAccess, newRefresh, err := svc.RefreshToken(ctx, refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)

	// An access token must not be accepted on the refresh path.
	access, err := tokens.GenerateAccessToken("uid-1", "thandi@test.com", []string{string(domain.UserRoleMember)})
	assert.NoError(t, err)
	_, _, err = svc.RefreshToken(ctx, access)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestAuthService_ForgotPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Sends reset email", func(t *testing.T) {
		provider := new(MockAuthProvider)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewAuthService(provider, userRepo, new(MockReferralRepo), newTokenManager(), emailSvc)

		provider.On("SendPasswordReset", ctx, "thandi@test.com").Return("https://reset/link", nil)
		userRepo.On("GetByEmail", ctx, "thandi@test.com").Return(&domain.User{DisplayName: "Thandi"}, nil)
		emailSvc.On("SendPasswordReset", ctx, "thandi@test.com", "Thandi", "https://reset/link").Return(nil)

		assert.NoError(t, svc.ForgotPassword(ctx, "thandi@test.com"))
		emailSvc.AssertExpectations(t)
	})

	t.Run("Unknown address is silent", func(t *testing.T) {
		provider := new(MockAuthProvider)
		emailSvc := new(MockEmailService)
		svc := service.NewAuthService(provider, new(MockUserRepo), new(MockReferralRepo), newTokenManager(), emailSvc)

		provider.On("SendPasswordReset", ctx, "ghost@test.com").
			Return("", &auth.Error{Kind: auth.KindUserNotFound})

		assert.NoError(t, svc.ForgotPassword(ctx, "ghost@test.com"))
		emailSvc.AssertNotCalled(t, "SendPasswordReset", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
