package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"stokvel-backend/internal/auth"
	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/logger"
	"stokvel-backend/internal/repository"
	"stokvel-backend/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnknownReferral    = errors.New("unknown referral code")
)

type authService struct {
	provider auth.Provider
	userRepo repository.UserRepository
	refRepo  repository.ReferralRepository
	tokens   security.TokenManager
	email    EmailService
}

func NewAuthService(provider auth.Provider, userRepo repository.UserRepository, refRepo repository.ReferralRepository, tokens security.TokenManager, email EmailService) AuthService {
	return &authService{
		provider: provider,
		userRepo: userRepo,
		refRepo:  refRepo,
		tokens:   tokens,
		email:    email,
	}
}

func (s *authService) Signup(ctx context.Context, name, email, phone, password, referralCode string) (*domain.User, string, string, error) {
	var referrer *domain.User
	if referralCode != "" {
		var err error
		referrer, err = s.userRepo.GetByReferralCode(ctx, strings.ToUpper(referralCode))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, "", "", ErrUnknownReferral
			}
			return nil, "", "", err
		}
	}

	identity, err := s.provider.Register(ctx, email, password, name)
	if err != nil {
		return nil, "", "", err
	}

	user := &domain.User{
		ID:           identity.UID,
		Email:        email,
		PhoneNumber:  phone,
		DisplayName:  name,
		Role:         domain.UserRoleMember,
		ReferralCode: newReferralCode(),
	}
	if referrer != nil {
		user.ReferredBy = referrer.ID
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", "", err
	}

	if referrer != nil {
		ref := &domain.Referral{
			ReferrerID:     referrer.ID,
			ReferredUserID: user.ID,
			Status:         domain.ReferralStatusPending,
		}
		if err := s.refRepo.Create(ctx, ref); err != nil {
			logger.ErrorContext(ctx, "failed to record referral", "referrer_id", referrer.ID, "error", err)
		}
	}

	if err := s.email.SendWelcome(ctx, user.Email, user.DisplayName); err != nil {
		logger.ErrorContext(ctx, "failed to send welcome email", "email", user.Email, "error", err)
	}

	access, refresh, err := s.tokenPair(user)
	return user, access, refresh, err
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	identity, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		switch auth.KindOf(err) {
		case auth.KindUserNotFound, auth.KindWrongPassword, auth.KindInvalidEmail:
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	user, err := s.userRepo.GetByID(ctx, identity.UID)
	if err != nil {
		return nil, "", "", err
	}

	access, refresh, err := s.tokenPair(user)
	return user, access, refresh, err
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	return s.provider.SignOut(ctx, userID)
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		return "", "", ErrInvalidToken
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", err
	}
	return s.tokenPair(user)
}

// ForgotPassword stays silent about unknown addresses so the endpoint
// cannot be used to discover which emails are registered.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	link, err := s.provider.SendPasswordReset(ctx, email)
	if err != nil {
		if auth.KindOf(err) == auth.KindUserNotFound {
			return nil
		}
		return err
	}

	name := ""
	if user, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		name = user.DisplayName
	}
	return s.email.SendPasswordReset(ctx, email, name, link)
}

func (s *authService) tokenPair(user *domain.User) (string, string, error) {
	role := user.Role
	if role == "" {
		role = domain.UserRoleMember
	}
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, []string{string(role)})
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// newReferralCode derives a short shareable code from a random UUID.
func newReferralCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:8])
}
