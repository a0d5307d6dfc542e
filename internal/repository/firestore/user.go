package firestore

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/logger"
	"stokvel-backend/internal/repository"
)

type userDoc struct {
	Email        string    `firestore:"email"`
	PhoneNumber  string    `firestore:"phone_number"`
	DisplayName  string    `firestore:"display_name"`
	Role         string    `firestore:"role"`
	ReferralCode string    `firestore:"referral_code"`
	ReferredBy   string    `firestore:"referred_by"`
	CreatedOn    time.Time `firestore:"created_on"`
	UpdatedOn    time.Time `firestore:"updated_on"`
}

func toUserDoc(u *domain.User) userDoc {
	return userDoc{
		Email:        strings.ToLower(u.Email),
		PhoneNumber:  u.PhoneNumber,
		DisplayName:  u.DisplayName,
		Role:         string(u.Role),
		ReferralCode: u.ReferralCode,
		ReferredBy:   u.ReferredBy,
		CreatedOn:    u.CreatedOn,
		UpdatedOn:    u.UpdatedOn,
	}
}

func fromUserDoc(id string, d userDoc) *domain.User {
	role := domain.UserRole(d.Role)
	if role == "" {
		role = domain.UserRoleMember
	}
	return &domain.User{
		ID:           id,
		Email:        d.Email,
		PhoneNumber:  d.PhoneNumber,
		DisplayName:  d.DisplayName,
		Role:         role,
		ReferralCode: d.ReferralCode,
		ReferredBy:   d.ReferredBy,
		CreatedOn:    d.CreatedOn,
		UpdatedOn:    d.UpdatedOn,
	}
}

type userRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

// Create stores the profile under the auth provider's UID so the two
// systems share one identifier.
func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	logger.StoreCall("Create", colUsers, "user_id", u.ID)
	now := time.Now().UTC()
	u.CreatedOn = now
	u.UpdatedOn = now
	_, err := r.client.Collection(colUsers).Doc(u.ID).Create(ctx, toUserDoc(u))
	logger.StoreResult("Create", colUsers, err)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	snap, err := r.client.Collection(colUsers).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapGetErr(err)
	}
	var d userDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, err
	}
	return fromUserDoc(snap.Ref.ID, d), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getByField(ctx, "email", strings.ToLower(email))
}

func (r *userRepository) GetByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	return r.getByField(ctx, "referral_code", code)
}

func (r *userRepository) getByField(ctx context.Context, field string, value string) (*domain.User, error) {
	iter := r.client.Collection(colUsers).Where(field, "==", value).Limit(1).Documents(ctx)
	defer iter.Stop()
	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var d userDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, err
	}
	return fromUserDoc(snap.Ref.ID, d), nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	logger.StoreCall("Update", colUsers, "user_id", u.ID)
	u.UpdatedOn = time.Now().UTC()
	_, err := r.client.Collection(colUsers).Doc(u.ID).Set(ctx, toUserDoc(u))
	logger.StoreResult("Update", colUsers, err)
	return err
}
