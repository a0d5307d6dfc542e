package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/logger"
	"stokvel-backend/internal/repository"
)

type referralDoc struct {
	ReferrerID         string    `firestore:"referrer_id"`
	ReferredUserID     string    `firestore:"referred_user_id"`
	ReferredLoanID     string    `firestore:"referred_loan_id"`
	ReferredLoanAmount string    `firestore:"referred_loan_amount"`
	Commission         string    `firestore:"commission"`
	Status             string    `firestore:"status"`
	CreatedOn          time.Time `firestore:"created_on"`
	UpdatedOn          time.Time `firestore:"updated_on"`
}

func toReferralDoc(ref *domain.Referral) referralDoc {
	return referralDoc{
		ReferrerID:         ref.ReferrerID,
		ReferredUserID:     ref.ReferredUserID,
		ReferredLoanID:     ref.ReferredLoanID,
		ReferredLoanAmount: decString(ref.ReferredLoanAmount),
		Commission:         decString(ref.Commission),
		Status:             string(ref.Status),
		CreatedOn:          ref.CreatedOn,
		UpdatedOn:          ref.UpdatedOn,
	}
}

func fromReferralDoc(id string, d referralDoc) (*domain.Referral, error) {
	var p decFields
	ref := &domain.Referral{
		ID:                 id,
		ReferrerID:         d.ReferrerID,
		ReferredUserID:     d.ReferredUserID,
		ReferredLoanID:     d.ReferredLoanID,
		ReferredLoanAmount: p.parse(d.ReferredLoanAmount),
		Commission:         p.parse(d.Commission),
		Status:             domain.ReferralStatus(d.Status),
		CreatedOn:          d.CreatedOn,
		UpdatedOn:          d.UpdatedOn,
	}
	if p.err != nil {
		return nil, fmt.Errorf("referral %s: %w", id, p.err)
	}
	return ref, nil
}

type referralRepository struct {
	client *firestore.Client
}

func NewReferralRepository(client *firestore.Client) repository.ReferralRepository {
	return &referralRepository{client: client}
}

func (r *referralRepository) Create(ctx context.Context, ref *domain.Referral) error {
	logger.StoreCall("Create", colReferrals, "referrer_id", ref.ReferrerID)
	if ref.ID == "" {
		ref.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	ref.CreatedOn = now
	ref.UpdatedOn = now
	_, err := r.client.Collection(colReferrals).Doc(ref.ID).Create(ctx, toReferralDoc(ref))
	logger.StoreResult("Create", colReferrals, err)
	return err
}

func (r *referralRepository) GetByReferredUser(ctx context.Context, referredUserID string) (*domain.Referral, error) {
	iter := r.client.Collection(colReferrals).Where("referred_user_id", "==", referredUserID).Limit(1).Documents(ctx)
	defer iter.Stop()
	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var d referralDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, err
	}
	return fromReferralDoc(snap.Ref.ID, d)
}

func (r *referralRepository) Update(ctx context.Context, ref *domain.Referral) error {
	logger.StoreCall("Update", colReferrals, "referral_id", ref.ID)
	ref.UpdatedOn = time.Now().UTC()
	_, err := r.client.Collection(colReferrals).Doc(ref.ID).Set(ctx, toReferralDoc(ref))
	logger.StoreResult("Update", colReferrals, err)
	return err
}

func (r *referralRepository) ListByReferrer(ctx context.Context, referrerID string) ([]domain.Referral, error) {
	iter := r.client.Collection(colReferrals).Where("referrer_id", "==", referrerID).Documents(ctx)
	defer iter.Stop()
	var referrals []domain.Referral
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var d referralDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, err
		}
		ref, err := fromReferralDoc(snap.Ref.ID, d)
		if err != nil {
			return nil, err
		}
		referrals = append(referrals, *ref)
	}
	return referrals, nil
}
