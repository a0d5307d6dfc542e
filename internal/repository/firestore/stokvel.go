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

type membershipDoc struct {
	UserID               string    `firestore:"user_id"`
	StokvelType          string    `firestore:"stokvel_type"`
	Balance              string    `firestore:"balance"`
	MonthlyContribution  string    `firestore:"monthly_contribution"`
	ContributionsCount   int       `firestore:"contributions_count"`
	ProjectedPayout      string    `firestore:"projected_payout"`
	StartDate            time.Time `firestore:"start_date"`
	EndDate              time.Time `firestore:"end_date"`
	NextContributionDate time.Time `firestore:"next_contribution_date"`
	Status               string    `firestore:"status"`
	CreatedOn            time.Time `firestore:"created_on"`
	UpdatedOn            time.Time `firestore:"updated_on"`
}

func toMembershipDoc(m *domain.StokvelMembership) membershipDoc {
	return membershipDoc{
		UserID:               m.UserID,
		StokvelType:          string(m.StokvelType),
		Balance:              decString(m.Balance),
		MonthlyContribution:  decString(m.MonthlyContribution),
		ContributionsCount:   m.ContributionsCount,
		ProjectedPayout:      decString(m.ProjectedPayout),
		StartDate:            m.StartDate,
		EndDate:              m.EndDate,
		NextContributionDate: m.NextContributionDate,
		Status:               string(m.Status),
		CreatedOn:            m.CreatedOn,
		UpdatedOn:            m.UpdatedOn,
	}
}

func fromMembershipDoc(id string, d membershipDoc) (*domain.StokvelMembership, error) {
	var p decFields
	m := &domain.StokvelMembership{
		ID:                   id,
		UserID:               d.UserID,
		StokvelType:          domain.StokvelType(d.StokvelType),
		Balance:              p.parse(d.Balance),
		MonthlyContribution:  p.parse(d.MonthlyContribution),
		ContributionsCount:   d.ContributionsCount,
		ProjectedPayout:      p.parse(d.ProjectedPayout),
		StartDate:            d.StartDate,
		EndDate:              d.EndDate,
		NextContributionDate: d.NextContributionDate,
		Status:               domain.MembershipStatus(d.Status),
		CreatedOn:            d.CreatedOn,
		UpdatedOn:            d.UpdatedOn,
	}
	if p.err != nil {
		return nil, fmt.Errorf("membership %s: %w", id, p.err)
	}
	return m, nil
}

type stokvelRepository struct {
	client *firestore.Client
}

func NewStokvelRepository(client *firestore.Client) repository.StokvelRepository {
	return &stokvelRepository{client: client}
}

func (r *stokvelRepository) CreateMembership(ctx context.Context, m *domain.StokvelMembership) error {
	logger.StoreCall("CreateMembership", colMemberships, "user_id", m.UserID)
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	m.CreatedOn = now
	m.UpdatedOn = now
	_, err := r.client.Collection(colMemberships).Doc(m.ID).Create(ctx, toMembershipDoc(m))
	logger.StoreResult("CreateMembership", colMemberships, err)
	return err
}

func (r *stokvelRepository) GetMembershipByID(ctx context.Context, id string) (*domain.StokvelMembership, error) {
	snap, err := r.client.Collection(colMemberships).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapGetErr(err)
	}
	var d membershipDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, err
	}
	return fromMembershipDoc(snap.Ref.ID, d)
}

func (r *stokvelRepository) UpdateMembership(ctx context.Context, m *domain.StokvelMembership) error {
	logger.StoreCall("UpdateMembership", colMemberships, "membership_id", m.ID)
	m.UpdatedOn = time.Now().UTC()
	_, err := r.client.Collection(colMemberships).Doc(m.ID).Set(ctx, toMembershipDoc(m))
	logger.StoreResult("UpdateMembership", colMemberships, err)
	return err
}

func (r *stokvelRepository) ListMembershipsByUser(ctx context.Context, userID string) ([]domain.StokvelMembership, error) {
	return r.list(ctx, r.client.Collection(colMemberships).Where("user_id", "==", userID))
}

func (r *stokvelRepository) ListContributionsDue(ctx context.Context, cutoff time.Time) ([]domain.StokvelMembership, error) {
	q := r.client.Collection(colMemberships).
		Where("status", "==", string(domain.MembershipStatusActive)).
		Where("next_contribution_date", "<=", cutoff)
	return r.list(ctx, q)
}

func (r *stokvelRepository) list(ctx context.Context, q firestore.Query) ([]domain.StokvelMembership, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()
	var memberships []domain.StokvelMembership
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var d membershipDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, err
		}
		m, err := fromMembershipDoc(snap.Ref.ID, d)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, *m)
	}
	return memberships, nil
}
